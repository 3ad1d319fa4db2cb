package service

import (
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/okezie/pawhaven/config"
	"github.com/okezie/pawhaven/data"
	"github.com/okezie/pawhaven/internal/jsonlog"
	"github.com/okezie/pawhaven/repository"
)

type Service interface {
	pets
	applications
	posts
	comments
	campaigns
	users
	tokens
	failedValidation(map[string]string) error
}

// service defines the service layer. The two ttlcache instances hold the
// viewer-facing aggregate state (vote totals, like counts, follow flags)
// that the optimistic like/vote/follow toggles mutate before their database
// writes are confirmed.
type service struct {
	config       config.Config
	wg           *sync.WaitGroup
	logger       *jsonlog.Logger
	repo         repository.Repository
	postStats    *ttlcache.Cache[string, data.PostStats]
	commentStats *ttlcache.Cache[string, data.CommentStats]
}

// New creates a new instance of Service.
func New(cfg config.Config, wg *sync.WaitGroup, logger *jsonlog.Logger, repo repository.Repository) *service {
	postStats := ttlcache.New(ttlcache.WithTTL[string, data.PostStats](10 * time.Minute))
	commentStats := ttlcache.New(ttlcache.WithTTL[string, data.CommentStats](10 * time.Minute))
	go postStats.Start()
	go commentStats.Start()
	return &service{
		config:       cfg,
		wg:           wg,
		logger:       logger,
		repo:         repo,
		postStats:    postStats,
		commentStats: commentStats,
	}
}
