package handler

import (
	"github.com/jellydator/ttlcache/v3"
	"github.com/okezie/pawhaven/config"
	"github.com/okezie/pawhaven/internal/jsonlog"
	"github.com/okezie/pawhaven/service"
)

// Handler defines Handler layer. The cache holds resource owner IDs so the
// ownership middlewares don't hit the database on every permission check.
type Handler struct {
	config  config.Config
	logger  *jsonlog.Logger
	cache   *ttlcache.Cache[string, int64]
	service service.Service
}

// New creates a new instance of Handler.
func New(cfg config.Config, logger *jsonlog.Logger, cache *ttlcache.Cache[string, int64], service service.Service) *Handler {
	return &Handler{
		config:  cfg,
		logger:  logger,
		cache:   cache,
		service: service,
	}
}
