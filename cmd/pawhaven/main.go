package main

import (
	"expvar"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/okezie/pawhaven/config"
	"github.com/okezie/pawhaven/handler"
	"github.com/okezie/pawhaven/internal/jsonlog"
	"github.com/okezie/pawhaven/repository"
	"github.com/okezie/pawhaven/repository/postgres"
	"github.com/okezie/pawhaven/service"
)

const version = "1.0.0"

// app defines the application's layers and shared resources.
type app struct {
	config  config.Config
	repo    repository.Repository
	service service.Service
	handler *handler.Handler
}

func main() {
	logger := jsonlog.New(os.Stdout, jsonlog.LevelInfo)

	// Initialize configuration from the config file and environment
	cfg, err := config.Decode()
	if err != nil {
		logger.PrintFatal(err, nil)
	}

	// Initialize database connection
	db, err := postgres.OpenDBConn(cfg)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	defer db.Close()
	logger.PrintInfo("database connection pool established", nil)

	// Other shared resources: waitgroup and in-memory cache
	var wg sync.WaitGroup
	cache := ttlcache.New(ttlcache.WithTTL[string, int64](30 * time.Minute))
	go cache.Start()

	// Publish runtime metrics for the /debug/vars endpoint
	if cfg.Metrics.Enabled {
		expvar.NewString("version").Set(version)
		expvar.Publish("goroutines", expvar.Func(func() any {
			return runtime.NumGoroutine()
		}))
		expvar.Publish("database", expvar.Func(func() any {
			return db.Stats()
		}))
		expvar.Publish("timestamp", expvar.Func(func() any {
			return time.Now().Unix()
		}))
	}

	// Application layers
	repo := repository.New(db)
	service := service.New(cfg, &wg, logger, repo)
	handler := handler.New(cfg, logger, cache, service)

	// Instantiate application
	app := &app{
		config:  cfg,
		repo:    repo,
		service: service,
		handler: handler,
	}

	// Start HTTP server
	err = app.serve(&wg, logger)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
}
