// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/wsawebmaster/delivery/config"
	"github.com/wsawebmaster/delivery/internal/http"
	"github.com/wsawebmaster/delivery/internal/middleware"
)

// App is the wired service together with its background workers.
type App struct {
	Router *gin.Engine

	storefront *StorefrontComponents
	database   *DatabaseComponents

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// InitializeApp creates and wires all application dependencies and starts the background
// workers. Call Close once the server has stopped.
func InitializeApp(cfg config.Config) (*App, error) {
	InitializeLogger(cfg.Log)

	sf, err := InitializeStorefront(cfg)
	if err != nil {
		return nil, err
	}

	// nil when MongoDB is disabled or unreachable
	db := InitializeDatabase(cfg.Database)

	rc := InitializeRouter(sf, db, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	a := &App{
		Router:     http.NewRouter(rc.Handler, rc.HealthHandler, rc.Config),
		storefront: sf,
		database:   db,
		cancel:     cancel,
	}
	a.start(ctx)
	return a, nil
}

func (a *App) start(ctx context.Context) {
	a.goWorker(func() { a.storefront.Hub.Run(ctx) })
	a.goWorker(func() { a.storefront.Sessions.RunSweeper(ctx, sessionSweepInterval) })
	a.goWorker(func() { runCacheJanitor(ctx, a.storefront.AddressCache, cacheJanitorInterval) })
}

func (a *App) goWorker(fn func()) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		fn()
	}()
}

// Close stops the workers, flushes queued log entries and disconnects from MongoDB.
func (a *App) Close(ctx context.Context) error {
	a.cancel()
	a.wg.Wait()
	middleware.StopAsyncLogger()

	if a.database != nil {
		return a.database.DB.Close(ctx)
	}
	return nil
}
