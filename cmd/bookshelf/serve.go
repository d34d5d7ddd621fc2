package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"bookshelf/pkg/api"
	"bookshelf/pkg/bookstore"
	"bookshelf/pkg/config"
	"bookshelf/pkg/database"
	"bookshelf/pkg/seed"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// app holds everything a running server owns.
type app struct {
	books  *bookstore.Service
	db     *gorm.DB
	router *gin.Engine
}

func newApp(ctx context.Context, cfg config.Config) (*app, error) {
	gin.SetMode(cfg.GinMode)

	ids, err := bookstore.NewIDGenerator(cfg.IDGenerator)
	if err != nil {
		return nil, err
	}

	a := &app{}
	var repo bookstore.Repository
	health := &api.HealthHandler{}
	switch cfg.Store {
	case config.StoreSQLite:
		a.db, err = database.OpenBooksDB(cfg.SQLiteDSN)
		if err != nil {
			return nil, err
		}
		repo = bookstore.NewGormRepository(a.db)
		db := a.db
		health.Ping = func(ctx context.Context) error {
			return database.Ping(ctx, db)
		}
	default:
		repo = bookstore.NewMemoryRepository()
	}
	log.Printf("Using %s store with %s ids", cfg.Store, cfg.IDGenerator)

	a.books = bookstore.New(repo, bookstore.WithIDGenerator(ids))

	if cfg.SeedFile != "" {
		inputs, err := seed.Load(cfg.SeedFile)
		if err != nil {
			a.close()
			return nil, err
		}
		if _, err := seed.Apply(ctx, a.books, inputs); err != nil {
			a.close()
			return nil, err
		}
	}

	a.router = api.NewRouter(api.NewBookHandler(a.books), health)
	return a, nil
}

func (a *app) close() {
	if a.db == nil {
		return
	}
	if err := database.Close(a.db); err != nil {
		log.Printf("Failed to close database: %v", err)
	}
}

func serve(ctx context.Context, cfg config.Config) error {
	log.Println("Starting bookshelf service...")

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.close()

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      a.router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Bookshelf service starting on %s", cfg.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Println("Shutting down bookshelf service...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
