package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mrlokans/bookery/internal/config"
	"github.com/mrlokans/bookery/internal/database"
	"github.com/mrlokans/bookery/internal/database/authors"
	"github.com/mrlokans/bookery/internal/database/books"
	"github.com/mrlokans/bookery/internal/database/costumers"
	"github.com/mrlokans/bookery/internal/database/rentals"
	http_controllers "github.com/mrlokans/bookery/internal/http"
	"github.com/mrlokans/bookery/internal/services"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Serve runs the HTTP server until SIGINT or SIGTERM, then drains in-flight
// requests for at most ShutdownTimeoutInSeconds.
func Serve(router *gin.Engine, cfg *config.Config, logger zerolog.Logger, onShutdown ShutdownFunc) error {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT; SIGKILL can't be caught
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		if err == nil {
			return nil
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if onShutdown != nil {
			onShutdown(ctx)
		}
		return fmt.Errorf("listen: %w", err)
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Dur("timeout", timeout).Msg("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	shutdownErr := srv.Shutdown(ctx)

	// Runs after the last request has drained so the pool is still open for it.
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if shutdownErr != nil {
		return fmt.Errorf("server shutdown: %w", shutdownErr)
	}
	logger.Info().Msg("server exiting")
	return nil
}

// NewRouter wires repositories and services over db into the HTTP router.
func NewRouter(db *database.Database, logger zerolog.Logger, version string) *gin.Engine {
	return http_controllers.NewRouter(http_controllers.RouterConfig{
		Authors:   services.NewAuthorService(authors.NewRepository(db.DB)),
		Books:     services.NewBookService(books.NewRepository(db.DB)),
		Costumers: services.NewCostumerService(costumers.NewRepository(db.DB)),
		Rentals:   services.NewRentalService(rentals.NewRepository(db.DB)),
		Database:  db,
		Logger:    logger,
		Version:   version,
	})
}

// Run opens the database, brings the schema up to date and serves the API.
func Run(cfg *config.Config, version string, logger zerolog.Logger) error {
	logger.Info().Str("version", version).Msg("starting bookery")

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	db, err := database.NewDatabase(cfg.Database, logger)
	if err != nil {
		return err
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			logger.Error().Err(err).Msg("error closing database")
		}
	}

	if err := db.Migrate(); err != nil {
		closeDB()
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	router := NewRouter(db, logger, version)

	return Serve(router, cfg, logger, func(context.Context) { closeDB() })
}

// Migrate creates or updates the schema and returns.
func Migrate(cfg *config.Config, logger zerolog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	db, err := database.NewDatabase(cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error().Err(err).Msg("error closing database")
		}
	}()

	if err := db.Migrate(); err != nil {
		return err
	}
	logger.Info().Str("driver", string(cfg.Database.Driver)).Msg("schema is up to date")
	return nil
}
