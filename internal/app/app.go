// Package app assembles the application: configuration, logging, database,
// services, HTTP transport, and graceful shutdown.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/tripplanner-backend/internal/adapter/postgres"
	interestrepo "github.com/heartmarshall/tripplanner-backend/internal/adapter/postgres/interest"
	itineraryrepo "github.com/heartmarshall/tripplanner-backend/internal/adapter/postgres/itinerary"
	userrepo "github.com/heartmarshall/tripplanner-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/tripplanner-backend/internal/adapter/provider/gemini"
	"github.com/heartmarshall/tripplanner-backend/internal/adapter/provider/imagesearch"
	jwtauth "github.com/heartmarshall/tripplanner-backend/internal/auth"
	"github.com/heartmarshall/tripplanner-backend/internal/config"
	authsvc "github.com/heartmarshall/tripplanner-backend/internal/service/auth"
	itinerarysvc "github.com/heartmarshall/tripplanner-backend/internal/service/itinerary"
	suggestionsvc "github.com/heartmarshall/tripplanner-backend/internal/service/suggestion"
	"github.com/heartmarshall/tripplanner-backend/internal/transport/middleware"
	"github.com/heartmarshall/tripplanner-backend/internal/transport/rest"
)

// Run is the application entry point. It blocks until ctx is canceled or the
// HTTP server fails, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)
	itineraries := itineraryrepo.New(pool)
	interests := interestrepo.New(pool)
	users := userrepo.New(pool)

	jwtManager := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	aiProvider := gemini.NewWithURL(cfg.AI.BaseURL, cfg.AI.APIKey, cfg.AI.Model, cfg.AI.Timeout, logger)
	imageProvider := imagesearch.NewWithURL(cfg.ImageSearch.BaseURL, cfg.ImageSearch.APIKey,
		cfg.ImageSearch.SearchEngineID, cfg.ImageSearch.Timeout, logger)

	authService := authsvc.NewService(logger, users, jwtManager, cfg.Auth)
	itineraryService := itinerarysvc.NewService(logger, itineraries, interests, users, txManager, cfg.Planning)
	suggestionService := suggestionsvc.NewService(logger, itineraries, aiProvider, imageProvider, cfg.Planning)

	rateLimiter := middleware.NewRateLimiter(5 * time.Minute)
	defer rateLimiter.Stop()

	mux := rest.NewRouter(rest.RouterDeps{
		Trip:            rest.NewTripHandler(itineraryService, logger),
		Suggestions:     rest.NewSuggestionHandler(suggestionService, logger),
		Auth:            rest.NewAuthHandler(authService, logger),
		Health:          rest.NewHealthHandler(pool, BuildVersion()),
		SuggestionLimit: rateLimiter.Limit(cfg.AI.RequestsPerMinute),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
	)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
