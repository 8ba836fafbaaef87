package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkmap/inkmap/api"
	"github.com/inkmap/inkmap/auth"
	"github.com/inkmap/inkmap/cache/redis"
	"github.com/inkmap/inkmap/config"
	"github.com/inkmap/inkmap/service"
	"github.com/inkmap/inkmap/store/postgres"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.Dev {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	inkmapStore, err := postgres.NewPostgresInkmapStore(postgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		DBName:   cfg.DB.DBName,
		SSLMode:  cfg.DB.SSLMode,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create postgres store")
	}
	defer inkmapStore.Close()

	inkmapCache, err := redis.NewRedisInkmapCache(ctx, cfg.Dev, cfg.Redis.Endpoint)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create redis cache")
	}

	var verifier auth.Verifier
	if cfg.Dev && cfg.Auth.DevSecret != "" {
		logger.Warn().Msg("using dev token verifier")
		verifier = auth.NewDevVerifier([]byte(cfg.Auth.DevSecret))
	} else {
		verifier = auth.NewGoogleVerifier(cfg.Auth.GoogleClientID)
	}

	svc := service.NewService(inkmapStore, inkmapCache, verifier, cfg.Ink, logger)

	inkmapAPI := api.NewInkmapAPI(svc)
	mux := http.NewServeMux()
	inkmapAPI.RegisterRoutes(mux)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      inkmapAPI.Middleware(mux, cfg.CORS.AllowOrigin),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	shutdownCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	go func() {
		logger.Info().Str("port", cfg.Server.Port).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-shutdownCtx.Done()
	logger.Info().Msg("server shutting down")

	drainCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(drainCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown failed")
	}
}
