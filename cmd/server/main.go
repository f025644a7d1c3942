package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobboard/internal/api"
	"jobboard/internal/app/service"
	"jobboard/internal/common/security"
	"jobboard/internal/domain/repository"
	"jobboard/internal/platform/cache"
	"jobboard/internal/platform/config"
	"jobboard/internal/platform/database"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// 1. Logging
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	// 2. Load Configuration
	config.Load()
	log.Info().Msg("Configuration loaded")
	if len(config.AppConfig.JWTSecret) == 0 {
		// Startup proceeds so /health stays reachable; every token
		// operation will fail with a configuration error until fixed.
		log.Error().Msg("JWT_SECRET is not set; logins and session checks will fail")
	}

	// 3. Initialize Database
	database.Connect()
	defer database.Close()
	if err := database.RunMigrations(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Migrations failed")
	}
	log.Info().Msg("Migrations applied")

	// 4. Initialize Redis
	cache.ConnectRedis()
	defer cache.CloseRedis()

	// 5. Initialize Repositories
	userRepo := repository.NewPgUserRepository(database.DB)
	jobRepo := repository.NewPgJobRepository(database.DB)

	// 6. Initialize Token Manager & Services
	tokens := security.NewTokenManager(config.AppConfig.JWTSecret, config.AppConfig.TokenTTL)
	authService := service.NewAuthService(userRepo, tokens)
	userService := service.NewUserService(userRepo)
	jobService := service.NewJobService(
		jobRepo, userRepo, cache.RDB,
		config.AppConfig.LatestJobsCacheKey,
		config.AppConfig.LatestJobsCacheTTL,
		config.AppConfig.LatestJobsLimit,
	)

	// 7. Initialize Router & HTTP Server
	router := api.NewRouter(authService, userService, jobService, tokens, config.AppConfig.CookieMaxAge)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 8. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info().Str("port", config.AppConfig.APIPort).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Could not listen")
		}
	}()

	<-stop // Wait for interrupt signal

	log.Info().Msg("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server shutdown failed")
	}

	log.Info().Msg("Server stopped gracefully")
}
