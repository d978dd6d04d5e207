package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/league-simulator/config"
	"github.com/Dosada05/league-simulator/db"
	"github.com/Dosada05/league-simulator/handlers"
	"github.com/Dosada05/league-simulator/hub"
	"github.com/Dosada05/league-simulator/match"
	"github.com/Dosada05/league-simulator/random"
	"github.com/Dosada05/league-simulator/repositories"
	"github.com/Dosada05/league-simulator/roster"
	api "github.com/Dosada05/league-simulator/routes"
	"github.com/Dosada05/league-simulator/services"
	"github.com/Dosada05/league-simulator/storage"
	"github.com/go-chi/chi/v5"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second, logger)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	if err := db.Migrate(dbConn); err != nil {
		logger.Error("failed to apply migrations", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var archive services.Archiver
	if cfg.ArchiveEnabled() {
		uploader, err := storage.NewCloudflareR2Uploader(ctx, storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		archive = storage.NewRunArchive(uploader, "runs")
		logger.Info("Cloudflare R2 archive enabled", slog.String("bucket", cfg.R2BucketName))
	}

	wsHub := hub.NewHub(logger)
	go wsHub.Run(ctx)
	logger.Info("WebSocket hub started")

	names, err := roster.DefaultNames()
	if err != nil {
		logger.Error("failed to load roster names", slog.Any("error", err))
		os.Exit(1)
	}
	rosterSeed := cfg.Simulation.Seed
	if rosterSeed == 0 {
		if rosterSeed, err = random.NewSeed(); err != nil {
			logger.Error("failed to draw roster seed", slog.Any("error", err))
			os.Exit(1)
		}
	}
	engine := match.NewEngine(match.Options{Logger: logger})

	runRepo := repositories.NewPostgresSimulationRunRepository(dbConn)
	standingRepo := repositories.NewPostgresSeasonStandingRepository(dbConn)

	authService := services.NewAuthService(cfg.AdminPasswordHash, cfg.JWTSecretKey)
	leagueService, err := services.NewLeagueService(engine, roster.NewGenerator(names), cfg.Simulation, rosterSeed, logger)
	if err != nil {
		logger.Error("failed to build leagues", slog.Any("error", err))
		os.Exit(1)
	}
	simulationService := services.NewSimulationService(
		leagueService,
		services.NewPostgresRunStore(dbConn, runRepo, standingRepo, logger),
		runRepo,
		standingRepo,
		archive,
		wsHub,
		cfg.Simulation.Seed,
		logger,
	)
	logger.Info("services initialized", slog.String("roster_seed", fmt.Sprint(rosterSeed)))

	router := chi.NewRouter()
	api.SetupRoutes(router, cfg.CORSAllowedOrigins, authService, api.Handlers{
		Auth:       handlers.NewAuthHandler(authService),
		League:     handlers.NewLeagueHandler(leagueService),
		Simulation: handlers.NewSimulationHandler(simulationService),
		WebSocket:  handlers.NewWebSocketHandler(wsHub, cfg.CORSAllowedOrigins, logger),
	})

	// A full year can take longer than a regular request.
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
