package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/giftdash/giftdash-backend/api/routes"
	"github.com/giftdash/giftdash-backend/internal/branches"
	"github.com/giftdash/giftdash-backend/internal/cards"
	"github.com/giftdash/giftdash-backend/internal/corporate"
	"github.com/giftdash/giftdash-backend/internal/documents"
	"github.com/giftdash/giftdash-backend/internal/identity"
	"github.com/giftdash/giftdash-backend/internal/onboarding"
	"github.com/giftdash/giftdash-backend/internal/profiles"
	"github.com/giftdash/giftdash-backend/internal/vendors"
	"github.com/giftdash/giftdash-backend/pkg/config"
	"github.com/giftdash/giftdash-backend/pkg/db"
	"github.com/giftdash/giftdash-backend/pkg/logger"
	"github.com/giftdash/giftdash-backend/pkg/metrics"
	"github.com/giftdash/giftdash-backend/pkg/migrate"
	"github.com/giftdash/giftdash-backend/pkg/redis"
	"github.com/giftdash/giftdash-backend/pkg/storage/gcs"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	gcsClient, err := gcs.NewClient(context.Background(), cfg.GCS, cfg.GCP, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap gcs", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	onboardingMetrics := metrics.NewOnboardingMetrics(registry)

	identityService, err := identity.NewService(identity.ServiceParams{
		Repo: identity.NewRepository(dbClient.DB()),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create identity service", err)
		os.Exit(1)
	}

	profileService, err := profiles.NewService(profiles.ServiceParams{
		Preferences: profiles.NewRedisPreferenceStore(redisClient),
		Cache:       redisClient,
		Logger:      logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create profile service", err)
		os.Exit(1)
	}

	documentService, err := documents.NewService(gcsClient, cfg.GCS.BucketName, cfg.Documents.MaxUploadBytes(), cfg.GCS.DownloadURLExpiry)
	if err != nil {
		logg.Error(context.Background(), "failed to create document service", err)
		os.Exit(1)
	}

	vendorRepo := vendors.NewRepository(dbClient.DB())
	vendorService, err := vendors.NewService(vendors.ServiceParams{Repo: vendorRepo})
	if err != nil {
		logg.Error(context.Background(), "failed to create vendor service", err)
		os.Exit(1)
	}

	onboardingService, err := onboarding.NewService(onboarding.ServiceParams{
		Corporate: corporate.NewRepository(dbClient.DB()),
		Documents: documentService,
		Vendors:   vendorRepo,
		Drafts:    onboarding.NewRedisDraftStore(redisClient, cfg.Drafts.TTL),
		Cache:     redisClient,
		Metrics:   onboardingMetrics,
		Logger:    logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create onboarding service", err)
		os.Exit(1)
	}

	branchService, err := branches.NewService(branches.ServiceParams{
		Repo:   branches.NewRepository(dbClient.DB()),
		Cache:  redisClient,
		Logger: logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create branch service", err)
		os.Exit(1)
	}

	cardService, err := cards.NewService(cards.ServiceParams{
		Repo:     cards.NewRepository(dbClient.DB()),
		Cache:    redisClient,
		CacheTTL: cfg.Cache.CardsTTL,
		Logger:   logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create card service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	id := os.Getenv("DYNO")
	if id == "" {
		id = "local"
	}
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": id,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			registry,
			dbClient,
			redisClient,
			gcsClient,
			identityService,
			profileService,
			onboardingService,
			vendorService,
			branchService,
			cardService,
			documentService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
