package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/kmorales-dev/closetwish-backend/api/routes"
	"github.com/kmorales-dev/closetwish-backend/internal/auth"
	"github.com/kmorales-dev/closetwish-backend/internal/clothing"
	"github.com/kmorales-dev/closetwish-backend/internal/surveys"
	"github.com/kmorales-dev/closetwish-backend/internal/users"
	"github.com/kmorales-dev/closetwish-backend/internal/wishlists"
	"github.com/kmorales-dev/closetwish-backend/pkg/auth/session"
	"github.com/kmorales-dev/closetwish-backend/pkg/config"
	"github.com/kmorales-dev/closetwish-backend/pkg/db"
	"github.com/kmorales-dev/closetwish-backend/pkg/logger"
	"github.com/kmorales-dev/closetwish-backend/pkg/metrics"
	"github.com/kmorales-dev/closetwish-backend/pkg/migrate"
	"github.com/kmorales-dev/closetwish-backend/pkg/redis"
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

	// The session marker store is optional; without Redis the API still
	// issues and accepts stateless tokens.
	var redisClient *redis.Client
	var sessionManager *session.Manager
	if cfg.Redis.Configured() {
		redisClient, err = redis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()

		sessionManager, err = session.NewManager(redisClient, cfg.JWT)
		if err != nil {
			logg.Error(context.Background(), "failed to create session manager", err)
			os.Exit(1)
		}
	}

	conn := dbClient.DB()
	userRepo := users.NewRepository(conn)
	clothingRepo := clothing.NewRepository(conn)

	authParams := auth.ServiceParams{
		DB:             dbClient,
		UserRepo:       userRepo,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
		Logger:         logg,
	}
	if sessionManager != nil {
		authParams.Session = sessionManager
	}
	authService, err := auth.NewService(authParams)
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	surveyService, err := surveys.NewService(surveys.ServiceParams{DB: dbClient})
	if err != nil {
		logg.Error(context.Background(), "failed to create survey service", err)
		os.Exit(1)
	}

	wishlistService, err := wishlists.NewService(wishlists.ServiceParams{
		DB:           dbClient,
		WishlistRepo: wishlists.NewRepository(conn),
		ItemRepo:     wishlists.NewItemRepository(conn),
		UserRepo:     userRepo,
		ClothingRepo: clothingRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create wishlist service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.RouterParams{
			Config:          cfg,
			Logger:          logg,
			DBPinger:        dbClient,
			RedisClient:     redisClient,
			HTTPMetrics:     httpMetrics,
			MetricsRegistry: registry,
			AuthService:     authService,
			SurveyService:   surveyService,
			WishlistService: wishlistService,
			ClothingRepo:    clothingRepo,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
