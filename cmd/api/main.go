package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/Poirot101/oct-recruitment-system/internal/app"
	"github.com/Poirot101/oct-recruitment-system/internal/config"
	"github.com/Poirot101/oct-recruitment-system/internal/database"
	apphttp "github.com/Poirot101/oct-recruitment-system/internal/http"
	"github.com/Poirot101/oct-recruitment-system/internal/http/handlers"
	"github.com/Poirot101/oct-recruitment-system/internal/http/metrics"
	httpmw "github.com/Poirot101/oct-recruitment-system/internal/http/middleware"
	"github.com/Poirot101/oct-recruitment-system/internal/http/response"
	"github.com/Poirot101/oct-recruitment-system/internal/observability"
	"github.com/Poirot101/oct-recruitment-system/internal/repository/postgres"
	"github.com/Poirot101/oct-recruitment-system/internal/security"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := observability.NewLogger()
	db := database.NewPostgres(database.PostgresConfig{
		DSN:             cfg.PostgresDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdle:     cfg.DBConnMaxIdle,
		ConnMaxLifetime: cfg.DBConnMaxLife,
	})
	defer db.Close()

	if cfg.MigrateOnStart {
		if err := database.Migrate(db); err != nil {
			log.Fatal(err)
		}
	}

	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	applicationRepo := postgres.NewApplicationRepository(db)

	jwtProvider := security.NewJWTProvider(cfg.JWTSecret, cfg.TokenTTL)

	authService := app.NewAuthService(userRepo, jwtProvider, logger)
	userService := app.NewUserService(userRepo)
	profileService := app.NewProfileService(profileRepo)
	applicationService := app.NewApplicationService(applicationRepo, profileRepo, logger)

	var limiter httpmw.Limiter = httpmw.NewRateLimiter()
	if cfg.RedisAddr != "" {
		limiter = httpmw.NewRedisLimiter(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
		logger.Info("using redis rate limiter at " + cfg.RedisAddr)
	}

	authHandler := handlers.NewAuthHandler(authService, limiter)
	userHandler := handlers.NewUserHandler(userService)
	profileHandler := handlers.NewProfileHandler(profileService)
	applicationHandler := handlers.NewApplicationHandler(applicationService, limiter)
	middleware := httpmw.NewAuthMiddleware(jwtProvider)

	collector := metrics.NewCollector()
	response.SetErrorCollector(collector)

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		AuthHandler:        authHandler,
		UserHandler:        userHandler,
		ProfileHandler:     profileHandler,
		ApplicationHandler: applicationHandler,
		AuthMiddleware:     middleware,
		Metrics:            collector,
		Logger:             logger,
		AllowedOrigins:     cfg.CORSAllowedOrigins,
		RequestTimeout:     cfg.RequestTimeout,
	})
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("API started on :" + cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
