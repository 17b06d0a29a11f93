package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/myrp-alexandre/ubsvoce/internal/adapter/geocoding"
	"github.com/myrp-alexandre/ubsvoce/internal/adapter/handler"
	"github.com/myrp-alexandre/ubsvoce/internal/adapter/logger"
	"github.com/myrp-alexandre/ubsvoce/internal/adapter/storage/memory"
	"github.com/myrp-alexandre/ubsvoce/internal/adapter/storage/postgres"
	redis_adapter "github.com/myrp-alexandre/ubsvoce/internal/adapter/storage/redis"
	"github.com/myrp-alexandre/ubsvoce/internal/config"
	"github.com/myrp-alexandre/ubsvoce/internal/core/port"
	"github.com/myrp-alexandre/ubsvoce/internal/core/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	appLogger, _ := logger.New(cfg.Env)
	defer appLogger.Sync()

	var unitStore port.UnitStore
	var operatorStore port.OperatorStore

	if cfg.DBUrl != "" {
		dbConfig, err := pgxpool.ParseConfig(cfg.DBUrl)
		if err != nil {
			appLogger.Fatal("unable to parse db config", zap.Error(err))
		}

		pool, err := pgxpool.NewWithConfig(context.Background(), dbConfig)
		if err != nil {
			appLogger.Fatal("unable to create db pool", zap.Error(err))
		}
		defer pool.Close()

		if err := pool.Ping(context.Background()); err != nil {
			appLogger.Fatal("cannot connect to db", zap.Error(err))
		}

		appLogger.Info("connected to database via pgxpool")

		store := postgres.NewStore(pool)
		unitStore = store
		operatorStore = store
	} else {
		appLogger.Warn("DB_URL is empty, using in-memory store")
		store := memory.NewStore()
		unitStore = store
		operatorStore = store
	}

	redisClient := goredis.NewClient(&goredis.Options{Addr: cfg.RedisURL})
	defer redisClient.Close()

	geocodeCache := redis_adapter.NewGeocodeCache(redisClient,
		time.Duration(cfg.GeocodeCacheTTLHours)*time.Hour)
	geocoder := geocoding.NewGoogleClient(cfg.GoogleAPIKey)

	authSvc := service.NewAuthService(cfg.JWTSecret)
	searchSvc := service.NewSearchService(unitStore, appLogger)
	geocodeSvc := service.NewGeocodeService(geocoder, geocodeCache, unitStore, appLogger)

	unitHandler := handler.NewUnitHandler(searchSvc, geocodeSvc, unitStore)
	authHandler := handler.NewAuthHandler(authSvc, operatorStore)

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(200, gin.H{"status": "UP", "env": cfg.Env})
	})

	api := r.Group("/api/v1")
	{
		api.POST("/auth/login", authHandler.Login)
		api.GET("/units/near", unitHandler.SearchUnits)
		api.GET("/units/:id", unitHandler.GetUnit)

		authorized := api.Group("")
		authorized.Use(handler.AuthMiddleware(authSvc))
		authorized.POST("/units", unitHandler.CreateUnit)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		appLogger.Info("starting server", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("listen: %s\n", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("server forced to shutdown:", zap.Error(err))
	}

	appLogger.Info("server exiting")
}
