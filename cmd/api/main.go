package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/theomoutet/coach-portal/internal/auth"
	"github.com/theomoutet/coach-portal/internal/config"
	dbpkg "github.com/theomoutet/coach-portal/internal/db"
	infraRepo "github.com/theomoutet/coach-portal/internal/infra/repository"
	"github.com/theomoutet/coach-portal/internal/middleware"
	"github.com/theomoutet/coach-portal/internal/portal"
	"github.com/theomoutet/coach-portal/internal/routes"
	"github.com/theomoutet/coach-portal/internal/storage"
	"github.com/theomoutet/coach-portal/pkg/logger"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("redis unreachable")
	}
	cancel()

	feed := auth.NewFeed()
	revoker := auth.NewRevoker(rdb)
	authSvc := auth.NewService(db, revoker, feed, cfg.JWTSecret, cfg.TokenTTL)

	repo := infraRepo.NewPortalGormRepository(db)
	resolver := portal.NewResolver(repo)
	boot := portal.NewBootstrapper(feed, resolver, repo, log)
	boot.Start(context.Background())
	defer boot.Stop()

	uploader := storage.NewS3Store(cfg.S3)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Repo:     repo,
		Auth:     authSvc,
		Boot:     boot,
		Uploader: uploader,
		Log:      log,
	})

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
