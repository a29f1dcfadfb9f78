package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cydxin/burnroom"
	"github.com/cydxin/burnroom/config"
	"github.com/cydxin/burnroom/middleware"
	"github.com/cydxin/burnroom/service"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	var logger zerolog.Logger
	if cfg.IsDevelopment() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().
			Timestamp().
			Logger()
	} else {
		gin.SetMode(gin.ReleaseMode)
		logger = zerolog.New(os.Stdout).
			With().
			Timestamp().
			Logger()
	}

	opts := []burnroom.Option{
		burnroom.WithLogger(logger),
		burnroom.WithLimits(cfg.Limits),
		burnroom.WithSchedulerIntervals(cfg.SweepInterval, cfg.PresenceSweepInterval),
		burnroom.WithGlobalAdmins(cfg.GlobalAdmins...),
		burnroom.WithInviteBaseURL(cfg.InviteBaseURL),
	}
	if cfg.MediaDir != "" {
		opts = append(opts, burnroom.WithMediaReleaser(service.DirMediaReleaser{Dir: cfg.MediaDir, Log: logger}))
	}

	// 导出归档（可选）
	if cfg.MySQLDSN != "" {
		db, err := gorm.Open(mysql.Open(cfg.MySQLDSN), &gorm.Config{})
		if err != nil {
			logger.Fatal().Err(err).Msg("mysql connection failed")
		}
		opts = append(opts, burnroom.WithDB(db))
		logger.Info().Msg("connected to MySQL")
	}

	// 邀请 token（可选）
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := rdb.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			logger.Fatal().Err(err).Msg("redis connection failed")
		}
		defer rdb.Close()
		opts = append(opts, burnroom.WithRDB(rdb))
		logger.Info().Msg("connected to Redis")
	}

	engine := burnroom.NewEngine(opts...)
	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	engine.Start(ctx)

	if cfg.ArchiveRetention > 0 {
		if _, err := engine.PruneArchives(cfg.ArchiveRetention); err != nil {
			logger.Warn().Err(err).Msg("prune archives failed")
		}
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.GinLogger(logger))
	engine.RegisterRoutes(r)

	srv := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		logger.Info().
			Str("port", cfg.Port).
			Str("env", cfg.Env).
			Msg("starting burnroom server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	engine.Stop()
	stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server forced to shutdown")
	}
	logger.Info().Msg("server stopped")
}
