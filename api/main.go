package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rogerio-castellano/bakery-api/internal/auth"
	"github.com/rogerio-castellano/bakery-api/internal/cache"
	"github.com/rogerio-castellano/bakery-api/internal/config"
	"github.com/rogerio-castellano/bakery-api/internal/db"
	"github.com/rogerio-castellano/bakery-api/internal/http/handlers"
	rl "github.com/rogerio-castellano/bakery-api/internal/http/rate_limiter"
	"github.com/rogerio-castellano/bakery-api/internal/http/router"
	"github.com/rogerio-castellano/bakery-api/internal/logging"
	"github.com/rogerio-castellano/bakery-api/internal/metrics"
	"github.com/rogerio-castellano/bakery-api/internal/repo"
	"github.com/sirupsen/logrus"
)

const (
	issuedTokenTTL  = 24 * time.Hour
	shutdownTimeout = 10 * time.Second
)

// @title Bakery API
// @version 1.0
// @description REST API for bakeries and their baked goods.
// @host localhost:5555
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	issueToken := flag.String("issue-token", "", "print a bearer token for this subject, signed with JWT_SECRET, and exit")
	migrateOnly := flag.Bool("migrate", false, "create or update the database tables and exit")
	seed := flag.Bool("seed", false, "insert sample bakeries and baked goods before serving")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("❌ Invalid configuration")
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	if err != nil {
		logrus.WithError(err).Fatal("❌ Could not build logger")
	}

	if *issueToken != "" {
		token, err := auth.GenerateToken([]byte(cfg.JWTSecret), *issueToken, issuedTokenTTL)
		if err != nil {
			logging.LogFatal(logger, "Could not issue token", err)
		}
		fmt.Println(token)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, closeStore, err := openStore(cfg, logger, *migrateOnly)
	if err != nil {
		logging.LogFatal(logger, "❌ Could not open store", err)
	}
	defer closeStore()

	if *migrateOnly {
		logger.Info("✅ Migrations applied")
		return
	}

	if *seed {
		if err := repo.Seed(ctx, deps.Bakeries, deps.BakedGoods); err != nil {
			logging.LogFatal(logger, "❌ Could not seed data", err)
		}
		logger.Info("Sample data inserted")
	}

	deps.Cache = openCache(ctx, cfg, logger)
	deps.Metrics = metrics.New()
	deps.Logger = logger

	opts := router.Options{
		Logger:     logger,
		Metrics:    deps.Metrics,
		TrustProxy: cfg.TrustProxy,
	}
	if cfg.RateLimitRPS > 0 {
		opts.Limiter = rl.New(cfg.RateLimitRPS, cfg.RateLimitBurst)
		go opts.Limiter.StartVisitorCleanupLoop(ctx)
	}
	if cfg.JWTSecret != "" {
		opts.JWTSecret = []byte(cfg.JWTSecret)
		logger.Info("Write endpoints require a bearer token")
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.NewRouter(handlers.New(deps), opts),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Infof("✅ Server running on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.LogFatal(logger, "Server stopped", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Received shutdown signal, draining connections...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.LogError(logger, "Graceful shutdown failed", err)
	}
}

// openStore builds the repositories for the configured store and returns a
// function releasing its connections.
func openStore(cfg *config.Config, logger *logrus.Logger, migrate bool) (handlers.Deps, func(), error) {
	if cfg.Store == config.StoreMemory {
		if migrate {
			return handlers.Deps{}, nil, errors.New("-migrate needs STORE=postgres")
		}
		logger.Warn("Using the in-memory store; data is lost on restart")
		store := repo.NewInMemoryStore()
		return handlers.Deps{
			Bakeries:   repo.NewInMemoryBakeryRepository(store),
			BakedGoods: repo.NewInMemoryBakedGoodRepository(store),
			Stats:      repo.NewInMemoryStatsRepository(store),
		}, func() {}, nil
	}

	database, err := db.Connect(cfg.DatabaseURL, logger)
	if err != nil {
		return handlers.Deps{}, nil, err
	}
	closeDB := func() {
		if err := db.Close(database); err != nil {
			logging.LogError(logger, "Could not close database", err)
		}
	}

	if cfg.AutoMigrate || migrate {
		if err := db.Migrate(database); err != nil {
			closeDB()
			return handlers.Deps{}, nil, err
		}
	}

	return handlers.Deps{
		Bakeries:   repo.NewGormBakeryRepository(database),
		BakedGoods: repo.NewGormBakedGoodRepository(database),
		Stats:      repo.NewGormStatsRepository(database),
		Ping:       db.Pinger(database),
	}, closeDB, nil
}

// openCache returns a Redis cache when REDIS_ADDR is set and reachable, and a
// no-op cache otherwise. The Redis client is closed when ctx ends.
func openCache(ctx context.Context, cfg *config.Config, logger *logrus.Logger) cache.Cache {
	if cfg.RedisAddr == "" {
		return cache.Nop{}
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rdb, err := cache.Connect(pingCtx, cfg.RedisAddr)
	if err != nil {
		logger.WithError(err).Warn("Response cache disabled")
		return cache.Nop{}
	}
	go func() {
		<-ctx.Done()
		rdb.Close()
	}()

	logger.WithField("ttl", cfg.CacheTTL).Info("Response cache enabled")
	return cache.NewRedisCache(rdb, cfg.CacheTTL)
}
