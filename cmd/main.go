package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/ghardekho-api/config"
	"github.com/oksasatya/ghardekho-api/internal/application"
	"github.com/oksasatya/ghardekho-api/internal/container"
	"github.com/oksasatya/ghardekho-api/internal/infrastructure/memory"
	pginfra "github.com/oksasatya/ghardekho-api/internal/infrastructure/postgres"
	"github.com/oksasatya/ghardekho-api/internal/infrastructure/search"
	"github.com/oksasatya/ghardekho-api/internal/infrastructure/seed"
	"github.com/oksasatya/ghardekho-api/internal/router"
	"github.com/oksasatya/ghardekho-api/pkg/helpers"
	"github.com/oksasatya/ghardekho-api/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()

	repos, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer closeStore()

	// Redis; nil disables rate limiting
	rdb, err := helpers.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.WithError(err).Warn("redis unavailable; rate limiting disabled")
	}
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
	}

	// Elasticsearch; nil disables search
	es, err := helpers.NewESClient(cfg.ESAddrs(), cfg.ElasticsearchUser, cfg.ElasticsearchPass)
	if err != nil {
		logger.WithError(err).Warn("elasticsearch unavailable; search disabled")
		es = nil
	}

	// RabbitMQ; only needed when emails are enabled
	var pub *helpers.RabbitPublisher
	if cfg.MailEnabled() {
		pub, err = helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEmailQueue)
		if err != nil {
			logger.WithError(err).Warn("rabbitmq unavailable; emails disabled")
			pub = nil
		}
		defer pub.Close()
	}

	// Provide infra singletons to container for registry auto-wiring
	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetRepos(repos)
	container.SetRedis(rdb)
	container.SetES(es)
	container.SetRabbitPub(pub)
	container.SetJWT(helpers.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL))

	engine := router.Build()

	if es != nil {
		go reindex(search.NewPropertyIndex(es, cfg.ESPropertiesIndex, logger), repos, logger)
	}

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: engine, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}

// openStore returns the configured repositories and a close func.
func openStore(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (container.Repos, func(), error) {
	switch cfg.StoreDriver {
	case config.StorePostgres:
		pool, err := pginfra.NewPool(ctx, pginfra.PoolConfig{
			DSN:         cfg.PostgresDSN(),
			MaxConns:    cfg.DBMaxConns,
			MinConns:    cfg.DBMinConns,
			MaxConnLife: cfg.DBMaxConnLife,
		})
		if err != nil {
			return container.Repos{}, nil, err
		}
		if err := pginfra.Migrate(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
			pool.Close()
			return container.Repos{}, nil, err
		}
		container.SetPGPool(pool)
		return container.Repos{
			Users:      pginfra.NewUserRepository(pool),
			Properties: pginfra.NewPropertyRepository(pool),
			Saved:      pginfra.NewSavedPropertyRepository(pool),
		}, pool.Close, nil

	case config.StoreMemory, "":
		hash, err := helpers.HashPassword(seed.DemoPassword, cfg.BcryptCost)
		if err != nil {
			return container.Repos{}, nil, err
		}
		store := memory.NewStore()
		store.Load(seed.Demo(hash))
		users, props, saved := store.Counts()
		helpers.LogInfo(logger, "mock data created", logrus.Fields{"users": users, "properties": props, "saved_properties": saved})
		return container.Repos{
			Users:      store.Users(),
			Properties: store.Properties(),
			Saved:      store.SavedProperties(),
		}, func() {}, nil

	default:
		return container.Repos{}, nil, errors.New("unknown STORE_DRIVER " + cfg.StoreDriver)
	}
}

// reindex pushes existing listings into the search index at startup.
func reindex(idx *search.PropertyIndex, repos container.Repos, logger *logrus.Logger) {
	svc := application.NewPropertyService(repos.Properties, repos.Users, idx, nil, logger)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	n, err := svc.Reindex(ctx)
	if err != nil {
		logger.WithError(err).WithField("indexed", n).Warn("reindex properties failed")
		return
	}
	logger.WithFields(logrus.Fields{"indexed": n, "index": idx.IndexName}).Info("properties reindexed")
}
