package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" //для goose миграций
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ppalavilli/ElavonConvergeProcessor/internal/config"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/repository"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/repository/memory"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/repository/postgres"
	redisrepo "github.com/ppalavilli/ElavonConvergeProcessor/internal/repository/redis"
	platformshutdown "github.com/ppalavilli/ElavonConvergeProcessor/platform/shutdown"
)

const connectTimeout = 5 * time.Second

// buildStore создаёт хранилище по STORE_BACKEND. closer закрывает соединения хранилища.
func buildStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (repository.TransactionRepository, platformshutdown.Func, error) {
	switch cfg.StoreBackend {
	case config.StoreRedis:
		return buildRedisStore(ctx, cfg, logger)
	case config.StorePostgres:
		return buildPostgresStore(ctx, cfg, logger)
	default:
		logger.Info("Using in-memory transaction store")
		return memory.NewRepository(), func(context.Context) error { return nil }, nil
	}
}

func buildRedisStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (repository.TransactionRepository, platformshutdown.Func, error) {
	logger.Info("Connecting to Redis", zap.String("addr", cfg.RedisAddr))
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("redis ping: %w", err)
	}
	logger.Info("Redis connection established")

	return redisrepo.NewRepository(client, cfg.RedisTTL, logger), platformshutdown.Close(client), nil
}

func buildPostgresStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (repository.TransactionRepository, platformshutdown.Func, error) {
	logger.Info("Connecting to PostgreSQL")
	pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("postgres pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("postgres ping: %w", err)
	}
	logger.Info("PostgreSQL connection established")

	if err := migrate(ctx, cfg, logger); err != nil {
		pool.Close()
		return nil, nil, err
	}

	return postgres.NewRepository(pool), platformshutdown.ClosePool(pool), nil
}

// migrate накатывает goose миграции из MIGRATIONS_DIR (относительный путь - от рабочей директории)
func migrate(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	dir, err := filepath.Abs(cfg.MigrationsDir)
	if err != nil {
		return fmt.Errorf("migrations dir: %w", err)
	}

	logger.Info("Applying database migrations", zap.String("dir", dir))
	db, err := goose.OpenDBWithDriver("pgx", cfg.PostgresDSN)
	if err != nil {
		return fmt.Errorf("open migrations db: %w", err)
	}
	defer db.Close()

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	logger.Info("Database migrations applied successfully")
	return nil
}
