package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ppalavilli/ElavonConvergeProcessor/internal/model"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/repository"
)

// saveAttempts - сколько раз Save повторяет WATCH транзакцию при конкурентной записи
const saveAttempts = 5

// Repository реализует TransactionRepository поверх Redis.
// Каждая транзакция хранится JSON документом под ключом transaction:<id>,
// CAS реализован через WATCH/MULTI.
type Repository struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRepository создаёт Redis репозиторий. ttl == 0 означает хранение без срока.
func NewRepository(client *redis.Client, ttl time.Duration, logger *zap.Logger) *Repository {
	return &Repository{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func transactionKey(id uuid.UUID) string {
	return fmt.Sprintf("transaction:%s", id)
}

// Get получает транзакцию по ID
func (r *Repository) Get(ctx context.Context, id uuid.UUID) (model.Transaction, error) {
	tx, err := get(ctx, r.client, transactionKey(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			r.logger.Debug("transaction not found in redis", zap.String("transaction_id", id.String()))
			return model.Transaction{}, err
		}
		r.logger.Error("failed to get transaction from redis",
			zap.Error(err),
			zap.String("transaction_id", id.String()),
		)
		return model.Transaction{}, fmt.Errorf("failed to get transaction: %w", err)
	}
	return tx, nil
}

// Save сохраняет транзакцию с увеличением версии (last write wins).
// При конкурентной записи того же ключа WATCH повторяется.
func (r *Repository) Save(ctx context.Context, tx model.Transaction) (model.Transaction, error) {
	key := transactionKey(tx.ID)

	var stored model.Transaction
	for attempt := 0; attempt < saveAttempts; attempt++ {
		err := r.client.Watch(ctx, func(rtx *redis.Tx) error {
			var current int64
			existing, err := get(ctx, rtx, key)
			switch {
			case err == nil:
				current = existing.Version
			case !errors.Is(err, repository.ErrNotFound):
				return err
			}

			stored, err = r.write(ctx, rtx, key, tx, current)
			return err
		}, key)
		if err == nil {
			return stored, nil
		}
		if !errors.Is(err, redis.TxFailedErr) {
			r.logger.Error("failed to save transaction to redis",
				zap.Error(err),
				zap.String("transaction_id", tx.ID.String()),
			)
			return model.Transaction{}, fmt.Errorf("failed to save transaction: %w", err)
		}
	}

	return model.Transaction{}, fmt.Errorf("failed to save transaction after %d attempts: %w", saveAttempts, repository.ErrConflict)
}

// CompareAndSwap сохраняет транзакцию, если версия в Redis равна expectedVersion
func (r *Repository) CompareAndSwap(ctx context.Context, tx model.Transaction, expectedVersion int64) (model.Transaction, error) {
	key := transactionKey(tx.ID)

	var stored model.Transaction
	err := r.client.Watch(ctx, func(rtx *redis.Tx) error {
		existing, err := get(ctx, rtx, key)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			if expectedVersion != 0 {
				return repository.ErrConflict
			}
		case err != nil:
			return err
		case existing.Version != expectedVersion:
			return repository.ErrConflict
		}

		stored, err = r.write(ctx, rtx, key, tx, expectedVersion)
		return err
	}, key)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) || errors.Is(err, redis.TxFailedErr) {
			return model.Transaction{}, repository.ErrConflict
		}
		r.logger.Error("failed to compare-and-swap transaction in redis",
			zap.Error(err),
			zap.String("transaction_id", tx.ID.String()),
		)
		return model.Transaction{}, fmt.Errorf("failed to compare-and-swap transaction: %w", err)
	}

	return stored, nil
}

// Ping проверяет соединение с Redis
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// write выполняет MULTI/EXEC с новой версией документа
func (r *Repository) write(ctx context.Context, rtx *redis.Tx, key string, tx model.Transaction, current int64) (model.Transaction, error) {
	stored := tx.Clone()
	stored.Version = current + 1

	data, err := json.Marshal(stored)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to encode transaction: %w", err)
	}

	_, err = rtx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, key, data, r.ttl)
		return nil
	})
	if err != nil {
		return model.Transaction{}, err
	}

	return stored, nil
}

// getter - общая часть *redis.Client и *redis.Tx
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// get читает документ из Redis (клиент или WATCH транзакция)
func get(ctx context.Context, c getter, key string) (model.Transaction, error) {
	data, err := c.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return model.Transaction{}, repository.ErrNotFound
		}
		return model.Transaction{}, err
	}

	var tx model.Transaction
	if err := json.Unmarshal(data, &tx); err != nil {
		return model.Transaction{}, fmt.Errorf("failed to decode transaction: %w", err)
	}
	return tx, nil
}
