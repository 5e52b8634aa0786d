package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ppalavilli/ElavonConvergeProcessor/internal/model"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/repository"
)

// Repository реализует TransactionRepository используя PostgreSQL.
// Транзакция хранится jsonb документом, статус и версия вынесены в колонки.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository создаёт новый PostgreSQL репозиторий
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{
		pool: pool,
	}
}

// Get получает транзакцию по ID
func (r *Repository) Get(ctx context.Context, id uuid.UUID) (model.Transaction, error) {
	var (
		document []byte
		version  int64
	)
	err := r.pool.QueryRow(ctx,
		`SELECT document, version
		 FROM transactions
		 WHERE id = $1`,
		id.String()).Scan(&document, &version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Transaction{}, repository.ErrNotFound
		}
		return model.Transaction{}, err
	}

	return decode(document, version)
}

// Save сохраняет транзакцию (upsert), версия увеличивается на единицу
func (r *Repository) Save(ctx context.Context, tx model.Transaction) (model.Transaction, error) {
	document, err := encode(tx)
	if err != nil {
		return model.Transaction{}, err
	}

	var version int64
	err = r.pool.QueryRow(ctx,
		`INSERT INTO transactions (id, action, status, version, document, created_at, updated_at)
		 VALUES ($1, $2, $3, 1, $4, $5, $6)
		 ON CONFLICT (id) DO UPDATE SET
		   action = EXCLUDED.action,
		   status = EXCLUDED.status,
		   version = transactions.version + 1,
		   document = EXCLUDED.document,
		   updated_at = EXCLUDED.updated_at
		 RETURNING version`,
		tx.ID.String(), string(tx.Action), string(tx.Status), document, timeOrNow(tx.CreatedAt), timeOrNow(tx.UpdatedAt)).Scan(&version)
	if err != nil {
		return model.Transaction{}, err
	}

	return stored(tx, version), nil
}

// CompareAndSwap сохраняет транзакцию, если версия строки равна expectedVersion.
// expectedVersion == 0 вставляет новую строку и конфликтует, если она уже есть.
func (r *Repository) CompareAndSwap(ctx context.Context, tx model.Transaction, expectedVersion int64) (model.Transaction, error) {
	document, err := encode(tx)
	if err != nil {
		return model.Transaction{}, err
	}

	var version int64
	if expectedVersion == 0 {
		err = r.pool.QueryRow(ctx,
			`INSERT INTO transactions (id, action, status, version, document, created_at, updated_at)
			 VALUES ($1, $2, $3, 1, $4, $5, $6)
			 ON CONFLICT (id) DO NOTHING
			 RETURNING version`,
			tx.ID.String(), string(tx.Action), string(tx.Status), document, timeOrNow(tx.CreatedAt), timeOrNow(tx.UpdatedAt)).Scan(&version)
	} else {
		err = r.pool.QueryRow(ctx,
			`UPDATE transactions SET
			   action = $2,
			   status = $3,
			   version = version + 1,
			   document = $4,
			   updated_at = $5
			 WHERE id = $1 AND version = $6
			 RETURNING version`,
			tx.ID.String(), string(tx.Action), string(tx.Status), document, timeOrNow(tx.UpdatedAt), expectedVersion).Scan(&version)
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Transaction{}, repository.ErrConflict
		}
		return model.Transaction{}, err
	}

	return stored(tx, version), nil
}

// Ping проверяет соединение с PostgreSQL
func (r *Repository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func encode(tx model.Transaction) ([]byte, error) {
	// версия живёт в колонке, в документе её нет
	tx.Version = 0
	document, err := json.Marshal(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to encode transaction: %w", err)
	}
	return document, nil
}

func decode(document []byte, version int64) (model.Transaction, error) {
	var tx model.Transaction
	if err := json.Unmarshal(document, &tx); err != nil {
		return model.Transaction{}, fmt.Errorf("failed to decode transaction: %w", err)
	}
	tx.Version = version
	return tx, nil
}

func stored(tx model.Transaction, version int64) model.Transaction {
	out := tx.Clone()
	out.Version = version
	return out
}

func timeOrNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t
}
