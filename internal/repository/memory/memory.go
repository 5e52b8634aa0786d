package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ppalavilli/ElavonConvergeProcessor/internal/model"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/repository"
)

// Repository реализует TransactionRepository используя in-memory хранилище.
// Хранит глубокие копии, защищён мьютексом.
type Repository struct {
	mu           sync.RWMutex
	transactions map[uuid.UUID]model.Transaction
}

// NewRepository создаёт новый in-memory репозиторий
func NewRepository() *Repository {
	return &Repository{
		transactions: make(map[uuid.UUID]model.Transaction),
	}
}

// Get получает транзакцию по ID из памяти
func (r *Repository) Get(ctx context.Context, id uuid.UUID) (model.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tx, exists := r.transactions[id]
	if !exists {
		return model.Transaction{}, repository.ErrNotFound
	}

	return tx.Clone(), nil
}

// Save сохраняет транзакцию в памяти, версия увеличивается на единицу
func (r *Repository) Save(ctx context.Context, tx model.Transaction) (model.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := tx.Clone()
	stored.Version = r.transactions[tx.ID].Version + 1
	r.transactions[tx.ID] = stored

	return stored.Clone(), nil
}

// CompareAndSwap сохраняет транзакцию, если версия в памяти равна expectedVersion
func (r *Repository) CompareAndSwap(ctx context.Context, tx model.Transaction, expectedVersion int64) (model.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, exists := r.transactions[tx.ID]
	if !exists && expectedVersion != 0 {
		return model.Transaction{}, repository.ErrConflict
	}
	if exists && current.Version != expectedVersion {
		return model.Transaction{}, repository.ErrConflict
	}

	stored := tx.Clone()
	stored.Version = expectedVersion + 1
	r.transactions[tx.ID] = stored

	return stored.Clone(), nil
}

// Ping всегда успешен
func (r *Repository) Ping(ctx context.Context) error {
	return nil
}

// Len возвращает количество записей
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.transactions)
}
