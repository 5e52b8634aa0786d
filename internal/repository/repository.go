package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/ppalavilli/ElavonConvergeProcessor/internal/model"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TransactionRepository --dir=. --output=./mocks --outpkg=mocks

// TransactionRepository определяет интерфейс хранилища транзакций.
// Service слой зависит от этого интерфейса, а не от конкретной реализации.
// Записи пересекают границу хранилища только копиями: вызывающий не может
// изменить сохранённую запись через указатели.
type TransactionRepository interface {
	// Get получает транзакцию по ID.
	// Возвращает ErrNotFound, если транзакции нет.
	Get(ctx context.Context, id uuid.UUID) (model.Transaction, error)

	// Save сохраняет транзакцию (last write wins) и увеличивает Version.
	// Возвращает сохранённую запись с новой версией.
	Save(ctx context.Context, tx model.Transaction) (model.Transaction, error)

	// CompareAndSwap сохраняет транзакцию, только если текущая версия записи равна expectedVersion.
	// expectedVersion == 0 означает "записи ещё нет". При несовпадении возвращает ErrConflict.
	CompareAndSwap(ctx context.Context, tx model.Transaction, expectedVersion int64) (model.Transaction, error)

	// Ping проверяет доступность хранилища (readiness)
	Ping(ctx context.Context) error
}

var (
	// ErrNotFound возвращается, когда транзакция не найдена в хранилище
	ErrNotFound = errors.New("transaction not found")
	// ErrConflict возвращается CompareAndSwap, если запись изменилась
	ErrConflict = errors.New("transaction version conflict")
)
