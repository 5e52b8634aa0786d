package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ppalavilli/ElavonConvergeProcessor/internal/model"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/repository"
	platformlogging "github.com/ppalavilli/ElavonConvergeProcessor/platform/logging"
	"github.com/ppalavilli/ElavonConvergeProcessor/platform/observability"
)

const (
	// declineBurstSize - сколько уведомлений об отказе рассылается на один отказ
	declineBurstSize = 100
	// maxMutationAttempts - предел повторов read-modify-write при конфликте версий
	maxMutationAttempts = 10
	// track1LengthTag - EMV тег с длиной первого трека
	track1LengthTag = "0x1F8151"
)

// ErrManagerClosed возвращается операциями после Shutdown
var ErrManagerClosed = errors.New("transaction manager is shut down")

// Dependencies - необязательные зависимости менеджера. nil поля заменяются значениями по умолчанию.
type Dependencies struct {
	Notifier DeclineNotifier
	Jobs     JobSubmitter
	Security SecurityProvider
	Metrics  MetricsRecorder
	Clock    Clock
}

// TransactionManager управляет жизненным циклом транзакций:
// симулирует ответ процессора, очищает карточные данные, сохраняет запись и уведомляет вызывающего.
// Единственный владелец записей о транзакциях в процессе.
type TransactionManager struct {
	logger   *zap.Logger
	repo     repository.TransactionRepository
	notifier DeclineNotifier
	jobs     JobSubmitter
	security SecurityProvider
	metrics  MetricsRecorder
	clock    Clock
	closed   atomic.Bool
}

// NewTransactionManager создаёт менеджер транзакций
func NewTransactionManager(logger *zap.Logger, repo repository.TransactionRepository, deps Dependencies) *TransactionManager {
	m := &TransactionManager{
		logger:   logger,
		repo:     repo,
		notifier: deps.Notifier,
		jobs:     deps.Jobs,
		security: deps.Security,
		metrics:  deps.Metrics,
		clock:    deps.Clock,
	}
	if m.notifier == nil {
		m.notifier = NewLogDeclineNotifier(logger)
	}
	if m.jobs == nil {
		m.jobs = &goJobs{}
	}
	if m.security == nil {
		m.security = disconnected{}
	}
	if m.metrics == nil {
		m.metrics = noopMetrics{}
	}
	if m.clock == nil {
		m.clock = SystemClock{}
	}
	return m
}

// ProcessTransaction обрабатывает новую транзакцию (AUTHORIZE, SALE, REFUND и т.д.)
func (m *TransactionManager) ProcessTransaction(ctx context.Context, tx model.Transaction, requestID string, listener Listener) (model.Transaction, error) {
	if m.closed.Load() {
		return model.Transaction{}, ErrManagerClosed
	}
	log := observability.L(ctx, m.logger).With(zap.String("request_id", requestID))

	if err := validateAmounts(tx.Amounts); err != nil {
		return model.Transaction{}, err
	}

	work := tx.Clone()
	now := m.clock.Now()
	if work.ID == uuid.Nil {
		work.ID = uuid.New()
	}
	if work.CreatedAt.IsZero() {
		work.CreatedAt = now
	}
	if work.UpdatedAt.IsZero() {
		work.UpdatedAt = now
	}
	log = log.With(zap.String("transaction_id", work.ID.String()))
	log.Debug("processing transaction", zap.String("action", string(work.Action)))

	m.logTrack1Length(log, work.FundingSource.EMVData)
	if card := work.FundingSource.Card; card != nil {
		log.Debug("card received",
			platformlogging.PAN("card", card.Number),
			zap.String("funding_type", string(work.FundingSource.Type)),
			zap.String("entry_mode", string(work.FundingSource.EntryMode)),
		)
	}

	var declined bool
	switch work.Action {
	case model.ActionAuthorize, model.ActionSale:
		declined = simulateAuthorization(&work)
	case model.ActionRefund:
		simulateRefund(&work)
	default:
		// статус и ответ процессора выставляет только симуляция процессора
		work.Status = model.StatusCreated
		work.ProcessorResponse = nil
	}

	sanitize(&work.FundingSource, requestID)

	stored, err := m.repo.Save(ctx, work)
	if err != nil {
		log.Error("failed to save transaction", zap.Error(err))
		return model.Transaction{}, fmt.Errorf("failed to save transaction: %w", err)
	}
	m.metrics.RecordTransaction(ctx, "process", string(stored.Status))

	if declined {
		m.scheduleDeclineBurst(log, stored.ID, requestID)
	}

	m.deliver(ctx, log, &stored, requestID, listener)

	log.Info("transaction processed",
		zap.String("action", string(stored.Action)),
		zap.String("status", string(stored.Status)),
	)
	return stored, nil
}

// CaptureTransaction переписывает суммы и переводит транзакцию в CAPTURED.
// Неизвестный ID создаёт новую запись с этим ID.
func (m *TransactionManager) CaptureTransaction(ctx context.Context, transactionID string, adjust model.AdjustTransactionRequest, requestID string, listener Listener) (model.Transaction, error) {
	return m.adjust(ctx, "capture", transactionID, adjust, requestID, listener, true)
}

// UpdateTransaction переписывает суммы без смены статуса.
// Неизвестный ID создаёт новую запись с этим ID.
func (m *TransactionManager) UpdateTransaction(ctx context.Context, transactionID string, adjust model.AdjustTransactionRequest, requestID string, listener Listener) (model.Transaction, error) {
	return m.adjust(ctx, "update", transactionID, adjust, requestID, listener, false)
}

func (m *TransactionManager) adjust(ctx context.Context, operation, transactionID string, adjust model.AdjustTransactionRequest, requestID string, listener Listener, capture bool) (model.Transaction, error) {
	if m.closed.Load() {
		return model.Transaction{}, ErrManagerClosed
	}
	log := observability.L(ctx, m.logger).With(
		zap.String("request_id", requestID),
		zap.String("transaction_id", transactionID),
	)

	id, err := parseID(transactionID)
	if err != nil {
		return model.Transaction{}, err
	}
	if err := validateAmounts(adjust.Amounts); err != nil {
		return model.Transaction{}, err
	}

	stored, err := m.mutate(ctx, log, id, func(tx *model.Transaction, _ bool) {
		tx.Amounts = adjust.Amounts.Clone()
		if capture {
			tx.Status = model.StatusCaptured
		}
		attachEMV(tx, adjust.EMVData)
	})
	if err != nil {
		return model.Transaction{}, err
	}
	m.metrics.RecordTransaction(ctx, operation, string(stored.Status))

	if listener == nil {
		log.Debug("ignoring callback as it's null")
	}
	m.deliver(ctx, log, &stored, requestID, listener)

	log.Info("transaction adjusted", zap.String("operation", operation), zap.String("status", string(stored.Status)))
	return stored, nil
}

// VoidTransaction переводит транзакцию в VOIDED.
// Неизвестный ID создаёт запись с суммами по умолчанию (order = transaction = 100).
func (m *TransactionManager) VoidTransaction(ctx context.Context, transactionID string, emvData *model.EMVData, requestID string, listener Listener) (model.Transaction, error) {
	if m.closed.Load() {
		return model.Transaction{}, ErrManagerClosed
	}
	log := observability.L(ctx, m.logger).With(
		zap.String("request_id", requestID),
		zap.String("transaction_id", transactionID),
	)

	id, err := parseID(transactionID)
	if err != nil {
		return model.Transaction{}, err
	}

	stored, err := m.mutate(ctx, log, id, func(tx *model.Transaction, found bool) {
		if !found {
			tx.Amounts = model.TransactionAmounts{
				OrderAmount:       voidDefaultAmount,
				TransactionAmount: voidDefaultAmount,
			}
		}
		tx.Status = model.StatusVoided
		attachEMV(tx, emvData)
	})
	if err != nil {
		return model.Transaction{}, err
	}
	m.metrics.RecordTransaction(ctx, "void", string(stored.Status))

	m.deliver(ctx, log, &stored, requestID, listener)

	log.Info("transaction voided")
	return stored, nil
}

// GetTransaction возвращает сохранённую транзакцию или nil, если её нет.
// Listener уведомляется в любом случае тем, что найдено.
func (m *TransactionManager) GetTransaction(ctx context.Context, transactionID string, requestID string, listener Listener) (*model.Transaction, error) {
	if m.closed.Load() {
		return nil, ErrManagerClosed
	}
	log := observability.L(ctx, m.logger).With(
		zap.String("request_id", requestID),
		zap.String("transaction_id", transactionID),
	)

	id, err := parseID(transactionID)
	if err != nil {
		return nil, err
	}

	var found *model.Transaction
	tx, err := m.repo.Get(ctx, id)
	switch {
	case err == nil:
		found = &tx
	case errors.Is(err, repository.ErrNotFound):
		log.Debug("transaction not found")
	default:
		log.Error("failed to get transaction", zap.Error(err))
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	status := "absent"
	if found != nil {
		status = string(found.Status)
	}
	m.metrics.RecordTransaction(ctx, "get", status)

	m.deliver(ctx, log, found, requestID, listener)
	return found, nil
}

// IsConnected сообщает, подключён ли провайдер security capability
func (m *TransactionManager) IsConnected() bool {
	return m.security.IsConnected()
}

type shutdowner interface {
	Shutdown(ctx context.Context) error
}

// Shutdown останавливает менеджер: новые операции отклоняются, фоновые задачи дожидаются завершения,
// провайдер security отвязывается
func (m *TransactionManager) Shutdown(ctx context.Context) error {
	if !m.closed.CompareAndSwap(false, true) {
		return nil
	}

	var errs []error
	if j, ok := m.jobs.(shutdowner); ok {
		errs = append(errs, j.Shutdown(ctx))
	}
	if s, ok := m.security.(shutdowner); ok {
		errs = append(errs, s.Shutdown(ctx))
	}
	return errors.Join(errs...)
}

// mutate выполняет read-modify-write над записью через CompareAndSwap.
// Отсутствующая запись синтезируется как {ID, CreatedAt}. При конфликте версий операция повторяется.
func (m *TransactionManager) mutate(ctx context.Context, log *zap.Logger, id uuid.UUID, apply func(tx *model.Transaction, found bool)) (model.Transaction, error) {
	for attempt := 1; attempt <= maxMutationAttempts; attempt++ {
		current, err := m.repo.Get(ctx, id)
		found := true
		switch {
		case err == nil:
		case errors.Is(err, repository.ErrNotFound):
			found = false
			current = model.Transaction{ID: id, CreatedAt: m.clock.Now()}
		default:
			log.Error("failed to get transaction", zap.Error(err))
			return model.Transaction{}, fmt.Errorf("failed to get transaction: %w", err)
		}

		expected := current.Version
		apply(&current, found)
		current.UpdatedAt = m.clock.Now()

		stored, err := m.repo.CompareAndSwap(ctx, current, expected)
		if err == nil {
			return stored, nil
		}
		if !errors.Is(err, repository.ErrConflict) {
			log.Error("failed to save transaction", zap.Error(err))
			return model.Transaction{}, fmt.Errorf("failed to save transaction: %w", err)
		}
		log.Debug("transaction version conflict, retrying", zap.Int("attempt", attempt))
	}

	return model.Transaction{}, fmt.Errorf("failed to save transaction after %d attempts: %w", maxMutationAttempts, repository.ErrConflict)
}

// deliver отправляет ответ в listener. Ошибка доставки повторяется ровно один раз с CARD_DECLINE,
// вторая ошибка только логируется. Сохранённая запись не откатывается.
func (m *TransactionManager) deliver(ctx context.Context, log *zap.Logger, tx *model.Transaction, requestID string, listener Listener) {
	if listener == nil {
		return
	}

	err := listener.OnResponse(ctx, cloneOrNil(tx), requestID, nil)
	if err == nil {
		return
	}
	log.Error("failed to deliver response", zap.Error(fmt.Errorf("%w: %v", ErrDeliveryFailure, err)))

	rerr := &model.ResponseError{
		Code:    model.ErrorCodeCardDecline,
		Message: "response delivery failed",
	}
	if err := listener.OnResponse(ctx, cloneOrNil(tx), requestID, rerr); err != nil {
		log.Error("failed to deliver decline response", zap.Error(fmt.Errorf("%w: %v", ErrDeliveryFailure, err)))
	}
}

// scheduleDeclineBurst ставит в worker pool рассылку уведомлений об отказе.
// Ответ вызывающему не ждёт этой задачи, её результат виден только в логах и метриках.
func (m *TransactionManager) scheduleDeclineBurst(log *zap.Logger, txID uuid.UUID, requestID string) {
	err := m.jobs.Submit(func(ctx context.Context) {
		now := m.clock.Now()
		events := make([]DeclinedEvent, declineBurstSize)
		for i := range events {
			events[i] = DeclinedEvent{
				EventID:       uuid.NewString(),
				EventType:     DeclinedEventType,
				OccurredAt:    now,
				TransactionID: txID.String(),
				RequestID:     requestID,
				Sequence:      i + 1,
			}
		}

		if err := m.notifier.PublishDeclined(ctx, events); err != nil {
			m.metrics.RecordDeclineNotifications(ctx, "error", len(events))
			log.Error("failed to publish decline notifications", zap.Error(err), zap.Int("count", len(events)))
			return
		}
		m.metrics.RecordDeclineNotifications(ctx, "ok", len(events))
		log.Debug("decline notifications published", zap.Int("count", len(events)))
	})
	if err != nil {
		m.metrics.RecordDeclineNotifications(context.Background(), "rejected", declineBurstSize)
		log.Warn("decline notification job rejected", zap.Error(err))
	}
}

// logTrack1Length читает длину первого трека из EMV тегов (hex) и пишет её в лог
func (m *TransactionManager) logTrack1Length(log *zap.Logger, emv *model.EMVData) {
	if emv == nil {
		return
	}
	raw, ok := emv.EMVTags[track1LengthTag]
	if !ok {
		return
	}
	length, err := strconv.ParseUint(strings.ReplaceAll(raw, " ", ""), 16, 32)
	if err != nil {
		log.Debug("invalid track 1 length tag", zap.String("value", raw), zap.Error(err))
		return
	}
	log.Debug("track 1 length returned", zap.Uint64("track1_length", length))
}

func parseID(transactionID string) (uuid.UUID, error) {
	id, err := uuid.Parse(transactionID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: transaction id %q: %v", ErrInvalidArgument, transactionID, err)
	}
	return id, nil
}

func validateAmounts(a model.TransactionAmounts) error {
	if a.OrderAmount < 0 || a.TransactionAmount < 0 {
		return fmt.Errorf("%w: amounts must not be negative", ErrInvalidArgument)
	}
	if a.TipAmount != nil && *a.TipAmount < 0 {
		return fmt.Errorf("%w: tip amount must not be negative", ErrInvalidArgument)
	}
	return nil
}

func attachEMV(tx *model.Transaction, emv *model.EMVData) {
	if emv == nil {
		return
	}
	tx.FundingSource.EMVData = emv.Clone()
}

func cloneOrNil(tx *model.Transaction) *model.Transaction {
	if tx == nil {
		return nil
	}
	c := tx.Clone()
	return &c
}
