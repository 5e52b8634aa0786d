package service

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ppalavilli/ElavonConvergeProcessor/internal/model"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/repository"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/repository/memory"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/repository/mocks"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type listenerCall struct {
	tx        *model.Transaction
	requestID string
	rerr      *model.ResponseError
}

// recordingListener записывает вызовы; первые fail вызовов возвращают ошибку
type recordingListener struct {
	mu    sync.Mutex
	calls []listenerCall
	fail  int
}

func (l *recordingListener) OnResponse(_ context.Context, tx *model.Transaction, requestID string, rerr *model.ResponseError) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, listenerCall{tx: tx, requestID: requestID, rerr: rerr})
	if len(l.calls) <= l.fail {
		return errors.New("listener is gone")
	}
	return nil
}

func (l *recordingListener) Calls() []listenerCall {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]listenerCall, len(l.calls))
	copy(out, l.calls)
	return out
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []DeclinedEvent
	err    error
}

func (n *recordingNotifier) PublishDeclined(_ context.Context, events []DeclinedEvent) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, events...)
	return n.err
}

func (n *recordingNotifier) Count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.events)
}

type recordingMetrics struct {
	mu       sync.Mutex
	declines map[string]int
}

func (m *recordingMetrics) RecordTransaction(context.Context, string, string) {}

func (m *recordingMetrics) RecordDeclineNotifications(_ context.Context, result string, count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.declines == nil {
		m.declines = make(map[string]int)
	}
	m.declines[result] += count
}

func (m *recordingMetrics) Declines(result string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.declines[result]
}

type fakeSecurity struct {
	connected bool
	shutdown  bool
}

func (s *fakeSecurity) IsConnected() bool { return s.connected }

func (s *fakeSecurity) Shutdown(context.Context) error {
	s.shutdown = true
	return nil
}

type rejectingJobs struct{}

func (rejectingJobs) Submit(func(ctx context.Context)) error { return errors.New("queue closed") }

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newManager(t *testing.T, notifier DeclineNotifier) (*TransactionManager, *memory.Repository) {
	t.Helper()
	repo := memory.NewRepository()
	m := NewTransactionManager(zap.NewNop(), repo, Dependencies{
		Notifier: notifier,
		Clock:    fixedClock{now: testNow},
	})
	return m, repo
}

func cardTx(action model.TransactionAction, amount int64) model.Transaction {
	return model.Transaction{
		Action: action,
		FundingSource: model.FundingSource{
			Type:      model.FundingSourceCreditDebit,
			EntryMode: model.EntryModeKeyed,
			Card: &model.Card{
				Number:          "4111111111111111",
				Track1Data:      "%B4111111111111111^DOE/JOHN^2712?",
				Track2Data:      ";4111111111111111=2712?",
				Track3Data:      "track3",
				ExpirationMonth: 7,
				ExpirationYear:  2027,
				Encrypted:       true,
			},
		},
		Amounts: model.TransactionAmounts{Currency: "USD", OrderAmount: amount, TransactionAmount: amount},
	}
}

func TestTransactionManager_ProcessTransaction_DecisionTable(t *testing.T) {
	ctx := context.Background()

	t.Run("normal amount sale is captured in full", func(t *testing.T) {
		m, _ := newManager(t, nil)
		listener := &recordingListener{}

		got, err := m.ProcessTransaction(ctx, cardTx(model.ActionSale, 1000), "req-1", listener)

		require.NoError(t, err)
		require.Equal(t, model.StatusCaptured, got.Status)
		require.NotNil(t, got.ProcessorResponse)
		require.Equal(t, int64(1000), got.ProcessorResponse.ApprovedAmount)
		require.Equal(t, "Approved", got.ProcessorResponse.StatusMessage)
		require.Equal(t, "123456", got.ProcessorResponse.ApprovalCode)
		require.Equal(t, model.ProcessorStatusSuccessful, got.ProcessorResponse.Status)
		require.Equal(t, model.ProcessorChasePaymentech, got.ProcessorResponse.Acquirer)
		require.Equal(t, model.ProcessorCreditcall, got.ProcessorResponse.Processor)
		require.Equal(t, got.ID.String(), got.ProcessorResponse.TransactionID)
		require.Nil(t, got.ProcessorResponse.RemainingBalance)

		calls := listener.Calls()
		require.Len(t, calls, 1)
		require.Equal(t, "req-1", calls[0].requestID)
		require.Nil(t, calls[0].rerr)
		require.Equal(t, got.ID, calls[0].tx.ID)
	})

	t.Run("normal amount authorize is authorized", func(t *testing.T) {
		m, _ := newManager(t, nil)

		got, err := m.ProcessTransaction(ctx, cardTx(model.ActionAuthorize, 1234), "req-2", nil)

		require.NoError(t, err)
		require.Equal(t, model.StatusAuthorized, got.Status)
		require.Equal(t, int64(1234), got.ProcessorResponse.ApprovedAmount)
	})

	t.Run("555 is partially approved", func(t *testing.T) {
		m, _ := newManager(t, nil)

		sale, err := m.ProcessTransaction(ctx, cardTx(model.ActionSale, 555), "req-3", nil)
		require.NoError(t, err)
		require.Equal(t, model.StatusCaptured, sale.Status)
		require.Equal(t, int64(100), sale.ProcessorResponse.ApprovedAmount)
		require.Equal(t, int64(100), sale.Amounts.TransactionAmount)
		require.Equal(t, int64(100), sale.Amounts.OrderAmount)
		require.Equal(t, "Partially Approved", sale.ProcessorResponse.StatusMessage)

		auth, err := m.ProcessTransaction(ctx, cardTx(model.ActionAuthorize, 555), "req-4", nil)
		require.NoError(t, err)
		require.Equal(t, model.StatusAuthorized, auth.Status)
	})

	t.Run("666 is declined and emits exactly 100 notifications", func(t *testing.T) {
		notifier := &recordingNotifier{}
		m, _ := newManager(t, notifier)

		got, err := m.ProcessTransaction(ctx, cardTx(model.ActionSale, 666), "req-5", nil)

		require.NoError(t, err)
		require.Equal(t, model.StatusDeclined, got.Status)
		require.Equal(t, int64(0), got.ProcessorResponse.ApprovedAmount)
		require.Equal(t, "9999", got.ProcessorResponse.StatusCode)
		require.Equal(t, map[string]string{"0x8A": "3531"}, got.ProcessorResponse.EMVTags)

		require.Eventually(t, func() bool { return notifier.Count() == declineBurstSize }, 2*time.Second, 10*time.Millisecond)
		time.Sleep(20 * time.Millisecond)
		require.Equal(t, declineBurstSize, notifier.Count())

		notifier.mu.Lock()
		defer notifier.mu.Unlock()
		for i, e := range notifier.events {
			require.Equal(t, DeclinedEventType, e.EventType)
			require.Equal(t, got.ID.String(), e.TransactionID)
			require.Equal(t, i+1, e.Sequence)
		}
	})

	t.Run("777 carries remaining balance", func(t *testing.T) {
		m, _ := newManager(t, nil)

		got, err := m.ProcessTransaction(ctx, cardTx(model.ActionSale, 777), "req-6", nil)

		require.NoError(t, err)
		require.Equal(t, model.StatusCaptured, got.Status)
		require.Equal(t, int64(777), got.ProcessorResponse.ApprovedAmount)
		require.NotNil(t, got.ProcessorResponse.RemainingBalance)
		require.Equal(t, int64(200), *got.ProcessorResponse.RemainingBalance)
	})

	t.Run("refund is approved for fixed amount", func(t *testing.T) {
		m, _ := newManager(t, nil)

		got, err := m.ProcessTransaction(ctx, cardTx(model.ActionRefund, 5000), "req-7", nil)

		require.NoError(t, err)
		require.Equal(t, model.StatusRefunded, got.Status)
		require.Equal(t, int64(100), got.Amounts.TransactionAmount)
		require.Equal(t, int64(100), got.Amounts.OrderAmount)
		require.Equal(t, int64(100), got.ProcessorResponse.ApprovedAmount)
		require.Equal(t, "Successful", got.ProcessorResponse.StatusMessage)
		require.Equal(t, model.ProcessorRede, got.ProcessorResponse.Acquirer)
		require.Equal(t, model.ProcessorRede, got.ProcessorResponse.Processor)
	})

	t.Run("other actions get no processor response", func(t *testing.T) {
		m, _ := newManager(t, nil)
		tx := cardTx(model.ActionVerify, 1000)
		tx.Status = model.StatusCreated

		got, err := m.ProcessTransaction(ctx, tx, "req-8", nil)

		require.NoError(t, err)
		require.Nil(t, got.ProcessorResponse)
		require.Equal(t, model.StatusCreated, got.Status)
	})

	t.Run("other actions cannot carry their own outcome", func(t *testing.T) {
		m, repo := newManager(t, nil)
		tx := cardTx(model.ActionVerify, 1000)
		tx.Status = model.StatusCaptured
		tx.ProcessorResponse = &model.ProcessorResponse{
			ApprovalCode:   "999999",
			Status:         model.ProcessorStatusSuccessful,
			ApprovedAmount: 1000,
		}

		got, err := m.ProcessTransaction(ctx, tx, "req-9", nil)
		require.NoError(t, err)
		require.Nil(t, got.ProcessorResponse)
		require.Equal(t, model.StatusCreated, got.Status)

		stored, err := repo.Get(ctx, got.ID)
		require.NoError(t, err)
		require.Nil(t, stored.ProcessorResponse)
		require.Equal(t, model.StatusCreated, stored.Status)
	})
}

func TestTransactionManager_ProcessTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("card data is redacted before storing", func(t *testing.T) {
		m, repo := newManager(t, nil)

		got, err := m.ProcessTransaction(ctx, cardTx(model.ActionSale, 1000), "req-hash", nil)
		require.NoError(t, err)

		stored, err := repo.Get(ctx, got.ID)
		require.NoError(t, err)

		card := stored.FundingSource.Card
		require.Empty(t, card.Number)
		require.Empty(t, card.Track1Data)
		require.Empty(t, card.Track2Data)
		require.Empty(t, card.Track3Data)
		require.False(t, card.Encrypted)
		require.Equal(t, 12, card.ExpirationMonth)
		require.Equal(t, 2020, card.ExpirationYear)
		require.Equal(t, fmt.Sprintf("%X", sha256.Sum256([]byte("req-hash"))), card.NumberHashed)
	})

	t.Run("gift card data is redacted too", func(t *testing.T) {
		m, _ := newManager(t, nil)
		tx := cardTx(model.ActionSale, 1000)
		tx.FundingSource.Type = model.FundingSourceGiftCard

		got, err := m.ProcessTransaction(ctx, tx, "req-gift", nil)

		require.NoError(t, err)
		require.Empty(t, got.FundingSource.Card.Number)
	})

	t.Run("caller transaction is not mutated", func(t *testing.T) {
		m, _ := newManager(t, nil)
		tx := cardTx(model.ActionSale, 555)
		before := tx.Clone()

		_, err := m.ProcessTransaction(ctx, tx, "req-9", nil)

		require.NoError(t, err)
		require.Equal(t, before, tx)
	})

	t.Run("id and timestamps are assigned when missing", func(t *testing.T) {
		m, _ := newManager(t, nil)

		got, err := m.ProcessTransaction(ctx, cardTx(model.ActionSale, 1000), "req-10", nil)

		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, got.ID)
		require.Equal(t, testNow, got.CreatedAt)
		require.Equal(t, testNow, got.UpdatedAt)
	})

	t.Run("supplied id and timestamps are kept", func(t *testing.T) {
		m, _ := newManager(t, nil)
		tx := cardTx(model.ActionSale, 1000)
		tx.ID = uuid.New()
		tx.CreatedAt = testNow.Add(-time.Hour)
		tx.UpdatedAt = testNow.Add(-time.Minute)

		got, err := m.ProcessTransaction(ctx, tx, "req-11", nil)

		require.NoError(t, err)
		require.Equal(t, tx.ID, got.ID)
		require.Equal(t, tx.CreatedAt, got.CreatedAt)
		require.Equal(t, tx.UpdatedAt, got.UpdatedAt)
	})

	t.Run("negative amount is rejected before storing", func(t *testing.T) {
		mockRepo := mocks.NewTransactionRepository(t)
		m := NewTransactionManager(zap.NewNop(), mockRepo, Dependencies{})
		listener := &recordingListener{}

		_, err := m.ProcessTransaction(ctx, cardTx(model.ActionSale, -1), "req-12", listener)

		require.ErrorIs(t, err, ErrInvalidArgument)
		require.Empty(t, listener.Calls())
		mockRepo.AssertNotCalled(t, "Save")
	})

	t.Run("store error is returned and listener is not called", func(t *testing.T) {
		mockRepo := mocks.NewTransactionRepository(t)
		m := NewTransactionManager(zap.NewNop(), mockRepo, Dependencies{})
		listener := &recordingListener{}

		mockRepo.On("Save", ctx, mock.Anything).Return(model.Transaction{}, errors.New("redis down")).Once()

		_, err := m.ProcessTransaction(ctx, cardTx(model.ActionSale, 1000), "req-13", listener)

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to save transaction")
		require.Empty(t, listener.Calls())
	})

	t.Run("track 1 length tag is accepted", func(t *testing.T) {
		m, _ := newManager(t, nil)
		tx := cardTx(model.ActionSale, 1000)
		tx.FundingSource.EMVData = &model.EMVData{EMVTags: map[string]string{"0x1F8151": "4C"}}

		_, err := m.ProcessTransaction(ctx, tx, "req-14", nil)
		require.NoError(t, err)

		tx.FundingSource.EMVData.EMVTags["0x1F8151"] = "not-hex"
		_, err = m.ProcessTransaction(ctx, tx, "req-15", nil)
		require.NoError(t, err)
	})

	t.Run("rejected decline job is counted", func(t *testing.T) {
		metrics := &recordingMetrics{}
		m := NewTransactionManager(zap.NewNop(), memory.NewRepository(), Dependencies{
			Jobs:    rejectingJobs{},
			Metrics: metrics,
		})

		got, err := m.ProcessTransaction(ctx, cardTx(model.ActionSale, 666), "req-16", nil)

		require.NoError(t, err)
		require.Equal(t, model.StatusDeclined, got.Status)
		require.Equal(t, declineBurstSize, metrics.Declines("rejected"))
	})

	t.Run("failed decline publish is counted", func(t *testing.T) {
		metrics := &recordingMetrics{}
		notifier := &recordingNotifier{err: errors.New("broker unavailable")}
		m := NewTransactionManager(zap.NewNop(), memory.NewRepository(), Dependencies{
			Notifier: notifier,
			Metrics:  metrics,
		})

		_, err := m.ProcessTransaction(ctx, cardTx(model.ActionSale, 666), "req-17", nil)

		require.NoError(t, err)
		require.Eventually(t, func() bool { return metrics.Declines("error") == declineBurstSize }, 2*time.Second, 10*time.Millisecond)
	})
}

func TestTransactionManager_Delivery(t *testing.T) {
	ctx := context.Background()

	t.Run("failed delivery is retried once with card decline", func(t *testing.T) {
		m, repo := newManager(t, nil)
		listener := &recordingListener{fail: 1}

		got, err := m.ProcessTransaction(ctx, cardTx(model.ActionSale, 1000), "req-20", listener)
		require.NoError(t, err)

		calls := listener.Calls()
		require.Len(t, calls, 2)
		require.Nil(t, calls[0].rerr)
		require.NotNil(t, calls[1].rerr)
		require.Equal(t, model.ErrorCodeCardDecline, calls[1].rerr.Code)

		// запись остаётся сохранённой
		stored, err := repo.Get(ctx, got.ID)
		require.NoError(t, err)
		require.Equal(t, model.StatusCaptured, stored.Status)
	})

	t.Run("second delivery failure is swallowed", func(t *testing.T) {
		m, _ := newManager(t, nil)
		listener := &recordingListener{fail: 2}

		_, err := m.ProcessTransaction(ctx, cardTx(model.ActionSale, 1000), "req-21", listener)

		require.NoError(t, err)
		require.Len(t, listener.Calls(), 2)
	})

	t.Run("retry applies to void as well", func(t *testing.T) {
		m, _ := newManager(t, nil)
		listener := &recordingListener{fail: 1}

		_, err := m.VoidTransaction(ctx, uuid.NewString(), nil, "req-22", listener)

		require.NoError(t, err)
		calls := listener.Calls()
		require.Len(t, calls, 2)
		require.Equal(t, model.ErrorCodeCardDecline, calls[1].rerr.Code)
	})

	t.Run("listener receives a copy", func(t *testing.T) {
		m, repo := newManager(t, nil)
		var id uuid.UUID
		listener := ListenerFunc(func(_ context.Context, tx *model.Transaction, _ string, _ *model.ResponseError) error {
			id = tx.ID
			tx.Status = model.StatusVoided
			return nil
		})

		_, err := m.ProcessTransaction(ctx, cardTx(model.ActionSale, 1000), "req-23", listener)
		require.NoError(t, err)

		stored, err := repo.Get(ctx, id)
		require.NoError(t, err)
		require.Equal(t, model.StatusCaptured, stored.Status)
	})
}

func TestTransactionManager_CaptureUpdateVoid(t *testing.T) {
	ctx := context.Background()
	adjust := model.AdjustTransactionRequest{
		Amounts: model.TransactionAmounts{Currency: "USD", OrderAmount: 1500, TransactionAmount: 1500, TipAmount: model.Int64(300)},
	}

	t.Run("capture of unknown id synthesizes a record with that id", func(t *testing.T) {
		m, repo := newManager(t, nil)
		id := uuid.NewString()

		got, err := m.CaptureTransaction(ctx, id, adjust, "req-30", nil)

		require.NoError(t, err)
		require.Equal(t, id, got.ID.String())
		require.Equal(t, model.StatusCaptured, got.Status)
		require.Equal(t, adjust.Amounts, got.Amounts)
		require.Equal(t, testNow, got.CreatedAt)
		require.Equal(t, testNow, got.UpdatedAt)
		require.Equal(t, 1, repo.Len())
	})

	t.Run("capture of existing authorization keeps the rest of the record", func(t *testing.T) {
		m, _ := newManager(t, nil)
		auth, err := m.ProcessTransaction(ctx, cardTx(model.ActionAuthorize, 1000), "req-31", nil)
		require.NoError(t, err)

		got, err := m.CaptureTransaction(ctx, auth.ID.String(), adjust, "req-32", nil)

		require.NoError(t, err)
		require.Equal(t, auth.ID, got.ID)
		require.Equal(t, model.StatusCaptured, got.Status)
		require.Equal(t, int64(1500), got.Amounts.TransactionAmount)
		require.Equal(t, auth.ProcessorResponse, got.ProcessorResponse)
		require.Equal(t, auth.Version+1, got.Version)
	})

	t.Run("capture attaches emv data", func(t *testing.T) {
		m, _ := newManager(t, nil)
		withEMV := adjust
		withEMV.EMVData = &model.EMVData{EMVTags: map[string]string{"0x9F26": "AABB"}}

		got, err := m.CaptureTransaction(ctx, uuid.NewString(), withEMV, "req-33", nil)

		require.NoError(t, err)
		require.Equal(t, "AABB", got.FundingSource.EMVData.EMVTags["0x9F26"])
	})

	t.Run("update does not change status", func(t *testing.T) {
		m, _ := newManager(t, nil)
		auth, err := m.ProcessTransaction(ctx, cardTx(model.ActionAuthorize, 1000), "req-34", nil)
		require.NoError(t, err)

		got, err := m.UpdateTransaction(ctx, auth.ID.String(), adjust, "req-35", &recordingListener{})

		require.NoError(t, err)
		require.Equal(t, model.StatusAuthorized, got.Status)
		require.Equal(t, int64(1500), got.Amounts.TransactionAmount)
	})

	t.Run("update of unknown id synthesizes a record", func(t *testing.T) {
		m, _ := newManager(t, nil)
		id := uuid.NewString()

		got, err := m.UpdateTransaction(ctx, id, adjust, "req-36", nil)

		require.NoError(t, err)
		require.Equal(t, id, got.ID.String())
		require.Empty(t, got.Status)
	})

	t.Run("void of unknown id uses default amounts", func(t *testing.T) {
		m, _ := newManager(t, nil)
		id := uuid.NewString()
		listener := &recordingListener{}

		got, err := m.VoidTransaction(ctx, id, nil, "req-37", listener)

		require.NoError(t, err)
		require.Equal(t, id, got.ID.String())
		require.Equal(t, model.StatusVoided, got.Status)
		require.Equal(t, int64(100), got.Amounts.OrderAmount)
		require.Equal(t, int64(100), got.Amounts.TransactionAmount)
		require.Len(t, listener.Calls(), 1)
	})

	t.Run("void of existing keeps amounts", func(t *testing.T) {
		m, _ := newManager(t, nil)
		sale, err := m.ProcessTransaction(ctx, cardTx(model.ActionSale, 2500), "req-38", nil)
		require.NoError(t, err)

		got, err := m.VoidTransaction(ctx, sale.ID.String(), nil, "req-39", nil)

		require.NoError(t, err)
		require.Equal(t, model.StatusVoided, got.Status)
		require.Equal(t, int64(2500), got.Amounts.TransactionAmount)
	})

	t.Run("malformed id fails before touching the store", func(t *testing.T) {
		mockRepo := mocks.NewTransactionRepository(t)
		m := NewTransactionManager(zap.NewNop(), mockRepo, Dependencies{})
		listener := &recordingListener{}

		_, err := m.CaptureTransaction(ctx, "not-a-uuid", adjust, "req-40", listener)
		require.ErrorIs(t, err, ErrInvalidArgument)

		_, err = m.UpdateTransaction(ctx, "not-a-uuid", adjust, "req-41", listener)
		require.ErrorIs(t, err, ErrInvalidArgument)

		_, err = m.VoidTransaction(ctx, "", nil, "req-42", listener)
		require.ErrorIs(t, err, ErrInvalidArgument)

		_, err = m.GetTransaction(ctx, "123", "req-43", listener)
		require.ErrorIs(t, err, ErrInvalidArgument)

		require.Empty(t, listener.Calls())
		mockRepo.AssertNotCalled(t, "Get")
		mockRepo.AssertNotCalled(t, "CompareAndSwap")
	})

	t.Run("negative adjustment is rejected", func(t *testing.T) {
		m, _ := newManager(t, nil)
		bad := model.AdjustTransactionRequest{Amounts: model.TransactionAmounts{TransactionAmount: -5}}

		_, err := m.CaptureTransaction(ctx, uuid.NewString(), bad, "req-44", nil)
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("version conflict is retried", func(t *testing.T) {
		mockRepo := mocks.NewTransactionRepository(t)
		m := NewTransactionManager(zap.NewNop(), mockRepo, Dependencies{Clock: fixedClock{now: testNow}})
		id := uuid.New()
		existing := model.Transaction{ID: id, Status: model.StatusAuthorized, Version: 3}

		mockRepo.On("Get", ctx, id).Return(existing, nil).Twice()
		mockRepo.On("CompareAndSwap", ctx, mock.Anything, int64(3)).Return(model.Transaction{}, repository.ErrConflict).Once()
		mockRepo.On("CompareAndSwap", ctx, mock.MatchedBy(func(tx model.Transaction) bool {
			return tx.ID == id && tx.Status == model.StatusCaptured
		}), int64(3)).Return(func(_ context.Context, tx model.Transaction, v int64) (model.Transaction, error) {
			tx.Version = v + 1
			return tx, nil
		}).Once()

		got, err := m.CaptureTransaction(ctx, id.String(), adjust, "req-45", nil)

		require.NoError(t, err)
		require.Equal(t, int64(4), got.Version)
		mockRepo.AssertExpectations(t)
	})

	t.Run("persistent conflict gives up", func(t *testing.T) {
		mockRepo := mocks.NewTransactionRepository(t)
		m := NewTransactionManager(zap.NewNop(), mockRepo, Dependencies{})
		id := uuid.New()

		mockRepo.On("Get", ctx, id).Return(model.Transaction{ID: id, Version: 1}, nil)
		mockRepo.On("CompareAndSwap", ctx, mock.Anything, int64(1)).Return(model.Transaction{}, repository.ErrConflict)

		_, err := m.VoidTransaction(ctx, id.String(), nil, "req-46", nil)

		require.ErrorIs(t, err, repository.ErrConflict)
		mockRepo.AssertNumberOfCalls(t, "CompareAndSwap", maxMutationAttempts)
	})

	t.Run("concurrent captures on one id are linearized", func(t *testing.T) {
		m, repo := newManager(t, nil)
		id := uuid.NewString()

		// каждый проигрыш CAS означает чужую успешную запись, поэтому workers <= попыток
		workers := maxMutationAttempts
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				a := model.AdjustTransactionRequest{Amounts: model.TransactionAmounts{TransactionAmount: int64(i)}}
				_, err := m.CaptureTransaction(ctx, id, a, "req-concurrent", nil)
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()

		stored, err := repo.Get(ctx, uuid.MustParse(id))
		require.NoError(t, err)
		require.Equal(t, int64(workers), stored.Version)
		require.Equal(t, model.StatusCaptured, stored.Status)
	})
}

func TestTransactionManager_GetTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("absent transaction notifies with nil", func(t *testing.T) {
		m, _ := newManager(t, nil)
		listener := &recordingListener{}

		got, err := m.GetTransaction(ctx, uuid.NewString(), "req-50", listener)

		require.NoError(t, err)
		require.Nil(t, got)
		calls := listener.Calls()
		require.Len(t, calls, 1)
		require.Nil(t, calls[0].tx)
	})

	t.Run("get is idempotent", func(t *testing.T) {
		m, _ := newManager(t, nil)
		tx := cardTx(model.ActionSale, 777)
		tx.Amounts.TipAmount = model.Int64(50)
		sale, err := m.ProcessTransaction(ctx, tx, "req-51", nil)
		require.NoError(t, err)

		first, err := m.GetTransaction(ctx, sale.ID.String(), "req-52", nil)
		require.NoError(t, err)
		second, err := m.GetTransaction(ctx, sale.ID.String(), "req-53", &recordingListener{})
		require.NoError(t, err)

		require.NotNil(t, first)
		require.Equal(t, *first, *second)
		require.Equal(t, sale, *first)
	})

	t.Run("store error is returned", func(t *testing.T) {
		mockRepo := mocks.NewTransactionRepository(t)
		m := NewTransactionManager(zap.NewNop(), mockRepo, Dependencies{})
		id := uuid.New()
		listener := &recordingListener{}

		mockRepo.On("Get", ctx, id).Return(model.Transaction{}, errors.New("connection refused")).Once()

		_, err := m.GetTransaction(ctx, id.String(), "req-54", listener)

		require.Error(t, err)
		require.Empty(t, listener.Calls())
	})
}

func TestTransactionManager_Lifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("is connected delegates to security provider", func(t *testing.T) {
		security := &fakeSecurity{connected: true}
		m := NewTransactionManager(zap.NewNop(), memory.NewRepository(), Dependencies{Security: security})
		require.True(t, m.IsConnected())

		security.connected = false
		require.False(t, m.IsConnected())
	})

	t.Run("without security provider is never connected", func(t *testing.T) {
		m, _ := newManager(t, nil)
		require.False(t, m.IsConnected())
	})

	t.Run("shutdown rejects new operations and unbinds security", func(t *testing.T) {
		security := &fakeSecurity{connected: true}
		m := NewTransactionManager(zap.NewNop(), memory.NewRepository(), Dependencies{Security: security})

		require.NoError(t, m.Shutdown(ctx))
		require.NoError(t, m.Shutdown(ctx))
		require.True(t, security.shutdown)

		_, err := m.ProcessTransaction(ctx, cardTx(model.ActionSale, 1000), "req-60", nil)
		require.ErrorIs(t, err, ErrManagerClosed)

		_, err = m.GetTransaction(ctx, uuid.NewString(), "req-61", nil)
		require.ErrorIs(t, err, ErrManagerClosed)
	})
}

type slowNotifier struct {
	recordingNotifier
	delay time.Duration
}

func (n *slowNotifier) PublishDeclined(ctx context.Context, events []DeclinedEvent) error {
	time.Sleep(n.delay)
	return n.recordingNotifier.PublishDeclined(ctx, events)
}

type drainingJobs struct {
	mu       sync.Mutex
	jobs     []func(ctx context.Context)
	drained  bool
	drainErr error
}

func (j *drainingJobs) Submit(job func(ctx context.Context)) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.jobs = append(j.jobs, job)
	return nil
}

func (j *drainingJobs) Shutdown(ctx context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	for _, job := range j.jobs {
		job(ctx)
	}
	j.jobs = nil
	j.drained = true
	return j.drainErr
}

func TestTransactionManager_ShutdownDrainsBackgroundJobs(t *testing.T) {
	ctx := context.Background()

	t.Run("default runner waits for the decline burst", func(t *testing.T) {
		notifier := &slowNotifier{delay: 50 * time.Millisecond}
		m := NewTransactionManager(zap.NewNop(), memory.NewRepository(), Dependencies{Notifier: notifier})

		_, err := m.ProcessTransaction(ctx, cardTx(model.ActionSale, 666), "req-80", nil)
		require.NoError(t, err)

		require.NoError(t, m.Shutdown(ctx))
		require.Equal(t, 100, notifier.Count())
	})

	t.Run("default runner rejects jobs after shutdown", func(t *testing.T) {
		jobs := &goJobs{}
		require.NoError(t, jobs.Shutdown(ctx))
		require.ErrorIs(t, jobs.Submit(func(context.Context) {}), errJobsClosed)
	})

	t.Run("default runner gives up when ctx expires", func(t *testing.T) {
		jobs := &goJobs{}
		release := make(chan struct{})
		defer close(release)
		require.NoError(t, jobs.Submit(func(context.Context) { <-release }))

		shortCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()
		require.ErrorIs(t, jobs.Shutdown(shortCtx), context.DeadlineExceeded)
	})

	t.Run("injected pool is drained before security unbind", func(t *testing.T) {
		notifier := &recordingNotifier{}
		jobs := &drainingJobs{drainErr: errors.New("drain timeout")}
		security := &fakeSecurity{connected: true}
		m := NewTransactionManager(zap.NewNop(), memory.NewRepository(), Dependencies{
			Notifier: notifier,
			Jobs:     jobs,
			Security: security,
		})

		_, err := m.ProcessTransaction(ctx, cardTx(model.ActionAuthorize, 666), "req-81", nil)
		require.NoError(t, err)
		require.Zero(t, notifier.Count())

		err = m.Shutdown(ctx)
		require.ErrorContains(t, err, "drain timeout")
		require.True(t, jobs.drained)
		require.True(t, security.shutdown)
		require.Equal(t, 100, notifier.Count())
	})
}

func TestTransactionManager_LogsOnlyMaskedCardNumber(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := NewTransactionManager(zap.New(core), memory.NewRepository(), Dependencies{Clock: fixedClock{now: testNow}})

	_, err := m.ProcessTransaction(context.Background(), cardTx(model.ActionSale, 1000), "req-90", nil)
	require.NoError(t, err)

	received := logs.FilterMessage("card received").All()
	require.Len(t, received, 1)
	require.Equal(t, "************1111", received[0].ContextMap()["card"])

	for _, entry := range logs.All() {
		for _, v := range entry.ContextMap() {
			require.NotEqual(t, "4111111111111111", v)
		}
	}
}

func TestLogSinks(t *testing.T) {
	ctx := context.Background()

	require.NoError(t, NewLogListener(zap.NewNop()).OnResponse(ctx, nil, "req-70", nil))
	require.NoError(t, NewLogListener(zap.NewNop()).OnResponse(ctx, &model.Transaction{ID: uuid.New()}, "req-71",
		&model.ResponseError{Code: model.ErrorCodeCardDecline}))
	require.NoError(t, NewLogDeclineNotifier(zap.NewNop()).PublishDeclined(ctx, []DeclinedEvent{{EventType: DeclinedEventType}}))
}
