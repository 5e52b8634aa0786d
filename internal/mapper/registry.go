package mapper

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/ppalavilli/ElavonConvergeProcessor/internal/converge"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/model"
)

type registryKey struct {
	fundingType model.FundingSourceType
	entryMode   model.EntryMode
}

// Registry сопоставляет funding source (тип + способ ввода) с вариантом маппера
type Registry struct {
	mu       sync.RWMutex
	variants map[registryKey]Variant
}

// NewRegistry создаёт пустой реестр
func NewRegistry() *Registry {
	return &Registry{variants: make(map[registryKey]Variant)}
}

// DefaultRegistry возвращает реестр со всеми встроенными вариантами
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(model.FundingSourceGiftCard, model.EntryModeKeyed, KeyedGiftcard{})
	r.Register(model.FundingSourceEBT, model.EntryModeMagstripe, MsrEbt{})
	r.Register(model.FundingSourceCreditDebit, model.EntryModeKeyed, KeyedCredit{})
	return r
}

// Register регистрирует (или заменяет) вариант для пары тип/способ ввода
func (r *Registry) Register(fundingType model.FundingSourceType, entryMode model.EntryMode, v Variant) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.variants[registryKey{fundingType: fundingType, entryMode: entryMode}] = v
}

// ForFundingSource находит вариант для funding source
func (r *Registry) ForFundingSource(fs model.FundingSource) (Variant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.variants[registryKey{fundingType: fs.Type, entryMode: fs.EntryMode}]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnsupportedPaymentMethod, fs.Type, fs.EntryMode)
	}
	return v, nil
}

// Map находит вариант для транзакции и строит запрос для операции op.
// Для reverse ссылкой служит идентификатор транзакции у процессора, иначе ID транзакции.
func (r *Registry) Map(op Operation, t model.Transaction) (converge.Request, error) {
	v, err := r.ForFundingSource(t.FundingSource)
	if err != nil {
		return converge.Request{}, err
	}

	switch op {
	case OpAuth:
		return CreateAuth(v, t)
	case OpSale:
		return CreateSale(v, t)
	case OpRefund:
		return CreateRefund(v, t)
	case OpVerify:
		return CreateVerify(v, t)
	case OpReverse:
		return CreateReverse(v, reverseRef(t))
	default:
		return converge.Request{}, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}
}

func reverseRef(t model.Transaction) string {
	if t.ProcessorResponse != nil && t.ProcessorResponse.TransactionID != "" {
		return t.ProcessorResponse.TransactionID
	}
	if t.ID == uuid.Nil {
		return ""
	}
	return t.ID.String()
}
