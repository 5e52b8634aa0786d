package model

import (
	"time"

	"github.com/google/uuid"
)

// TransactionAction определяет, что терминал просит сделать с транзакцией
type TransactionAction string

const (
	ActionAuthorize TransactionAction = "AUTHORIZE"
	ActionSale      TransactionAction = "SALE"
	ActionCapture   TransactionAction = "CAPTURE"
	ActionRefund    TransactionAction = "REFUND"
	ActionVoid      TransactionAction = "VOID"
	ActionVerify    TransactionAction = "VERIFY"
	ActionReverse   TransactionAction = "REVERSE"
)

// TransactionStatus - состояние транзакции после последней операции
type TransactionStatus string

const (
	StatusCreated    TransactionStatus = "CREATED"
	StatusAuthorized TransactionStatus = "AUTHORIZED"
	StatusCaptured   TransactionStatus = "CAPTURED"
	StatusDeclined   TransactionStatus = "DECLINED"
	StatusRefunded   TransactionStatus = "REFUNDED"
	StatusVoided     TransactionStatus = "VOIDED"
)

// ProcessorStatus - статус ответа процессора
type ProcessorStatus string

const (
	ProcessorStatusSuccessful ProcessorStatus = "Successful"
	ProcessorStatusFailed     ProcessorStatus = "Failed"
)

// Processor - идентификатор эквайера/процессора
type Processor string

const (
	ProcessorChasePaymentech Processor = "CHASE_PAYMENTECH"
	ProcessorCreditcall      Processor = "CREDITCALL"
	ProcessorRede            Processor = "REDE"
	ProcessorElavon          Processor = "ELAVON"
)

// TransactionAmounts - суммы в минорных единицах валюты (центы)
type TransactionAmounts struct {
	Currency          string `json:"currency,omitempty"`
	OrderAmount       int64  `json:"order_amount"`
	TransactionAmount int64  `json:"transaction_amount"`
	TipAmount         *int64 `json:"tip_amount,omitempty"`
}

// ProcessorResponse - ответ (симулированного) процессора.
// Создаётся один раз на попытку обработки и после прикрепления к транзакции не меняется.
type ProcessorResponse struct {
	ApprovalCode     string            `json:"approval_code,omitempty"`
	Status           ProcessorStatus   `json:"status"`
	StatusCode       string            `json:"status_code,omitempty"`
	StatusMessage    string            `json:"status_message,omitempty"`
	ApprovedAmount   int64             `json:"approved_amount"`
	RemainingBalance *int64            `json:"remaining_balance,omitempty"`
	Acquirer         Processor         `json:"acquirer,omitempty"`
	Processor        Processor         `json:"processor,omitempty"`
	EMVTags          map[string]string `json:"emv_tags,omitempty"`
	TransactionID    string            `json:"transaction_id,omitempty"`
}

// Transaction - доменная модель платёжной транзакции.
// После передачи в TransactionManager им и владеет: меняется только его операциями.
type Transaction struct {
	ID                uuid.UUID          `json:"id"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
	Action            TransactionAction  `json:"action,omitempty"`
	FundingSource     FundingSource      `json:"funding_source"`
	Amounts           TransactionAmounts `json:"amounts"`
	Status            TransactionStatus  `json:"status,omitempty"`
	ProcessorResponse *ProcessorResponse `json:"processor_response,omitempty"`
	// Version - токен для compare-and-swap, им управляет хранилище
	Version int64 `json:"version"`
}

// AdjustTransactionRequest - корректировка сумм для capture/update
type AdjustTransactionRequest struct {
	Amounts TransactionAmounts `json:"amounts"`
	EMVData *EMVData           `json:"emv_data,omitempty"`
}

// ErrorCode - код структурированной ошибки в ответе слушателю
type ErrorCode string

const (
	// ErrorCodeCardDecline отправляется при повторной доставке ответа после сбоя
	ErrorCodeCardDecline ErrorCode = "CARD_DECLINE"
)

// ResponseError - опциональная ошибка, которая уходит вместе с ответом (nil при успехе)
type ResponseError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message,omitempty"`
}

// Clone возвращает глубокую копию транзакции.
// Хранилище и менеджер обмениваются только копиями, чтобы никто не видел частично обновлённую запись.
func (t Transaction) Clone() Transaction {
	out := t
	out.FundingSource = t.FundingSource.Clone()
	out.Amounts = t.Amounts.Clone()
	if t.ProcessorResponse != nil {
		pr := *t.ProcessorResponse
		pr.RemainingBalance = cloneInt64(t.ProcessorResponse.RemainingBalance)
		pr.EMVTags = cloneTags(t.ProcessorResponse.EMVTags)
		out.ProcessorResponse = &pr
	}
	return out
}

// Clone возвращает копию сумм
func (a TransactionAmounts) Clone() TransactionAmounts {
	out := a
	out.TipAmount = cloneInt64(a.TipAmount)
	return out
}

// Int64 возвращает указатель на значение, удобно для опциональных сумм
func Int64(v int64) *int64 {
	return &v
}

func cloneInt64(v *int64) *int64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneTags(tags map[string]string) map[string]string {
	if tags == nil {
		return nil
	}
	out := make(map[string]string, len(tags))
	for k, v := range tags {
		out[k] = v
	}
	return out
}
