// Package mapper превращает платёжно-агностичную model.Transaction в запрос Converge
// для конкретного платёжного метода.
//
// Каждый вариант (Variant) реализует только те capability-интерфейсы, которые он реально
// поддерживает, поэтому набор операций метода виден статически. Вызов неподдерживаемой
// операции возвращает типизированную ошибку на стороне вызывающего, а не деградированный
// запрос у эквайера.
package mapper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ppalavilli/ElavonConvergeProcessor/internal/converge"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/model"
)

var (
	// ErrUnsupportedOperation - операция не реализована для платёжного метода
	ErrUnsupportedOperation = errors.New("operation not supported for this payment method")
	// ErrProtocolRestriction - операция запрещена политикой/протоколом для метода или подтипа
	ErrProtocolRestriction = errors.New("operation not permitted for this payment method")
	// ErrUnsupportedPaymentMethod - для funding source нет зарегистрированного варианта
	ErrUnsupportedPaymentMethod = errors.New("unsupported payment method")
	// ErrMissingFundingData - в funding source нет данных, нужных для запроса
	ErrMissingFundingData = errors.New("funding source data is missing")
	// ErrUnknownOperation - строку не удалось разобрать как Operation
	ErrUnknownOperation = errors.New("unknown operation")
)

// Operation - операция построения запроса
type Operation string

const (
	OpAuth    Operation = "auth"
	OpSale    Operation = "sale"
	OpRefund  Operation = "refund"
	OpVerify  Operation = "verify"
	OpReverse Operation = "reverse"
)

// Operations - все операции в каноническом порядке
var Operations = []Operation{OpAuth, OpSale, OpRefund, OpVerify, OpReverse}

// ParseOperation разбирает имя операции (регистр не важен)
func ParseOperation(s string) (Operation, error) {
	op := Operation(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Operations {
		if op == known {
			return op, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOperation, s)
}

// Method - платёжный метод (funding source + способ ввода)
type Method string

const (
	MethodKeyedGiftcard Method = "keyed_giftcard"
	MethodMsrEbt        Method = "msr_ebt"
	MethodKeyedCredit   Method = "keyed_credit"
)

// Variant - конкретный маппер платёжного метода
type Variant interface {
	Method() Method
}

// AuthCreator строит запрос авторизации
type AuthCreator interface {
	CreateAuth(t model.Transaction) (converge.Request, error)
}

// SaleCreator строит запрос продажи
type SaleCreator interface {
	CreateSale(t model.Transaction) (converge.Request, error)
}

// RefundCreator строит запрос возврата
type RefundCreator interface {
	CreateRefund(t model.Transaction) (converge.Request, error)
}

// VerifyCreator строит запрос проверки карты
type VerifyCreator interface {
	CreateVerify(t model.Transaction) (converge.Request, error)
}

// ReverseCreator строит запрос отмены по ссылке на предыдущую транзакцию
type ReverseCreator interface {
	CreateReverse(transactionRef string) (converge.Request, error)
}

// Restricter позволяет варианту запретить операцию политикой.
// Restriction возвращает ошибку, обёрнутую в ErrProtocolRestriction, или nil.
type Restricter interface {
	Restriction(op Operation) error
}

// CreateAuth строит запрос авторизации через вариант v
func CreateAuth(v Variant, t model.Transaction) (converge.Request, error) {
	if err := restricted(v, OpAuth); err != nil {
		return converge.Request{}, err
	}
	c, ok := v.(AuthCreator)
	if !ok {
		return converge.Request{}, unsupported(v, OpAuth)
	}
	return c.CreateAuth(t.Clone())
}

// CreateSale строит запрос продажи через вариант v
func CreateSale(v Variant, t model.Transaction) (converge.Request, error) {
	if err := restricted(v, OpSale); err != nil {
		return converge.Request{}, err
	}
	c, ok := v.(SaleCreator)
	if !ok {
		return converge.Request{}, unsupported(v, OpSale)
	}
	return c.CreateSale(t.Clone())
}

// CreateRefund строит запрос возврата через вариант v
func CreateRefund(v Variant, t model.Transaction) (converge.Request, error) {
	if err := restricted(v, OpRefund); err != nil {
		return converge.Request{}, err
	}
	c, ok := v.(RefundCreator)
	if !ok {
		return converge.Request{}, unsupported(v, OpRefund)
	}
	return c.CreateRefund(t.Clone())
}

// CreateVerify строит запрос проверки карты через вариант v
func CreateVerify(v Variant, t model.Transaction) (converge.Request, error) {
	if err := restricted(v, OpVerify); err != nil {
		return converge.Request{}, err
	}
	c, ok := v.(VerifyCreator)
	if !ok {
		return converge.Request{}, unsupported(v, OpVerify)
	}
	return c.CreateVerify(t.Clone())
}

// CreateReverse строит запрос отмены предыдущей транзакции через вариант v
func CreateReverse(v Variant, transactionRef string) (converge.Request, error) {
	if err := restricted(v, OpReverse); err != nil {
		return converge.Request{}, err
	}
	c, ok := v.(ReverseCreator)
	if !ok {
		return converge.Request{}, unsupported(v, OpReverse)
	}
	if transactionRef == "" {
		return converge.Request{}, fmt.Errorf("%w: transaction reference is required for reverse", ErrMissingFundingData)
	}
	return c.CreateReverse(transactionRef)
}

// Supported возвращает операции, которые вариант реально умеет строить
func Supported(v Variant) []Operation {
	out := make([]Operation, 0, len(Operations))
	for _, op := range Operations {
		if restricted(v, op) != nil {
			continue
		}
		var ok bool
		switch op {
		case OpAuth:
			_, ok = v.(AuthCreator)
		case OpSale:
			_, ok = v.(SaleCreator)
		case OpRefund:
			_, ok = v.(RefundCreator)
		case OpVerify:
			_, ok = v.(VerifyCreator)
		case OpReverse:
			_, ok = v.(ReverseCreator)
		}
		if ok {
			out = append(out, op)
		}
	}
	return out
}

func restricted(v Variant, op Operation) error {
	r, ok := v.(Restricter)
	if !ok {
		return nil
	}
	return r.Restriction(op)
}

func unsupported(v Variant, op Operation) error {
	return fmt.Errorf("%w: %s for %s", ErrUnsupportedOperation, op, v.Method())
}
