package mapper

import (
	"fmt"

	"github.com/ppalavilli/ElavonConvergeProcessor/internal/converge"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/format"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/model"
)

// KeyedCredit - кредитная/дебетовая карта, введённая вручную. Поддерживает все операции.
type KeyedCredit struct{}

// Method возвращает платёжный метод варианта
func (KeyedCredit) Method() Method { return MethodKeyedCredit }

// CreateAuth строит ccauthonly
func (c KeyedCredit) CreateAuth(t model.Transaction) (converge.Request, error) {
	return c.build(converge.TypeCreditAuthOnly, t, true)
}

// CreateSale строит ccsale
func (c KeyedCredit) CreateSale(t model.Transaction) (converge.Request, error) {
	return c.build(converge.TypeCreditSale, t, true)
}

// CreateRefund строит ccreturn
func (c KeyedCredit) CreateRefund(t model.Transaction) (converge.Request, error) {
	return c.build(converge.TypeCreditReturn, t, true)
}

// CreateVerify строит ccverify (без суммы)
func (c KeyedCredit) CreateVerify(t model.Transaction) (converge.Request, error) {
	return c.build(converge.TypeCreditVerify, t, false)
}

// CreateReverse строит ccdelete по идентификатору транзакции у эквайера
func (KeyedCredit) CreateReverse(transactionRef string) (converge.Request, error) {
	return converge.Request{
		TransactionType:  converge.TypeCreditDelete,
		TransactionRefID: transactionRef,
	}, nil
}

func (KeyedCredit) build(txType converge.TransactionType, t model.Transaction, withAmount bool) (converge.Request, error) {
	card := t.FundingSource.Card
	if card == nil || card.Number == "" {
		return converge.Request{}, fmt.Errorf("%w: clear card number is required for %s", ErrMissingFundingData, txType)
	}
	expiry := format.CardExpiry(card)
	if expiry == "" {
		return converge.Request{}, fmt.Errorf("%w: card expiry is required for %s", ErrMissingFundingData, txType)
	}

	req := converge.Request{
		TransactionType: txType,
		CardNumber:      card.Number,
		ExpDate:         expiry,
	}
	if withAmount {
		req.Amount = format.Amount(t.Amounts.TransactionAmount, t.Amounts.Currency)
		if t.Amounts.TipAmount != nil {
			req.TipAmount = format.Amount(*t.Amounts.TipAmount, t.Amounts.Currency)
		}
	}
	return req, nil
}
