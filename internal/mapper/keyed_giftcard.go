package mapper

import (
	"fmt"

	"github.com/ppalavilli/ElavonConvergeProcessor/internal/converge"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/format"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/model"
)

// KeyedGiftcard - подарочная карта, введённая вручную. Умеет только sale и refund.
type KeyedGiftcard struct{}

// Method возвращает платёжный метод варианта
func (KeyedGiftcard) Method() Method { return MethodKeyedGiftcard }

// CreateSale строит egcsale
func (g KeyedGiftcard) CreateSale(t model.Transaction) (converge.Request, error) {
	return g.build(converge.TypeGiftCardSale, t)
}

// CreateRefund строит egccardrefund
func (g KeyedGiftcard) CreateRefund(t model.Transaction) (converge.Request, error) {
	return g.build(converge.TypeGiftCardRefund, t)
}

func (KeyedGiftcard) build(txType converge.TransactionType, t model.Transaction) (converge.Request, error) {
	card := t.FundingSource.Card
	if card == nil || card.Number == "" {
		// Converge требует номер карты в открытом виде
		return converge.Request{}, fmt.Errorf("%w: clear card number is required for %s", ErrMissingFundingData, txType)
	}

	req := converge.Request{
		TransactionType: txType,
		CardNumber:      card.Number,
		ExpDate:         format.CardExpiry(card),
		Amount:          format.Amount(t.Amounts.TransactionAmount, t.Amounts.Currency),
	}
	if t.Amounts.TipAmount != nil {
		req.TipAmount = format.Amount(*t.Amounts.TipAmount, t.Amounts.Currency)
	}
	return req, nil
}
