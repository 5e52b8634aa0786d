package mapper

import (
	"fmt"

	"github.com/ppalavilli/ElavonConvergeProcessor/internal/converge"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/format"
	"github.com/ppalavilli/ElavonConvergeProcessor/internal/model"
)

// MsrEbt - EBT карта с магнитной полосой.
// Converge разрешает по MSR только продажу и только для food stamp.
type MsrEbt struct{}

// Method возвращает платёжный метод варианта
func (MsrEbt) Method() Method { return MethodMsrEbt }

// Restriction запрещает для EBT всё, кроме sale. Это ограничение протокола, а не недоделка.
func (MsrEbt) Restriction(op Operation) error {
	switch op {
	case OpSale:
		return nil
	case OpAuth:
		return fmt.Errorf("%w: auth not allowed in EBT transaction", ErrProtocolRestriction)
	case OpRefund:
		return fmt.Errorf("%w: refund not allowed in EBT transaction", ErrProtocolRestriction)
	case OpVerify:
		return fmt.Errorf("%w: verify not allowed in EBT transaction", ErrProtocolRestriction)
	case OpReverse:
		return fmt.Errorf("%w: reverse not allowed in EBT transaction", ErrProtocolRestriction)
	default:
		return fmt.Errorf("%w: %s not allowed in EBT transaction", ErrProtocolRestriction, op)
	}
}

// CreateSale строит fspurchase. Подтип проверяется до построения запроса.
func (MsrEbt) CreateSale(t model.Transaction) (converge.Request, error) {
	fs := t.FundingSource
	if fs.EBTDetails == nil || fs.EBTDetails.Type != model.EBTTypeFoodStamp {
		return converge.Request{}, fmt.Errorf("%w: only food stamp allowed for MSR EBT", ErrProtocolRestriction)
	}
	if fs.Card == nil || fs.Card.Track2Data == "" {
		return converge.Request{}, fmt.Errorf("%w: encrypted track data is required for EBT sale", ErrMissingFundingData)
	}
	if fs.VerificationData == nil || fs.VerificationData.PIN == "" || fs.VerificationData.KeySerialNumber == "" {
		return converge.Request{}, fmt.Errorf("%w: PIN block and key serial number are required for EBT sale", ErrMissingFundingData)
	}

	return converge.Request{
		TransactionType: converge.TypeEBTFoodPurchase,
		EncryptedTrack:  fs.Card.Track2Data,
		Amount:          format.Amount(t.Amounts.TransactionAmount, t.Amounts.Currency),
		PinKSN:          fs.VerificationData.KeySerialNumber,
		KeyPointer:      converge.KeyPointerTripleDES,
		PinBlock:        fs.VerificationData.PIN,
	}, nil
}
