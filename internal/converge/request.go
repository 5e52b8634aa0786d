// Package converge описывает запрос к эквайеру Elavon Converge (XML документ <txn>).
// Сетевой транспорт к Converge здесь не реализуется: Request - это весь контракт,
// который видит нижележащий транспорт.
package converge

import (
	"encoding/xml"
	"fmt"
)

// TransactionType - значение ssl_transaction_type
type TransactionType string

const (
	TypeCreditSale      TransactionType = "ccsale"
	TypeCreditAuthOnly  TransactionType = "ccauthonly"
	TypeCreditReturn    TransactionType = "ccreturn"
	TypeCreditVerify    TransactionType = "ccverify"
	TypeCreditDelete    TransactionType = "ccdelete"
	TypeGiftCardSale    TransactionType = "egcsale"
	TypeGiftCardRefund  TransactionType = "egccardrefund"
	TypeEBTFoodPurchase TransactionType = "fspurchase"
)

// KeyPointerTripleDES - ssl_key_pointer для DUKPT PIN блоков
const KeyPointerTripleDES = "T"

// Request - запрос к Converge. Набор заполненных полей зависит от платёжного метода.
type Request struct {
	XMLName          xml.Name        `xml:"txn" json:"-"`
	TransactionType  TransactionType `xml:"ssl_transaction_type" json:"transaction_type"`
	Amount           string          `xml:"ssl_amount,omitempty" json:"amount,omitempty"`
	TipAmount        string          `xml:"ssl_tip_amount,omitempty" json:"tip_amount,omitempty"`
	CardNumber       string          `xml:"ssl_card_number,omitempty" json:"card_number,omitempty"`
	ExpDate          string          `xml:"ssl_exp_date,omitempty" json:"exp_date,omitempty"`
	EncryptedTrack   string          `xml:"ssl_enc_track_data,omitempty" json:"encrypted_track_data,omitempty"`
	PinBlock         string          `xml:"ssl_pin_block,omitempty" json:"pin_block,omitempty"`
	PinKSN           string          `xml:"ssl_dukpt,omitempty" json:"pin_ksn,omitempty"`
	KeyPointer       string          `xml:"ssl_key_pointer,omitempty" json:"key_pointer,omitempty"`
	TransactionRefID string          `xml:"ssl_txn_id,omitempty" json:"transaction_ref_id,omitempty"`
}

// Marshal сериализует запрос в XML документ для поля xmldata
func (r Request) Marshal() ([]byte, error) {
	if r.TransactionType == "" {
		return nil, fmt.Errorf("converge request: transaction type is required")
	}
	out, err := xml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("converge request: %w", err)
	}
	return out, nil
}
