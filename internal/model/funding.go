package model

// FundingSourceType - тип платёжного инструмента
type FundingSourceType string

const (
	FundingSourceCreditDebit FundingSourceType = "CREDIT_DEBIT"
	FundingSourceGiftCard    FundingSourceType = "GIFT_CARD"
	FundingSourceEBT         FundingSourceType = "EBT"
)

// EntryMode - как данные карты попали в терминал
type EntryMode string

const (
	EntryModeKeyed     EntryMode = "KEYED"
	EntryModeMagstripe EntryMode = "MAGSTRIPE"
	EntryModeChip      EntryMode = "CHIP"
)

// EBTType - подтип EBT карты
type EBTType string

const (
	EBTTypeFoodStamp   EBTType = "FOOD_STAMP"
	EBTTypeCashBenefit EBTType = "CASH_BENEFIT"
)

// Card - данные карты. Number и треки живут только до конца шага обработки.
type Card struct {
	Number          string `json:"number,omitempty"`
	Track1Data      string `json:"track1_data,omitempty"`
	Track2Data      string `json:"track2_data,omitempty"`
	Track3Data      string `json:"track3_data,omitempty"`
	ExpirationMonth int    `json:"expiration_month,omitempty"`
	ExpirationYear  int    `json:"expiration_year,omitempty"`
	Encrypted       bool   `json:"encrypted"`
	NumberHashed    string `json:"number_hashed,omitempty"`
}

// VerificationData - PIN block и KSN для PIN-транзакций (EBT, PIN debit)
type VerificationData struct {
	PIN             string `json:"pin,omitempty"`
	KeySerialNumber string `json:"key_serial_number,omitempty"`
}

// EBTDetails - детали EBT карты
type EBTDetails struct {
	Type EBTType `json:"type"`
}

// EMVData - теги чипа: идентификатор тега -> hex значение
type EMVData struct {
	EMVTags map[string]string `json:"emv_tags,omitempty"`
}

// FundingSource описывает платёжный инструмент транзакции
type FundingSource struct {
	Type             FundingSourceType `json:"type,omitempty"`
	EntryMode        EntryMode         `json:"entry_mode,omitempty"`
	Card             *Card             `json:"card,omitempty"`
	VerificationData *VerificationData `json:"verification_data,omitempty"`
	EBTDetails       *EBTDetails       `json:"ebt_details,omitempty"`
	EMVData          *EMVData          `json:"emv_data,omitempty"`
}

// Clone возвращает глубокую копию funding source
func (f FundingSource) Clone() FundingSource {
	out := f
	if f.Card != nil {
		c := *f.Card
		out.Card = &c
	}
	if f.VerificationData != nil {
		v := *f.VerificationData
		out.VerificationData = &v
	}
	if f.EBTDetails != nil {
		e := *f.EBTDetails
		out.EBTDetails = &e
	}
	out.EMVData = f.EMVData.Clone()
	return out
}

// Clone возвращает копию EMV данных (nil-safe)
func (e *EMVData) Clone() *EMVData {
	if e == nil {
		return nil
	}
	return &EMVData{EMVTags: cloneTags(e.EMVTags)}
}
