package service

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/ppalavilli/ElavonConvergeProcessor/internal/model"
)

// Срок действия, который записывается вместо настоящего после очистки карты
const (
	sanitizedExpirationMonth = 12
	sanitizedExpirationYear  = 2020
)

// sanitize удаляет номер карты и все треки из funding source.
// Отпечаток NumberHashed считается от requestID, а не от номера карты.
func sanitize(fs *model.FundingSource, requestID string) {
	if fs.Card == nil {
		return
	}

	card := fs.Card
	card.Track1Data = ""
	card.Track2Data = ""
	card.Track3Data = ""
	card.Number = ""
	card.NumberHashed = fingerprint(requestID)
	card.Encrypted = false
	card.ExpirationMonth = sanitizedExpirationMonth
	card.ExpirationYear = sanitizedExpirationYear
}

// fingerprint - SHA-256 в верхнем регистре hex без пробелов
func fingerprint(s string) string {
	sum := sha256.Sum256([]byte(s))
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}
