package format

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ppalavilli/ElavonConvergeProcessor/internal/model"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		name     string
		minor    int64
		currency string
		expected string
	}{
		{name: "usd cents", minor: 1234, currency: "USD", expected: "12.34"},
		{name: "empty currency defaults to usd", minor: 555, currency: "", expected: "5.55"},
		{name: "sub-unit amount keeps leading zero", minor: 7, currency: "EUR", expected: "0.07"},
		{name: "zero", minor: 0, currency: "USD", expected: "0.00"},
		{name: "zero-decimal currency", minor: 500, currency: "JPY", expected: "500"},
		{name: "three-decimal currency", minor: 12345, currency: "KWD", expected: "12.345"},
		{name: "lowercase code", minor: 100, currency: "jpy", expected: "100"},
		{name: "unknown currency uses two decimals", minor: 100, currency: "XYZ", expected: "1.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Amount(tt.minor, tt.currency))
		})
	}
}

func TestCardExpiry(t *testing.T) {
	tests := []struct {
		name     string
		card     *model.Card
		expected string
	}{
		{name: "nil card", card: nil, expected: ""},
		{name: "four digit year", card: &model.Card{ExpirationMonth: 3, ExpirationYear: 2027}, expected: "0327"},
		{name: "two digit year", card: &model.Card{ExpirationMonth: 12, ExpirationYear: 29}, expected: "1229"},
		{name: "missing month", card: &model.Card{ExpirationYear: 2027}, expected: ""},
		{name: "invalid month", card: &model.Card{ExpirationMonth: 13, ExpirationYear: 2027}, expected: ""},
		{name: "missing year", card: &model.Card{ExpirationMonth: 5}, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, CardExpiry(tt.card))
		})
	}
}
