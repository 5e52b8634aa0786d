// Package format содержит чистые функции форматирования сумм и сроков действия карт
// в том виде, в каком их ожидает Converge.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency используется, если валюта в транзакции не указана
const DefaultCurrency = "USD"

// exponents - количество знаков после запятой по ISO 4217 (всё, чего нет в таблице, считаем 2)
var exponents = map[string]int32{
	"BHD": 3,
	"BIF": 0,
	"CLP": 0,
	"IQD": 3,
	"ISK": 0,
	"JOD": 3,
	"JPY": 0,
	"KRW": 0,
	"KWD": 3,
	"LYD": 3,
	"OMR": 3,
	"PYG": 0,
	"TND": 3,
	"UGX": 0,
	"VND": 0,
	"XAF": 0,
	"XOF": 0,
}

// Exponent возвращает число знаков после запятой для валюты
func Exponent(currency string) int32 {
	if exp, ok := exponents[strings.ToUpper(strings.TrimSpace(currency))]; ok {
		return exp
	}
	return 2
}

// Amount переводит сумму в минорных единицах в десятичную строку в основных единицах.
// Amount(1234, "USD") == "12.34", Amount(500, "JPY") == "500".
func Amount(minor int64, currency string) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	exp := Exponent(currency)
	return decimal.New(minor, -exp).StringFixed(exp)
}
