package format

import (
	"fmt"

	"github.com/ppalavilli/ElavonConvergeProcessor/internal/model"
)

// CardExpiry возвращает срок действия карты в формате MMYY.
// Пустая строка, если карты нет или срок не заполнен.
func CardExpiry(card *model.Card) string {
	if card == nil || card.ExpirationMonth < 1 || card.ExpirationMonth > 12 || card.ExpirationYear <= 0 {
		return ""
	}
	return fmt.Sprintf("%02d%02d", card.ExpirationMonth, card.ExpirationYear%100)
}
