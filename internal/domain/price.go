package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// MaxPriceRub - верхняя граница цены, 1 млрд рублей
	MaxPriceRub = 1_000_000_000
	// priceScale - допустимое число знаков после запятой
	priceScale = 2
	// maxPriceExponent - наибольший порядок, при котором цена ещё может не превышать MaxPriceRub
	maxPriceExponent = 9
)

var maxPrice = decimal.NewFromInt(MaxPriceRub)

// ParsePrice разбирает введённую пользователем цену.
// Допускается запятая в качестве разделителя. Пустая, нечисловая или отрицательная строка,
// значение больше MaxPriceRub или больше двух знаков после запятой дают (nil, false),
// цена в этом случае остаётся незаданной.
func ParsePrice(s string) (*decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	s = strings.Replace(s, ",", ".", 1)

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, false
	}

	// Порядок проверяется до сравнения: сравнение приводит числа к общему порядку
	if d.Exponent() < -priceScale || d.Exponent() > maxPriceExponent {
		return nil, false
	}

	if d.IsNegative() || d.GreaterThan(maxPrice) {
		return nil, false
	}

	return &d, true
}

// FormatPrice возвращает цену без лишних нулей ("1200", "99.5").
func FormatPrice(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}

	return d.String()
}
