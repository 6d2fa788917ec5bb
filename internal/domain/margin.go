package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type MarginTone string

const (
	MarginPositive MarginTone = "positive"
	MarginNegative MarginTone = "negative"
)

var hundred = decimal.NewFromInt(100)

// Margin - маржа товара. Всегда вычисляется при чтении и нигде не хранится.
type Margin struct {
	Amount     decimal.Decimal
	Percent    decimal.Decimal
	HasPercent bool // false, если цена покупки равна нулю
	Tone       MarginTone
}

// ComputeMargin возвращает маржу или nil, если одна из цен не задана.
func ComputeMargin(p Product) *Margin {
	if p.SellingPrice == nil || p.PurchasePrice == nil {
		return nil
	}

	amount := p.SellingPrice.Sub(*p.PurchasePrice)
	m := &Margin{
		Amount: amount,
		Tone:   MarginNegative,
	}
	if amount.IsPositive() {
		m.Tone = MarginPositive
	}

	if !p.PurchasePrice.IsZero() {
		m.Percent = amount.Div(*p.PurchasePrice).Mul(hundred)
		m.HasPercent = true
	}

	return m
}

// AmountString - маржа с двумя знаками после запятой.
func (m *Margin) AmountString() string {
	return m.Amount.StringFixed(2)
}

// PercentString - процент маржи с одним знаком, пустая строка если процент не определён.
func (m *Margin) PercentString() string {
	if !m.HasPercent {
		return ""
	}

	return m.Percent.StringFixed(1)
}

// Display форматирует маржу так, как она показывается в карточке: "400.00 ₽ (50.0%)".
func (m *Margin) Display() string {
	if !m.HasPercent {
		return fmt.Sprintf("%s %s", m.AmountString(), Currency)
	}

	return fmt.Sprintf("%s %s (%s%%)", m.AmountString(), Currency, m.PercentString())
}

// IsNegative совпадает с Tone: нулевая маржа тоже считается неположительной.
func (m *Margin) IsNegative() bool {
	return m.Tone == MarginNegative
}
