package domain

import (
	"time"

	"github.com/DRSN-tech/inventory-view/pkg/e"
	"github.com/shopspring/decimal"
)

// Product описывает товар на складе
type Product struct {
	ID            string
	Photo         *string // data URI или внешний URI, nil - фото нет
	Hint          string  // где найти товар
	SKU           string
	SellingPrice  *decimal.Decimal // nil - цена не задана
	PurchasePrice *decimal.Decimal // nil - цена не задана
	Quantity      int
	CreatedAt     time.Time
}

func NewProduct(id string, createdAt time.Time) *Product {
	return &Product{
		ID:        id,
		Quantity:  1,
		CreatedAt: createdAt,
	}
}

// With возвращает копию товара, в которой заменено одно поле.
// Значение должно иметь тип, соответствующий полю; цены и количество не могут быть отрицательными.
func (p Product) With(field Field, value any) (Product, error) {
	switch field {
	case FieldPhoto:
		photo, ok := asOptionalString(value)
		if !ok {
			return p, e.Wrap(string(field), e.ErrInvalidFieldValue)
		}
		p.Photo = photo
	case FieldHint:
		hint, ok := value.(string)
		if !ok {
			return p, e.Wrap(string(field), e.ErrInvalidFieldValue)
		}
		p.Hint = hint
	case FieldSKU:
		sku, ok := value.(string)
		if !ok {
			return p, e.Wrap(string(field), e.ErrInvalidFieldValue)
		}
		p.SKU = sku
	case FieldSellingPrice, FieldPurchasePrice:
		price, ok := asOptionalPrice(value)
		if !ok {
			return p, e.Wrap(string(field), e.ErrInvalidFieldValue)
		}
		if field == FieldSellingPrice {
			p.SellingPrice = price
		} else {
			p.PurchasePrice = price
		}
	case FieldQuantity:
		qty, ok := value.(int)
		if !ok || qty < 0 {
			return p, e.Wrap(string(field), e.ErrInvalidFieldValue)
		}
		p.Quantity = qty
	default:
		return p, e.Wrap(string(field), e.ErrUnknownField)
	}

	return p, nil
}

// Price возвращает значение ценового поля.
func (p Product) Price(field Field) *decimal.Decimal {
	switch field {
	case FieldSellingPrice:
		return p.SellingPrice
	case FieldPurchasePrice:
		return p.PurchasePrice
	default:
		return nil
	}
}

func asOptionalString(value any) (*string, bool) {
	switch v := value.(type) {
	case nil:
		return nil, true
	case *string:
		if v == nil || *v == "" {
			return nil, true
		}
		s := *v
		return &s, true
	case string:
		if v == "" {
			return nil, true
		}
		return &v, true
	default:
		return nil, false
	}
}

func asOptionalPrice(value any) (*decimal.Decimal, bool) {
	switch v := value.(type) {
	case nil:
		return nil, true
	case *decimal.Decimal:
		if v == nil {
			return nil, true
		}
		if v.IsNegative() {
			return nil, false
		}
		d := *v
		return &d, true
	case decimal.Decimal:
		if v.IsNegative() {
			return nil, false
		}
		return &v, true
	default:
		return nil, false
	}
}
