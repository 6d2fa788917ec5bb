package domain

import "github.com/DRSN-tech/inventory-view/pkg/e"

// Field - редактируемое поле товара
type Field string

const (
	FieldPhoto         Field = "photo"
	FieldHint          Field = "hint"
	FieldSKU           Field = "sku"
	FieldSellingPrice  Field = "sellingPrice"
	FieldPurchasePrice Field = "purchasePrice"
	FieldQuantity      Field = "quantity"
)

// Fields перечисляет поля в порядке отображения.
var Fields = []Field{FieldPhoto, FieldHint, FieldSKU, FieldSellingPrice, FieldPurchasePrice, FieldQuantity}

func ParseField(s string) (Field, error) {
	for _, f := range Fields {
		if string(f) == s {
			return f, nil
		}
	}

	return "", e.Wrap(s, e.ErrUnknownField)
}

func (f Field) IsPrice() bool {
	return f == FieldSellingPrice || f == FieldPurchasePrice
}

// HasDialog сообщает, есть ли у поля собственный диалог редактирования.
// Количество редактируется только напрямую.
func (f Field) HasDialog() bool {
	switch f {
	case FieldPhoto, FieldHint, FieldSKU, FieldSellingPrice, FieldPurchasePrice:
		return true
	default:
		return false
	}
}
