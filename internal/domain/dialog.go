package domain

import "strings"

type DialogKind string

const (
	DialogClosed  DialogKind = "closed"
	DialogEditing DialogKind = "editing"
)

// Dialog - состояние диалога редактирования поля.
// Одновременно может быть открыт только один диалог, поэтому состояние хранится одним значением.
type Dialog struct {
	Kind      DialogKind
	ProductID string
	Field     Field
	Staged    string // временное значение, ещё не записанное в товар
	Ticket    string // id последнего запущенного чтения фото
}

func ClosedDialog() Dialog {
	return Dialog{Kind: DialogClosed}
}

func EditingDialog(productID string, field Field, staged string) Dialog {
	return Dialog{
		Kind:      DialogEditing,
		ProductID: productID,
		Field:     field,
		Staged:    staged,
	}
}

func (d Dialog) IsOpen() bool {
	return d.Kind == DialogEditing
}

// IsFor сообщает, открыт ли диалог для указанного поля указанного товара.
func (d Dialog) IsFor(productID string, field Field) bool {
	return d.IsOpen() && d.ProductID == productID && d.Field == field
}

// AwaitsPhoto сообщает, ждёт ли диалог результат чтения фото с указанным id заявки.
// Результат чтения, запущенного в закрытом или другом диалоге, не совпадает ни с одним открытым.
func (d Dialog) AwaitsPhoto(productID, ticketID string) bool {
	return d.IsFor(productID, FieldPhoto) && d.Ticket != "" && d.Ticket == ticketID
}

func (d Dialog) WithTicket(ticketID string) Dialog {
	d.Ticket = ticketID
	return d
}

func (d Dialog) WithStaged(value string) Dialog {
	d.Staged = value
	return d
}

// CommitValue возвращает значение для записи в товар и признак того,
// что кнопку подтверждения можно нажать.
func (d Dialog) CommitValue() (any, bool) {
	if !d.IsOpen() {
		return nil, false
	}

	switch d.Field {
	case FieldPhoto:
		if d.Staged == "" {
			return nil, false
		}
		return d.Staged, true
	case FieldHint:
		return d.Staged, true
	case FieldSKU:
		if strings.TrimSpace(d.Staged) == "" {
			return nil, false
		}
		return d.Staged, true
	case FieldSellingPrice, FieldPurchasePrice:
		price, ok := ParsePrice(d.Staged)
		if !ok || !price.IsPositive() {
			return nil, false
		}
		return price, true
	default:
		return nil, false
	}
}

// CanConfirm - доступна ли кнопка "Принять".
func (d Dialog) CanConfirm() bool {
	_, ok := d.CommitValue()
	return ok
}

// StagedValue возвращает текущее значение поля товара в виде строки для диалога.
func StagedValue(p Product, f Field) string {
	switch f {
	case FieldPhoto:
		if p.Photo == nil {
			return ""
		}
		return *p.Photo
	case FieldHint:
		return p.Hint
	case FieldSKU:
		return p.SKU
	case FieldSellingPrice, FieldPurchasePrice:
		return FormatPrice(p.Price(f))
	default:
		return ""
	}
}
