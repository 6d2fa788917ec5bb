package usecase

import (
	"github.com/DRSN-tech/inventory-view/internal/domain"
)

// PRODUCT USECASE

// UpdateProductReq - запрос на замену одного поля товара.
type UpdateProductReq struct {
	ID    string
	Field domain.Field
	Value any
}

// InventoryView - всё, что нужно для отрисовки экрана учёта товаров.
type InventoryView struct {
	Query        string
	Products     []ProductView
	EmptyMessage string // пусто, если список не пуст
	EditingID    string
	Dialog       DialogView
	EditMode     domain.EditMode
}

// ProductView - карточка товара с вычисленными надписями.
type ProductView struct {
	Product            domain.Product
	HintLabel          string
	SKULabel           string
	SellingPriceLabel  string
	PurchasePriceLabel string
	Margin             *MarginView
	Editing            bool
}

// MarginView - маржа в виде строк для отображения.
type MarginView struct {
	Amount     string
	Percent    string // пусто, если цена покупки равна нулю
	Display    string
	Tone       domain.MarginTone
	IsNegative bool
}

// EDITOR USECASE

type OpenDialogReq struct {
	ProductID string
	Field     domain.Field
}

// DialogView - состояние открытого (или закрытого) диалога.
type DialogView struct {
	Kind        domain.DialogKind
	ProductID   string
	Field       domain.Field
	Title       string
	Placeholder string
	Staged      string
	CanConfirm  bool
}

// ConfirmRes - результат подтверждения.
// Committed == false означает, что кнопка была недоступна и ничего не изменилось.
type ConfirmRes struct {
	Committed    bool
	Notification string
	Dialog       DialogView
}

// UploadPhotoRes - запрос на чтение фото принят, результат придёт позже.
type UploadPhotoRes struct {
	TicketID  string
	ProductID string
}

// INLINE USECASE

type SetFieldReq struct {
	ID    string
	Field domain.Field
	Raw   string // значение в том виде, в каком его ввёл пользователь
}

// INFRASTUCTURE

// ReadPhotoReq - запрос на асинхронное чтение фото для товара.
type ReadPhotoReq struct {
	ProductID string // id товара на момент запроса
	Photo     *domain.Photo
}

// ReadPhotoRes - результат чтения фото.
type ReadPhotoRes struct {
	TicketID  string
	ProductID string
	DataURI   string
	Err       error
}

// MAPPERS

func NewUpdateProductReq(id string, field domain.Field, value any) *UpdateProductReq {
	return &UpdateProductReq{
		ID:    id,
		Field: field,
		Value: value,
	}
}

func NewOpenDialogReq(productID string, field domain.Field) *OpenDialogReq {
	return &OpenDialogReq{
		ProductID: productID,
		Field:     field,
	}
}

func NewSetFieldReq(id string, field domain.Field, raw string) *SetFieldReq {
	return &SetFieldReq{
		ID:    id,
		Field: field,
		Raw:   raw,
	}
}

func NewReadPhotoReq(productID string, photo *domain.Photo) *ReadPhotoReq {
	return &ReadPhotoReq{
		ProductID: productID,
		Photo:     photo,
	}
}

func NewUploadPhotoRes(ticketID string, productID string) *UploadPhotoRes {
	return &UploadPhotoRes{
		TicketID:  ticketID,
		ProductID: productID,
	}
}

func NewDialogView(d domain.Dialog) DialogView {
	if !d.IsOpen() {
		return DialogView{Kind: domain.DialogClosed}
	}

	return DialogView{
		Kind:        d.Kind,
		ProductID:   d.ProductID,
		Field:       d.Field,
		Title:       domain.DialogTitle(d.Field),
		Placeholder: domain.DialogPlaceholder(d.Field),
		Staged:      d.Staged,
		CanConfirm:  d.CanConfirm(),
	}
}

func NewMarginView(m *domain.Margin) *MarginView {
	if m == nil {
		return nil
	}

	return &MarginView{
		Amount:     m.AmountString(),
		Percent:    m.PercentString(),
		Display:    m.Display(),
		Tone:       m.Tone,
		IsNegative: m.IsNegative(),
	}
}
