package http

import (
	"time"

	"github.com/DRSN-tech/inventory-view/internal/domain"
	"github.com/DRSN-tech/inventory-view/internal/infrastructure/notify"
	"github.com/DRSN-tech/inventory-view/internal/usecase"
	"github.com/shopspring/decimal"
)

type ProductResponse struct {
	ID            string    `json:"id"`
	Photo         *string   `json:"photo"`
	Hint          string    `json:"hint"`
	SKU           string    `json:"sku"`
	SellingPrice  *string   `json:"selling_price"`
	PurchasePrice *string   `json:"purchase_price"`
	Quantity      int       `json:"quantity"`
	CreatedAt     time.Time `json:"created_at"`
}

type ProductCardResponse struct {
	ProductResponse
	HintLabel          string          `json:"hint_label"`
	SKULabel           string          `json:"sku_label"`
	SellingPriceLabel  string          `json:"selling_price_label"`
	PurchasePriceLabel string          `json:"purchase_price_label"`
	Margin             *MarginResponse `json:"margin"`
	Editing            bool            `json:"editing"`
}

type MarginResponse struct {
	Amount     string `json:"amount"`
	Percent    string `json:"percent,omitempty"`
	Display    string `json:"display"`
	Tone       string `json:"tone"`
	IsNegative bool   `json:"is_negative"`
}

type DialogResponse struct {
	Kind        string `json:"kind"`
	ProductID   string `json:"product_id,omitempty"`
	Field       string `json:"field,omitempty"`
	Title       string `json:"title,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
	Staged      string `json:"staged"`
	CanConfirm  bool   `json:"can_confirm"`
}

type InventoryViewResponse struct {
	Query        string                `json:"query"`
	EditMode     string                `json:"edit_mode"`
	EditingID    string                `json:"editing_id,omitempty"`
	EmptyMessage string                `json:"empty_message,omitempty"`
	Products     []ProductCardResponse `json:"products"`
	Dialog       DialogResponse        `json:"dialog"`
}

type ConfirmResponse struct {
	Committed    bool           `json:"committed"`
	Notification string         `json:"notification,omitempty"`
	Dialog       DialogResponse `json:"dialog"`
}

type UploadPhotoResponse struct {
	TicketID  string `json:"ticket_id"`
	ProductID string `json:"product_id"`
}

type UpdateResponse struct {
	Changed bool                 `json:"changed"`
	Product *ProductCardResponse `json:"product,omitempty"`
}

type EditingResponse struct {
	EditingID string `json:"editing_id"`
}

type NotificationResponse struct {
	Seq       int64     `json:"seq"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func toPriceString(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := domain.FormatPrice(d)
	return &s
}

func toProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Photo:         p.Photo,
		Hint:          p.Hint,
		SKU:           p.SKU,
		SellingPrice:  toPriceString(p.SellingPrice),
		PurchasePrice: toPriceString(p.PurchasePrice),
		Quantity:      p.Quantity,
		CreatedAt:     p.CreatedAt,
	}
}

func toProductsResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		res = append(res, toProductResponse(p))
	}
	return res
}

func toMarginResponse(m *usecase.MarginView) *MarginResponse {
	if m == nil {
		return nil
	}

	return &MarginResponse{
		Amount:     m.Amount,
		Percent:    m.Percent,
		Display:    m.Display,
		Tone:       string(m.Tone),
		IsNegative: m.IsNegative,
	}
}

func toProductCardResponse(v usecase.ProductView) ProductCardResponse {
	return ProductCardResponse{
		ProductResponse:    toProductResponse(v.Product),
		HintLabel:          v.HintLabel,
		SKULabel:           v.SKULabel,
		SellingPriceLabel:  v.SellingPriceLabel,
		PurchasePriceLabel: v.PurchasePriceLabel,
		Margin:             toMarginResponse(v.Margin),
		Editing:            v.Editing,
	}
}

func toDialogResponse(d usecase.DialogView) DialogResponse {
	return DialogResponse{
		Kind:        string(d.Kind),
		ProductID:   d.ProductID,
		Field:       string(d.Field),
		Title:       d.Title,
		Placeholder: d.Placeholder,
		Staged:      d.Staged,
		CanConfirm:  d.CanConfirm,
	}
}

func toInventoryViewResponse(v *usecase.InventoryView) InventoryViewResponse {
	products := make([]ProductCardResponse, 0, len(v.Products))
	for _, p := range v.Products {
		products = append(products, toProductCardResponse(p))
	}

	return InventoryViewResponse{
		Query:        v.Query,
		EditMode:     string(v.EditMode),
		EditingID:    v.EditingID,
		EmptyMessage: v.EmptyMessage,
		Products:     products,
		Dialog:       toDialogResponse(v.Dialog),
	}
}

func toConfirmResponse(r *usecase.ConfirmRes) ConfirmResponse {
	return ConfirmResponse{
		Committed:    r.Committed,
		Notification: r.Notification,
		Dialog:       toDialogResponse(r.Dialog),
	}
}

func toUploadPhotoResponse(r *usecase.UploadPhotoRes) UploadPhotoResponse {
	return UploadPhotoResponse{
		TicketID:  r.TicketID,
		ProductID: r.ProductID,
	}
}

func toNotificationsResponse(toasts []notify.Toast) []NotificationResponse {
	res := make([]NotificationResponse, 0, len(toasts))
	for _, t := range toasts {
		res = append(res, NotificationResponse{
			Seq:       t.Seq,
			Kind:      string(t.Kind),
			Message:   t.Message,
			CreatedAt: t.CreatedAt,
		})
	}
	return res
}
