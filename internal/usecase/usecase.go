package usecase

import (
	"context"

	"github.com/DRSN-tech/inventory-view/internal/domain"
)

// ProductUC - управление списком товаров и отображение экрана.
type ProductUC interface {
	Add(ctx context.Context) (*domain.Product, error)
	Remove(ctx context.Context, id string) error
	Update(ctx context.Context, req *UpdateProductReq) (bool, error)
	Filter(ctx context.Context, query string) ([]domain.Product, error)
	ToggleEditing(ctx context.Context, id string) (string, error)
	View(ctx context.Context, query string) (*InventoryView, error)
}

// EditorUC - редактирование полей через диалоги с временным значением.
type EditorUC interface {
	OpenDialog(ctx context.Context, req *OpenDialogReq) (*DialogView, error)
	StageValue(ctx context.Context, value string) (*DialogView, error)
	UploadStagedPhoto(ctx context.Context, photo *domain.Photo) (*UploadPhotoRes, error)
	ConfirmDialog(ctx context.Context) (*ConfirmRes, error)
	CancelDialog(ctx context.Context) (*DialogView, error)
	Dialog(ctx context.Context) *DialogView
}

// InlineUC - редактирование полей прямо в карточке с немедленной записью.
type InlineUC interface {
	SetField(ctx context.Context, req *SetFieldReq) (*ProductView, error)
	UploadPhoto(ctx context.Context, id string, photo *domain.Photo) (*UploadPhotoRes, error)
	ConfirmPrice(ctx context.Context, id string, field domain.Field) (*ConfirmRes, error)
}
