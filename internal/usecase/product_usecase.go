package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/DRSN-tech/inventory-view/internal/domain"
	"github.com/DRSN-tech/inventory-view/pkg/e"
	"github.com/DRSN-tech/inventory-view/pkg/logger"
	"github.com/google/uuid"
)

// InventoryUseCase владеет состоянием экрана учёта товаров: списком товаров,
// отметкой редактируемого товара и единственным диалогом редактирования.
// Все изменения проходят последовательно под одним мьютексом.
type InventoryUseCase struct {
	mu          sync.Mutex
	productRepo ProductRepository
	photoReader PhotoReader
	notifier    Notifier
	logger      logger.Logger
	mode        domain.EditMode

	dialog    domain.Dialog
	editingID string

	newID func() string
	now   func() time.Time
}

func NewInventoryUC(
	productRepo ProductRepository,
	photoReader PhotoReader,
	notifier Notifier,
	logger logger.Logger,
	mode domain.EditMode,
) *InventoryUseCase {
	return &InventoryUseCase{
		productRepo: productRepo,
		photoReader: photoReader,
		notifier:    notifier,
		logger:      logger,
		mode:        mode,
		dialog:      domain.ClosedDialog(),
		newID:       newProductID,
		now:         time.Now,
	}
}

// newProductID выдаёт UUIDv7: уникален и растёт со временем создания.
func newProductID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}

// Add добавляет пустой товар в конец списка и делает его редактируемым.
func (u *InventoryUseCase) Add(ctx context.Context) (*domain.Product, error) {
	const op = "InventoryUseCase.Add"

	u.mu.Lock()
	defer u.mu.Unlock()

	product := domain.NewProduct(u.newID(), u.now())
	if err := u.productRepo.Append(ctx, *product); err != nil {
		return nil, e.Wrap(op, err)
	}
	u.editingID = product.ID

	u.logger.Debugf("%s: product added, id=%s", op, product.ID)
	return product, nil
}

// Remove удаляет товар. Неизвестный id молча игнорируется, уведомление показывается всегда.
func (u *InventoryUseCase) Remove(ctx context.Context, id string) error {
	const op = "InventoryUseCase.Remove"

	u.mu.Lock()
	defer u.mu.Unlock()

	removed, err := u.productRepo.Delete(ctx, id)
	if err != nil {
		return e.Wrap(op, err)
	}

	if u.dialog.IsOpen() && u.dialog.ProductID == id {
		u.dialog = domain.ClosedDialog()
	}
	if u.editingID == id {
		u.editingID = ""
	}

	if !removed {
		u.logger.Debugf("%s: product not found, id=%s", op, id)
	}
	u.notifier.Success(domain.MsgProductDeleted)

	return nil
}

// Update заменяет одно поле товара. Возвращает false, если товара с таким id нет.
func (u *InventoryUseCase) Update(ctx context.Context, req *UpdateProductReq) (bool, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.update(ctx, req)
}

// update требует удерживаемого u.mu.
func (u *InventoryUseCase) update(ctx context.Context, req *UpdateProductReq) (bool, error) {
	const op = "InventoryUseCase.update"

	changed, err := u.productRepo.Replace(ctx, req.ID, func(p domain.Product) (domain.Product, error) {
		return p.With(req.Field, req.Value)
	})
	if err != nil {
		return false, e.Wrap(op, err)
	}

	if !changed {
		u.logger.Debugf("%s: product not found, id=%s field=%s", op, req.ID, req.Field)
	}

	return changed, nil
}

// Filter возвращает товары, у которых артикул или подсказка содержат query без учёта регистра.
func (u *InventoryUseCase) Filter(ctx context.Context, query string) ([]domain.Product, error) {
	const op = "InventoryUseCase.Filter"

	products, err := u.productRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return filterProducts(products, query), nil
}

// ToggleEditing переключает отметку редактирования товара и возвращает новое значение.
func (u *InventoryUseCase) ToggleEditing(ctx context.Context, id string) (string, error) {
	const op = "InventoryUseCase.ToggleEditing"

	u.mu.Lock()
	defer u.mu.Unlock()

	if u.editingID == id {
		u.editingID = ""
		return u.editingID, nil
	}

	_, found, err := u.productRepo.Get(ctx, id)
	if err != nil {
		return "", e.Wrap(op, err)
	}
	if found {
		u.editingID = id
	}

	return u.editingID, nil
}

// View строит модель экрана для текущего состояния и строки поиска.
func (u *InventoryUseCase) View(ctx context.Context, query string) (*InventoryView, error) {
	const op = "InventoryUseCase.View"

	u.mu.Lock()
	defer u.mu.Unlock()

	products, err := u.productRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	filtered := filterProducts(products, query)

	views := make([]ProductView, 0, len(filtered))
	for _, p := range filtered {
		views = append(views, newProductView(p, u.editingID))
	}

	view := &InventoryView{
		Query:     query,
		Products:  views,
		EditingID: u.editingID,
		Dialog:    NewDialogView(u.dialog),
		EditMode:  u.mode,
	}

	if len(views) == 0 {
		if query == "" {
			view.EmptyMessage = domain.EmptyNoProducts
		} else {
			view.EmptyMessage = domain.EmptyNothingFound
		}
	}

	return view, nil
}

// Count возвращает количество товаров в списке.
func (u *InventoryUseCase) Count() int {
	return u.productRepo.Len()
}

func filterProducts(products []domain.Product, query string) []domain.Product {
	if query == "" {
		return products
	}

	q := strings.ToLower(query)
	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.SKU), q) || strings.Contains(strings.ToLower(p.Hint), q) {
			result = append(result, p)
		}
	}

	return result
}

func newProductView(p domain.Product, editingID string) ProductView {
	view := ProductView{
		Product:            p,
		HintLabel:          domain.LabelHint,
		SKULabel:           domain.LabelSKUPlaceholder,
		SellingPriceLabel:  domain.LabelSellingPrice,
		PurchasePriceLabel: domain.LabelPurchasePrice,
		Margin:             NewMarginView(domain.ComputeMargin(p)),
		Editing:            p.ID == editingID,
	}

	if p.Hint != "" {
		view.HintLabel = domain.LabelHintSet
	}
	if p.SKU != "" {
		view.SKULabel = p.SKU
	}
	if p.SellingPrice != nil {
		view.SellingPriceLabel = fmt.Sprintf(domain.LabelSellingPriceSet, domain.FormatPrice(p.SellingPrice))
	}
	if p.PurchasePrice != nil {
		view.PurchasePriceLabel = fmt.Sprintf(domain.LabelPurchasePriceSet, domain.FormatPrice(p.PurchasePrice))
	}

	return view
}
