package usecase

import (
	"context"
	"strconv"
	"strings"

	"github.com/DRSN-tech/inventory-view/internal/domain"
	"github.com/DRSN-tech/inventory-view/pkg/e"
)

// SetField сразу записывает введённое значение в товар.
// Нечисловая или пустая цена записывается как незаданная.
// Возвращает nil, если товара с таким id нет.
func (u *InventoryUseCase) SetField(ctx context.Context, req *SetFieldReq) (*ProductView, error) {
	const op = "InventoryUseCase.SetField"

	if err := u.requireMode(domain.EditModeInline); err != nil {
		return nil, e.Wrap(op, err)
	}

	value, err := parseInlineValue(req.Field, req.Raw)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	changed, err := u.update(ctx, NewUpdateProductReq(req.ID, req.Field, value))
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if !changed {
		return nil, nil
	}

	product, found, err := u.productRepo.Get(ctx, req.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if !found {
		return nil, nil
	}

	view := newProductView(product, u.editingID)
	return &view, nil
}

// UploadPhoto запускает асинхронное чтение фото для товара.
// Id товара фиксируется в момент запроса; если товар удалён до окончания чтения, результат отбрасывается.
func (u *InventoryUseCase) UploadPhoto(ctx context.Context, id string, photo *domain.Photo) (*UploadPhotoRes, error) {
	const op = "InventoryUseCase.UploadPhoto"

	if err := u.requireMode(domain.EditModeInline); err != nil {
		return nil, e.Wrap(op, err)
	}

	ticketID, err := u.photoReader.Read(NewReadPhotoReq(id, photo), u.onInlinePhotoRead)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewUploadPhotoRes(ticketID, id), nil
}

func (u *InventoryUseCase) onInlinePhotoRead(res *ReadPhotoRes) {
	const op = "InventoryUseCase.onInlinePhotoRead"

	u.mu.Lock()
	defer u.mu.Unlock()

	if res.Err != nil {
		u.logger.Warnf("%s: ticket=%s product=%s: %v", op, res.TicketID, res.ProductID, res.Err)
		u.notifier.Error(domain.MsgPhotoReadFailed)
		return
	}

	changed, err := u.update(context.Background(), NewUpdateProductReq(res.ProductID, domain.FieldPhoto, res.DataURI))
	if err != nil {
		u.logger.Errorf(err, "%s: failed to store photo, ticket=%s", op, res.TicketID)
		u.notifier.Error(domain.MsgPhotoReadFailed)
		return
	}

	if changed {
		u.notifier.Success(domain.MsgPhotoUploaded)
	}
}

// ConfirmPrice только показывает уведомление: цена уже записана.
// Недоступно, пока цена не задана или равна нулю.
func (u *InventoryUseCase) ConfirmPrice(ctx context.Context, id string, field domain.Field) (*ConfirmRes, error) {
	const op = "InventoryUseCase.ConfirmPrice"

	if err := u.requireMode(domain.EditModeInline); err != nil {
		return nil, e.Wrap(op, err)
	}
	if !field.IsPrice() {
		return nil, e.Wrap(op, e.Wrap(string(field), e.ErrFieldNotEditable))
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	product, found, err := u.productRepo.Get(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	res := &ConfirmRes{Dialog: NewDialogView(domain.ClosedDialog())}
	if !found {
		return res, nil
	}

	price := product.Price(field)
	if price == nil || price.IsZero() {
		return res, nil
	}

	res.Committed = true
	res.Notification = domain.ConfirmMessage(field)
	u.notifier.Success(res.Notification)

	return res, nil
}

func parseInlineValue(field domain.Field, raw string) (any, error) {
	switch field {
	case domain.FieldPhoto, domain.FieldHint, domain.FieldSKU:
		return raw, nil
	case domain.FieldSellingPrice, domain.FieldPurchasePrice:
		price, ok := domain.ParsePrice(raw)
		if !ok {
			return nil, nil
		}
		return price, nil
	case domain.FieldQuantity:
		qty, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || qty < 0 {
			return nil, e.Wrap(string(field), e.ErrInvalidFieldValue)
		}
		return qty, nil
	default:
		return nil, e.Wrap(string(field), e.ErrUnknownField)
	}
}
