package usecase

import (
	"context"

	"github.com/DRSN-tech/inventory-view/internal/domain"
	"github.com/DRSN-tech/inventory-view/pkg/e"
)

// OpenDialog открывает диалог поля и загружает текущее значение во временное хранилище.
// Ранее открытый диалог закрывается без сохранения. Для неизвестного товара диалог остаётся закрытым.
func (u *InventoryUseCase) OpenDialog(ctx context.Context, req *OpenDialogReq) (*DialogView, error) {
	const op = "InventoryUseCase.OpenDialog"

	if err := u.requireMode(domain.EditModeStaged); err != nil {
		return nil, e.Wrap(op, err)
	}
	if !req.Field.HasDialog() {
		return nil, e.Wrap(op, e.Wrap(string(req.Field), e.ErrFieldNotEditable))
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	product, found, err := u.productRepo.Get(ctx, req.ProductID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if !found {
		u.dialog = domain.ClosedDialog()
	} else {
		u.dialog = domain.EditingDialog(product.ID, req.Field, domain.StagedValue(product, req.Field))
	}

	view := NewDialogView(u.dialog)
	return &view, nil
}

// StageValue заменяет временное значение открытого диалога.
func (u *InventoryUseCase) StageValue(ctx context.Context, value string) (*DialogView, error) {
	const op = "InventoryUseCase.StageValue"

	if err := u.requireMode(domain.EditModeStaged); err != nil {
		return nil, e.Wrap(op, err)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if !u.dialog.IsOpen() {
		return nil, e.Wrap(op, e.ErrDialogNotOpen)
	}
	u.dialog = u.dialog.WithStaged(value)

	view := NewDialogView(u.dialog)
	return &view, nil
}

// UploadStagedPhoto запускает асинхронное чтение фото для открытого диалога фото.
// Результат попадает во временное значение, только если это последняя заявка всё ещё открытого диалога.
func (u *InventoryUseCase) UploadStagedPhoto(ctx context.Context, photo *domain.Photo) (*UploadPhotoRes, error) {
	const op = "InventoryUseCase.UploadStagedPhoto"

	if err := u.requireMode(domain.EditModeStaged); err != nil {
		return nil, e.Wrap(op, err)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if !u.dialog.IsOpen() || u.dialog.Field != domain.FieldPhoto {
		return nil, e.Wrap(op, e.ErrDialogNotOpen)
	}

	// Read не должен блокироваться: обработчик результата берёт u.mu
	productID := u.dialog.ProductID
	ticketID, err := u.photoReader.Read(NewReadPhotoReq(productID, photo), u.onStagedPhotoRead)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	u.dialog = u.dialog.WithTicket(ticketID)

	return NewUploadPhotoRes(ticketID, productID), nil
}

func (u *InventoryUseCase) onStagedPhotoRead(res *ReadPhotoRes) {
	const op = "InventoryUseCase.onStagedPhotoRead"

	u.mu.Lock()
	defer u.mu.Unlock()

	if res.Err != nil {
		u.logger.Warnf("%s: ticket=%s product=%s: %v", op, res.TicketID, res.ProductID, res.Err)
		u.notifier.Error(domain.MsgPhotoReadFailed)
		return
	}

	if !u.dialog.AwaitsPhoto(res.ProductID, res.TicketID) {
		u.logger.Debugf("%s: photo dialog for product %s no longer waits for ticket %s, dropping", op, res.ProductID, res.TicketID)
		return
	}

	u.dialog = u.dialog.WithStaged(res.DataURI).WithTicket("")
}

// ConfirmDialog записывает временное значение в товар, если оно допустимо.
// Недопустимое значение ничего не меняет и оставляет диалог открытым.
func (u *InventoryUseCase) ConfirmDialog(ctx context.Context) (*ConfirmRes, error) {
	const op = "InventoryUseCase.ConfirmDialog"

	if err := u.requireMode(domain.EditModeStaged); err != nil {
		return nil, e.Wrap(op, err)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	value, ok := u.dialog.CommitValue()
	if !ok {
		return &ConfirmRes{Dialog: NewDialogView(u.dialog)}, nil
	}

	if _, err := u.update(ctx, NewUpdateProductReq(u.dialog.ProductID, u.dialog.Field, value)); err != nil {
		return nil, e.Wrap(op, err)
	}

	msg := domain.ConfirmMessage(u.dialog.Field)
	u.notifier.Success(msg)
	u.dialog = domain.ClosedDialog()

	return &ConfirmRes{
		Committed:    true,
		Notification: msg,
		Dialog:       NewDialogView(u.dialog),
	}, nil
}

// CancelDialog закрывает диалог и отбрасывает временное значение.
func (u *InventoryUseCase) CancelDialog(ctx context.Context) (*DialogView, error) {
	const op = "InventoryUseCase.CancelDialog"

	if err := u.requireMode(domain.EditModeStaged); err != nil {
		return nil, e.Wrap(op, err)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	u.dialog = domain.ClosedDialog()

	view := NewDialogView(u.dialog)
	return &view, nil
}

func (u *InventoryUseCase) Dialog(ctx context.Context) *DialogView {
	u.mu.Lock()
	defer u.mu.Unlock()

	view := NewDialogView(u.dialog)
	return &view
}

func (u *InventoryUseCase) requireMode(mode domain.EditMode) error {
	if u.mode != mode {
		return e.Wrap(string(u.mode), e.ErrWrongEditMode)
	}

	return nil
}
