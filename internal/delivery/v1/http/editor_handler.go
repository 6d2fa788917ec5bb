package http

import (
	"net/http"

	"github.com/DRSN-tech/inventory-view/internal/domain"
	"github.com/DRSN-tech/inventory-view/internal/usecase"
	"github.com/DRSN-tech/inventory-view/pkg/logger"
)

type EditorHandler struct {
	editorUsecase usecase.EditorUC
	logger        logger.Logger
	maxPhotoSize  int64
}

func NewEditorHandler(editorUsecase usecase.EditorUC, logger logger.Logger, maxPhotoSize int64) *EditorHandler {
	return &EditorHandler{editorUsecase: editorUsecase, logger: logger, maxPhotoSize: maxPhotoSize}
}

// dialog
//
//	@Summary	Текущий диалог
//	@Tags		dialog
//	@Produce	json
//	@Success	200	{object}	DialogResponse
//	@Router		/dialog [get]
func (h *EditorHandler) dialog(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, http.StatusOK, toDialogResponse(*h.editorUsecase.Dialog(r.Context())))
}

// openDialog
//
//	@Summary		Открыть диалог поля
//	@Description	Закрывает предыдущий диалог без сохранения и копирует текущее значение поля во временное
//	@Tags			dialog
//	@Accept			json
//	@Produce		json
//	@Param			body	body		OpenDialogRequest	true	"Товар и поле"
//	@Success		200		{object}	DialogResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/dialog [post]
func (h *EditorHandler) openDialog(w http.ResponseWriter, r *http.Request) {
	var req OpenDialogRequest
	if err := Decode(r, &req); err != nil {
		h.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	field, err := domain.ParseField(req.Field)
	if err != nil {
		WriteError(w, err)
		return
	}

	view, err := h.editorUsecase.OpenDialog(r.Context(), usecase.NewOpenDialogReq(req.ProductID, field))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toDialogResponse(*view))
}

// stageValue
//
//	@Summary	Изменить временное значение
//	@Tags		dialog
//	@Accept		json
//	@Produce	json
//	@Param		body	body		StageValueRequest	true	"Значение"
//	@Success	200		{object}	DialogResponse
//	@Failure	409		{object}	ErrorResponse	"Диалог не открыт"
//	@Router		/dialog/staged [put]
func (h *EditorHandler) stageValue(w http.ResponseWriter, r *http.Request) {
	var req StageValueRequest
	if err := Decode(r, &req); err != nil {
		h.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	view, err := h.editorUsecase.StageValue(r.Context(), req.Value)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toDialogResponse(*view))
}

// uploadPhoto
//
//	@Summary		Загрузить фото в диалог
//	@Description	Фото читается асинхронно и попадает во временное значение, если диалог ещё открыт
//	@Tags			dialog
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			photo	formData	file	true	"Файл изображения"
//	@Success		202		{object}	UploadPhotoResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		413		{object}	ErrorResponse
//	@Router			/dialog/photo [post]
func (h *EditorHandler) uploadPhoto(w http.ResponseWriter, r *http.Request) {
	photo, ok := readPhotoRequest(w, r, h.maxPhotoSize, h.logger)
	if !ok {
		return
	}

	res, err := h.editorUsecase.UploadStagedPhoto(r.Context(), photo)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusAccepted, toUploadPhotoResponse(res))
}

// confirm
//
//	@Summary		Подтвердить изменение
//	@Description	Записывает временное значение в товар. committed = false, если значение недопустимо
//	@Tags			dialog
//	@Produce		json
//	@Success		200	{object}	ConfirmResponse
//	@Router			/dialog/confirm [post]
func (h *EditorHandler) confirm(w http.ResponseWriter, r *http.Request) {
	res, err := h.editorUsecase.ConfirmDialog(r.Context())
	if err != nil {
		h.logger.Errorf(err, "failed to confirm dialog")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toConfirmResponse(res))
}

// cancel
//
//	@Summary	Отменить изменение
//	@Tags		dialog
//	@Produce	json
//	@Success	200	{object}	DialogResponse
//	@Router		/dialog [delete]
func (h *EditorHandler) cancel(w http.ResponseWriter, r *http.Request) {
	view, err := h.editorUsecase.CancelDialog(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toDialogResponse(*view))
}

// readPhotoRequest разбирает multipart-форму и читает файл фото, ошибки пишутся в ответ.
func readPhotoRequest(w http.ResponseWriter, r *http.Request, maxSize int64, log logger.Logger) (*domain.Photo, bool) {
	const (
		formOverhead = 1 << 20
		maxMemory    = 32 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxSize+formOverhead)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		log.Warnf("%s: %s", err.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return nil, false
	}

	photo, err := readPhoto(r, maxSize)
	if err != nil {
		log.Warnf("%s", err.Error())
		WriteError(w, err)
		return nil, false
	}

	return photo, true
}
