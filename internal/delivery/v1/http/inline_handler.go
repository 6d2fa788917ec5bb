package http

import (
	"net/http"

	"github.com/DRSN-tech/inventory-view/internal/domain"
	"github.com/DRSN-tech/inventory-view/internal/usecase"
	"github.com/DRSN-tech/inventory-view/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type InlineHandler struct {
	inlineUsecase usecase.InlineUC
	logger        logger.Logger
	maxPhotoSize  int64
}

func NewInlineHandler(inlineUsecase usecase.InlineUC, logger logger.Logger, maxPhotoSize int64) *InlineHandler {
	return &InlineHandler{inlineUsecase: inlineUsecase, logger: logger, maxPhotoSize: maxPhotoSize}
}

// setField
//
//	@Summary		Изменить поле в карточке
//	@Description	Значение записывается сразу. Нечисловая цена сохраняется как незаданная
//	@Tags			inline
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"ID товара"
//	@Param			field	path		string			true	"Поле"	Enums(photo, hint, sku, sellingPrice, purchasePrice, quantity)
//	@Param			body	body		SetFieldRequest	true	"Значение"
//	@Success		200		{object}	UpdateResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/products/{id}/fields/{field} [put]
func (h *InlineHandler) setField(w http.ResponseWriter, r *http.Request) {
	field, err := domain.ParseField(chi.URLParam(r, "field"))
	if err != nil {
		WriteError(w, err)
		return
	}

	var req SetFieldRequest
	if err := Decode(r, &req); err != nil {
		h.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	view, err := h.inlineUsecase.SetField(r.Context(), usecase.NewSetFieldReq(chi.URLParam(r, "id"), field, req.Value))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	res := UpdateResponse{}
	if view != nil {
		card := toProductCardResponse(*view)
		res.Changed = true
		res.Product = &card
	}

	WriteSuccess(w, http.StatusOK, res)
}

// uploadPhoto
//
//	@Summary		Загрузить фото товара
//	@Description	Фото читается асинхронно и записывается в товар, если он ещё существует
//	@Tags			inline
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id		path		string	true	"ID товара"
//	@Param			photo	formData	file	true	"Файл изображения"
//	@Success		202		{object}	UploadPhotoResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		413		{object}	ErrorResponse
//	@Router			/products/{id}/photo [post]
func (h *InlineHandler) uploadPhoto(w http.ResponseWriter, r *http.Request) {
	photo, ok := readPhotoRequest(w, r, h.maxPhotoSize, h.logger)
	if !ok {
		return
	}

	res, err := h.inlineUsecase.UploadPhoto(r.Context(), chi.URLParam(r, "id"), photo)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusAccepted, toUploadPhotoResponse(res))
}

// confirmPrice
//
//	@Summary		Зафиксировать цену
//	@Description	Только уведомление: цена уже записана. committed = false, если цена не задана или равна нулю
//	@Tags			inline
//	@Produce		json
//	@Param			id		path		string	true	"ID товара"
//	@Param			field	path		string	true	"Поле цены"	Enums(sellingPrice, purchasePrice)
//	@Success		200		{object}	ConfirmResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/products/{id}/fields/{field}/confirm [post]
func (h *InlineHandler) confirmPrice(w http.ResponseWriter, r *http.Request) {
	field, err := domain.ParseField(chi.URLParam(r, "field"))
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := h.inlineUsecase.ConfirmPrice(r.Context(), chi.URLParam(r, "id"), field)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toConfirmResponse(res))
}
