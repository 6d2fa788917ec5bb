package http

import (
	"net/http"

	"github.com/DRSN-tech/inventory-view/internal/domain"
	"github.com/DRSN-tech/inventory-view/internal/usecase"
	"github.com/DRSN-tech/inventory-view/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

// view
//
//	@Summary		Экран учёта товаров
//	@Description	Карточки товаров с надписями, маржой, состоянием диалога и пустым состоянием
//	@Tags			view
//	@Produce		json
//	@Param			q	query		string	false	"Поиск по артикулу и подсказке"
//	@Success		200	{object}	InventoryViewResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/view [get]
func (p *ProductHandler) view(w http.ResponseWriter, r *http.Request) {
	view, err := p.productUsecase.View(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		p.logger.Errorf(err, "failed to build inventory view")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toInventoryViewResponse(view))
}

// list
//
//	@Summary		Список товаров
//	@Description	Товары в порядке добавления; q фильтрует по артикулу и подсказке без учёта регистра
//	@Tags			products
//	@Produce		json
//	@Param			q	query		string	false	"Поиск по артикулу и подсказке"
//	@Success		200	{array}		ProductResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/products [get]
func (p *ProductHandler) list(w http.ResponseWriter, r *http.Request) {
	products, err := p.productUsecase.Filter(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		p.logger.Errorf(err, "failed to list products")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductsResponse(products))
}

// add
//
//	@Summary		Добавить товар
//	@Description	Добавляет пустой товар в конец списка
//	@Tags			products
//	@Produce		json
//	@Success		201	{object}	ProductResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/products [post]
func (p *ProductHandler) add(w http.ResponseWriter, r *http.Request) {
	product, err := p.productUsecase.Add(r.Context())
	if err != nil {
		p.logger.Errorf(err, "failed to add product")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toProductResponse(*product))
}

// remove
//
//	@Summary		Удалить товар
//	@Description	Удаляет товар; неизвестный id не является ошибкой
//	@Tags			products
//	@Param			id	path	string	true	"ID товара"
//	@Success		204
//	@Failure		500	{object}	ErrorResponse
//	@Router			/products/{id} [delete]
func (p *ProductHandler) remove(w http.ResponseWriter, r *http.Request) {
	if err := p.productUsecase.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
		p.logger.Errorf(err, "failed to remove product")
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// update
//
//	@Summary		Заменить поле товара
//	@Description	Записывает значение поля без диалога. value = null очищает фото и цены
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"ID товара"
//	@Param			body	body		UpdateFieldRequest	true	"Поле и значение"
//	@Success		200		{object}	UpdateResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/products/{id} [patch]
func (p *ProductHandler) update(w http.ResponseWriter, r *http.Request) {
	var req UpdateFieldRequest
	if err := Decode(r, &req); err != nil {
		p.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	field, err := domain.ParseField(req.Field)
	if err != nil {
		WriteError(w, err)
		return
	}

	value, err := parseFieldValue(field, req.Value)
	if err != nil {
		p.logger.Warnf("%d %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	changed, err := p.productUsecase.Update(r.Context(), usecase.NewUpdateProductReq(id, field, value))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, UpdateResponse{Changed: changed})
}

// toggleEditing
//
//	@Summary		Переключить режим редактирования карточки
//	@Tags			products
//	@Produce		json
//	@Param			id	path		string	true	"ID товара"
//	@Success		200	{object}	EditingResponse
//	@Router			/products/{id}/editing [post]
func (p *ProductHandler) toggleEditing(w http.ResponseWriter, r *http.Request) {
	editingID, err := p.productUsecase.ToggleEditing(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		p.logger.Errorf(err, "failed to toggle editing")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, EditingResponse{EditingID: editingID})
}
