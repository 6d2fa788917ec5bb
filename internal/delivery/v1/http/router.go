package http

import (
	"net/http"

	_ "github.com/DRSN-tech/inventory-view/docs" // Регистрация swagger-документа
	"github.com/DRSN-tech/inventory-view/internal/domain"
	"github.com/DRSN-tech/inventory-view/internal/metrics"
	"github.com/DRSN-tech/inventory-view/internal/usecase"
	"github.com/DRSN-tech/inventory-view/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// InventoryUC - всё, что умеет экран учёта товаров
type InventoryUC interface {
	usecase.ProductUC
	usecase.EditorUC
	usecase.InlineUC
}

// RouterDeps - зависимости обработчиков
type RouterDeps struct {
	Inventory    InventoryUC
	Feed         NotificationFeed
	EditMode     domain.EditMode
	MaxPhotoSize int64
	SwaggerURL   string
}

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

// Init регистрирует маршруты. Маршруты редактирования подключаются только для выбранного режима.
func (r *Router) Init(deps RouterDeps) {
	r.router.Use(middleware.Recoverer)
	r.router.Use(Metrics)

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(deps.SwaggerURL),
	))
	r.router.Handle("/metrics", metrics.Handler())
	r.router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		WriteSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.router.Route("/api/v1", func(v1 chi.Router) {
		prHandler := NewProductHandler(deps.Inventory, r.logger)
		v1.Get("/view", prHandler.view)

		v1.Route("/products", func(pr chi.Router) {
			registerProductRoutes(pr, prHandler)
			if deps.EditMode == domain.EditModeInline {
				registerInlineRoutes(pr, NewInlineHandler(deps.Inventory, r.logger, deps.MaxPhotoSize))
			}
		})

		if deps.EditMode == domain.EditModeStaged {
			registerDialogRoutes(v1, NewEditorHandler(deps.Inventory, r.logger, deps.MaxPhotoSize))
		}

		ntHandler := NewNotificationHandler(deps.Feed)
		v1.Get("/notifications", ntHandler.drain)
	})
}

func registerProductRoutes(pr chi.Router, prHandler *ProductHandler) {
	pr.Get("/", prHandler.list)
	pr.Post("/", prHandler.add)
	pr.Delete("/{id}", prHandler.remove)
	pr.Patch("/{id}", prHandler.update)
	pr.Post("/{id}/editing", prHandler.toggleEditing)
}

func registerDialogRoutes(router chi.Router, h *EditorHandler) {
	router.Route("/dialog", func(d chi.Router) {
		d.Get("/", h.dialog)
		d.Post("/", h.openDialog)
		d.Delete("/", h.cancel)
		d.Put("/staged", h.stageValue)
		d.Post("/photo", h.uploadPhoto)
		d.Post("/confirm", h.confirm)
	})
}

func registerInlineRoutes(pr chi.Router, h *InlineHandler) {
	pr.Put("/{id}/fields/{field}", h.setField)
	pr.Post("/{id}/photo", h.uploadPhoto)
	pr.Post("/{id}/fields/{field}/confirm", h.confirmPrice)
}
