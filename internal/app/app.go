package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	config "github.com/DRSN-tech/inventory-view/internal/cfg"
	v1Http "github.com/DRSN-tech/inventory-view/internal/delivery/v1/http"
	"github.com/DRSN-tech/inventory-view/internal/infrastructure/notify"
	"github.com/DRSN-tech/inventory-view/internal/infrastructure/photo"
	"github.com/DRSN-tech/inventory-view/internal/metrics"
	"github.com/DRSN-tech/inventory-view/internal/repository/memory"
	"github.com/DRSN-tech/inventory-view/internal/usecase"
	"github.com/DRSN-tech/inventory-view/pkg/closer"
	"github.com/DRSN-tech/inventory-view/pkg/e"
	"github.com/DRSN-tech/inventory-view/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

type App struct {
	cfg    *config.Config
	logger logger.Logger

	httpSrv *v1Http.Server
	photos  *photo.PhotoInfrastructure
	closer  *closer.Closer

	// отменяется при завершении, чтобы ожидающие чтения фото не висели на семафоре
	photoCancel context.CancelFunc
}

func NewApp(cfg *config.Config, logger logger.Logger) (*App, error) {
	productRepo := memory.NewProductRepo()
	feed := notify.NewToastFeed(cfg.Notify.Capacity, logger)

	photoCtx, photoCancel := context.WithCancel(context.Background())
	photos := photo.NewPhotoInfrastructure(cfg.Photo, logger, photoCtx)

	inventoryUC := usecase.NewInventoryUC(productRepo, photos, feed, logger, cfg.App.EditMode)

	if err := metrics.RegisterInventoryMetrics(prometheus.DefaultRegisterer, inventoryUC.Count); err != nil {
		photoCancel()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, logger)
	router.Init(v1Http.RouterDeps{
		Inventory:    inventoryUC,
		Feed:         feed,
		EditMode:     cfg.App.EditMode,
		MaxPhotoSize: cfg.Photo.MaxSize,
		SwaggerURL:   cfg.App.SwaggerURL,
	})

	a := &App{
		cfg:         cfg,
		logger:      logger,
		httpSrv:     v1Http.NewServer(r, cfg.Http),
		photos:      photos,
		closer:      closer.NewCloser(0, logger),
		photoCancel: photoCancel,
	}

	// Закрываются в обратном порядке: сначала HTTP, затем чтение фото
	a.closer.Add("photo reader", func(ctx context.Context) error {
		a.photos.Stop()
		err := a.photos.Wait(ctx)
		a.photoCancel()
		return err
	})
	a.closer.Add("http server", a.httpSrv.Stop)

	return a, nil
}

// Run запускает HTTP-сервер и блокируется до сигнала завершения или ошибки сервера.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Infof("HTTP server started on port %s, edit mode %s", a.cfg.Http.Port, a.cfg.App.EditMode)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			return e.Wrap(whereami.WhereAmI(), err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		a.logger.Infof("Stopping gracefully...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.App.ShutdownTimeout)
		defer cancel()

		if err := a.closer.Close(shutdownCtx); err != nil {
			a.logger.Errorf(err, "shutdown error")
			return err
		}
		return nil
	})

	err := g.Wait()
	a.logger.Infof("Application shutdown complete")

	return err
}
