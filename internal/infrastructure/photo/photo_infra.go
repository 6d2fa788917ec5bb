package photo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/DRSN-tech/inventory-view/internal/cfg"
	"github.com/DRSN-tech/inventory-view/internal/domain"
	"github.com/DRSN-tech/inventory-view/internal/infrastructure"
	"github.com/DRSN-tech/inventory-view/internal/metrics"
	"github.com/DRSN-tech/inventory-view/internal/usecase"
	"github.com/DRSN-tech/inventory-view/pkg/e"
	"github.com/DRSN-tech/inventory-view/pkg/logger"
	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
)

// PhotoInfrastructure асинхронно читает загруженные фото и кодирует их в data URI.
// Одновременно выполняется не больше cfg.MaxConcurrent чтений.
type PhotoInfrastructure struct {
	cfg         *cfg.PhotoCfg
	logger      logger.Logger
	shutdownCtx context.Context
	sem         *semaphore.Weighted

	mu      sync.Mutex
	stopped bool
	wg      sync.WaitGroup
}

func NewPhotoInfrastructure(cfg *cfg.PhotoCfg, logger logger.Logger, shutdownCtx context.Context) *PhotoInfrastructure {
	return &PhotoInfrastructure{
		cfg:         cfg,
		logger:      logger,
		shutdownCtx: shutdownCtx,
		sem:         semaphore.NewWeighted(int64(cfg.MaxConcurrent)),
	}
}

// Read принимает запрос и сразу возвращает id заявки. Результат передаётся в done из фоновой горутины,
// вместе с id товара, зафиксированным в запросе.
func (p *PhotoInfrastructure) Read(req *usecase.ReadPhotoReq, done func(*usecase.ReadPhotoRes)) (string, error) {
	const op = "PhotoInfrastructure.Read"

	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return "", e.Wrap(op, e.ErrReaderStopped)
	}
	p.wg.Add(1)
	p.mu.Unlock()

	ticketID := uuid.NewString()
	go func() {
		defer p.wg.Done()

		res := &usecase.ReadPhotoRes{
			TicketID:  ticketID,
			ProductID: req.ProductID,
		}

		if err := p.sem.Acquire(p.shutdownCtx, 1); err != nil {
			res.Err = e.Wrap(op, err)
			metrics.PhotoReadsTotal.WithLabelValues("error").Inc()
			done(res)
			return
		}
		defer p.sem.Release(1)

		start := time.Now()
		res.DataURI, res.Err = p.encode(req.Photo)
		metrics.PhotoReadDuration.Observe(time.Since(start).Seconds())

		if res.Err != nil {
			metrics.PhotoReadsTotal.WithLabelValues("error").Inc()
		} else {
			metrics.PhotoReadsTotal.WithLabelValues("ok").Inc()
			p.logger.Debugf("%s: ticket=%s product=%s encoded %d bytes", op, ticketID, req.ProductID, len(req.Photo.Data))
		}

		done(res)
	}()

	return ticketID, nil
}

// encode проверяет размер и тип файла и возвращает data URI.
func (p *PhotoInfrastructure) encode(photo *domain.Photo) (string, error) {
	const op = "PhotoInfrastructure.encode"

	if photo == nil || len(photo.Data) == 0 {
		return "", e.Wrap(op, e.ErrNoPhoto)
	}

	if int64(len(photo.Data)) > p.cfg.MaxSize {
		return "", e.Wrap(op, e.Wrap(photo.Name, e.ErrFileTooLarge))
	}

	mime, err := infrastructure.DetectImageMIME(photo.Data)
	if err != nil {
		return "", e.Wrap(op, fmt.Errorf("invalid mime type for %s: %w", photo.Name, err))
	}

	return domain.NewPhoto(photo.Name, mime, photo.Data).DataURI(), nil
}

// Stop запрещает новые чтения. Уже принятые продолжают выполняться.
func (p *PhotoInfrastructure) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopped = true
}

// Wait ожидает завершения всех принятых чтений с учётом таймаута завершения приложения.
func (p *PhotoInfrastructure) Wait(shutdownTimeoutCtx context.Context) error {
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-shutdownTimeoutCtx.Done():
		return fmt.Errorf("photo reads did not finish during shutdown: %w", shutdownTimeoutCtx.Err())
	}
}
