package notify

import (
	"sync"
	"time"

	"github.com/DRSN-tech/inventory-view/internal/metrics"
	"github.com/DRSN-tech/inventory-view/pkg/logger"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Toast - всплывающее уведомление
type Toast struct {
	Seq       int64
	Kind      Kind
	Message   string
	CreatedAt time.Time
}

// ToastFeed копит уведомления, пока клиент их не заберёт.
// При переполнении вытесняются самые старые.
type ToastFeed struct {
	mu       sync.Mutex
	capacity int
	toasts   []Toast
	seq      int64
	logger   logger.Logger
	now      func() time.Time
}

func NewToastFeed(capacity int, logger logger.Logger) *ToastFeed {
	if capacity <= 0 {
		capacity = 1
	}

	return &ToastFeed{
		capacity: capacity,
		toasts:   make([]Toast, 0, capacity),
		logger:   logger,
		now:      time.Now,
	}
}

func (f *ToastFeed) Success(msg string) {
	f.logger.Infof("toast: %s", msg)
	f.push(KindSuccess, msg)
}

func (f *ToastFeed) Error(msg string) {
	f.logger.Warnf("toast: %s", msg)
	f.push(KindError, msg)
}

func (f *ToastFeed) push(kind Kind, msg string) {
	metrics.NotificationsTotal.WithLabelValues(string(kind)).Inc()

	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	if len(f.toasts) == f.capacity {
		f.toasts = append(f.toasts[:0], f.toasts[1:]...)
	}
	f.toasts = append(f.toasts, Toast{
		Seq:       f.seq,
		Kind:      kind,
		Message:   msg,
		CreatedAt: f.now(),
	})
}

// Drain возвращает накопленные уведомления в порядке появления и очищает очередь.
func (f *ToastFeed) Drain() []Toast {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Toast, len(f.toasts))
	copy(out, f.toasts)
	f.toasts = f.toasts[:0]

	return out
}

func (f *ToastFeed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.toasts)
}
