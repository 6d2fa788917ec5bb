package usecase

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/DRSN-tech/inventory-view/internal/domain"
	"github.com/DRSN-tech/inventory-view/internal/repository/memory"
	"github.com/DRSN-tech/inventory-view/pkg/logger"
)

type fakeNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *fakeNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, msg)
}

func (n *fakeNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, msg)
}

func (n *fakeNotifier) Successes() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.successes...)
}

func (n *fakeNotifier) Errors() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.errors...)
}

// pendingRead - принятое, но ещё не завершённое чтение фото
type pendingRead struct {
	ticketID string
	req      *ReadPhotoReq
	done     func(*ReadPhotoRes)
}

// fakePhotoReader откладывает завершение чтений до явного вызова complete/fail.
type fakePhotoReader struct {
	mu      sync.Mutex
	pending []pendingRead
	seq     int
	err     error
}

func (r *fakePhotoReader) Read(req *ReadPhotoReq, done func(*ReadPhotoRes)) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return "", r.err
	}
	r.seq++
	ticketID := fmt.Sprintf("ticket-%d", r.seq)
	r.pending = append(r.pending, pendingRead{ticketID: ticketID, req: req, done: done})
	return ticketID, nil
}

func (r *fakePhotoReader) pop(t *testing.T) pendingRead {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.pending) == 0 {
		t.Fatal("no pending photo reads")
	}
	p := r.pending[0]
	r.pending = r.pending[1:]
	return p
}

func (r *fakePhotoReader) complete(t *testing.T, dataURI string) {
	t.Helper()
	p := r.pop(t)
	p.done(&ReadPhotoRes{TicketID: p.ticketID, ProductID: p.req.ProductID, DataURI: dataURI})
}

func (r *fakePhotoReader) fail(t *testing.T, err error) {
	t.Helper()
	p := r.pop(t)
	p.done(&ReadPhotoRes{TicketID: p.ticketID, ProductID: p.req.ProductID, Err: err})
}

type fixture struct {
	uc       *InventoryUseCase
	repo     *memory.ProductRepo
	photos   *fakePhotoReader
	notifier *fakeNotifier
}

func newFixture(mode domain.EditMode) *fixture {
	f := &fixture{
		repo:     memory.NewProductRepo(),
		photos:   &fakePhotoReader{},
		notifier: &fakeNotifier{},
	}
	f.uc = NewInventoryUC(f.repo, f.photos, f.notifier, logger.NewNop(), mode)

	var n int
	f.uc.newID = func() string {
		n++
		return fmt.Sprintf("p%d", n)
	}
	f.uc.now = func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }

	return f
}

func testPhoto() *domain.Photo {
	return domain.NewPhoto("a.png", "image/png", []byte("png"))
}
