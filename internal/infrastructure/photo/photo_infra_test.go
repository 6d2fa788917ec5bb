package photo

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/DRSN-tech/inventory-view/internal/cfg"
	"github.com/DRSN-tech/inventory-view/internal/domain"
	"github.com/DRSN-tech/inventory-view/internal/usecase"
	"github.com/DRSN-tech/inventory-view/pkg/e"
	"github.com/DRSN-tech/inventory-view/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngHeader - минимальная сигнатура PNG, которой достаточно для http.DetectContentType.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func newReader(t *testing.T, maxSize int64) *PhotoInfrastructure {
	t.Helper()
	return NewPhotoInfrastructure(&cfg.PhotoCfg{MaxSize: maxSize, MaxConcurrent: 2}, logger.NewNop(), context.Background())
}

func readSync(t *testing.T, p *PhotoInfrastructure, req *usecase.ReadPhotoReq) *usecase.ReadPhotoRes {
	t.Helper()
	ch := make(chan *usecase.ReadPhotoRes, 1)

	ticket, err := p.Read(req, func(res *usecase.ReadPhotoRes) { ch <- res })
	require.NoError(t, err)
	require.NotEmpty(t, ticket)

	select {
	case res := <-ch:
		assert.Equal(t, ticket, res.TicketID)
		return res
	case <-time.After(2 * time.Second):
		t.Fatal("photo read did not complete")
		return nil
	}
}

func TestRead_EncodesDataURI(t *testing.T) {
	p := newReader(t, 1<<20)

	res := readSync(t, p, usecase.NewReadPhotoReq("p1", domain.NewPhoto("a.png", "", pngHeader)))

	require.NoError(t, res.Err)
	assert.Equal(t, "p1", res.ProductID)
	assert.True(t, strings.HasPrefix(res.DataURI, "data:image/png;base64,"))
}

func TestRead_KeepsCapturedProductID(t *testing.T) {
	p := newReader(t, 1<<20)

	res := readSync(t, p, usecase.NewReadPhotoReq("captured", domain.NewPhoto("a.png", "", pngHeader)))

	assert.Equal(t, "captured", res.ProductID)
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name  string
		photo *domain.Photo
		err   error
	}{
		{"nil photo", nil, e.ErrNoPhoto},
		{"empty data", domain.NewPhoto("a.png", "", nil), e.ErrNoPhoto},
		{"too large", domain.NewPhoto("big.png", "", append(pngHeader, make([]byte, 64)...)), e.ErrFileTooLarge},
		{"not an image", domain.NewPhoto("a.txt", "", []byte("hello, world")), e.ErrUnsupportedMediaType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newReader(t, 32)

			res := readSync(t, p, usecase.NewReadPhotoReq("p1", tt.photo))

			assert.ErrorIs(t, res.Err, tt.err)
			assert.Empty(t, res.DataURI)
		})
	}
}

func TestRead_AfterStop(t *testing.T) {
	p := newReader(t, 1<<20)
	p.Stop()

	_, err := p.Read(usecase.NewReadPhotoReq("p1", domain.NewPhoto("a.png", "", pngHeader)), func(*usecase.ReadPhotoRes) {
		t.Error("done must not be called")
	})

	assert.ErrorIs(t, err, e.ErrReaderStopped)
}

func TestWait_ReturnsAfterPendingReads(t *testing.T) {
	p := newReader(t, 1<<20)
	release := make(chan struct{})
	finished := make(chan struct{})

	_, err := p.Read(usecase.NewReadPhotoReq("p1", domain.NewPhoto("a.png", "", pngHeader)), func(*usecase.ReadPhotoRes) {
		<-release
		close(finished)
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.Error(t, p.Wait(ctx), "read is still blocked in done")

	close(release)
	require.NoError(t, p.Wait(context.Background()))
	<-finished
}
