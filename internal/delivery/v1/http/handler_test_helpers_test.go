package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DRSN-tech/inventory-view/internal/cfg"
	"github.com/DRSN-tech/inventory-view/internal/domain"
	"github.com/DRSN-tech/inventory-view/internal/infrastructure/notify"
	"github.com/DRSN-tech/inventory-view/internal/infrastructure/photo"
	"github.com/DRSN-tech/inventory-view/internal/repository/memory"
	"github.com/DRSN-tech/inventory-view/internal/usecase"
	"github.com/DRSN-tech/inventory-view/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

const testMaxPhotoSize = 1 << 20

// pngHeader - минимальная сигнатура PNG, которой достаточно для http.DetectContentType.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func newTestRouter(t *testing.T, mode domain.EditMode) http.Handler {
	t.Helper()
	log := logger.NewNop()

	photos := photo.NewPhotoInfrastructure(&cfg.PhotoCfg{MaxSize: testMaxPhotoSize, MaxConcurrent: 2}, log, context.Background())
	t.Cleanup(func() {
		photos.Stop()
		_ = photos.Wait(context.Background())
	})

	feed := notify.NewToastFeed(16, log)
	uc := usecase.NewInventoryUC(memory.NewProductRepo(), photos, feed, log, mode)

	r := chi.NewRouter()
	NewRouter(r, log).Init(RouterDeps{
		Inventory:    uc,
		Feed:         feed,
		EditMode:     mode,
		MaxPhotoSize: testMaxPhotoSize,
		SwaggerURL:   "/swagger/doc.json",
	})

	return r
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	r := httptest.NewRequest(method, path, reader)
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec
}

func doRaw(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	r.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec
}

func doPhoto(t *testing.T, h http.Handler, path string, data []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(photoFormField, "photo.png")
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, path, &buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func addProduct(t *testing.T, h http.Handler) string {
	t.Helper()

	rec := do(t, h, http.MethodPost, "/api/v1/products", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	return decode[ProductResponse](t, rec).ID
}
