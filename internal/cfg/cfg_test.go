package cfg

import (
	"testing"
	"time"

	"github.com/DRSN-tech/inventory-view/internal/domain"
	"github.com/DRSN-tech/inventory-view/pkg/e"
	"github.com/DRSN-tech/inventory-view/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HTTP_PORT", "HTTP_READ_TIMEOUT", "HTTP_WRITE_TIMEOUT", "KEEP_ALIVE",
		"EDIT_MODE", "SWAGGER_URL", "SHUTDOWN_TIMEOUT",
		"PHOTO_MAX_SIZE", "PHOTO_MAX_CONCURRENT", "NOTIFY_CAPACITY", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	c, err := Load(logger.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "8080", c.Http.Port)
	assert.Equal(t, 5*time.Second, c.Http.ReadTimeout)
	assert.Equal(t, 10*time.Second, c.Http.WriteTimeout)
	assert.Equal(t, 60*time.Second, c.Http.IdleTimeout)
	assert.Equal(t, domain.EditModeStaged, c.App.EditMode)
	assert.Equal(t, "http://localhost:8080/swagger/doc.json", c.App.SwaggerURL)
	assert.Equal(t, int64(15<<20), c.Photo.MaxSize)
	assert.Equal(t, 4, c.Photo.MaxConcurrent)
	assert.Equal(t, 64, c.Notify.Capacity)
	assert.Equal(t, "info", LoadLogLevel())
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("EDIT_MODE", "inline")
	t.Setenv("HTTP_READ_TIMEOUT", "2s")
	t.Setenv("PHOTO_MAX_SIZE", "1024")
	t.Setenv("NOTIFY_CAPACITY", "5")

	c, err := Load(logger.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "9090", c.Http.Port)
	assert.Equal(t, domain.EditModeInline, c.App.EditMode)
	assert.Equal(t, 2*time.Second, c.Http.ReadTimeout)
	assert.Equal(t, int64(1024), c.Photo.MaxSize)
	assert.Equal(t, 5, c.Notify.Capacity)
	assert.Equal(t, "http://localhost:9090/swagger/doc.json", c.App.SwaggerURL)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		err  error
	}{
		{"edit mode", "EDIT_MODE", "modal", e.ErrUnknownEditMode},
		{"port", "HTTP_PORT", "http", e.ErrIncorrectEnvVariable},
		{"photo size", "PHOTO_MAX_SIZE", "-1", e.ErrIncorrectEnvVariable},
		{"photo concurrency", "PHOTO_MAX_CONCURRENT", "many", e.ErrIncorrectEnvVariable},
		{"notify capacity", "NOTIFY_CAPACITY", "0", e.ErrIncorrectEnvVariable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load(logger.NewNop())
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("KEEP_ALIVE", "forever")

	_, err := Load(logger.NewNop())
	assert.Error(t, err)
}
