package infrastructure

import (
	"testing"

	"github.com/DRSN-tech/inventory-view/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExtensionFromMIME(t *testing.T) {
	tests := map[string]string{
		"image/jpeg": "jpg",
		"image/jpg":  "jpg",
		"image/png":  "png",
		"image/webp": "webp",
		"image/gif":  "gif",
	}
	for mime, ext := range tests {
		got, err := GetExtensionFromMIME(mime)
		require.NoError(t, err, mime)
		assert.Equal(t, ext, got)
	}

	_, err := GetExtensionFromMIME("application/pdf")
	assert.ErrorIs(t, err, e.ErrUnsupportedMediaType)
}

func TestDetectImageMIME(t *testing.T) {
	mime, err := DetectImageMIME([]byte("GIF89a\x01\x00\x01\x00"))
	require.NoError(t, err)
	assert.Equal(t, "image/gif", mime)

	_, err = DetectImageMIME([]byte("%PDF-1.4"))
	assert.ErrorIs(t, err, e.ErrUnsupportedMediaType)
}
