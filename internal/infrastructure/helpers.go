package infrastructure

import (
	"net/http"

	"github.com/DRSN-tech/inventory-view/pkg/e"
)

// GetExtensionFromMIME возвращает расширение файла по MIME-типу изображения.
// Поддерживает jpeg, jpg, png, webp, gif. Возвращает ошибку e.ErrUnsupportedMediaType для неподдерживаемых типов.
func GetExtensionFromMIME(mime string) (string, error) {
	switch mime {
	case "image/jpeg", "image/jpg":
		return "jpg", nil
	case "image/png":
		return "png", nil
	case "image/webp":
		return "webp", nil
	case "image/gif":
		return "gif", nil
	default:
		return "bin", e.ErrUnsupportedMediaType
	}
}

// DetectImageMIME определяет MIME-тип по первым байтам файла и проверяет, что это изображение.
func DetectImageMIME(data []byte) (string, error) {
	mime := http.DetectContentType(data[:min(len(data), 512)])
	if _, err := GetExtensionFromMIME(mime); err != nil {
		return mime, e.Wrap(mime, err)
	}

	return mime, nil
}
