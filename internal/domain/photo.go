package domain

import (
	"encoding/base64"
	"strings"
)

// Photo описывает файл изображения, выбранный пользователем
type Photo struct {
	Name     string // оригинальное имя файла (для логов)
	MimeType string
	Data     []byte
}

func NewPhoto(name string, mimeType string, data []byte) *Photo {
	return &Photo{
		Name:     name,
		MimeType: mimeType,
		Data:     data,
	}
}

// DataURI кодирует изображение для встраивания: data:<mime>;base64,<data>
func (p *Photo) DataURI() string {
	var b strings.Builder
	b.Grow(len("data:;base64,") + len(p.MimeType) + base64.StdEncoding.EncodedLen(len(p.Data)))
	b.WriteString("data:")
	b.WriteString(p.MimeType)
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(p.Data))

	return b.String()
}
