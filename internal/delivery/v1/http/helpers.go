package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/DRSN-tech/inventory-view/internal/domain"
	"github.com/DRSN-tech/inventory-view/pkg/e"
	"github.com/jimlawless/whereami"
)

// photoFormField - имя поля multipart-формы с файлом фото
const photoFormField = "photo"

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrInvalidJSON):
		return http.StatusBadRequest, e.ErrInvalidJSON.Error()
	case errors.Is(err, e.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrExpectedMultipart):
		return http.StatusBadRequest, e.ErrExpectedMultipart.Error()
	case errors.Is(err, e.ErrNoPhoto):
		return http.StatusBadRequest, e.ErrNoPhoto.Error()
	case errors.Is(err, e.ErrUnknownField):
		return http.StatusBadRequest, e.ErrUnknownField.Error()
	case errors.Is(err, e.ErrInvalidFieldValue):
		return http.StatusBadRequest, e.ErrInvalidFieldValue.Error()
	case errors.Is(err, e.ErrFieldNotEditable):
		return http.StatusBadRequest, e.ErrFieldNotEditable.Error()
	case errors.Is(err, e.ErrDialogNotOpen):
		return http.StatusConflict, e.ErrDialogNotOpen.Error()
	case errors.Is(err, e.ErrWrongEditMode):
		return http.StatusConflict, e.ErrWrongEditMode.Error()
	case errors.Is(err, e.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, e.ErrFileTooLarge.Error()
	case errors.Is(err, e.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, e.ErrUnsupportedMediaType.Error()
	case errors.Is(err, e.ErrReaderStopped):
		return http.StatusServiceUnavailable, e.ErrReaderStopped.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func ensureMultipartForm(r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.Wrap(whereami.WhereAmI(), e.ErrExpectedMultipart)
	}
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return e.Wrap(whereami.WhereAmI(), e.ErrFileTooLarge)
		}
		return e.Wrap(whereami.WhereAmI(), e.Wrap(err.Error(), e.ErrStatusBadRequest))
	}

	return nil
}

// readPhoto читает файл фото из формы целиком. Временные файлы multipart удаляются после
// выхода из обработчика, поэтому байты нужно забрать до передачи в асинхронное чтение.
func readPhoto(r *http.Request, maxSize int64) (*domain.Photo, error) {
	files := r.MultipartForm.File[photoFormField]
	if len(files) == 0 {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrNoPhoto)
	}
	fh := files[0]

	if fh.Size > maxSize {
		return nil, e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrInternalServerError)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxSize+1))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrInternalServerError)
	}
	if int64(len(data)) > maxSize {
		return nil, e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}
	if len(data) == 0 {
		return nil, e.Wrap(fh.Filename, e.ErrNoPhoto)
	}

	return domain.NewPhoto(fh.Filename, fh.Header.Get("Content-Type"), data), nil
}

// parseFieldValue переводит строковое значение запроса в значение поля товара.
// nil очищает фото и цены.
func parseFieldValue(field domain.Field, raw *string) (any, error) {
	switch field {
	case domain.FieldPhoto:
		if raw == nil {
			return nil, nil
		}
		return *raw, nil
	case domain.FieldHint, domain.FieldSKU:
		if raw == nil {
			return "", nil
		}
		return *raw, nil
	case domain.FieldSellingPrice, domain.FieldPurchasePrice:
		if raw == nil || strings.TrimSpace(*raw) == "" {
			return nil, nil
		}
		price, ok := domain.ParsePrice(*raw)
		if !ok {
			return nil, e.Wrap(string(field), e.ErrInvalidFieldValue)
		}
		return price, nil
	case domain.FieldQuantity:
		if raw == nil {
			return nil, e.Wrap(string(field), e.ErrInvalidFieldValue)
		}
		qty, err := strconv.Atoi(strings.TrimSpace(*raw))
		if err != nil || qty < 0 {
			return nil, e.Wrap(string(field), e.ErrInvalidFieldValue)
		}
		return qty, nil
	default:
		return nil, e.Wrap(string(field), e.ErrUnknownField)
	}
}
