package e

import "fmt"

var (
	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
	ErrUnknownEditMode      = fmt.Errorf("unknown edit mode")

	// Ошибки домена
	ErrUnknownField      = fmt.Errorf("unknown product field")
	ErrFieldNotEditable  = fmt.Errorf("field is not editable in this mode")
	ErrWrongEditMode     = fmt.Errorf("operation is not available in current edit mode")
	ErrInvalidFieldValue = fmt.Errorf("invalid field value")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrInvalidJSON          = fmt.Errorf("invalid JSON")
	ErrValidation           = fmt.Errorf("validation error")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")
	ErrNoPhoto              = fmt.Errorf("no photo provided")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")
	ErrDialogNotOpen        = fmt.Errorf("no field dialog is open")

	// 413 Request Entity Too Large
	ErrFileTooLarge = fmt.Errorf("file too large")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
	ErrReaderStopped       = fmt.Errorf("photo reader is stopped")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
