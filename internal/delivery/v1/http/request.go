package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/DRSN-tech/inventory-view/internal/domain"
	"github.com/DRSN-tech/inventory-view/pkg/e"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func init() {
	validate.RegisterValidation("product_field", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseField(fl.Field().String())
		return err == nil
	})
}

// UpdateFieldRequest - прямая замена поля товара
type UpdateFieldRequest struct {
	Field string  `json:"field" validate:"required,product_field"`
	Value *string `json:"value"`
}

// OpenDialogRequest - открыть диалог поля товара
type OpenDialogRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Field     string `json:"field" validate:"required,product_field"`
}

// StageValueRequest - новое временное значение диалога
type StageValueRequest struct {
	Value string `json:"value"`
}

// SetFieldRequest - значение, введённое прямо в карточке
type SetFieldRequest struct {
	Value string `json:"value"`
}

func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %v", e.ErrInvalidJSON, err)
	}
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", e.ErrValidation, err)
	}
	return nil
}
