package usecase

import (
	"context"

	"github.com/DRSN-tech/inventory-view/internal/domain"
)

// ProductRepository хранит упорядоченный список товаров.
// Порядок вставки совпадает с порядком отображения.
type ProductRepository interface {
	Append(ctx context.Context, product domain.Product) error
	Get(ctx context.Context, id string) (domain.Product, bool, error)
	List(ctx context.Context) ([]domain.Product, error)
	// Replace заменяет товар с указанным id результатом fn. Неизвестный id - не ошибка, возвращается false.
	Replace(ctx context.Context, id string, fn func(domain.Product) (domain.Product, error)) (bool, error)
	// Delete удаляет товар. Неизвестный id - не ошибка, возвращается false.
	Delete(ctx context.Context, id string) (bool, error)
	Len() int
}
