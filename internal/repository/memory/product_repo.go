package memory

import (
	"context"
	"sync"

	"github.com/DRSN-tech/inventory-view/internal/domain"
	"github.com/DRSN-tech/inventory-view/pkg/e"
	"github.com/jimlawless/whereami"
)

// ProductRepo хранит товары в памяти процесса.
// Каждое изменение строит новый срез и подменяет старый целиком.
type ProductRepo struct {
	mu       sync.RWMutex
	products []domain.Product
}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{
		products: make([]domain.Product, 0),
	}
}

// Append добавляет товар в конец списка.
func (r *ProductRepo) Append(ctx context.Context, product domain.Product) error {
	if err := ctx.Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]domain.Product, len(r.products), len(r.products)+1)
	copy(next, r.products)
	r.products = append(next, product)

	return nil
}

// Get возвращает товар по id.
func (r *ProductRepo) Get(ctx context.Context, id string) (domain.Product, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, false, e.Wrap(whereami.WhereAmI(), err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			return p, true, nil
		}
	}

	return domain.Product{}, false, nil
}

// List возвращает копию текущего списка в порядке добавления.
func (r *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]domain.Product, len(r.products))
	copy(list, r.products)

	return list, nil
}

// Replace проходит по списку и заменяет только товар с совпадающим id.
func (r *ProductRepo) Replace(ctx context.Context, id string, fn func(domain.Product) (domain.Product, error)) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]domain.Product, len(r.products))
	found := false
	for i, p := range r.products {
		if p.ID != id {
			next[i] = p
			continue
		}

		updated, err := fn(p)
		if err != nil {
			return false, e.Wrap(whereami.WhereAmI(), err)
		}
		// id менять нельзя
		updated.ID = p.ID
		next[i] = updated
		found = true
	}

	if found {
		r.products = next
	}

	return found, nil
}

// Delete удаляет товар с указанным id.
func (r *ProductRepo) Delete(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		if p.ID != id {
			next = append(next, p)
		}
	}

	if len(next) == len(r.products) {
		return false, nil
	}
	r.products = next

	return true, nil
}

func (r *ProductRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.products)
}
