package usecase

import (
	"context"
	"testing"

	"github.com/DRSN-tech/inventory-view/internal/domain"
	"github.com/DRSN-tech/inventory-view/pkg/e"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_AppendsEmptyProductsInOrder(t *testing.T) {
	f := newFixture(domain.EditModeStaged)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := f.uc.Add(ctx)
		require.NoError(t, err)
	}

	products, err := f.uc.Filter(ctx, "")
	require.NoError(t, err)
	require.Len(t, products, 3)

	seen := map[string]bool{}
	for i, p := range products {
		assert.Equal(t, []string{"p1", "p2", "p3"}[i], p.ID)
		assert.False(t, seen[p.ID])
		seen[p.ID] = true

		assert.Nil(t, p.Photo)
		assert.Empty(t, p.Hint)
		assert.Empty(t, p.SKU)
		assert.Nil(t, p.SellingPrice)
		assert.Nil(t, p.PurchasePrice)
		assert.Equal(t, 1, p.Quantity)
	}
	assert.Equal(t, 3, f.uc.Count())
}

func TestAdd_RealIDsAreUnique(t *testing.T) {
	ids := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := newProductID()
		assert.False(t, ids[id])
		ids[id] = true
	}
}

func TestRemove(t *testing.T) {
	f := newFixture(domain.EditModeStaged)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := f.uc.Add(ctx)
		require.NoError(t, err)
	}

	require.NoError(t, f.uc.Remove(ctx, "p2"))

	products, err := f.uc.Filter(ctx, "")
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, "p3", products[1].ID)
	assert.Equal(t, []string{domain.MsgProductDeleted}, f.notifier.Successes())
}

func TestRemove_UnknownIDIsNoop(t *testing.T) {
	f := newFixture(domain.EditModeStaged)
	ctx := context.Background()

	_, err := f.uc.Add(ctx)
	require.NoError(t, err)

	require.NoError(t, f.uc.Remove(ctx, "missing"))
	assert.Equal(t, 1, f.uc.Count())
	assert.Equal(t, []string{domain.MsgProductDeleted}, f.notifier.Successes())
}

func TestRemove_ClosesDialogAndEditing(t *testing.T) {
	f := newFixture(domain.EditModeStaged)
	ctx := context.Background()

	_, err := f.uc.Add(ctx)
	require.NoError(t, err)
	_, err = f.uc.OpenDialog(ctx, NewOpenDialogReq("p1", domain.FieldSKU))
	require.NoError(t, err)

	require.NoError(t, f.uc.Remove(ctx, "p1"))

	view, err := f.uc.View(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, domain.DialogClosed, view.Dialog.Kind)
	assert.Empty(t, view.EditingID)
}

func TestUpdate_ReplacesOnlyTargetField(t *testing.T) {
	f := newFixture(domain.EditModeStaged)
	ctx := context.Background()

	_, err := f.uc.Add(ctx)
	require.NoError(t, err)
	_, err = f.uc.Add(ctx)
	require.NoError(t, err)

	changed, err := f.uc.Update(ctx, NewUpdateProductReq("p1", domain.FieldSKU, "BRAKE-01"))
	require.NoError(t, err)
	assert.True(t, changed)

	p1, _, _ := f.repo.Get(ctx, "p1")
	p2, _, _ := f.repo.Get(ctx, "p2")
	assert.Equal(t, "BRAKE-01", p1.SKU)
	assert.Empty(t, p1.Hint)
	assert.Nil(t, p1.SellingPrice)
	assert.Empty(t, p2.SKU)
}

func TestUpdate_UnknownID(t *testing.T) {
	f := newFixture(domain.EditModeStaged)

	changed, err := f.uc.Update(context.Background(), NewUpdateProductReq("missing", domain.FieldHint, "x"))
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestUpdate_InvalidValue(t *testing.T) {
	f := newFixture(domain.EditModeStaged)
	ctx := context.Background()

	_, err := f.uc.Add(ctx)
	require.NoError(t, err)

	_, err = f.uc.Update(ctx, NewUpdateProductReq("p1", domain.FieldQuantity, -1))
	assert.ErrorIs(t, err, e.ErrInvalidFieldValue)
}

func TestFilter(t *testing.T) {
	f := newFixture(domain.EditModeStaged)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := f.uc.Add(ctx)
		require.NoError(t, err)
	}
	_, err := f.uc.Update(ctx, NewUpdateProductReq("p1", domain.FieldSKU, "BRAKE-01"))
	require.NoError(t, err)
	_, err = f.uc.Update(ctx, NewUpdateProductReq("p2", domain.FieldHint, "Shelf A3, brake pads"))
	require.NoError(t, err)
	_, err = f.uc.Update(ctx, NewUpdateProductReq("p3", domain.FieldSKU, "OIL-5W30"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query returns all", "", []string{"p1", "p2", "p3"}},
		{"case insensitive sku and hint", "brake", []string{"p1", "p2"}},
		{"upper case query", "OIL", []string{"p3"}},
		{"nothing found", "tyre", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := f.uc.Filter(ctx, tt.query)
			require.NoError(t, err)

			ids := make([]string, 0, len(products))
			for _, p := range products {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestToggleEditing(t *testing.T) {
	f := newFixture(domain.EditModeStaged)
	ctx := context.Background()

	_, err := f.uc.Add(ctx)
	require.NoError(t, err)
	_, err = f.uc.Add(ctx)
	require.NoError(t, err)

	id, err := f.uc.ToggleEditing(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", id)

	id, err = f.uc.ToggleEditing(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, id)

	id, err = f.uc.ToggleEditing(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestView_EmptyStates(t *testing.T) {
	f := newFixture(domain.EditModeStaged)
	ctx := context.Background()

	view, err := f.uc.View(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, view.Products)
	assert.Equal(t, domain.EmptyNoProducts, view.EmptyMessage)

	_, err = f.uc.Add(ctx)
	require.NoError(t, err)

	view, err = f.uc.View(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, view.Products)
	assert.Equal(t, domain.EmptyNothingFound, view.EmptyMessage)

	view, err = f.uc.View(ctx, "")
	require.NoError(t, err)
	assert.Len(t, view.Products, 1)
	assert.Empty(t, view.EmptyMessage)
}

func TestView_Labels(t *testing.T) {
	f := newFixture(domain.EditModeStaged)
	ctx := context.Background()

	_, err := f.uc.Add(ctx)
	require.NoError(t, err)

	view, err := f.uc.View(ctx, "")
	require.NoError(t, err)
	card := view.Products[0]
	assert.Equal(t, domain.LabelHint, card.HintLabel)
	assert.Equal(t, domain.LabelSKUPlaceholder, card.SKULabel)
	assert.Equal(t, domain.LabelSellingPrice, card.SellingPriceLabel)
	assert.Equal(t, domain.LabelPurchasePrice, card.PurchasePriceLabel)
	assert.Nil(t, card.Margin)
	assert.True(t, card.Editing, "new product becomes the editing one")

	selling := decimal.NewFromInt(1200)
	_, err = f.uc.Update(ctx, NewUpdateProductReq("p1", domain.FieldSellingPrice, &selling))
	require.NoError(t, err)
	_, err = f.uc.Update(ctx, NewUpdateProductReq("p1", domain.FieldHint, "Shelf A3"))
	require.NoError(t, err)
	_, err = f.uc.Update(ctx, NewUpdateProductReq("p1", domain.FieldSKU, "BRAKE-01"))
	require.NoError(t, err)

	view, err = f.uc.View(ctx, "")
	require.NoError(t, err)
	card = view.Products[0]
	assert.Equal(t, domain.LabelHintSet, card.HintLabel)
	assert.Equal(t, "BRAKE-01", card.SKULabel)
	assert.Equal(t, "Продажа: 1200 ₽", card.SellingPriceLabel)
	assert.Nil(t, card.Margin, "purchase price is still unset")
}
