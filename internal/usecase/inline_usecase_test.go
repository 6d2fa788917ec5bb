package usecase

import (
	"context"
	"testing"

	"github.com/DRSN-tech/inventory-view/internal/domain"
	"github.com/DRSN-tech/inventory-view/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inlineFixture(t *testing.T, n int) *fixture {
	t.Helper()
	f := newFixture(domain.EditModeInline)
	for i := 0; i < n; i++ {
		_, err := f.uc.Add(context.Background())
		require.NoError(t, err)
	}
	return f
}

func TestSetField_WritesImmediately(t *testing.T) {
	f := inlineFixture(t, 1)
	ctx := context.Background()

	view, err := f.uc.SetField(ctx, NewSetFieldReq("p1", domain.FieldSKU, "BRAKE-01"))
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, "BRAKE-01", view.Product.SKU)

	p1, _, _ := f.repo.Get(ctx, "p1")
	assert.Equal(t, "BRAKE-01", p1.SKU)
	assert.Empty(t, f.notifier.Successes(), "inline edits do not toast")
}

func TestSetField_InvalidPriceStoredAsUnset(t *testing.T) {
	f := inlineFixture(t, 1)
	ctx := context.Background()

	_, err := f.uc.SetField(ctx, NewSetFieldReq("p1", domain.FieldSellingPrice, "1200"))
	require.NoError(t, err)

	view, err := f.uc.SetField(ctx, NewSetFieldReq("p1", domain.FieldSellingPrice, "12a"))
	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Nil(t, view.Product.SellingPrice)
	assert.Equal(t, domain.LabelSellingPrice, view.SellingPriceLabel)
}

func TestSetField_Quantity(t *testing.T) {
	f := inlineFixture(t, 1)
	ctx := context.Background()

	view, err := f.uc.SetField(ctx, NewSetFieldReq("p1", domain.FieldQuantity, " 7 "))
	require.NoError(t, err)
	assert.Equal(t, 7, view.Product.Quantity)

	_, err = f.uc.SetField(ctx, NewSetFieldReq("p1", domain.FieldQuantity, "-1"))
	assert.ErrorIs(t, err, e.ErrInvalidFieldValue)
}

func TestSetField_UnknownProduct(t *testing.T) {
	f := inlineFixture(t, 1)

	view, err := f.uc.SetField(context.Background(), NewSetFieldReq("missing", domain.FieldHint, "x"))
	require.NoError(t, err)
	assert.Nil(t, view)
}

func TestUploadPhoto_WritesWhenReadCompletes(t *testing.T) {
	f := inlineFixture(t, 1)
	ctx := context.Background()

	res, err := f.uc.UploadPhoto(ctx, "p1", testPhoto())
	require.NoError(t, err)
	assert.Equal(t, "p1", res.ProductID)

	f.photos.complete(t, "data:image/png;base64,cG5n")

	p1, _, _ := f.repo.Get(ctx, "p1")
	require.NotNil(t, p1.Photo)
	assert.Equal(t, "data:image/png;base64,cG5n", *p1.Photo)
	assert.Equal(t, []string{domain.MsgPhotoUploaded}, f.notifier.Successes())
}

func TestUploadPhoto_ProductDeletedBeforeCompletion(t *testing.T) {
	f := inlineFixture(t, 2)
	ctx := context.Background()

	_, err := f.uc.UploadPhoto(ctx, "p1", testPhoto())
	require.NoError(t, err)
	require.NoError(t, f.uc.Remove(ctx, "p1"))

	f.photos.complete(t, "data:image/png;base64,cG5n")

	p2, _, _ := f.repo.Get(ctx, "p2")
	assert.Nil(t, p2.Photo, "photo must not land on another product")
	assert.Equal(t, 1, f.uc.Count())
	assert.Equal(t, []string{domain.MsgProductDeleted}, f.notifier.Successes())
}

func TestUploadPhoto_ReadFailure(t *testing.T) {
	f := inlineFixture(t, 1)
	ctx := context.Background()

	_, err := f.uc.UploadPhoto(ctx, "p1", testPhoto())
	require.NoError(t, err)
	f.photos.fail(t, e.ErrFileTooLarge)

	p1, _, _ := f.repo.Get(ctx, "p1")
	assert.Nil(t, p1.Photo)
	assert.Equal(t, []string{domain.MsgPhotoReadFailed}, f.notifier.Errors())
}

func TestConfirmPrice(t *testing.T) {
	f := inlineFixture(t, 1)
	ctx := context.Background()

	res, err := f.uc.ConfirmPrice(ctx, "p1", domain.FieldSellingPrice)
	require.NoError(t, err)
	assert.False(t, res.Committed, "unset price")

	_, err = f.uc.SetField(ctx, NewSetFieldReq("p1", domain.FieldSellingPrice, "0"))
	require.NoError(t, err)
	res, err = f.uc.ConfirmPrice(ctx, "p1", domain.FieldSellingPrice)
	require.NoError(t, err)
	assert.False(t, res.Committed, "zero price")

	_, err = f.uc.SetField(ctx, NewSetFieldReq("p1", domain.FieldSellingPrice, "1200"))
	require.NoError(t, err)
	res, err = f.uc.ConfirmPrice(ctx, "p1", domain.FieldSellingPrice)
	require.NoError(t, err)
	assert.True(t, res.Committed)
	assert.Equal(t, domain.MsgSellingPriceFixed, res.Notification)
	assert.Equal(t, []string{domain.MsgSellingPriceFixed}, f.notifier.Successes())

	_, err = f.uc.ConfirmPrice(ctx, "p1", domain.FieldSKU)
	assert.ErrorIs(t, err, e.ErrFieldNotEditable)
}

func TestInlineOperations_WrongMode(t *testing.T) {
	f := newFixture(domain.EditModeStaged)
	ctx := context.Background()

	_, err := f.uc.SetField(ctx, NewSetFieldReq("p1", domain.FieldSKU, "x"))
	assert.ErrorIs(t, err, e.ErrWrongEditMode)
	_, err = f.uc.UploadPhoto(ctx, "p1", testPhoto())
	assert.ErrorIs(t, err, e.ErrWrongEditMode)
	_, err = f.uc.ConfirmPrice(ctx, "p1", domain.FieldSellingPrice)
	assert.ErrorIs(t, err, e.ErrWrongEditMode)
}
