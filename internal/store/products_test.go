package store

import (
	"context"
	"math"
	"testing"

	"github.com/01moynul/autoshop-golang/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productInput(name, category string, price float64, available bool) models.CreateProductInput {
	return models.CreateProductInput{
		Name:          name,
		Description:   ptr("Description of " + name),
		Price:         price,
		ImageURL:      "https://example.com/" + name + ".jpg",
		Category:      category,
		StockQuantity: ptr(10),
		IsAvailable:   ptr(available),
	}
}

func TestCreateAndGetProduct(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	input := productInput("brake-pads", "Brakes", 123.45, true)
	input.Description = nil

	created, err := s.CreateProduct(ctx, input)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, 123.45, created.Price)
	assert.Nil(t, created.Description)

	got, err := s.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "brake-pads", got.Name)
	assert.Nil(t, got.Description)
	assert.Equal(t, 123.45, got.Price)
	assert.Equal(t, "Brakes", got.Category)
	assert.Equal(t, 10, got.StockQuantity)
	assert.True(t, got.IsAvailable)
	assert.WithinDuration(t, created.CreatedAt, got.CreatedAt, 0)
}

func TestCreateProductDefaultsAvailable(t *testing.T) {
	s := newTestStore(t)

	input := productInput("oil", "Fluids", 19.99, true)
	input.IsAvailable = nil
	input.StockQuantity = ptr(0)

	product, err := s.CreateProduct(context.Background(), input)
	require.NoError(t, err)
	assert.True(t, product.IsAvailable)
	assert.Equal(t, 0, product.StockQuantity)
}

func TestGetProductNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetProduct(context.Background(), 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListProductsByCategoryThenAvailability(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, in := range []models.CreateProductInput{
		productInput("a", "Electronics", 19.99, true),
		productInput("b", "Automotive", 29.99, false),
		productInput("c", "Electronics", 39.99, false),
	} {
		_, err := s.CreateProduct(ctx, in)
		require.NoError(t, err)
	}

	products, err := s.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)

	assert.Equal(t, "b", products[0].Name)
	assert.Equal(t, "c", products[1].Name)
	assert.Equal(t, "a", products[2].Name)
	assert.Equal(t, 29.99, products[0].Price)
}

func TestCreateProductValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.CreateProductInput)
		field  string
	}{
		{"zero price", func(in *models.CreateProductInput) { in.Price = 0 }, "price"},
		{"negative price", func(in *models.CreateProductInput) { in.Price = -5 }, "price"},
		{"price rounds to zero", func(in *models.CreateProductInput) { in.Price = 0.001 }, "price"},
		{"infinite price", func(in *models.CreateProductInput) { in.Price = math.Inf(1) }, "price"},
		{"NaN price", func(in *models.CreateProductInput) { in.Price = math.NaN() }, "price"},
		{"price over column range", func(in *models.CreateProductInput) { in.Price = 1e10 }, "price"},
		{"price rounds past column range", func(in *models.CreateProductInput) { in.Price = 9999999999.999 }, "price"},
		{"negative stock", func(in *models.CreateProductInput) { in.StockQuantity = ptr(-1) }, "stock_quantity"},
		{"missing stock", func(in *models.CreateProductInput) { in.StockQuantity = nil }, "stock_quantity"},
		{"missing category", func(in *models.CreateProductInput) { in.Category = "" }, "category"},
		{"bad url", func(in *models.CreateProductInput) { in.ImageURL = "product.jpg" }, "image_url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			input := productInput("x", "Misc", 10, true)
			tt.mutate(&input)

			_, err := s.CreateProduct(context.Background(), input)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}
