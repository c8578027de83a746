package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendio/api/internal/core/domain"
	"github.com/vendio/api/internal/core/ports"
)

type fakeProductRepo struct {
	products []domain.Product
	nextID   int64
}

func (r *fakeProductRepo) List(context.Context) ([]domain.Product, error) {
	return r.products, nil
}

func (r *fakeProductRepo) Create(_ context.Context, product *domain.Product) error {
	r.nextID++
	product.ID = r.nextID
	r.products = append(r.products, *product)
	return nil
}

func TestCreateProductRequiresName(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewProductService(repo)

	for _, name := range []string{"", "   "} {
		_, err := svc.Create(context.Background(), ports.CreateProductInput{Name: name})

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Product name is required.", verr.Message)
	}
	assert.Empty(t, repo.products)
}

func TestCreateProductTrimsFields(t *testing.T) {
	repo := &fakeProductRepo{}
	svc := NewProductService(repo)

	product, err := svc.Create(context.Background(), ports.CreateProductInput{
		Name:        "  Widget  ",
		Description: "  A widget. ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Widget", product.Name)
	require.NotNil(t, product.Description)
	assert.Equal(t, "A widget.", *product.Description)
	assert.Equal(t, int64(1), product.ID)
}

func TestCreateProductEmptyDescriptionIsNull(t *testing.T) {
	svc := NewProductService(&fakeProductRepo{})

	product, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "Widget"})
	require.NoError(t, err)
	assert.Nil(t, product.Description)
}

func TestListNeverReturnsNil(t *testing.T) {
	svc := NewProductService(&fakeProductRepo{})

	products, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}
