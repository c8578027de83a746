package ports

import (
	"context"

	"github.com/vendio/api/internal/core/domain"
)

type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, product *domain.Product) error
}

type CreateProductInput struct {
	Name        string
	Description string
}

type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
}
