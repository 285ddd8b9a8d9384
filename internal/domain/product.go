package domain

import "context"

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *Product) (*Product, error)
	GetProductByID(ctx context.Context, id int) (*Product, error)
	UpdateProduct(ctx context.Context, product *Product) (*Product, error)
	DeleteProduct(ctx context.Context, id int) error
	ListProducts(ctx context.Context, req PageRequest) (Page[Product], error)
	ListProductsByCategory(ctx context.Context, categoryID int, req PageRequest) (Page[Product], error)
	// ListAllProductsByCategory returns every product of the category, unpaginated.
	ListAllProductsByCategory(ctx context.Context, categoryID int) ([]Product, error)
}
