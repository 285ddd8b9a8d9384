package domain

import "context"

type CategoryRepository interface {
	CreateCategory(ctx context.Context, category *Category) (*Category, error)
	GetCategoryByID(ctx context.Context, id int) (*Category, error)
	UpdateCategory(ctx context.Context, category *Category) (*Category, error)
	// DeleteCategory removes the category and every product it owns in one transaction.
	DeleteCategory(ctx context.Context, id int) error
	ListCategories(ctx context.Context, req PageRequest) (Page[Category], error)
}
