package repository_test

import (
	"context"
	"fmt"
	"testing"

	"catalog_service/internal/domain"
	"catalog_service/internal/repository"
	"catalog_service/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newRepos(t *testing.T) (*gorm.DB, domain.CategoryRepository, domain.ProductRepository) {
	t.Helper()
	db := testutil.NewDB(t)
	logger := testutil.NewLogger()
	return db, repository.NewCategoryRepository(db, logger), repository.NewProductRepository(db, logger)
}

func createCategory(t *testing.T, repo domain.CategoryRepository, name string) *domain.Category {
	t.Helper()
	category, err := repo.CreateCategory(context.Background(), &domain.Category{Name: name, Description: name + " description"})
	require.NoError(t, err)
	return category
}

func TestCategoryRepositoryCreateAndGet(t *testing.T) {
	ctx := context.Background()
	_, categories, _ := newRepos(t)

	created := createCategory(t, categories, "Books")
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())

	got, err := categories.GetCategoryByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Books", got.Name)
	assert.Equal(t, "Books description", got.Description)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
}

func TestCategoryRepositoryGetMissing(t *testing.T) {
	_, categories, _ := newRepos(t)

	_, err := categories.GetCategoryByID(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryRepositoryUpdate(t *testing.T) {
	ctx := context.Background()
	_, categories, _ := newRepos(t)
	created := createCategory(t, categories, "Books")

	updated, err := categories.UpdateCategory(ctx, &domain.Category{ID: created.ID, Name: "Novels", Description: ""})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Novels", updated.Name)
	assert.Empty(t, updated.Description)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestCategoryRepositoryUpdateMissing(t *testing.T) {
	_, categories, _ := newRepos(t)

	_, err := categories.UpdateCategory(context.Background(), &domain.Category{ID: 7, Name: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryRepositoryDeleteCascadesProducts(t *testing.T) {
	ctx := context.Background()
	db, categories, products := newRepos(t)
	doomed := createCategory(t, categories, "Doomed")
	kept := createCategory(t, categories, "Kept")

	var doomedIDs []int
	for i := 0; i < 3; i++ {
		p, err := products.CreateProduct(ctx, &domain.Product{Name: fmt.Sprintf("p%d", i), CategoryID: doomed.ID})
		require.NoError(t, err)
		doomedIDs = append(doomedIDs, p.ID)
	}
	survivor, err := products.CreateProduct(ctx, &domain.Product{Name: "survivor", CategoryID: kept.ID})
	require.NoError(t, err)

	require.NoError(t, categories.DeleteCategory(ctx, doomed.ID))

	var remaining int64
	require.NoError(t, db.Model(&domain.Product{}).Where("category_id = ?", doomed.ID).Count(&remaining).Error)
	assert.Zero(t, remaining)
	for _, id := range doomedIDs {
		_, err := products.GetProductByID(ctx, id)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	}

	_, err = categories.GetCategoryByID(ctx, doomed.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = products.GetProductByID(ctx, survivor.ID)
	assert.NoError(t, err)
}

func TestCategoryRepositoryDeleteMissing(t *testing.T) {
	_, categories, _ := newRepos(t)

	err := categories.DeleteCategory(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryRepositoryListPagination(t *testing.T) {
	ctx := context.Background()
	_, categories, _ := newRepos(t)
	for i := 1; i <= 25; i++ {
		createCategory(t, categories, fmt.Sprintf("c%02d", i))
	}

	first, err := categories.ListCategories(ctx, domain.NewPageRequest(1, 10))
	require.NoError(t, err)
	assert.Len(t, first.Items, 10)
	assert.Equal(t, int64(25), first.TotalElements)
	assert.Equal(t, 3, first.TotalPages())
	assert.Equal(t, 1, first.PageNumber)
	assert.Equal(t, 10, first.PageSize)
	assert.Equal(t, "c01", first.Items[0].Name)

	last, err := categories.ListCategories(ctx, domain.NewPageRequest(3, 10))
	require.NoError(t, err)
	assert.Len(t, last.Items, 5)
	assert.Equal(t, "c21", last.Items[0].Name)

	beyond, err := categories.ListCategories(ctx, domain.NewPageRequest(4, 10))
	require.NoError(t, err)
	assert.Empty(t, beyond.Items)
	assert.Equal(t, int64(25), beyond.TotalElements)
	assert.Equal(t, 3, beyond.TotalPages())
}
