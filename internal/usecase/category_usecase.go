package usecase

import (
	"context"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type CategoryUseCase interface {
	CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, id int) (*domain.Category, error)
	UpdateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int) (*domain.Category, error)
	ListCategories(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Category], error)
	ListCategoryProducts(ctx context.Context, id int) ([]domain.Product, error)
	DeleteCategoryProduct(ctx context.Context, categoryID, productID int) (*domain.Product, error)
}

type categoryUseCase struct {
	categoryRepo domain.CategoryRepository
	productRepo  domain.ProductRepository
	log          *logrus.Logger
}

func NewCategoryUseCase(cRepo domain.CategoryRepository, pRepo domain.ProductRepository, logger *logrus.Logger) CategoryUseCase {
	return &categoryUseCase{
		categoryRepo: cRepo,
		productRepo:  pRepo,
		log:          logger,
	}
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	newCategory := &domain.Category{
		Name:        category.Name,
		Description: category.Description,
	}

	uc.log.Infof("Use Case: Attempting to create category with name '%s'", newCategory.Name)
	createdCategory, err := uc.categoryRepo.CreateCategory(ctx, newCategory)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create category '%s': %v", newCategory.Name, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Category '%s' created successfully with ID %d", createdCategory.Name, createdCategory.ID)
	return createdCategory, nil
}

func (uc *categoryUseCase) GetCategoryByID(ctx context.Context, id int) (*domain.Category, error) {
	uc.log.Infof("Use Case: Attempting to get category with ID %d", id)
	category, err := uc.categoryRepo.GetCategoryByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get category ID %d: %v", id, err)
		return nil, err
	}
	return category, nil
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	if _, err := uc.categoryRepo.GetCategoryByID(ctx, category.ID); err != nil {
		uc.log.Warnf("Use Case: Category ID %d not found for update: %v", category.ID, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Attempting to update category ID %d", category.ID)
	updatedCategory, err := uc.categoryRepo.UpdateCategory(ctx, &domain.Category{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
	})
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to update category ID %d: %v", category.ID, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Category updated successfully for ID %d", updatedCategory.ID)
	return updatedCategory, nil
}

// DeleteCategory removes the category with all of its products and returns
// the category as it was before deletion.
func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id int) (*domain.Category, error) {
	snapshot, err := uc.categoryRepo.GetCategoryByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Category ID %d not found for delete: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Attempting to delete category ID %d", id)
	if err := uc.categoryRepo.DeleteCategory(ctx, id); err != nil {
		uc.log.Warnf("Use Case: Repository failed to delete category ID %d: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Category deleted successfully for ID %d", id)
	return snapshot, nil
}

func (uc *categoryUseCase) ListCategories(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Category], error) {
	uc.log.Infof("Use Case: Attempting to list categories (page: %d, size: %d)", req.Page, req.Size)

	page, err := uc.categoryRepo.ListCategories(ctx, req)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list categories: %v", err)
		return domain.Page[domain.Category]{}, fmt.Errorf("could not retrieve categories: %w", err)
	}

	uc.log.Infof("Use Case: Retrieved %d categories", len(page.Items))
	return page, nil
}

func (uc *categoryUseCase) ListCategoryProducts(ctx context.Context, id int) ([]domain.Product, error) {
	if _, err := uc.categoryRepo.GetCategoryByID(ctx, id); err != nil {
		uc.log.Warnf("Use Case: Category ID %d not found: %v", id, err)
		return nil, err
	}

	products, err := uc.productRepo.ListAllProductsByCategory(ctx, id)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products for category %d: %v", id, err)
		return nil, fmt.Errorf("could not retrieve products for category %d: %w", id, err)
	}

	uc.log.Infof("Use Case: Retrieved %d products for category %d", len(products), id)
	return products, nil
}

// DeleteCategoryProduct deletes the product only when it belongs to the given
// category. A product owned by another category is reported as not found.
func (uc *categoryUseCase) DeleteCategoryProduct(ctx context.Context, categoryID, productID int) (*domain.Product, error) {
	product, err := uc.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		uc.log.Warnf("Use Case: Product ID %d not found for delete under category %d: %v", productID, categoryID, err)
		return nil, err
	}
	if product.CategoryID != categoryID {
		uc.log.Warnf("Use Case: Product ID %d belongs to category %d, not %d", productID, product.CategoryID, categoryID)
		return nil, fmt.Errorf("product with id %d in category %d %w", productID, categoryID, domain.ErrNotFound)
	}

	if err := uc.productRepo.DeleteProduct(ctx, productID); err != nil {
		uc.log.Warnf("Use Case: Repository failed to delete product ID %d: %v", productID, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product %d deleted from category %d", productID, categoryID)
	return product, nil
}
