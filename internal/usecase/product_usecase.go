package usecase

import (
	"context"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type ProductUseCase interface {
	CreateProduct(ctx context.Context, categoryID int, product *domain.Product) (*domain.Product, error)
	GetProductByID(ctx context.Context, id int) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int) (*domain.Product, error)
	ListProducts(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Product], error)
	ListProductsByCategory(ctx context.Context, categoryID int, req domain.PageRequest) (domain.Page[domain.Product], error)
}

type productUseCase struct {
	productRepo  domain.ProductRepository
	categoryRepo domain.CategoryRepository
	log          *logrus.Logger
}

func NewProductUseCase(pRepo domain.ProductRepository, cRepo domain.CategoryRepository, logger *logrus.Logger) ProductUseCase {
	return &productUseCase{
		productRepo:  pRepo,
		categoryRepo: cRepo,
		log:          logger,
	}
}

// CreateProduct attaches the product to categoryID. Any category carried by
// the payload is ignored.
func (uc *productUseCase) CreateProduct(ctx context.Context, categoryID int, product *domain.Product) (*domain.Product, error) {
	category, err := uc.categoryRepo.GetCategoryByID(ctx, categoryID)
	if err != nil {
		uc.log.Warnf("Use Case: Category ID %d not found during product creation: %v", categoryID, err)
		return nil, err
	}

	newProduct := &domain.Product{
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		CategoryID:  category.ID,
	}

	uc.log.Infof("Use Case: Attempting to create product '%s' in category %d", newProduct.Name, category.ID)
	createdProduct, err := uc.productRepo.CreateProduct(ctx, newProduct)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create product '%s': %v", newProduct.Name, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product '%s' created successfully with ID %d", createdProduct.Name, createdProduct.ID)
	return createdProduct, nil
}

func (uc *productUseCase) GetProductByID(ctx context.Context, id int) (*domain.Product, error) {
	uc.log.Infof("Use Case: Attempting to get product with ID %d", id)
	product, err := uc.productRepo.GetProductByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get product ID %d: %v", id, err)
		return nil, err
	}
	return product, nil
}

// UpdateProduct overwrites name, description, price and stock. Id and category
// always come from the stored row.
func (uc *productUseCase) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	existing, err := uc.productRepo.GetProductByID(ctx, product.ID)
	if err != nil {
		uc.log.Warnf("Use Case: Product ID %d not found for update: %v", product.ID, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Attempting to update product ID %d", existing.ID)
	updatedProduct, err := uc.productRepo.UpdateProduct(ctx, &domain.Product{
		ID:          existing.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		CategoryID:  existing.CategoryID,
	})
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to update product ID %d: %v", existing.ID, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product updated successfully for ID %d", updatedProduct.ID)
	return updatedProduct, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id int) (*domain.Product, error) {
	snapshot, err := uc.productRepo.GetProductByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Product ID %d not found for delete: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Attempting to delete product ID %d from category %d", id, snapshot.CategoryID)
	if err := uc.productRepo.DeleteProduct(ctx, id); err != nil {
		uc.log.Warnf("Use Case: Repository failed to delete product ID %d: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product deleted successfully for ID %d", id)
	return snapshot, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Product], error) {
	uc.log.Infof("Use Case: Attempting to list products (page: %d, size: %d)", req.Page, req.Size)
	page, err := uc.productRepo.ListProducts(ctx, req)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products: %v", err)
		return domain.Page[domain.Product]{}, fmt.Errorf("could not retrieve products: %w", err)
	}
	uc.log.Infof("Use Case: Retrieved %d products", len(page.Items))
	return page, nil
}

// ListProductsByCategory does not check that the category exists; an unknown
// id simply yields an empty page.
func (uc *productUseCase) ListProductsByCategory(ctx context.Context, categoryID int, req domain.PageRequest) (domain.Page[domain.Product], error) {
	uc.log.Infof("Use Case: Attempting to list products for category %d (page: %d, size: %d)", categoryID, req.Page, req.Size)
	page, err := uc.productRepo.ListProductsByCategory(ctx, categoryID, req)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products for category %d: %v", categoryID, err)
		return domain.Page[domain.Product]{}, fmt.Errorf("could not retrieve products for category %d: %w", categoryID, err)
	}
	uc.log.Infof("Use Case: Retrieved %d products for category %d", len(page.Items), categoryID)
	return page, nil
}
