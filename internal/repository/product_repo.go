package repository

import (
	"context"
	"errors"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// foreignKeyViolation is the PostgreSQL SQLSTATE for a dangling reference.
const foreignKeyViolation = "23503"

type productRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewProductRepository(db *gorm.DB, logger *logrus.Logger) domain.ProductRepository {
	return &productRepository{
		db:  db,
		log: logger,
	}
}

func (r *productRepository) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	err := r.db.WithContext(ctx).Create(product).Error
	if err != nil {
		if isForeignKeyViolation(err) {
			r.log.Warnf("Repository: Attempted to create product with non-existent category ID: %d", product.CategoryID)
			return nil, categoryNotFound(product.CategoryID)
		}
		r.log.Errorf("Repository: Failed to create product '%s': %v", product.Name, err)
		return nil, fmt.Errorf("could not create product: %w", err)
	}
	r.log.Infof("Repository: Product created successfully with ID: %d, Name: %s", product.ID, product.Name)
	return product, nil
}

func (r *productRepository) GetProductByID(ctx context.Context, id int) (*domain.Product, error) {
	product := &domain.Product{}
	err := r.db.WithContext(ctx).First(product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Warnf("Repository: Product with ID %d not found", id)
			return nil, productNotFound(id)
		}
		r.log.Errorf("Repository: Failed to get product by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get product by id: %w", err)
	}
	r.log.Debugf("Repository: Product retrieved successfully with ID: %d", id)
	return product, nil
}

// UpdateProduct overwrites name, description, price and stock. The category
// linkage is never written here.
func (r *productRepository) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"name":        product.Name,
			"description": product.Description,
			"price":       product.Price,
			"stock":       product.Stock,
		})
	if result.Error != nil {
		r.log.Errorf("Repository: Failed to update product ID %d: %v", product.ID, result.Error)
		return nil, fmt.Errorf("could not update product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		r.log.Warnf("Repository: Product with ID %d not found for update", product.ID)
		return nil, productNotFound(product.ID)
	}

	r.log.Infof("Repository: Product updated successfully with ID: %d", product.ID)
	return r.GetProductByID(ctx, product.ID)
}

func (r *productRepository) DeleteProduct(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&domain.Product{}, id)
	if result.Error != nil {
		r.log.Errorf("Repository: Failed to delete product ID %d: %v", id, result.Error)
		return fmt.Errorf("could not delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		r.log.Warnf("Repository: Attempted to delete non-existent product ID %d", id)
		return productNotFound(id)
	}
	r.log.Infof("Repository: Product deleted successfully with ID: %d", id)
	return nil
}

func (r *productRepository) ListProducts(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Product], error) {
	return r.listPage(r.db.WithContext(ctx), req, "all products")
}

func (r *productRepository) ListProductsByCategory(ctx context.Context, categoryID int, req domain.PageRequest) (domain.Page[domain.Product], error) {
	scope := r.db.WithContext(ctx).Where("category_id = ?", categoryID)
	return r.listPage(scope, req, fmt.Sprintf("category %d", categoryID))
}

func (r *productRepository) ListAllProductsByCategory(ctx context.Context, categoryID int) ([]domain.Product, error) {
	products := []domain.Product{}
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("id ASC").
		Find(&products).Error
	if err != nil {
		r.log.Errorf("Repository: Failed to list products for category %d: %v", categoryID, err)
		return nil, fmt.Errorf("could not list products by category: %w", err)
	}
	r.log.Infof("Repository: Retrieved %d products for category %d", len(products), categoryID)
	return products, nil
}

func (r *productRepository) listPage(scope *gorm.DB, req domain.PageRequest, label string) (domain.Page[domain.Product], error) {
	var total int64
	if err := scope.Session(&gorm.Session{}).Model(&domain.Product{}).Count(&total).Error; err != nil {
		r.log.Errorf("Repository: Failed to count products for %s: %v", label, err)
		return domain.Page[domain.Product]{}, fmt.Errorf("could not count products: %w", err)
	}

	products := []domain.Product{}
	err := scope.Session(&gorm.Session{}).
		Order("id ASC").
		Limit(req.Size).
		Offset(req.Offset()).
		Find(&products).Error
	if err != nil {
		r.log.Errorf("Repository: Failed to list products for %s (page %d, size %d): %v", label, req.Page, req.Size, err)
		return domain.Page[domain.Product]{}, fmt.Errorf("could not list products: %w", err)
	}

	r.log.Infof("Repository: Retrieved %d of %d products for %s (page %d, size %d)", len(products), total, label, req.Page, req.Size)
	return domain.NewPage(products, total, req), nil
}

func productNotFound(id int) error {
	return fmt.Errorf("product with id %d %w", id, domain.ErrNotFound)
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation
}
