package repository

import (
	"context"
	"errors"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type categoryRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewCategoryRepository(db *gorm.DB, logger *logrus.Logger) domain.CategoryRepository {
	return &categoryRepository{
		db:  db,
		log: logger,
	}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(category).Error
	if err != nil {
		r.log.Errorf("Repository: Failed to create category '%s': %v", category.Name, err)
		return nil, fmt.Errorf("could not create category: %w", err)
	}
	r.log.Infof("Repository: Category created successfully with ID: %d, Name: %s", category.ID, category.Name)
	return category, nil
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, id int) (*domain.Category, error) {
	category := &domain.Category{}
	err := r.db.WithContext(ctx).First(category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Warnf("Repository: Category with ID %d not found", id)
			return nil, categoryNotFound(id)
		}
		r.log.Errorf("Repository: Failed to get category by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get category by id: %w", err)
	}
	r.log.Debugf("Repository: Category retrieved successfully with ID: %d", id)
	return category, nil
}

// UpdateCategory overwrites name and description and returns the row as stored.
func (r *categoryRepository) UpdateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Category{}).
		Where("id = ?", category.ID).
		Updates(map[string]interface{}{
			"name":        category.Name,
			"description": category.Description,
		})
	if result.Error != nil {
		r.log.Errorf("Repository: Failed to update category ID %d: %v", category.ID, result.Error)
		return nil, fmt.Errorf("could not update category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		r.log.Warnf("Repository: Category with ID %d not found for update", category.ID)
		return nil, categoryNotFound(category.ID)
	}

	r.log.Infof("Repository: Category updated successfully with ID: %d", category.ID)
	return r.GetCategoryByID(ctx, category.ID)
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, id int) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products := tx.Where("category_id = ?", id).Delete(&domain.Product{})
		if products.Error != nil {
			return fmt.Errorf("could not delete products of category: %w", products.Error)
		}

		result := tx.Delete(&domain.Category{}, id)
		if result.Error != nil {
			return fmt.Errorf("could not delete category: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return categoryNotFound(id)
		}

		r.log.Infof("Repository: Deleting category ID %d removed %d products", id, products.RowsAffected)
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			r.log.Warnf("Repository: Attempted to delete non-existent category ID %d", id)
		} else {
			r.log.Errorf("Repository: Failed to delete category ID %d: %v", id, err)
		}
		return err
	}

	r.log.Infof("Repository: Category deleted successfully with ID: %d", id)
	return nil
}

func (r *categoryRepository) ListCategories(ctx context.Context, req domain.PageRequest) (domain.Page[domain.Category], error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Category{}).Count(&total).Error; err != nil {
		r.log.Errorf("Repository: Failed to count categories: %v", err)
		return domain.Page[domain.Category]{}, fmt.Errorf("could not count categories: %w", err)
	}

	categories := []domain.Category{}
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Limit(req.Size).
		Offset(req.Offset()).
		Find(&categories).Error
	if err != nil {
		r.log.Errorf("Repository: Failed to list categories (page %d, size %d): %v", req.Page, req.Size, err)
		return domain.Page[domain.Category]{}, fmt.Errorf("could not list categories: %w", err)
	}

	r.log.Infof("Repository: Retrieved %d of %d categories (page %d, size %d)", len(categories), total, req.Page, req.Size)
	return domain.NewPage(categories, total, req), nil
}

func categoryNotFound(id int) error {
	return fmt.Errorf("category with id %d %w", id, domain.ErrNotFound)
}
