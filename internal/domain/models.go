package domain

import "time"

type Category struct {
	ID          int       `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime;<-:create"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"autoUpdateTime"`

	// Owned products, removed together with the category.
	Products []Product `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

func (Category) TableName() string { return "category" }

type Product struct {
	ID          int       `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name"`
	Description string    `json:"description" gorm:"type:text"`
	Price       int       `json:"price"` // whole units, no fractional part
	Stock       int       `json:"stock"`
	CategoryID  int       `json:"categoryId" gorm:"not null;index"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime;<-:create"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (Product) TableName() string { return "product" }

// Page is one slice of an ordered collection. PageNumber is 1-based.
type Page[T any] struct {
	Items         []T
	TotalElements int64
	PageNumber    int
	PageSize      int
}

func (p Page[T]) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return int((p.TotalElements + int64(p.PageSize) - 1) / int64(p.PageSize))
}
