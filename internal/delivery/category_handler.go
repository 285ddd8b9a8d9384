package delivery

import (
	"net/http"

	"catalog_service/internal/domain"
	"catalog_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CategoryHandler struct {
	useCase usecase.CategoryUseCase
	log     *logrus.Logger
}

func NewCategoryHandler(uc usecase.CategoryUseCase, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{
		useCase: uc,
		log:     logger,
	}
}

// CategoryRequest is the writable part of a category. Id and timestamps sent
// by the client are dropped during binding.
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RegisterRoutes mounts the category endpoints on an authenticated router.
// Write endpoints additionally run admin before the handler.
func (h *CategoryHandler) RegisterRoutes(router gin.IRouter, admin gin.HandlerFunc) {
	categories := router.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.GET("/:id", h.GetCategoryByID)
		categories.GET("/:id/products", h.ListCategoryProducts)
		categories.POST("", admin, h.CreateCategory)
		categories.PUT("/:id", admin, h.UpdateCategory)
		categories.DELETE("/:id", admin, h.DeleteCategory)
		categories.DELETE("/:id/products/:productId", admin, h.DeleteCategoryProduct)
	}
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for create category: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	createdCategory, err := h.useCase.CreateCategory(c.Request.Context(), &domain.Category{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.log.Errorf("Failed to create category '%s': %v", req.Name, err)
		writeError(c, err, "Failed to create category")
		return
	}

	h.log.Infof("Category created successfully: ID %d, Name %s", createdCategory.ID, createdCategory.Name)
	SuccessResponse(c, http.StatusCreated, "Category created", createdCategory)
}

func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	id, ok := parseID(c, h.log, "id", "category")
	if !ok {
		return
	}

	category, err := h.useCase.GetCategoryByID(c.Request.Context(), id)
	if err != nil {
		h.log.Warnf("Failed to get category by ID %d: %v", id, err)
		writeError(c, err, "Category not found")
		return
	}

	SuccessResponse(c, http.StatusOK, "Category retrieved", category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c, h.log, "id", "category")
	if !ok {
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for update category ID %d: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	updatedCategory, err := h.useCase.UpdateCategory(c.Request.Context(), &domain.Category{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.log.Errorf("Failed to update category ID %d: %v", id, err)
		writeError(c, err, "Category not found")
		return
	}

	h.log.Infof("Category updated successfully: ID %d", updatedCategory.ID)
	SuccessResponse(c, http.StatusOK, "Category updated", updatedCategory)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c, h.log, "id", "category")
	if !ok {
		return
	}

	deletedCategory, err := h.useCase.DeleteCategory(c.Request.Context(), id)
	if err != nil {
		h.log.Warnf("Failed to delete category ID %d: %v", id, err)
		writeError(c, err, "Category not found")
		return
	}

	h.log.Infof("Category deleted successfully: ID %d", id)
	SuccessResponse(c, http.StatusOK, "Category deleted", deletedCategory)
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	req := pageRequest(c, h.log)

	page, err := h.useCase.ListCategories(c.Request.Context(), req)
	if err != nil {
		h.log.Errorf("Failed to list categories: %v", err)
		writeError(c, err, "Failed to retrieve categories")
		return
	}

	h.log.Infof("Retrieved %d categories", len(page.Items))
	PageResponse(c, "Categories retrieved", page)
}

func (h *CategoryHandler) ListCategoryProducts(c *gin.Context) {
	id, ok := parseID(c, h.log, "id", "category")
	if !ok {
		return
	}

	products, err := h.useCase.ListCategoryProducts(c.Request.Context(), id)
	if err != nil {
		h.log.Warnf("Failed to list products of category %d: %v", id, err)
		writeError(c, err, "Category not found")
		return
	}

	SuccessResponse(c, http.StatusOK, "Products retrieved", products)
}

func (h *CategoryHandler) DeleteCategoryProduct(c *gin.Context) {
	categoryID, ok := parseID(c, h.log, "id", "category")
	if !ok {
		return
	}
	productID, ok := parseID(c, h.log, "productId", "product")
	if !ok {
		return
	}

	deletedProduct, err := h.useCase.DeleteCategoryProduct(c.Request.Context(), categoryID, productID)
	if err != nil {
		h.log.Warnf("Failed to delete product %d of category %d: %v", productID, categoryID, err)
		writeError(c, err, "Product not found")
		return
	}

	h.log.Infof("Product %d deleted from category %d", productID, categoryID)
	SuccessResponse(c, http.StatusOK, "Product deleted", deletedProduct)
}
