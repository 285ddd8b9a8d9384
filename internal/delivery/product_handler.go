package delivery

import (
	"fmt"
	"net/http"

	"catalog_service/internal/domain"
	"catalog_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	useCase usecase.ProductUseCase
	log     *logrus.Logger
}

func NewProductHandler(uc usecase.ProductUseCase, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase: uc,
		log:     logger,
	}
}

// ProductRequest carries the four client-writable fields. A category in the
// payload is never bound; the path decides it on create and the stored row
// keeps it on update.
type ProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Stock       int    `json:"stock"`
}

func (r ProductRequest) toDomain() *domain.Product {
	return &domain.Product{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
	}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter, admin gin.HandlerFunc) {
	products := router.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProductByID)
		products.GET("/category/:categoryId", h.ListProductsByCategory)
		products.POST("/category/:categoryId", admin, h.CreateProduct)
		products.PUT("/:id", admin, h.UpdateProduct)
		products.DELETE("/:id", admin, h.DeleteProduct)
	}
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	categoryID, ok := parseID(c, h.log, "categoryId", "category")
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for create product: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	createdProduct, err := h.useCase.CreateProduct(c.Request.Context(), categoryID, req.toDomain())
	if err != nil {
		h.log.Errorf("Failed to create product '%s' in category %d: %v", req.Name, categoryID, err)
		writeError(c, err, fmt.Sprintf("Category id %d not found", categoryID))
		return
	}

	h.log.Infof("Product created successfully: ID %d, Name %s", createdProduct.ID, createdProduct.Name)
	SuccessResponse(c, http.StatusCreated, "Product created successfully", createdProduct)
}

func (h *ProductHandler) GetProductByID(c *gin.Context) {
	id, ok := parseID(c, h.log, "id", "product")
	if !ok {
		return
	}

	product, err := h.useCase.GetProductByID(c.Request.Context(), id)
	if err != nil {
		h.log.Warnf("Failed to get product by ID %d: %v", id, err)
		writeError(c, err, fmt.Sprintf("Product id %d not found", id))
		return
	}

	SuccessResponse(c, http.StatusOK, "Product retrieved successfully", product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c, h.log, "id", "product")
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for update product ID %d: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	product := req.toDomain()
	product.ID = id

	updatedProduct, err := h.useCase.UpdateProduct(c.Request.Context(), product)
	if err != nil {
		h.log.Errorf("Failed to update product ID %d: %v", id, err)
		writeError(c, err, fmt.Sprintf("Product id %d not found", id))
		return
	}

	h.log.Infof("Product updated successfully: ID %d", updatedProduct.ID)
	SuccessResponse(c, http.StatusOK, "Product updated successfully", updatedProduct)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c, h.log, "id", "product")
	if !ok {
		return
	}

	deletedProduct, err := h.useCase.DeleteProduct(c.Request.Context(), id)
	if err != nil {
		h.log.Warnf("Failed to delete product ID %d: %v", id, err)
		writeError(c, err, fmt.Sprintf("Product id %d not found", id))
		return
	}

	h.log.Infof("Product deleted successfully: ID %d", id)
	SuccessResponse(c, http.StatusOK, "Product deleted successfully", deletedProduct)
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	req := pageRequest(c, h.log)

	page, err := h.useCase.ListProducts(c.Request.Context(), req)
	if err != nil {
		h.log.Errorf("Failed to list products: %v", err)
		writeError(c, err, "Failed to retrieve products")
		return
	}

	h.log.Infof("Retrieved %d products", len(page.Items))
	PageResponse(c, "Products retrieved successfully", page)
}

func (h *ProductHandler) ListProductsByCategory(c *gin.Context) {
	categoryID, ok := parseID(c, h.log, "categoryId", "category")
	if !ok {
		return
	}
	req := pageRequest(c, h.log)

	page, err := h.useCase.ListProductsByCategory(c.Request.Context(), categoryID, req)
	if err != nil {
		h.log.Errorf("Failed to list products for category %d: %v", categoryID, err)
		writeError(c, err, "Failed to retrieve products")
		return
	}

	h.log.Infof("Retrieved %d products for category %d", len(page.Items), categoryID)
	PageResponse(c, "Products retrieved successfully", page)
}
