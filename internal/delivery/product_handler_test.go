package delivery_test

import (
	"fmt"
	"net/http"
	"testing"

	"catalog_service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct(t *testing.T) {
	s := newTestServer(t)
	target := s.createCategory("Target")
	decoy := s.createCategory("Decoy")

	code, env := s.do(http.MethodPost, fmt.Sprintf("/products/category/%d", target.ID), s.adminToken, map[string]interface{}{
		"id":          321,
		"name":        "Pen",
		"description": "Blue",
		"price":       150,
		"stock":       4,
		"categoryId":  decoy.ID,
	})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "Product created successfully", env.Message)

	created := decode[domain.Product](t, env.Data)
	assert.NotEqual(t, 321, created.ID)
	assert.Equal(t, target.ID, created.CategoryID)
	assert.Equal(t, 150, created.Price)
	assert.Equal(t, 4, created.Stock)

	code, env = s.do(http.MethodGet, fmt.Sprintf("/products/%d", created.ID), s.userToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Product retrieved successfully", env.Message)
	got := decode[domain.Product](t, env.Data)
	assert.Equal(t, "Pen", got.Name)
	assert.Equal(t, "Blue", got.Description)
	assert.Equal(t, target.ID, got.CategoryID)
}

func TestCreateProductUnknownCategory(t *testing.T) {
	s := newTestServer(t)

	code, env := s.do(http.MethodPost, "/products/category/999", s.adminToken, map[string]interface{}{"name": "Lost"})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Category id 999 not found", env.Message)

	code, env = s.do(http.MethodGet, "/products", s.userToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 0, env.Meta["totalElements"])
}

func TestUpdateProductKeepsCategory(t *testing.T) {
	s := newTestServer(t)
	home := s.createCategory("Home")
	away := s.createCategory("Away")
	product := s.createProduct(home.ID, "Cup")

	code, env := s.do(http.MethodPut, fmt.Sprintf("/products/%d", product.ID), s.adminToken, map[string]interface{}{
		"name":       "Mug",
		"price":      7,
		"stock":      0,
		"categoryId": away.ID,
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Product updated successfully", env.Message)

	updated := decode[domain.Product](t, env.Data)
	assert.Equal(t, product.ID, updated.ID)
	assert.Equal(t, home.ID, updated.CategoryID)
	assert.Equal(t, "Mug", updated.Name)
	assert.Equal(t, 7, updated.Price)
	assert.Equal(t, 0, updated.Stock)

	code, env = s.do(http.MethodPut, "/products/8888", s.adminToken, map[string]interface{}{"name": "x"})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Product id 8888 not found", env.Message)
}

func TestDeleteProduct(t *testing.T) {
	s := newTestServer(t)
	category := s.createCategory("Desk")
	product := s.createProduct(category.ID, "Stapler")

	code, _ := s.do(http.MethodDelete, fmt.Sprintf("/products/%d", product.ID), s.userToken, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, env := s.do(http.MethodDelete, fmt.Sprintf("/products/%d", product.ID), s.adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Product deleted successfully", env.Message)
	assert.Equal(t, "Stapler", decode[domain.Product](t, env.Data).Name)

	code, _ = s.do(http.MethodDelete, fmt.Sprintf("/products/%d", product.ID), s.adminToken, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = s.do(http.MethodGet, "/products/xyz", s.userToken, nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestListProductsByCategory(t *testing.T) {
	s := newTestServer(t)
	fruit := s.createCategory("Fruit")
	veg := s.createCategory("Veg")
	for i := 0; i < 12; i++ {
		s.createProduct(fruit.ID, fmt.Sprintf("fruit%d", i))
	}
	s.createProduct(veg.ID, "carrot")

	code, env := s.do(http.MethodGet, fmt.Sprintf("/products/category/%d?page=2&size=5", fruit.ID), s.userToken, nil)
	require.Equal(t, http.StatusOK, code)
	items := decode[[]domain.Product](t, env.Data)
	assert.Len(t, items, 5)
	for _, p := range items {
		assert.Equal(t, fruit.ID, p.CategoryID)
	}
	assert.EqualValues(t, 12, env.Meta["totalElements"])
	assert.EqualValues(t, 3, env.Meta["totalPages"])
	assert.EqualValues(t, 2, env.Meta["pageNumber"])

	code, env = s.do(http.MethodGet, "/products/category/777", s.userToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "[]", string(env.Data))
	assert.EqualValues(t, 0, env.Meta["totalElements"])
	assert.EqualValues(t, 0, env.Meta["totalPages"])

	code, env = s.do(http.MethodGet, "/products?size=20", s.userToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]domain.Product](t, env.Data), 13)
	assert.EqualValues(t, 13, env.Meta["totalElements"])
}

func TestProductPagination(t *testing.T) {
	s := newTestServer(t)
	category := s.createCategory("Bulk")
	for i := 1; i <= 25; i++ {
		s.createProduct(category.ID, fmt.Sprintf("p%02d", i))
	}

	for _, path := range []string{"/products", fmt.Sprintf("/products/category/%d", category.ID)} {
		t.Run(path, func(t *testing.T) {
			code, env := s.do(http.MethodGet, path+"?page=1&size=10", s.userToken, nil)
			require.Equal(t, http.StatusOK, code)
			items := decode[[]domain.Product](t, env.Data)
			require.Len(t, items, 10)
			assert.Equal(t, "p01", items[0].Name)
			assert.EqualValues(t, 3, env.Meta["totalPages"])
			assert.EqualValues(t, 25, env.Meta["totalElements"])
			assert.EqualValues(t, 1, env.Meta["pageNumber"])
			assert.EqualValues(t, 10, env.Meta["pageSize"])

			code, env = s.do(http.MethodGet, path+"?page=3&size=10", s.userToken, nil)
			require.Equal(t, http.StatusOK, code)
			assert.Len(t, decode[[]domain.Product](t, env.Data), 5)

			code, env = s.do(http.MethodGet, path+"?page=4&size=10", s.userToken, nil)
			require.Equal(t, http.StatusOK, code)
			assert.Equal(t, "[]", string(env.Data))
			assert.EqualValues(t, 3, env.Meta["totalPages"])
			assert.EqualValues(t, 25, env.Meta["totalElements"])
			assert.EqualValues(t, 4, env.Meta["pageNumber"])
		})
	}
}
