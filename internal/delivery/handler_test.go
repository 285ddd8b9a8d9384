package delivery_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"catalog_service/internal/app"
	"catalog_service/internal/auth"
	"catalog_service/internal/domain"
	"catalog_service/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Message string                 `json:"message"`
	Data    json.RawMessage        `json:"data"`
	Status  int                    `json:"status"`
	Meta    map[string]interface{} `json:"meta"`
}

type testServer struct {
	t          *testing.T
	router     *gin.Engine
	adminToken string
	staffToken string
	userToken  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	tokens := auth.NewTokenManager("test-secret", time.Hour, "catalog-test")
	application := app.New(testutil.NewDB(t), tokens, testutil.NewLogger())

	mint := func(email string, role domain.Role) string {
		user, _, err := application.Auth.EnsureUser(context.Background(), &domain.User{Email: email, Role: role}, "password")
		require.NoError(t, err)
		raw, _, err := tokens.Issue(user)
		require.NoError(t, err)
		return raw
	}

	return &testServer{
		t:          t,
		router:     application.Router,
		adminToken: mint("root@example.com", domain.RoleSuperAdmin),
		staffToken: mint("admin@example.com", domain.RoleAdmin),
		userToken:  mint("user@example.com", domain.RoleUser),
	}
}

func (s *testServer) do(method, path, token string, body interface{}) (int, envelope) {
	s.t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func (s *testServer) createCategory(name string) domain.Category {
	s.t.Helper()
	code, env := s.do(http.MethodPost, "/categories", s.adminToken, map[string]string{"name": name, "description": name + " desc"})
	require.Equal(s.t, http.StatusCreated, code)
	return decode[domain.Category](s.t, env.Data)
}

func (s *testServer) createProduct(categoryID int, name string) domain.Product {
	s.t.Helper()
	code, env := s.do(http.MethodPost, fmt.Sprintf("/products/category/%d", categoryID), s.adminToken,
		map[string]interface{}{"name": name, "price": 100, "stock": 2})
	require.Equal(s.t, http.StatusCreated, code)
	return decode[domain.Product](s.t, env.Data)
}
