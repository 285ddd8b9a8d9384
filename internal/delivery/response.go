package delivery

import (
	"errors"
	"net/http"
	"net/url"

	"catalog_service/internal/domain"

	"github.com/gin-gonic/gin"
)

// Response is the envelope returned by every endpoint.
type Response struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Status  int         `json:"status"`
	Meta    Meta        `json:"meta"`
}

type Meta struct {
	Method string `json:"method"`
	URL    string `json:"url"`
	*PageMeta
}

// PageMeta is only present on paginated list responses.
type PageMeta struct {
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
	PageNumber    int   `json:"pageNumber"`
	PageSize      int   `json:"pageSize"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Message: message,
		Data:    data,
		Status:  statusCode,
		Meta:    newMeta(c),
	})
}

func PageResponse[T any](c *gin.Context, message string, page domain.Page[T]) {
	meta := newMeta(c)
	meta.PageMeta = &PageMeta{
		TotalPages:    page.TotalPages(),
		TotalElements: page.TotalElements,
		PageNumber:    page.PageNumber,
		PageSize:      page.PageSize,
	}

	items := page.Items
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, Response{
		Message: message,
		Data:    items,
		Status:  http.StatusOK,
		Meta:    meta,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Message: message,
		Status:  statusCode,
		Meta:    newMeta(c),
	})
}

// AbortResponse writes an error envelope and stops the handler chain.
func AbortResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, Response{
		Message: message,
		Status:  statusCode,
		Meta:    newMeta(c),
	})
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// writeError answers with the status mapped from err. Domain failures carry
// the caller's message; store failures get a generic one so driver details
// never reach the client.
func writeError(c *gin.Context, err error, message string) {
	statusCode := mapErrorToStatus(err)
	if statusCode == http.StatusInternalServerError {
		message = "Internal server error"
	}
	ErrorResponse(c, statusCode, message)
}

func newMeta(c *gin.Context) Meta {
	return Meta{
		Method: c.Request.Method,
		URL:    requestURL(c.Request),
	}
}

func requestURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	u := url.URL{Scheme: scheme, Host: r.Host, Path: r.URL.Path}
	return u.String()
}
