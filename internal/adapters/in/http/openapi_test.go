package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOpenAPI(t *testing.T) {
	doc, err := LoadOpenAPI(context.Background())
	require.NoError(t, err)

	for _, path := range []string{
		"/api/admin/login",
		"/api/admin/entrega/add/auto-complete-endereco/{customer_id}",
		"/api/admin/customers",
		"/api/admin/products/{id}",
		"/api/admin/drivers/{id}",
		"/api/admin/deliveries/{id}/deliver",
		"/api/admin/payments",
	} {
		assert.NotNil(t, doc.Paths.Value(path), path)
	}
}

func validatedEcho(t *testing.T) *echo.Echo {
	t.Helper()
	doc, err := LoadOpenAPI(context.Background())
	require.NoError(t, err)
	validator, err := RequestValidator(doc)
	require.NoError(t, err)

	ok := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }
	e := echo.New()
	api := e.Group("/api", validator)
	api.POST("/admin/customers", ok)
	api.GET("/admin/customers", ok)
	api.POST("/admin/deliveries/:id/deliver", ok)
	return e
}

func TestRequestValidator(t *testing.T) {
	e := validatedEcho(t)

	tests := []struct {
		name        string
		method      string
		target      string
		contentType string
		body        string
		want        int
	}{
		{
			name:        "valid customer",
			method:      http.MethodPost,
			target:      "/api/admin/customers",
			contentType: echo.MIMEApplicationJSON,
			body:        `{"name":"Maria","address":"Rua A","phone":"1199","email":"maria@example.com"}`,
			want:        http.StatusNoContent,
		},
		{
			name:        "customer without name",
			method:      http.MethodPost,
			target:      "/api/admin/customers",
			contentType: echo.MIMEApplicationJSON,
			body:        `{"address":"Rua A","phone":"1199","email":"maria@example.com"}`,
			want:        http.StatusBadRequest,
		},
		{
			name:        "customer phone too long",
			method:      http.MethodPost,
			target:      "/api/admin/customers",
			contentType: echo.MIMEApplicationJSON,
			body:        `{"name":"Maria","address":"Rua A","phone":"123456789012345678901","email":"m@example.com"}`,
			want:        http.StatusBadRequest,
		},
		{
			name:   "malformed sort",
			method: http.MethodGet,
			target: "/api/admin/customers?sort=Name1",
			want:   http.StatusBadRequest,
		},
		{
			name:   "sort descending",
			method: http.MethodGet,
			target: "/api/admin/customers?sort=-registered_at",
			want:   http.StatusNoContent,
		},
		{
			name:        "deliver with form method",
			method:      http.MethodPost,
			target:      "/api/admin/deliveries/0b8e7d4a-6f0a-4b8e-9a59-1f3f3c1d2e4f/deliver",
			contentType: echo.MIMEApplicationForm,
			body:        "method=PIX",
			want:        http.StatusNoContent,
		},
		{
			name:   "deliver without body",
			method: http.MethodPost,
			target: "/api/admin/deliveries/0b8e7d4a-6f0a-4b8e-9a59-1f3f3c1d2e4f/deliver",
			want:   http.StatusNoContent,
		},
		{
			name:   "undocumented route",
			method: http.MethodGet,
			target: "/api/admin/unknown",
			want:   http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set(echo.HeaderContentType, tt.contentType)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}
