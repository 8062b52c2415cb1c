package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Dirk1989/Ideal/internal/apperr"
	"github.com/Dirk1989/Ideal/internal/middleware"
)

type validatorFunc func(ctx context.Context, token string) error

func (f validatorFunc) Validate(ctx context.Context, token string) error { return f(ctx, token) }

func adminRouter(v middleware.TokenValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/api/admin/stats", middleware.RequireAdmin(v), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"token": middleware.GetAdminToken(c)})
	})
	return router
}

func TestRequireAdmin(t *testing.T) {
	v := validatorFunc(func(_ context.Context, token string) error {
		switch token {
		case "good":
			return nil
		case "":
			return apperr.Unauthorized("Authentication required")
		case "broken":
			return apperr.Internal("failed to check token", errors.New("redis down"))
		default:
			return apperr.Unauthorized("Invalid or expired token")
		}
	})
	router := adminRouter(v)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"valid bearer", "Bearer good", http.StatusOK, `{"token":"good"}`},
		{"scheme is case-insensitive", "bearer good", http.StatusOK, `{"token":"good"}`},
		{"missing header", "", http.StatusUnauthorized, `{"success":false,"error":"Authentication required"}`},
		{"wrong scheme", "Basic good", http.StatusUnauthorized, `{"success":false,"error":"Authentication required"}`},
		{"unknown token", "Bearer idealcar-admin-token-2024", http.StatusUnauthorized, `{"success":false,"error":"Invalid or expired token"}`},
		{"store failure is redacted", "Bearer broken", http.StatusInternalServerError, `{"success":false,"error":"Internal server error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestBearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	c.Request.Header.Set("Authorization", "  Bearer   abc123  ")
	assert.Equal(t, "abc123", middleware.BearerToken(c))

	c.Request.Header.Set("Authorization", "Bearer")
	assert.Empty(t, middleware.BearerToken(c))
}
