package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Dirk1989/Ideal/internal/apperr"
	"github.com/Dirk1989/Ideal/internal/logger"
)

// AdminTokenKey is the context key holding the validated admin token.
const AdminTokenKey = "admin_token"

// TokenValidator checks an admin token.
type TokenValidator interface {
	Validate(ctx context.Context, token string) error
}

// RequireAdmin rejects requests without a live Bearer admin token.
func RequireAdmin(v TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if err := v.Validate(c.Request.Context(), token); err != nil {
			kind := apperr.KindOf(err)
			if kind == apperr.KindUnauthorized {
				abortWithError(c, kind.HTTPStatus(), messageOf(err))
				return
			}
			logger.ErrorContext(c.Request.Context(), "Token validation failed",
				slog.String("request_id", GetRequestID(c)),
				slog.String("error", err.Error()),
			)
			abortWithError(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		c.Set(AdminTokenKey, token)
		c.Next()
	}
}

// BearerToken extracts the token from an "Authorization: Bearer" header.
func BearerToken(c *gin.Context) string {
	h := strings.TrimSpace(c.GetHeader("Authorization"))
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// GetAdminToken returns the token accepted by RequireAdmin.
func GetAdminToken(c *gin.Context) string {
	return c.GetString(AdminTokenKey)
}

func abortWithError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "error": msg})
}

func messageOf(err error) string {
	var e *apperr.Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return err.Error()
}
