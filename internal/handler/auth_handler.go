package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dirk1989/Ideal/internal/middleware"
	"github.com/Dirk1989/Ideal/internal/service"
)

// AuthHandler issues and revokes admin tokens.
type AuthHandler struct {
	service service.AuthServiceInterface
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc service.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: svc}
}

// LoginRequest is the body of POST /api/admin/login.
type LoginRequest struct {
	Password string `json:"password" form:"password" binding:"max=256"`
}

// LoginResponse carries the issued token.
type LoginResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
	Message   string `json:"message"`
}

// Login handles POST /api/admin/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, bindingError(err))
		return
	}

	sess, err := h.service.Login(c.Request.Context(), req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Success:   true,
		Token:     sess.Token,
		ExpiresAt: sess.ExpiresAt.UTC().Format(TimeFormat),
		Message:   "Login successful",
	})
}

// Logout handles POST /api/admin/logout. It runs behind RequireAdmin.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context(), middleware.GetAdminToken(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "Logged out"})
}
