package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dirk1989/Ideal/internal/domain"
	"github.com/Dirk1989/Ideal/internal/service"
)

const msgContactThanks = "Thank you for contacting us! We'll respond within 24 hours."

// ContactHandler accepts contact form submissions.
type ContactHandler struct {
	service service.ContactServiceInterface
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(svc service.ContactServiceInterface) *ContactHandler {
	return &ContactHandler{service: svc}
}

// ContactResponse acknowledges a submission.
type ContactResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Reference string `json:"reference"`
}

// Submit handles POST /api/contact. JSON and form bodies are accepted.
func (h *ContactHandler) Submit(c *gin.Context) {
	var msg domain.ContactMessage
	if err := c.ShouldBind(&msg); err != nil {
		respondError(c, bindingError(err))
		return
	}

	receipt, err := h.service.Submit(c.Request.Context(), msg)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ContactResponse{
		Success:   true,
		Message:   msgContactThanks,
		Reference: receipt.Reference,
	})
}
