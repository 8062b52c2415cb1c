package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dirk1989/Ideal/internal/domain"
	"github.com/Dirk1989/Ideal/internal/service"
)

const msgPostNotFound = "Post not found"

// BlogHandler serves blog posts.
type BlogHandler struct {
	service service.BlogServiceInterface
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(svc service.BlogServiceInterface) *BlogHandler {
	return &BlogHandler{service: svc}
}

// BlogResponse is returned by admin writes.
type BlogResponse struct {
	Success bool            `json:"success"`
	Post    domain.BlogPost `json:"post"`
}

// List handles GET /api/blog.
func (h *BlogHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List(c.Request.Context()))
}

// Get handles GET /api/blog/:id.
func (h *BlogHandler) Get(c *gin.Context) {
	id, ok := parseID(c, msgPostNotFound)
	if !ok {
		return
	}

	post, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// Create handles POST /api/admin/blog.
func (h *BlogHandler) Create(c *gin.Context) {
	in, err := readInput(c)
	if err != nil {
		respondError(c, err)
		return
	}

	post, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, BlogResponse{Success: true, Post: post})
}

// Update handles PUT /api/admin/blog/:id.
func (h *BlogHandler) Update(c *gin.Context) {
	id, ok := parseID(c, msgPostNotFound)
	if !ok {
		return
	}
	in, err := readInput(c)
	if err != nil {
		respondError(c, err)
		return
	}

	post, err := h.service.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, BlogResponse{Success: true, Post: post})
}

// Delete handles DELETE /api/admin/blog/:id.
func (h *BlogHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, msgPostNotFound)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
