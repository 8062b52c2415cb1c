package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dirk1989/Ideal/internal/domain"
	"github.com/Dirk1989/Ideal/internal/service"
)

const msgDealerNotFound = "Dealer not found"

// DealerHandler serves dealer profiles.
type DealerHandler struct {
	service service.DealerServiceInterface
}

// NewDealerHandler creates a new DealerHandler.
func NewDealerHandler(svc service.DealerServiceInterface) *DealerHandler {
	return &DealerHandler{service: svc}
}

// DealerResponse is returned by admin writes.
type DealerResponse struct {
	Success bool          `json:"success"`
	Dealer  domain.Dealer `json:"dealer"`
}

// List handles GET /api/dealers. Only active dealers are listed.
func (h *DealerHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ListActive(c.Request.Context()))
}

// Get handles GET /api/dealers/:id.
func (h *DealerHandler) Get(c *gin.Context) {
	id, ok := parseID(c, msgDealerNotFound)
	if !ok {
		return
	}

	dealer, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dealer)
}

// Vehicles handles GET /api/dealers/:id/cars.
func (h *DealerHandler) Vehicles(c *gin.Context) {
	id, ok := parseID(c, msgDealerNotFound)
	if !ok {
		return
	}

	cars, err := h.service.Vehicles(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cars)
}

// Create handles POST /api/admin/dealers.
func (h *DealerHandler) Create(c *gin.Context) {
	in, err := readInput(c)
	if err != nil {
		respondError(c, err)
		return
	}

	dealer, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, DealerResponse{Success: true, Dealer: dealer})
}

// Update handles PUT /api/admin/dealers/:id.
func (h *DealerHandler) Update(c *gin.Context) {
	id, ok := parseID(c, msgDealerNotFound)
	if !ok {
		return
	}
	in, err := readInput(c)
	if err != nil {
		respondError(c, err)
		return
	}

	dealer, err := h.service.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, DealerResponse{Success: true, Dealer: dealer})
}

// Delete handles DELETE /api/admin/dealers/:id. The dealer is deactivated,
// not removed.
func (h *DealerHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, msgDealerNotFound)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
