package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dirk1989/Ideal/internal/domain"
	"github.com/Dirk1989/Ideal/internal/service"
)

const msgCarNotFound = "Car not found"

// VehicleHandler serves the car listings.
type VehicleHandler struct {
	service service.VehicleServiceInterface
}

// NewVehicleHandler creates a new VehicleHandler.
func NewVehicleHandler(svc service.VehicleServiceInterface) *VehicleHandler {
	return &VehicleHandler{service: svc}
}

// VehicleQuery holds the optional listing filters.
type VehicleQuery struct {
	Make         string  `form:"make" binding:"max=100"`
	Model        string  `form:"model" binding:"max=100"`
	MaxPrice     float64 `form:"maxPrice" binding:"omitempty,min=0"`
	MinYear      int     `form:"minYear" binding:"omitempty,min=1900,max=3000"`
	Transmission string  `form:"transmission" binding:"max=100"`
	Fuel         string  `form:"fuel" binding:"max=100"`
	Featured     *bool   `form:"featured"`
	DealerID     int64   `form:"dealerId" binding:"omitempty,min=1"`
}

// Filter converts q into a domain filter.
func (q VehicleQuery) Filter() domain.VehicleFilter {
	return domain.VehicleFilter{
		Make:         q.Make,
		Model:        q.Model,
		MaxPrice:     q.MaxPrice,
		MinYear:      q.MinYear,
		Transmission: q.Transmission,
		Fuel:         q.Fuel,
		Featured:     q.Featured,
		DealerID:     q.DealerID,
	}
}

// VehicleResponse is returned by admin writes.
type VehicleResponse struct {
	Success bool           `json:"success"`
	Car     domain.Vehicle `json:"car"`
}

// List handles GET /api/cars.
func (h *VehicleHandler) List(c *gin.Context) {
	var q VehicleQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondError(c, bindingError(err))
		return
	}

	c.JSON(http.StatusOK, h.service.List(c.Request.Context(), q.Filter()))
}

// Get handles GET /api/cars/:id.
func (h *VehicleHandler) Get(c *gin.Context) {
	id, ok := parseID(c, msgCarNotFound)
	if !ok {
		return
	}

	car, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, car)
}

// Create handles POST /api/admin/cars.
func (h *VehicleHandler) Create(c *gin.Context) {
	in, err := readInput(c)
	if err != nil {
		respondError(c, err)
		return
	}

	car, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, VehicleResponse{Success: true, Car: car})
}

// Update handles PUT /api/admin/cars/:id.
func (h *VehicleHandler) Update(c *gin.Context) {
	id, ok := parseID(c, msgCarNotFound)
	if !ok {
		return
	}
	in, err := readInput(c)
	if err != nil {
		respondError(c, err)
		return
	}

	car, err := h.service.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, VehicleResponse{Success: true, Car: car})
}

// Delete handles DELETE /api/admin/cars/:id.
func (h *VehicleHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, msgCarNotFound)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
