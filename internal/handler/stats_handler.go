package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Dirk1989/Ideal/internal/domain"
	"github.com/Dirk1989/Ideal/internal/service"
)

// StatsHandler serves the admin dashboard summary.
type StatsHandler struct {
	service service.StatsServiceInterface
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(svc service.StatsServiceInterface) *StatsHandler {
	return &StatsHandler{service: svc}
}

// StatsResponse wraps the dashboard figures.
type StatsResponse struct {
	Success bool         `json:"success"`
	Stats   domain.Stats `json:"stats"`
}

// Stats handles GET /api/admin/stats.
func (h *StatsHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, StatsResponse{Success: true, Stats: h.service.Stats(c.Request.Context())})
}

// IndexResponse describes the API root.
type IndexResponse struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

// Index handles GET /.
func Index(c *gin.Context) {
	c.JSON(http.StatusOK, IndexResponse{
		Message: "IdealCar Backend API",
		Endpoints: map[string]string{
			"cars":    "/api/cars",
			"blog":    "/api/blog",
			"dealers": "/api/dealers",
			"contact": "/api/contact",
			"admin":   "/api/admin",
			"health":  "/health",
		},
	})
}
