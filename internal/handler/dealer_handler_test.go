package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Dirk1989/Ideal/internal/apperr"
	"github.com/Dirk1989/Ideal/internal/domain"
	"github.com/Dirk1989/Ideal/internal/mocks"
	"github.com/Dirk1989/Ideal/internal/service"
)

func TestDealerHandler_Public(t *testing.T) {
	mockService := mocks.NewMockDealerServiceInterface(t)
	handler := NewDealerHandler(mockService)

	mockService.EXPECT().ListActive(mock.Anything).
		Return([]domain.Dealer{{ID: 1, Name: "IdealCar Pretoria", Status: domain.DealerActive}})
	mockService.EXPECT().Vehicles(mock.Anything, int64(1)).
		Return([]domain.Vehicle{{ID: 1, DealerID: 1, Make: "Toyota"}}, nil)
	mockService.EXPECT().Vehicles(mock.Anything, int64(2)).
		Return(nil, apperr.NotFound("Dealer not found"))

	router := gin.New()
	router.GET("/api/dealers", handler.List)
	router.GET("/api/dealers/:id/cars", handler.Vehicles)

	w := serve(router, http.MethodGet, "/api/dealers", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "IdealCar Pretoria")

	w = serve(router, http.MethodGet, "/api/dealers/1/cars", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var cars []domain.Vehicle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cars))
	require.Len(t, cars, 1)
	assert.Equal(t, int64(1), cars[0].DealerID)

	w = serve(router, http.MethodGet, "/api/dealers/2/cars", nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Dealer not found", decodeError(t, w).Error)
}

func TestDealerHandler_Admin(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		mockService := mocks.NewMockDealerServiceInterface(t)
		handler := NewDealerHandler(mockService)
		mockService.EXPECT().
			Create(mock.Anything, service.Input{Fields: domain.Fields{"name": "Cape Motors", "email": "sales@capemotors.co.za"}}).
			Return(domain.Dealer{ID: 2, Name: "Cape Motors", Status: domain.DealerActive}, nil)

		router := gin.New()
		router.POST("/api/admin/dealers", handler.Create)

		w := serve(router, http.MethodPost, "/api/admin/dealers",
			strings.NewReader(`{"name":"Cape Motors","email":"sales@capemotors.co.za"}`), "application/json")

		require.Equal(t, http.StatusCreated, w.Code)
		var resp DealerResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "Cape Motors", resp.Dealer.Name)
	})

	t.Run("delete unknown dealer", func(t *testing.T) {
		mockService := mocks.NewMockDealerServiceInterface(t)
		handler := NewDealerHandler(mockService)
		mockService.EXPECT().Delete(mock.Anything, int64(9)).Return(apperr.NotFound("Dealer not found"))

		router := gin.New()
		router.DELETE("/api/admin/dealers/:id", handler.Delete)

		w := serve(router, http.MethodDelete, "/api/admin/dealers/9", nil, "")

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBlogHandler(t *testing.T) {
	mockService := mocks.NewMockBlogServiceInterface(t)
	handler := NewBlogHandler(mockService)

	mockService.EXPECT().List(mock.Anything).Return([]domain.BlogPost{{ID: 1, Title: "Buying your first car"}})
	mockService.EXPECT().Get(mock.Anything, int64(7)).Return(domain.BlogPost{}, apperr.NotFound("Post not found"))
	mockService.EXPECT().
		Update(mock.Anything, int64(1), service.Input{Fields: domain.Fields{"title": "Updated"}}).
		Return(domain.BlogPost{ID: 1, Title: "Updated"}, nil)

	router := gin.New()
	router.GET("/api/blog", handler.List)
	router.GET("/api/blog/:id", handler.Get)
	router.PUT("/api/admin/blog/:id", handler.Update)

	w := serve(router, http.MethodGet, "/api/blog", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Buying your first car")

	w = serve(router, http.MethodGet, "/api/blog/7", nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Post not found", decodeError(t, w).Error)

	w = serve(router, http.MethodGet, "/api/blog/0", nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)

	w = serve(router, http.MethodPut, "/api/admin/blog/1", strings.NewReader("title=Updated"), "application/x-www-form-urlencoded")
	require.Equal(t, http.StatusOK, w.Code)
	var resp BlogResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Updated", resp.Post.Title)
}
