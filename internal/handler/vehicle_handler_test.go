package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
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

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(router *gin.Engine, method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	return resp
}

func TestVehicleHandler_List(t *testing.T) {
	t.Run("passes query filters to the service", func(t *testing.T) {
		mockService := mocks.NewMockVehicleServiceInterface(t)
		handler := NewVehicleHandler(mockService)

		featured := true
		want := domain.VehicleFilter{
			Make:     "toyota",
			MaxPrice: 300000,
			MinYear:  2018,
			Featured: &featured,
		}
		mockService.EXPECT().
			List(mock.Anything, want).
			Return([]domain.Vehicle{{ID: 1, Make: "Toyota", Model: "Camry"}})

		router := gin.New()
		router.GET("/api/cars", handler.List)

		w := serve(router, http.MethodGet, "/api/cars?make=toyota&maxPrice=300000&minYear=2018&featured=true", nil, "")

		require.Equal(t, http.StatusOK, w.Code)
		var cars []domain.Vehicle
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cars))
		require.Len(t, cars, 1)
		assert.Equal(t, "Camry", cars[0].Model)
	})

	t.Run("empty collection is an empty array", func(t *testing.T) {
		mockService := mocks.NewMockVehicleServiceInterface(t)
		handler := NewVehicleHandler(mockService)
		mockService.EXPECT().List(mock.Anything, domain.VehicleFilter{}).Return([]domain.Vehicle{})

		router := gin.New()
		router.GET("/api/cars", handler.List)

		w := serve(router, http.MethodGet, "/api/cars", nil, "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("rejects malformed numbers", func(t *testing.T) {
		mockService := mocks.NewMockVehicleServiceInterface(t)
		handler := NewVehicleHandler(mockService)

		router := gin.New()
		router.GET("/api/cars", handler.List)

		w := serve(router, http.MethodGet, "/api/cars?maxPrice=cheap", nil, "")

		require.Equal(t, http.StatusBadRequest, w.Code)
		decodeError(t, w)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		mockService := mocks.NewMockVehicleServiceInterface(t)
		handler := NewVehicleHandler(mockService)

		router := gin.New()
		router.GET("/api/cars", handler.List)

		w := serve(router, http.MethodGet, "/api/cars?maxPrice=-5", nil, "")

		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeError(t, w)
		assert.Contains(t, resp.Fields, "maxPrice")
	})
}

func TestVehicleHandler_Get(t *testing.T) {
	t.Run("returns the car", func(t *testing.T) {
		mockService := mocks.NewMockVehicleServiceInterface(t)
		handler := NewVehicleHandler(mockService)
		mockService.EXPECT().Get(mock.Anything, int64(1)).Return(domain.Vehicle{ID: 1, Make: "Toyota"}, nil)

		router := gin.New()
		router.GET("/api/cars/:id", handler.Get)

		w := serve(router, http.MethodGet, "/api/cars/1", nil, "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"make":"Toyota"`)
	})

	t.Run("unknown id", func(t *testing.T) {
		mockService := mocks.NewMockVehicleServiceInterface(t)
		handler := NewVehicleHandler(mockService)
		mockService.EXPECT().Get(mock.Anything, int64(999)).Return(domain.Vehicle{}, apperr.NotFound("Car not found"))

		router := gin.New()
		router.GET("/api/cars/:id", handler.Get)

		w := serve(router, http.MethodGet, "/api/cars/999", nil, "")

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Car not found", decodeError(t, w).Error)
	})

	t.Run("non-numeric id never reaches the service", func(t *testing.T) {
		mockService := mocks.NewMockVehicleServiceInterface(t)
		handler := NewVehicleHandler(mockService)

		router := gin.New()
		router.GET("/api/cars/:id", handler.Get)

		w := serve(router, http.MethodGet, "/api/cars/abc", nil, "")

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Car not found", decodeError(t, w).Error)
	})
}

func TestVehicleHandler_Create(t *testing.T) {
	t.Run("multipart form with images", func(t *testing.T) {
		mockService := mocks.NewMockVehicleServiceInterface(t)
		handler := NewVehicleHandler(mockService)

		mockService.EXPECT().
			Create(mock.Anything, mock.MatchedBy(func(in service.Input) bool {
				return in.Fields["make"] == "Toyota" &&
					in.Fields["price"] == "180000" &&
					len(in.Files["images"]) == 2
			})).
			Return(domain.Vehicle{ID: 2, Make: "Toyota", Model: "Corolla", Images: []string{"/uploads/a.jpg", "/uploads/b.jpg"}}, nil)

		router := gin.New()
		router.POST("/api/admin/cars", handler.Create)

		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		_ = writer.WriteField("make", "Toyota")
		_ = writer.WriteField("model", "Corolla")
		_ = writer.WriteField("price", "180000")
		for _, name := range []string{"a.jpg", "b.jpg"} {
			part, _ := writer.CreateFormFile("images", name)
			part.Write([]byte("jpeg"))
		}
		writer.Close()

		w := serve(router, http.MethodPost, "/api/admin/cars", body, writer.FormDataContentType())

		require.Equal(t, http.StatusCreated, w.Code)
		var resp VehicleResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, int64(2), resp.Car.ID)
		assert.Len(t, resp.Car.Images, 2)
	})

	t.Run("json body is read as form values", func(t *testing.T) {
		mockService := mocks.NewMockVehicleServiceInterface(t)
		handler := NewVehicleHandler(mockService)

		mockService.EXPECT().
			Create(mock.Anything, service.Input{Fields: domain.Fields{
				"make":     "Toyota",
				"model":    "Corolla",
				"year":     "2021",
				"price":    "180000",
				"featured": "true",
				"features": "Bluetooth,Cruise Control",
			}}).
			Return(domain.Vehicle{ID: 2}, nil)

		router := gin.New()
		router.POST("/api/admin/cars", handler.Create)

		body := `{"make":"Toyota","model":"Corolla","year":2021,"price":180000,"featured":true,"features":["Bluetooth","Cruise Control"]}`
		w := serve(router, http.MethodPost, "/api/admin/cars", strings.NewReader(body), "application/json")

		require.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("validation failure lists fields", func(t *testing.T) {
		mockService := mocks.NewMockVehicleServiceInterface(t)
		handler := NewVehicleHandler(mockService)

		mockService.EXPECT().
			Create(mock.Anything, mock.Anything).
			Return(domain.Vehicle{}, apperr.Validation("", map[string][]string{"price": {"Invalid price"}}))

		router := gin.New()
		router.POST("/api/admin/cars", handler.Create)

		w := serve(router, http.MethodPost, "/api/admin/cars", strings.NewReader("make=Toyota&model=Corolla&price=-1"), "application/x-www-form-urlencoded")

		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "Invalid price", resp.Error)
		assert.Equal(t, []string{"Invalid price"}, resp.Fields["price"])
	})

	t.Run("malformed json", func(t *testing.T) {
		mockService := mocks.NewMockVehicleServiceInterface(t)
		handler := NewVehicleHandler(mockService)

		router := gin.New()
		router.POST("/api/admin/cars", handler.Create)

		w := serve(router, http.MethodPost, "/api/admin/cars", strings.NewReader("{"), "application/json")

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid JSON body", decodeError(t, w).Error)
	})

	t.Run("rejected upload", func(t *testing.T) {
		mockService := mocks.NewMockVehicleServiceInterface(t)
		handler := NewVehicleHandler(mockService)

		mockService.EXPECT().
			Create(mock.Anything, mock.Anything).
			Return(domain.Vehicle{}, apperr.UploadRejected(errors.New("upload rejected: images: notes.txt: only image files are allowed")))

		router := gin.New()
		router.POST("/api/admin/cars", handler.Create)

		w := serve(router, http.MethodPost, "/api/admin/cars", strings.NewReader(`{"make":"Toyota"}`), "application/json")

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decodeError(t, w).Error, "only image files are allowed")
	})
}

func TestVehicleHandler_InternalErrors(t *testing.T) {
	tests := []struct {
		name        string
		development bool
		wantMsg     string
	}{
		{name: "redacted in production", development: false, wantMsg: "Internal server error"},
		{name: "shown in development", development: true, wantMsg: "operation failed: disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := mocks.NewMockVehicleServiceInterface(t)
			handler := NewVehicleHandler(mockService)
			mockService.EXPECT().
				Delete(mock.Anything, int64(3)).
				Return(apperr.Internal("operation failed", errors.New("disk full")))

			router := gin.New()
			router.Use(Development(tt.development))
			router.DELETE("/api/admin/cars/:id", handler.Delete)

			w := serve(router, http.MethodDelete, "/api/admin/cars/3", nil, "")

			require.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, w).Error)
		})
	}
}

func TestVehicleHandler_UpdateAndDelete(t *testing.T) {
	t.Run("update returns the merged car", func(t *testing.T) {
		mockService := mocks.NewMockVehicleServiceInterface(t)
		handler := NewVehicleHandler(mockService)
		mockService.EXPECT().
			Update(mock.Anything, int64(1), service.Input{Fields: domain.Fields{"price": "240000"}}).
			Return(domain.Vehicle{ID: 1, Make: "Toyota", Price: 240000}, nil)

		router := gin.New()
		router.PUT("/api/admin/cars/:id", handler.Update)

		w := serve(router, http.MethodPut, "/api/admin/cars/1", strings.NewReader("price=240000"), "application/x-www-form-urlencoded")

		require.Equal(t, http.StatusOK, w.Code)
		var resp VehicleResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, float64(240000), resp.Car.Price)
	})

	t.Run("delete acknowledges", func(t *testing.T) {
		mockService := mocks.NewMockVehicleServiceInterface(t)
		handler := NewVehicleHandler(mockService)
		mockService.EXPECT().Delete(mock.Anything, int64(1)).Return(nil)

		router := gin.New()
		router.DELETE("/api/admin/cars/:id", handler.Delete)

		w := serve(router, http.MethodDelete, "/api/admin/cars/1", nil, "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true}`, w.Body.String())
	})
}
