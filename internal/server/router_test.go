package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dirk1989/Ideal/internal/config"
	"github.com/Dirk1989/Ideal/internal/domain"
	"github.com/Dirk1989/Ideal/internal/handler"
	"github.com/Dirk1989/Ideal/internal/repository"
	"github.com/Dirk1989/Ideal/internal/service"
	"github.com/Dirk1989/Ideal/internal/session"
	"github.com/Dirk1989/Ideal/internal/upload"
	"github.com/Dirk1989/Ideal/internal/validator"
)

const adminPassword = "correct-horse"

func init() {
	gin.SetMode(gin.TestMode)
}

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type testServer struct {
	router    *gin.Engine
	clock     *clock
	uploadDir string
}

func newTestServer(t *testing.T, opts ...func(*config.Config)) *testServer {
	t.Helper()

	clk := &clock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	cfg := &config.Config{
		Environment:       "test",
		AllowedOrigins:    []string{"http://localhost:3000"},
		AdminTokenTTL:     time.Hour,
		UploadDir:         t.TempDir(),
		RateLimitRequests: 100,
		RateLimitWindow:   15 * time.Minute,
		LoginRateLimit:    5,
		LoginRateWindow:   15 * time.Minute,
		ContactRateLimit:  10,
		ContactRateWindow: time.Hour,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	repos, err := repository.OpenAll(context.Background(), repository.NewMemoryBackend())
	require.NoError(t, err)

	uploads, err := upload.New(cfg.UploadDir, upload.DefaultLimits())
	require.NoError(t, err)

	v := validator.NewValidator()
	auth := session.NewAuthenticatorWithClock(
		session.NewMemoryStoreWithClock(clk.Now),
		session.Config{Password: adminPassword, TTL: cfg.AdminTokenTTL},
		clk.Now,
	)

	limiters, closeLimiters, err := NewLimiters(cfg)
	require.NoError(t, err)
	t.Cleanup(closeLimiters)

	router := NewRouter(Options{
		Config: cfg,
		Handlers: Handlers{
			Vehicles: handler.NewVehicleHandler(service.NewVehicleService(repos.Vehicles, uploads, v)),
			Blog:     handler.NewBlogHandler(service.NewBlogService(repos.BlogPosts, uploads, v)),
			Dealers:  handler.NewDealerHandler(service.NewDealerService(repos.Dealers, repos.Vehicles, uploads, v)),
			Contact:  handler.NewContactHandler(service.NewContactService(v)),
			Auth:     handler.NewAuthHandler(auth),
			Stats:    handler.NewStatsHandler(service.NewStatsService(repos.Vehicles, repos.BlogPosts, repos.Dealers)),
			Health:   handler.NewHealthHandler("test", nil),
		},
		Limiters: limiters,
		Tokens:   auth,
	})

	return &testServer{router: router, clock: clk, uploadDir: cfg.UploadDir}
}

func (s *testServer) do(method, target, token string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) login(t *testing.T) string {
	t.Helper()
	w := s.do(http.MethodPost, "/api/admin/login", "", strings.NewReader(`{"password":"`+adminPassword+`"}`), "application/json")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp handler.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func (s *testServer) cars(t *testing.T, query string) []domain.Vehicle {
	t.Helper()
	w := s.do(http.MethodGet, "/api/cars"+query, "", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var cars []domain.Vehicle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cars))
	return cars
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp handler.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	return resp.Error
}

func TestAPI_AdminCarLifecycle(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	require.Len(t, s.cars(t, ""), 1, "seeded listing")

	w := s.do(http.MethodPost, "/api/admin/cars", token,
		strings.NewReader(`{"make":"Toyota","model":"Corolla","year":2021,"price":180000}`), "application/json")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created handler.VehicleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, created.Success)
	assert.Equal(t, "Corolla", created.Car.Model)
	assert.Equal(t, domain.DefaultTransmission, created.Car.Transmission)
	assert.NotNil(t, created.Car.Images)

	cars := s.cars(t, "")
	require.Len(t, cars, 2)
	assert.Equal(t, created.Car.ID, cars[1].ID)

	assert.Len(t, s.cars(t, "?model=corolla"), 1)
	assert.Len(t, s.cars(t, "?maxPrice=200000"), 1)

	target := fmt.Sprintf("/api/admin/cars/%d", created.Car.ID)
	w = s.do(http.MethodPut, target, token, strings.NewReader("price=175000"), "application/x-www-form-urlencoded")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated handler.VehicleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, float64(175000), updated.Car.Price)
	assert.Equal(t, "Corolla", updated.Car.Model)
	assert.Equal(t, created.Car.Year, updated.Car.Year)

	w = s.do(http.MethodGet, "/api/admin/stats", token, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalCars":2`)

	w = s.do(http.MethodDelete, target, token, nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodDelete, target, token, nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Car not found", errorMessage(t, w))

	w = s.do(http.MethodGet, fmt.Sprintf("/api/cars/%d", created.Car.ID), "", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_AdminRequiresToken(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/admin/cars", "", strings.NewReader(`{"make":"Toyota"}`), "application/json")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Authentication required", errorMessage(t, w))

	w = s.do(http.MethodDelete, "/api/admin/cars/1", "not-a-token", nil, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	assert.Len(t, s.cars(t, ""), 1, "seed untouched")
}

func TestAPI_ExpiredToken(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	s.clock.Advance(time.Hour + time.Second)

	w := s.do(http.MethodPost, "/api/admin/cars", token,
		strings.NewReader(`{"make":"Toyota","model":"Corolla","year":2021,"price":180000}`), "application/json")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid or expired token", errorMessage(t, w))
	assert.Len(t, s.cars(t, ""), 1)
}

func TestAPI_Logout(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	w := s.do(http.MethodPost, "/api/admin/logout", token, nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/admin/stats", token, nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func multipartCar(t *testing.T, contentType, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("make", "Mazda"))
	require.NoError(t, writer.WriteField("model", "CX-5"))
	require.NoError(t, writer.WriteField("year", "2020"))
	require.NoError(t, writer.WriteField("price", "320000"))

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="images"; filename=%q`, filename))
	h.Set("Content-Type", contentType)
	part, err := writer.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestAPI_RejectsNonImageUpload(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	body, contentType := multipartCar(t, "text/plain", "notes.txt", []byte("hello"))
	w := s.do(http.MethodPost, "/api/admin/cars", token, body, contentType)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, errorMessage(t, w), "only image files are allowed")

	entries, err := os.ReadDir(s.uploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Len(t, s.cars(t, ""), 1)
}

func TestAPI_ServesUploadedImages(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	body, contentType := multipartCar(t, "image/jpeg", "front.jpg", []byte("jpeg-bytes"))
	w := s.do(http.MethodPost, "/api/admin/cars", token, body, contentType)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created handler.VehicleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Len(t, created.Car.Images, 1)
	assert.True(t, strings.HasPrefix(created.Car.Images[0], upload.URLPrefix))

	w = s.do(http.MethodGet, created.Car.Images[0], "", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "jpeg-bytes", w.Body.String())
}

func TestAPI_LoginRateLimit(t *testing.T) {
	s := newTestServer(t)

	for i := 0; i < 5; i++ {
		w := s.do(http.MethodPost, "/api/admin/login", "", strings.NewReader(`{"password":"wrong"}`), "application/json")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	}

	w := s.do(http.MethodPost, "/api/admin/login", "", strings.NewReader(`{"password":"`+adminPassword+`"}`), "application/json")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "Too many login attempts, please try again later.", errorMessage(t, w))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	assert.Len(t, s.cars(t, ""), 1, "other endpoints keep their own budget")
}

func (s *testServer) loginFrom(forwardedFor, password string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"password":"`+password+`"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", forwardedFor)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func TestAPI_LoginRateLimitIgnoresForwardedFor(t *testing.T) {
	s := newTestServer(t)

	for i := 0; i < 5; i++ {
		w := s.loginFrom(fmt.Sprintf("10.0.0.%d", i+1), "wrong")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	}

	w := s.loginFrom("10.0.0.99", "wrong")
	assert.Equal(t, http.StatusTooManyRequests, w.Code, "a rotated X-Forwarded-For does not reset the budget")
}

func TestAPI_LoginRateLimitBehindTrustedProxy(t *testing.T) {
	// httptest requests arrive from 192.0.2.1.
	s := newTestServer(t, func(cfg *config.Config) {
		cfg.TrustedProxies = []string{"192.0.2.1"}
	})

	for i := 0; i < 5; i++ {
		require.Equal(t, http.StatusUnauthorized, s.loginFrom("198.51.100.7", "wrong").Code)
	}
	assert.Equal(t, http.StatusTooManyRequests, s.loginFrom("198.51.100.7", "wrong").Code)
	assert.Equal(t, http.StatusUnauthorized, s.loginFrom("198.51.100.8", "wrong").Code,
		"clients behind the proxy keep separate budgets")
}

func TestAPI_Contact(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/contact", "",
		strings.NewReader(`{"name":"Thandi","email":"thandi@example.co.za","message":"Is the Camry still available?"}`), "application/json")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp handler.ContactResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Regexp(t, `^IC\d{8}$`, resp.Reference)

	w = s.do(http.MethodPost, "/api/contact", "", strings.NewReader(`{"name":"Thandi"}`), "application/json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAPI_Dealers(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t)

	w := s.do(http.MethodGet, "/api/dealers/1/cars", "", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Camry")

	w = s.do(http.MethodDelete, "/api/admin/dealers/1", token, nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/dealers", "", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = s.do(http.MethodGet, "/api/dealers/1", "", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = s.do(http.MethodGet, "/api/dealers/1/cars", "", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_Headers(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/", "", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodOptions, "/api/cars", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	w = s.do(http.MethodGet, "/api/nothing-here", "", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not found", errorMessage(t, w))
}
