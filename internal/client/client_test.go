package client

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dirk1989/Ideal/internal/apperr"
	"github.com/Dirk1989/Ideal/internal/config"
	"github.com/Dirk1989/Ideal/internal/domain"
	"github.com/Dirk1989/Ideal/internal/handler"
	"github.com/Dirk1989/Ideal/internal/repository"
	"github.com/Dirk1989/Ideal/internal/server"
	"github.com/Dirk1989/Ideal/internal/service"
	"github.com/Dirk1989/Ideal/internal/session"
	"github.com/Dirk1989/Ideal/internal/upload"
	"github.com/Dirk1989/Ideal/internal/validator"
)

const testPassword = "correct-horse"

func init() {
	gin.SetMode(gin.TestMode)
}

// newAPI starts the full API on an in-memory store.
func newAPI(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		Environment:       "test",
		AdminTokenTTL:     time.Hour,
		UploadDir:         t.TempDir(),
		RateLimitRequests: 1000,
		RateLimitWindow:   time.Minute,
		LoginRateLimit:    10,
		LoginRateWindow:   time.Minute,
		ContactRateLimit:  10,
		ContactRateWindow: time.Minute,
	}

	repos, err := repository.OpenAll(context.Background(), repository.NewMemoryBackend())
	require.NoError(t, err)
	uploads, err := upload.New(cfg.UploadDir, upload.DefaultLimits())
	require.NoError(t, err)
	v := validator.NewValidator()
	auth := session.NewAuthenticator(session.NewMemoryStore(), session.Config{Password: testPassword, TTL: cfg.AdminTokenTTL})

	limiters, closeLimiters, err := server.NewLimiters(cfg)
	require.NoError(t, err)
	t.Cleanup(closeLimiters)

	router := server.NewRouter(server.Options{
		Config: cfg,
		Handlers: server.Handlers{
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

	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)
	return ts
}

func loggedIn(t *testing.T, baseURL string) *Admin {
	t.Helper()
	admin := NewAdmin(New(baseURL))
	require.NoError(t, admin.Login(context.Background(), testPassword))
	require.Len(t, admin.Token(), 64)
	return admin
}

func TestClient_PublicReads(t *testing.T) {
	ts := newAPI(t)
	c := New(ts.URL + "/")
	ctx := context.Background()

	cars, err := c.ListCars(ctx)
	require.NoError(t, err)
	require.Len(t, cars, 1)
	assert.Equal(t, "Camry", cars[0].Model)
	assert.Regexp(t, `^R250.000$`, cars[0].PriceZAR)

	car, err := c.GetCar(ctx, cars[0].ID)
	require.NoError(t, err)
	assert.Equal(t, cars[0].Vehicle, car.Vehicle)

	_, err = c.GetCar(ctx, 999)
	require.ErrorIs(t, err, ErrNotFound)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Car not found", apiErr.Message)

	posts, err := c.ListBlog(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, posts)
	post, err := c.GetBlogPost(ctx, posts[0].ID)
	require.NoError(t, err)
	assert.Equal(t, posts[0].Title, post.Title)

	dealers, err := c.ListDealers(ctx)
	require.NoError(t, err)
	require.Len(t, dealers, 1)

	dealerCars, err := c.DealerCars(ctx, dealers[0].ID)
	require.NoError(t, err)
	assert.Len(t, dealerCars, 1)
}

func TestClient_SubmitContact(t *testing.T) {
	ts := newAPI(t)
	c := New(ts.URL)

	ref, err := c.SubmitContact(context.Background(), domain.ContactMessage{
		Name:    "Thandi",
		Email:   "thandi@example.co.za",
		Phone:   "082 123 4567",
		Message: "Is the Camry still available?",
	})
	require.NoError(t, err)
	assert.Regexp(t, `^IC\d{8}$`, ref)
}

func TestClient_SubmitContactValidatesLocally(t *testing.T) {
	var calls int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer ts.Close()

	_, err := New(ts.URL).SubmitContact(context.Background(), domain.ContactMessage{
		Name:    "Thandi",
		Email:   "not-an-email",
		Phone:   "12345",
		Message: "Hello",
	})

	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	var appErr *apperr.Error
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Fields, "email")
	assert.Contains(t, appErr.Fields, "phone")
	assert.Zero(t, calls, "nothing is sent")
}

func TestAdmin_CarLifecycle(t *testing.T) {
	ts := newAPI(t)
	admin := loggedIn(t, ts.URL)
	ctx := context.Background()

	created, err := admin.CreateCar(ctx, Form{
		Values: url.Values{
			"make":  {"Toyota"},
			"model": {"Corolla"},
			"year":  {"2021"},
			"price": {"180000"},
		},
		Files: []File{{Field: "images", Name: "front.jpg", Data: bytes.NewReader([]byte("jpeg"))}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Corolla", created.Model)
	require.Len(t, created.Images, 1)
	assert.True(t, strings.HasPrefix(created.Images[0], upload.URLPrefix))

	updated, err := admin.UpdateCar(ctx, created.ID, Form{Values: url.Values{"price": {"175000"}}})
	require.NoError(t, err)
	assert.Equal(t, float64(175000), updated.Price)
	assert.Equal(t, created.Images, updated.Images)

	stats, err := admin.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalCars)
	assert.Equal(t, 1, stats.TotalImages)

	require.NoError(t, admin.DeleteCar(ctx, created.ID))
	assert.ErrorIs(t, admin.DeleteCar(ctx, created.ID), ErrNotFound)
}

func TestAdmin_BlogLifecycle(t *testing.T) {
	ts := newAPI(t)
	admin := loggedIn(t, ts.URL)
	ctx := context.Background()

	post, err := admin.CreateBlogPost(ctx, Form{Values: url.Values{
		"title":       {"Winter tyre checklist"},
		"excerpt":     {"Five things to check before the cold sets in."},
		"fullContent": {"<p>Tread depth first.</p>"},
	}})
	require.NoError(t, err)
	assert.Equal(t, "Winter tyre checklist", post.Title)

	post, err = admin.UpdateBlogPost(ctx, post.ID, Form{Values: url.Values{"category": {"Maintenance"}}})
	require.NoError(t, err)
	assert.Equal(t, "Maintenance", post.Category)

	require.NoError(t, admin.DeleteBlogPost(ctx, post.ID))
	_, err = admin.GetBlogPost(ctx, post.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdmin_Unauthorized(t *testing.T) {
	ts := newAPI(t)
	ctx := context.Background()

	admin := NewAdmin(New(ts.URL))
	err := admin.Login(ctx, "wrong")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)

	_, err = admin.Stats(ctx)
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)

	admin = loggedIn(t, ts.URL)
	require.NoError(t, admin.Logout(ctx))
	assert.Empty(t, admin.Token())
}
