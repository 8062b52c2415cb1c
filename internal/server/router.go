// Package server assembles the HTTP router of the API.
package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Dirk1989/Ideal/internal/config"
	"github.com/Dirk1989/Ideal/internal/handler"
	"github.com/Dirk1989/Ideal/internal/logger"
	"github.com/Dirk1989/Ideal/internal/middleware"
	"github.com/Dirk1989/Ideal/internal/ratelimit"
	"github.com/Dirk1989/Ideal/internal/upload"
)

// Rate limit scopes and their rejection messages.
const (
	ScopeGeneral = "api"
	ScopeLogin   = "login"
	ScopeContact = "contact"

	msgTooManyRequests = "Too many requests from this IP, please try again later."
	msgTooManyLogins   = "Too many login attempts, please try again later."
	msgTooManyMessages = "Too many messages sent, please try again later."
)

// Handlers bundles the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Vehicles *handler.VehicleHandler
	Blog     *handler.BlogHandler
	Dealers  *handler.DealerHandler
	Contact  *handler.ContactHandler
	Auth     *handler.AuthHandler
	Stats    *handler.StatsHandler
	Health   *handler.HealthHandler
}

// Limiters holds one budget per rate limit scope.
type Limiters struct {
	General middleware.Limiter
	Login   middleware.Limiter
	Contact middleware.Limiter
}

// NewLimiters builds the three limiters from cfg. The returned func
// releases them.
func NewLimiters(cfg *config.Config) (Limiters, func(), error) {
	general, err := ratelimit.New(cfg.RateLimitRequests, cfg.RateLimitWindow)
	if err != nil {
		return Limiters{}, nil, fmt.Errorf("general rate limiter: %w", err)
	}
	login, err := ratelimit.New(cfg.LoginRateLimit, cfg.LoginRateWindow)
	if err != nil {
		general.Close()
		return Limiters{}, nil, fmt.Errorf("login rate limiter: %w", err)
	}
	contact, err := ratelimit.New(cfg.ContactRateLimit, cfg.ContactRateWindow)
	if err != nil {
		general.Close()
		login.Close()
		return Limiters{}, nil, fmt.Errorf("contact rate limiter: %w", err)
	}

	closeAll := func() {
		general.Close()
		login.Close()
		contact.Close()
	}
	return Limiters{General: general, Login: login, Contact: contact}, closeAll, nil
}

// Options configures NewRouter.
type Options struct {
	Config   *config.Config
	Handlers Handlers
	Limiters Limiters
	// Tokens validates admin bearer tokens.
	Tokens middleware.TokenValidator
}

// NewRouter mounts every route of the API.
func NewRouter(opts Options) *gin.Engine {
	cfg := opts.Config
	h := opts.Handlers

	router := gin.New()
	router.MaxMultipartMemory = 8 << 20
	// ClientIP keys the rate limiters; forwarded headers only count when
	// they come from a configured proxy.
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Error("Invalid trusted proxies, trusting none",
			slog.String("error", err.Error()))
		_ = router.SetTrustedProxies(nil)
	}

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logging())
	router.Use(middleware.Metrics())
	router.Use(secure.New(securityConfig(cfg)))
	router.Use(cors.New(corsConfig(cfg)))
	router.Use(handler.Development(cfg.IsDevelopment()))

	router.NoRoute(handler.NotFound)

	router.GET("/", handler.Index)
	router.GET("/health", h.Health.Health)
	router.GET("/ready", h.Health.Ready)
	router.GET("/live", h.Health.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.Static(strings.TrimSuffix(upload.URLPrefix, "/"), cfg.UploadDir)

	api := router.Group("/api")
	api.Use(middleware.RateLimit(ScopeGeneral, opts.Limiters.General, msgTooManyRequests))
	{
		api.GET("/cars", h.Vehicles.List)
		api.GET("/cars/:id", h.Vehicles.Get)

		api.GET("/blog", h.Blog.List)
		api.GET("/blog/:id", h.Blog.Get)

		api.GET("/dealers", h.Dealers.List)
		api.GET("/dealers/:id", h.Dealers.Get)
		api.GET("/dealers/:id/cars", h.Dealers.Vehicles)

		api.POST("/contact",
			middleware.RateLimit(ScopeContact, opts.Limiters.Contact, msgTooManyMessages),
			h.Contact.Submit)

		api.POST("/admin/login",
			middleware.RateLimit(ScopeLogin, opts.Limiters.Login, msgTooManyLogins),
			h.Auth.Login)

		admin := api.Group("/admin")
		admin.Use(middleware.RequireAdmin(opts.Tokens))
		{
			admin.POST("/logout", h.Auth.Logout)
			admin.GET("/stats", h.Stats.Stats)

			admin.POST("/cars", h.Vehicles.Create)
			admin.PUT("/cars/:id", h.Vehicles.Update)
			admin.DELETE("/cars/:id", h.Vehicles.Delete)

			admin.POST("/blog", h.Blog.Create)
			admin.PUT("/blog/:id", h.Blog.Update)
			admin.DELETE("/blog/:id", h.Blog.Delete)

			admin.POST("/dealers", h.Dealers.Create)
			admin.PUT("/dealers/:id", h.Dealers.Update)
			admin.DELETE("/dealers/:id", h.Dealers.Delete)
		}
	}

	return router
}

// NewHTTPServer wraps router with the configured timeouts.
func NewHTTPServer(cfg *config.Config, router http.Handler) *http.Server {
	return &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

func securityConfig(cfg *config.Config) secure.Config {
	secureConfig := secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
		SSLProxyHeaders:    map[string]string{"X-Forwarded-Proto": "https"},
	}

	// HSTS is sent only together with SSL redirects.
	if cfg.SSLRedirect {
		secureConfig.SSLRedirect = true
		secureConfig.STSSeconds = 31536000
		secureConfig.STSIncludeSubdomains = true
	}
	return secureConfig
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader, "Retry-After", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		MaxAge:        12 * time.Hour,
	}

	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	if len(cfg.AllowedOrigins) == 0 {
		c.AllowAllOrigins = true
		return c
	}

	c.AllowOrigins = cfg.AllowedOrigins
	c.AllowCredentials = true
	return c
}
