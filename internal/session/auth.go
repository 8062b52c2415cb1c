package session

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Dirk1989/Ideal/internal/apperr"
	"github.com/Dirk1989/Ideal/internal/logger"
	"github.com/Dirk1989/Ideal/internal/metrics"
)

// TokenBytes is the amount of randomness in a token; tokens are hex encoded.
const TokenBytes = 32

// Session is an issued admin token.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Config holds the shared admin secret and token lifetime. PasswordHash, a
// bcrypt hash, wins over Password when both are set.
type Config struct {
	Password     string
	PasswordHash string
	TTL          time.Duration
}

// Authenticator checks the shared admin password and manages tokens.
type Authenticator struct {
	store Store
	cfg   Config
	now   func() time.Time
}

// NewAuthenticator creates a new Authenticator.
func NewAuthenticator(store Store, cfg Config) *Authenticator {
	return &Authenticator{store: store, cfg: cfg, now: time.Now}
}

// NewAuthenticatorWithClock creates an Authenticator reading time from now.
func NewAuthenticatorWithClock(store Store, cfg Config, now func() time.Time) *Authenticator {
	return &Authenticator{store: store, cfg: cfg, now: now}
}

// Login issues a token when password matches the admin secret.
func (a *Authenticator) Login(ctx context.Context, password string) (Session, error) {
	if password == "" {
		return Session{}, apperr.Validation("Password required", map[string][]string{
			"password": {"Password required"},
		})
	}

	if !a.checkPassword(password) {
		metrics.ObserveLogin(false)
		logger.WarnContext(ctx, "Admin login rejected")
		return Session{}, apperr.Unauthorized("Invalid password")
	}

	token, err := GenerateToken()
	if err != nil {
		return Session{}, apperr.Internal("failed to issue token", err)
	}
	if err := a.store.Create(ctx, token, a.cfg.TTL); err != nil {
		return Session{}, apperr.Internal("failed to store token", err)
	}

	metrics.ObserveLogin(true)
	s := Session{Token: token, ExpiresAt: a.now().Add(a.cfg.TTL)}
	logger.InfoContext(ctx, "Admin login", slog.Time("expires_at", s.ExpiresAt))
	return s, nil
}

// Validate returns an Unauthorized error unless token is live.
func (a *Authenticator) Validate(ctx context.Context, token string) error {
	if token == "" {
		return apperr.Unauthorized("Authentication required")
	}
	ok, err := a.store.Valid(ctx, token)
	if err != nil {
		return apperr.Internal("failed to check token", err)
	}
	if !ok {
		return apperr.Unauthorized("Invalid or expired token")
	}
	return nil
}

// Logout revokes token. Unknown tokens are ignored.
func (a *Authenticator) Logout(ctx context.Context, token string) error {
	if err := a.store.Revoke(ctx, token); err != nil {
		return apperr.Internal("failed to revoke token", err)
	}
	return nil
}

func (a *Authenticator) checkPassword(password string) bool {
	if a.cfg.PasswordHash != "" {
		err := bcrypt.CompareHashAndPassword([]byte(a.cfg.PasswordHash), []byte(password))
		if err != nil && !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			logger.Error("Admin password hash is unusable", slog.String("error", err.Error()))
		}
		return err == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(a.cfg.Password)) == 1
}

// GenerateToken returns TokenBytes of crypto randomness, hex encoded.
func GenerateToken() (string, error) {
	b := make([]byte, TokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// HashPassword returns a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
