package service

import (
	"context"
	"mime/multipart"

	"github.com/Dirk1989/Ideal/internal/domain"
	"github.com/Dirk1989/Ideal/internal/session"
	"github.com/Dirk1989/Ideal/internal/upload"
)

// Input carries one admin write: the submitted form values and the
// uploaded files keyed by form field.
type Input struct {
	Fields domain.Fields
	Files  map[string][]*multipart.FileHeader
}

// Uploader stores and removes uploaded images.
type Uploader interface {
	Save(ctx context.Context, field string, files []*multipart.FileHeader, maxFiles int) (upload.Result, error)
	Remove(paths []string)
}

// VehicleServiceInterface defines the interface for listing operations.
// Used for dependency injection and mocking in tests.
type VehicleServiceInterface interface {
	// List returns the vehicles matching filter.
	List(ctx context.Context, filter domain.VehicleFilter) []domain.Vehicle
	// Get returns one vehicle.
	Get(ctx context.Context, id int64) (domain.Vehicle, error)
	// Create validates in, stores its images and adds the vehicle.
	Create(ctx context.Context, in Input) (domain.Vehicle, error)
	// Update merges the submitted fields into the vehicle. New images
	// replace the old ones.
	Update(ctx context.Context, id int64, in Input) (domain.Vehicle, error)
	// Delete removes the vehicle and its images.
	Delete(ctx context.Context, id int64) error
}

// BlogServiceInterface defines the interface for blog operations.
// Used for dependency injection and mocking in tests.
type BlogServiceInterface interface {
	List(ctx context.Context) []domain.BlogPost
	Get(ctx context.Context, id int64) (domain.BlogPost, error)
	Create(ctx context.Context, in Input) (domain.BlogPost, error)
	Update(ctx context.Context, id int64, in Input) (domain.BlogPost, error)
	Delete(ctx context.Context, id int64) error
}

// DealerServiceInterface defines the interface for dealer operations.
// Used for dependency injection and mocking in tests.
type DealerServiceInterface interface {
	// ListActive returns dealers shown publicly.
	ListActive(ctx context.Context) []domain.Dealer
	// Get returns an active dealer.
	Get(ctx context.Context, id int64) (domain.Dealer, error)
	// Vehicles returns the listings of an active dealer.
	Vehicles(ctx context.Context, id int64) ([]domain.Vehicle, error)
	Create(ctx context.Context, in Input) (domain.Dealer, error)
	Update(ctx context.Context, id int64, in Input) (domain.Dealer, error)
	// Delete marks the dealer inactive.
	Delete(ctx context.Context, id int64) error
}

// ContactServiceInterface defines the interface for contact form intake.
type ContactServiceInterface interface {
	Submit(ctx context.Context, msg domain.ContactMessage) (domain.ContactReceipt, error)
}

// AuthServiceInterface defines the admin login operations.
type AuthServiceInterface interface {
	Login(ctx context.Context, password string) (session.Session, error)
	Logout(ctx context.Context, token string) error
}

// StatsServiceInterface defines the admin dashboard summary.
type StatsServiceInterface interface {
	Stats(ctx context.Context) domain.Stats
}
