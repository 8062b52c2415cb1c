package repository

import (
	"context"
	"errors"

	"github.com/Dirk1989/Ideal/internal/domain"
)

var (
	// ErrNotFound is returned when no record has the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrNotStored is returned by a Backend when a collection was never saved.
	ErrNotStored = errors.New("collection not stored")
)

// Backend moves encoded collection documents to and from durable storage.
// Implementations overwrite the whole document on every Save.
type Backend interface {
	Load(ctx context.Context, kind domain.Collection) ([]byte, error)
	Save(ctx context.Context, kind domain.Collection, doc []byte) error
	Close() error
}

// Record is the contract every persisted record type satisfies.
type Record[T any] interface {
	RecordID() int64
	Clone() T
}

// Store defines data access for one record collection.
type Store[T any] interface {
	List(ctx context.Context) []T
	Get(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, build func(id int64) T) (T, error)
	Update(ctx context.Context, id int64, fn func(T) (T, error)) (T, error)
	Delete(ctx context.Context, id int64) (T, error)
}

// VehicleRepository defines methods for vehicle data access.
type VehicleRepository = Store[domain.Vehicle]

// BlogRepository defines methods for blog post data access.
type BlogRepository = Store[domain.BlogPost]

// DealerRepository defines methods for dealer data access.
type DealerRepository = Store[domain.Dealer]
