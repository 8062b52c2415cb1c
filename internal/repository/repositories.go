package repository

import (
	"context"

	"github.com/Dirk1989/Ideal/internal/domain"
	"github.com/Dirk1989/Ideal/internal/repository/seed"
)

// Repositories bundles the three collections served by the API.
type Repositories struct {
	Vehicles  *Collection[domain.Vehicle]
	BlogPosts *Collection[domain.BlogPost]
	Dealers   *Collection[domain.Dealer]
}

// OpenAll opens every collection on backend, seeding the ones never stored.
func OpenAll(ctx context.Context, backend Backend, opts ...Option) (*Repositories, error) {
	data, err := seed.Load()
	if err != nil {
		return nil, err
	}

	return &Repositories{
		Vehicles:  Open(ctx, backend, domain.CollectionVehicles, data.Vehicles, opts...),
		BlogPosts: Open(ctx, backend, domain.CollectionBlogPosts, data.BlogPosts, opts...),
		Dealers:   Open(ctx, backend, domain.CollectionDealers, data.Dealers, opts...),
	}, nil
}
