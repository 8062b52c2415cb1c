package service

import (
	"context"

	"github.com/Dirk1989/Ideal/internal/domain"
	"github.com/Dirk1989/Ideal/internal/repository"
)

// StatsService summarizes the collections for the admin dashboard.
type StatsService struct {
	cars    repository.VehicleRepository
	posts   repository.BlogRepository
	dealers repository.DealerRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(cars repository.VehicleRepository, posts repository.BlogRepository, dealers repository.DealerRepository) *StatsService {
	return &StatsService{cars: cars, posts: posts, dealers: dealers}
}

func (s *StatsService) Stats(ctx context.Context) domain.Stats {
	st := domain.VehicleStats(s.cars.List(ctx))
	st.TotalPosts = len(s.posts.List(ctx))
	for _, d := range s.dealers.List(ctx) {
		if d.Active() {
			st.ActiveDealers++
		}
	}
	return st
}
