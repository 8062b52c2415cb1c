package domain

import (
	"math"
	"strings"
)

// VehicleFilter selects listings. Zero values disable a criterion.
type VehicleFilter struct {
	Make         string
	Model        string
	MaxPrice     float64
	MinYear      int
	Transmission string
	Fuel         string
	Featured     *bool
	DealerID     int64
}

// IsZero reports whether f selects every vehicle.
func (f VehicleFilter) IsZero() bool {
	return f == VehicleFilter{}
}

// Match reports whether v satisfies every enabled criterion. Make and model
// match case-insensitive substrings; transmission and fuel match exactly.
func (f VehicleFilter) Match(v Vehicle) bool {
	if f.Make != "" && !containsFold(v.Make, f.Make) {
		return false
	}
	if f.Model != "" && !containsFold(v.Model, f.Model) {
		return false
	}
	if f.MaxPrice > 0 && v.Price > f.MaxPrice {
		return false
	}
	if f.MinYear > 0 && v.Year < f.MinYear {
		return false
	}
	if f.Transmission != "" && v.Transmission != f.Transmission {
		return false
	}
	if f.Fuel != "" && v.Fuel != f.Fuel {
		return false
	}
	if f.Featured != nil && v.Featured != *f.Featured {
		return false
	}
	if f.DealerID != 0 && v.DealerID != f.DealerID {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Stats summarizes the listings for the admin dashboard.
type Stats struct {
	TotalCars     int   `json:"totalCars"`
	TotalImages   int   `json:"totalImages"`
	AveragePrice  int64 `json:"averagePrice"`
	TotalPosts    int   `json:"totalPosts"`
	ActiveDealers int   `json:"activeDealers"`
}

// VehicleStats counts cars and images and averages prices, rounded to the
// nearest rand.
func VehicleStats(cars []Vehicle) Stats {
	s := Stats{TotalCars: len(cars)}
	var sum float64
	for _, c := range cars {
		s.TotalImages += len(c.Images)
		sum += c.Price
	}
	if len(cars) > 0 {
		s.AveragePrice = int64(math.Round(sum / float64(len(cars))))
	}
	return s
}
