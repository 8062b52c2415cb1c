package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/Dirk1989/Ideal/internal/domain"
	"github.com/Dirk1989/Ideal/internal/logger"
	"github.com/Dirk1989/Ideal/internal/repository"
	"github.com/Dirk1989/Ideal/internal/validator"
)

const (
	// FieldImages is the multipart field holding vehicle photos.
	FieldImages = "images"
	// MaxVehicleImages caps the photos per vehicle write.
	MaxVehicleImages = 10

	msgCarNotFound = "Car not found"
)

// VehicleService handles car listings.
type VehicleService struct {
	repo     repository.VehicleRepository
	uploads  Uploader
	validate *validator.Validator
	now      func() time.Time
}

// NewVehicleService creates a new VehicleService.
func NewVehicleService(repo repository.VehicleRepository, uploads Uploader, v *validator.Validator) *VehicleService {
	return &VehicleService{repo: repo, uploads: uploads, validate: v, now: time.Now}
}

// List returns the vehicles matching filter in insertion order.
func (s *VehicleService) List(ctx context.Context, filter domain.VehicleFilter) []domain.Vehicle {
	cars := s.repo.List(ctx)
	if filter.IsZero() {
		return cars
	}
	out := make([]domain.Vehicle, 0, len(cars))
	for _, c := range cars {
		if filter.Match(c) {
			out = append(out, c)
		}
	}
	return out
}

// Get returns the vehicle with id.
func (s *VehicleService) Get(ctx context.Context, id int64) (domain.Vehicle, error) {
	car, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Vehicle{}, classify(err, msgCarNotFound)
	}
	return car, nil
}

// Create validates the submitted fields before storing any image.
func (s *VehicleService) Create(ctx context.Context, in Input) (domain.Vehicle, error) {
	patch, err := s.validate.Vehicle(in.Fields, validator.Create)
	if err != nil {
		return domain.Vehicle{}, validator.ToAppError(err)
	}

	res, err := s.uploads.Save(ctx, FieldImages, in.Files[FieldImages], MaxVehicleImages)
	if err != nil {
		return domain.Vehicle{}, classify(err, msgCarNotFound)
	}

	now := s.now()
	car, err := s.repo.Create(ctx, func(id int64) domain.Vehicle {
		v := domain.NewVehicle(id, patch, now)
		v.Images = append(v.Images, res.Paths...)
		v.Thumbnails = res.Thumbnails
		return v
	})
	if err != nil {
		s.uploads.Remove(uploaded(res))
		return domain.Vehicle{}, classify(err, msgCarNotFound)
	}

	logger.InfoContext(ctx, "Car added",
		slog.Int64("id", car.ID),
		slog.String("make", car.Make),
		slog.String("model", car.Model),
		slog.Int("images", len(car.Images)),
	)
	return car, nil
}

// Update merges the submitted fields into the vehicle. When images are
// uploaded they replace the previous set, whose files are removed.
func (s *VehicleService) Update(ctx context.Context, id int64, in Input) (domain.Vehicle, error) {
	patch, err := s.validate.Vehicle(in.Fields, validator.Update)
	if err != nil {
		return domain.Vehicle{}, validator.ToAppError(err)
	}
	if _, err := s.repo.Get(ctx, id); err != nil {
		return domain.Vehicle{}, classify(err, msgCarNotFound)
	}

	res, err := s.uploads.Save(ctx, FieldImages, in.Files[FieldImages], MaxVehicleImages)
	if err != nil {
		return domain.Vehicle{}, classify(err, msgCarNotFound)
	}

	var replaced []string
	now := s.now()
	car, err := s.repo.Update(ctx, id, func(cur domain.Vehicle) (domain.Vehicle, error) {
		next := cur.Merge(patch, now)
		if len(res.Paths) > 0 {
			replaced = append(append([]string{}, cur.Images...), cur.Thumbnails...)
			next.Images = res.Paths
			next.Thumbnails = res.Thumbnails
		}
		return next, nil
	})
	if err != nil {
		s.uploads.Remove(uploaded(res))
		return domain.Vehicle{}, classify(err, msgCarNotFound)
	}
	s.uploads.Remove(replaced)

	logger.InfoContext(ctx, "Car updated", slog.Int64("id", id))
	return car, nil
}

// Delete removes the vehicle and its image files.
func (s *VehicleService) Delete(ctx context.Context, id int64) error {
	car, err := s.repo.Delete(ctx, id)
	if err != nil {
		return classify(err, msgCarNotFound)
	}
	s.uploads.Remove(append(car.Images, car.Thumbnails...))

	logger.InfoContext(ctx, "Car deleted", slog.Int64("id", id))
	return nil
}
