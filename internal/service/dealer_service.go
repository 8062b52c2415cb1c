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

// Multipart fields holding dealer artwork.
const (
	FieldLogo   = "logo"
	FieldBanner = "banner"
)

const msgDealerNotFound = "Dealer not found"

// DealerService handles dealers. Dealers are never removed; deleting one
// marks it inactive, which hides it from public reads.
type DealerService struct {
	repo     repository.DealerRepository
	cars     repository.VehicleRepository
	uploads  Uploader
	validate *validator.Validator
	now      func() time.Time
}

// NewDealerService creates a new DealerService.
func NewDealerService(repo repository.DealerRepository, cars repository.VehicleRepository, uploads Uploader, v *validator.Validator) *DealerService {
	return &DealerService{repo: repo, cars: cars, uploads: uploads, validate: v, now: time.Now}
}

func (s *DealerService) ListActive(ctx context.Context) []domain.Dealer {
	all := s.repo.List(ctx)
	out := make([]domain.Dealer, 0, len(all))
	for _, d := range all {
		if d.Active() {
			out = append(out, d)
		}
	}
	return out
}

// Get returns an active dealer; inactive dealers are reported as not found.
func (s *DealerService) Get(ctx context.Context, id int64) (domain.Dealer, error) {
	d, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Dealer{}, classify(err, msgDealerNotFound)
	}
	if !d.Active() {
		return domain.Dealer{}, classify(repository.ErrNotFound, msgDealerNotFound)
	}
	return d, nil
}

// Vehicles returns the listings referencing an active dealer.
func (s *DealerService) Vehicles(ctx context.Context, id int64) ([]domain.Vehicle, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	filter := domain.VehicleFilter{DealerID: id}
	cars := s.cars.List(ctx)
	out := make([]domain.Vehicle, 0, len(cars))
	for _, c := range cars {
		if filter.Match(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *DealerService) Create(ctx context.Context, in Input) (domain.Dealer, error) {
	patch, err := s.validate.Dealer(in.Fields, validator.Create)
	if err != nil {
		return domain.Dealer{}, validator.ToAppError(err)
	}

	logo, banner, err := s.saveArtwork(ctx, in)
	if err != nil {
		return domain.Dealer{}, err
	}

	now := s.now()
	d, err := s.repo.Create(ctx, func(id int64) domain.Dealer {
		d := domain.NewDealer(id, patch, now)
		d.Logo = logo
		d.Banner = banner
		return d
	})
	if err != nil {
		s.uploads.Remove([]string{logo, banner})
		return domain.Dealer{}, classify(err, msgDealerNotFound)
	}

	logger.InfoContext(ctx, "Dealer created",
		slog.Int64("id", d.ID),
		slog.String("name", d.Name),
	)
	return d, nil
}

// Update merges the submitted fields into any dealer, inactive included,
// so a dealer can be reactivated by setting its status.
func (s *DealerService) Update(ctx context.Context, id int64, in Input) (domain.Dealer, error) {
	patch, err := s.validate.Dealer(in.Fields, validator.Update)
	if err != nil {
		return domain.Dealer{}, validator.ToAppError(err)
	}
	if _, err := s.repo.Get(ctx, id); err != nil {
		return domain.Dealer{}, classify(err, msgDealerNotFound)
	}

	logo, banner, err := s.saveArtwork(ctx, in)
	if err != nil {
		return domain.Dealer{}, err
	}

	var replaced []string
	d, err := s.repo.Update(ctx, id, func(cur domain.Dealer) (domain.Dealer, error) {
		next := cur.Merge(patch, s.now())
		if logo != "" {
			replaced = append(replaced, cur.Logo)
			next.Logo = logo
		}
		if banner != "" {
			replaced = append(replaced, cur.Banner)
			next.Banner = banner
		}
		return next, nil
	})
	if err != nil {
		s.uploads.Remove([]string{logo, banner})
		return domain.Dealer{}, classify(err, msgDealerNotFound)
	}
	s.uploads.Remove(replaced)

	logger.InfoContext(ctx, "Dealer updated", slog.Int64("id", id))
	return d, nil
}

// Delete marks the dealer inactive. Deleting an inactive dealer succeeds.
func (s *DealerService) Delete(ctx context.Context, id int64) error {
	_, err := s.repo.Update(ctx, id, func(cur domain.Dealer) (domain.Dealer, error) {
		status := domain.Some(domain.DealerInactive)
		return cur.Merge(domain.DealerPatch{Status: status}, s.now()), nil
	})
	if err != nil {
		return classify(err, msgDealerNotFound)
	}

	logger.InfoContext(ctx, "Dealer deactivated", slog.Int64("id", id))
	return nil
}

// saveArtwork stores the optional logo and banner. A rejected banner
// removes the logo stored before it.
func (s *DealerService) saveArtwork(ctx context.Context, in Input) (logo, banner string, err error) {
	logoRes, err := s.uploads.Save(ctx, FieldLogo, in.Files[FieldLogo], 1)
	if err != nil {
		return "", "", classify(err, msgDealerNotFound)
	}

	bannerRes, err := s.uploads.Save(ctx, FieldBanner, in.Files[FieldBanner], 1)
	if err != nil {
		s.uploads.Remove(uploaded(logoRes))
		return "", "", classify(err, msgDealerNotFound)
	}
	return first(logoRes.Paths), first(bannerRes.Paths), nil
}
