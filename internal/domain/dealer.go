package domain

import "time"

// DealerStatus is the lifecycle state of a dealer.
type DealerStatus string

const (
	DealerActive   DealerStatus = "active"
	DealerInactive DealerStatus = "inactive"
)

// DefaultDealerLocation is used when no location is submitted.
const DefaultDealerLocation = "N/A"

// ValidDealerStatuses contains all valid dealer statuses.
var ValidDealerStatuses = []string{string(DealerActive), string(DealerInactive)}

// Dealer represents a selling entity that owns listings.
type Dealer struct {
	ID          int64        `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Email       string       `json:"email" yaml:"email"`
	Phone       string       `json:"phone" yaml:"phone"`
	Location    string       `json:"location" yaml:"location"`
	Description string       `json:"description" yaml:"description"`
	Logo        string       `json:"logo,omitempty" yaml:"logo"`
	Banner      string       `json:"banner,omitempty" yaml:"banner"`
	Status      DealerStatus `json:"status" yaml:"status"`
	CreatedAt   time.Time    `json:"createdAt,omitempty" yaml:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt,omitempty" yaml:"updatedAt"`
}

// RecordID implements the repository record contract.
func (d Dealer) RecordID() int64 { return d.ID }

// Clone returns a copy of d.
func (d Dealer) Clone() Dealer { return d }

// Active reports whether the dealer is listed publicly.
func (d Dealer) Active() bool { return d.Status == DealerActive }

// DealerPatch is a validated set of dealer fields.
type DealerPatch struct {
	Name        Optional[string]
	Email       Optional[string]
	Phone       Optional[string]
	Location    Optional[string]
	Description Optional[string]
	Status      Optional[DealerStatus]
}

// NewDealer builds an active dealer from p.
func NewDealer(id int64, p DealerPatch, now time.Time) Dealer {
	return Dealer{
		ID:          id,
		Name:        p.Name.Or(""),
		Email:       p.Email.Or(""),
		Phone:       p.Phone.Or(""),
		Location:    p.Location.Or(DefaultDealerLocation),
		Description: p.Description.Or(""),
		Status:      p.Status.Or(DealerActive),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Merge returns d with every supplied field of p applied.
func (d Dealer) Merge(p DealerPatch, now time.Time) Dealer {
	p.Name.Apply(&d.Name)
	p.Email.Apply(&d.Email)
	p.Phone.Apply(&d.Phone)
	p.Location.Apply(&d.Location)
	p.Description.Apply(&d.Description)
	p.Status.Apply(&d.Status)
	d.UpdatedAt = now
	return d
}
