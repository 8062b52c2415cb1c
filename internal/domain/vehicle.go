package domain

import (
	"slices"
	"time"
)

// Vehicle represents a car listing exposed for sale.
type Vehicle struct {
	ID           int64     `json:"id" yaml:"id"`
	DealerID     int64     `json:"dealerId,omitempty" yaml:"dealerId"`
	Make         string    `json:"make" yaml:"make"`
	Model        string    `json:"model" yaml:"model"`
	Year         int       `json:"year" yaml:"year"`
	Price        float64   `json:"price" yaml:"price"`
	Description  string    `json:"description" yaml:"description"`
	Images       []string  `json:"images" yaml:"images"`
	Thumbnails   []string  `json:"thumbnails,omitempty" yaml:"thumbnails"`
	Mileage      string    `json:"mileage" yaml:"mileage"`
	Transmission string    `json:"transmission" yaml:"transmission"`
	Fuel         string    `json:"fuel" yaml:"fuel"`
	Engine       string    `json:"engine" yaml:"engine"`
	Color        string    `json:"color" yaml:"color"`
	Doors        int       `json:"doors" yaml:"doors"`
	Seats        int       `json:"seats" yaml:"seats"`
	Condition    string    `json:"condition" yaml:"condition"`
	Category     string    `json:"category" yaml:"category"`
	Featured     bool      `json:"featured" yaml:"featured"`
	Features     []string  `json:"features" yaml:"features"`
	CreatedAt    time.Time `json:"createdAt,omitempty" yaml:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty" yaml:"updatedAt"`
}

// Defaults applied to vehicle fields that were not submitted on create.
const (
	DefaultMileage      = "N/A"
	DefaultTransmission = "Automatic"
	DefaultFuel         = "Petrol"
	DefaultEngine       = "N/A"
	DefaultColor        = "N/A"
	DefaultCondition    = "Good"
	DefaultCategory     = "Used"
	DefaultDoors        = 4
	DefaultSeats        = 5
)

// RecordID implements the repository record contract.
func (v Vehicle) RecordID() int64 { return v.ID }

// Clone returns a copy of v that shares no slices with it.
func (v Vehicle) Clone() Vehicle {
	v.Images = cloneStrings(v.Images)
	v.Thumbnails = cloneStrings(v.Thumbnails)
	v.Features = cloneStrings(v.Features)
	return v
}

// VehiclePatch is a validated set of vehicle fields. On create, unset fields
// take their defaults; on update, unset fields keep their prior value.
type VehiclePatch struct {
	DealerID     Optional[int64]
	Make         Optional[string]
	Model        Optional[string]
	Year         Optional[int]
	Price        Optional[float64]
	Description  Optional[string]
	Mileage      Optional[string]
	Transmission Optional[string]
	Fuel         Optional[string]
	Engine       Optional[string]
	Color        Optional[string]
	Doors        Optional[int]
	Seats        Optional[int]
	Condition    Optional[string]
	Category     Optional[string]
	Featured     Optional[bool]
	Features     Optional[[]string]
}

// NewVehicle builds a vehicle from p, filling defaults for unset fields.
func NewVehicle(id int64, p VehiclePatch, now time.Time) Vehicle {
	return Vehicle{
		ID:           id,
		DealerID:     p.DealerID.Or(0),
		Make:         p.Make.Or(""),
		Model:        p.Model.Or(""),
		Year:         p.Year.Or(0),
		Price:        p.Price.Or(0),
		Description:  p.Description.Or(""),
		Images:       []string{},
		Mileage:      p.Mileage.Or(DefaultMileage),
		Transmission: p.Transmission.Or(DefaultTransmission),
		Fuel:         p.Fuel.Or(DefaultFuel),
		Engine:       p.Engine.Or(DefaultEngine),
		Color:        p.Color.Or(DefaultColor),
		Doors:        p.Doors.Or(DefaultDoors),
		Seats:        p.Seats.Or(DefaultSeats),
		Condition:    p.Condition.Or(DefaultCondition),
		Category:     p.Category.Or(DefaultCategory),
		Featured:     p.Featured.Or(false),
		Features:     cloneStrings(p.Features.Or([]string{})),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Merge returns v with every supplied field of p applied.
func (v Vehicle) Merge(p VehiclePatch, now time.Time) Vehicle {
	out := v.Clone()
	p.DealerID.Apply(&out.DealerID)
	p.Make.Apply(&out.Make)
	p.Model.Apply(&out.Model)
	p.Year.Apply(&out.Year)
	p.Price.Apply(&out.Price)
	p.Description.Apply(&out.Description)
	p.Mileage.Apply(&out.Mileage)
	p.Transmission.Apply(&out.Transmission)
	p.Fuel.Apply(&out.Fuel)
	p.Engine.Apply(&out.Engine)
	p.Color.Apply(&out.Color)
	p.Doors.Apply(&out.Doors)
	p.Seats.Apply(&out.Seats)
	p.Condition.Apply(&out.Condition)
	p.Category.Apply(&out.Category)
	p.Featured.Apply(&out.Featured)
	if features, ok := p.Features.Get(); ok {
		out.Features = cloneStrings(features)
	}
	out.UpdatedAt = now
	return out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s)
}
