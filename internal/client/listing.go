package client

import (
	"fmt"
	"html"
	"math"
	"net/url"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Dirk1989/Ideal/internal/domain"
)

// WhatsAppNumber is the sales line used by WhatsAppLink.
const WhatsAppNumber = "275551234567"

var zarPrinter = message.NewPrinter(language.MustParse("en-ZA"))

// Listing is a vehicle prepared for display.
type Listing struct {
	domain.Vehicle
	PriceZAR string `json:"priceZar"`
}

// NewListing formats v for display.
func NewListing(v domain.Vehicle) Listing {
	return Listing{Vehicle: v, PriceZAR: FormatZAR(v.Price)}
}

// NewListings formats every vehicle of cars.
func NewListings(cars []domain.Vehicle) []Listing {
	out := make([]Listing, len(cars))
	for i, v := range cars {
		out[i] = NewListing(v)
	}
	return out
}

// FormatZAR renders a price in rand, rounded and grouped the South African
// way.
func FormatZAR(amount float64) string {
	return zarPrinter.Sprintf("R%d", int64(math.Round(amount)))
}

// Title is the display name of the listing.
func (l Listing) Title() string {
	return strings.TrimSpace(fmt.Sprintf("%d %s %s", l.Year, l.Make, l.Model))
}

// Cover returns the first image, or a generated placeholder when the
// listing has none.
func (l Listing) Cover() string {
	if len(l.Images) > 0 {
		return l.Images[0]
	}
	return Placeholder(l.Make, l.Model)
}

// Placeholder is an inline SVG naming the vehicle.
func Placeholder(vehicleMake, model string) string {
	svg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="400" height="300" viewBox="0 0 400 300">`+
		`<rect width="400" height="300" fill="#f0f0f0"/>`+
		`<text x="200" y="150" font-family="Arial" font-size="16" text-anchor="middle" fill="#333">%s %s</text>`+
		`<text x="200" y="180" font-family="Arial" font-size="14" text-anchor="middle" fill="#666">Photos coming soon</text>`+
		`</svg>`, html.EscapeString(vehicleMake), html.EscapeString(model))
	return "data:image/svg+xml;utf8," + url.PathEscape(svg)
}

// WhatsAppLink opens a chat with the sales line about the listing.
func (l Listing) WhatsAppLink() string {
	text := fmt.Sprintf("Hi IdealCar,\n\nI'm interested in the %s %s listed for %s.\n\n"+
		"Please provide:\n1. Availability\n2. Service history\n3. Additional photos\n4. Test drive availability\n\nThank you!",
		l.Make, l.Model, l.PriceZAR)
	return "https://wa.me/" + WhatsAppNumber + "?text=" + url.QueryEscape(text)
}

// EnquirySubject pre-fills the contact form subject for the listing.
func (l Listing) EnquirySubject() string {
	return fmt.Sprintf("Inquiry about: %s %s", l.Make, l.Model)
}

// EmailLink opens a mail draft to addr about the listing.
func (l Listing) EmailLink(addr string) string {
	q := url.Values{}
	q.Set("subject", l.EnquirySubject())
	return "mailto:" + addr + "?" + strings.ReplaceAll(q.Encode(), "+", "%20")
}

// Filter narrows a fetched collection. Zero values disable a criterion.
type Filter struct {
	Make         string
	Model        string
	MaxPrice     float64
	MinYear      int
	Transmission string
	Fuel         string
}

// Apply returns the listings matching f, always recomputed from the full
// set.
func (f Filter) Apply(all []Listing) []Listing {
	match := domain.VehicleFilter{
		Make:         strings.TrimSpace(f.Make),
		Model:        strings.TrimSpace(f.Model),
		MaxPrice:     f.MaxPrice,
		MinYear:      f.MinYear,
		Transmission: f.Transmission,
		Fuel:         f.Fuel,
	}
	out := make([]Listing, 0, len(all))
	for _, l := range all {
		if match.Match(l.Vehicle) {
			out = append(out, l)
		}
	}
	return out
}
