package validator

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/Dirk1989/Ideal/internal/apperr"
	"github.com/Dirk1989/Ideal/internal/domain"
)

// Mode selects create or partial-update semantics.
type Mode int

const (
	// Create requires mandatory fields; empty optional fields take defaults.
	Create Mode = iota
	// Update only touches submitted fields; submitted empty text clears.
	Update
)

// Vehicle year and seating bounds.
const (
	MinVehicleYear = 1900
	MinDoorsSeats  = 1
	MaxDoorsSeats  = 10
)

var (
	// PhoneRegex accepts South African numbers once whitespace is removed.
	PhoneRegex = regexp.MustCompile(`^(\+27|0)[0-9]{9}$`)

	dealerStatuses = []interface{}{string(domain.DealerActive), string(domain.DealerInactive)}
)

// Validator converts raw submitted fields into validated domain patches.
type Validator struct {
	now func() time.Time
}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{now: time.Now}
}

// NewValidatorWithClock creates a Validator whose year bound follows now.
func NewValidatorWithClock(now func() time.Time) *Validator {
	return &Validator{now: now}
}

// MaxVehicleYear is the latest accepted model year.
func (v *Validator) MaxVehicleYear() int {
	return v.now().Year() + 1
}

// Vehicle validates submitted vehicle fields.
func (v *Validator) Vehicle(f domain.Fields, mode Mode) (domain.VehiclePatch, error) {
	r := newReader(f, mode)
	var p domain.VehiclePatch

	p.Make = r.required("make", MaxShortText)
	p.Model = r.required("model", MaxShortText)

	if raw, ok := r.number("year"); ok {
		year, err := strconv.Atoi(raw)
		if err != nil {
			r.fail("year", "invalid_year", "Invalid year")
		} else if err := validation.Validate(year,
			validation.Required.Error("Invalid year"),
			validation.Min(MinVehicleYear).Error("Invalid year"),
			validation.Max(v.MaxVehicleYear()).Error("Invalid year"),
		); err != nil {
			r.errs["year"] = err
		} else {
			p.Year = domain.Some(year)
		}
	} else if mode == Create {
		r.fail("year", "year_required", "year is required")
	}

	if raw, ok := r.number("price"); ok {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
			r.fail("price", "invalid_price", "Invalid price")
		} else if err := validation.Validate(price, validation.Min(0.0).Error("Invalid price")); err != nil {
			r.errs["price"] = err
		} else {
			p.Price = domain.Some(price)
		}
	} else if mode == Create {
		r.fail("price", "price_required", "price is required")
	}

	if raw, ok := f.Lookup("dealerId"); ok {
		raw = strings.TrimSpace(raw)
		switch {
		case raw == "" && mode == Update:
			p.DealerID = domain.Some(int64(0))
		case raw == "":
		default:
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id < 0 {
				r.fail("dealerId", "invalid_dealer_id", "Invalid dealerId")
			} else {
				p.DealerID = domain.Some(id)
			}
		}
	}

	p.Description = r.text("description", MaxLongText)
	p.Mileage = r.text("mileage", MaxShortText)
	p.Transmission = r.text("transmission", MaxShortText)
	p.Fuel = r.text("fuel", MaxShortText)
	p.Engine = r.text("engine", MaxShortText)
	p.Color = r.text("color", MaxShortText)
	p.Condition = r.text("condition", MaxShortText)
	p.Category = r.text("category", MaxShortText)
	p.Doors = r.clamped("doors", "Invalid doors")
	p.Seats = r.clamped("seats", "Invalid seats")
	p.Featured = r.boolean("featured")
	p.Features = r.list("features")

	return p, r.err()
}

// BlogPost validates submitted blog post fields.
func (v *Validator) BlogPost(f domain.Fields, mode Mode) (domain.BlogPatch, error) {
	r := newReader(f, mode)
	var p domain.BlogPatch

	p.Title = r.required("title", MaxShortText*2)
	p.Excerpt = r.required("excerpt", MaxLongText)
	if raw, ok := f.Lookup("fullContent"); ok {
		body := CleanHTML(raw, MaxHTMLText)
		if body != "" || mode == Update {
			p.FullContent = domain.Some(body)
		}
	}
	p.ReadTime = r.text("readTime", MaxShortText)
	p.Author = r.text("author", MaxShortText)
	p.Category = r.text("category", MaxShortText)
	p.Tags = r.list("tags")

	return p, r.err()
}

// Dealer validates submitted dealer fields.
func (v *Validator) Dealer(f domain.Fields, mode Mode) (domain.DealerPatch, error) {
	r := newReader(f, mode)
	var p domain.DealerPatch

	p.Name = r.required("name", MaxShortText)

	p.Email = r.required("email", MaxShortText)
	if email, ok := p.Email.Get(); ok {
		if err := validation.Validate(email, is.EmailFormat.Error("Invalid email address")); err != nil {
			r.errs["email"] = err
			p.Email = domain.Optional[string]{}
		}
	}

	p.Phone = r.required("phone", MaxShortText)
	if phone, ok := p.Phone.Get(); ok {
		phone = NormalizePhone(phone)
		if err := validation.Validate(phone, validation.Match(PhoneRegex).Error("Invalid phone number")); err != nil {
			r.errs["phone"] = err
			p.Phone = domain.Optional[string]{}
		} else {
			p.Phone = domain.Some(phone)
		}
	}

	p.Location = r.text("location", MaxShortText)
	p.Description = r.text("description", MaxLongText)

	if status, ok := r.text("status", MaxShortText).Get(); ok {
		if err := validation.Validate(status, validation.In(dealerStatuses...).Error("Invalid status")); err != nil {
			r.errs["status"] = err
		} else {
			p.Status = domain.Some(domain.DealerStatus(status))
		}
	}

	return p, r.err()
}

// Contact sanitizes m in place and validates it.
func (v *Validator) Contact(m *domain.ContactMessage) error {
	m.Name = Clean(m.Name, MaxShortText)
	m.Email = Clean(m.Email, MaxShortText)
	m.Phone = NormalizePhone(Clean(m.Phone, MaxShortText))
	m.Subject = Clean(m.Subject, MaxShortText*2)
	m.Message = Clean(m.Message, MaxLongText)

	return validation.ValidateStruct(m,
		validation.Field(&m.Name,
			validation.Required.Error("name is required"),
		),
		validation.Field(&m.Email,
			validation.Required.Error("email is required"),
			is.EmailFormat.Error("Invalid email address"),
		),
		validation.Field(&m.Phone,
			validation.Match(PhoneRegex).Error("Invalid phone number"),
		),
		validation.Field(&m.Message,
			validation.Required.Error("message is required"),
		),
	)
}

// ConvertValidationErrors flattens ozzo validation errors into field errors.
func ConvertValidationErrors(err error) []domain.FieldError {
	var out []domain.FieldError

	var ve validation.Errors
	if errors.As(err, &ve) {
		for field, fieldErr := range ve {
			out = append(out, domain.FieldError{
				Field:  field,
				Reason: fieldErr.Error(),
			})
		}
	} else if err != nil {
		out = append(out, domain.FieldError{
			Field:  "unknown",
			Reason: err.Error(),
		})
	}

	return out
}

// ToAppError classifies a validation failure as a 400 application error.
func ToAppError(err error) error {
	if err == nil {
		return nil
	}
	fields := make(map[string][]string)
	for _, fe := range ConvertValidationErrors(err) {
		fields[fe.Field] = append(fields[fe.Field], fe.Reason)
	}
	return apperr.Validation("", fields)
}

// reader collects per-field errors while parsing raw form values.
type reader struct {
	f    domain.Fields
	mode Mode
	errs validation.Errors
}

func newReader(f domain.Fields, mode Mode) *reader {
	return &reader{f: f, mode: mode, errs: validation.Errors{}}
}

func (r *reader) fail(field, code, msg string) {
	r.errs[field] = validation.NewError(code, msg)
}

func (r *reader) err() error {
	return r.errs.Filter()
}

// required reads a mandatory text field. It must be present on create and
// may never be cleared.
func (r *reader) required(name string, max int) domain.Optional[string] {
	raw, ok := r.f.Lookup(name)
	if !ok {
		if r.mode == Create {
			r.fail(name, name+"_required", name+" is required")
		}
		return domain.Optional[string]{}
	}
	value := Clean(raw, max)
	if err := validation.Validate(value, validation.Required.Error(name+" is required")); err != nil {
		r.errs[name] = err
		return domain.Optional[string]{}
	}
	return domain.Some(value)
}

// text reads an optional text field. On create an empty value means unset.
func (r *reader) text(name string, max int) domain.Optional[string] {
	raw, ok := r.f.Lookup(name)
	if !ok {
		return domain.Optional[string]{}
	}
	value := Clean(raw, max)
	if value == "" && r.mode == Create {
		return domain.Optional[string]{}
	}
	return domain.Some(value)
}

// number returns a trimmed numeric field when it was submitted non-empty.
func (r *reader) number(name string) (string, bool) {
	raw, ok := r.f.Lookup(name)
	if !ok {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	return raw, raw != ""
}

// clamped reads an integer and clamps it to the doors/seats range.
func (r *reader) clamped(name, msg string) domain.Optional[int] {
	raw, ok := r.number(name)
	if !ok {
		return domain.Optional[int]{}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		if r.mode == Create {
			return domain.Optional[int]{}
		}
		r.fail(name, "invalid_"+name, msg)
		return domain.Optional[int]{}
	}
	return domain.Some(min(max(n, MinDoorsSeats), MaxDoorsSeats))
}

func (r *reader) boolean(name string) domain.Optional[bool] {
	raw, ok := r.f.Lookup(name)
	if !ok {
		return domain.Optional[bool]{}
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "on", "yes":
		return domain.Some(true)
	case "", "off", "no":
		return domain.Some(false)
	}
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		r.fail(name, "invalid_"+name, "Invalid "+name)
		return domain.Optional[bool]{}
	}
	return domain.Some(b)
}

func (r *reader) list(name string) domain.Optional[[]string] {
	raw, ok := r.f.Lookup(name)
	if !ok {
		return domain.Optional[[]string]{}
	}
	return domain.Some(SplitList(raw))
}
