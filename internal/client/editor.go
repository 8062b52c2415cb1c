package client

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/Dirk1989/Ideal/internal/domain"
)

// CarEditor holds the state of the admin car form between submissions.
// EditingID is zero while creating.
type CarEditor struct {
	admin *Admin

	Values    url.Values
	Features  []string
	Files     []File
	EditingID int64
}

// NewCarEditor returns an empty editor submitting through a.
func NewCarEditor(a *Admin) *CarEditor {
	return &CarEditor{admin: a, Values: url.Values{}}
}

// Set fills one form field.
func (e *CarEditor) Set(name, value string) {
	e.Values.Set(name, value)
}

// AddFeature appends tag unless an equal tag, ignoring case, is present.
func (e *CarEditor) AddFeature(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return false
	}
	for _, f := range e.Features {
		if strings.EqualFold(f, tag) {
			return false
		}
	}
	e.Features = append(e.Features, tag)
	return true
}

func (e *CarEditor) RemoveFeature(tag string) {
	e.Features = slices.DeleteFunc(e.Features, func(f string) bool {
		return strings.EqualFold(f, tag)
	})
}

// AddFile queues an image for the images field.
func (e *CarEditor) AddFile(f File) {
	f.Field = "images"
	e.Files = append(e.Files, f)
}

// RemoveFile drops the queued image at i.
func (e *CarEditor) RemoveFile(i int) {
	if i < 0 || i >= len(e.Files) {
		return
	}
	e.Files = slices.Delete(e.Files, i, i+1)
}

// Edit loads car id into the editor. The whole collection is fetched and
// searched locally.
func (e *CarEditor) Edit(ctx context.Context, id int64) error {
	cars, err := e.admin.ListCars(ctx)
	if err != nil {
		return err
	}
	idx := slices.IndexFunc(cars, func(l Listing) bool { return l.ID == id })
	if idx < 0 {
		return fmt.Errorf("car %d: %w", id, ErrNotFound)
	}

	car := cars[idx].Vehicle
	e.Values = vehicleValues(car)
	e.Features = slices.Clone(car.Features)
	e.Files = nil
	e.EditingID = id
	return nil
}

// Submit creates the car, or updates it while editing, then resets the
// editor. The editor keeps its state when the call fails.
func (e *CarEditor) Submit(ctx context.Context) (domain.Vehicle, error) {
	values := url.Values{}
	for name, v := range e.Values {
		values[name] = slices.Clone(v)
	}
	values.Set("features", strings.Join(e.Features, ","))
	form := Form{Values: values, Files: e.Files}

	var (
		car domain.Vehicle
		err error
	)
	if e.EditingID == 0 {
		car, err = e.admin.CreateCar(ctx, form)
	} else {
		car, err = e.admin.UpdateCar(ctx, e.EditingID, form)
	}
	if err != nil {
		return domain.Vehicle{}, err
	}

	e.Reset()
	return car, nil
}

// Reset clears the form and returns to create mode.
func (e *CarEditor) Reset() {
	e.Values = url.Values{}
	e.Features = nil
	e.Files = nil
	e.EditingID = 0
}

func vehicleValues(v domain.Vehicle) url.Values {
	values := url.Values{}
	values.Set("make", v.Make)
	values.Set("model", v.Model)
	values.Set("year", strconv.Itoa(v.Year))
	values.Set("price", strconv.FormatFloat(v.Price, 'f', -1, 64))
	values.Set("description", v.Description)
	values.Set("mileage", v.Mileage)
	values.Set("transmission", v.Transmission)
	values.Set("fuel", v.Fuel)
	values.Set("engine", v.Engine)
	values.Set("color", v.Color)
	values.Set("doors", strconv.Itoa(v.Doors))
	values.Set("seats", strconv.Itoa(v.Seats))
	values.Set("condition", v.Condition)
	values.Set("category", v.Category)
	values.Set("featured", strconv.FormatBool(v.Featured))
	if v.DealerID != 0 {
		values.Set("dealerId", strconv.FormatInt(v.DealerID, 10))
	}
	return values
}
