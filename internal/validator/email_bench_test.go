package validator

import (
	"regexp"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/Dirk1989/Ideal/internal/domain"
)

var benchEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func BenchmarkIsEmailFormat(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = validation.Validate("buyer@example.co.za", is.EmailFormat)
	}
}

func BenchmarkRegexEmail(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = validation.Validate("buyer@example.co.za", validation.Match(benchEmailRegex))
	}
}

func BenchmarkContact(b *testing.B) {
	v := NewValidator()
	for i := 0; i < b.N; i++ {
		m := domain.ContactMessage{
			Name:    "Thabo",
			Email:   "thabo@example.co.za",
			Phone:   "082 555 1234",
			Subject: "Camry",
			Message: "Is the <b>Camry</b> still available?",
		}
		_ = v.Contact(&m)
	}
}

func BenchmarkVehicleCreate(b *testing.B) {
	v := NewValidator()
	f := domain.Fields{
		"make":     "Toyota",
		"model":    "Corolla",
		"year":     "2021",
		"price":    "180000",
		"features": "Bluetooth, Cruise Control, Reverse Camera",
	}
	for i := 0; i < b.N; i++ {
		_, _ = v.Vehicle(f, Create)
	}
}
