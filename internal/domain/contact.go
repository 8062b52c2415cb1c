package domain

import (
	"fmt"
	"time"
)

// ContactMessage is a visitor enquiry. It is logged, never stored.
type ContactMessage struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Phone   string `json:"phone" form:"phone"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

// ContactReceipt is returned to the visitor after a successful submission.
type ContactReceipt struct {
	Reference string    `json:"reference"`
	Received  time.Time `json:"received"`
}

// ContactReference derives the human-readable reference for a message
// received at t: "IC" followed by the last eight digits of its unix millis.
func ContactReference(t time.Time) string {
	ms := fmt.Sprintf("%08d", t.UnixMilli())
	return "IC" + ms[len(ms)-8:]
}
