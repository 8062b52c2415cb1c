package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Dirk1989/Ideal/internal/apperr"
)

func TestKindHTTPStatus(t *testing.T) {
	tests := []struct {
		kind apperr.Kind
		want int
	}{
		{apperr.KindValidation, http.StatusBadRequest},
		{apperr.KindUploadRejected, http.StatusBadRequest},
		{apperr.KindNotFound, http.StatusNotFound},
		{apperr.KindUnauthorized, http.StatusUnauthorized},
		{apperr.KindRateLimited, http.StatusTooManyRequests},
		{apperr.KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.HTTPStatus())
		})
	}
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("loading car: %w", apperr.NotFound("Car not found"))
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(errors.New("boom")))
}

func TestValidation_MessageFromFields(t *testing.T) {
	err := apperr.Validation("", map[string][]string{
		"year":  {"Invalid year"},
		"price": {"Invalid price"},
	})
	assert.Equal(t, "Invalid price; Invalid year", err.Error())
}

func TestUploadRejected_Unwraps(t *testing.T) {
	cause := errors.New("Only image files are allowed")
	err := apperr.UploadRejected(cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Only image files are allowed", err.Error())
}
