package service

import (
	"errors"

	"github.com/Dirk1989/Ideal/internal/apperr"
	"github.com/Dirk1989/Ideal/internal/repository"
	"github.com/Dirk1989/Ideal/internal/upload"
)

// classify turns storage and upload errors into application errors.
// notFound is the message for an unknown id.
func classify(err error, notFound string) error {
	var appErr *apperr.Error
	switch {
	case err == nil:
		return nil
	case errors.As(err, &appErr):
		return err
	case errors.Is(err, repository.ErrNotFound):
		return apperr.NotFound(notFound)
	case errors.Is(err, upload.ErrRejected):
		return apperr.UploadRejected(err)
	default:
		return apperr.Internal("operation failed", err)
	}
}

// uploaded returns every path of r, thumbnails included.
func uploaded(r upload.Result) []string {
	return append(append([]string{}, r.Paths...), r.Thumbnails...)
}
