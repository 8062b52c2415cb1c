// Package upload stores admin-submitted images on local disk and exposes
// them under the /uploads URL prefix.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Dirk1989/Ideal/internal/logger"
	"github.com/Dirk1989/Ideal/internal/metrics"
)

// URLPrefix is the public path under which stored files are served.
const URLPrefix = "/uploads/"

// Default limits.
const (
	DefaultMaxFiles    = 10
	DefaultMaxFileSize = 5 << 20
)

// ErrRejected is wrapped by every error caused by the submitted files
// themselves rather than by the server.
var ErrRejected = errors.New("upload rejected")

// allowedTypes maps accepted declared content types to file extensions.
var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Limits bounds a single request's files.
type Limits struct {
	MaxFiles    int
	MaxFileSize int64
}

// DefaultLimits returns 10 files of at most 5 MB each.
func DefaultLimits() Limits {
	return Limits{MaxFiles: DefaultMaxFiles, MaxFileSize: DefaultMaxFileSize}
}

// Result lists the public paths of stored files in submission order.
// Thumbnails is parallel to Paths and only filled when thumbnails are on.
type Result struct {
	Paths      []string
	Thumbnails []string
}

// Store writes uploads into a single directory.
type Store struct {
	dir        string
	limits     Limits
	thumbnails bool
	now        func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithThumbnails enables 480px WebP thumbnails for every stored image.
func WithThumbnails(enabled bool) Option {
	return func(s *Store) { s.thumbnails = enabled }
}

// WithClock sets the time source used for file names.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates dir if needed and returns a Store writing into it.
func New(dir string, limits Limits, opts ...Option) (*Store, error) {
	if limits.MaxFiles <= 0 {
		limits.MaxFiles = DefaultMaxFiles
	}
	if limits.MaxFileSize <= 0 {
		limits.MaxFileSize = DefaultMaxFileSize
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	s := &Store{dir: dir, limits: limits, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Dir returns the directory files are written to.
func (s *Store) Dir() string { return s.dir }

// Limits returns the configured limits.
func (s *Store) Limits() Limits { return s.limits }

// Save validates every file of field and, only if all pass, writes them.
// maxFiles caps the field below the store-wide limit; zero means the
// store-wide limit. No file is left behind when Save fails.
func (s *Store) Save(ctx context.Context, field string, files []*multipart.FileHeader, maxFiles int) (Result, error) {
	if len(files) == 0 {
		return Result{}, nil
	}
	if maxFiles <= 0 || maxFiles > s.limits.MaxFiles {
		maxFiles = s.limits.MaxFiles
	}
	if len(files) > maxFiles {
		metrics.ObserveUploads(metrics.ResultRejected, len(files))
		return Result{}, fmt.Errorf("%w: at most %d files allowed for %s", ErrRejected, maxFiles, field)
	}

	exts := make([]string, len(files))
	for i, fh := range files {
		ext, err := s.check(fh)
		if err != nil {
			metrics.ObserveUploads(metrics.ResultRejected, len(files))
			return Result{}, fmt.Errorf("%w: %s: %w", ErrRejected, field, err)
		}
		exts[i] = ext
	}

	var res Result
	for i, fh := range files {
		name := s.fileName(exts[i])
		if err := s.write(fh, name); err != nil {
			s.Remove(res.Paths)
			s.Remove(res.Thumbnails)
			return Result{}, fmt.Errorf("store %s: %w", fh.Filename, err)
		}
		p := URLPrefix + name
		res.Paths = append(res.Paths, p)

		if s.thumbnails {
			thumb, err := s.thumbnail(name)
			if err != nil {
				logger.WarnContext(ctx, "Thumbnail generation failed",
					slog.String("file", name),
					slog.String("error", err.Error()),
				)
				thumb = p
			}
			res.Thumbnails = append(res.Thumbnails, thumb)
		}
	}

	metrics.ObserveUploads(metrics.ResultAccepted, len(files))
	logger.InfoContext(ctx, "Stored uploads",
		slog.String("field", field),
		slog.Int("count", len(res.Paths)),
	)
	return res, nil
}

// Remove deletes previously stored files by public path, together with
// their thumbnails. Paths outside URLPrefix and files that no longer exist
// are ignored.
func (s *Store) Remove(paths []string) {
	for _, p := range paths {
		name, ok := s.nameOf(p)
		if !ok {
			continue
		}
		s.removeFile(name)
		if !strings.HasSuffix(name, ThumbnailSuffix) {
			s.removeFile(ThumbnailName(name))
		}
	}
}

func (s *Store) removeFile(name string) {
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("Failed to remove upload",
			slog.String("file", name),
			slog.String("error", err.Error()),
		)
	}
}

// check returns the extension for fh or the reason it is refused.
func (s *Store) check(fh *multipart.FileHeader) (string, error) {
	mediaType, _, err := mime.ParseMediaType(fh.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("%s: missing or invalid content type", fh.Filename)
	}
	ext, ok := allowedTypes[strings.ToLower(mediaType)]
	if !ok {
		return "", fmt.Errorf("%s: only image files are allowed", fh.Filename)
	}
	if fh.Size > s.limits.MaxFileSize {
		return "", fmt.Errorf("%s: file exceeds %d bytes", fh.Filename, s.limits.MaxFileSize)
	}
	return ext, nil
}

func (s *Store) fileName(ext string) string {
	return fmt.Sprintf("%d-%s%s", s.now().UnixMilli(), uuid.NewString(), ext)
}

func (s *Store) write(fh *multipart.FileHeader, name string) error {
	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}

	// The declared size can lie; never write past the limit.
	n, err := io.Copy(dst, io.LimitReader(src, s.limits.MaxFileSize+1))
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err == nil && n > s.limits.MaxFileSize {
		err = fmt.Errorf("%w: %s: file exceeds %d bytes", ErrRejected, fh.Filename, s.limits.MaxFileSize)
	}
	if err != nil {
		os.Remove(filepath.Join(s.dir, name))
		return err
	}
	return nil
}

func (s *Store) nameOf(p string) (string, bool) {
	if !strings.HasPrefix(p, URLPrefix) {
		return "", false
	}
	name := path.Base(p)
	if name == "." || name == "/" || name == ".." {
		return "", false
	}
	return name, true
}
