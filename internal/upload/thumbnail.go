package upload

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Thumbnail size and encoding.
const (
	ThumbnailWidth   = 480
	ThumbnailSuffix  = "-480w.webp"
	thumbnailQuality = 70
)

// ThumbnailName returns the thumbnail file name for a stored file name.
func ThumbnailName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + ThumbnailSuffix
}

// thumbnail scales the stored file name down to ThumbnailWidth and writes
// it as WebP next to the original. Images narrower than the target are
// re-encoded at their own size.
func (s *Store) thumbnail(name string) (string, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	if img.Bounds().Empty() {
		return "", fmt.Errorf("decode image: empty %v bounds", img.Bounds())
	}

	dst := scaleToWidth(img, ThumbnailWidth)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Lossless: false, Quality: thumbnailQuality}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	thumb := ThumbnailName(name)
	if err := os.WriteFile(filepath.Join(s.dir, thumb), buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write thumbnail: %w", err)
	}
	return URLPrefix + thumb, nil
}

func scaleToWidth(img image.Image, width int) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() <= width {
		width = bounds.Dx()
	}
	height := bounds.Dy() * width / bounds.Dx()
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
	return dst
}
