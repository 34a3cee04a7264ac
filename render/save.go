package render

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Encode writes img to w in the format named by ext (".png", ".jpg", ".jpeg", ".gif").
// Unknown extensions fall back to PNG.
func Encode(w io.Writer, img image.Image, ext string) error {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case ".gif":
		return gif.Encode(w, img, nil)
	default:
		return png.Encode(w, img)
	}
}

// Save writes img to path, choosing the format from the file extension.
func Save(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}

	if err := Encode(f, img, filepath.Ext(path)); err != nil {
		f.Close()
		return fmt.Errorf("encode %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %q: %w", path, err)
	}
	return nil
}

// Output saves img to opts.Path, or hands it to show when no path is set.
func Output(img *image.RGBA, opts Options, show func(*image.RGBA) error) error {
	if opts.Path != "" {
		return Save(opts.Path, img)
	}
	if show == nil {
		return fmt.Errorf("no output path and no display")
	}
	return show(img)
}
