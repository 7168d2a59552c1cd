package main

import (
	"context"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/esimov/vorinterp/utils"
	"github.com/soniakeys/quant/mean"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// extensions lists the image files picked up when the input is a directory.
var extensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

func supported(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// loadImage decodes a local file or a remote image.
func loadImage(ctx context.Context, path string) (image.Image, error) {
	var (
		f   *os.File
		err error
	)
	if isURL(path) {
		f, err = utils.DownloadImage(ctx, path)
		if err != nil {
			return nil, err
		}
		defer os.Remove(f.Name())
	} else {
		f, err = os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open source: %w", err)
		}
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	slog.Debug("decoded image", "path", path, "format", format,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return img, nil
}

// downscale shrinks img so that its longest side is at most maxSize.
func downscale(img image.Image, maxSize int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return img
	}
	if w >= h {
		h = max(1, h*maxSize/w)
		w = maxSize
	} else {
		w = max(1, w*maxSize/h)
		h = maxSize
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	slog.Debug("resized image", "width", w, "height", h)
	return dst
}

// quantize reduces the image to at most n colors.
func quantize(img image.Image, n int) *image.Paletted {
	return mean.Quantizer(n).Paletted(img)
}

// saveImage encodes img into path, picking the encoder from the extension.
// GIF output is always paletted; colors > 0 quantizes the other formats as well.
func saveImage(path string, img image.Image, colors int) (err error) {
	ext := strings.ToLower(filepath.Ext(path))
	if colors > 0 || ext == ".gif" {
		if colors <= 0 || colors > 256 {
			colors = 256
		}
		img = quantize(img, colors)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close output: %w", cerr)
		}
	}()

	return encode(f, img, ext)
}

func encode(w io.Writer, img image.Image, ext string) error {
	var err error
	switch ext {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
	case ".gif":
		err = gif.Encode(w, img, nil)
	case ".bmp":
		err = bmp.Encode(w, img)
	case ".tif", ".tiff":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case ".png", "":
		err = png.Encode(w, img)
	default:
		return fmt.Errorf("unsupported output format: %s", ext)
	}
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
