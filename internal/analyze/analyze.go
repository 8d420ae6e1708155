// Package analyze extracts dominant colors from images and turns them
// into gradients.
package analyze

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dblezek/tga"
	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"

	"github.com/sableline/gradix/internal/dds"
	"github.com/sableline/gradix/internal/gradient"
	"github.com/sableline/gradix/internal/hue"
)

// SortOrder controls how extracted colors are arranged before stops
// are placed.
type SortOrder int

const (
	// ByFrequency puts the most common color first.
	ByFrequency SortOrder = iota
	// ByBrightness orders dark to light.
	ByBrightness
	// ByHue orders around the color wheel.
	ByHue
)

// ParseSortOrder maps a sort name to its SortOrder value.
func ParseSortOrder(name string) (SortOrder, error) {
	switch name {
	case "frequency":
		return ByFrequency, nil
	case "brightness":
		return ByBrightness, nil
	case "hue":
		return ByHue, nil
	default:
		return ByFrequency, fmt.Errorf("unknown sort order %q (have frequency, brightness, hue)", name)
	}
}

// Options configures color extraction. The zero value extracts five
// colors by frequency with a quarter-size working image.
type Options struct {
	// Colors is the number of dominant colors to extract.
	Colors int
	// ResizeFactor scales the image down before clustering. Values
	// outside (0, 1] fall back to the default 0.25.
	ResizeFactor float64
	// Sort arranges the extracted colors.
	Sort SortOrder
	// Seed makes the clustering deterministic. The same image with
	// the same seed always yields the same colors.
	Seed int64
}

func (o Options) colors() int {
	if o.Colors <= 0 {
		return 5
	}
	if o.Colors > gradient.MaxStops {
		return gradient.MaxStops
	}
	return o.Colors
}

func (o Options) resizeFactor() float64 {
	if o.ResizeFactor <= 0 || o.ResizeFactor > 1 {
		return 0.25
	}
	return o.ResizeFactor
}

// LoadImage reads an image file, picking the decoder from the file
// extension. PNG, JPEG, BMP, TGA and DDS are supported.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	var img image.Image
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tga":
		img, err = tga.Decode(f)
	case ".dds":
		img, err = dds.Decode(f)
	case ".bmp":
		img, err = bmp.Decode(f)
	default:
		img, _, err = image.Decode(f)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}
	b := img.Bounds()
	slog.Debug("loaded image", "path", path, "width", b.Dx(), "height", b.Dy())
	return img, nil
}

// DominantColors clusters the image's pixels in LAB space and returns
// the cluster centers ordered per opts.Sort.
func DominantColors(img image.Image, opts Options) ([]hue.RGB, error) {
	small := downscale(img, opts.resizeFactor())
	pixels := labPixels(small)
	if len(pixels) == 0 {
		return nil, fmt.Errorf("image has no pixels")
	}

	clusters := kmeans(pixels, opts.colors(), opts.Seed)
	sortClusters(clusters, opts.Sort)

	out := make([]hue.RGB, len(clusters))
	for i, c := range clusters {
		out[i] = c.color()
	}
	return out, nil
}

// GradientFromImage extracts dominant colors and spreads them evenly
// into a new gradient.
func GradientFromImage(name string, img image.Image, opts Options) (*gradient.Gradient, error) {
	colors, err := DominantColors(img, opts)
	if err != nil {
		return nil, err
	}
	g := gradient.FromColors(name, colors)
	g.Meta.Description = fmt.Sprintf("Generated from image: %s", name)
	return g, nil
}

// GradientFromFile loads an image and builds a gradient from it, named
// after the file.
func GradientFromFile(path string, opts Options) (*gradient.Gradient, error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	name := fmt.Sprintf("Gradient from %s", filepath.Base(path))
	return GradientFromImage(name, img, opts)
}

// downscale shrinks the image for clustering. Bilinear is plenty; the
// goal is a representative pixel population, not a pretty thumbnail.
func downscale(img image.Image, factor float64) *image.RGBA {
	b := img.Bounds()
	w := int(float64(b.Dx()) * factor)
	h := int(float64(b.Dy()) * factor)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}
