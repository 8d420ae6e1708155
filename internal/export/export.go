// Package export renders gradients to images and writes them in the
// texture formats fractal tools consume.
package export

import (
	"fmt"
	"image"
	"math"

	"github.com/sableline/gradix/internal/gradient"
	"github.com/sableline/gradix/internal/hue"
)

// Shape selects how gradient positions map onto image pixels.
type Shape int

const (
	// Linear sweeps the gradient left to right.
	Linear Shape = iota
	// Radial maps position to distance from the image center.
	Radial
	// Conical maps position to angle around the image center,
	// counterclockwise from three o'clock.
	Conical
)

func (s Shape) String() string {
	switch s {
	case Linear:
		return "linear"
	case Radial:
		return "radial"
	case Conical:
		return "conical"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// ParseShape maps a shape name to its Shape value.
func ParseShape(name string) (Shape, error) {
	switch name {
	case "linear":
		return Linear, nil
	case "radial":
		return Radial, nil
	case "conical":
		return Conical, nil
	default:
		return Linear, fmt.Errorf("unknown shape %q (have linear, radial, conical)", name)
	}
}

// Image size limits for rendered gradients.
const (
	MinSize = 64
	MaxSize = 4096
)

// Options configures rendering. The zero value renders a 512-pixel
// linear square.
type Options struct {
	// Size is the width and height of the square output. Values
	// outside [MinSize, MaxSize] are clamped.
	Size int
	// Shape is the position-to-pixel mapping.
	Shape Shape
	// Seamless samples through the seamless preview blend instead of
	// the raw gradient.
	Seamless bool
	// SeamlessOptions tunes the preview blend when Seamless is set.
	SeamlessOptions gradient.SeamlessOptions
}

func (o Options) size() int {
	size := o.Size
	if size == 0 {
		size = 512
	}
	if size < MinSize {
		size = MinSize
	}
	if size > MaxSize {
		size = MaxSize
	}
	return size
}

// Render draws g as a square image.
func Render(g *gradient.Gradient, opts Options) *image.RGBA {
	size := opts.size()
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	sample := func(pos float64) [3]uint8 {
		var c hue.RGB
		if opts.Seamless {
			c = g.SeamlessColorAt(pos, opts.SeamlessOptions)
		} else {
			c = g.ColorAt(pos)
		}
		return [3]uint8{c.R, c.G, c.B}
	}

	switch opts.Shape {
	case Radial:
		center := float64(size) / 2
		radius := center
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				dx := float64(x) + 0.5 - center
				dy := float64(y) + 0.5 - center
				pos := math.Sqrt(dx*dx+dy*dy) / radius
				setPixel(img, x, y, sample(math.Min(pos, 1)))
			}
		}
	case Conical:
		center := float64(size) / 2
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				dx := float64(x) + 0.5 - center
				dy := center - (float64(y) + 0.5)
				angle := math.Atan2(dy, dx)
				if angle < 0 {
					angle += 2 * math.Pi
				}
				setPixel(img, x, y, sample(angle/(2*math.Pi)))
			}
		}
	default: // Linear
		row := make([][3]uint8, size)
		for x := 0; x < size; x++ {
			row[x] = sample(float64(x) / float64(size-1))
		}
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				setPixel(img, x, y, row[x])
			}
		}
	}
	return img
}

// Strip renders a horizontal gradient strip, the shape used for
// palette textures. Width follows the size limits; any positive height
// is allowed since strips are often a handful of pixels tall.
func Strip(g *gradient.Gradient, width, height int) *image.RGBA {
	if width < MinSize {
		width = MinSize
	}
	if width > MaxSize {
		width = MaxSize
	}
	if height < 1 {
		height = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		c := g.ColorAt(float64(x) / float64(width-1))
		px := [3]uint8{c.R, c.G, c.B}
		for y := 0; y < height; y++ {
			setPixel(img, x, y, px)
		}
	}
	return img
}

func setPixel(img *image.RGBA, x, y int, c [3]uint8) {
	off := y*img.Stride + x*4
	img.Pix[off+0] = c[0]
	img.Pix[off+1] = c[1]
	img.Pix[off+2] = c[2]
	img.Pix[off+3] = 255
}
