// Package hue converts between RGB and HSV color spaces and blends colors.
package hue

import (
	"fmt"
	"math"
	"strings"
)

// RGB is an 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

// New clamps each channel to 0–255 and returns the resulting color.
func New(r, g, b int) RGB {
	return RGB{
		R: uint8(clampInt(r, 0, 255)),
		G: uint8(clampInt(g, 0, 255)),
		B: uint8(clampInt(b, 0, 255)),
	}
}

// Hex renders the color as "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHex parses "#RRGGBB" or "RRGGBB".
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("parse hex color %q: want 6 hex digits", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return RGB{}, fmt.Errorf("parse hex color %q: %w", s, err)
	}
	return RGB{r, g, b}, nil
}

// ToHSV converts to HSV with h in degrees [0,360) and s, v in [0,1].
func (c RGB) ToHSV() (h, s, v float64) {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	cMax := math.Max(r, math.Max(g, b))
	cMin := math.Min(r, math.Min(g, b))
	delta := cMax - cMin

	switch {
	case delta == 0:
		h = 0
	case cMax == r:
		h = 60 * math.Mod((g-b)/delta, 6)
		if h < 0 {
			h += 360
		}
	case cMax == g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}

	if cMax > 0 {
		s = delta / cMax
	}
	return h, s, cMax
}

// FromHSV converts h (degrees, any value), s and v (clamped to [0,1]) to RGB.
// Channels are rounded and clamped to 0–255.
func FromHSV(h, s, v float64) RGB {
	s = clampFloat(s, 0, 1)
	v = clampFloat(v, 0, 1)
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	var r, g, b float64
	if s == 0 {
		r, g, b = v, v, v
	} else {
		seg := h / 60
		i := math.Floor(seg)
		f := seg - i

		p := v * (1 - s)
		q := v * (1 - s*f)
		t := v * (1 - s*(1-f))

		switch int(i) {
		case 0:
			r, g, b = v, t, p
		case 1:
			r, g, b = q, v, p
		case 2:
			r, g, b = p, v, t
		case 3:
			r, g, b = p, q, v
		case 4:
			r, g, b = t, p, v
		default:
			r, g, b = v, p, q
		}
	}

	return New(
		int(math.Round(r*255)),
		int(math.Round(g*255)),
		int(math.Round(b*255)),
	)
}

// Blend interpolates per channel between c1 and c2. The factor is clamped
// to [0,1]: 0 returns c1, 1 returns c2.
func Blend(c1, c2 RGB, factor float64) RGB {
	factor = clampFloat(factor, 0, 1)
	return New(
		int(float64(c1.R)*(1-factor)+float64(c2.R)*factor),
		int(float64(c1.G)*(1-factor)+float64(c2.G)*factor),
		int(float64(c1.B)*(1-factor)+float64(c2.B)*factor),
	)
}

// LerpHue interpolates between two hues in degrees along the shorter
// angular path, handling wraparound at 0/360.
func LerpHue(a, b, t float64) float64 {
	d := math.Mod(b-a+180, 360) - 180
	if d < -180 {
		d += 360
	}
	h := math.Mod(a+d*t, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// CircularMeanHue averages hues (degrees) with the given weights using
// vector summation, so 350° and 10° average to 0° instead of 180°.
// Returns 0 when every weight is zero.
func CircularMeanHue(hues, weights []float64) float64 {
	var sumSin, sumCos float64
	for i, h := range hues {
		w := 1.0
		if i < len(weights) {
			w = math.Max(0, weights[i])
		}
		rad := h * math.Pi / 180
		sumSin += math.Sin(rad) * w
		sumCos += math.Cos(rad) * w
	}
	if sumSin == 0 && sumCos == 0 {
		return 0
	}
	deg := math.Atan2(sumSin, sumCos) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Brightness is the ITU-R BT.601 luma in [0,1].
func (c RGB) Brightness() float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255.0
}

// Luminance is the ITU-R BT.709 luma in [0,1].
func (c RGB) Luminance() float64 {
	return (0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)) / 255.0
}

// Distance is the Euclidean distance between two colors in RGB space,
// ranging from 0 to ~441.67 (black to white).
func Distance(a, b RGB) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// AdjustBrightness scales the HSV value channel. factor 1 is unchanged.
func AdjustBrightness(c RGB, factor float64) RGB {
	h, s, v := c.ToHSV()
	return FromHSV(h, s, clampFloat(v*factor, 0, 1))
}

// AdjustSaturation scales the HSV saturation channel. factor 1 is unchanged.
func AdjustSaturation(c RGB, factor float64) RGB {
	h, s, v := c.ToHSV()
	return FromHSV(h, clampFloat(s*factor, 0, 1), v)
}

// RotateHue rotates the hue by the given number of degrees.
func RotateHue(c RGB, degrees float64) RGB {
	h, s, v := c.ToHSV()
	return FromHSV(math.Mod(h+degrees, 360), s, v)
}

// Complementary returns the color opposite on the color wheel.
func Complementary(c RGB) RGB {
	return RotateHue(c, 180)
}

// Triadic returns the input plus the two colors 120° and 240° away.
func Triadic(c RGB) [3]RGB {
	return [3]RGB{c, RotateHue(c, 120), RotateHue(c, 240)}
}

// Analogous returns the colors at -angle and +angle with the input between.
func Analogous(c RGB, angle float64) [3]RGB {
	return [3]RGB{RotateHue(c, -angle), c, RotateHue(c, angle)}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
