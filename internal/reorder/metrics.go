package reorder

import (
	"fmt"
	"math"

	"github.com/sableline/gradix/internal/gradient"
	"github.com/sableline/gradix/internal/hue"
)

// perStop lifts a per-color key function over a stop list.
func perStop(stops []gradient.Stop, f func(hue.RGB) float64) []float64 {
	out := make([]float64, len(stops))
	for i, s := range stops {
		out[i] = f(s.Color)
	}
	return out
}

type brightnessMetric struct{}

func (brightnessMetric) Name() string        { return "brightness" }
func (brightnessMetric) Description() string { return "HSV brightness, dark to light" }
func (brightnessMetric) Keys(stops []gradient.Stop) []float64 {
	return perStop(stops, func(c hue.RGB) float64 {
		_, _, v := c.ToHSV()
		return v
	})
}

type luminanceMetric struct{}

func (luminanceMetric) Name() string        { return "luminance" }
func (luminanceMetric) Description() string { return "perceived brightness (ITU-R BT.709)" }
func (luminanceMetric) Keys(stops []gradient.Stop) []float64 {
	return perStop(stops, hue.RGB.Luminance)
}

type hueMetric struct{}

func (hueMetric) Name() string        { return "hue" }
func (hueMetric) Description() string { return "position around the color wheel" }
func (hueMetric) Keys(stops []gradient.Stop) []float64 {
	return perStop(stops, func(c hue.RGB) float64 {
		h, _, _ := c.ToHSV()
		return h / 360
	})
}

type saturationMetric struct{}

func (saturationMetric) Name() string        { return "saturation" }
func (saturationMetric) Description() string { return "grayscale to vivid" }
func (saturationMetric) Keys(stops []gradient.Stop) []float64 {
	return perStop(stops, func(c hue.RGB) float64 {
		_, s, _ := c.ToHSV()
		return s
	})
}

type channelMetric struct {
	name  string
	title string
	index int
}

func (m channelMetric) Name() string { return m.name }
func (m channelMetric) Description() string {
	return fmt.Sprintf("%s channel intensity", m.title)
}
func (m channelMetric) Keys(stops []gradient.Stop) []float64 {
	return perStop(stops, func(c hue.RGB) float64 {
		switch m.index {
		case 0:
			return float64(c.R) / 255
		case 1:
			return float64(c.G) / 255
		default:
			return float64(c.B) / 255
		}
	})
}

type warmCoolMetric struct{}

func (warmCoolMetric) Name() string        { return "warm_cool" }
func (warmCoolMetric) Description() string { return "cool blues and greens to warm reds and oranges" }
func (warmCoolMetric) Keys(stops []gradient.Stop) []float64 {
	return perStop(stops, func(c hue.RGB) float64 {
		h, _, _ := c.ToHSV()
		// Cool hues (120-300°) map to [0,0.4); warm hues to [0.4,1].
		if h >= 120 && h <= 300 {
			return 0.4 * (h - 120) / 180
		}
		if h >= 300 {
			return 0.4 + 0.6*(h-300)/60
		}
		return 0.4 + 0.6*(60-h)/60
	})
}

type chromaMetric struct{}

func (chromaMetric) Name() string        { return "chroma" }
func (chromaMetric) Description() string { return "color intensity (saturation times brightness)" }
func (chromaMetric) Keys(stops []gradient.Stop) []float64 {
	return perStop(stops, func(c hue.RGB) float64 {
		_, s, v := c.ToHSV()
		return s * v
	})
}

type contrastMetric struct{}

func (contrastMetric) Name() string        { return "contrast" }
func (contrastMetric) Description() string { return "difference from the gradient's average gray" }
func (contrastMetric) Keys(stops []gradient.Stop) []float64 {
	avg := 128.0
	if len(stops) > 0 {
		total := 0.0
		for _, s := range stops {
			total += s.Color.Brightness() * 255
		}
		avg = total / float64(len(stops))
	}
	return perStop(stops, func(c hue.RGB) float64 {
		return math.Abs(c.Brightness()*255-avg) / 255
	})
}

type complementaryMetric struct{}

func (complementaryMetric) Name() string { return "complementary" }
func (complementaryMetric) Description() string {
	return "proximity to the dominant hue or its complement"
}
func (complementaryMetric) Keys(stops []gradient.Stop) []float64 {
	// The most saturated stop defines the primary hue.
	primary := 0.0
	maxSat := 0.0
	for _, s := range stops {
		h, sat, _ := s.Color.ToHSV()
		if sat > maxSat {
			maxSat = sat
			primary = h
		}
	}
	complement := math.Mod(primary+180, 360)

	return perStop(stops, func(c hue.RGB) float64 {
		h, _, _ := c.ToHSV()
		dp := hueDistance(h, primary)
		dc := hueDistance(h, complement)
		return math.Min(dp, dc) / 180
	})
}

func hueDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	return math.Min(d, 360-d)
}

type distanceMetric struct {
	ref hue.RGB
}

// DistanceFrom builds a metric ordering colors by Euclidean RGB distance
// from a reference color.
func DistanceFrom(ref hue.RGB) Metric {
	return distanceMetric{ref: ref}
}

func (distanceMetric) Name() string { return "distance" }
func (m distanceMetric) Description() string {
	return fmt.Sprintf("Euclidean distance from %s", m.ref.Hex())
}
func (m distanceMetric) Keys(stops []gradient.Stop) []float64 {
	return perStop(stops, func(c hue.RGB) float64 {
		return hue.Distance(c, m.ref) / 441.67
	})
}

type simpleBrightnessMetric struct{}

func (simpleBrightnessMetric) Name() string        { return "simple_brightness" }
func (simpleBrightnessMetric) Description() string { return "plain channel average, dark to light" }
func (simpleBrightnessMetric) Keys(stops []gradient.Stop) []float64 {
	return perStop(stops, func(c hue.RGB) float64 {
		return (float64(c.R) + float64(c.G) + float64(c.B)) / (3 * 255)
	})
}
