package blend

import (
	"math"

	"github.com/sableline/gradix/internal/gradient"
	"github.com/sableline/gradix/internal/hue"
	"github.com/sableline/gradix/internal/param"
)

// mixBlender averages the inputs' colors at every explicit stop
// position, optionally in HSV space with circular hue averaging.
type mixBlender struct{}

var (
	paramUseWeights = param.Parameter{
		Name: "use_weights", Min: 0, Max: 1, Default: 1,
		Description: "scale each gradient's contribution by its weight (0=no, 1=yes)",
	}
	paramColorSpace = param.Parameter{
		Name: "color_space", Min: 0, Max: 1, Default: 0,
		Description: "blending color space (0=RGB, 1=HSV)",
	}
)

func (mixBlender) Name() string  { return "mix" }
func (mixBlender) Title() string { return "Mix" }
func (mixBlender) Description() string {
	return "averages colors at each position across all gradients"
}
func (mixBlender) Params() []param.Parameter {
	return []param.Parameter{paramUseWeights, paramColorSpace}
}

func (b mixBlender) Blend(inputs []gradient.Weighted, vals param.Values) *gradient.Gradient {
	if len(inputs) == 0 {
		return merged(b.Title())
	}
	if len(inputs) == 1 {
		return cloneSingle(inputs[0], b.Title())
	}

	useWeights := boolParam(vals, paramUseWeights)
	useHSV := boolParam(vals, paramColorSpace)

	if useWeights {
		inputs = positiveWeights(inputs)
	}
	if len(inputs) == 0 {
		return merged(b.Title())
	}

	out := merged(b.Title())
	for _, pos := range unionPositions(inputs) {
		var c hue.RGB
		if useHSV {
			c = mixHSV(inputs, pos, useWeights)
		} else {
			c = mixRGB(inputs, pos, useWeights)
		}
		out.Stops = append(out.Stops, gradient.Stop{Position: pos, Color: c})
	}
	return out
}

func mixRGB(inputs []gradient.Weighted, pos float64, useWeights bool) hue.RGB {
	colors := make([]weightedColor, 0, len(inputs))
	for _, in := range inputs {
		w := 1.0
		if useWeights {
			w = in.Weight
		}
		colors = append(colors, weightedColor{color: in.Gradient.ColorAt(pos), weight: w})
	}
	c := averageColors(colors)
	if allZeroWeights(colors) {
		return hue.RGB{}
	}
	return c
}

func mixHSV(inputs []gradient.Weighted, pos float64, useWeights bool) hue.RGB {
	var sinSum, cosSum, sSum, vSum, total float64
	for _, in := range inputs {
		w := 1.0
		if useWeights {
			w = in.Weight
		}
		if w < 0 {
			w = 0
		}
		h, s, v := in.Gradient.ColorAt(pos).ToHSV()
		rad := h * math.Pi / 180
		sinSum += math.Sin(rad) * w
		cosSum += math.Cos(rad) * w
		sSum += s * w
		vSum += v * w
		total += w
	}
	if total <= 0 {
		return hue.RGB{}
	}
	hAvg := math.Atan2(sinSum/total, cosSum/total) * 180 / math.Pi
	if hAvg < 0 {
		hAvg += 360
	}
	return hue.FromHSV(hAvg, sSum/total, vSum/total)
}

func allZeroWeights(colors []weightedColor) bool {
	for _, wc := range colors {
		if wc.weight > 0 {
			return false
		}
	}
	return true
}
