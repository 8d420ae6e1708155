package blend

import (
	"math"
	"math/rand"

	"github.com/sableline/gradix/internal/gradient"
	"github.com/sableline/gradix/internal/hue"
	"github.com/sableline/gradix/internal/param"
)

// layerBlender composites the inputs like image layers: the first is the
// base and every further gradient is applied on top with a blend mode,
// an opacity, and an optional positional mask.
type layerBlender struct{}

var (
	paramBlendMode = param.Parameter{
		Name: "blend_mode", Min: 0, Max: 7, Default: 0,
		Description: "0=multiply 1=screen 2=overlay 3=soft-light 4=hard-light 5=dodge 6=burn 7=difference",
	}
	paramOpacity = param.Parameter{
		Name: "opacity", Min: 0, Max: 1, Default: 1,
		Description: "opacity of the layered gradients",
	}
	paramMaskType = param.Parameter{
		Name: "mask_type", Min: 0, Max: 3, Default: 0,
		Description: "layer mask (0=none, 1=linear, 2=radial, 3=noise)",
	}
	paramMaskInvert = param.Parameter{
		Name: "mask_invert", Min: 0, Max: 1, Default: 0,
		Description: "invert the layer mask (0=no, 1=yes)",
	}
)

var layerModeNames = []string{
	"Multiply", "Screen", "Overlay", "Soft Light",
	"Hard Light", "Color Dodge", "Color Burn", "Difference",
}

func (layerBlender) Name() string  { return "layer" }
func (layerBlender) Title() string { return "Layer" }
func (layerBlender) Description() string {
	return "image-editor layer blend modes (multiply, screen, overlay, ...)"
}
func (layerBlender) Params() []param.Parameter {
	return []param.Parameter{paramBlendMode, paramOpacity, paramMaskType, paramMaskInvert}
}

func (b layerBlender) Blend(inputs []gradient.Weighted, vals param.Values) *gradient.Gradient {
	if len(inputs) == 0 {
		return merged(b.Title())
	}
	if len(inputs) == 1 {
		return cloneSingle(inputs[0], b.Title())
	}

	mode := int(vals.Get(paramBlendMode))
	opacity := vals.Get(paramOpacity)
	maskType := int(vals.Get(paramMaskType))
	maskInvert := boolParam(vals, paramMaskInvert)

	base := inputs[0].Gradient
	out := merged(b.Title())
	out.Meta.Name = "Layer Blend - " + layerModeNames[mode]

	for _, pos := range unionPositions(inputs) {
		result := base.ColorAt(pos)
		for _, in := range inputs[1:] {
			layerColor := in.Gradient.ColorAt(pos)
			mask := maskValue(pos, maskType, maskInvert)
			blended := applyBlendMode(result, layerColor, mode)
			result = hue.Blend(result, blended, opacity*in.Weight*mask)
		}
		out.Stops = append(out.Stops, gradient.Stop{Position: pos, Color: result})
	}
	return out
}

func applyBlendMode(base, layer hue.RGB, mode int) hue.RGB {
	blend := func(b, l float64) float64 {
		switch mode {
		case 0: // multiply
			return b * l
		case 1: // screen
			return 1 - (1-b)*(1-l)
		case 2: // overlay
			if b < 0.5 {
				return 2 * b * l
			}
			return 1 - 2*(1-b)*(1-l)
		case 3: // soft light
			if l < 0.5 {
				return (1-2*l)*b*b + 2*l*b
			}
			return (1-2*(1-l))*b*(1-b) + 2*(1-l)*b
		case 4: // hard light
			if l < 0.5 {
				return 2 * b * l
			}
			return 1 - 2*(1-b)*(1-l)
		case 5: // color dodge
			if l < 1 {
				return b / (1 - l)
			}
			return 1
		case 6: // color burn
			if l > 0 {
				return 1 - (1-b)/l
			}
			return 0
		case 7: // difference
			return math.Abs(b - l)
		default:
			return b
		}
	}

	apply := func(bc, lc uint8) int {
		v := blend(float64(bc)/255, float64(lc)/255)
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return int(v * 255)
	}
	return hue.New(apply(base.R, layer.R), apply(base.G, layer.G), apply(base.B, layer.B))
}

// maskValue maps a position to a mask weight. The noise mask seeds a
// generator from the position so results are stable across runs.
func maskValue(pos float64, maskType int, invert bool) float64 {
	var mask float64
	switch maskType {
	case 1: // linear
		mask = pos
	case 2: // radial
		mask = 1 - math.Abs(pos-0.5)*2
	case 3: // noise
		rng := rand.New(rand.NewSource(int64(pos * 1000)))
		mask = rng.Float64()
	default:
		mask = 1
	}
	if invert {
		return 1 - mask
	}
	return mask
}
