package blend

import (
	"math"

	"github.com/sableline/gradix/internal/gradient"
	"github.com/sableline/gradix/internal/hue"
	"github.com/sableline/gradix/internal/param"
)

// chromaticBlender samples the red, green, and blue channels at slightly
// different positions, producing prism-like chromatic aberration.
type chromaticBlender struct{}

var (
	paramRedOffset = param.Parameter{
		Name: "red_offset", Min: -0.1, Max: 0.1, Default: 0.01,
		Description: "position offset for the red channel",
	}
	paramGreenOffset = param.Parameter{
		Name: "green_offset", Min: -0.1, Max: 0.1, Default: 0,
		Description: "position offset for the green channel",
	}
	paramBlueOffset = param.Parameter{
		Name: "blue_offset", Min: -0.1, Max: 0.1, Default: -0.01,
		Description: "position offset for the blue channel",
	}
	paramDispersion = param.Parameter{
		Name: "dispersion", Min: 0, Max: 1, Default: 0.5,
		Description: "scales how far the channels spread apart",
	}
	paramPrismAngle = param.Parameter{
		Name: "prism_angle", Min: 0, Max: 45, Default: 15,
		Description: "light dispersion angle in degrees",
	}
)

func (chromaticBlender) Name() string  { return "chromatic" }
func (chromaticBlender) Title() string { return "Chromatic" }
func (chromaticBlender) Description() string {
	return "per-channel position offsets for prismatic aberration effects"
}
func (chromaticBlender) Params() []param.Parameter {
	return []param.Parameter{paramRedOffset, paramGreenOffset, paramBlueOffset, paramDispersion, paramPrismAngle}
}

func (b chromaticBlender) Blend(inputs []gradient.Weighted, vals param.Values) *gradient.Gradient {
	if len(inputs) == 0 {
		return merged(b.Title())
	}

	redOffset := vals.Get(paramRedOffset)
	greenOffset := vals.Get(paramGreenOffset)
	blueOffset := vals.Get(paramBlueOffset)
	dispersion := vals.Get(paramDispersion)
	prismAngle := vals.Get(paramPrismAngle) * math.Pi / 180

	// A single input still gets the aberration applied, at its own
	// stop positions.
	if len(inputs) == 1 {
		g := inputs[0].Gradient
		out := g.Clone()
		out.Stops = out.Stops[:0]
		out.Meta.Name = g.Meta.Name + " (Chromatic)"
		for _, s := range g.Stops {
			redPos, greenPos, bluePos := channelPositions(s.Position, redOffset, greenOffset, blueOffset, dispersion, prismAngle)
			out.Stops = append(out.Stops, gradient.Stop{
				Position: s.Position,
				Color: hue.RGB{
					R: g.ColorAt(redPos).R,
					G: g.ColorAt(greenPos).G,
					B: g.ColorAt(bluePos).B,
				},
			})
		}
		return out
	}

	out := merged(b.Title())
	out.Meta.Name = "Chromatic Blend"

	for _, pos := range unionPositions(inputs) {
		redPos, greenPos, bluePos := channelPositions(pos, redOffset, greenOffset, blueOffset, dispersion, prismAngle)

		var rSum, gSum, bSum, total float64
		for _, in := range inputs {
			rSum += float64(in.Gradient.ColorAt(redPos).R) * in.Weight
			gSum += float64(in.Gradient.ColorAt(greenPos).G) * in.Weight
			bSum += float64(in.Gradient.ColorAt(bluePos).B) * in.Weight
			total += in.Weight
		}
		c := hue.RGB{}
		if total > 0 {
			c = hue.New(int(rSum/total), int(gSum/total), int(bSum/total))
		}
		out.Stops = append(out.Stops, gradient.Stop{Position: pos, Color: c})
	}
	return out
}

// channelPositions computes the offset sampling position for each
// channel, bending red and blue further apart with the prism factor and
// wrapping everything back into [0,1).
func channelPositions(pos, redOff, greenOff, blueOff, dispersion, prismAngle float64) (r, g, b float64) {
	r = pos + redOff*dispersion
	g = pos + greenOff*dispersion
	b = pos + blueOff*dispersion

	prism := math.Sin(pos*math.Pi) * math.Sin(prismAngle)
	r += prism * 0.02
	b -= prism * 0.02

	return wrap01(r), wrap01(g), wrap01(b)
}

func wrap01(v float64) float64 {
	v = math.Mod(v, 1)
	if v < 0 {
		v += 1
	}
	return v
}
