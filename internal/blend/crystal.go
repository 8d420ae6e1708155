package blend

import (
	"math"

	"github.com/sableline/gradix/internal/gradient"
	"github.com/sableline/gradix/internal/param"
)

// crystalBlender simulates light refracting through crystal facets: each
// position belongs to a facet whose angle bends the sampling position of
// every input before the colors are mixed.
type crystalBlender struct{}

var (
	paramFacetSize = param.Parameter{
		Name: "facet_size", Min: 0.01, Max: 0.2, Default: 0.05,
		Description: "size of each crystal facet",
	}
	paramRefractionIndex = param.Parameter{
		Name: "refraction_index", Min: 1, Max: 2.5, Default: 1.5,
		Description: "how strongly the crystal bends sampling positions",
	}
	paramClarity = param.Parameter{
		Name: "clarity", Min: 0, Max: 1, Default: 0.8,
		Description: "crystal clarity; above 0.9 facets pick a single dominant color",
	}
	paramSymmetry = param.Parameter{
		Name: "symmetry", Min: 3, Max: 8, Default: 6,
		Description: "number of crystal faces",
	}
	paramInternalReflection = param.Parameter{
		Name: "internal_reflection", Min: 0, Max: 1, Default: 0.6,
		Description: "amount of internal reflection at the range boundaries",
	}
)

func (crystalBlender) Name() string  { return "crystal" }
func (crystalBlender) Title() string { return "Crystal" }
func (crystalBlender) Description() string {
	return "crystalline facet patterns with refraction and internal reflection"
}
func (crystalBlender) Params() []param.Parameter {
	return []param.Parameter{paramFacetSize, paramRefractionIndex, paramClarity, paramSymmetry, paramInternalReflection}
}

func (b crystalBlender) Blend(inputs []gradient.Weighted, vals param.Values) *gradient.Gradient {
	if len(inputs) == 0 {
		return merged(b.Title())
	}
	if len(inputs) == 1 {
		return cloneSingle(inputs[0], b.Title())
	}

	facetSize := vals.Get(paramFacetSize)
	refraction := vals.Get(paramRefractionIndex)
	clarity := vals.Get(paramClarity)
	symmetry := int(vals.Get(paramSymmetry))
	internalReflection := vals.Get(paramInternalReflection)

	out := merged(b.Title())
	out.Meta.Name = "Crystal Blend"

	for _, pos := range unionPositions(inputs) {
		facetIndex := int(pos/facetSize) % symmetry
		facetPos := math.Mod(pos, facetSize) / facetSize
		facetAngle := float64(facetIndex) * 2 * math.Pi / float64(symmetry)

		// Simplified Snell's law: the incident angle varies across the
		// facet and the refraction index bends it.
		incident := facetPos * math.Pi / 4
		refracted := math.Asin(math.Sin(incident) / refraction)

		colors := make([]weightedColor, 0, len(inputs))
		for j, in := range inputs {
			rayOffset := float64(j) * 0.1 / float64(len(inputs))
			offset := math.Sin(refracted+facetAngle) * facetSize
			samplePos := pos + offset + rayOffset

			if internalReflection > 0 {
				bounces := int(internalReflection * 3)
				for k := 0; k < bounces; k++ {
					if samplePos < 0 || samplePos > 1 {
						samplePos = 1 - math.Abs(math.Mod(samplePos, 1))
					}
				}
			}
			if samplePos < 0 {
				samplePos = 0
			}
			if samplePos > 1 {
				samplePos = 1
			}

			colors = append(colors, weightedColor{
				color:  in.Gradient.ColorAt(samplePos),
				weight: in.Weight,
			})
		}

		c := colors[0].color
		if clarity > 0.9 {
			// Sharp facets: the heaviest input wins outright.
			best := colors[0]
			for _, wc := range colors[1:] {
				if wc.weight > best.weight {
					best = wc
				}
			}
			c = best.color
		} else {
			// Murkier crystal: blend, with clarity pulling the weights
			// toward equal contribution.
			blended := make([]weightedColor, len(colors))
			for i, wc := range colors {
				blended[i] = weightedColor{
					color:  wc.color,
					weight: wc.weight * (clarity + (1-clarity)*0.5),
				}
			}
			c = averageColors(blended)
		}

		out.Stops = append(out.Stops, gradient.Stop{Position: pos, Color: c})
	}
	return out
}
