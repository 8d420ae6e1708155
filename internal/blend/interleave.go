package blend

import (
	"math"
	"sort"

	"github.com/sableline/gradix/internal/gradient"
	"github.com/sableline/gradix/internal/hue"
	"github.com/sableline/gradix/internal/param"
)

// interleaveBlender keeps every input stop at its original position.
// Stops that land within tolerance of each other collapse to one, won
// by the heaviest gradient, unless preserve_all spreads them out.
type interleaveBlender struct{}

var (
	paramTolerance = param.Parameter{
		Name: "tolerance", Min: 0, Max: 0.1, Default: 0.001,
		Description: "positions within this distance count as the same stop",
	}
	paramPreserveAll = param.Parameter{
		Name: "preserve_all", Min: 0, Max: 1, Default: 0,
		Description: "keep every coincident stop by offsetting positions (0=no, 1=yes)",
	}
	paramMinSpacing = param.Parameter{
		Name: "min_spacing", Min: 0, Max: 0.1, Default: 0.005,
		Description: "minimum distance enforced between result stops",
	}
)

func (interleaveBlender) Name() string  { return "interleave" }
func (interleaveBlender) Title() string { return "Interleave" }
func (interleaveBlender) Description() string {
	return "keeps all stops from all gradients at their original positions"
}
func (interleaveBlender) Params() []param.Parameter {
	return []param.Parameter{paramUseWeights, paramTolerance, paramPreserveAll, paramMinSpacing}
}

func (b interleaveBlender) Blend(inputs []gradient.Weighted, vals param.Values) *gradient.Gradient {
	if len(inputs) == 0 {
		return merged(b.Title())
	}
	if len(inputs) == 1 {
		return cloneSingle(inputs[0], b.Title())
	}

	useWeights := boolParam(vals, paramUseWeights)
	tolerance := vals.Get(paramTolerance)
	preserveAll := boolParam(vals, paramPreserveAll)
	minSpacing := vals.Get(paramMinSpacing)

	type weightedStop struct {
		pos    float64
		color  hue.RGB
		weight float64
	}

	var all []weightedStop
	for _, in := range inputs {
		if useWeights && in.Weight <= 0 {
			continue
		}
		w := 1.0
		if useWeights {
			w = in.Weight
		}
		for _, s := range in.Gradient.Stops {
			all = append(all, weightedStop{pos: s.Position, color: s.Color, weight: w})
		}
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].pos < all[j].pos })

	// Group stops whose positions fall within tolerance of each other.
	var groups [][]weightedStop
	var current []weightedStop
	currentPos := -1.0
	for _, ws := range all {
		if currentPos < 0 || math.Abs(ws.pos-currentPos) <= tolerance {
			current = append(current, ws)
		} else {
			groups = append(groups, current)
			current = []weightedStop{ws}
		}
		currentPos = ws.pos
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}

	type flatStop struct {
		pos   float64
		color hue.RGB
	}
	var processed []flatStop
	for _, group := range groups {
		avg := 0.0
		for _, ws := range group {
			avg += ws.pos
		}
		avg /= float64(len(group))

		if preserveAll {
			for i, ws := range group {
				pos := avg + float64(i)*tolerance
				if pos > 1 {
					pos = 1
				}
				processed = append(processed, flatStop{pos: pos, color: ws.color})
			}
			continue
		}

		// With weights the heaviest gradient's color wins; without,
		// the last stop at the position does.
		winner := group[len(group)-1]
		if useWeights {
			winner = group[0]
			for _, ws := range group[1:] {
				if ws.weight > winner.weight {
					winner = ws
				}
			}
		}
		processed = append(processed, flatStop{pos: avg, color: winner.color})
	}

	// Push stops apart so no two sit closer than the minimum spacing.
	if minSpacing > 0 && len(processed) > 1 {
		sort.SliceStable(processed, func(i, j int) bool { return processed[i].pos < processed[j].pos })
		adjusted := processed[:1]
		for _, fs := range processed[1:] {
			prev := adjusted[len(adjusted)-1].pos
			if fs.pos-prev < minSpacing {
				fs.pos = math.Min(prev+minSpacing, 1)
			}
			adjusted = append(adjusted, fs)
		}
		processed = adjusted
	}

	out := merged(b.Title())
	for _, fs := range processed {
		if len(out.Stops) >= gradient.MaxStops {
			break
		}
		out.Stops = append(out.Stops, gradient.Stop{Position: fs.pos, Color: fs.color})
	}
	return out
}
