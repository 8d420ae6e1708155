package blend

import (
	"github.com/sableline/gradix/internal/gradient"
	"github.com/sableline/gradix/internal/hue"
	"github.com/sableline/gradix/internal/param"
)

// stackBlender compresses each input into its own slice of the range, in
// order, optionally separated by gaps. Each gradient keeps its shape but
// shrinks to fit its segment.
type stackBlender struct{}

var (
	paramGapSize = param.Parameter{
		Name: "gap_size", Min: 0, Max: 0.1, Default: 0,
		Description: "distance between neighboring segments",
	}
	paramReverseOrder = param.Parameter{
		Name: "reverse_order", Min: 0, Max: 1, Default: 0,
		Description: "stack the gradients in reverse order (0=no, 1=yes)",
	}
)

func (stackBlender) Name() string  { return "stack" }
func (stackBlender) Title() string { return "Stack" }
func (stackBlender) Description() string {
	return "places each gradient in its own weighted segment of the range"
}
func (stackBlender) Params() []param.Parameter {
	return []param.Parameter{paramUseWeights, paramGapSize, paramReverseOrder}
}

func (b stackBlender) Blend(inputs []gradient.Weighted, vals param.Values) *gradient.Gradient {
	if len(inputs) == 0 {
		return merged(b.Title())
	}
	if len(inputs) == 1 {
		return cloneSingle(inputs[0], b.Title())
	}

	useWeights := boolParam(vals, paramUseWeights)
	gapSize := vals.Get(paramGapSize)
	reverse := boolParam(vals, paramReverseOrder)

	if useWeights {
		inputs = positiveWeights(inputs)
	}
	if len(inputs) == 0 {
		return merged(b.Title())
	}
	if reverse {
		reversed := make([]gradient.Weighted, len(inputs))
		for i, in := range inputs {
			reversed[len(inputs)-1-i] = in
		}
		inputs = reversed
	}

	sizes := segmentSizes(inputs, useWeights)

	// Shrink segments to leave room for gaps; if gaps would eat the
	// whole range, cap their total at 90% first, and drop them entirely
	// when even that leaves nothing.
	numGaps := len(inputs) - 1
	totalGap := gapSize * float64(numGaps)
	if totalGap >= 1 {
		gapSize = 0.9 / float64(numGaps)
		totalGap = gapSize * float64(numGaps)
	}
	remaining := 1 - totalGap
	if remaining > 0 {
		for i := range sizes {
			sizes[i] *= remaining
		}
	} else {
		gapSize = 0
		for i := range sizes {
			sizes[i] = 1.0 / float64(len(inputs))
		}
	}

	out := merged(b.Title())
	start := 0.0
	for i, in := range inputs {
		size := sizes[i]
		end := start + size
		if end > 1 {
			end = 1
		}

		for _, s := range in.Gradient.Stops {
			if len(out.Stops) >= gradient.MaxStops {
				break
			}
			mapped := start
			if size > 0 {
				mapped = start + s.Position*(end-start)
			}
			out.Stops = append(out.Stops, gradient.NewStop(mapped, s.Color))
		}

		start = end
		if i < len(inputs)-1 {
			start += gapSize
		}
		if start > 1 {
			start = 1
		}
	}

	// A degenerate result still needs a usable ramp.
	if len(out.Stops) < 2 {
		out.Stops = []gradient.Stop{
			{Position: 0, Color: hue.RGB{}},
			{Position: 1, Color: hue.RGB{R: 255, G: 255, B: 255}},
		}
	}
	return out
}
