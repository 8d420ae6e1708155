package blend

import (
	"math"

	"github.com/sableline/gradix/internal/gradient"
	"github.com/sableline/gradix/internal/hue"
	"github.com/sableline/gradix/internal/param"
)

// crossfadeBlender lays the inputs out sequentially, each taking a share
// of the range proportional to its weight, and fades between neighbors
// inside an overlap window centered on each boundary.
type crossfadeBlender struct{}

var paramOverlap = param.Parameter{
	Name: "overlap", Min: 0, Max: 1, Default: 0.3,
	Description: "how much neighboring gradients overlap at their boundary",
}

func (crossfadeBlender) Name() string  { return "crossfade" }
func (crossfadeBlender) Title() string { return "Crossfade" }
func (crossfadeBlender) Description() string {
	return "sequential transition between gradients, like an audio crossfade"
}
func (crossfadeBlender) Params() []param.Parameter {
	return []param.Parameter{paramUseWeights, paramOverlap}
}

type overlapRegion struct {
	start, end float64
	left       int
	right      int
}

func (b crossfadeBlender) Blend(inputs []gradient.Weighted, vals param.Values) *gradient.Gradient {
	if len(inputs) == 0 {
		return merged(b.Title())
	}
	if len(inputs) == 1 {
		return cloneSingle(inputs[0], b.Title())
	}

	useWeights := boolParam(vals, paramUseWeights)
	overlap := vals.Get(paramOverlap)

	if useWeights {
		inputs = positiveWeights(inputs)
	}
	if len(inputs) == 0 {
		return merged(b.Title())
	}
	if len(inputs) == 1 {
		return cloneSingle(inputs[0], b.Title())
	}

	sizes := segmentSizes(inputs, useWeights)
	bounds := cumulative(sizes)

	// Overlap windows straddle each interior boundary, sized by the
	// smaller neighboring segment.
	var regions []overlapRegion
	for i := 0; i < len(inputs)-1; i++ {
		boundary := bounds[i+1]
		size := overlap * math.Min(sizes[i], sizes[i+1])
		start := math.Max(0, boundary-size/2)
		end := math.Min(1, boundary+size/2)
		if start < end {
			regions = append(regions, overlapRegion{start: start, end: end, left: i, right: i + 1})
		}
	}

	out := merged(b.Title())
	var lastPos float64
	for _, pos := range unionPositions(inputs) {
		c := crossfadeColorAt(inputs, pos, bounds, regions)

		// Collapse positions closer than a thousandth; last color wins.
		if len(out.Stops) > 0 && math.Abs(pos-lastPos) <= 0.001 {
			out.Stops[len(out.Stops)-1].Color = c
			continue
		}
		out.Stops = append(out.Stops, gradient.Stop{Position: pos, Color: c})
		lastPos = pos
	}
	return out
}

func crossfadeColorAt(inputs []gradient.Weighted, pos float64, bounds []float64, regions []overlapRegion) hue.RGB {
	for _, r := range regions {
		if pos < r.start || pos > r.end {
			continue
		}
		t := 0.5
		if r.end > r.start {
			t = (pos - r.start) / (r.end - r.start)
		}
		c1 := inputs[r.left].Gradient.ColorAt(localPosition(pos, bounds, r.left))
		c2 := inputs[r.right].Gradient.ColorAt(localPosition(pos, bounds, r.right))
		return hue.New(
			int(float64(c1.R)*(1-t)+float64(c2.R)*t),
			int(float64(c1.G)*(1-t)+float64(c2.G)*t),
			int(float64(c1.B)*(1-t)+float64(c2.B)*t),
		)
	}

	seg := segmentIndex(pos, bounds, len(inputs))
	return inputs[seg].Gradient.ColorAt(localPosition(pos, bounds, seg))
}

// segmentSizes allocates each input's share of [0,1]. With weights the
// shares are proportional; an all-zero weight sum degrades to equal
// shares instead of dividing by zero.
func segmentSizes(inputs []gradient.Weighted, useWeights bool) []float64 {
	n := len(inputs)
	sizes := make([]float64, n)
	if useWeights {
		total := 0.0
		for _, in := range inputs {
			total += in.Weight
		}
		if total > 0 {
			for i, in := range inputs {
				sizes[i] = in.Weight / total
			}
			return sizes
		}
	}
	for i := range sizes {
		sizes[i] = 1.0 / float64(n)
	}
	return sizes
}

func cumulative(sizes []float64) []float64 {
	bounds := make([]float64, len(sizes)+1)
	for i, s := range sizes {
		bounds[i+1] = bounds[i] + s
	}
	return bounds
}

func segmentIndex(pos float64, bounds []float64, n int) int {
	for i := 0; i < len(bounds)-1; i++ {
		if bounds[i] <= pos && pos < bounds[i+1] {
			return i
		}
	}
	if pos >= bounds[len(bounds)-1] {
		return n - 1
	}
	return 0
}

// localPosition maps a global position into segment i's own [0,1].
func localPosition(pos float64, bounds []float64, i int) float64 {
	start, end := bounds[i], bounds[i+1]
	if end <= start {
		return 0.5
	}
	local := (pos - start) / (end - start)
	if local < 0 {
		return 0
	}
	if local > 1 {
		return 1
	}
	return local
}
