package gradient

import (
	"math"

	"github.com/sableline/gradix/internal/hue"
)

// SeamlessOptions controls wraparound blending so a gradient tiles
// cleanly when repeated.
type SeamlessOptions struct {
	// Progressive blends colors gradually inside a region near the ends
	// instead of only replacing the last stop's color.
	Progressive bool
	// BlendRegion is the fraction of the gradient near each end used for
	// progressive blending. Clamped to [0, 0.5].
	BlendRegion float64
	// IntensityFalloff scales how strongly progressive blending pulls
	// toward the opposite end. Clamped to [0, 1].
	IntensityFalloff float64
}

// DefaultSeamlessOptions matches the usual starting point: basic mode,
// 10% blend region, 0.7 falloff.
func DefaultSeamlessOptions() SeamlessOptions {
	return SeamlessOptions{BlendRegion: 0.1, IntensityFalloff: 0.7}
}

func (o SeamlessOptions) normalized() SeamlessOptions {
	if o.BlendRegion < 0 {
		o.BlendRegion = 0
	}
	if o.BlendRegion > 0.5 {
		o.BlendRegion = 0.5
	}
	if o.IntensityFalloff < 0 {
		o.IntensityFalloff = 0
	}
	if o.IntensityFalloff > 1 {
		o.IntensityFalloff = 1
	}
	return o
}

// Seamless returns a copy where the last stop takes the first stop's
// color, so the gradient's two ends match. First and last follow sorted
// position, not insertion order, and every stop sharing the last
// position is updated. Gradients with fewer than two stops come back
// unchanged.
func (g *Gradient) Seamless() *Gradient {
	out := g.Clone()
	if len(out.Stops) < 2 {
		return out
	}
	out.Meta.Seamless = true

	sorted := out.Sorted()
	first := sorted[0].Color
	lastPos := sorted[len(sorted)-1].Position

	const eps = 1e-9
	for i := range out.Stops {
		if math.Abs(out.Stops[i].Position-lastPos) < eps {
			out.Stops[i].Color = first
		}
	}
	return out
}

// SeamlessColorAt samples the gradient with wraparound blending applied.
// In basic mode the last stop reads as the first stop's color. In
// progressive mode, positions inside the blend region additionally pull
// toward the opposite end's color, fading with distance from the edge.
func (g *Gradient) SeamlessColorAt(position float64, opts SeamlessOptions) hue.RGB {
	opts = opts.normalized()
	position = clamp01(position)

	base := g.ColorAt(position)
	if len(g.Stops) < 2 {
		return base
	}

	sorted := g.Sorted()
	first := sorted[0].Color
	last := sorted[len(sorted)-1].Color
	lastPos := sorted[len(sorted)-1].Position

	const eps = 1e-6
	if position > lastPos-eps && position < lastPos+eps {
		return first
	}

	if !opts.Progressive || opts.BlendRegion == 0 {
		return base
	}

	// End region pulls fully toward the first color; the start region
	// gets a much weaker pull toward the last color so the wrap reads
	// as continuous without washing out the opening stops.
	if position > 1-opts.BlendRegion {
		intensity := (position - (1 - opts.BlendRegion)) / opts.BlendRegion
		return hue.Blend(base, first, intensity*opts.IntensityFalloff)
	}
	if position < opts.BlendRegion {
		intensity := (opts.BlendRegion - position) / opts.BlendRegion * 0.3
		return hue.Blend(base, last, intensity*opts.IntensityFalloff*0.3)
	}
	return base
}
