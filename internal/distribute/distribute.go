// Package distribute generates color stop positions along [0,1] using
// mathematical patterns: even spacing, power curves, and several wave
// and cycloid families.
package distribute

import (
	"fmt"
	"sort"

	"github.com/sableline/gradix/internal/param"
)

// Pattern generates stop positions. Implementations are stateless; all
// tuning comes through param.Values.
type Pattern interface {
	// Name is the registry key.
	Name() string
	// Title is the human-readable pattern name.
	Title() string
	// Description is a one-line summary for help output.
	Description() string
	// Params declares the pattern's tunable parameters.
	Params() []param.Parameter

	// Distribute returns numStops positions in [0,1], sorted, with the
	// first and last pinned to 0 and 1 when there are at least two.
	// original supplies the current positions to transform; when nil or
	// of the wrong length, even spacing is assumed.
	Distribute(numStops int, original []float64, vals param.Values) []float64
}

// Registry is a fixed lookup table of the available patterns.
type Registry struct {
	byName map[string]Pattern
	order  []string
}

// NewRegistry builds the full pattern set.
func NewRegistry() *Registry {
	r := &Registry{byName: map[string]Pattern{}}
	for _, p := range []Pattern{
		evenPattern{},
		powerCurvePattern{},
		sineWavePattern{},
		harmonicWavePattern{},
		spirographPattern{},
		complexWavePattern{},
		goldenRatioPattern{},
	} {
		r.byName[p.Name()] = p
		r.order = append(r.order, p.Name())
	}
	return r
}

// Get looks up a pattern by registry key.
func (r *Registry) Get(name string) (Pattern, error) {
	p, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("unknown distribution %q (have %v)", name, r.order)
	}
	return p, nil
}

// Names lists the registry keys in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// evenSpacing is the fallback layout: i/(n-1) for n stops.
func evenSpacing(n int) []float64 {
	if n <= 1 {
		return []float64{0.5}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) / float64(n-1)
	}
	return out
}

// originalsOrEven validates caller-supplied positions against the
// wanted count and falls back to even spacing on mismatch.
func originalsOrEven(n int, original []float64) []float64 {
	if len(original) != n {
		return evenSpacing(n)
	}
	return append([]float64(nil), original...)
}

// finalize clamps to [0,1], sorts, and pins the endpoints to 0 and 1
// when at least two positions exist.
func finalize(positions []float64) []float64 {
	for i, p := range positions {
		positions[i] = clamp01(p)
	}
	sort.Float64s(positions)
	if len(positions) >= 2 {
		positions[0] = 0
		positions[len(positions)-1] = 1
	}
	return positions
}

// smoothstep is the 3t²-2t³ easing used for strength blending.
func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
