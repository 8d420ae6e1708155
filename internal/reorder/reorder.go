// Package reorder rearranges a gradient's colors across its existing
// stop positions. Positions never move; only the color assignments are
// permuted, so the gradient's rhythm survives while its color flow
// changes.
package reorder

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/sableline/gradix/internal/gradient"
	"github.com/sableline/gradix/internal/hue"
)

// Metric produces one sort key per stop. Keys receives the whole stop
// list so metrics that need a pre-pass (average gray, dominant hue) can
// compute it first.
type Metric interface {
	Name() string
	Description() string
	Keys(stops []gradient.Stop) []float64
}

// Options tunes how a reorder is applied.
type Options struct {
	// Reverse flips the sort direction.
	Reverse bool
	// KeepEndpoints keeps the first and last colors where they are and
	// reorders only what lies between.
	KeepEndpoints bool
	// Strength in [0,1] sweeps the reordering in from the left: 0 keeps
	// the original colors, 1 applies the full reorder, and intermediate
	// values replace a growing prefix of the color sequence.
	Strength float64
}

// DefaultOptions applies a full-strength reorder with endpoints pinned.
func DefaultOptions() Options {
	return Options{KeepEndpoints: true, Strength: 1}
}

// Apply reorders the colors of stops by the metric's keys. The stop
// positions in the result are identical to the input's.
func Apply(stops []gradient.Stop, m Metric, opts Options) []gradient.Stop {
	if len(stops) <= 1 {
		return append([]gradient.Stop(nil), stops...)
	}

	keys := m.Keys(stops)
	if len(keys) != len(stops) {
		return append([]gradient.Stop(nil), stops...)
	}

	order := make([]int, len(stops))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		if opts.Reverse {
			return keys[order[a]] > keys[order[b]]
		}
		return keys[order[a]] < keys[order[b]]
	})

	sorted := make([]hue.RGB, len(stops))
	for i, idx := range order {
		sorted[i] = stops[idx].Color
	}

	final := sorted
	if opts.KeepEndpoints && len(sorted) >= 2 {
		first := stops[0].Color
		last := stops[len(stops)-1].Color
		middle := removeFirst(sorted, first)
		if last != first {
			middle = removeFirst(middle, last)
		}
		final = make([]hue.RGB, 0, len(stops))
		final = append(final, first)
		final = append(final, middle...)
		final = append(final, last)
		final = trimOrPad(final, len(stops), last)
	}

	target := withColors(stops, final)
	return sweep(stops, target, opts.Strength)
}

// Shuffle randomly permutes the colors across the existing positions
// using the given seed, so runs are reproducible.
func Shuffle(stops []gradient.Stop, seed int64, opts Options) []gradient.Stop {
	if len(stops) <= 1 {
		return append([]gradient.Stop(nil), stops...)
	}

	rng := rand.New(rand.NewSource(seed))
	colors := make([]hue.RGB, len(stops))
	for i, s := range stops {
		colors[i] = s.Color
	}

	if opts.KeepEndpoints && len(colors) >= 2 {
		middle := colors[1 : len(colors)-1]
		rng.Shuffle(len(middle), func(i, j int) {
			middle[i], middle[j] = middle[j], middle[i]
		})
	} else {
		rng.Shuffle(len(colors), func(i, j int) {
			colors[i], colors[j] = colors[j], colors[i]
		})
	}

	if opts.Reverse {
		for i, j := 0, len(colors)-1; i < j; i, j = i+1, j-1 {
			colors[i], colors[j] = colors[j], colors[i]
		}
	}

	return withColors(stops, colors)
}

// sweep blends two color sequences over the same positions. Low
// strength keeps the original, high strength takes the target, and the
// middle replaces a prefix sized by the eased strength so the change
// reads as a left-to-right wave.
func sweep(original, target []gradient.Stop, strength float64) []gradient.Stop {
	if strength < 0 {
		strength = 0
	}
	if strength > 1 {
		strength = 1
	}
	switch {
	case strength < 0.1:
		return append([]gradient.Stop(nil), original...)
	case strength > 0.9:
		return append([]gradient.Stop(nil), target...)
	}

	eased := strength * strength * (3 - 2*strength)
	split := int(float64(len(original)) * eased)

	out := make([]gradient.Stop, len(original))
	for i := range original {
		out[i] = original[i]
		if i < split {
			out[i].Color = target[i].Color
		}
	}
	return out
}

func withColors(stops []gradient.Stop, colors []hue.RGB) []gradient.Stop {
	out := make([]gradient.Stop, len(stops))
	for i, s := range stops {
		out[i] = s
		if i < len(colors) {
			out[i].Color = colors[i]
		}
	}
	return out
}

func removeFirst(colors []hue.RGB, c hue.RGB) []hue.RGB {
	for i, v := range colors {
		if v == c {
			out := make([]hue.RGB, 0, len(colors)-1)
			out = append(out, colors[:i]...)
			return append(out, colors[i+1:]...)
		}
	}
	return colors
}

func trimOrPad(colors []hue.RGB, n int, pad hue.RGB) []hue.RGB {
	if len(colors) > n {
		return colors[:n]
	}
	for len(colors) < n {
		colors = append(colors, pad)
	}
	return colors
}

// Registry is a fixed lookup table of the available metrics.
type Registry struct {
	byName map[string]Metric
	order  []string
}

// NewRegistry builds the full metric set.
func NewRegistry() *Registry {
	r := &Registry{byName: map[string]Metric{}}
	for _, m := range []Metric{
		brightnessMetric{},
		luminanceMetric{},
		hueMetric{},
		saturationMetric{},
		channelMetric{name: "red_channel", title: "Red", index: 0},
		channelMetric{name: "green_channel", title: "Green", index: 1},
		channelMetric{name: "blue_channel", title: "Blue", index: 2},
		warmCoolMetric{},
		chromaMetric{},
		contrastMetric{},
		complementaryMetric{},
		DistanceFrom(hue.RGB{R: 128, G: 128, B: 128}),
		simpleBrightnessMetric{},
	} {
		r.byName[m.Name()] = m
		r.order = append(r.order, m.Name())
	}
	return r
}

// Get looks up a metric by registry key.
func (r *Registry) Get(name string) (Metric, error) {
	m, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("unknown reorder metric %q (have %v)", name, r.order)
	}
	return m, nil
}

// Names lists the registry keys in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}
