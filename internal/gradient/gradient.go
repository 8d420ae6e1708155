// Package gradient models color gradients as ordered lists of stops and
// provides interpolation, resampling, and analysis over them.
package gradient

import (
	"fmt"
	"math"
	"sort"

	"github.com/sableline/gradix/internal/hue"
)

const (
	// MaxStops caps how many color stops a gradient may hold.
	MaxStops = 64
	// DefaultStops is the stop count of the default grayscale ramp.
	DefaultStops = 10
)

// fallback is returned when a gradient has no stops to sample.
var fallback = hue.RGB{R: 128, G: 128, B: 128}

// Stop pairs a position in [0,1] with a color. Stops keep the order they
// were added in; sorting is explicit, never automatic, so deliberately
// shuffled gradients survive round trips.
type Stop struct {
	Position float64
	Color    hue.RGB
}

// NewStop clamps position into [0,1].
func NewStop(position float64, color hue.RGB) Stop {
	return Stop{Position: clamp01(position), Color: color}
}

// Metadata carries the descriptive fields attached to a gradient, plus
// the wraparound settings previews honor.
type Metadata struct {
	Name        string
	Author      string
	Description string
	Category    string
	// Seamless marks the gradient as tiling end to start.
	Seamless bool
	// BlendRegion is the progressive seamless blend width, 0..0.5.
	BlendRegion float64
}

// Gradient is a named sequence of color stops.
type Gradient struct {
	Meta  Metadata
	Stops []Stop
}

// New builds a gradient from the given stops, clamping positions.
func New(name string, stops []Stop) *Gradient {
	g := &Gradient{Meta: Metadata{Name: name}}
	g.Stops = make([]Stop, 0, len(stops))
	for _, s := range stops {
		g.Stops = append(g.Stops, NewStop(s.Position, s.Color))
	}
	return g
}

// Default returns the grayscale ramp gradients start out as: DefaultStops
// stops evenly spaced from black to white.
func Default() *Gradient {
	g := &Gradient{Meta: Metadata{Name: "Default"}}
	for i := 0; i < DefaultStops; i++ {
		pos := float64(i) / float64(DefaultStops-1)
		v := int(255 * pos)
		g.Stops = append(g.Stops, Stop{Position: pos, Color: hue.New(v, v, v)})
	}
	return g
}

// FromColors spreads the given colors evenly across [0,1], preserving
// their order. A single color lands at 0.5.
func FromColors(name string, colors []hue.RGB) *Gradient {
	g := &Gradient{Meta: Metadata{Name: name}}
	n := len(colors)
	for i, c := range colors {
		pos := 0.5
		if n > 1 {
			pos = float64(i) / float64(n-1)
		}
		g.Stops = append(g.Stops, Stop{Position: pos, Color: c})
	}
	return g
}

// Clone deep-copies the gradient.
func (g *Gradient) Clone() *Gradient {
	out := &Gradient{Meta: g.Meta}
	out.Stops = append([]Stop(nil), g.Stops...)
	return out
}

// AddStop appends a stop without sorting. It errors once the gradient is
// at MaxStops.
func (g *Gradient) AddStop(position float64, color hue.RGB) error {
	if len(g.Stops) >= MaxStops {
		return fmt.Errorf("gradient %q already has %d stops (max %d)", g.Meta.Name, len(g.Stops), MaxStops)
	}
	g.Stops = append(g.Stops, NewStop(position, color))
	return nil
}

// RemoveStop deletes the stop at index. The last remaining stop cannot
// be removed.
func (g *Gradient) RemoveStop(index int) error {
	if index < 0 || index >= len(g.Stops) {
		return fmt.Errorf("stop index %d out of range [0,%d)", index, len(g.Stops))
	}
	if len(g.Stops) <= 1 {
		return fmt.Errorf("gradient %q needs at least one stop", g.Meta.Name)
	}
	g.Stops = append(g.Stops[:index], g.Stops[index+1:]...)
	return nil
}

// Sort orders stops by position. Only called explicitly.
func (g *Gradient) Sort() {
	sort.SliceStable(g.Stops, func(i, j int) bool {
		return g.Stops[i].Position < g.Stops[j].Position
	})
}

// Sorted returns a position-ordered copy of the stops without touching
// the gradient itself.
func (g *Gradient) Sorted() []Stop {
	out := append([]Stop(nil), g.Stops...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Position < out[j].Position
	})
	return out
}

// DistributeEvenly respaces the stops uniformly across [0,1] keeping
// colors and order. No-op for gradients with one or zero stops.
func (g *Gradient) DistributeEvenly() {
	n := len(g.Stops)
	if n <= 1 {
		return
	}
	for i := range g.Stops {
		g.Stops[i].Position = float64(i) / float64(n-1)
	}
}

// ColorAt interpolates the color at position, clamped to [0,1]. With no
// stops it returns mid-gray; with one stop, that stop's color. Between
// stops it blends the nearest bracketing pair linearly, and coincident
// bracket positions resolve to the earlier stop rather than dividing by
// zero.
func (g *Gradient) ColorAt(position float64) hue.RGB {
	return interpolate(g.Stops, position)
}

func interpolate(stops []Stop, position float64) hue.RGB {
	position = clamp01(position)

	switch len(stops) {
	case 0:
		return fallback
	case 1:
		return stops[0].Color
	}

	var before, after *Stop
	for i := range stops {
		s := &stops[i]
		if s.Position <= position && (before == nil || s.Position > before.Position) {
			before = s
		}
		if s.Position >= position && (after == nil || s.Position < after.Position) {
			after = s
		}
	}

	if before == nil {
		return stops[0].Color
	}
	if after == nil {
		return stops[len(stops)-1].Color
	}
	if before.Position == after.Position {
		return before.Color
	}

	t := (position - before.Position) / (after.Position - before.Position)
	return hue.Blend(before.Color, after.Color, t)
}

// Samples returns n colors sampled evenly across the gradient.
func (g *Gradient) Samples(n int) []hue.RGB {
	if n <= 0 {
		return nil
	}
	out := make([]hue.RGB, n)
	if n == 1 {
		out[0] = g.ColorAt(0.5)
		return out
	}
	for i := 0; i < n; i++ {
		out[i] = g.ColorAt(float64(i) / float64(n-1))
	}
	return out
}

// Resample rebuilds the gradient with count evenly spaced stops taken
// from the interpolated curve. count is clamped to [2, MaxStops].
func (g *Gradient) Resample(count int) *Gradient {
	if count < 2 {
		count = 2
	}
	if count > MaxStops {
		count = MaxStops
	}

	out := &Gradient{Meta: g.Meta}
	out.Meta.Name = fmt.Sprintf("%s (Resampled %d)", g.Meta.Name, count)
	for i := 0; i < count; i++ {
		pos := float64(i) / float64(count-1)
		out.Stops = append(out.Stops, Stop{Position: pos, Color: g.ColorAt(pos)})
	}
	return out
}

// DominantColor pairs a color with its share of the sampled gradient.
type DominantColor struct {
	Color  hue.RGB
	Weight float64
}

// DominantColors groups 100 samples into buckets of similar colors
// (per-channel tolerance of 20) and returns the top n by frequency with
// normalized weights.
func (g *Gradient) DominantColors(n int) []DominantColor {
	if n <= 0 {
		return nil
	}
	samples := g.Samples(100)

	const tolerance = 20
	type group struct {
		color hue.RGB
		count int
	}
	var groups []group
	for _, c := range samples {
		matched := false
		for i := range groups {
			gc := groups[i].color
			if absInt(int(c.R)-int(gc.R)) <= tolerance &&
				absInt(int(c.G)-int(gc.G)) <= tolerance &&
				absInt(int(c.B)-int(gc.B)) <= tolerance {
				groups[i].count++
				matched = true
				break
			}
		}
		if !matched {
			groups = append(groups, group{color: c, count: 1})
		}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].count > groups[j].count
	})
	if len(groups) > n {
		groups = groups[:n]
	}

	total := 0
	for _, grp := range groups {
		total += grp.count
	}
	out := make([]DominantColor, 0, len(groups))
	for _, grp := range groups {
		w := 0.0
		if total > 0 {
			w = float64(grp.count) / float64(total)
		}
		out = append(out, DominantColor{Color: grp.color, Weight: w})
	}
	return out
}

// Validate reports structural problems: no stops, too many stops, or
// positions outside [0,1].
func (g *Gradient) Validate() error {
	if len(g.Stops) == 0 {
		return fmt.Errorf("gradient %q has no stops", g.Meta.Name)
	}
	if len(g.Stops) > MaxStops {
		return fmt.Errorf("gradient %q has %d stops (max %d)", g.Meta.Name, len(g.Stops), MaxStops)
	}
	for i, s := range g.Stops {
		if s.Position < 0 || s.Position > 1 || math.IsNaN(s.Position) {
			return fmt.Errorf("gradient %q stop %d has position %v outside [0,1]", g.Meta.Name, i, s.Position)
		}
	}
	return nil
}

// Weighted pairs a gradient with a non-negative mixing weight.
type Weighted struct {
	Gradient *Gradient
	Weight   float64
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

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
