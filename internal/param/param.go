// Package param defines tunable numeric parameters with declared ranges
// and the value sets users supply for them.
package param

import "fmt"

// Parameter declares a single tunable knob: its range, default, and a
// short description for help text. Definitions are immutable; callers
// supply concrete values through a Values map.
type Parameter struct {
	Name        string
	Min         float64
	Max         float64
	Default     float64
	Description string
}

// Clamp forces v into the parameter's declared range.
func (p Parameter) Clamp(v float64) float64 {
	if v < p.Min {
		return p.Min
	}
	if v > p.Max {
		return p.Max
	}
	return v
}

// Values holds user-supplied parameter values keyed by parameter name.
type Values map[string]float64

// Get returns the clamped value for p, or p's default when the map has
// no entry for it.
func (v Values) Get(p Parameter) float64 {
	if v == nil {
		return p.Default
	}
	raw, ok := v[p.Name]
	if !ok {
		return p.Default
	}
	return p.Clamp(raw)
}

// Resolve looks up each named parameter in defs and returns its clamped
// value. It errors on names that match no definition, so typos surface
// instead of silently falling back to defaults.
func Resolve(defs []Parameter, vals Values) (Values, error) {
	byName := make(map[string]Parameter, len(defs))
	for _, d := range defs {
		byName[d.Name] = d
	}
	out := make(Values, len(defs))
	for _, d := range defs {
		out[d.Name] = d.Default
	}
	for name, raw := range vals {
		d, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown parameter %q", name)
		}
		out[name] = d.Clamp(raw)
	}
	return out, nil
}
