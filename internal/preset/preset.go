// Package preset provides built-in gradient presets and a YAML-backed
// library for user-defined ones.
package preset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sableline/gradix/internal/gradient"
	"github.com/sableline/gradix/internal/hue"
)

// Library holds the built-in presets plus any custom presets the user
// has saved. Built-ins cannot be overwritten or removed.
type Library struct {
	builtin map[string]*gradient.Gradient
	custom  map[string]*gradient.Gradient
}

// NewLibrary seeds the built-in preset set.
func NewLibrary() *Library {
	return &Library{
		builtin: map[string]*gradient.Gradient{
			"default":   gradient.Default(),
			"rainbow":   rainbow(),
			"sunset":    sunset(),
			"fire":      fire(),
			"ocean":     ocean(),
			"grayscale": grayscale(),
		},
		custom: map[string]*gradient.Gradient{},
	}
}

// Get returns a clone of the named preset. Names are case-insensitive;
// built-ins shadow custom presets of the same name. An unknown name
// falls back to the default gradient rather than erroring, matching how
// preset lookups behave everywhere else in the tool.
func (l *Library) Get(name string) *gradient.Gradient {
	key := strings.ToLower(name)
	if g, ok := l.builtin[key]; ok {
		return g.Clone()
	}
	if g, ok := l.custom[key]; ok {
		return g.Clone()
	}
	return gradient.Default()
}

// Has reports whether a preset with the given name exists.
func (l *Library) Has(name string) bool {
	key := strings.ToLower(name)
	_, inBuiltin := l.builtin[key]
	_, inCustom := l.custom[key]
	return inBuiltin || inCustom
}

// Add stores a custom preset, truncating to the stop limit. Built-in
// names are reserved.
func (l *Library) Add(name string, g *gradient.Gradient) error {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return fmt.Errorf("preset name must not be empty")
	}
	if _, ok := l.builtin[key]; ok {
		return fmt.Errorf("preset %q is built in", key)
	}
	stored := g.Clone()
	if len(stored.Stops) > gradient.MaxStops {
		stored.Stops = stored.Stops[:gradient.MaxStops]
	}
	l.custom[key] = stored
	return nil
}

// Remove deletes a custom preset.
func (l *Library) Remove(name string) error {
	key := strings.ToLower(name)
	if _, ok := l.builtin[key]; ok {
		return fmt.Errorf("preset %q is built in", key)
	}
	if _, ok := l.custom[key]; !ok {
		return fmt.Errorf("unknown preset %q", key)
	}
	delete(l.custom, key)
	return nil
}

// Names lists every preset name, built-ins first, each group sorted.
func (l *Library) Names() []string {
	builtins := make([]string, 0, len(l.builtin))
	for name := range l.builtin {
		builtins = append(builtins, name)
	}
	sort.Strings(builtins)

	customs := make([]string, 0, len(l.custom))
	for name := range l.custom {
		customs = append(customs, name)
	}
	sort.Strings(customs)

	return append(builtins, customs...)
}

type entry struct {
	pos float64
	c   hue.RGB
}

func stops(pairs ...entry) []gradient.Stop {
	out := make([]gradient.Stop, len(pairs))
	for i, p := range pairs {
		out[i] = gradient.Stop{Position: p.pos, Color: p.c}
	}
	return out
}

func rainbow() *gradient.Gradient {
	return gradient.New("Rainbow", stops(
		entry{0, hue.RGB{R: 255, G: 0, B: 0}},
		entry{0.125, hue.RGB{R: 255, G: 127, B: 0}},
		entry{0.25, hue.RGB{R: 255, G: 255, B: 0}},
		entry{0.375, hue.RGB{R: 127, G: 255, B: 0}},
		entry{0.5, hue.RGB{R: 0, G: 255, B: 0}},
		entry{0.625, hue.RGB{R: 0, G: 255, B: 127}},
		entry{0.75, hue.RGB{R: 0, G: 127, B: 255}},
		entry{0.875, hue.RGB{R: 0, G: 0, B: 255}},
		entry{0.9375, hue.RGB{R: 127, G: 0, B: 255}},
		entry{1, hue.RGB{R: 255, G: 0, B: 255}},
	))
}

func sunset() *gradient.Gradient {
	return gradient.New("Sunset", stops(
		entry{0, hue.RGB{R: 15, G: 10, B: 39}},
		entry{0.2, hue.RGB{R: 44, G: 33, B: 100}},
		entry{0.4, hue.RGB{R: 130, G: 55, B: 150}},
		entry{0.5, hue.RGB{R: 191, G: 64, B: 95}},
		entry{0.6, hue.RGB{R: 255, G: 93, B: 35}},
		entry{0.7, hue.RGB{R: 254, G: 192, B: 81}},
		entry{0.8, hue.RGB{R: 255, G: 229, B: 119}},
		entry{0.9, hue.RGB{R: 255, G: 247, B: 229}},
		entry{1, hue.RGB{R: 200, G: 255, B: 255}},
	))
}

func fire() *gradient.Gradient {
	return gradient.New("Fire", stops(
		entry{0, hue.RGB{R: 7, G: 5, B: 9}},
		entry{0.1, hue.RGB{R: 31, G: 7, B: 1}},
		entry{0.25, hue.RGB{R: 80, G: 11, B: 0}},
		entry{0.4, hue.RGB{R: 142, G: 27, B: 0}},
		entry{0.5, hue.RGB{R: 204, G: 47, B: 0}},
		entry{0.6, hue.RGB{R: 255, G: 91, B: 0}},
		entry{0.7, hue.RGB{R: 255, G: 135, B: 0}},
		entry{0.8, hue.RGB{R: 255, G: 180, B: 0}},
		entry{0.9, hue.RGB{R: 255, G: 220, B: 0}},
		entry{1, hue.RGB{R: 255, G: 255, B: 224}},
	))
}

func ocean() *gradient.Gradient {
	return gradient.New("Ocean", stops(
		entry{0, hue.RGB{R: 0, G: 5, B: 30}},
		entry{0.1, hue.RGB{R: 0, G: 10, B: 50}},
		entry{0.2, hue.RGB{R: 0, G: 20, B: 80}},
		entry{0.3, hue.RGB{R: 0, G: 30, B: 100}},
		entry{0.4, hue.RGB{R: 0, G: 40, B: 120}},
		entry{0.5, hue.RGB{R: 0, G: 60, B: 153}},
		entry{0.6, hue.RGB{R: 0, G: 85, B: 180}},
		entry{0.7, hue.RGB{R: 0, G: 120, B: 200}},
		entry{0.8, hue.RGB{R: 0, G: 160, B: 215}},
		entry{0.9, hue.RGB{R: 42, G: 200, B: 232}},
		entry{1, hue.RGB{R: 110, G: 230, B: 244}},
	))
}

func grayscale() *gradient.Gradient {
	out := make([]gradient.Stop, gradient.DefaultStops)
	for i := range out {
		position := float64(i) / float64(gradient.DefaultStops-1)
		value := int(255 * position)
		out[i] = gradient.Stop{Position: position, Color: hue.New(value, value, value)}
	}
	return gradient.New("Grayscale", out)
}
