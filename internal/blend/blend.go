// Package blend merges multiple weighted gradients into one using a set
// of named algorithms, from straightforward per-position color mixing to
// wave interference and layer compositing effects.
package blend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sableline/gradix/internal/gradient"
	"github.com/sableline/gradix/internal/hue"
	"github.com/sableline/gradix/internal/param"
)

// Blender merges weighted gradients. Implementations are stateless; all
// tuning arrives through param.Values. Every Blender follows the same
// contract: zero inputs yield an empty named gradient, one input yields
// a renamed clone (chromatic instead applies its aberration to the one
// input), and two or more run the algorithm proper.
type Blender interface {
	// Name is the registry key.
	Name() string
	// Title is the human-readable method name.
	Title() string
	// Description is a one-line summary for help output.
	Description() string
	// Params declares the method's tunable parameters.
	Params() []param.Parameter
	// Blend merges the inputs. vals has already been resolved against
	// Params, so every declared parameter is present and clamped.
	Blend(inputs []gradient.Weighted, vals param.Values) *gradient.Gradient
}

// Registry is a fixed lookup table of the available blend methods.
type Registry struct {
	byName map[string]Blender
	order  []string
}

// NewRegistry builds the full method set.
func NewRegistry() *Registry {
	r := &Registry{byName: map[string]Blender{}}
	for _, b := range []Blender{
		mixBlender{},
		interleaveBlender{},
		crossfadeBlender{},
		stackBlender{},
		waveformBlender{},
		crystalBlender{},
		layerBlender{},
		chromaticBlender{},
		memoryBlender{},
	} {
		r.byName[b.Name()] = b
		r.order = append(r.order, b.Name())
	}
	return r
}

// Get looks up a method by registry key, ignoring case.
func (r *Registry) Get(name string) (Blender, error) {
	b, ok := r.byName[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown blend method %q (have %v)", name, r.order)
	}
	return b, nil
}

// Names lists the registry keys in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Blend resolves parameters, runs the named method, and recovers from
// any panic inside an algorithm. On panic the first input comes back
// unmodified along with the error, so a bad parameter combination never
// destroys the caller's gradient.
func (r *Registry) Blend(name string, inputs []gradient.Weighted, vals param.Values) (out *gradient.Gradient, err error) {
	b, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	resolved, err := param.Resolve(b.Params(), vals)
	if err != nil {
		return nil, fmt.Errorf("blend %q: %w", name, err)
	}

	defer func() {
		if rec := recover(); rec != nil {
			out = fallbackResult(b, inputs)
			err = fmt.Errorf("blend %q panicked: %v", name, rec)
		}
	}()
	return b.Blend(inputs, resolved), nil
}

func fallbackResult(b Blender, inputs []gradient.Weighted) *gradient.Gradient {
	if len(inputs) > 0 && inputs[0].Gradient != nil {
		return inputs[0].Gradient.Clone()
	}
	return merged(b.Title())
}

// merged creates the empty result gradient every method starts from.
func merged(title string) *gradient.Gradient {
	g := &gradient.Gradient{}
	g.Meta.Name = fmt.Sprintf("Merged Gradient (%s)", title)
	return g
}

// cloneSingle is the shared one-input shortcut.
func cloneSingle(in gradient.Weighted, title string) *gradient.Gradient {
	out := in.Gradient.Clone()
	out.Meta.Name = fmt.Sprintf("Merged Gradient (%s)", title)
	return out
}

// positiveWeights drops zero- and negative-weight inputs.
func positiveWeights(inputs []gradient.Weighted) []gradient.Weighted {
	out := make([]gradient.Weighted, 0, len(inputs))
	for _, in := range inputs {
		if in.Weight > 0 {
			out = append(out, in)
		}
	}
	return out
}

// unionPositions collects every explicit stop position across the
// inputs, deduplicated and sorted. Blend methods sample at these
// positions rather than resampling uniformly, so the inputs' structure
// carries through to the result.
func unionPositions(inputs []gradient.Weighted) []float64 {
	seen := map[float64]struct{}{}
	for _, in := range inputs {
		for _, s := range in.Gradient.Stops {
			seen[s.Position] = struct{}{}
		}
	}
	out := make([]float64, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Float64s(out)
	return out
}

// weightedColor holds one sampled color and its mixing weight.
type weightedColor struct {
	color  hue.RGB
	weight float64
}

// averageColors is the weighted RGB mean with a zero-sum guard: when
// every weight is zero the first color wins, and with no colors at all
// the result is black.
func averageColors(colors []weightedColor) hue.RGB {
	if len(colors) == 0 {
		return hue.RGB{}
	}
	var rSum, gSum, bSum, total float64
	for _, wc := range colors {
		w := wc.weight
		if w < 0 {
			w = 0
		}
		rSum += float64(wc.color.R) * w
		gSum += float64(wc.color.G) * w
		bSum += float64(wc.color.B) * w
		total += w
	}
	if total <= 0 {
		return colors[0].color
	}
	return hue.New(int(rSum/total), int(gSum/total), int(bSum/total))
}

// boolParam reads an on/off parameter stored as 0 or 1.
func boolParam(vals param.Values, p param.Parameter) bool {
	return vals.Get(p) >= 0.5
}
