package blend

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sableline/gradix/internal/gradient"
	"github.com/sableline/gradix/internal/hue"
	"github.com/sableline/gradix/internal/param"
)

func solid(name string, c hue.RGB) *gradient.Gradient {
	return gradient.New(name, []gradient.Stop{
		{Position: 0, Color: c},
		{Position: 1, Color: c},
	})
}

func weighted(g *gradient.Gradient, w float64) gradient.Weighted {
	return gradient.Weighted{Gradient: g, Weight: w}
}

func TestRegistry_Names(t *testing.T) {
	names := NewRegistry().Names()
	require.Equal(t, []string{
		"mix", "interleave", "crossfade", "stack",
		"waveform", "crystal", "layer", "chromatic", "memory",
	}, names)
}

func TestMix_TwoSolids(t *testing.T) {
	r := NewRegistry()

	out, err := r.Blend("mix", []gradient.Weighted{
		weighted(solid("red", hue.RGB{R: 255, G: 0, B: 0}), 1),
		weighted(solid("green", hue.RGB{R: 0, G: 255, B: 0}), 1),
	}, nil)
	require.NoError(t, err)
	require.Equal(t, hue.RGB{R: 127, G: 127, B: 0}, out.ColorAt(0.5))

	out, err = r.Blend("mix", []gradient.Weighted{
		weighted(solid("white", hue.RGB{R: 255, G: 255, B: 255}), 1),
		weighted(solid("black", hue.RGB{R: 0, G: 0, B: 0}), 1),
	}, nil)
	require.NoError(t, err)
	require.Equal(t, hue.RGB{R: 127, G: 127, B: 127}, out.ColorAt(0.5))
}

func TestMix_WeightsShiftResult(t *testing.T) {
	out, err := NewRegistry().Blend("mix", []gradient.Weighted{
		weighted(solid("red", hue.RGB{R: 255, G: 0, B: 0}), 3),
		weighted(solid("blue", hue.RGB{R: 0, G: 0, B: 255}), 1),
	}, nil)
	require.NoError(t, err)
	c := out.ColorAt(0.5)
	require.Greater(t, int(c.R), int(c.B))
}

func TestBlend_SingleInputClones(t *testing.T) {
	r := NewRegistry()
	in := solid("solo", hue.RGB{R: 10, G: 20, B: 30})
	for _, name := range r.Names() {
		if name == "chromatic" {
			// Chromatic applies its aberration even to one input.
			continue
		}
		out, err := r.Blend(name, []gradient.Weighted{weighted(in, 1)}, nil)
		require.NoError(t, err, name)
		require.Len(t, out.Stops, 2, name)
		require.Equal(t, in.Stops[0].Color, out.Stops[0].Color, name)
		require.Contains(t, out.Meta.Name, "Merged Gradient", name)
	}
}

func TestBlend_ZeroInputs(t *testing.T) {
	r := NewRegistry()
	for _, name := range r.Names() {
		out, err := r.Blend(name, nil, nil)
		require.NoError(t, err, name)
		require.NotNil(t, out, name)
		// Sampling an empty result falls back to mid-gray, never panics.
		require.Equal(t, hue.RGB{R: 128, G: 128, B: 128}, out.ColorAt(0.5), name)
	}
}

func TestBlend_AllZeroWeightsNeverPanics(t *testing.T) {
	r := NewRegistry()
	inputs := []gradient.Weighted{
		weighted(gradient.Default(), 0),
		weighted(solid("red", hue.RGB{R: 255, G: 0, B: 0}), 0),
	}
	for _, name := range r.Names() {
		out, err := r.Blend(name, inputs, nil)
		require.NoError(t, err, name)
		require.NotNil(t, out, name)
	}
}

func TestBlend_SamplesUnionOfPositions(t *testing.T) {
	a := gradient.New("a", []gradient.Stop{
		{Position: 0, Color: hue.RGB{R: 255, G: 0, B: 0}},
		{Position: 0.3, Color: hue.RGB{R: 0, G: 255, B: 0}},
		{Position: 1, Color: hue.RGB{R: 0, G: 0, B: 255}},
	})
	b := gradient.New("b", []gradient.Stop{
		{Position: 0, Color: hue.RGB{R: 255, G: 255, B: 255}},
		{Position: 0.7, Color: hue.RGB{R: 0, G: 0, B: 0}},
		{Position: 1, Color: hue.RGB{R: 255, G: 255, B: 255}},
	})
	out, err := NewRegistry().Blend("mix", []gradient.Weighted{weighted(a, 1), weighted(b, 1)}, nil)
	require.NoError(t, err)

	positions := make([]float64, len(out.Stops))
	for i, s := range out.Stops {
		positions[i] = s.Position
	}
	require.Equal(t, []float64{0, 0.3, 0.7, 1}, positions)
}

func TestRegistry_GetIgnoresCase(t *testing.T) {
	b, err := NewRegistry().Get("Mix")
	require.NoError(t, err)
	require.Equal(t, "mix", b.Name())
}

func TestBlend_UnknownMethod(t *testing.T) {
	_, err := NewRegistry().Blend("swirl", nil, nil)
	require.Error(t, err)
}

func TestBlend_UnknownParameter(t *testing.T) {
	_, err := NewRegistry().Blend("mix", []gradient.Weighted{
		weighted(gradient.Default(), 1),
		weighted(gradient.Default(), 1),
	}, param.Values{"no_such_knob": 1})
	require.Error(t, err)
}

func TestInterleave_PreservesPositions(t *testing.T) {
	a := gradient.New("a", []gradient.Stop{
		{Position: 0, Color: hue.RGB{R: 255, G: 0, B: 0}},
		{Position: 0.4, Color: hue.RGB{R: 0, G: 255, B: 0}},
	})
	b := gradient.New("b", []gradient.Stop{
		{Position: 0.6, Color: hue.RGB{R: 0, G: 0, B: 255}},
		{Position: 1, Color: hue.RGB{R: 255, G: 255, B: 0}},
	})
	out, err := NewRegistry().Blend("interleave", []gradient.Weighted{weighted(a, 1), weighted(b, 1)}, nil)
	require.NoError(t, err)
	require.Len(t, out.Stops, 4)
	require.Equal(t, hue.RGB{R: 0, G: 255, B: 0}, out.Stops[1].Color)
	require.Equal(t, hue.RGB{R: 0, G: 0, B: 255}, out.Stops[2].Color)
}

func TestInterleave_HeavierGradientWinsTies(t *testing.T) {
	a := gradient.New("a", []gradient.Stop{
		{Position: 0.5, Color: hue.RGB{R: 255, G: 0, B: 0}},
		{Position: 1, Color: hue.RGB{R: 255, G: 0, B: 0}},
	})
	b := gradient.New("b", []gradient.Stop{
		{Position: 0.5, Color: hue.RGB{R: 0, G: 0, B: 255}},
		{Position: 0.9, Color: hue.RGB{R: 0, G: 0, B: 255}},
	})
	out, err := NewRegistry().Blend("interleave", []gradient.Weighted{weighted(a, 1), weighted(b, 5)}, nil)
	require.NoError(t, err)
	require.Equal(t, hue.RGB{R: 0, G: 0, B: 255}, out.Stops[0].Color)
}

func TestCrossfade_EdgesKeepOwnGradients(t *testing.T) {
	red := solid("red", hue.RGB{R: 255, G: 0, B: 0})
	blue := solid("blue", hue.RGB{R: 0, G: 0, B: 255})
	out, err := NewRegistry().Blend("crossfade", []gradient.Weighted{
		weighted(red, 1), weighted(blue, 1),
	}, param.Values{"overlap": 0.2})
	require.NoError(t, err)

	require.Equal(t, hue.RGB{R: 255, G: 0, B: 0}, out.ColorAt(0))
	require.Equal(t, hue.RGB{R: 0, G: 0, B: 255}, out.ColorAt(1))
}

func TestStack_SegmentsInOrder(t *testing.T) {
	red := solid("red", hue.RGB{R: 255, G: 0, B: 0})
	blue := solid("blue", hue.RGB{R: 0, G: 0, B: 255})
	out, err := NewRegistry().Blend("stack", []gradient.Weighted{
		weighted(red, 1), weighted(blue, 1),
	}, nil)
	require.NoError(t, err)

	require.Equal(t, hue.RGB{R: 255, G: 0, B: 0}, out.ColorAt(0.1))
	require.Equal(t, hue.RGB{R: 0, G: 0, B: 255}, out.ColorAt(0.9))
}

func TestStack_ReverseOrder(t *testing.T) {
	red := solid("red", hue.RGB{R: 255, G: 0, B: 0})
	blue := solid("blue", hue.RGB{R: 0, G: 0, B: 255})
	out, err := NewRegistry().Blend("stack", []gradient.Weighted{
		weighted(red, 1), weighted(blue, 1),
	}, param.Values{"reverse_order": 1})
	require.NoError(t, err)

	require.Equal(t, hue.RGB{R: 0, G: 0, B: 255}, out.ColorAt(0.1))
	require.Equal(t, hue.RGB{R: 255, G: 0, B: 0}, out.ColorAt(0.9))
}

func TestLayer_MultiplyDarkens(t *testing.T) {
	light := solid("light", hue.RGB{R: 200, G: 200, B: 200})
	mid := solid("mid", hue.RGB{R: 128, G: 128, B: 128})
	out, err := NewRegistry().Blend("layer", []gradient.Weighted{
		weighted(light, 1), weighted(mid, 1),
	}, param.Values{"blend_mode": 0})
	require.NoError(t, err)

	c := out.ColorAt(0.5)
	require.Less(t, int(c.R), 200)
}

func TestLayer_ScreenLightens(t *testing.T) {
	mid := solid("mid", hue.RGB{R: 128, G: 128, B: 128})
	out, err := NewRegistry().Blend("layer", []gradient.Weighted{
		weighted(mid, 1), weighted(mid, 1),
	}, param.Values{"blend_mode": 1})
	require.NoError(t, err)

	c := out.ColorAt(0.5)
	require.Greater(t, int(c.R), 128)
}

func TestLayer_BurnAndDodgeGuarded(t *testing.T) {
	black := solid("black", hue.RGB{R: 0, G: 0, B: 0})
	white := solid("white", hue.RGB{R: 255, G: 255, B: 255})
	r := NewRegistry()

	// Dodge with a pure white layer divides by zero without the guard.
	out, err := r.Blend("layer", []gradient.Weighted{
		weighted(black, 1), weighted(white, 1),
	}, param.Values{"blend_mode": 5})
	require.NoError(t, err)
	require.NotNil(t, out)

	// Burn with a pure black layer likewise.
	out, err = r.Blend("layer", []gradient.Weighted{
		weighted(white, 1), weighted(black, 1),
	}, param.Values{"blend_mode": 6})
	require.NoError(t, err)
	require.NotNil(t, out)
}

func TestChromatic_SingleInputAberration(t *testing.T) {
	g := gradient.New("ramp", []gradient.Stop{
		{Position: 0, Color: hue.RGB{R: 255, G: 0, B: 0}},
		{Position: 0.5, Color: hue.RGB{R: 0, G: 255, B: 0}},
		{Position: 1, Color: hue.RGB{R: 0, G: 0, B: 255}},
	})
	out, err := NewRegistry().Blend("chromatic", []gradient.Weighted{weighted(g, 1)}, nil)
	require.NoError(t, err)
	require.Len(t, out.Stops, 3)
	require.Contains(t, out.Meta.Name, "Chromatic")
}

func TestMemory_TrailsEarlierColors(t *testing.T) {
	red := solid("red", hue.RGB{R: 255, G: 0, B: 0})
	ramp := gradient.New("ramp", []gradient.Stop{
		{Position: 0, Color: hue.RGB{R: 255, G: 0, B: 0}},
		{Position: 0.25, Color: hue.RGB{R: 255, G: 0, B: 0}},
		{Position: 0.5, Color: hue.RGB{R: 0, G: 0, B: 255}},
		{Position: 0.75, Color: hue.RGB{R: 0, G: 0, B: 255}},
		{Position: 1, Color: hue.RGB{R: 0, G: 0, B: 255}},
	})
	out, err := NewRegistry().Blend("memory", []gradient.Weighted{
		weighted(red, 1), weighted(ramp, 1),
	}, param.Values{"feedback": 0.5})
	require.NoError(t, err)

	// Late stops still carry red from the memory buffer: more red than
	// a plain 50/50 mix of red and blue would have at the same spot.
	last := out.Stops[len(out.Stops)-1].Color
	require.Greater(t, int(last.R), 100)
}

func TestWaveform_ProducesStopsAtUnionPositions(t *testing.T) {
	a := gradient.Default()
	b := solid("red", hue.RGB{R: 255, G: 0, B: 0})
	out, err := NewRegistry().Blend("waveform", []gradient.Weighted{
		weighted(a, 1), weighted(b, 1),
	}, param.Values{"wave_type": 2, "interference": 1})
	require.NoError(t, err)
	require.NotEmpty(t, out.Stops)
	require.NoError(t, out.Validate())
}

func TestCrystal_HighClarityPicksDominant(t *testing.T) {
	red := solid("red", hue.RGB{R: 255, G: 0, B: 0})
	blue := solid("blue", hue.RGB{R: 0, G: 0, B: 255})
	out, err := NewRegistry().Blend("crystal", []gradient.Weighted{
		weighted(red, 5), weighted(blue, 1),
	}, param.Values{"clarity": 1})
	require.NoError(t, err)
	for _, s := range out.Stops {
		require.Equal(t, hue.RGB{R: 255, G: 0, B: 0}, s.Color)
	}
}

func TestBlend_ParamSweepNeverPanics(t *testing.T) {
	r := NewRegistry()
	inputs := []gradient.Weighted{
		weighted(gradient.Default(), 1),
		weighted(solid("red", hue.RGB{R: 255, G: 0, B: 0}), 0.5),
		weighted(solid("blue", hue.RGB{R: 0, G: 0, B: 255}), 2),
	}
	for _, name := range r.Names() {
		b, err := r.Get(name)
		require.NoError(t, err)
		for _, def := range b.Params() {
			for _, v := range []float64{def.Min, def.Max, def.Default, (def.Min + def.Max) / 2} {
				out, err := r.Blend(name, inputs, param.Values{def.Name: v})
				require.NoError(t, err, "%s %s=%v", name, def.Name, v)
				require.NotNil(t, out)
			}
		}
	}
}
