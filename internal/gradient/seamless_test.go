package gradient

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sableline/gradix/internal/hue"
)

func TestSeamless_Basic(t *testing.T) {
	g := New("rgb", []Stop{
		{Position: 0, Color: hue.RGB{R: 255, G: 0, B: 0}},
		{Position: 0.5, Color: hue.RGB{R: 0, G: 255, B: 0}},
		{Position: 1, Color: hue.RGB{R: 0, G: 0, B: 255}},
	})
	s := g.Seamless()

	// Last stop takes the first stop's color; everything else untouched.
	require.Equal(t, hue.RGB{R: 255, G: 0, B: 0}, s.Stops[2].Color)
	require.Equal(t, hue.RGB{R: 0, G: 255, B: 0}, s.Stops[1].Color)
	require.Equal(t, s.ColorAt(0), s.ColorAt(1))

	// The source gradient is not modified.
	require.Equal(t, hue.RGB{R: 0, G: 0, B: 255}, g.Stops[2].Color)
	require.True(t, s.Meta.Seamless)
}

func TestSeamless_UpdatesEveryStopAtLastPosition(t *testing.T) {
	g := New("dup", []Stop{
		{Position: 1, Color: hue.RGB{R: 0, G: 0, B: 255}},
		{Position: 0, Color: hue.RGB{R: 255, G: 0, B: 0}},
		{Position: 1, Color: hue.RGB{R: 0, G: 255, B: 0}},
	})
	s := g.Seamless()

	// First by sorted position is the red stop; both stops at position 1
	// take its color regardless of insertion order.
	require.Equal(t, hue.RGB{R: 255, G: 0, B: 0}, s.Stops[0].Color)
	require.Equal(t, hue.RGB{R: 255, G: 0, B: 0}, s.Stops[2].Color)
	require.Equal(t, hue.RGB{R: 255, G: 0, B: 0}, s.Stops[1].Color)
}

func TestSeamless_TooFewStops(t *testing.T) {
	g := New("solo", []Stop{{Position: 0.5, Color: hue.RGB{R: 9, G: 9, B: 9}}})
	s := g.Seamless()
	require.Equal(t, g.Stops, s.Stops)
}

func TestSeamlessColorAt_LastPositionReadsFirst(t *testing.T) {
	g := New("rb", []Stop{
		{Position: 0, Color: hue.RGB{R: 255, G: 0, B: 0}},
		{Position: 1, Color: hue.RGB{R: 0, G: 0, B: 255}},
	})
	got := g.SeamlessColorAt(1, DefaultSeamlessOptions())
	require.Equal(t, hue.RGB{R: 255, G: 0, B: 0}, got)
}

func TestSeamlessColorAt_ProgressiveEndRegion(t *testing.T) {
	g := New("rb", []Stop{
		{Position: 0, Color: hue.RGB{R: 255, G: 0, B: 0}},
		{Position: 1, Color: hue.RGB{R: 0, G: 0, B: 255}},
	})
	opts := SeamlessOptions{Progressive: true, BlendRegion: 0.2, IntensityFalloff: 1}

	// Inside the end region, the sample pulls toward the first color.
	blended := g.SeamlessColorAt(0.95, opts)
	plain := g.ColorAt(0.95)
	require.Greater(t, int(blended.R), int(plain.R))

	// Outside both regions the sample is unchanged.
	require.Equal(t, g.ColorAt(0.5), g.SeamlessColorAt(0.5, opts))
}

func TestSeamlessColorAt_ClampsRegion(t *testing.T) {
	g := Default()
	opts := SeamlessOptions{Progressive: true, BlendRegion: 3, IntensityFalloff: 5}
	// Should not panic or produce out-of-range positions.
	_ = g.SeamlessColorAt(0.25, opts)
}
