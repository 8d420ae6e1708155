package gradient

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sableline/gradix/internal/hue"
)

func TestAdjustBrightness(t *testing.T) {
	g := New("g", []Stop{{Position: 0, Color: hue.RGB{R: 200, G: 100, B: 50}}})

	dimmed := g.AdjustBrightness(0.5)
	require.Less(t, int(dimmed.Stops[0].Color.R), 200)
	// Source untouched.
	require.Equal(t, hue.RGB{R: 200, G: 100, B: 50}, g.Stops[0].Color)

	black := g.AdjustBrightness(0)
	require.Equal(t, hue.RGB{R: 0, G: 0, B: 0}, black.Stops[0].Color)
}

func TestAdjustSaturation_ZeroIsGray(t *testing.T) {
	g := New("g", []Stop{{Position: 0, Color: hue.RGB{R: 255, G: 0, B: 0}}})
	gray := g.AdjustSaturation(0)
	c := gray.Stops[0].Color
	require.Equal(t, c.R, c.G)
	require.Equal(t, c.G, c.B)
}

func TestRotateHue_FullTurnIsIdentity(t *testing.T) {
	g := New("g", []Stop{
		{Position: 0, Color: hue.RGB{R: 255, G: 0, B: 0}},
		{Position: 1, Color: hue.RGB{R: 0, G: 128, B: 255}},
	})
	turned := g.RotateHue(360)
	for i := range g.Stops {
		require.InDelta(t, float64(g.Stops[i].Color.R), float64(turned.Stops[i].Color.R), 1)
		require.InDelta(t, float64(g.Stops[i].Color.G), float64(turned.Stops[i].Color.G), 1)
		require.InDelta(t, float64(g.Stops[i].Color.B), float64(turned.Stops[i].Color.B), 1)
	}
}

func TestComplement_RedBecomesCyan(t *testing.T) {
	g := New("g", []Stop{{Position: 0, Color: hue.RGB{R: 255, G: 0, B: 0}}})
	c := g.Complement().Stops[0].Color
	require.EqualValues(t, 0, c.R)
	require.Greater(t, int(c.G), 200)
	require.Greater(t, int(c.B), 200)
}
