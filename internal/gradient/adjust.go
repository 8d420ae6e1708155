package gradient

import "github.com/sableline/gradix/internal/hue"

// AdjustBrightness returns a copy with every stop's value channel
// scaled by factor. Factor 1 is a no-op; 0 is black.
func (g *Gradient) AdjustBrightness(factor float64) *Gradient {
	return g.mapColors(func(c hue.RGB) hue.RGB {
		return hue.AdjustBrightness(c, factor)
	})
}

// AdjustSaturation returns a copy with every stop's saturation scaled
// by factor. Factor 0 yields grayscale.
func (g *Gradient) AdjustSaturation(factor float64) *Gradient {
	return g.mapColors(func(c hue.RGB) hue.RGB {
		return hue.AdjustSaturation(c, factor)
	})
}

// RotateHue returns a copy with every stop's hue rotated by the given
// number of degrees around the color wheel.
func (g *Gradient) RotateHue(degrees float64) *Gradient {
	return g.mapColors(func(c hue.RGB) hue.RGB {
		return hue.RotateHue(c, degrees)
	})
}

// Complement returns a copy with every stop replaced by its
// complementary color.
func (g *Gradient) Complement() *Gradient {
	return g.mapColors(hue.Complementary)
}

func (g *Gradient) mapColors(f func(hue.RGB) hue.RGB) *Gradient {
	out := g.Clone()
	for i := range out.Stops {
		out.Stops[i].Color = f(out.Stops[i].Color)
	}
	return out
}
