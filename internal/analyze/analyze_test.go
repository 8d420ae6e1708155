package analyze

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sableline/gradix/internal/hue"
)

// blocks draws n equal vertical bands of the given colors.
func blocks(width, height int, colors ...color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	band := width / len(colors)
	for x := 0; x < width; x++ {
		i := x / band
		if i >= len(colors) {
			i = len(colors) - 1
		}
		for y := 0; y < height; y++ {
			img.SetRGBA(x, y, colors[i])
		}
	}
	return img
}

func TestDominantColors_FindsBands(t *testing.T) {
	img := blocks(120, 40,
		color.RGBA{255, 0, 0, 255},
		color.RGBA{0, 255, 0, 255},
		color.RGBA{0, 0, 255, 255},
	)
	colors, err := DominantColors(img, Options{Colors: 3, ResizeFactor: 1})
	require.NoError(t, err)
	require.Len(t, colors, 3)

	// Each band color should be close to one extracted color.
	for _, want := range []hue.RGB{{R: 255, G: 0, B: 0}, {R: 0, G: 255, B: 0}, {R: 0, G: 0, B: 255}} {
		closest := 1e9
		for _, got := range colors {
			if d := hue.Distance(want, got); d < closest {
				closest = d
			}
		}
		require.Less(t, closest, 40.0, "band %v", want)
	}
}

func TestDominantColors_Deterministic(t *testing.T) {
	img := blocks(90, 30,
		color.RGBA{200, 30, 30, 255},
		color.RGBA{30, 200, 30, 255},
		color.RGBA{30, 30, 200, 255},
	)
	a, err := DominantColors(img, Options{Colors: 3, Seed: 7})
	require.NoError(t, err)
	b, err := DominantColors(img, Options{Colors: 3, Seed: 7})
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestDominantColors_FewerDistinctThanRequested(t *testing.T) {
	img := blocks(40, 10, color.RGBA{10, 20, 30, 255})
	colors, err := DominantColors(img, Options{Colors: 5, ResizeFactor: 1})
	require.NoError(t, err)
	require.Len(t, colors, 1)
	require.Equal(t, hue.RGB{R: 10, G: 20, B: 30}, colors[0])
}

func TestDominantColors_SortByBrightness(t *testing.T) {
	img := blocks(90, 10,
		color.RGBA{240, 240, 240, 255},
		color.RGBA{10, 10, 10, 255},
		color.RGBA{128, 128, 128, 255},
	)
	colors, err := DominantColors(img, Options{Colors: 3, ResizeFactor: 1, Sort: ByBrightness})
	require.NoError(t, err)
	require.Len(t, colors, 3)
	require.Less(t, colors[0].Brightness(), colors[1].Brightness())
	require.Less(t, colors[1].Brightness(), colors[2].Brightness())
}

func TestGradientFromImage_EvenStops(t *testing.T) {
	img := blocks(120, 20,
		color.RGBA{255, 0, 0, 255},
		color.RGBA{0, 255, 0, 255},
		color.RGBA{0, 0, 255, 255},
	)
	g, err := GradientFromImage("Gradient from bands.png", img, Options{Colors: 3, ResizeFactor: 1})
	require.NoError(t, err)
	require.Len(t, g.Stops, 3)
	require.Equal(t, 0.0, g.Stops[0].Position)
	require.Equal(t, 0.5, g.Stops[1].Position)
	require.Equal(t, 1.0, g.Stops[2].Position)
	require.Equal(t, "Gradient from bands.png", g.Meta.Name)
}

func TestGradientFromFile_PNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bands.png")
	img := blocks(64, 16,
		color.RGBA{250, 10, 10, 255},
		color.RGBA{10, 10, 250, 255},
	)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	g, err := GradientFromFile(path, Options{Colors: 2, ResizeFactor: 1})
	require.NoError(t, err)
	require.Len(t, g.Stops, 2)
	require.Equal(t, "Gradient from bands.png", g.Meta.Name)
}

func TestLoadImage_Missing(t *testing.T) {
	_, err := LoadImage(filepath.Join(t.TempDir(), "nope.png"))
	require.Error(t, err)
}

func TestParseSortOrder(t *testing.T) {
	got, err := ParseSortOrder("hue")
	require.NoError(t, err)
	require.Equal(t, ByHue, got)
	_, err = ParseSortOrder("alphabetical")
	require.Error(t, err)
}
