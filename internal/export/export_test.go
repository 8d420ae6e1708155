package export

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sableline/gradix/internal/gradient"
	"github.com/sableline/gradix/internal/hue"
)

func redToBlue() *gradient.Gradient {
	return gradient.New("ramp", []gradient.Stop{
		{Position: 0, Color: hue.RGB{R: 255, G: 0, B: 0}},
		{Position: 1, Color: hue.RGB{R: 0, G: 0, B: 255}},
	})
}

func TestRender_LinearEdges(t *testing.T) {
	img := Render(redToBlue(), Options{Size: 64})
	require.Equal(t, 64, img.Bounds().Dx())
	require.Equal(t, 64, img.Bounds().Dy())

	left := img.RGBAAt(0, 32)
	right := img.RGBAAt(63, 32)
	require.EqualValues(t, 255, left.R)
	require.EqualValues(t, 0, left.B)
	require.EqualValues(t, 0, right.R)
	require.EqualValues(t, 255, right.B)
}

func TestRender_SizeClamped(t *testing.T) {
	require.Equal(t, MinSize, Render(redToBlue(), Options{Size: 1}).Bounds().Dx())
	require.Equal(t, 512, Render(redToBlue(), Options{}).Bounds().Dx())

	img := Render(redToBlue(), Options{Size: 1 << 20})
	require.Equal(t, MaxSize, img.Bounds().Dx())
}

func TestRender_RadialCenterIsStart(t *testing.T) {
	img := Render(redToBlue(), Options{Size: 64, Shape: Radial})
	center := img.RGBAAt(32, 32)
	corner := img.RGBAAt(0, 0)
	require.Greater(t, int(center.R), 200)
	require.Greater(t, int(corner.B), 200)
}

func TestRender_ConicalCoversFullTurn(t *testing.T) {
	img := Render(redToBlue(), Options{Size: 64, Shape: Conical})
	// Just above the positive-x axis sits near angle 0 (red); just
	// below it sits near a full turn (blue).
	start := img.RGBAAt(60, 31)
	end := img.RGBAAt(60, 32)
	require.Greater(t, int(start.R), 180)
	require.Greater(t, int(end.B), 180)
}

func TestStrip_Dimensions(t *testing.T) {
	img := Strip(redToBlue(), 256, 4)
	require.Equal(t, 256, img.Bounds().Dx())
	require.Equal(t, 4, img.Bounds().Dy())
	require.EqualValues(t, 255, img.RGBAAt(0, 0).R)
	require.EqualValues(t, 255, img.RGBAAt(255, 3).B)
}

func TestParseShape(t *testing.T) {
	for name, want := range map[string]Shape{
		"linear": Linear, "radial": Radial, "conical": Conical,
	} {
		got, err := ParseShape(name)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := ParseShape("cubic")
	require.Error(t, err)
}

func TestWrite_FormatsByExtension(t *testing.T) {
	dir := t.TempDir()
	img := Strip(redToBlue(), 64, 4)

	for _, name := range []string{"g.png", "g.bmp", "g.tga", "g.dds"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Write(path, img), name)
		info, err := os.Stat(path)
		require.NoError(t, err, name)
		require.Greater(t, info.Size(), int64(0), name)
	}
}

func TestWrite_UnknownExtensionFallsBackToPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gradient.xyz")
	require.NoError(t, Write(path, Strip(redToBlue(), 64, 2)))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	_, err = png.Decode(f)
	require.NoError(t, err)
}
