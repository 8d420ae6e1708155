package preset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sableline/gradix/internal/gradient"
	"github.com/sableline/gradix/internal/hue"
)

func TestGet_BuiltIns(t *testing.T) {
	l := NewLibrary()

	fire := l.Get("fire")
	require.Equal(t, hue.RGB{R: 7, G: 5, B: 9}, fire.Stops[0].Color)
	require.Equal(t, hue.RGB{R: 255, G: 255, B: 224}, fire.Stops[len(fire.Stops)-1].Color)

	rainbow := l.Get("RAINBOW")
	require.Len(t, rainbow.Stops, 10)
	require.Equal(t, hue.RGB{R: 255, G: 0, B: 0}, rainbow.Stops[0].Color)
	require.Equal(t, 0.9375, rainbow.Stops[8].Position)

	gray := l.Get("grayscale")
	require.Len(t, gray.Stops, gradient.DefaultStops)
	require.Equal(t, hue.RGB{R: 0, G: 0, B: 0}, gray.Stops[0].Color)
	require.Equal(t, hue.RGB{R: 255, G: 255, B: 255}, gray.Stops[len(gray.Stops)-1].Color)
}

func TestGet_UnknownFallsBackToDefault(t *testing.T) {
	g := NewLibrary().Get("no-such-preset")
	require.Len(t, g.Stops, gradient.DefaultStops)
	require.Equal(t, hue.RGB{R: 0, G: 0, B: 0}, g.Stops[0].Color)
}

func TestGet_ReturnsClone(t *testing.T) {
	l := NewLibrary()
	a := l.Get("fire")
	a.Stops[0].Color = hue.RGB{R: 1, G: 2, B: 3}
	b := l.Get("fire")
	require.Equal(t, hue.RGB{R: 7, G: 5, B: 9}, b.Stops[0].Color)
}

func TestAdd_RejectsBuiltInNames(t *testing.T) {
	l := NewLibrary()
	require.Error(t, l.Add("Fire", gradient.Default()))
	require.Error(t, l.Add("  ", gradient.Default()))
}

func TestAddRemove_Custom(t *testing.T) {
	l := NewLibrary()
	require.NoError(t, l.Add("Lava", l.Get("fire")))
	require.True(t, l.Has("lava"))

	require.NoError(t, l.Remove("LAVA"))
	require.False(t, l.Has("lava"))
	require.Error(t, l.Remove("lava"))
	require.Error(t, l.Remove("fire"))
}

func TestNames_BuiltInsFirst(t *testing.T) {
	l := NewLibrary()
	require.NoError(t, l.Add("aaa", gradient.Default()))
	names := l.Names()
	require.Equal(t, []string{
		"default", "fire", "grayscale", "ocean", "rainbow", "sunset",
		"aaa",
	}, names)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets", "library.yaml")

	l := NewLibrary()
	custom := gradient.New("Ember", []gradient.Stop{
		{Position: 0, Color: hue.RGB{R: 10, G: 0, B: 0}},
		{Position: 0.5, Color: hue.RGB{R: 200, G: 80, B: 0}},
		{Position: 1, Color: hue.RGB{R: 255, G: 240, B: 200}},
	})
	require.NoError(t, l.Add("ember", custom))
	require.NoError(t, l.SaveFile(path))

	fresh := NewLibrary()
	require.NoError(t, fresh.LoadFile(path))
	got := fresh.Get("ember")
	require.Len(t, got.Stops, 3)
	require.Equal(t, hue.RGB{R: 200, G: 80, B: 0}, got.Stops[1].Color)
	require.Equal(t, 0.5, got.Stops[1].Position)
}

func TestLoadFile_MissingIsFine(t *testing.T) {
	l := NewLibrary()
	require.NoError(t, l.LoadFile(filepath.Join(t.TempDir(), "nope.yaml")))
}

func TestLoadFile_BadColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.yaml")
	raw := "presets:\n  broken:\n    - position: 0\n      color: \"#zzzzzz\"\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))
	require.Error(t, NewLibrary().LoadFile(path))
}
