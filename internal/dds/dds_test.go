package dds

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

// strip builds a horizontal ramp the shape of an exported gradient.
func strip(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		v := uint8(x * 255 / (width - 1))
		for y := 0; y < height; y++ {
			img.SetRGBA(x, y, color.RGBA{R: v, G: 0, B: 255 - v, A: 255})
		}
	}
	return img
}

func TestParseCodec(t *testing.T) {
	for name, want := range map[string]Codec{
		"lossless": Lossless,
		"rgba":     Lossless,
		"dxt1":     DXT1,
		"bc1":      DXT1,
		"dxt5":     DXT5,
		"bc3":      DXT5,
	} {
		got, err := ParseCodec(name)
		require.NoError(t, err, name)
		require.Equal(t, want, got, name)
	}
	_, err := ParseCodec("png")
	require.Error(t, err)
}

func TestLossless_RoundTrip(t *testing.T) {
	src := strip(64, 8)
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, src, Lossless))

	got, err := DecodeBytes(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, src.Bounds(), got.Bounds())

	out := got.(*image.RGBA)
	require.Equal(t, src.Pix, out.Pix)
}

func TestDXT5_RoundTripApproximate(t *testing.T) {
	src := strip(64, 8)
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, src, DXT5))

	got, err := DecodeBytes(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, src.Bounds(), got.Bounds())

	// Block compression is lossy; a smooth two-channel ramp should stay
	// within a few 565-quantization steps of the source.
	out := got.(*image.RGBA)
	for i := range src.Pix {
		diff := int(src.Pix[i]) - int(out.Pix[i])
		if diff < 0 {
			diff = -diff
		}
		require.LessOrEqual(t, diff, 24, "byte %d", i)
	}
}

func TestDXT1_Decodes(t *testing.T) {
	src := strip(16, 4)
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, src, DXT1))

	got, err := DecodeBytes(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, src.Bounds(), got.Bounds())
}

func TestEncode_NonMultipleOfFour(t *testing.T) {
	src := strip(10, 3)
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, src, DXT5))

	got, err := DecodeBytes(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, 10, got.Bounds().Dx())
	require.Equal(t, 3, got.Bounds().Dy())
}

func TestDecode_Garbage(t *testing.T) {
	_, err := DecodeBytes([]byte("not a texture"))
	require.Error(t, err)

	_, err = DecodeBytes(bytes.Repeat([]byte{0}, totalHeaderSize+16))
	require.Error(t, err)
}

func TestEncode_EmptyImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 0, 0))
	var buf bytes.Buffer
	require.Error(t, Encode(&buf, img, Lossless))
}
