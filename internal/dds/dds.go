// Package dds reads and writes DDS texture files. Gradient strips
// exported for fractal tooling are usually small and horizontal, so the
// codec supports lossless RGBA8 alongside DXT1 and DXT5 block
// compression.
package dds

import "fmt"

// Codec selects the pixel encoding used by Encode.
type Codec int

const (
	// Lossless stores uncompressed 32-bit RGBA.
	Lossless Codec = iota
	// DXT1 is BC1 block compression, no alpha.
	DXT1
	// DXT5 is BC3 block compression with interpolated alpha.
	DXT5
)

func (c Codec) String() string {
	switch c {
	case Lossless:
		return "lossless"
	case DXT1:
		return "dxt1"
	case DXT5:
		return "dxt5"
	default:
		return fmt.Sprintf("Codec(%d)", int(c))
	}
}

// ParseCodec maps a codec name to its Codec value.
func ParseCodec(name string) (Codec, error) {
	switch name {
	case "lossless", "rgba":
		return Lossless, nil
	case "dxt1", "bc1":
		return DXT1, nil
	case "dxt5", "bc3":
		return DXT5, nil
	default:
		return Lossless, fmt.Errorf("unknown dds codec %q (have lossless, dxt1, dxt5)", name)
	}
}

// DDS header layout constants. Offsets are relative to the 124-byte
// header that follows the 4-byte magic.
const (
	headerSize        = 124
	pixelFormatOffset = 72
	totalHeaderSize   = 4 + headerSize

	ddsdCaps        = 0x1
	ddsdHeight      = 0x2
	ddsdWidth       = 0x4
	ddsdPitch       = 0x8
	ddsdPixelFormat = 0x1000
	ddsdLinearSize  = 0x80000

	ddpfAlphaPixels = 0x1
	ddpfFourCC      = 0x4
	ddpfRGB         = 0x40

	ddscapsTexture = 0x1000

	fourCCDXT1 = 0x31545844 // "DXT1"
	fourCCDXT5 = 0x35545844 // "DXT5"
)
