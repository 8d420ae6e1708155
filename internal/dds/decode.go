package dds

import (
	"encoding/binary"
	"fmt"
	"image"
	"io"

	"github.com/mauserzjeh/dxt"
)

// Decode reads a DDS texture from r. DXT1, DXT3 and DXT5 decode through
// the dxt package; uncompressed 24- and 32-bit RGB(A) is handled
// directly.
func Decode(r io.Reader) (image.Image, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("dds: read: %w", err)
	}
	return DecodeBytes(raw)
}

// DecodeBytes parses a DDS file already held in memory.
func DecodeBytes(raw []byte) (image.Image, error) {
	if len(raw) < totalHeaderSize {
		return nil, fmt.Errorf("dds: data too short for header: %d < %d", len(raw), totalHeaderSize)
	}
	if string(raw[0:4]) != "DDS " {
		return nil, fmt.Errorf("dds: missing magic")
	}

	hdr := raw[4:totalHeaderSize]
	height := binary.LittleEndian.Uint32(hdr[8:12])
	width := binary.LittleEndian.Uint32(hdr[12:16])
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("dds: zero-sized texture %dx%d", width, height)
	}

	pf := hdr[pixelFormatOffset : pixelFormatOffset+32]
	pfFlags := binary.LittleEndian.Uint32(pf[4:8])
	fourCC := binary.LittleEndian.Uint32(pf[8:12])
	bitCount := binary.LittleEndian.Uint32(pf[12:16])

	data := raw[totalHeaderSize:]
	if len(data) == 0 {
		return nil, fmt.Errorf("dds: no image data")
	}

	var rgba []byte
	var err error
	switch {
	case pfFlags&ddpfFourCC != 0 && fourCC == fourCCDXT1:
		rgba, err = dxt.DecodeDXT1(data, uint(width), uint(height))
	case pfFlags&ddpfFourCC != 0 && fourCC == 0x33545844: // "DXT3"
		rgba, err = dxt.DecodeDXT3(data, uint(width), uint(height))
	case pfFlags&ddpfFourCC != 0 && fourCC == fourCCDXT5:
		rgba, err = dxt.DecodeDXT5(data, uint(width), uint(height))
	case pfFlags&ddpfFourCC == 0 && (bitCount == 24 || bitCount == 32):
		rgba, err = decodeUncompressed(data, int(width), int(height), int(bitCount), pf)
	default:
		return nil, fmt.Errorf("dds: unsupported pixel format (flags %#x, fourCC %#x, %d bpp)", pfFlags, fourCC, bitCount)
	}
	if err != nil {
		return nil, fmt.Errorf("dds: decode: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	if len(rgba) != len(img.Pix) {
		return nil, fmt.Errorf("dds: decoded %d bytes, want %d", len(rgba), len(img.Pix))
	}
	copy(img.Pix, rgba)
	return img, nil
}

// decodeUncompressed unpacks contiguous 24/32-bit scanlines into RGBA.
// The channel order comes from the pixel format masks; files written by
// this package use RGBA masks, most other tools write BGRA.
func decodeUncompressed(data []byte, width, height, bits int, pf []byte) ([]byte, error) {
	bytesPerPixel := bits / 8
	expected := width * height * bytesPerPixel
	if len(data) < expected {
		return nil, fmt.Errorf("uncompressed data too small (%d < %d)", len(data), expected)
	}

	rMask := binary.LittleEndian.Uint32(pf[16:20])
	// Masks identify which of the four bytes holds red. Only the two
	// common layouts are handled; anything exotic reads as BGRA.
	redFirst := rMask == 0x000000FF

	out := make([]byte, width*height*4)
	src, dst := 0, 0
	for i := 0; i < width*height; i++ {
		var r, g, b, a uint8
		if redFirst {
			r, g, b = data[src+0], data[src+1], data[src+2]
		} else {
			b, g, r = data[src+0], data[src+1], data[src+2]
		}
		a = 255
		if bytesPerPixel == 4 {
			a = data[src+3]
		}
		out[dst+0], out[dst+1], out[dst+2], out[dst+3] = r, g, b, a
		src += bytesPerPixel
		dst += 4
	}
	return out, nil
}
