package dds

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"
)

// Encode writes m to w as a DDS texture using the given codec.
func Encode(w io.Writer, m image.Image, codec Codec) error {
	rgba := toRGBA(m)
	width := rgba.Bounds().Dx()
	height := rgba.Bounds().Dy()
	if width == 0 || height == 0 {
		return fmt.Errorf("dds: empty image")
	}

	switch codec {
	case Lossless:
		return encodeLossless(w, rgba, width, height)
	case DXT1:
		return encodeBlocks(w, rgba, width, height, fourCCDXT1, 8, func(px [16]color.RGBA) []byte {
			return compressColorBlock(px)
		})
	case DXT5:
		return encodeBlocks(w, rgba, width, height, fourCCDXT5, 16, func(px [16]color.RGBA) []byte {
			return append(compressAlphaBlock(px), compressColorBlock(px)...)
		})
	default:
		return fmt.Errorf("dds: unknown codec %v", codec)
	}
}

// toRGBA normalizes to an *image.RGBA anchored at the origin so pixel
// offsets can be computed from stride alone.
func toRGBA(m image.Image) *image.RGBA {
	if im, ok := m.(*image.RGBA); ok && im.Rect.Min == (image.Point{}) {
		return im
	}
	b := m.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), m, b.Min, draw.Src)
	return rgba
}

// writeHeader writes the magic plus the 124-byte header. For block
// compressed codecs pitchOrLinear carries the total compressed size and
// fourCC names the format; for lossless it carries the row pitch and
// fourCC is zero.
func writeHeader(w io.Writer, width, height int, fourCC, pitchOrLinear, flags, pfFlags uint32) error {
	if _, err := w.Write([]byte("DDS ")); err != nil {
		return err
	}

	var header [headerSize]byte
	put := func(off int, v uint32) {
		binary.LittleEndian.PutUint32(header[off:], v)
	}
	put(0, headerSize)
	put(4, flags)
	put(8, uint32(height))
	put(12, uint32(width))
	put(16, pitchOrLinear)

	put(pixelFormatOffset, 32)
	put(pixelFormatOffset+4, pfFlags)
	put(pixelFormatOffset+8, fourCC)
	if pfFlags&ddpfRGB != 0 {
		put(pixelFormatOffset+12, 32) // bits per pixel
		// Masks put the on-disk byte order at R,G,B,A on little-endian.
		put(pixelFormatOffset+16, 0x000000FF)
		put(pixelFormatOffset+20, 0x0000FF00)
		put(pixelFormatOffset+24, 0x00FF0000)
		put(pixelFormatOffset+28, 0xFF000000)
	}

	put(104, ddscapsTexture)

	_, err := w.Write(header[:])
	return err
}

func encodeLossless(w io.Writer, rgba *image.RGBA, width, height int) error {
	pitch := uint32(width * 4)
	flags := uint32(ddsdCaps | ddsdHeight | ddsdWidth | ddsdPixelFormat | ddsdPitch)
	if err := writeHeader(w, width, height, 0, pitch, flags, ddpfRGB|ddpfAlphaPixels); err != nil {
		return err
	}

	rowBytes := width * 4
	buf := make([]byte, rowBytes)
	for y := 0; y < height; y++ {
		off := y * rgba.Stride
		copy(buf, rgba.Pix[off:off+rowBytes])
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

// encodeBlocks walks the image in 4×4 tiles and writes one compressed
// block per tile. Tiles hanging off the right or bottom edge repeat the
// zero value for the missing pixels.
func encodeBlocks(w io.Writer, rgba *image.RGBA, width, height int, fourCC uint32, blockSize int, compress func([16]color.RGBA) []byte) error {
	blocksAcross := (width + 3) / 4
	blocksDown := (height + 3) / 4
	linearSize := uint32(blocksAcross * blocksDown * blockSize)
	flags := uint32(ddsdCaps | ddsdHeight | ddsdWidth | ddsdPixelFormat | ddsdLinearSize)
	if err := writeHeader(w, width, height, fourCC, linearSize, flags, ddpfFourCC); err != nil {
		return err
	}

	for by := 0; by < height; by += 4 {
		for bx := 0; bx < width; bx += 4 {
			var px [16]color.RGBA
			i := 0
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 4; dx++ {
					x, y := bx+dx, by+dy
					if x < width && y < height {
						off := y*rgba.Stride + x*4
						px[i] = color.RGBA{
							R: rgba.Pix[off+0],
							G: rgba.Pix[off+1],
							B: rgba.Pix[off+2],
							A: rgba.Pix[off+3],
						}
					}
					i++
				}
			}
			if _, err := w.Write(compress(px)); err != nil {
				return err
			}
		}
	}
	return nil
}

// compressColorBlock produces the 8-byte DXT1-style color block shared
// by DXT1 and DXT5. Endpoints come from projecting the tile's colors
// onto their principal axis, which handles the smooth ramps a gradient
// strip is made of far better than a per-channel bounding box.
func compressColorBlock(px [16]color.RGBA) []byte {
	var avg vec3
	for _, p := range px {
		avg[0] += float64(p.R)
		avg[1] += float64(p.G)
		avg[2] += float64(p.B)
	}
	avg[0] /= 16
	avg[1] /= 16
	avg[2] /= 16

	var cov [3][3]float64
	for _, p := range px {
		r := float64(p.R) - avg[0]
		g := float64(p.G) - avg[1]
		b := float64(p.B) - avg[2]
		cov[0][0] += r * r
		cov[0][1] += r * g
		cov[0][2] += r * b
		cov[1][1] += g * g
		cov[1][2] += g * b
		cov[2][2] += b * b
	}
	cov[1][0], cov[2][0], cov[2][1] = cov[0][1], cov[0][2], cov[1][2]

	axis := principalAxis(cov)

	minProj, maxProj := math.MaxFloat64, -math.MaxFloat64
	for _, p := range px {
		proj := dot(vec3{float64(p.R), float64(p.G), float64(p.B)}, axis)
		minProj = math.Min(minProj, proj)
		maxProj = math.Max(maxProj, proj)
	}

	avgProj := dot(avg, axis)
	end0 := add(avg, scale(axis, maxProj-avgProj))
	end1 := add(avg, scale(axis, minProj-avgProj))

	c0 := to565(end0)
	c1 := to565(end1)
	if c0 < c1 {
		c0, c1 = c1, c0
	}

	col0 := from565(c0)
	col1 := from565(c1)
	var palette [4][3]uint8
	palette[0] = col0
	palette[1] = col1
	for i := 0; i < 3; i++ {
		palette[2][i] = uint8((2*uint16(col0[i]) + uint16(col1[i]) + 1) / 3)
		palette[3][i] = uint8((uint16(col0[i]) + 2*uint16(col1[i]) + 1) / 3)
	}

	var indices uint32
	for i, p := range px {
		best := uint32(0)
		bestDist := math.MaxInt32
		for j := 0; j < 4; j++ {
			dr := int(p.R) - int(palette[j][0])
			dg := int(p.G) - int(palette[j][1])
			db := int(p.B) - int(palette[j][2])
			d := dr*dr + dg*dg + db*db
			if d < bestDist {
				bestDist = d
				best = uint32(j)
			}
		}
		indices |= best << (2 * uint(i))
	}

	out := make([]byte, 8)
	binary.LittleEndian.PutUint16(out, c0)
	binary.LittleEndian.PutUint16(out[2:], c1)
	binary.LittleEndian.PutUint32(out[4:], indices)
	return out
}

// compressAlphaBlock produces the 8-byte DXT5 interpolated alpha block.
func compressAlphaBlock(px [16]color.RGBA) []byte {
	minA, maxA := uint8(255), uint8(0)
	for _, p := range px {
		if p.A < minA {
			minA = p.A
		}
		if p.A > maxA {
			maxA = p.A
		}
	}

	a0, a1 := maxA, minA
	var palette [8]uint8
	palette[0], palette[1] = a0, a1
	if a0 > a1 {
		for i := 1; i <= 6; i++ {
			palette[1+i] = uint8((uint32((7-i)*int(a0)+i*int(a1)) + 3) / 7)
		}
	} else {
		for i := 1; i <= 4; i++ {
			palette[1+i] = uint8((uint32((5-i)*int(a0)+i*int(a1)) + 2) / 5)
		}
		palette[6] = 0
		palette[7] = 255
	}

	var indices [16]uint8
	for i, p := range px {
		best := uint8(0)
		bestDist := math.MaxInt32
		for j := 0; j < 8; j++ {
			d := int(p.A) - int(palette[j])
			d *= d
			if d < bestDist {
				bestDist = d
				best = uint8(j)
			}
		}
		indices[i] = best
	}

	// 16 three-bit indices packed little-endian into 6 bytes.
	var packed [6]byte
	bit := 0
	for i := 0; i < 16; i++ {
		v := uint(indices[i]) & 0x7
		bi, sh := bit/8, bit%8
		packed[bi] |= byte(v << sh)
		if sh > 5 && bi+1 < 6 {
			packed[bi+1] |= byte(v >> (8 - sh))
		}
		bit += 3
	}

	out := make([]byte, 8)
	out[0], out[1] = a0, a1
	copy(out[2:], packed[:])
	return out
}

type vec3 [3]float64

func dot(a, b vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func add(a, b vec3) vec3 {
	return vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func scale(v vec3, s float64) vec3 {
	return vec3{v[0] * s, v[1] * s, v[2] * s}
}

func normalize(v vec3) vec3 {
	n := math.Sqrt(dot(v, v))
	if n == 0 {
		return vec3{}
	}
	return vec3{v[0] / n, v[1] / n, v[2] / n}
}

// principalAxis estimates the dominant eigenvector of a 3×3 covariance
// matrix by power iteration. A handful of rounds is plenty for 16-pixel
// tiles.
func principalAxis(cov [3][3]float64) vec3 {
	v := normalize(vec3{1, 1, 1})
	for i := 0; i < 5; i++ {
		next := vec3{
			cov[0][0]*v[0] + cov[0][1]*v[1] + cov[0][2]*v[2],
			cov[1][0]*v[0] + cov[1][1]*v[1] + cov[1][2]*v[2],
			cov[2][0]*v[0] + cov[2][1]*v[1] + cov[2][2]*v[2],
		}
		next = normalize(next)
		if next == (vec3{}) {
			// Uniform tile, covariance is zero. Any axis works.
			return vec3{1, 0, 0}
		}
		v = next
	}
	return v
}

func to565(c vec3) uint16 {
	r := uint32(math.Round(math.Max(0, math.Min(255, c[0]))))
	g := uint32(math.Round(math.Max(0, math.Min(255, c[1]))))
	b := uint32(math.Round(math.Max(0, math.Min(255, c[2]))))
	return uint16((r>>3)<<11 | (g>>2)<<5 | b>>3)
}

func from565(v uint16) [3]uint8 {
	return [3]uint8{
		uint8(((v >> 11) & 0x1F) << 3),
		uint8(((v >> 5) & 0x3F) << 2),
		uint8((v & 0x1F) << 3),
	}
}
