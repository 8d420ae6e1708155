package export

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dblezek/tga"
	"golang.org/x/image/bmp"

	"github.com/sableline/gradix/internal/dds"
)

// Write saves img to path, picking the format from the file extension.
// Supported extensions are .png, .bmp, .tga and .dds; anything else is
// written as PNG, matching how the exporter has always behaved.
func Write(path string, img image.Image) error {
	return WriteDDS(path, img, dds.Lossless)
}

// WriteDDS is Write with an explicit codec for .dds output.
func WriteDDS(path string, img image.Image, codec dds.Codec) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		err = bmp.Encode(out, img)
	case ".tga":
		err = tga.Encode(out, img)
	case ".dds":
		err = dds.Encode(out, img, codec)
	default:
		err = png.Encode(out, img)
	}
	if err != nil {
		out.Close()
		return fmt.Errorf("encode %q: %w", path, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	b := img.Bounds()
	slog.Debug("wrote image", "path", path, "width", b.Dx(), "height", b.Dy())
	return nil
}
