package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"go.coder.com/cli"
	"golang.org/x/sync/errgroup"

	"github.com/sableline/gradix/internal/analyze"
	"github.com/sableline/gradix/internal/dds"
	"github.com/sableline/gradix/internal/export"
	"github.com/sableline/gradix/internal/gradient"
)

type exportCmd struct {
	libraryFlags
	outDir      string
	format      string
	size        int
	shape       string
	codec       string
	stripHeight int
	seamless    bool
}

func (c *exportCmd) Spec() cli.CommandSpec {
	return cli.CommandSpec{
		Name:  "export",
		Usage: "[flags] <gradient> [<gradient>...]",
		Desc:  "Render gradients to image files.",
	}
}

func (c *exportCmd) RegisterFlags(fl *pflag.FlagSet) {
	c.register(fl)
	fl.StringVar(&c.outDir, "out", ".", "output directory")
	fl.StringVar(&c.format, "format", "png", "output format: png, bmp, tga, dds")
	fl.IntVar(&c.size, "size", 512, fmt.Sprintf("image size, %d..%d", export.MinSize, export.MaxSize))
	fl.StringVar(&c.shape, "shape", "linear", "gradient shape: linear, radial, conical")
	fl.StringVar(&c.codec, "codec", "lossless", "dds codec: lossless, dxt1, dxt5")
	fl.IntVar(&c.stripHeight, "strip-height", 0, "render a strip this many pixels tall instead of a square")
	fl.BoolVar(&c.seamless, "seamless", false, "sample through the seamless preview blend")
}

func (c *exportCmd) Run(fl *pflag.FlagSet) {
	names := fl.Args()
	if len(names) == 0 {
		fatalf("export needs at least one gradient name")
	}
	lib := c.load()

	shape, err := export.ParseShape(c.shape)
	if err != nil {
		fatalf("export: %v", err)
	}
	codec, err := dds.ParseCodec(c.codec)
	if err != nil {
		fatalf("export: %v", err)
	}

	// Rendering 4096-pixel squares is the slow part, so fan the
	// gradients out across a few workers.
	eg, _ := errgroup.WithContext(context.Background())
	eg.SetLimit(4)
	for _, name := range names {
		g := c.lookup(lib, name)
		path := filepath.Join(c.outDir, safeFileName(name)+"."+c.format)
		eg.Go(func() error {
			seamlessOpts := gradient.DefaultSeamlessOptions()
			seamlessOpts.Progressive = true
			img := export.Render(g, export.Options{
				Size:            c.size,
				Shape:           shape,
				Seamless:        c.seamless,
				SeamlessOptions: seamlessOpts,
			})
			if c.stripHeight > 0 {
				img = export.Strip(g, c.size, c.stripHeight)
			}
			if err := export.WriteDDS(path, img, codec); err != nil {
				return err
			}
			slog.Info("exported", "gradient", name, "path", path)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		fatalf("export: %v", err)
	}
}

func safeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '_'
		}
		return r
	}, strings.ToLower(name))
}

type extractCmd struct {
	libraryFlags
	colors int
	sortBy string
	seed   int64
	saveAs string
}

func (c *extractCmd) Spec() cli.CommandSpec {
	return cli.CommandSpec{
		Name:  "extract",
		Usage: "[flags] <image> [<image>...]",
		Desc:  "Build gradients from the dominant colors of images.",
	}
}

func (c *extractCmd) RegisterFlags(fl *pflag.FlagSet) {
	c.register(fl)
	fl.IntVar(&c.colors, "colors", 5, "number of dominant colors to extract")
	fl.StringVar(&c.sortBy, "sort", "frequency", "color order: frequency, brightness, hue")
	fl.Int64Var(&c.seed, "seed", 0, "clustering seed; same seed, same colors")
	fl.StringVar(&c.saveAs, "save", "", "store the result in the library under this name (single image only)")
}

func (c *extractCmd) Run(fl *pflag.FlagSet) {
	paths := fl.Args()
	if len(paths) == 0 {
		fatalf("extract needs at least one image path")
	}
	if c.saveAs != "" && len(paths) > 1 {
		fatalf("--save works with a single image")
	}
	lib := c.load()

	order, err := analyze.ParseSortOrder(c.sortBy)
	if err != nil {
		fatalf("extract: %v", err)
	}
	opts := analyze.Options{Colors: c.colors, Sort: order, Seed: c.seed}

	eg, _ := errgroup.WithContext(context.Background())
	eg.SetLimit(4)
	results := make([]*gradientResult, len(paths))
	for i, path := range paths {
		eg.Go(func() error {
			g, err := analyze.GradientFromFile(path, opts)
			if err != nil {
				return err
			}
			results[i] = &gradientResult{path: path, gradient: g}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		fatalf("extract: %v", err)
	}

	for _, res := range results {
		if c.saveAs != "" {
			c.saveResult(lib, c.saveAs, res.gradient)
			continue
		}
		printGradient(res.gradient)
	}
}

type gradientResult struct {
	path     string
	gradient *gradient.Gradient
}
