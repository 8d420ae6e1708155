package main

import (
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"go.coder.com/cli"

	"github.com/sableline/gradix/internal/blend"
	"github.com/sableline/gradix/internal/distribute"
	"github.com/sableline/gradix/internal/gradient"
	"github.com/sableline/gradix/internal/reorder"
)

type blendCmd struct {
	libraryFlags
	method  string
	weights string
	params  []string
	saveAs  string
}

func (c *blendCmd) Spec() cli.CommandSpec {
	return cli.CommandSpec{
		Name:  "blend",
		Usage: "[flags] <gradient> [<gradient>...]",
		Desc:  "Merge gradients with a blend method.",
	}
}

func (c *blendCmd) RegisterFlags(fl *pflag.FlagSet) {
	c.register(fl)
	fl.StringVar(&c.method, "method", "mix", "blend method: "+strings.Join(blend.NewRegistry().Names(), ", "))
	fl.StringVar(&c.weights, "weights", "", "comma-separated weights, one per gradient (default all 1)")
	fl.StringArrayVar(&c.params, "param", nil, "method parameter as name=value, repeatable")
	fl.StringVar(&c.saveAs, "save", "", "store the result in the library under this name")
}

func (c *blendCmd) Run(fl *pflag.FlagSet) {
	names := fl.Args()
	if len(names) == 0 {
		fatalf("blend needs at least one gradient name")
	}
	lib := c.load()

	weights := parseWeights(c.weights, len(names))
	inputs := make([]gradient.Weighted, len(names))
	for i, name := range names {
		inputs[i] = gradient.Weighted{Gradient: c.lookup(lib, name), Weight: weights[i]}
	}

	out, err := blend.NewRegistry().Blend(c.method, inputs, parseParams(c.params))
	if err != nil {
		fatalf("blend: %v", err)
	}
	c.saveResult(lib, c.saveAs, out)
}

func parseWeights(raw string, n int) []float64 {
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1
	}
	if raw == "" {
		return weights
	}
	parts := strings.Split(raw, ",")
	if len(parts) != n {
		fatalf("got %d weights for %d gradients", len(parts), n)
	}
	for i, p := range parts {
		w, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			fatalf("bad weight %q: %v", p, err)
		}
		weights[i] = w
	}
	return weights
}

type distributeCmd struct {
	libraryFlags
	pattern string
	params  []string
	saveAs  string
}

func (c *distributeCmd) Spec() cli.CommandSpec {
	return cli.CommandSpec{
		Name:  "distribute",
		Usage: "[flags] <gradient>",
		Desc:  "Redistribute stop positions with a spacing pattern.",
	}
}

func (c *distributeCmd) RegisterFlags(fl *pflag.FlagSet) {
	c.register(fl)
	fl.StringVar(&c.pattern, "pattern", "even", "spacing pattern: "+strings.Join(distribute.NewRegistry().Names(), ", "))
	fl.StringArrayVar(&c.params, "param", nil, "pattern parameter as name=value, repeatable")
	fl.StringVar(&c.saveAs, "save", "", "store the result in the library under this name")
}

func (c *distributeCmd) Run(fl *pflag.FlagSet) {
	if fl.NArg() != 1 {
		fatalf("distribute needs exactly one gradient name")
	}
	lib := c.load()
	g := c.lookup(lib, fl.Arg(0))

	p, err := distribute.NewRegistry().Get(c.pattern)
	if err != nil {
		fatalf("distribute: %v", err)
	}
	vals, err := resolveParams(p.Params(), c.params)
	if err != nil {
		fatalf("distribute: %v", err)
	}

	original := make([]float64, len(g.Stops))
	for i, s := range g.Stops {
		original[i] = s.Position
	}
	positions := p.Distribute(len(g.Stops), original, vals)
	for i := range g.Stops {
		g.Stops[i].Position = positions[i]
	}
	c.saveResult(lib, c.saveAs, g)
}

type reorderCmd struct {
	libraryFlags
	metric        string
	reverse       bool
	keepEndpoints bool
	strength      float64
	shuffleSeed   int64
	saveAs        string
}

func (c *reorderCmd) Spec() cli.CommandSpec {
	return cli.CommandSpec{
		Name:  "reorder",
		Usage: "[flags] <gradient>",
		Desc:  "Reorder stop colors by a metric; positions stay put.",
	}
}

func (c *reorderCmd) RegisterFlags(fl *pflag.FlagSet) {
	c.register(fl)
	fl.StringVar(&c.metric, "metric", "brightness", "sort metric: "+strings.Join(reorder.NewRegistry().Names(), ", ")+", or shuffle")
	fl.BoolVar(&c.reverse, "reverse", false, "sort descending")
	fl.BoolVar(&c.keepEndpoints, "keep-endpoints", true, "keep the first and last colors in place")
	fl.Float64Var(&c.strength, "strength", 1, "how far to move toward the sorted order, 0..1")
	fl.Int64Var(&c.shuffleSeed, "seed", 0, "seed for --metric shuffle")
	fl.StringVar(&c.saveAs, "save", "", "store the result in the library under this name")
}

func (c *reorderCmd) Run(fl *pflag.FlagSet) {
	if fl.NArg() != 1 {
		fatalf("reorder needs exactly one gradient name")
	}
	lib := c.load()
	g := c.lookup(lib, fl.Arg(0))

	opts := reorder.Options{
		Reverse:       c.reverse,
		KeepEndpoints: c.keepEndpoints,
		Strength:      c.strength,
	}

	if c.metric == "shuffle" {
		g.Stops = reorder.Shuffle(g.Stops, c.shuffleSeed, opts)
		c.saveResult(lib, c.saveAs, g)
		return
	}

	m, err := reorder.NewRegistry().Get(c.metric)
	if err != nil {
		fatalf("reorder: %v", err)
	}
	g.Stops = reorder.Apply(g.Stops, m, opts)
	c.saveResult(lib, c.saveAs, g)
}

type seamlessCmd struct {
	libraryFlags
	progressive bool
	blendRegion float64
	falloff     float64
	saveAs      string
}

func (c *seamlessCmd) Spec() cli.CommandSpec {
	return cli.CommandSpec{
		Name:  "seamless",
		Usage: "[flags] <gradient>",
		Desc:  "Make a gradient wrap cleanly from end back to start.",
	}
}

func (c *seamlessCmd) RegisterFlags(fl *pflag.FlagSet) {
	c.register(fl)
	fl.BoolVar(&c.progressive, "progressive", false, "resample through the progressive preview blend instead of pinning the last stop")
	fl.Float64Var(&c.blendRegion, "blend-region", 0.1, "progressive blend region width, 0..0.5")
	fl.Float64Var(&c.falloff, "falloff", 0.7, "progressive intensity falloff, 0..1")
	fl.StringVar(&c.saveAs, "save", "", "store the result in the library under this name")
}

func (c *seamlessCmd) Run(fl *pflag.FlagSet) {
	if fl.NArg() != 1 {
		fatalf("seamless needs exactly one gradient name")
	}
	lib := c.load()
	g := c.lookup(lib, fl.Arg(0))

	if !c.progressive {
		c.saveResult(lib, c.saveAs, g.Seamless())
		return
	}

	opts := gradient.SeamlessOptions{
		Progressive:      true,
		BlendRegion:      c.blendRegion,
		IntensityFalloff: c.falloff,
	}
	out := g.Clone()
	for i, s := range out.Stops {
		out.Stops[i].Color = g.SeamlessColorAt(s.Position, opts)
	}
	c.saveResult(lib, c.saveAs, out)
}
