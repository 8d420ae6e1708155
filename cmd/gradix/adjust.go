package main

import (
	"github.com/spf13/pflag"
	"go.coder.com/cli"
)

type adjustCmd struct {
	libraryFlags
	brightness float64
	saturation float64
	hueShift   float64
	complement bool
	saveAs     string
}

func (c *adjustCmd) Spec() cli.CommandSpec {
	return cli.CommandSpec{
		Name:  "adjust",
		Usage: "[flags] <gradient>",
		Desc:  "Shift a gradient's brightness, saturation or hue.",
	}
}

func (c *adjustCmd) RegisterFlags(fl *pflag.FlagSet) {
	c.register(fl)
	fl.Float64Var(&c.brightness, "brightness", 1, "brightness factor, 1 leaves it alone")
	fl.Float64Var(&c.saturation, "saturation", 1, "saturation factor, 0 is grayscale")
	fl.Float64Var(&c.hueShift, "hue", 0, "hue rotation in degrees")
	fl.BoolVar(&c.complement, "complement", false, "replace every color with its complement")
	fl.StringVar(&c.saveAs, "save", "", "store the result in the library under this name")
}

func (c *adjustCmd) Run(fl *pflag.FlagSet) {
	if fl.NArg() != 1 {
		fatalf("adjust needs exactly one gradient name")
	}
	lib := c.load()
	g := c.lookup(lib, fl.Arg(0))

	if c.brightness != 1 {
		g = g.AdjustBrightness(c.brightness)
	}
	if c.saturation != 1 {
		g = g.AdjustSaturation(c.saturation)
	}
	if c.hueShift != 0 {
		g = g.RotateHue(c.hueShift)
	}
	if c.complement {
		g = g.Complement()
	}
	c.saveResult(lib, c.saveAs, g)
}
