package main

import (
	"fmt"

	"github.com/spf13/pflag"
	"go.coder.com/cli"
)

type presetsCmd struct {
	libraryFlags
	show   string
	remove string
}

func (c *presetsCmd) Spec() cli.CommandSpec {
	return cli.CommandSpec{
		Name:  "presets",
		Usage: "[flags]",
		Desc:  "List, show or remove gradient presets.",
	}
}

func (c *presetsCmd) RegisterFlags(fl *pflag.FlagSet) {
	c.register(fl)
	fl.StringVar(&c.show, "show", "", "print the stops of one preset")
	fl.StringVar(&c.remove, "remove", "", "delete a custom preset from the library")
}

func (c *presetsCmd) Run(fl *pflag.FlagSet) {
	lib := c.load()

	switch {
	case c.show != "":
		printGradient(c.lookup(lib, c.show))
	case c.remove != "":
		if c.libraryPath == "" {
			fatalf("--remove requires --library")
		}
		if err := lib.Remove(c.remove); err != nil {
			fatalf("remove: %v", err)
		}
		if err := lib.SaveFile(c.libraryPath); err != nil {
			fatalf("save library: %v", err)
		}
	default:
		for _, name := range lib.Names() {
			fmt.Println(name)
		}
	}
}
