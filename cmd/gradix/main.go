// Command gradix blends, reshapes and exports color gradients for
// fractal flame tooling.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"go.coder.com/cli"

	"github.com/sableline/gradix/internal/gradient"
	"github.com/sableline/gradix/internal/param"
	"github.com/sableline/gradix/internal/preset"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	cli.RunRoot(&rootCmd{})
}

type rootCmd struct{}

func (r *rootCmd) Spec() cli.CommandSpec {
	return cli.CommandSpec{
		Name:  "gradix",
		Usage: "[subcommand] [flags]",
		Desc:  "Blend, redistribute, reorder and export color gradients.",
	}
}

func (r *rootCmd) Run(fl *pflag.FlagSet) {
	fl.Usage()
}

func (r *rootCmd) Subcommands() []cli.Command {
	return []cli.Command{
		&blendCmd{},
		&distributeCmd{},
		&reorderCmd{},
		&seamlessCmd{},
		&adjustCmd{},
		&exportCmd{},
		&extractCmd{},
		&presetsCmd{},
	}
}

func fatalf(format string, args ...any) {
	slog.Error(fmt.Sprintf(format, args...))
	os.Exit(1)
}

// libraryFlags is shared by every command that reads gradients by
// preset name.
type libraryFlags struct {
	libraryPath string
}

func (l *libraryFlags) register(fl *pflag.FlagSet) {
	fl.StringVar(&l.libraryPath, "library", "", "path to a YAML preset library with custom gradients")
}

func (l *libraryFlags) load() *preset.Library {
	lib := preset.NewLibrary()
	if l.libraryPath != "" {
		if err := lib.LoadFile(l.libraryPath); err != nil {
			fatalf("load library: %v", err)
		}
	}
	return lib
}

// lookup resolves a gradient by preset name, erroring on unknown names
// instead of using the library's silent default fallback.
func (l *libraryFlags) lookup(lib *preset.Library, name string) *gradient.Gradient {
	if !lib.Has(name) {
		fatalf("unknown gradient %q; run 'gradix presets' to list them", name)
	}
	return lib.Get(name)
}

// saveResult either prints the gradient or stores it back into the
// library file under the given name.
func (l *libraryFlags) saveResult(lib *preset.Library, saveAs string, g *gradient.Gradient) {
	if saveAs == "" {
		printGradient(g)
		return
	}
	if l.libraryPath == "" {
		fatalf("--save requires --library")
	}
	if err := lib.Add(saveAs, g); err != nil {
		fatalf("save %q: %v", saveAs, err)
	}
	if err := lib.SaveFile(l.libraryPath); err != nil {
		fatalf("save library: %v", err)
	}
	slog.Info("saved preset", "name", saveAs, "library", l.libraryPath)
}

func printGradient(g *gradient.Gradient) {
	fmt.Printf("%s (%d stops)\n", g.Meta.Name, len(g.Stops))
	for _, s := range g.Stops {
		fmt.Printf("  %.4f  %s\n", s.Position, s.Color.Hex())
	}
}

// resolveParams validates name=value flags against a parameter set.
func resolveParams(defs []param.Parameter, pairs []string) (param.Values, error) {
	return param.Resolve(defs, parseParams(pairs))
}

// parseParams turns repeated "name=value" flags into parameter values.
func parseParams(pairs []string) param.Values {
	vals := param.Values{}
	for _, pair := range pairs {
		name, raw, ok := strings.Cut(pair, "=")
		if !ok {
			fatalf("bad parameter %q, want name=value", pair)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			fatalf("bad parameter %q: %v", pair, err)
		}
		vals[name] = v
	}
	return vals
}
