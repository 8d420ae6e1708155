package preset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/sableline/gradix/internal/gradient"
	"github.com/sableline/gradix/internal/hue"
)

// stopRecord is the on-disk form of a color stop. Colors are stored as
// "#RRGGBB" so the files stay readable and hand-editable.
type stopRecord struct {
	Position float64 `yaml:"position"`
	Color    string  `yaml:"color"`
}

type libraryFile struct {
	Presets map[string][]stopRecord `yaml:"presets"`
}

// LoadFile merges custom presets from a YAML library file into l. A
// missing file is not an error; an empty library is the normal starting
// state.
func (l *Library) LoadFile(path string) error {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %q: %w", path, err)
	}

	var file libraryFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parse %q: %w", path, err)
	}

	for name, records := range file.Presets {
		stops := make([]gradient.Stop, 0, len(records))
		for _, rec := range records {
			c, err := hue.ParseHex(rec.Color)
			if err != nil {
				return fmt.Errorf("preset %q in %q: %w", name, path, err)
			}
			stops = append(stops, gradient.NewStop(rec.Position, c))
		}
		if err := l.Add(name, gradient.New(name, stops)); err != nil {
			return fmt.Errorf("preset %q in %q: %w", name, path, err)
		}
	}
	return nil
}

// SaveFile writes the custom presets to a YAML library file, creating
// parent directories as needed. Built-ins are never written.
func (l *Library) SaveFile(path string) error {
	file := libraryFile{Presets: map[string][]stopRecord{}}
	names := make([]string, 0, len(l.custom))
	for name := range l.custom {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		g := l.custom[name]
		records := make([]stopRecord, len(g.Stops))
		for i, s := range g.Stops {
			records[i] = stopRecord{Position: s.Position, Color: s.Color.Hex()}
		}
		file.Presets[name] = records
	}

	raw, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("marshal preset library: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %q: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	return nil
}
