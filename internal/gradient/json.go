package gradient

import (
	"encoding/json"
	"fmt"

	"github.com/sableline/gradix/internal/hue"
)

// jsonGradient is the dump/restore wire form. Colors travel as
// "#RRGGBB" strings so dumps stay diffable.
type jsonGradient struct {
	Name        string     `json:"name"`
	Author      string     `json:"author,omitempty"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"`
	Seamless    bool       `json:"seamless,omitempty"`
	BlendRegion float64    `json:"blend_region,omitempty"`
	Stops       []jsonStop `json:"stops"`
}

type jsonStop struct {
	Position float64 `json:"position"`
	Color    string  `json:"color"`
}

// MarshalJSON implements json.Marshaler.
func (g *Gradient) MarshalJSON() ([]byte, error) {
	out := jsonGradient{
		Name:        g.Meta.Name,
		Author:      g.Meta.Author,
		Description: g.Meta.Description,
		Category:    g.Meta.Category,
		Seamless:    g.Meta.Seamless,
		BlendRegion: g.Meta.BlendRegion,
		Stops:       make([]jsonStop, len(g.Stops)),
	}
	for i, s := range g.Stops {
		out.Stops[i] = jsonStop{Position: s.Position, Color: s.Color.Hex()}
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (g *Gradient) UnmarshalJSON(data []byte) error {
	var in jsonGradient
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("unmarshal gradient: %w", err)
	}
	if len(in.Stops) > MaxStops {
		return fmt.Errorf("gradient %q has %d stops (max %d)", in.Name, len(in.Stops), MaxStops)
	}

	g.Meta = Metadata{
		Name:        in.Name,
		Author:      in.Author,
		Description: in.Description,
		Category:    in.Category,
		Seamless:    in.Seamless,
		BlendRegion: in.BlendRegion,
	}
	g.Stops = g.Stops[:0]
	for _, s := range in.Stops {
		c, err := hue.ParseHex(s.Color)
		if err != nil {
			return fmt.Errorf("gradient %q: %w", in.Name, err)
		}
		g.Stops = append(g.Stops, NewStop(s.Position, c))
	}
	return nil
}
