package gradient

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sableline/gradix/internal/hue"
)

func TestJSON_RoundTrip(t *testing.T) {
	src := New("Ember", []Stop{
		{Position: 0, Color: hue.RGB{R: 10, G: 0, B: 0}},
		{Position: 0.5, Color: hue.RGB{R: 200, G: 80, B: 0}},
		{Position: 1, Color: hue.RGB{R: 255, G: 240, B: 200}},
	})
	src.Meta.Author = "someone"
	src.Meta.Seamless = true
	src.Meta.BlendRegion = 0.2

	raw, err := json.Marshal(src)
	require.NoError(t, err)

	var got Gradient
	require.NoError(t, json.Unmarshal(raw, &got))
	require.Equal(t, src.Meta, got.Meta)
	require.Equal(t, src.Stops, got.Stops)
}

func TestJSON_BadColor(t *testing.T) {
	var g Gradient
	err := json.Unmarshal([]byte(`{"name":"x","stops":[{"position":0,"color":"red"}]}`), &g)
	require.Error(t, err)
}

func TestJSON_TooManyStops(t *testing.T) {
	stops := make([]jsonStop, MaxStops+1)
	for i := range stops {
		stops[i] = jsonStop{Position: 0, Color: "#000000"}
	}
	raw, err := json.Marshal(jsonGradient{Name: "x", Stops: stops})
	require.NoError(t, err)

	var g Gradient
	require.Error(t, json.Unmarshal(raw, &g))
}
