package blend

import (
	"math"

	"github.com/sableline/gradix/internal/gradient"
	"github.com/sableline/gradix/internal/hue"
	"github.com/sableline/gradix/internal/param"
)

// memoryBlender walks positions left to right carrying a buffer of
// recent results; each new color mixes in a decaying echo of what came
// before, producing trailing effects.
type memoryBlender struct{}

var (
	paramMemoryLength = param.Parameter{
		Name: "memory_length", Min: 2, Max: 20, Default: 5,
		Description: "number of previous samples remembered",
	}
	paramDecayRate = param.Parameter{
		Name: "decay_rate", Min: 0.1, Max: 0.9, Default: 0.7,
		Description: "how fast memories fade",
	}
	paramFeedback = param.Parameter{
		Name: "feedback", Min: 0, Max: 1, Default: 0.3,
		Description: "how much the memory pulls on the current color",
	}
	paramEchoStrength = param.Parameter{
		Name: "echo_strength", Min: 0, Max: 1, Default: 0.5,
		Description: "strength of older samples relative to the newest",
	}
	paramMemoryMode = param.Parameter{
		Name: "memory_mode", Min: 0, Max: 2, Default: 0,
		Description: "decay shape (0=linear, 1=exponential, 2=oscillating)",
	}
)

func (memoryBlender) Name() string  { return "memory" }
func (memoryBlender) Title() string { return "Memory" }
func (memoryBlender) Description() string {
	return "echo and trailing effects from previously sampled positions"
}
func (memoryBlender) Params() []param.Parameter {
	return []param.Parameter{paramMemoryLength, paramDecayRate, paramFeedback, paramEchoStrength, paramMemoryMode}
}

type memorySample struct {
	color     hue.RGB
	timestamp int
}

func (b memoryBlender) Blend(inputs []gradient.Weighted, vals param.Values) *gradient.Gradient {
	if len(inputs) == 0 {
		return merged(b.Title())
	}
	if len(inputs) == 1 {
		return cloneSingle(inputs[0], b.Title())
	}

	memoryLength := int(vals.Get(paramMemoryLength))
	decayRate := vals.Get(paramDecayRate)
	feedback := vals.Get(paramFeedback)
	echoStrength := vals.Get(paramEchoStrength)
	memoryMode := int(vals.Get(paramMemoryMode))

	out := merged(b.Title())
	out.Meta.Name = "Memory Blend"

	var buffer []memorySample
	for i, pos := range unionPositions(inputs) {
		colors := make([]weightedColor, 0, len(inputs))
		for _, in := range inputs {
			colors = append(colors, weightedColor{
				color:  in.Gradient.ColorAt(pos),
				weight: in.Weight,
			})
		}
		current := averageColors(colors)

		final := current
		if len(buffer) > 0 {
			memory := processMemory(buffer, memoryLength, decayRate, memoryMode, echoStrength)
			final = hue.Blend(current, memory, feedback)
		}

		buffer = append(buffer, memorySample{color: final, timestamp: i})
		if len(buffer) > memoryLength {
			buffer = buffer[1:]
		}

		out.Stops = append(out.Stops, gradient.Stop{Position: pos, Color: final})
	}
	return out
}

// processMemory folds the buffer into one color, weighting each sample
// by its age according to the decay mode and damping all but the newest
// sample with the echo strength.
func processMemory(buffer []memorySample, memoryLength int, decayRate float64, mode int, echoStrength float64) hue.RGB {
	current := buffer[len(buffer)-1].timestamp

	colors := make([]weightedColor, 0, len(buffer))
	for i, m := range buffer {
		age := float64(current - m.timestamp)

		var w float64
		switch mode {
		case 1: // exponential
			w = math.Exp(-age * decayRate)
		case 2: // oscillating
			w = math.Exp(-age*decayRate*0.5) * (1 + math.Sin(age*math.Pi/2)*0.5)
		default: // linear
			w = 1 - age/float64(memoryLength)*decayRate
			if w < 0 {
				w = 0
			}
		}
		if i < len(buffer)-1 {
			w *= echoStrength
		}
		colors = append(colors, weightedColor{color: m.color, weight: w})
	}
	return averageColors(colors)
}
