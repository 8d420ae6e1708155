package blend

import (
	"math"

	"github.com/sableline/gradix/internal/gradient"
	"github.com/sableline/gradix/internal/param"
)

// waveformBlender modulates each input's contribution with a wave
// function, so the gradients interfere constructively and destructively
// across the range.
type waveformBlender struct{}

var (
	paramWaveType = param.Parameter{
		Name: "wave_type", Min: 0, Max: 3, Default: 0,
		Description: "wave function (0=sine, 1=square, 2=triangle, 3=sawtooth)",
	}
	paramFrequencyRatio = param.Parameter{
		Name: "frequency_ratio", Min: 0.5, Max: 4, Default: 1,
		Description: "frequency step between successive gradients",
	}
	paramPhaseShift = param.Parameter{
		Name: "phase_shift", Min: 0, Max: 360, Default: 0,
		Description: "phase shift between waves in degrees",
	}
	paramInterference = param.Parameter{
		Name: "interference", Min: 0, Max: 1, Default: 0.7,
		Description: "strength of the interference modulation",
	}
	paramWaveAmplitude = param.Parameter{
		Name: "amplitude", Min: 0.1, Max: 2, Default: 1,
		Description: "amplitude of the wave patterns",
	}
)

func (waveformBlender) Name() string  { return "waveform" }
func (waveformBlender) Title() string { return "Waveform" }
func (waveformBlender) Description() string {
	return "wave interference patterns between gradients"
}
func (waveformBlender) Params() []param.Parameter {
	return []param.Parameter{paramWaveType, paramFrequencyRatio, paramPhaseShift, paramInterference, paramWaveAmplitude}
}

func (b waveformBlender) Blend(inputs []gradient.Weighted, vals param.Values) *gradient.Gradient {
	if len(inputs) == 0 {
		return merged(b.Title())
	}
	if len(inputs) == 1 {
		return cloneSingle(inputs[0], b.Title())
	}

	waveType := int(vals.Get(paramWaveType))
	freqRatio := vals.Get(paramFrequencyRatio)
	phaseShift := vals.Get(paramPhaseShift) * math.Pi / 180
	interference := vals.Get(paramInterference)
	amplitude := vals.Get(paramWaveAmplitude)

	out := merged(b.Title())
	out.Meta.Name = "Waveform Blend"

	for _, pos := range unionPositions(inputs) {
		waveSum := 0.0
		colors := make([]weightedColor, 0, len(inputs))

		for j, in := range inputs {
			frequency := 1 + float64(j)*freqRatio
			phase := float64(j) * phaseShift
			x := pos*frequency*2*math.Pi + phase

			wave := waveValue(waveType, x) * amplitude * in.Weight
			waveSum += math.Abs(wave)

			// The wave value modulates this gradient's contribution:
			// crests push it forward, troughs suppress it.
			contribution := (1 + wave*interference) / 2
			if contribution < 0 {
				contribution = 0
			}
			if contribution > 1 {
				contribution = 1
			}
			colors = append(colors, weightedColor{
				color:  in.Gradient.ColorAt(pos),
				weight: contribution,
			})
		}

		c := colors[0].color
		if waveSum > 0 {
			c = averageColors(colors)
		}
		out.Stops = append(out.Stops, gradient.Stop{Position: pos, Color: c})
	}
	return out
}

func waveValue(waveType int, x float64) float64 {
	switch waveType {
	case 1: // square
		if math.Sin(x) >= 0 {
			return 1
		}
		return -1
	case 2: // triangle
		return 2 / math.Pi * math.Asin(math.Sin(x))
	case 3: // sawtooth
		cycles := x / (2 * math.Pi)
		return 2 * (cycles - math.Floor(cycles+0.5))
	default: // sine
		return math.Sin(x)
	}
}
