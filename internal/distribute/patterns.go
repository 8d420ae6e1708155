package distribute

import (
	"math"

	"github.com/sableline/gradix/internal/param"
)

// Shared parameter definitions. Phase shifts wave patterns along their
// cycle; it replaces strength everywhere except the even pattern, which
// alone blends gradually between layouts.
var (
	paramStrength = param.Parameter{
		Name: "strength", Min: 0, Max: 1, Default: 1,
		Description: "how far to move from the original layout toward even spacing",
	}
	paramPhase = param.Parameter{
		Name: "phase", Min: 0, Max: 2 * math.Pi, Default: 0,
		Description: "wave offset in radians",
	}
)

type evenPattern struct{}

func (evenPattern) Name() string  { return "even" }
func (evenPattern) Title() string { return "Even Distribution" }
func (evenPattern) Description() string {
	return "perfectly even spacing with gradual strength control"
}
func (evenPattern) Params() []param.Parameter {
	return []param.Parameter{paramStrength}
}

func (evenPattern) Distribute(numStops int, original []float64, vals param.Values) []float64 {
	if numStops <= 1 {
		return []float64{0.5}
	}
	strength := vals.Get(paramStrength)
	orig := originalsOrEven(numStops, original)
	target := evenSpacing(numStops)

	var result []float64
	switch {
	case strength <= 0:
		result = orig
	case strength >= 1:
		result = target
	default:
		eased := smoothstep(strength)
		result = make([]float64, numStops)
		for i := range result {
			result[i] = orig[i] + (target[i]-orig[i])*eased
		}
	}
	return finalize(result)
}

type powerCurvePattern struct{}

var paramPower = param.Parameter{
	Name: "power", Min: 0.1, Max: 10, Default: 2,
	Description: "exponent of the curve; >1 compresses the start, <1 the end",
}

func (powerCurvePattern) Name() string  { return "power_curves" }
func (powerCurvePattern) Title() string { return "Power Curves" }
func (powerCurvePattern) Description() string {
	return "exponential position curves with phase offset"
}
func (powerCurvePattern) Params() []param.Parameter {
	return []param.Parameter{paramPower, paramPhase}
}

func (powerCurvePattern) Distribute(numStops int, original []float64, vals param.Values) []float64 {
	if numStops <= 2 {
		return twoOrFewer(numStops)
	}
	power := vals.Get(paramPower)
	phase := vals.Get(paramPhase)
	orig := originalsOrEven(numStops, original)

	// Phase slides the sampling window over the curve by up to half the
	// domain per full cycle.
	phaseOffset := phase / (2 * math.Pi) * 0.5
	target := make([]float64, numStops)
	for i, pos := range orig {
		shifted := math.Mod(pos+phaseOffset, 1.0)
		target[i] = math.Pow(shifted, power)
	}
	target[0] = 0
	target[numStops-1] = 1
	return finalize(target)
}

type sineWavePattern struct{}

var (
	paramSineFrequency = param.Parameter{
		Name: "frequency", Min: 0.1, Max: 8, Default: 2,
		Description: "wave cycles across the gradient",
	}
	paramSineAmplitude = param.Parameter{
		Name: "amplitude", Min: 0, Max: 0.4, Default: 0.2,
		Description: "maximum positional displacement",
	}
)

func (sineWavePattern) Name() string  { return "sine_wave" }
func (sineWavePattern) Title() string { return "Sine Wave" }
func (sineWavePattern) Description() string {
	return "sinusoidal position displacement with phase control"
}
func (sineWavePattern) Params() []param.Parameter {
	return []param.Parameter{paramSineFrequency, paramSineAmplitude, paramPhase}
}

func (sineWavePattern) Distribute(numStops int, original []float64, vals param.Values) []float64 {
	if numStops <= 2 {
		return twoOrFewer(numStops)
	}
	frequency := vals.Get(paramSineFrequency)
	amplitude := vals.Get(paramSineAmplitude)
	phase := vals.Get(paramPhase)
	orig := originalsOrEven(numStops, original)

	target := make([]float64, numStops)
	for i, pos := range orig {
		wave := math.Sin(2*math.Pi*frequency*pos + phase)
		target[i] = pos + amplitude*wave
	}
	return finalize(target)
}

type harmonicWavePattern struct{}

var (
	paramHarmonicFrequency = param.Parameter{
		Name: "frequency", Min: 0.5, Max: 6, Default: 2,
		Description: "base wave cycles across the gradient",
	}
	paramHarmonicAmplitude = param.Parameter{
		Name: "amplitude", Min: 0, Max: 0.3, Default: 0.15,
		Description: "maximum positional displacement",
	}
	paramHarmonics = param.Parameter{
		Name: "harmonics", Min: 2, Max: 6, Default: 4,
		Description: "number of overtones summed with 1/n decay",
	}
)

func (harmonicWavePattern) Name() string  { return "harmonic_wave" }
func (harmonicWavePattern) Title() string { return "Harmonic Wave" }
func (harmonicWavePattern) Description() string {
	return "summed overtone series with phase control"
}
func (harmonicWavePattern) Params() []param.Parameter {
	return []param.Parameter{paramHarmonicFrequency, paramHarmonicAmplitude, paramHarmonics, paramPhase}
}

func (harmonicWavePattern) Distribute(numStops int, original []float64, vals param.Values) []float64 {
	if numStops <= 2 {
		return twoOrFewer(numStops)
	}
	frequency := vals.Get(paramHarmonicFrequency)
	amplitude := vals.Get(paramHarmonicAmplitude)
	harmonics := int(math.Round(vals.Get(paramHarmonics)))
	phase := vals.Get(paramPhase)
	orig := originalsOrEven(numStops, original)

	target := make([]float64, numStops)
	for i, pos := range orig {
		wave := 0.0
		for h := 1; h <= harmonics; h++ {
			decay := 1.0 / float64(h)
			wave += decay * math.Sin(2*math.Pi*float64(h)*frequency*pos+phase)
		}
		wave *= 0.5 / float64(harmonics)
		target[i] = pos + amplitude*wave
	}
	return finalize(target)
}

type spirographPattern struct{}

var (
	paramOuterRadius = param.Parameter{
		Name: "outer_radius", Min: 1, Max: 10, Default: 5,
		Description: "fixed ring radius of the cycloid",
	}
	paramInnerRadius = param.Parameter{
		Name: "inner_radius", Min: 0.5, Max: 10, Default: 3,
		Description: "rolling wheel radius of the cycloid",
	}
	paramPenDistance = param.Parameter{
		Name: "pen_distance", Min: 0, Max: 10, Default: 2,
		Description: "pen offset from the rolling wheel center",
	}
	paramSpiroAmplitude = param.Parameter{
		Name: "amplitude", Min: 0, Max: 0.3, Default: 0.2,
		Description: "maximum positional displacement",
	}
)

func (spirographPattern) Name() string  { return "spirograph" }
func (spirographPattern) Title() string { return "Spirograph" }
func (spirographPattern) Description() string {
	return "hypotrochoid cycloid displacement with phase control"
}
func (spirographPattern) Params() []param.Parameter {
	return []param.Parameter{paramOuterRadius, paramInnerRadius, paramPenDistance, paramSpiroAmplitude, paramPhase}
}

func (spirographPattern) Distribute(numStops int, original []float64, vals param.Values) []float64 {
	if numStops <= 2 {
		return twoOrFewer(numStops)
	}
	outer := vals.Get(paramOuterRadius)
	inner := vals.Get(paramInnerRadius)
	pen := vals.Get(paramPenDistance)
	amplitude := vals.Get(paramSpiroAmplitude)
	phase := vals.Get(paramPhase)
	orig := originalsOrEven(numStops, original)

	target := make([]float64, numStops)
	for i, pos := range orig {
		theta := pos*4*math.Pi + phase
		x := (outer-inner)*math.Cos(theta) + pen*math.Cos((outer-inner)/inner*theta)
		target[i] = pos + amplitude*(x/(outer+pen))
	}
	return finalize(target)
}

type complexWavePattern struct{}

var (
	paramComplexFrequency = param.Parameter{
		Name: "frequency", Min: 0.5, Max: 6, Default: 2,
		Description: "base wave cycles across the gradient",
	}
	paramComplexAmplitude = param.Parameter{
		Name: "amplitude", Min: 0, Max: 0.3, Default: 0.2,
		Description: "maximum positional displacement",
	}
	paramComplexity = param.Parameter{
		Name: "complexity", Min: 1, Max: 4, Default: 2,
		Description: "how many wave families to layer (sine, golden, triangle, square)",
	}
)

func (complexWavePattern) Name() string  { return "complex_wave" }
func (complexWavePattern) Title() string { return "Complex Wave" }
func (complexWavePattern) Description() string {
	return "layered multi-waveform displacement with phase control"
}
func (complexWavePattern) Params() []param.Parameter {
	return []param.Parameter{paramComplexFrequency, paramComplexAmplitude, paramComplexity, paramPhase}
}

func (complexWavePattern) Distribute(numStops int, original []float64, vals param.Values) []float64 {
	if numStops <= 2 {
		return twoOrFewer(numStops)
	}
	frequency := vals.Get(paramComplexFrequency)
	amplitude := vals.Get(paramComplexAmplitude)
	complexity := int(math.Round(vals.Get(paramComplexity)))
	phase := vals.Get(paramPhase)
	orig := originalsOrEven(numStops, original)

	const golden = 1.618
	target := make([]float64, numStops)
	for i, pos := range orig {
		wave := 0.0
		if complexity >= 1 {
			wave += math.Sin(2*math.Pi*frequency*pos + phase)
		}
		if complexity >= 2 {
			wave += 0.6 * math.Sin(2*math.Pi*frequency*golden*pos+phase)
		}
		if complexity >= 3 {
			triangle := 0.0
			for n := 1; n < 8; n += 2 {
				sign := 1.0
				if ((n-1)/2)%2 == 1 {
					sign = -1
				}
				triangle += sign / float64(n*n) * math.Sin(float64(n)*2*math.Pi*frequency*pos+phase)
			}
			wave += 0.4 * triangle
		}
		if complexity >= 4 {
			square := 0.0
			for n := 1; n < 6; n += 2 {
				square += 1.0 / float64(n) * math.Sin(float64(n)*2*math.Pi*frequency*pos+phase)
			}
			wave += 0.3 * square
		}
		wave /= float64(complexity)
		target[i] = pos + amplitude*wave
	}
	return finalize(target)
}

type goldenRatioPattern struct{}

func (goldenRatioPattern) Name() string  { return "golden_ratio" }
func (goldenRatioPattern) Title() string { return "Golden Ratio" }
func (goldenRatioPattern) Description() string {
	return "golden-angle spacing with phase control"
}
func (goldenRatioPattern) Params() []param.Parameter {
	return []param.Parameter{paramPhase}
}

func (goldenRatioPattern) Distribute(numStops int, original []float64, vals param.Values) []float64 {
	if numStops <= 1 {
		return []float64{0.5}
	}
	phase := vals.Get(paramPhase)

	phi := (1 + math.Sqrt(5)) / 2
	goldenAngle := 2 * math.Pi / (phi * phi)

	target := make([]float64, numStops)
	for i := range target {
		switch i {
		case 0:
			target[i] = 0
		case numStops - 1:
			target[i] = 1
		default:
			angle := math.Mod(float64(i)*goldenAngle+phase, 2*math.Pi)
			if angle < 0 {
				angle += 2 * math.Pi
			}
			target[i] = angle / (2 * math.Pi)
		}
	}
	return finalize(target)
}

// twoOrFewer handles the degenerate stop counts wave patterns share:
// one stop sits at the middle, two pin to the ends.
func twoOrFewer(numStops int) []float64 {
	if numStops == 2 {
		return []float64{0, 1}
	}
	return []float64{0.5}
}
