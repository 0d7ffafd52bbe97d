package light

import (
	"github.com/chewxy/math32"
)

// Attenuation holds the constant, linear and quadratic falloff coefficients of a positional
// light: intensity = 1 / (Constant + Linear*d + Quadratic*d²).
type Attenuation struct {
	Constant  float32
	Linear    float32
	Quadratic float32
}

type attenuationPreset struct {
	rng float32
	Attenuation
}

// attenuationPresets is sorted by ascending range.
var attenuationPresets = []attenuationPreset{
	{7, Attenuation{1.0, 0.7, 1.8}},
	{13, Attenuation{1.0, 0.35, 0.44}},
	{20, Attenuation{1.0, 0.22, 0.20}},
	{32, Attenuation{1.0, 0.14, 0.07}},
	{50, Attenuation{1.0, 0.09, 0.032}},
	{65, Attenuation{1.0, 0.07, 0.017}},
	{100, Attenuation{1.0, 0.045, 0.0075}},
	{160, Attenuation{1.0, 0.027, 0.0028}},
	{200, Attenuation{1.0, 0.022, 0.0019}},
	{325, Attenuation{1.0, 0.014, 0.0007}},
	{600, Attenuation{1.0, 0.007, 0.0002}},
	{3250, Attenuation{1.0, 0.0014, 0.000007}},
}

// AttenuationRanges returns the ranges of the built-in presets in ascending order.
//
// Returns:
//   - []float32: preset ranges
func AttenuationRanges() []float32 {
	out := make([]float32, len(attenuationPresets))
	for i, p := range attenuationPresets {
		out[i] = p.rng
	}
	return out
}

// AttenuationForRange returns the preset whose range is closest to rng. The lookup is discrete;
// coefficients are never interpolated. When two presets are equally close the one with the
// lower range wins.
//
// Parameters:
//   - rng: the desired effective range in world units
//
// Returns:
//   - Attenuation: the coefficients of the nearest preset
func AttenuationForRange(rng float32) Attenuation {
	best := attenuationPresets[0]
	bestDiff := math32.Abs(best.rng - rng)
	for _, p := range attenuationPresets[1:] {
		// strict comparison keeps the lower key on ties
		if d := math32.Abs(p.rng - rng); d < bestDiff {
			best, bestDiff = p, d
		}
	}
	return best.Attenuation
}
