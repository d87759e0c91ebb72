package main

import "math"

// gammaRamp is a 3×256 array of uint16 values (R, G, B channels), the
// layout SetDeviceGammaRamp expects.
type gammaRamp [3][256]uint16

// colorMode selects which channels receive the gamma curve.
type colorMode int

const (
	modeAll  colorMode = iota // curve on all three channels
	modeBlue                  // curve on blue only, red/green stay linear
)

func (m colorMode) String() string {
	if m == modeBlue {
		return "blue"
	}
	return "all"
}

func parseColorMode(s string) colorMode {
	if s == "blue" {
		return modeBlue
	}
	return modeAll
}

// next returns the following mode in the cycle all → blue → all.
func (m colorMode) next() colorMode {
	if m == modeAll {
		return modeBlue
	}
	return modeAll
}

// buildRamp constructs the lookup table for output = input^(1/gamma).
// Linear channels use i*257, which maps 0..255 onto 0..65535 exactly
// (255*257 = 65535); a float division would miss the top value.
func buildRamp(gamma float64, mode colorMode) gammaRamp {
	var ramp gammaRamp
	inv := 1.0 / gamma
	for i := 0; i < 256; i++ {
		x := float64(i) / 255.0
		y := math.Round(math.Pow(x, inv) * 65535)
		// Pow can overshoot 1.0 by an ulp at x=1.
		v := uint16(math.Max(0, math.Min(65535, y)))

		if mode == modeBlue {
			linear := uint16(i * 257)
			ramp[0][i] = linear
			ramp[1][i] = linear
			ramp[2][i] = v
		} else {
			ramp[0][i] = v
			ramp[1][i] = v
			ramp[2][i] = v
		}
	}
	return ramp
}
