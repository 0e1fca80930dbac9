package color

import "math"

// Triplet is an ordered 3-tuple of channel values: (R, G, B), (H, S, V) or
// (H, L, S) depending on the color model.
type Triplet [3]float64

// Mode selects the scale used by Normalize and Denormalize.
type Mode int

const (
	// ModeRGB scales every channel by 255.
	ModeRGB Mode = iota
	// ModeHLS scales hue by 360 and lightness/saturation by 100.
	ModeHLS
	// ModeHSV scales hue by 360 and saturation/value by 100.
	ModeHSV
)

func (m Mode) String() string {
	switch m {
	case ModeRGB:
		return "rgb"
	case ModeHLS:
		return "hls"
	case ModeHSV:
		return "hsv"
	default:
		return "unknown"
	}
}

func (m Mode) factors() Triplet {
	if m == ModeRGB {
		return Triplet{255, 255, 255}
	}
	return Triplet{360, 100, 100}
}

// Normalize scales a denormalized triplet down to [0,1].
func Normalize(t Triplet, mode Mode) Triplet {
	f := mode.factors()
	return Triplet{t[0] / f[0], t[1] / f[1], t[2] / f[2]}
}

// Denormalize scales a normalized triplet up to its conventional range.
func Denormalize(t Triplet, mode Mode) Triplet {
	f := mode.factors()
	return Triplet{t[0] * f[0], t[1] * f[1], t[2] * f[2]}
}

// quantize rounds a [0,255] channel to the nearest byte.
func quantize(v float64) uint8 {
	return uint8(math.Round(v))
}
