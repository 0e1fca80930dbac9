package color

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// OKLab transforms. lmsFromLinear maps linear sRGB to cone responses and
// labFromLMS maps their cube roots to (L, a, b); the other two invert them.
var (
	lmsFromLinear = mat.NewDense(3, 3, []float64{
		0.4122214708, 0.5363325363, 0.0514459929,
		0.2119034982, 0.6806995451, 0.1073969566,
		0.0883024619, 0.2817188376, 0.6299787005,
	})
	labFromLMS = mat.NewDense(3, 3, []float64{
		0.2104542553, 0.7936177850, -0.0040720468,
		1.9779984951, -2.4285922050, 0.4505937099,
		0.0259040371, 0.7827717662, -0.8086757660,
	})
	lmsFromLab = mat.NewDense(3, 3, []float64{
		1, 0.3963377774, 0.2158037573,
		1, -0.1055613458, -0.0638541728,
		1, -0.0894841775, -1.2914855480,
	})
	linearFromLMS = mat.NewDense(3, 3, []float64{
		4.0767416621, -3.3077115913, 0.2309699292,
		-1.2684380046, 2.6097574011, -0.3413193965,
		-0.0041960863, -0.7034186147, 1.7076147010,
	})
)

// MaxChroma is the largest OKLCH chroma accepted by OKLCHToRGB. The sRGB
// gamut itself peaks near 0.37.
const MaxChroma = 0.5

// RGBToOKLCH converts a normalized RGB triplet to OKLCH: lightness in [0,1],
// chroma and hue in degrees [0,360).
func RGBToOKLCH(r, g, b float64) (Triplet, error) {
	if err := checkTriplet(r, g, b, 1, 1, 1); err != nil {
		return Triplet{}, err
	}
	lms := apply(lmsFromLinear, srgbToLinear(r), srgbToLinear(g), srgbToLinear(b))
	lab := apply(labFromLMS, math.Cbrt(lms[0]), math.Cbrt(lms[1]), math.Cbrt(lms[2]))

	hue := math.Atan2(lab[2], lab[1]) * 180 / math.Pi
	if hue < 0 {
		hue += 360
	}
	return Triplet{lab[0], math.Hypot(lab[1], lab[2]), hue}, nil
}

// OKLCHToRGB converts OKLCH to a normalized RGB triplet. Colors outside the
// sRGB gamut are clamped per channel.
func OKLCHToRGB(l, chroma, hue float64) (Triplet, error) {
	if err := checkTriplet(l, chroma, hue, 1, MaxChroma, 360); err != nil {
		return Triplet{}, err
	}
	rad := hue * math.Pi / 180
	lms := apply(lmsFromLab, l, chroma*math.Cos(rad), chroma*math.Sin(rad))
	lin := apply(linearFromLMS, lms[0]*lms[0]*lms[0], lms[1]*lms[1]*lms[1], lms[2]*lms[2]*lms[2])
	return Triplet{
		linearToSRGB(clamp01(lin[0])),
		linearToSRGB(clamp01(lin[1])),
		linearToSRGB(clamp01(lin[2])),
	}, nil
}

func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

func linearToSRGB(v float64) float64 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

type oklchSource Triplet

func (s oklchSource) resolve() (Triplet, error) {
	return OKLCHToRGB(s[0], s[1], s[2])
}

// ByOKLCH uses OKLCH lightness in [0,1], chroma in [0,MaxChroma] and hue in
// degrees.
func ByOKLCH(l, chroma, hue float64) Source { return oklchSource{l, chroma, hue} }

// OKLCH returns the color as (lightness, chroma, hue in degrees).
func (c *Color) OKLCH() Triplet {
	t, _ := RGBToOKLCH(c.rgb[0], c.rgb[1], c.rgb[2])
	return t
}

// WithLightness returns a new Color with OKLCH lightness l, keeping chroma
// and hue.
func (c *Color) WithLightness(l float64) (*Color, error) {
	t := c.OKLCH()
	return New(ByOKLCH(l, t[1], t[2]))
}
