package color

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// ITU-R BT.601 transforms.
var (
	rgbToYUV = mat.NewDense(3, 3, []float64{
		0.299, 0.587, 0.114,
		-32591.0 / 221500.0, -63983.0 / 221500.0, 0.436,
		0.615, -72201.0 / 140200.0, -7011.0 / 70100.0,
	})
	yuvToRGB = mat.NewDense(3, 3, []float64{
		1, 0, 701.0 / 615.0,
		1, -25251.0 / 63983.0, -209599.0 / 361005.0,
		1, 443.0 / 218.0, 0,
	})
	yuvToRGBInt = mat.NewDense(3, 3, []float64{
		1, 0, 1.13983,
		1, -0.39465, -0.58060,
		1, 2.03211, 0,
	})
	rgbToYIQ = newYIQ()
)

// newYIQ builds the NTSC transform from its luma/chroma definition:
// Y = .30R + .59G + .11B, I = .74(R-Y) - .27(B-Y), Q = .48(R-Y) + .41(B-Y).
func newYIQ() *mat.Dense {
	diff := mat.NewDense(3, 3, []float64{
		0.30, 0.59, 0.11,
		0.70, -0.59, -0.11,
		-0.30, -0.59, 0.89,
	})
	chroma := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 0.74, -0.27,
		0, 0.48, 0.41,
	})
	var m mat.Dense
	m.Mul(chroma, diff)
	return &m
}

func apply(m mat.Matrix, a, b, c float64) Triplet {
	var out mat.VecDense
	out.MulVec(m, mat.NewVecDense(3, []float64{a, b, c}))
	return Triplet{out.AtVec(0), out.AtVec(1), out.AtVec(2)}
}

// RGBToYUV converts a normalized RGB triplet to YUV.
func RGBToYUV(r, g, b float64) (Triplet, error) {
	if err := checkTriplet(r, g, b, 1, 1, 1); err != nil {
		return Triplet{}, err
	}
	return apply(rgbToYUV, r, g, b), nil
}

// YUVToRGB converts a YUV triplet with channels in [0,1] to RGB.
func YUVToRGB(y, u, v float64) (Triplet, error) {
	if err := checkTriplet(y, u, v, 1, 1, 1); err != nil {
		return Triplet{}, err
	}
	return apply(yuvToRGB, y, u, v), nil
}

// RGBToYUVInt converts an RGB triplet in [0,255] to YUV, truncating each
// channel toward zero.
func RGBToYUVInt(r, g, b float64) ([3]int, error) {
	if err := checkTriplet(r, g, b, 255, 255, 255); err != nil {
		return [3]int{}, err
	}
	return truncate(apply(rgbToYUV, r, g, b)), nil
}

// YUVToRGBInt converts a YUV triplet in [0,255] to RGB, truncating each
// channel toward zero.
func YUVToRGBInt(y, u, v float64) ([3]int, error) {
	if err := checkTriplet(y, u, v, 255, 255, 255); err != nil {
		return [3]int{}, err
	}
	return truncate(apply(yuvToRGBInt, y, u, v)), nil
}

// RGBToYIQ converts a normalized RGB triplet to YIQ.
func RGBToYIQ(r, g, b float64) (Triplet, error) {
	if err := checkTriplet(r, g, b, 1, 1, 1); err != nil {
		return Triplet{}, err
	}
	return apply(rgbToYIQ, r, g, b), nil
}

func truncate(t Triplet) [3]int {
	return [3]int{int(math.Trunc(t[0])), int(math.Trunc(t[1])), int(math.Trunc(t[2]))}
}

// ToIntensity maps n in [0,1] to an 8-bit intensity, round(n*127.5 + 127.5).
func ToIntensity(n float64) (int, error) {
	if err := CheckRange(n, 0, 1); err != nil {
		return 0, err
	}
	return int(math.Round(n*127.5 + 127.5)), nil
}
