package color

import "math"

// RGBToHSV converts RGB to HSV. Input is in [0,1] when normalized, [0,255]
// otherwise; the result is always normalized.
func RGBToHSV(r, g, b float64, normalized bool) (Triplet, error) {
	r, g, b, err := rgbInput(r, g, b, normalized)
	if err != nil {
		return Triplet{}, err
	}

	maxc := math.Max(math.Max(r, g), b)
	minc := math.Min(math.Min(r, g), b)
	if maxc == minc {
		return Triplet{0, 0, maxc}, nil
	}
	s := (maxc - minc) / maxc
	return Triplet{hue(r, g, b, maxc, minc), s, maxc}, nil
}

// HSVToRGB converts HSV to normalized RGB. Input is in [0,1] when normalized;
// otherwise hue is in [0,360] and saturation/value in [0,100].
func HSVToRGB(h, s, v float64, normalized bool) (Triplet, error) {
	t, err := hueInput(Triplet{h, s, v}, ModeHSV, normalized)
	if err != nil {
		return Triplet{}, err
	}
	h, s, v = t[0], t[1], t[2]

	if s == 0 {
		return Triplet{v, v, v}, nil
	}
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - s*f)
	w := v * (1 - s*(1-f))

	switch i % 6 {
	case 0:
		return Triplet{v, w, p}, nil
	case 1:
		return Triplet{q, v, p}, nil
	case 2:
		return Triplet{p, v, w}, nil
	case 3:
		return Triplet{p, q, v}, nil
	case 4:
		return Triplet{w, p, v}, nil
	default:
		return Triplet{v, p, q}, nil
	}
}

// RGBToHLS converts RGB to HLS. Input is in [0,1] when normalized, [0,255]
// otherwise; the result is always normalized.
func RGBToHLS(r, g, b float64, normalized bool) (Triplet, error) {
	r, g, b, err := rgbInput(r, g, b, normalized)
	if err != nil {
		return Triplet{}, err
	}

	maxc := math.Max(math.Max(r, g), b)
	minc := math.Min(math.Min(r, g), b)
	l := (maxc + minc) / 2
	if maxc == minc {
		return Triplet{0, l, 0}, nil
	}

	var s float64
	if l <= 0.5 {
		s = (maxc - minc) / (maxc + minc)
	} else {
		s = (maxc - minc) / (2 - maxc - minc)
	}
	return Triplet{hue(r, g, b, maxc, minc), l, s}, nil
}

// HLSToRGB converts HLS to normalized RGB. Input is in [0,1] when normalized;
// otherwise hue is in [0,360] and lightness/saturation in [0,100].
func HLSToRGB(h, l, s float64, normalized bool) (Triplet, error) {
	t, err := hueInput(Triplet{h, l, s}, ModeHLS, normalized)
	if err != nil {
		return Triplet{}, err
	}
	h, l, s = t[0], t[1], t[2]

	if s == 0 {
		return Triplet{l, l, l}, nil
	}
	var q float64
	if l <= 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return Triplet{
		hueToRGB(p, q, h+1.0/3.0),
		hueToRGB(p, q, h),
		hueToRGB(p, q, h-1.0/3.0),
	}, nil
}

func rgbInput(r, g, b float64, normalized bool) (float64, float64, float64, error) {
	upper := 1.0
	if !normalized {
		upper = 255
	}
	if err := checkTriplet(r, g, b, upper, upper, upper); err != nil {
		return 0, 0, 0, err
	}
	if !normalized {
		t := Normalize(Triplet{r, g, b}, ModeRGB)
		return t[0], t[1], t[2], nil
	}
	return r, g, b, nil
}

func hueInput(t Triplet, mode Mode, normalized bool) (Triplet, error) {
	upper := Triplet{1, 1, 1}
	if !normalized {
		upper = mode.factors()
	}
	if err := checkTriplet(t[0], t[1], t[2], upper[0], upper[1], upper[2]); err != nil {
		return Triplet{}, err
	}
	if !normalized {
		t = Normalize(t, mode)
	}
	return t, nil
}

// hue computes the hue in [0,1) shared by HSV and HLS.
func hue(r, g, b, maxc, minc float64) float64 {
	d := maxc - minc
	var h float64
	switch maxc {
	case r:
		h = (g - b) / d
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h = math.Mod(h/6, 1)
	if h < 0 {
		h++
	}
	return h
}

func hueToRGB(p, q, t float64) float64 {
	t = math.Mod(t, 1)
	if t < 0 {
		t++
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6.0*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6.0
	}
	return p
}
