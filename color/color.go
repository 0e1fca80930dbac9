package color

import (
	"fmt"
	"math"
	"strings"
)

// Color is a mutable color value. Normalized RGB is the only stored state;
// hex, name, HSV, HLS and YIQ are derived from it on every read. Hex and
// name are lossy projections: each channel is rounded to 8 bits.
//
// A Color is not safe for concurrent mutation.
type Color struct {
	rgb Triplet
}

// Source selects how New builds a Color. Use ByName, ByHex, ByRGB, ByHLS,
// ByHSV or ByColor.
type Source interface {
	resolve() (Triplet, error)
}

type nameSource string

func (s nameSource) resolve() (Triplet, error) {
	_, hex, err := LookupName(string(s))
	if err != nil {
		return Triplet{}, err
	}
	return HexToRGB(hex, true)
}

type hexSource string

func (s hexSource) resolve() (Triplet, error) {
	return HexToRGB(string(s), true)
}

type tripletSource struct {
	mode Mode
	t    Triplet
}

func (s tripletSource) resolve() (Triplet, error) {
	return toRGB(s.mode, s.t)
}

type colorSource struct {
	c *Color
}

func (s colorSource) resolve() (Triplet, error) {
	if s.c == nil {
		return Triplet{}, &ArgumentError{Reason: "nil color"}
	}
	return s.c.rgb, nil
}

type stringSource string

func (s stringSource) resolve() (Triplet, error) {
	if IsValidHex(string(s)) {
		return hexSource(s).resolve()
	}
	return nameSource(s).resolve()
}

// ByString uses the same rule as Parse: hex when the string is a valid hex
// color, a color name otherwise.
func ByString(s string) Source { return stringSource(s) }

// ByName resolves a name from the XFree86 table; case and spaces are ignored.
func ByName(name string) Source { return nameSource(name) }

// ByHex parses any hex form accepted by NormalizeHex.
func ByHex(hex string) Source { return hexSource(hex) }

// ByRGB uses a normalized RGB triplet.
func ByRGB(r, g, b float64) Source { return tripletSource{ModeRGB, Triplet{r, g, b}} }

// ByHLS uses a normalized HLS triplet.
func ByHLS(h, l, s float64) Source { return tripletSource{ModeHLS, Triplet{h, l, s}} }

// ByHSV uses a normalized HSV triplet.
func ByHSV(h, s, v float64) Source { return tripletSource{ModeHSV, Triplet{h, s, v}} }

// ByColor copies the RGB of an existing Color.
func ByColor(c *Color) Source { return colorSource{c} }

// New creates a Color from exactly one source.
func New(src Source) (*Color, error) {
	if src == nil {
		return nil, &ArgumentError{Reason: "a color source is required"}
	}
	rgb, err := src.resolve()
	if err != nil {
		return nil, err
	}
	return &Color{rgb: rgb}, nil
}

// Parse creates a Color from a string: hex when the string is a valid hex
// color, a color name otherwise.
func Parse(s string) (*Color, error) {
	return New(ByString(s))
}

// MustParse is like Parse but panics on error.
func MustParse(s string) *Color {
	return MustNew(ByString(s))
}

// MustNew is like New but panics on error.
func MustNew(src Source) *Color {
	c, err := New(src)
	if err != nil {
		panic(err)
	}
	return c
}

// toRGB validates a normalized triplet of the given model and converts it to RGB.
func toRGB(mode Mode, t Triplet) (Triplet, error) {
	switch mode {
	case ModeHSV:
		rgb, err := HSVToRGB(t[0], t[1], t[2], true)
		return clampTriplet(rgb), err
	case ModeHLS:
		rgb, err := HLSToRGB(t[0], t[1], t[2], true)
		return clampTriplet(rgb), err
	default:
		if err := checkTriplet(t[0], t[1], t[2], 1, 1, 1); err != nil {
			return Triplet{}, err
		}
		return t, nil
	}
}

// RGB returns the stored normalized RGB triplet.
func (c *Color) RGB() Triplet { return c.rgb }

// Hex returns the canonical hex string of the color, rounded to 8 bits per channel.
func (c *Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", quantize(c.rgb[0]*255), quantize(c.rgb[1]*255), quantize(c.rgb[2]*255))
}

// Name returns the canonical table name matching Hex exactly, or Undefined.
func (c *Color) Name() string { return NameForHex(c.Hex()) }

// HSV returns the normalized HSV triplet.
func (c *Color) HSV() Triplet {
	t, _ := RGBToHSV(c.rgb[0], c.rgb[1], c.rgb[2], true)
	return t
}

// HLS returns the normalized HLS triplet.
func (c *Color) HLS() Triplet {
	t, _ := RGBToHLS(c.rgb[0], c.rgb[1], c.rgb[2], true)
	return t
}

// YIQ returns the YIQ triplet.
func (c *Color) YIQ() Triplet {
	t, _ := RGBToYIQ(c.rgb[0], c.rgb[1], c.rgb[2])
	return t
}

func (c *Color) Red() float64           { return c.rgb[0] }
func (c *Color) Green() float64         { return c.rgb[1] }
func (c *Color) Blue() float64          { return c.rgb[2] }
func (c *Color) Hue() float64           { return c.HLS()[0] }
func (c *Color) Lightness() float64     { return c.HLS()[1] }
func (c *Color) SaturationHLS() float64 { return c.HLS()[2] }

// Value returns the V channel of HSV.
func (c *Color) Value() float64 { return c.HSV()[2] }

// SetName sets the color from a table name. The stored RGB is the 8-bit
// value of the table entry.
func (c *Color) SetName(name string) error {
	_, hex, err := LookupName(name)
	if err != nil {
		return err
	}
	return c.SetHex(hex)
}

// SetHex sets the color from a hex string; RGB becomes the quantized value.
func (c *Color) SetHex(hex string) error {
	rgb, err := HexToRGB(hex, true)
	if err != nil {
		return err
	}
	c.rgb = rgb
	return nil
}

// SetRGB stores a normalized RGB triplet as given. Hex and Name reflect its
// 8-bit rounding while RGB keeps full precision.
func (c *Color) SetRGB(r, g, b float64) error {
	rgb, err := toRGB(ModeRGB, Triplet{r, g, b})
	if err != nil {
		return err
	}
	c.rgb = rgb
	return nil
}

// SetHSV converts a normalized HSV triplet to RGB and stores it.
func (c *Color) SetHSV(h, s, v float64) error {
	rgb, err := toRGB(ModeHSV, Triplet{h, s, v})
	if err != nil {
		return err
	}
	return c.SetRGB(rgb[0], rgb[1], rgb[2])
}

// SetHLS converts a normalized HLS triplet to RGB and stores it.
func (c *Color) SetHLS(h, l, s float64) error {
	rgb, err := toRGB(ModeHLS, Triplet{h, l, s})
	if err != nil {
		return err
	}
	return c.SetRGB(rgb[0], rgb[1], rgb[2])
}

func (c *Color) setRGBChannel(i int, v float64) error {
	t := c.rgb
	t[i] = v
	return c.SetRGB(t[0], t[1], t[2])
}

func (c *Color) setHLSChannel(i int, v float64) error {
	t := c.HLS()
	t[i] = v
	return c.SetHLS(t[0], t[1], t[2])
}

func (c *Color) SetRed(v float64) error           { return c.setRGBChannel(0, v) }
func (c *Color) SetGreen(v float64) error         { return c.setRGBChannel(1, v) }
func (c *Color) SetBlue(v float64) error          { return c.setRGBChannel(2, v) }
func (c *Color) SetHue(v float64) error           { return c.setHLSChannel(0, v) }
func (c *Color) SetLightness(v float64) error     { return c.setHLSChannel(1, v) }
func (c *Color) SetSaturationHLS(v float64) error { return c.setHLSChannel(2, v) }

// SetValue replaces the V channel of HSV.
func (c *Color) SetValue(v float64) error {
	t := c.HSV()
	t[2] = v
	return c.SetHSV(t[0], t[1], t[2])
}

// Brighten returns a new Color with HLS lightness raised by pct, clamped to
// [0,1]. A negative pct darkens.
func (c *Color) Brighten(pct float64) *Color {
	hls := c.HLS()
	l := clamp01(hls[1] + pct)
	rgb, _ := toRGB(ModeHLS, Triplet{hls[0], l, hls[2]})
	return &Color{rgb: rgb}
}

// Darken returns a new Color with HLS lightness lowered by pct.
func (c *Color) Darken(pct float64) *Color {
	return c.Brighten(-pct)
}

func (c *Color) String() string {
	var b strings.Builder
	hsv, hls := c.HSV(), c.HLS()
	rgb255 := Denormalize(c.rgb, ModeRGB)
	hsvD, hlsD := Denormalize(hsv, ModeHSV), Denormalize(hls, ModeHLS)
	fmt.Fprintf(&b, "Color %s\n", c.Name())
	fmt.Fprintf(&b, "  hexa code: %s\n", c.Hex())
	fmt.Fprintf(&b, "  RGB code: %s\n", formatTriplet(c.rgb))
	fmt.Fprintf(&b, "  RGB code (un-normalised): %s\n\n", formatTriplet(rgb255))
	fmt.Fprintf(&b, "  HSV code: %s\n", formatTriplet(hsv))
	fmt.Fprintf(&b, "  HSV code (un-normalised): %s\n\n", formatTriplet(hsvD))
	fmt.Fprintf(&b, "  HLS code: %s\n", formatTriplet(hls))
	fmt.Fprintf(&b, "  HLS code (un-normalised): %s\n", formatTriplet(hlsD))
	return b.String()
}

func formatTriplet(t Triplet) string {
	return fmt.Sprintf("(%g, %g, %g)", t[0], t[1], t[2])
}

func clampTriplet(t Triplet) Triplet {
	return Triplet{clamp01(t[0]), clamp01(t[1]), clamp01(t[2])}
}

// clamp01 clamps a value to the [0, 1] range.
func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
