// Package segmented is a colormap backend producing lookup tables with the
// linear-segmented scheme used by matplotlib: each channel is a list of
// (x, y0, y1) control points and levels are linearly interpolated between
// them.
package segmented

import (
	"fmt"
	stdcolor "image/color"
	"math"
	"sort"
	"strings"

	"github.com/jsvensson/colormap"
	"github.com/jsvensson/colormap/color"
	"gonum.org/v1/gonum/floats"
)

// Colormap is a named lookup table of N colors.
type Colormap struct {
	name     string
	channels colormap.Channels
	lut      []color.Triplet
}

// New validates the control points and builds an n-level lookup table.
func New(name string, ch colormap.Channels, n int) (*Colormap, error) {
	if n < 1 {
		return nil, &color.ArgumentError{Reason: fmt.Sprintf("colormap %q: levels must be positive, got %d", name, n)}
	}
	var tables [3][]float64
	for i, pts := range [][]colormap.ControlPoint{ch.Red, ch.Green, ch.Blue} {
		if err := validate(pts); err != nil {
			return nil, fmt.Errorf("colormap %q %s channel: %w", name, channelNames[i], err)
		}
		tables[i] = lookupTable(n, pts)
	}
	lut := make([]color.Triplet, n)
	for i := range lut {
		lut[i] = color.Triplet{tables[0][i], tables[1][i], tables[2][i]}
	}
	return &Colormap{name: name, channels: ch, lut: lut}, nil
}

var channelNames = [3]string{"red", "green", "blue"}

func validate(pts []colormap.ControlPoint) error {
	if len(pts) == 0 {
		return &color.ArgumentError{Reason: "no control points"}
	}
	if pts[0].X != 0 || pts[len(pts)-1].X != 1 {
		return &color.ArgumentError{Reason: "control points must start at x=0 and end at x=1"}
	}
	for i, p := range pts {
		if i > 0 && p.X < pts[i-1].X {
			return &color.ArgumentError{Reason: "control point x values must be non-decreasing"}
		}
		if err := color.CheckRange(p.Y0, 0, 1); err != nil {
			return err
		}
		if err := color.CheckRange(p.Y1, 0, 1); err != nil {
			return err
		}
	}
	return nil
}

// lookupTable samples one channel at n evenly spaced positions. Between two
// control points the value runs from y1 of the left point to y0 of the right
// one.
func lookupTable(n int, pts []colormap.ControlPoint) []float64 {
	last := pts[len(pts)-1]
	if n == 1 {
		return []float64{last.Y0}
	}

	scale := float64(n - 1)
	xs := make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = p.X * scale
	}
	pos := floats.Span(make([]float64, n), 0, scale)

	lut := make([]float64, n)
	lut[0] = pts[0].Y1
	lut[n-1] = last.Y0
	for i := 1; i < n-1; i++ {
		k := sort.SearchFloat64s(xs, pos[i])
		left, right := pts[k-1], pts[k]
		distance := (pos[i] - xs[k-1]) / (xs[k] - xs[k-1])
		lut[i] = distance*(right.Y0-left.Y1) + left.Y1
	}
	for i, v := range lut {
		lut[i] = math.Min(1, math.Max(0, v))
	}
	return lut
}

// Name returns the colormap name.
func (c *Colormap) Name() string { return c.name }

// N returns the number of levels.
func (c *Colormap) N() int { return len(c.lut) }

// Channels returns the control points the table was built from.
func (c *Colormap) Channels() colormap.Channels { return c.channels }

// Level returns the normalized RGB triplet of level i.
func (c *Colormap) Level(i int) color.Triplet { return c.lut[i] }

// Index maps t in [0,1] to a level. Values outside the range are clamped.
func (c *Colormap) Index(t float64) int {
	n := len(c.lut)
	i := int(math.Floor(t * float64(n)))
	return max(0, min(i, n-1))
}

// At returns the color for t in [0,1].
func (c *Colormap) At(t float64) stdcolor.RGBA {
	return toRGBA(c.lut[c.Index(t)])
}

// Colors returns every level as a Color.
func (c *Colormap) Colors() []*color.Color {
	out := make([]*color.Color, len(c.lut))
	for i, t := range c.lut {
		// Levels are clamped to [0,1] so New cannot fail.
		out[i] = color.MustNew(color.ByRGB(t[0], t[1], t[2]))
	}
	return out
}

// Reversed returns the colormap mirrored end to end, named with an "_r"
// suffix.
func (c *Colormap) Reversed() *Colormap {
	cm, _ := New(reversedName(c.name), c.channels.Reversed(), len(c.lut))
	return cm
}

// Resampled rebuilds the colormap with n levels.
func (c *Colormap) Resampled(n int) (*Colormap, error) {
	return New(c.name, c.channels, n)
}

func toRGBA(t color.Triplet) stdcolor.RGBA {
	return stdcolor.RGBA{
		R: uint8(math.Round(t[0] * 255)),
		G: uint8(math.Round(t[1] * 255)),
		B: uint8(math.Round(t[2] * 255)),
		A: 0xff,
	}
}

func reversedName(name string) string {
	if base, ok := strings.CutSuffix(name, "_r"); ok {
		return base
	}
	return name + "_r"
}
