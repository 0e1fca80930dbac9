// Package colormap builds piecewise-linear color gradients from a few color
// stops and resolves named colormap requests against a plotting backend.
package colormap

import (
	"fmt"
	"slices"

	"github.com/jsvensson/colormap/color"
	"gonum.org/v1/gonum/floats"
)

// DefaultLevels is the number of discrete levels a backend generates when no
// resolution is given.
const DefaultLevels = 256

// ControlPoint is one sample of a channel curve. Y0 is the value approached
// from the left of X and Y1 the value leaving it; they differ only at a
// discontinuity.
type ControlPoint struct {
	X, Y0, Y1 float64
}

// Channels holds the control points of the three color channels.
type Channels struct {
	Red, Green, Blue []ControlPoint
}

// Reversed returns the channels mirrored around x = 0.5.
func (ch Channels) Reversed() Channels {
	return Channels{
		Red:   reversePoints(ch.Red),
		Green: reversePoints(ch.Green),
		Blue:  reversePoints(ch.Blue),
	}
}

func reversePoints(pts []ControlPoint) []ControlPoint {
	out := make([]ControlPoint, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = ControlPoint{X: 1 - p.X, Y0: p.Y1, Y1: p.Y0}
	}
	return out
}

// Spec lists evenly spaced samples per channel, each in [0,1]. All three
// sequences have the same length of at least 2.
type Spec struct {
	Red, Green, Blue []float64
}

// Validate checks lengths and value ranges.
func (s Spec) Validate() error {
	n := len(s.Red)
	if n < 2 {
		return &color.ArgumentError{Reason: fmt.Sprintf("colormap needs at least 2 stops, got %d", n)}
	}
	if len(s.Green) != n || len(s.Blue) != n {
		return &color.ArgumentError{Reason: fmt.Sprintf("channel lengths differ: red=%d green=%d blue=%d", n, len(s.Green), len(s.Blue))}
	}
	for _, ch := range [][]float64{s.Red, s.Green, s.Blue} {
		for _, v := range ch {
			if err := color.CheckRange(v, 0, 1); err != nil {
				return err
			}
		}
	}
	return nil
}

// Reversed returns a copy of the spec with every channel reversed.
func (s Spec) Reversed() Spec {
	r := Spec{
		Red:   slices.Clone(s.Red),
		Green: slices.Clone(s.Green),
		Blue:  slices.Clone(s.Blue),
	}
	slices.Reverse(r.Red)
	slices.Reverse(r.Green)
	slices.Reverse(r.Blue)
	return r
}

// ControlPoints places the samples on an evenly spaced axis over [0,1] and
// turns each one into a continuous (x, v, v) control point.
func (s Spec) ControlPoints() Channels {
	index := floats.Span(make([]float64, len(s.Red)), 0, 1)
	points := func(values []float64) []ControlPoint {
		pts := make([]ControlPoint, len(values))
		for i, v := range values {
			pts[i] = ControlPoint{X: index[i], Y0: v, Y1: v}
		}
		return pts
	}
	return Channels{
		Red:   points(s.Red),
		Green: points(s.Green),
		Blue:  points(s.Blue),
	}
}

// SpecFromColors builds a spec whose stops are the given colors.
func SpecFromColors(colors ...*color.Color) Spec {
	var s Spec
	for _, c := range colors {
		s.Red = append(s.Red, c.Red())
		s.Green = append(s.Green, c.Green())
		s.Blue = append(s.Blue, c.Blue())
	}
	return s
}

// SpecFromSources resolves every source to a Color and builds a spec from them.
func SpecFromSources(sources ...color.Source) (Spec, error) {
	colors := make([]*color.Color, 0, len(sources))
	for _, src := range sources {
		c, err := color.New(src)
		if err != nil {
			return Spec{}, err
		}
		colors = append(colors, c)
	}
	return SpecFromColors(colors...), nil
}

// SpecFromHexes extracts the RGB curves of a list of hex colors, e.g.
// "#FF0000FF", "#FF4D00FF", ...
func SpecFromHexes(hexes []string) (Spec, error) {
	sources := make([]color.Source, len(hexes))
	for i, h := range hexes {
		sources[i] = color.ByHex(h)
	}
	return SpecFromSources(sources...)
}
