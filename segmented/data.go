package segmented

import "github.com/jsvensson/colormap"

// segment lists (x, y0, y1) rows of one channel.
type segment [][3]float64

func (s segment) points() []colormap.ControlPoint {
	pts := make([]colormap.ControlPoint, len(s))
	for i, row := range s {
		pts[i] = colormap.ControlPoint{X: row[0], Y0: row[1], Y1: row[2]}
	}
	return pts
}

func channels(red, green, blue segment) colormap.Channels {
	return colormap.Channels{Red: red.points(), Green: green.points(), Blue: blue.points()}
}

func same(s segment) colormap.Channels {
	return channels(s, s, s)
}

// fromList spreads colors evenly over [0,1].
func fromList(colors ...[3]float64) colormap.Channels {
	var spec colormap.Spec
	for _, c := range colors {
		spec.Red = append(spec.Red, c[0])
		spec.Green = append(spec.Green, c[1])
		spec.Blue = append(spec.Blue, c[2])
	}
	return spec.ControlPoints()
}

// builtins holds the segment data of the colormaps every Registry starts
// with, taken from matplotlib.
var builtins = map[string]colormap.Channels{
	"gray":   same(segment{{0, 0, 0}, {1, 1, 1}}),
	"binary": same(segment{{0, 1, 1}, {1, 0, 0}}),
	"autumn": channels(
		segment{{0, 1, 1}, {1, 1, 1}},
		segment{{0, 0, 0}, {1, 1, 1}},
		segment{{0, 0, 0}, {1, 0, 0}},
	),
	"bone": channels(
		segment{{0, 0, 0}, {0.746032, 0.652778, 0.652778}, {1, 1, 1}},
		segment{{0, 0, 0}, {0.365079, 0.319444, 0.319444}, {0.746032, 0.777778, 0.777778}, {1, 1, 1}},
		segment{{0, 0, 0}, {0.365079, 0.444444, 0.444444}, {1, 1, 1}},
	),
	"cool": channels(
		segment{{0, 0, 0}, {1, 1, 1}},
		segment{{0, 1, 1}, {1, 0, 0}},
		segment{{0, 1, 1}, {1, 1, 1}},
	),
	"copper": channels(
		segment{{0, 0, 0}, {0.809524, 1, 1}, {1, 1, 1}},
		segment{{0, 0, 0}, {1, 0.7812, 0.7812}},
		segment{{0, 0, 0}, {1, 0.4975, 0.4975}},
	),
	"hot": channels(
		segment{{0, 0.0416, 0.0416}, {0.365079, 1, 1}, {1, 1, 1}},
		segment{{0, 0, 0}, {0.365079, 0, 0}, {0.746032, 1, 1}, {1, 1, 1}},
		segment{{0, 0, 0}, {0.746032, 0, 0}, {1, 1, 1}},
	),
	"jet": channels(
		segment{{0, 0, 0}, {0.35, 0, 0}, {0.66, 1, 1}, {0.89, 1, 1}, {1, 0.5, 0.5}},
		segment{{0, 0, 0}, {0.125, 0, 0}, {0.375, 1, 1}, {0.64, 1, 1}, {0.91, 0, 0}, {1, 0, 0}},
		segment{{0, 0.5, 0.5}, {0.11, 1, 1}, {0.34, 1, 1}, {0.65, 0, 0}, {1, 0, 0}},
	),
	"spring": channels(
		segment{{0, 1, 1}, {1, 1, 1}},
		segment{{0, 0, 0}, {1, 1, 1}},
		segment{{0, 1, 1}, {1, 0, 0}},
	),
	"summer": channels(
		segment{{0, 0, 0}, {1, 1, 1}},
		segment{{0, 0.5, 0.5}, {1, 1, 1}},
		segment{{0, 0.4, 0.4}, {1, 0.4, 0.4}},
	),
	"winter": channels(
		segment{{0, 0, 0}, {1, 0, 0}},
		segment{{0, 0, 0}, {1, 1, 1}},
		segment{{0, 1, 1}, {1, 0.5, 0.5}},
	),
	"bwr":     fromList([3]float64{0, 0, 1}, [3]float64{1, 1, 1}, [3]float64{1, 0, 0}),
	"brg":     fromList([3]float64{0, 0, 1}, [3]float64{1, 0, 0}, [3]float64{0, 1, 0}),
	"seismic": fromList([3]float64{0, 0, 0.3}, [3]float64{0, 0, 1}, [3]float64{1, 1, 1}, [3]float64{1, 0, 0}, [3]float64{0.5, 0, 0}),
}
