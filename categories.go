package colormap

import "slices"

// Colormap names grouped the way matplotlib documents them. The lists are
// metadata only: whether a name resolves depends on the backend.
var (
	Sequentials = []string{
		"Blues", "BuGn", "BuPu", "GnBu", "Greens", "Greys", "OrRd",
		"Oranges", "PuBu", "PuBuGn", "PuRd", "Purples", "RdPu",
		"Reds", "YlGn", "YlGnBu", "YlOrBr", "YlOrRd",
	}
	Sequentials2 = []string{
		"afmhot", "autumn", "bone", "cool", "copper",
		"gist_heat", "gray", "hot", "pink",
		"spring", "summer", "winter",
	}
	Diverging = []string{
		"BrBG", "PRGn", "PiYG", "PuOr", "RdBu", "RdGy", "RdYlBu",
		"RdYlGn", "Spectral", "bwr", "coolwarm", "seismic",
	}
	// DivergingBlack names are three color tokens joined by "_" with black in
	// the middle. They are built locally rather than fetched from the backend.
	DivergingBlack = []string{
		"red_black_sky", "red_black_blue", "red_black_green", "yellow_black_blue",
		"yellow_black_sky", "red_black_orange", "pink_black_green(w3c)",
	}
	Qualitative = []string{
		"Accent", "Dark2", "Paired", "Pastel1", "Pastel2",
		"Set1", "Set2", "Set3",
	}
	Misc = []string{
		"gist_earth", "terrain", "ocean", "gist_stern",
		"brg", "CMRmap", "cubehelix", "gnuplot", "gnuplot2", "gist_ncar",
		"nipy_spectral", "jet", "rainbow", "gist_rainbow", "hsv", "flag", "prism",
	}
)

var categories = map[string][]string{
	"sequentials":     Sequentials,
	"sequentials2":    Sequentials2,
	"diverging":       Diverging,
	"diverging_black": DivergingBlack,
	"qualitative":     Qualitative,
	"misc":            Misc,
}

// Category returns a copy of the named category list.
func Category(name string) ([]string, bool) {
	names, ok := categories[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(names), true
}

// Categories returns the category names in sorted order.
func Categories() []string {
	out := make([]string, 0, len(categories))
	for name := range categories {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}
