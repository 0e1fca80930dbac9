package colormap

// HeatSpec is the equivalent of R's heat.colors(): red through orange and
// yellow to white.
func HeatSpec() Spec {
	return Spec{
		Red:   []float64{1, 1, 1, 1, 1},
		Green: []float64{0, .35, .7, 1, 1},
		Blue:  []float64{0, 0, 0, 0, 1},
	}
}

// RainbowSpec is similar to R's rainbow(); red appears at both ends.
func RainbowSpec() Spec {
	return Spec{
		Red:   []float64{1, 1, 0, 0, 0, 1, 1},
		Green: []float64{0, 1, 1, 1, 0, 0, 0},
		Blue:  []float64{0, 0, 0, 1, 1, 1, 0},
	}
}

// RedGreenSpec runs from dark red to light gray. Builder.RedGreen reverses
// it by default.
func RedGreenSpec() Spec {
	return Spec{
		Red:   []float64{1, 1, 1, 1, 1, .9, .8, .6, .3, .1},
		Green: []float64{0, .4, .6, .75, .8, .9, 1, .9, .8, .6},
		Blue:  []float64{0, .4, .6, .75, .8, .7, .6, .35, .17, .1},
	}
}
