package config

import (
	"github.com/jsvensson/colormap/color"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// Functions returns the HCL functions available in definition files. Every
// function returns a canonical hex string and accepts color names or hex
// strings wherever it takes a color.
func Functions() map[string]function.Function {
	return map[string]function.Function{
		"rgb":      makeRGBFunc(),
		"hsv":      makeTripletFunc("Converts hue (0-360), saturation and value (0-100) to a color", color.ModeHSV, color.ByHSV, "hue", "saturation", "value"),
		"hls":      makeTripletFunc("Converts hue (0-360), lightness and saturation (0-100) to a color", color.ModeHLS, color.ByHLS, "hue", "lightness", "saturation"),
		"brighten": makeShadeFunc("Brightens a color by the given percentage (-1.0 to 1.0)", (*color.Color).Brighten),
		"darken":   makeShadeFunc("Darkens a color by the given percentage (0.0 to 1.0)", (*color.Color).Darken),
		"named":    makeNamedFunc(),
		"oklch":    makeOKLCHFunc(),
		"tone":     makeToneFunc(),
	}
}

// FunctionNames lists the names of Functions in a fixed order.
var FunctionNames = []string{"rgb", "hsv", "hls", "oklch", "brighten", "darken", "tone", "named"}

func number(v cty.Value) float64 {
	f, _ := v.AsBigFloat().Float64()
	return f
}

func makeRGBFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Builds a color from red, green and blue channels (0-255)",
		Params: []function.Parameter{
			{Name: "red", Type: cty.Number},
			{Name: "green", Type: cty.Number},
			{Name: "blue", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			hex, err := color.RGBToHex(number(args[0]), number(args[1]), number(args[2]), false)
			if err != nil {
				return cty.NilVal, err
			}
			return cty.StringVal(hex), nil
		},
	})
}

func makeTripletFunc(desc string, mode color.Mode, source func(a, b, c float64) color.Source, names ...string) function.Function {
	params := make([]function.Parameter, len(names))
	for i, name := range names {
		params[i] = function.Parameter{Name: name, Type: cty.Number}
	}
	return function.New(&function.Spec{
		Description: desc,
		Params:      params,
		Type:        function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			t := color.Normalize(color.Triplet{number(args[0]), number(args[1]), number(args[2])}, mode)
			c, err := color.New(source(t[0], t[1], t[2]))
			if err != nil {
				return cty.NilVal, err
			}
			return cty.StringVal(c.Hex()), nil
		},
	})
}

func makeShadeFunc(desc string, shade func(*color.Color, float64) *color.Color) function.Function {
	return function.New(&function.Spec{
		Description: desc,
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
			{Name: "percentage", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := color.Parse(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}
			return cty.StringVal(shade(c, number(args[1])).Hex()), nil
		},
	})
}

func makeNamedFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Looks up a color by its XFree86 name",
		Params: []function.Parameter{
			{Name: "name", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			_, hex, err := color.LookupName(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}
			return cty.StringVal(hex), nil
		},
	})
}

func makeOKLCHFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Converts OKLCH lightness (0-1), chroma (0-0.5) and hue (0-360) to a color",
		Params: []function.Parameter{
			{Name: "lightness", Type: cty.Number},
			{Name: "chroma", Type: cty.Number},
			{Name: "hue", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := color.New(color.ByOKLCH(number(args[0]), number(args[1]), number(args[2])))
			if err != nil {
				return cty.NilVal, err
			}
			return cty.StringVal(c.Hex()), nil
		},
	})
}

func makeToneFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Sets the OKLCH lightness (0-1) of a color, keeping its hue and chroma",
		Params: []function.Parameter{
			{Name: "color", Type: cty.String},
			{Name: "lightness", Type: cty.Number},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := color.Parse(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}
			toned, err := c.WithLightness(number(args[1]))
			if err != nil {
				return cty.NilVal, err
			}
			return cty.StringVal(toned.Hex()), nil
		},
	})
}
