package main

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/jsvensson/colormap"
	"github.com/jsvensson/colormap/color"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// convertFormats lists the representations accepted by convert. hex, web
// and name take one value, the others three.
var convertFormats = []string{"hex", "web", "name", "rgb", "rgb255", "hsv", "hls", "oklch", "yuv", "yiq"}

var convertCmd = &cobra.Command{
	Use:   "convert <from> <to> <values...>",
	Short: "Convert a color between representations",
	Long: "Convert a color between representations: " + strings.Join(convertFormats, ", ") + ".\n" +
		"rgb, hsv, hls and yuv values are normalized to [0,1]; rgb255 uses [0,255]; oklch takes\n" +
		"lightness, chroma and hue in degrees. yiq is output only.",
	Example: "  colormap convert hex hsv '#FF8000'\n  colormap convert rgb255 name 255 215 0",
	Args:    cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := parseColor(args[0], args[2:])
		if err != nil {
			return err
		}
		out, err := formatColor(c, args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

var colorCmd = &cobra.Command{
	Use:   "color <name|hex>",
	Short: "Describe a color and print a swatch",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := color.Parse(args[0])
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		fmt.Fprint(w, c)
		writeSwatch(w, c.Hex())
		return nil
	},
}

var flagColorNames bool

var namesCmd = &cobra.Command{
	Use:   "names",
	Short: "List the available colormaps",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		if flagColorNames {
			for _, nc := range color.Table() {
				fmt.Fprintf(w, "%s\t%s\n", nc.Hex, nc.Name)
			}
			return nil
		}
		b, _, err := newBuilder()
		if err != nil {
			return err
		}
		for _, name := range b.Names() {
			fmt.Fprintln(w, name)
		}
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list [category]",
	Short: "List colormap categories or the colormaps of one category",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		if len(args) == 0 {
			for _, name := range colormap.Categories() {
				fmt.Fprintln(w, name)
			}
			return nil
		}
		names, ok := colormap.Category(args[0])
		if !ok {
			return &color.LookupError{Kind: "category", Name: args[0]}
		}
		for _, name := range names {
			fmt.Fprintln(w, name)
		}
		return nil
	},
}

func init() {
	namesCmd.Flags().BoolVar(&flagColorNames, "colors", false, "list the named colors instead")
}

// parseColor reads a color given in the from representation.
func parseColor(from string, values []string) (*color.Color, error) {
	switch from {
	case "hex", "web", "name":
		if len(values) != 1 {
			return nil, &color.ArgumentError{Reason: fmt.Sprintf("%s takes 1 value, got %d", from, len(values))}
		}
		if from == "name" {
			return color.New(color.ByName(values[0]))
		}
		return color.New(color.ByHex(values[0]))
	}

	if !slices.Contains(convertFormats, from) || from == "yiq" {
		return nil, &color.ArgumentError{Reason: fmt.Sprintf("unknown input format %q", from)}
	}
	if len(values) != 3 {
		return nil, &color.ArgumentError{Reason: fmt.Sprintf("%s takes 3 values, got %d", from, len(values))}
	}
	var t color.Triplet
	for i, v := range values {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, &color.FormatError{Input: v, Reason: "not a number"}
		}
		t[i] = f
	}

	switch from {
	case "rgb255":
		for _, v := range t {
			if err := color.CheckRange(v, 0, 255); err != nil {
				return nil, err
			}
		}
		t = color.Normalize(t, color.ModeRGB)
		return color.New(color.ByRGB(t[0], t[1], t[2]))
	case "hsv":
		return color.New(color.ByHSV(t[0], t[1], t[2]))
	case "hls":
		return color.New(color.ByHLS(t[0], t[1], t[2]))
	case "oklch":
		return color.New(color.ByOKLCH(t[0], t[1], t[2]))
	case "yuv":
		rgb, err := color.YUVToRGB(t[0], t[1], t[2])
		if err != nil {
			return nil, err
		}
		return color.New(color.ByRGB(clampUnit(rgb[0]), clampUnit(rgb[1]), clampUnit(rgb[2])))
	default:
		return color.New(color.ByRGB(t[0], t[1], t[2]))
	}
}

// formatColor renders c in the to representation.
func formatColor(c *color.Color, to string) (string, error) {
	switch to {
	case "hex":
		return c.Hex(), nil
	case "web":
		return color.HexToWeb(c.Hex())
	case "name":
		return c.Name(), nil
	case "rgb":
		return formatTriplet(c.RGB()), nil
	case "rgb255":
		return formatTriplet(color.Denormalize(c.RGB(), color.ModeRGB)), nil
	case "hsv":
		return formatTriplet(c.HSV()), nil
	case "hls":
		return formatTriplet(c.HLS()), nil
	case "oklch":
		return formatTriplet(c.OKLCH()), nil
	case "yuv":
		rgb := c.RGB()
		t, err := color.RGBToYUV(rgb[0], rgb[1], rgb[2])
		return formatTriplet(t), err
	case "yiq":
		return formatTriplet(c.YIQ()), nil
	}
	return "", &color.ArgumentError{Reason: fmt.Sprintf("unknown output format %q", to)}
}

func formatTriplet(t color.Triplet) string {
	return fmt.Sprintf("%g %g %g", t[0], t[1], t[2])
}

func clampUnit(v float64) float64 {
	return min(1, max(0, v))
}

// writeSwatch prints a block in the given color. Outputs that are not a
// color terminal get plain spaces.
func writeSwatch(w io.Writer, hex string) {
	out := termenv.NewOutput(w)
	fmt.Fprintln(w, out.String("          ").Background(out.Color(hex)))
}
