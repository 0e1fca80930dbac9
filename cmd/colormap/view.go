package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jsvensson/colormap/internal/render"
	"github.com/jsvensson/colormap/segmented"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const defaultWidth = 80

var (
	flagPNGOut    string
	flagExportDir string
	flagWidth     int
	flagHeight    int
	flagTemplates string
	flagFormat    []string
)

var showCmd = &cobra.Command{
	Use:   "show <name> [name...]",
	Short: "Print a colormap as a terminal gradient",
	Long: "Print a colormap as a terminal gradient. One name selects a built-in or defined\n" +
		"colormap, two or three color names build a bicolor or linear colormap.",
	Args: cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, _, err := newBuilder()
		if err != nil {
			return err
		}
		cm, err := getColormap(cmd, b, args)
		if err != nil {
			return err
		}
		width := flagWidth
		if width <= 0 {
			width = terminalWidth()
		}
		writeGradient(cmd.OutOrStdout(), cm, width)
		return nil
	},
}

var pngCmd = &cobra.Command{
	Use:   "png <name> [name...]",
	Short: "Write a colormap as a PNG gradient strip",
	Args:  cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, _, err := newBuilder()
		if err != nil {
			return err
		}
		cm, err := getColormap(cmd, b, args)
		if err != nil {
			return err
		}

		path := flagPNGOut
		if path == "" {
			path = cm.Name() + ".png"
		}
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		defer f.Close()

		width := flagWidth
		if width <= 0 {
			width = cm.N()
		}
		if err := segmented.WritePNG(f, cm, width, flagHeight); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [name...]",
	Short: "Render colormaps through text templates",
	Long: "Render colormaps through the *.tmpl files of the templates directory. Without\n" +
		"arguments every colormap of the --config file is exported.",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, f, err := newBuilder()
		if err != nil {
			return err
		}

		names := args
		if len(names) == 0 {
			if f == nil {
				return fmt.Errorf("export needs colormap names or a --config file")
			}
			names = f.Names()
		}

		maps := make([]*segmented.Colormap, 0, len(names))
		for _, name := range names {
			cm, err := getColormap(cmd, b, []string{name})
			if err != nil {
				return err
			}
			maps = append(maps, cm)
		}

		e := &render.Engine{
			TemplatesDir: flagTemplates,
			OutputDir:    flagExportDir,
			Formats:      flagFormat,
		}
		if err := e.Run(maps); err != nil {
			return fmt.Errorf("exporting: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d colormaps to %s\n", len(maps), flagExportDir)
		return nil
	},
}

func init() {
	showCmd.Flags().IntVar(&flagWidth, "width", 0, "gradient width in columns (terminal width when zero)")

	pngCmd.Flags().StringVarP(&flagPNGOut, "out", "o", "", "output file (<name>.png when empty)")
	pngCmd.Flags().IntVar(&flagWidth, "width", 0, "image width (one pixel per level when zero)")
	pngCmd.Flags().IntVar(&flagHeight, "height", 32, "image height")

	exportCmd.Flags().StringVar(&flagExportDir, "out", "output", "output directory")
	exportCmd.Flags().StringVar(&flagTemplates, "templates", "templates", "templates directory")
	exportCmd.Flags().StringArrayVar(&flagFormat, "format", nil, "export only specific templates (can be repeated)")
}

// terminalWidth returns the width of stdout, or defaultWidth when stdout is
// not a terminal.
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// writeGradient prints one colored cell per column, sampling the colormap at
// the column centers.
func writeGradient(w io.Writer, cm *segmented.Colormap, width int) {
	out := termenv.NewOutput(w)
	var b strings.Builder
	for i := range width {
		c := cm.At((float64(i) + 0.5) / float64(width))
		hex := fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
		b.WriteString(out.String(" ").Background(out.Color(hex)).String())
	}
	fmt.Fprintln(w, b.String())
	fmt.Fprintf(w, "%s (%d levels)\n", cm.Name(), cm.N())
}
