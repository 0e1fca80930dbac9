// Package render exports colormaps through text/template files.
package render

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/jsvensson/colormap/color"
	"github.com/jsvensson/colormap/segmented"
)

// DefaultStops is the number of evenly sampled colors in .Stops.
const DefaultStops = 11

// Engine loads Go templates and executes each one per colormap.
type Engine struct {
	TemplatesDir string
	OutputDir    string
	Formats      []string // if non-empty, only render these template basenames
	Stops        int      // number of colors in .Stops; DefaultStops when zero
}

// Run loads all .tmpl files from the templates directory and writes
// <OutputDir>/<colormap name>.<template basename> for every colormap.
func (e *Engine) Run(maps []*segmented.Colormap) error {
	pattern := filepath.Join(e.TemplatesDir, "*.tmpl")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("globbing templates: %w", err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("no .tmpl files found in %s", e.TemplatesDir)
	}

	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, tmplPath := range matches {
		baseName := strings.TrimSuffix(filepath.Base(tmplPath), ".tmpl")

		if !e.shouldRender(baseName) {
			continue
		}

		tmpl, err := template.New(filepath.Base(tmplPath)).Funcs(funcMap()).ParseFiles(tmplPath)
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", tmplPath, err)
		}

		for _, cm := range maps {
			outPath := filepath.Join(e.OutputDir, cm.Name()+"."+baseName)
			if err := e.renderTemplate(tmpl, outPath, cm); err != nil {
				return err
			}
		}
	}

	return nil
}

func (e *Engine) shouldRender(name string) bool {
	// If no formats are specified, render all.
	if len(e.Formats) == 0 {
		return true
	}

	return slices.Contains(e.Formats, name)
}

func (e *Engine) renderTemplate(tmpl *template.Template, outPath string, cm *segmented.Colormap) error {
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", outPath, err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, e.buildTemplateData(cm)); err != nil {
		return fmt.Errorf("executing template %s for %s: %w", tmpl.Name(), cm.Name(), err)
	}

	return nil
}

// templateData is the data passed to templates.
type templateData struct {
	Name     string
	N        int
	Colors   []*color.Color
	Stops    []*color.Color
	colormap *segmented.Colormap
}

// Sample returns the color at t in [0,1].
func (d templateData) Sample(t float64) *color.Color {
	l := d.colormap.Level(d.colormap.Index(t))
	return color.MustNew(color.ByRGB(l[0], l[1], l[2]))
}

func (e *Engine) buildTemplateData(cm *segmented.Colormap) templateData {
	data := templateData{
		Name:     cm.Name(),
		N:        cm.N(),
		Colors:   cm.Colors(),
		colormap: cm,
	}

	stops := e.Stops
	if stops <= 0 {
		stops = DefaultStops
	}
	for i := range stops {
		t := 0.0
		if stops > 1 {
			t = float64(i) / float64(stops-1)
		}
		data.Stops = append(data.Stops, data.Sample(t))
	}
	return data
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"hex": func(c *color.Color) string {
			return c.Hex()
		},
		"hexBare": func(c *color.Color) string {
			return strings.TrimPrefix(c.Hex(), "#")
		},
		"rgb": func(c *color.Color) string {
			return fmt.Sprintf("%.6f %.6f %.6f", c.Red(), c.Green(), c.Blue())
		},
		"rgb255": func(c *color.Color) string {
			t := color.Denormalize(c.RGB(), color.ModeRGB)
			return fmt.Sprintf("%.0f %.0f %.0f", math.Round(t[0]), math.Round(t[1]), math.Round(t[2]))
		},
		"name": func(c *color.Color) string {
			return c.Name()
		},
		"sample": func(d templateData, t float64) *color.Color {
			return d.Sample(t)
		},
	}
}
