// Package config loads colormap definition files written in HCL.
package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/colormap"
	"github.com/jsvensson/colormap/color"
	"github.com/zclconf/go-cty/cty"
)

// File is a fully-resolved definition file.
type File struct {
	Defaults  Defaults
	Palette   *Palette
	Colormaps []*Definition
}

// Defaults apply to every colormap that does not override them.
type Defaults struct {
	Levels  int
	Reverse bool
}

// Definition is one colormap block.
type Definition struct {
	Name    string
	Stops   []*color.Color // nil when the channels were given directly
	Spec    colormap.Spec
	Levels  int
	Reverse bool
	Range   hcl.Range
}

// Palette holds the named colors of the palette block in source order.
type Palette struct {
	Names  []string
	Colors map[string]*color.Color
	Ranges map[string]hcl.Range
}

type paletteBlock struct {
	Entries hcl.Body `hcl:",remain"`
}

type defaultsBlock struct {
	Levels  *int  `hcl:"levels,optional"`
	Reverse *bool `hcl:"reverse,optional"`
}

type colormapBlock struct {
	Name    string    `hcl:"name,label"`
	Stops   []string  `hcl:"stops,optional"`
	Red     []float64 `hcl:"red,optional"`
	Green   []float64 `hcl:"green,optional"`
	Blue    []float64 `hcl:"blue,optional"`
	Levels  *int      `hcl:"levels,optional"`
	Reverse *bool     `hcl:"reverse,optional"`
}

type rawFile struct {
	Palette   *paletteBlock   `hcl:"palette,block"`
	Defaults  *defaultsBlock  `hcl:"defaults,block"`
	Colormaps []colormapBlock `hcl:"colormap,block"`
}

// Load reads and decodes a definition file.
func Load(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading definition file: %w", err)
	}
	return Parse(src, path)
}

// Parse decodes definition file content.
func Parse(src []byte, filename string) (*File, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %w", diags)
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("parsed body is not an hclsyntax.Body")
	}
	f, diags := Decode(body)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decoding %s: %w", filename, diags)
	}
	return f, nil
}

// Decode resolves a parsed body. It keeps going after errors so every
// problem is reported; the returned File holds the definitions that decoded
// cleanly.
func Decode(body *hclsyntax.Body) (*File, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	f := &File{
		Defaults: Defaults{Levels: colormap.DefaultLevels},
		Palette:  &Palette{Colors: map[string]*color.Color{}, Ranges: map[string]hcl.Range{}},
	}

	// The palette is evaluated first so colormap blocks can reference it.
	var colormapBlocks []*hclsyntax.Block
	for _, block := range body.Blocks {
		switch block.Type {
		case "palette":
			diags = append(diags, evalPalette(block.Body, f.Palette)...)
		case "colormap":
			colormapBlocks = append(colormapBlocks, block)
		}
	}

	var raw rawFile
	diags = append(diags, gohcl.DecodeBody(body, NewEvalContext(f.Palette), &raw)...)
	if diags.HasErrors() && len(raw.Colormaps) != len(colormapBlocks) {
		return f, diags
	}

	if raw.Defaults != nil {
		if raw.Defaults.Levels != nil {
			f.Defaults.Levels = *raw.Defaults.Levels
		}
		if raw.Defaults.Reverse != nil {
			f.Defaults.Reverse = *raw.Defaults.Reverse
		}
	}

	seen := make(map[string]hcl.Range)
	for i, block := range raw.Colormaps {
		if hasErrorIn(diags, colormapBlocks[i].Range()) {
			continue
		}
		rng := colormapBlocks[i].DefRange()
		if prev, dup := seen[block.Name]; dup {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate colormap",
				Detail:   fmt.Sprintf("colormap %q was already defined at %s", block.Name, prev),
				Subject:  &rng,
			})
			continue
		}
		seen[block.Name] = rng

		def, err := f.definition(block)
		if err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid colormap",
				Detail:   fmt.Sprintf("colormap %q: %s", block.Name, err),
				Subject:  &rng,
			})
			continue
		}
		def.Range = rng
		f.Colormaps = append(f.Colormaps, def)
	}
	return f, diags
}

// hasErrorIn reports whether an error diagnostic points inside rng.
func hasErrorIn(diags hcl.Diagnostics, rng hcl.Range) bool {
	for _, d := range diags {
		if d.Severity == hcl.DiagError && d.Subject != nil && rng.Overlaps(*d.Subject) {
			return true
		}
	}
	return false
}

func (f *File) definition(block colormapBlock) (*Definition, error) {
	def := &Definition{
		Name:    block.Name,
		Levels:  f.Defaults.Levels,
		Reverse: f.Defaults.Reverse,
	}
	if block.Levels != nil {
		def.Levels = *block.Levels
	}
	if block.Reverse != nil {
		def.Reverse = *block.Reverse
	}
	if def.Levels < 2 {
		return nil, &color.ArgumentError{Reason: fmt.Sprintf("levels must be at least 2, got %d", def.Levels)}
	}

	hasChannels := block.Red != nil || block.Green != nil || block.Blue != nil
	switch {
	case block.Stops != nil && hasChannels:
		return nil, &color.ArgumentError{Reason: "stops and red/green/blue are mutually exclusive"}
	case block.Stops != nil:
		for _, s := range block.Stops {
			c, err := color.Parse(s)
			if err != nil {
				return nil, err
			}
			def.Stops = append(def.Stops, c)
		}
		def.Spec = colormap.SpecFromColors(def.Stops...)
	case hasChannels:
		def.Spec = colormap.Spec{Red: block.Red, Green: block.Green, Blue: block.Blue}
	default:
		return nil, &color.ArgumentError{Reason: "either stops or red/green/blue is required"}
	}

	if err := def.Spec.Validate(); err != nil {
		return nil, err
	}
	return def, nil
}

// evalPalette evaluates palette attributes in source order so later entries
// can reference earlier ones.
func evalPalette(body *hclsyntax.Body, p *Palette) hcl.Diagnostics {
	var diags hcl.Diagnostics
	for _, block := range body.Blocks {
		rng := block.DefRange()
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unexpected block",
			Detail:   fmt.Sprintf("palette entries are attributes, found block %q", block.Type),
			Subject:  &rng,
		})
	}

	attrs := make([]*hclsyntax.Attribute, 0, len(body.Attributes))
	for _, attr := range body.Attributes {
		attrs = append(attrs, attr)
	}
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].SrcRange.Start.Byte < attrs[j].SrcRange.Start.Byte
	})

	for _, attr := range attrs {
		val, valDiags := attr.Expr.Value(NewEvalContext(p))
		if valDiags.HasErrors() {
			diags = append(diags, valDiags...)
			continue
		}
		c, err := ColorValue(val)
		if err != nil {
			rng := attr.Expr.Range()
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid palette color",
				Detail:   fmt.Sprintf("palette.%s: %s", attr.Name, err),
				Subject:  &rng,
			})
			continue
		}
		p.Names = append(p.Names, attr.Name)
		p.Colors[attr.Name] = c
		p.Ranges[attr.Name] = attr.SrcRange
	}
	return diags
}

// ColorValue converts an evaluated HCL value, a hex string or a color name,
// to a Color.
func ColorValue(val cty.Value) (*color.Color, error) {
	if val.IsNull() || !val.IsKnown() || val.Type() != cty.String {
		return nil, fmt.Errorf("expected a color string, got %s", val.Type().FriendlyName())
	}
	return color.Parse(val.AsString())
}

// NewEvalContext exposes the palette as the palette variable along with
// Functions.
func NewEvalContext(p *Palette) *hcl.EvalContext {
	vals := make(map[string]cty.Value)
	if p != nil {
		for name, c := range p.Colors {
			vals[name] = cty.StringVal(c.Hex())
		}
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"palette": cty.ObjectVal(vals),
		},
		Functions: Functions(),
	}
}

// Lookup returns the definition named name.
func (f *File) Lookup(name string) (*Definition, bool) {
	for _, def := range f.Colormaps {
		if def.Name == name {
			return def, true
		}
	}
	return nil, false
}

// Names returns the colormap names in file order.
func (f *File) Names() []string {
	names := make([]string, len(f.Colormaps))
	for i, def := range f.Colormaps {
		names[i] = def.Name
	}
	return names
}

// Register adds every definition to the builder's backend.
func (f *File) Register(b *colormap.Builder) error {
	for _, def := range f.Colormaps {
		err := b.Register(def.Name, def.Spec, colormap.WithLevels(def.Levels), colormap.WithReverse(def.Reverse))
		if err != nil {
			return fmt.Errorf("registering %s: %w", def.Name, err)
		}
	}
	return nil
}
