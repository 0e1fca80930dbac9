package lsp

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/colormap"
	"github.com/jsvensson/colormap/color"
	"github.com/jsvensson/colormap/internal/config"
	"github.com/jsvensson/colormap/segmented"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

var (
	DiagError   = protocol.DiagnosticSeverityError
	DiagWarning = protocol.DiagnosticSeverityWarning
	DiagInfo    = protocol.DiagnosticSeverityInformation
)

const diagSource = "colormap"

// AnalysisResult holds all information produced by analyzing a definition file.
type AnalysisResult struct {
	Diagnostics []protocol.Diagnostic
	Palette     *config.Palette
	Symbols     map[string]protocol.Range // "palette.ink" -> definition range
	Colormaps   []string                  // colormap names in file order
	Colors      []ColorLocation
}

// ColorLocation records a resolved color at a specific source position.
type ColorLocation struct {
	Range protocol.Range
	Color *color.Color
	IsRef bool // true if this is a palette reference (not a literal)
}

// hclPosToLSP converts an HCL position to an LSP position.
// HCL positions are 1-based; LSP positions are 0-based.
func hclPosToLSP(pos hcl.Pos) protocol.Position {
	return protocol.Position{
		Line:      uint32(pos.Line - 1),
		Character: uint32(pos.Column - 1),
	}
}

// hclRangeToLSP converts an HCL range to an LSP range.
func hclRangeToLSP(r hcl.Range) protocol.Range {
	return protocol.Range{
		Start: hclPosToLSP(r.Start),
		End:   hclPosToLSP(r.End),
	}
}

// builtins answers whether a name is resolved before user definitions.
var builtins = segmented.NewRegistry()

// Analyze parses HCL content from memory and produces diagnostics, a symbol table,
// and color locations. It collects ALL errors rather than short-circuiting on the first.
func Analyze(filename, content string) *AnalysisResult {
	result := &AnalysisResult{
		Symbols: make(map[string]protocol.Range),
	}

	file, diags := hclsyntax.ParseConfig([]byte(content), filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		result.addDiagnostics(diags)
		// Cannot proceed with semantic analysis if syntax is broken
		return result
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		result.addError(hcl.Range{}, "internal error: parsed body is not *hclsyntax.Body")
		return result
	}

	f, diags := config.Decode(body)
	result.addDiagnostics(diags)
	result.Palette = f.Palette

	for _, name := range f.Palette.Names {
		result.Symbols["palette."+name] = hclRangeToLSP(f.Palette.Ranges[name])
	}

	ctx := config.NewEvalContext(f.Palette)
	for _, block := range body.Blocks {
		switch block.Type {
		case "palette":
			for _, attr := range block.Body.Attributes {
				result.recordColor(attr.Expr, ctx)
			}
		case "colormap":
			result.analyzeColormap(block, ctx)
		}
	}

	slices.SortFunc(result.Colors, func(a, b ColorLocation) int {
		return comparePos(a.Range.Start, b.Range.Start)
	})

	if len(result.Colormaps) == 0 {
		result.addInfo(hcl.Range{
			Filename: filename,
			Start:    hcl.Pos{Line: 1, Column: 1},
			End:      hcl.Pos{Line: 1, Column: 1},
		}, "file defines no colormap blocks")
	}

	return result
}

// analyzeColormap records the colors of a colormap's stops and warns when its
// name is hidden by a built-in colormap.
func (r *AnalysisResult) analyzeColormap(block *hclsyntax.Block, ctx *hcl.EvalContext) {
	if len(block.Labels) == 1 {
		name := block.Labels[0]
		r.Colormaps = append(r.Colormaps, name)
		if name == "heat" || name == "heat_r" || builtins.Registered(name) || slices.Contains(colormap.DivergingBlack, name) {
			r.addWarning(block.LabelRanges[0], fmt.Sprintf("colormap %q replaces a built-in colormap", name))
		}
	}

	attr, ok := block.Body.Attributes["stops"]
	if !ok {
		return
	}
	tuple, ok := attr.Expr.(*hclsyntax.TupleConsExpr)
	if !ok {
		return
	}
	for _, expr := range tuple.Exprs {
		r.recordColor(expr, ctx)
	}
}

// recordColor evaluates expr and records its color location. Evaluation
// errors are already reported by config.Decode.
func (r *AnalysisResult) recordColor(expr hclsyntax.Expression, ctx *hcl.EvalContext) {
	val, diags := expr.Value(ctx)
	if diags.HasErrors() {
		return
	}
	c, err := config.ColorValue(val)
	if err != nil {
		return
	}
	r.Colors = append(r.Colors, ColorLocation{
		Range: hclRangeToLSP(expr.Range()),
		Color: c,
		IsRef: isReferenceExpr(expr),
	})
}

func (r *AnalysisResult) addDiagnostics(diags hcl.Diagnostics) {
	for _, d := range diags {
		r.Diagnostics = append(r.Diagnostics, hclDiagToLSP(d))
	}
}

// hclDiagToLSP converts an HCL diagnostic to an LSP diagnostic.
func hclDiagToLSP(d *hcl.Diagnostic) protocol.Diagnostic {
	sev := DiagError
	if d.Severity == hcl.DiagWarning {
		sev = DiagWarning
	}

	diag := protocol.Diagnostic{
		Severity: &sev,
		Message:  d.Summary,
		Source:   strPtr(diagSource),
	}

	if d.Detail != "" {
		diag.Message = d.Summary + ": " + d.Detail
	}

	if d.Subject != nil {
		diag.Range = hclRangeToLSP(*d.Subject)
	}

	return diag
}

func (r *AnalysisResult) add(rng hcl.Range, sev protocol.DiagnosticSeverity, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    hclRangeToLSP(rng),
		Severity: &sev,
		Source:   strPtr(diagSource),
		Message:  msg,
	})
}

// addError adds an error-level diagnostic at the given range.
func (r *AnalysisResult) addError(rng hcl.Range, msg string) {
	r.add(rng, DiagError, msg)
}

// addWarning adds a warning-level diagnostic at the given range.
func (r *AnalysisResult) addWarning(rng hcl.Range, msg string) {
	r.add(rng, DiagWarning, msg)
}

func (r *AnalysisResult) addInfo(rng hcl.Range, msg string) {
	r.add(rng, DiagInfo, msg)
}

func comparePos(a, b protocol.Position) int {
	if a.Line != b.Line {
		return cmp.Compare(a.Line, b.Line)
	}
	return cmp.Compare(a.Character, b.Character)
}

func strPtr(s string) *string {
	return &s
}

// isReferenceExpr returns true if the expression is a scope traversal
// (e.g. palette.ink) rather than a literal value.
func isReferenceExpr(expr hclsyntax.Expression) bool {
	switch expr.(type) {
	case *hclsyntax.ScopeTraversalExpr:
		return true
	case *hclsyntax.RelativeTraversalExpr:
		return true
	default:
		return false
	}
}
