package lsp

import (
	"fmt"
	"strings"

	"github.com/jsvensson/colormap/color"
	"github.com/jsvensson/colormap/internal/config"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// splitLines splits content into lines, preserving empty trailing lines.
func splitLines(content string) []string {
	return strings.Split(content, "\n")
}

// blockContext represents the kind of block the cursor is in.
type blockContext int

const (
	contextRoot     blockContext = iota
	contextPalette               // inside palette {}
	contextDefaults              // inside defaults {}
	contextColormap              // inside colormap "name" {}
)

// topLevelBlocks are the valid top-level block names.
var topLevelBlocks = []string{"palette", "defaults", "colormap"}

var (
	defaultsAttributes = []string{"levels", "reverse"}
	colormapAttributes = []string{"stops", "red", "green", "blue", "levels", "reverse"}
)

// functionSnippets are the insert texts offered for config.FunctionNames.
var functionSnippets = map[string]string{
	"rgb":      "rgb(${1:255}, ${2:255}, ${3:255})",
	"hsv":      "hsv(${1:0}, ${2:100}, ${3:100})",
	"hls":      "hls(${1:0}, ${2:50}, ${3:100})",
	"brighten": "brighten(${1:color}, ${2:0.1})",
	"darken":   "darken(${1:color}, ${2:0.1})",
	"oklch":    "oklch(${1:0.7}, ${2:0.1}, ${3:200})",
	"tone":     "tone(${1:color}, ${2:0.5})",
	"named":    "named(\"${1:red}\")",
}

// complete produces completion items given an analysis result, document content,
// and cursor position. This is the core logic, decoupled from the LSP protocol
// handler for testability.
func complete(result *AnalysisResult, content string, pos protocol.Position) []protocol.CompletionItem {
	lines := splitLines(content)
	if int(pos.Line) >= len(lines) {
		return nil
	}

	line := lines[pos.Line]
	charPos := min(int(pos.Character), len(line))
	textBeforeCursor := line[:charPos]

	if insideString(textBeforeCursor) {
		return colorNameCompletions()
	}

	if items := tryPaletteCompletion(result, textBeforeCursor); items != nil {
		return items
	}

	if isValuePosition(textBeforeCursor) {
		return valueCompletions()
	}

	lines[pos.Line] = textBeforeCursor
	switch determineBlockContext(lines, int(pos.Line)) {
	case contextRoot:
		return topLevelCompletions()
	case contextDefaults:
		return attributeCompletions(defaultsAttributes, lines, int(pos.Line))
	case contextColormap:
		return attributeCompletions(colormapAttributes, lines, int(pos.Line))
	}

	return nil
}

// insideString reports whether the cursor sits after an unclosed quote.
func insideString(textBeforeCursor string) bool {
	return strings.Count(textBeforeCursor, "\"")%2 == 1
}

// colorNameCompletions offers every named color with its hex value.
func colorNameCompletions() []protocol.CompletionItem {
	kind := protocol.CompletionItemKindColor
	table := color.Table()
	items := make([]protocol.CompletionItem, 0, len(table))
	for _, nc := range table {
		items = append(items, protocol.CompletionItem{
			Label:  nc.Name,
			Kind:   &kind,
			Detail: strPtr(nc.Hex),
		})
	}
	return items
}

// tryPaletteCompletion returns the palette colors when the text before the
// cursor ends with "palette." or a partial "palette.name".
func tryPaletteCompletion(result *AnalysisResult, textBeforeCursor string) []protocol.CompletionItem {
	if result == nil || result.Palette == nil {
		return nil
	}

	idx := strings.LastIndex(textBeforeCursor, "palette.")
	if idx == -1 {
		return nil
	}
	if idx > 0 && isIdentChar(textBeforeCursor[idx-1]) {
		return nil
	}
	partial := textBeforeCursor[idx+len("palette."):]
	for i := range len(partial) {
		if partial[i] == '.' || !isIdentChar(partial[i]) {
			return nil
		}
	}

	kind := protocol.CompletionItemKindColor
	items := make([]protocol.CompletionItem, 0, len(result.Palette.Names))
	for _, name := range result.Palette.Names {
		item := protocol.CompletionItem{
			Label: name,
			Kind:  &kind,
		}
		if c, ok := result.Palette.Colors[name]; ok {
			item.Detail = strPtr(c.Hex())
		}
		items = append(items, item)
	}
	return items
}

// isValuePosition returns true if the text before the cursor indicates we are
// at a value position: after an "=" sign, an opening bracket or a comma.
func isValuePosition(textBeforeCursor string) bool {
	trimmed := strings.TrimSpace(textBeforeCursor)
	if strings.HasSuffix(trimmed, "[") || strings.HasSuffix(trimmed, ",") {
		return true
	}
	eqIdx := strings.LastIndex(trimmed, "=")
	if eqIdx == -1 {
		return false
	}
	afterEq := strings.TrimSpace(trimmed[eqIdx+1:])
	return afterEq == ""
}

// valueCompletions returns completion items for a value position, including
// function snippets and a palette reference trigger.
func valueCompletions() []protocol.CompletionItem {
	snippetFormat := protocol.InsertTextFormatSnippet
	funcs := config.Functions()

	items := make([]protocol.CompletionItem, 0, len(config.FunctionNames)+1)
	for _, name := range config.FunctionNames {
		snippet := functionSnippets[name]
		item := protocol.CompletionItem{
			Label:            name,
			Kind:             completionKindPtr(protocol.CompletionItemKindFunction),
			Detail:           strPtr(signature(name)),
			InsertText:       &snippet,
			InsertTextFormat: &snippetFormat,
		}
		if desc := funcs[name].Description(); desc != "" {
			item.Documentation = desc
		}
		items = append(items, item)
	}

	paletteSnippet := "palette."
	items = append(items, protocol.CompletionItem{
		Label:      "palette",
		Kind:       completionKindPtr(protocol.CompletionItemKindVariable),
		Detail:     strPtr("palette reference"),
		InsertText: &paletteSnippet,
	})
	return items
}

// signature renders a function's parameter list, e.g. "darken(color, percentage)".
func signature(name string) string {
	fn, ok := config.Functions()[name]
	if !ok {
		return name + "()"
	}
	params := fn.Params()
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(names, ", "))
}

// determineBlockContext scans from the top of the file down to the cursor line
// to determine which block the cursor is in, using brace nesting.
func determineBlockContext(lines []string, cursorLine int) blockContext {
	var stack []string

	for i := 0; i <= cursorLine; i++ {
		line := strings.TrimSpace(lines[i])

		opens := strings.Count(line, "{")
		closes := strings.Count(line, "}")

		if opens > 0 {
			parts := strings.Fields(line)
			if len(parts) >= 1 {
				for range opens {
					stack = append(stack, parts[0])
				}
			}
		}

		for range closes {
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if len(stack) == 0 {
		return contextRoot
	}

	switch stack[len(stack)-1] {
	case "palette":
		return contextPalette
	case "defaults":
		return contextDefaults
	case "colormap":
		return contextColormap
	default:
		return contextRoot
	}
}

// attributeCompletions returns the attributes not yet defined in the block
// surrounding the cursor.
func attributeCompletions(names []string, lines []string, cursorLine int) []protocol.CompletionItem {
	defined := findDefinedAttributes(lines, cursorLine)
	kind := protocol.CompletionItemKindProperty

	var items []protocol.CompletionItem
	for _, name := range names {
		if !defined[name] {
			items = append(items, protocol.CompletionItem{
				Label: name,
				Kind:  &kind,
			})
		}
	}

	return items
}

// findDefinedAttributes scans the current block (from the nearest opening brace
// before cursorLine to cursorLine) and returns attribute names already defined
// (lines containing "name = ...").
func findDefinedAttributes(lines []string, cursorLine int) map[string]bool {
	defined := make(map[string]bool)

	startLine := 0
	depth := 0
	for i := cursorLine; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		closes := strings.Count(line, "}")
		opens := strings.Count(line, "{")
		depth += closes - opens
		if depth < 0 {
			startLine = i
			break
		}
	}

	for i := startLine; i <= cursorLine; i++ {
		line := strings.TrimSpace(lines[i])
		if eqIdx := strings.Index(line, "="); eqIdx > 0 {
			name := strings.TrimSpace(line[:eqIdx])
			if !strings.Contains(name, " ") && !strings.Contains(name, "{") {
				defined[name] = true
			}
		}
	}

	return defined
}

// topLevelCompletions returns completion items for top-level block names.
func topLevelCompletions() []protocol.CompletionItem {
	snippetFormat := protocol.InsertTextFormatSnippet
	kind := protocol.CompletionItemKindSnippet

	var items []protocol.CompletionItem
	for _, name := range topLevelBlocks {
		snippet := name + " {\n  $0\n}"
		if name == "colormap" {
			snippet = "colormap \"${1:name}\" {\n  stops = [$0]\n}"
		}
		items = append(items, protocol.CompletionItem{
			Label:            name,
			Kind:             &kind,
			InsertText:       &snippet,
			InsertTextFormat: &snippetFormat,
		})
	}

	return items
}

// completionKindPtr returns a pointer to a CompletionItemKind.
func completionKindPtr(k protocol.CompletionItemKind) *protocol.CompletionItemKind {
	return &k
}

// textDocumentCompletion is the LSP handler for textDocument/completion requests.
func (s *Server) textDocumentCompletion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	uri := string(params.TextDocument.URI)

	content, ok := s.docs.Get(uri)
	if !ok {
		return nil, nil
	}

	result := s.docs.Result(uri)
	if result == nil {
		return nil, nil
	}

	return complete(result, content, params.Position), nil
}
