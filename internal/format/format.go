package format

import (
	"bytes"
	"regexp"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/jsvensson/colormap/color"
)

var multipleBlankLines = regexp.MustCompile(`\n{3,}`)
var blankLineAfterOpenBrace = regexp.MustCompile(`\{\n\s*\n`)
var blankLineBeforeCloseBrace = regexp.MustCompile(`\n\s*\n(\s*\})`)

// Format takes HCL source content and returns it formatted according to
// HCL canonical style rules. It uses hclwrite.Format which handles
// indentation, spacing, and newline normalization. Quoted hex colors are
// rewritten to the canonical uppercase #RRGGBB form.
//
// The formatter works even on partial/invalid HCL, making it suitable
// for use while the user is still typing. Hex colors are left alone when
// the content does not lex cleanly.
func Format(content string) (string, error) {
	src := canonicalHex([]byte(content))
	formatted := hclwrite.Format(src)
	// Collapse multiple consecutive blank lines into a single blank line.
	collapsed := multipleBlankLines.ReplaceAllString(string(formatted), "\n\n")
	// Remove blank lines immediately after opening braces.
	collapsed = blankLineAfterOpenBrace.ReplaceAllString(collapsed, "{\n")
	// Remove blank lines immediately before closing braces.
	collapsed = blankLineBeforeCloseBrace.ReplaceAllString(collapsed, "\n${1}")
	return collapsed, nil
}

// canonicalHex replaces every quoted literal that is a valid hex color.
func canonicalHex(src []byte) []byte {
	tokens, diags := hclsyntax.LexConfig(src, "", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return src
	}

	var out bytes.Buffer
	last := 0
	for _, tok := range tokens {
		if tok.Type != hclsyntax.TokenQuotedLit {
			continue
		}
		hex, err := color.NormalizeHex(string(tok.Bytes))
		if err != nil || hex == string(tok.Bytes) {
			continue
		}
		out.Write(src[last:tok.Range.Start.Byte])
		out.WriteString(hex)
		last = tok.Range.End.Byte
	}
	if last == 0 {
		return src
	}
	out.Write(src[last:])
	return out.Bytes()
}
