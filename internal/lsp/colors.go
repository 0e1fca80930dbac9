package lsp

import (
	"strings"

	"github.com/jsvensson/colormap/color"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// colorToLSP converts a color.Color to a protocol.Color (float32 0.0-1.0).
func colorToLSP(c *color.Color) protocol.Color {
	return protocol.Color{
		Red:   float32(c.Red()),
		Green: float32(c.Green()),
		Blue:  float32(c.Blue()),
		Alpha: 1.0,
	}
}

// documentColors converts the analysis result's color locations into LSP ColorInformation items.
func documentColors(result *AnalysisResult) []protocol.ColorInformation {
	if result == nil {
		return []protocol.ColorInformation{}
	}

	infos := make([]protocol.ColorInformation, 0, len(result.Colors))
	for _, cl := range result.Colors {
		infos = append(infos, protocol.ColorInformation{
			Range: cl.Range,
			Color: colorToLSP(cl.Color),
		})
	}
	return infos
}

// colorPresentation produces color presentation options for a given color and range.
// String literals are replaced with the canonical hex of the picked color. Palette
// references and function calls get no presentation so they are never replaced with
// literal values.
func colorPresentation(content string, params *protocol.ColorPresentationParams) []protocol.ColorPresentation {
	hexStr, err := color.RGBToHex(
		clampUnit(params.Color.Red),
		clampUnit(params.Color.Green),
		clampUnit(params.Color.Blue),
		true,
	)
	if err != nil {
		return []protocol.ColorPresentation{}
	}

	text := extractText(content, params.Range)
	if !strings.HasPrefix(text, "\"") {
		return []protocol.ColorPresentation{}
	}

	return []protocol.ColorPresentation{
		{
			Label: hexStr,
			TextEdit: &protocol.TextEdit{
				Range:   params.Range,
				NewText: "\"" + hexStr + "\"",
			},
		},
	}
}

func clampUnit(v float32) float64 {
	return min(1, max(0, float64(v)))
}

// textDocumentDocumentColor handles textDocument/documentColor requests.
func (s *Server) textDocumentDocumentColor(_ *glsp.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	uri := string(params.TextDocument.URI)
	return documentColors(s.docs.Result(uri)), nil
}

// textDocumentColorPresentation handles textDocument/colorPresentation requests.
func (s *Server) textDocumentColorPresentation(_ *glsp.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	uri := string(params.TextDocument.URI)
	content, ok := s.docs.Get(uri)
	if !ok {
		return []protocol.ColorPresentation{}, nil
	}
	return colorPresentation(content, params), nil
}
