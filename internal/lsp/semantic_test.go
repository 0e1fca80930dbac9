package lsp

import (
	"reflect"
	"testing"
)

func TestEncodeTokens_Empty(t *testing.T) {
	result := encodeTokens([]SemanticToken{})
	expected := []uint32{}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("encodeTokens([]) = %v, want %v", result, expected)
	}
}

func TestEncodeTokens_SingleToken(t *testing.T) {
	tokens := []SemanticToken{
		{Line: 2, StartChar: 5, Length: 7, Type: 0, Modifiers: 0},
	}
	result := encodeTokens(tokens)
	expected := []uint32{2, 5, 7, 0, 0}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("encodeTokens() = %v, want %v", result, expected)
	}
}

func TestEncodeTokens_MultipleTokensSameLine(t *testing.T) {
	tokens := []SemanticToken{
		{Line: 0, StartChar: 0, Length: 7, Type: 0, Modifiers: 0}, // "palette"
		{Line: 0, StartChar: 8, Length: 4, Type: 1, Modifiers: 1}, // "base"
	}
	result := encodeTokens(tokens)
	// Second token: deltaLine=0, deltaStart=8-0=8
	expected := []uint32{0, 0, 7, 0, 0, 0, 8, 4, 1, 1}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("encodeTokens() = %v, want %v", result, expected)
	}
}

func TestEncodeTokens_MultipleTokensDifferentLines(t *testing.T) {
	tokens := []SemanticToken{
		{Line: 0, StartChar: 0, Length: 7, Type: 0, Modifiers: 0}, // line 0
		{Line: 2, StartChar: 2, Length: 4, Type: 1, Modifiers: 0}, // line 2
	}
	result := encodeTokens(tokens)
	// Second token: deltaLine=2-0=2, deltaStart=2 (new line, not relative)
	expected := []uint32{0, 0, 7, 0, 0, 2, 2, 4, 1, 0}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("encodeTokens() = %v, want %v", result, expected)
	}
}

func TestEncodeTokens_SortsTokens(t *testing.T) {
	// Tokens in wrong order
	tokens := []SemanticToken{
		{Line: 1, StartChar: 0, Length: 4, Type: 1, Modifiers: 0},
		{Line: 0, StartChar: 0, Length: 7, Type: 0, Modifiers: 0},
	}
	result := encodeTokens(tokens)
	// Should be sorted: line 0 first, then line 1
	expected := []uint32{0, 0, 7, 0, 0, 1, 0, 4, 1, 0}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("encodeTokens() = %v, want %v", result, expected)
	}
}

func TestSemanticTokensFull_Empty(t *testing.T) {
	content := ``
	result := semanticTokensFull(content)
	if len(result) != 0 {
		t.Errorf("semanticTokensFull(\"\") = %v, want empty", result)
	}
}

// decodeTokens reverses encodeTokens for assertions on absolute positions.
func decodeTokens(data []uint32) []SemanticToken {
	var tokens []SemanticToken
	var line, char uint32
	for i := 0; i+4 < len(data); i += 5 {
		if data[i] != 0 {
			char = 0
		}
		line += data[i]
		char += data[i+1]
		tokens = append(tokens, SemanticToken{
			Line:      line,
			StartChar: char,
			Length:    data[i+2],
			Type:      data[i+3],
			Modifiers: data[i+4],
		})
	}
	return tokens
}

func TestDecodeTokens_RoundTrip(t *testing.T) {
	tokens := []SemanticToken{
		{Line: 0, StartChar: 0, Length: 7, Type: 0},
		{Line: 1, StartChar: 2, Length: 3, Type: 1, Modifiers: 1},
		{Line: 1, StartChar: 8, Length: 9, Type: 4},
	}
	got := decodeTokens(encodeTokens(tokens))
	if !reflect.DeepEqual(got, tokens) {
		t.Errorf("decodeTokens(encodeTokens()) = %v, want %v", got, tokens)
	}
}

func TestSemanticTokensFull_SimplePalette(t *testing.T) {
	content := `palette {
  ink = "#1b1b3a"
}`
	got := decodeTokens(semanticTokensFull(content))

	// palette (keyword), ink (property), "#1b1b3a" (string)
	want := []SemanticToken{
		{Line: 0, StartChar: 0, Length: 7, Type: tokenTypeIndices["keyword"]},
		{Line: 1, StartChar: 2, Length: 3, Type: tokenTypeIndices["property"], Modifiers: 1},
		{Line: 1, StartChar: 8, Length: 9, Type: tokenTypeIndices["string"]},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("semanticTokensFull() = %v, want %v", got, want)
	}
}

func TestSemanticTokensFull_WithPaletteReference(t *testing.T) {
	content := `palette {
  ink = "#1b1b3a"
}
colormap "dusk" {
  stops = [palette.ink, "gold"]
}`
	result := semanticTokensFull(content)

	// palette(keyword), ink(property), string,
	// colormap(keyword), dusk(variable), stops(property), palette(namespace), ink(property)
	// "gold" is a color name, not a hex literal, so it is not tokenized
	if len(result) != 40 {
		t.Fatalf("semanticTokensFull() returned %d integers, want 40", len(result))
	}

	tokens := decodeTokens(result)
	label := SemanticToken{Line: 3, StartChar: 10, Length: 4, Type: tokenTypeIndices["variable"], Modifiers: 1}
	if tokens[4] != label {
		t.Errorf("label token = %v, want %v", tokens[4], label)
	}
	ns := SemanticToken{Line: 4, StartChar: 11, Length: 7, Type: tokenTypeIndices["namespace"]}
	if tokens[6] != ns {
		t.Errorf("namespace token = %v, want %v", tokens[6], ns)
	}
}

func TestSemanticTokensFull_WithFunction(t *testing.T) {
	content := `palette {
  sea  = hsv(200, 60, 80)
  foam = brighten(palette.sea, 0.2)
}`
	result := semanticTokensFull(content)

	// palette(keyword),
	// sea(property), hsv(function), 200, 60, 80 (numbers),
	// foam(property), brighten(function), palette(namespace), sea(property), 0.2(number)
	if len(result) != 55 {
		t.Errorf("semanticTokensFull() returned %d integers, want 55", len(result))
	}
}

func TestSemanticTokensFull_ParseError(t *testing.T) {
	content := `palette {`
	result := semanticTokensFull(content)
	if len(result) != 0 {
		t.Errorf("semanticTokensFull(parse error) = %v, want empty", result)
	}
}

func TestSemanticTokensFull_CompleteFile(t *testing.T) {
	content := `palette {
  ink  = "#1b1b3a"
  foam = "#9ccfd8"
}

defaults {
  levels = 128
}

colormap "tide" {
  stops   = [palette.ink, "#fff", palette.foam]
  reverse = true
}

colormap "ramp" {
  red   = [0, 1]
  green = [0, 0.5]
  blue  = [1, 0]
}`

	result := semanticTokensFull(content)

	if len(result)%5 != 0 {
		t.Errorf("semantic tokens data length %d is not a multiple of 5", len(result))
	}

	// At least: palette, ink, foam, defaults, levels, colormap, tide, stops,
	// reverse, colormap, ramp, red, green, blue and their values
	if len(result) < 70 {
		t.Errorf("semanticTokensFull() returned %d integers, expected at least 70", len(result))
	}
}
