package segmented

import (
	"bytes"
	"errors"
	stdcolor "image/color"
	"image/png"
	"slices"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jsvensson/colormap"
	"github.com/jsvensson/colormap/color"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestLookupTable(t *testing.T) {
	tests := []struct {
		name string
		n    int
		pts  segment
		want []float64
	}{
		{"ramp", 5, segment{{0, 0, 0}, {1, 1, 1}}, []float64{0, .25, .5, .75, 1}},
		{"single level", 1, segment{{0, 0, 0}, {1, 0.7, 0.7}}, []float64{0.7}},
		{"inverted", 3, segment{{0, 1, 1}, {1, 0, 0}}, []float64{1, .5, 0}},
		{"discontinuity", 5, segment{{0, 0, 0}, {0.5, 0, 1}, {1, 1, 1}}, []float64{0, 0, 0, 1, 1}},
		{"y1 of first and y0 of last", 3, segment{{0, 0.9, 0.2}, {1, 0.4, 0.1}}, []float64{0.2, 0.3, 0.4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lookupTable(tt.n, tt.pts.points())
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("lookupTable() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNew_Validation(t *testing.T) {
	ok := segment{{0, 0, 0}, {1, 1, 1}}
	tests := []struct {
		name string
		ch   colormap.Channels
		n    int
		want error
	}{
		{"empty channel", channels(ok, segment{}, ok), 8, color.ErrArgument},
		{"does not start at zero", channels(segment{{0.1, 0, 0}, {1, 1, 1}}, ok, ok), 8, color.ErrArgument},
		{"does not end at one", channels(ok, ok, segment{{0, 0, 0}, {0.9, 1, 1}}), 8, color.ErrArgument},
		{"decreasing x", channels(segment{{0, 0, 0}, {0.6, 1, 1}, {0.4, 1, 1}, {1, 1, 1}}, ok, ok), 8, color.ErrArgument},
		{"y out of range", channels(ok, segment{{0, 0, 0}, {1, 1.2, 1.2}}, ok), 8, color.ErrDomain},
		{"no levels", same(ok), 0, color.ErrArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("test", tt.ch, tt.n)
			if !errors.Is(err, tt.want) {
				t.Errorf("New() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestColormap_At(t *testing.T) {
	cm, err := New("gray", builtins["gray"], 256)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tests := []struct {
		t    float64
		want stdcolor.RGBA
	}{
		{-1, stdcolor.RGBA{0, 0, 0, 255}},
		{0, stdcolor.RGBA{0, 0, 0, 255}},
		{0.5, stdcolor.RGBA{128, 128, 128, 255}},
		{1, stdcolor.RGBA{255, 255, 255, 255}},
		{2, stdcolor.RGBA{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		if got := cm.At(tt.t); got != tt.want {
			t.Errorf("At(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestColormap_Reversed(t *testing.T) {
	r := NewRegistry()
	jet, err := r.Get("jet")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	jetR, err := r.Get("jet_r")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(color.Triplet{0, 0, 0.5}, jet.Level(0), approx); diff != "" {
		t.Errorf("jet first level mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(color.Triplet{0.5, 0, 0}, jet.Level(jet.N()-1), approx); diff != "" {
		t.Errorf("jet last level mismatch (-want +got):\n%s", diff)
	}
	for i := range jet.N() {
		if diff := cmp.Diff(jet.Level(i), jetR.Level(jet.N()-1-i), cmpopts.EquateApprox(0, 1e-6)); diff != "" {
			t.Fatalf("level %d mismatch (-jet +jet_r):\n%s", i, diff)
		}
	}
	if got := jet.Reversed().Name(); got != "jet_r" {
		t.Errorf("Reversed().Name() = %q, want jet_r", got)
	}
	if got := jetR.Reversed().Name(); got != "jet" {
		t.Errorf("Reversed().Name() = %q, want jet", got)
	}
}

func TestColormap_Resampled(t *testing.T) {
	cm, err := NewRegistry().Get("gray")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	small, err := cm.Resampled(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got []string
	for _, c := range small.Colors() {
		got = append(got, c.Hex())
	}
	if diff := cmp.Diff([]string{"#000000", "#808080", "#FFFFFF"}, got); diff != "" {
		t.Errorf("Colors() mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"jet", "jet_r", "gray", "seismic_r"} {
		if !r.Registered(name) {
			t.Errorf("Registered(%q) = false", name)
		}
	}
	for _, name := range []string{"nope", "nope_r", "_r"} {
		if r.Registered(name) {
			t.Errorf("Registered(%q) = true", name)
		}
	}

	_, err := r.Lookup("nope")
	var lookupErr *color.LookupError
	if !errors.As(err, &lookupErr) || lookupErr.Kind != "colormap" {
		t.Errorf("Lookup(nope) error = %v", err)
	}

	names := r.Names()
	if !slices.IsSorted(names) {
		t.Error("Names() is not sorted")
	}
	for _, name := range []string{"bwr", "bwr_r", "winter", "winter_r"} {
		if !slices.Contains(names, name) {
			t.Errorf("Names() is missing %q", name)
		}
	}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	spec := colormap.Spec{Red: []float64{0, 1}, Green: []float64{0, 0}, Blue: []float64{1, 0}}
	if err := r.Register("blue_red", spec.ControlPoints(), 16); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cm, err := r.Get("blue_red_r")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cm.N() != 16 {
		t.Errorf("N() = %d, want 16", cm.N())
	}
	if got := cm.At(0); got != (stdcolor.RGBA{255, 0, 0, 255}) {
		t.Errorf("At(0) = %v, want red", got)
	}

	bad := colormap.Channels{Red: spec.ControlPoints().Red}
	if err := r.Register("bad", bad, 16); !errors.Is(err, color.ErrArgument) {
		t.Errorf("Register(bad) error = %v", err)
	}
	if r.Registered("bad") {
		t.Error("invalid colormap was registered")
	}
}

func TestRegistry_Concurrent(t *testing.T) {
	r := NewRegistry()
	spec := colormap.Spec{Red: []float64{0, 1}, Green: []float64{0, 1}, Blue: []float64{0, 1}}
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = r.Register("shared", spec.ControlPoints(), 8+i)
		}()
		go func() {
			defer wg.Done()
			_, _ = r.Lookup("jet")
			_ = r.Names()
		}()
	}
	wg.Wait()
	if !r.Registered("shared") {
		t.Error("shared not registered")
	}
}

func TestBuilderIntegration(t *testing.T) {
	b := colormap.NewBuilder(NewRegistry())

	tests := []struct {
		names []string
		first stdcolor.RGBA
		last  stdcolor.RGBA
	}{
		{[]string{"heat"}, stdcolor.RGBA{255, 0, 0, 255}, stdcolor.RGBA{255, 255, 255, 255}},
		{[]string{"heat_r"}, stdcolor.RGBA{255, 255, 255, 255}, stdcolor.RGBA{255, 0, 0, 255}},
		{[]string{"gray"}, stdcolor.RGBA{0, 0, 0, 255}, stdcolor.RGBA{255, 255, 255, 255}},
		{[]string{"red", "blue"}, stdcolor.RGBA{255, 0, 0, 255}, stdcolor.RGBA{0, 0, 255, 255}},
		{[]string{"red_black_blue"}, stdcolor.RGBA{255, 0, 0, 255}, stdcolor.RGBA{0, 0, 255, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.names[0], func(t *testing.T) {
			cm, err := b.Get(tt.names)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			seg := cm.(*Colormap)
			if got := seg.At(0); got != tt.first {
				t.Errorf("At(0) = %v, want %v", got, tt.first)
			}
			if got := seg.At(1); got != tt.last {
				t.Errorf("At(1) = %v, want %v", got, tt.last)
			}
		})
	}

	cm, err := b.Rainbow()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seg := cm.(*Colormap)
	red := stdcolor.RGBA{255, 0, 0, 255}
	if seg.At(0) != red || seg.At(1) != red {
		t.Errorf("rainbow endpoints = %v, %v, want red", seg.At(0), seg.At(1))
	}
}

func TestBuilderIntegration_Shadowing(t *testing.T) {
	b := colormap.NewBuilder(NewRegistry())
	blues := colormap.Spec{Red: []float64{0, 0}, Green: []float64{0, 0}, Blue: []float64{0, 1}}
	if err := b.Register("heat", blues); err != nil {
		t.Fatalf("Register: %v", err)
	}

	cm, err := b.Get([]string{"heat"})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got, want := cm.(*Colormap).At(1), (stdcolor.RGBA{0, 0, 255, 255}); got != want {
		t.Errorf("At(1) = %v, want %v", got, want)
	}

	cm, err = b.Get([]string{"gray"}, colormap.WithLevels(1))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got := cm.(*Colormap).N(); got != 256 {
		t.Errorf("registered gray N() = %d, want 256", got)
	}

	cm, err = b.Get([]string{"red", "blue"}, colormap.WithLevels(1))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got := cm.(*Colormap).N(); got != 1 {
		t.Errorf("N() = %d, want 1", got)
	}
}

func TestWritePNG(t *testing.T) {
	cm, err := New("bw", builtins["gray"], 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var buf bytes.Buffer
	if err := WritePNG(&buf, cm, 64, 8); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if got := img.Bounds().Size(); got.X != 64 || got.Y != 8 {
		t.Errorf("size = %v, want 64x8", got)
	}
	if r, g, b, _ := img.At(0, 0).RGBA(); r != 0 || g != 0 || b != 0 {
		t.Errorf("left pixel = %v, want black", img.At(0, 0))
	}
	if r, g, b, _ := img.At(63, 7).RGBA(); r != 0xffff || g != 0xffff || b != 0xffff {
		t.Errorf("right pixel = %v, want white", img.At(63, 7))
	}

	if err := WritePNG(&buf, cm, 0, 8); err == nil {
		t.Error("expected error for zero width")
	}
}
