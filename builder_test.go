package colormap

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jsvensson/colormap/color"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

type fakeMap struct {
	label    string
	channels Channels
	levels   int
}

func (m *fakeMap) Name() string { return m.label }

type fakeBackend struct {
	registered map[string]bool
	built      []*fakeMap
}

func newFakeBackend(names ...string) *fakeBackend {
	b := &fakeBackend{registered: map[string]bool{}}
	for _, n := range names {
		b.registered[n] = true
	}
	return b
}

func (b *fakeBackend) Registered(name string) bool { return b.registered[name] }

func (b *fakeBackend) Lookup(name string) (Colormap, error) {
	if !b.registered[name] {
		return nil, &color.LookupError{Kind: "colormap", Name: name}
	}
	return &fakeMap{label: name}, nil
}

func (b *fakeBackend) FromControlPoints(label string, ch Channels, n int) (Colormap, error) {
	m := &fakeMap{label: label, channels: ch, levels: n}
	b.built = append(b.built, m)
	return m, nil
}

func (b *fakeBackend) Register(name string, ch Channels, n int) error {
	b.registered[name] = true
	b.built = append(b.built, &fakeMap{label: name, channels: ch, levels: n})
	return nil
}

func (b *fakeBackend) Names() []string {
	var names []string
	for n := range b.registered {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// endpoints returns the (r,g,b) values at x=0 and x=1.
func endpoints(ch Channels) (first, last [3]float64) {
	n := len(ch.Red) - 1
	first = [3]float64{ch.Red[0].Y1, ch.Green[0].Y1, ch.Blue[0].Y1}
	last = [3]float64{ch.Red[n].Y0, ch.Green[n].Y0, ch.Blue[n].Y0}
	return first, last
}

func TestSpec_ControlPoints(t *testing.T) {
	spec := Spec{
		Red:   []float64{1, 0.5, 0},
		Green: []float64{0, 0.5, 1},
		Blue:  []float64{0, 0, 0},
	}
	got := spec.ControlPoints()
	want := Channels{
		Red:   []ControlPoint{{0, 1, 1}, {0.5, 0.5, 0.5}, {1, 0, 0}},
		Green: []ControlPoint{{0, 0, 0}, {0.5, 0.5, 0.5}, {1, 1, 1}},
		Blue:  []ControlPoint{{0, 0, 0}, {0.5, 0, 0}, {1, 0, 0}},
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("ControlPoints() mismatch (-want +got):\n%s", diff)
	}
}

func TestSpec_Validate(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
		want error
	}{
		{"valid", Spec{Red: []float64{0, 1}, Green: []float64{0, 1}, Blue: []float64{1, 0}}, nil},
		{"too short", Spec{Red: []float64{0}, Green: []float64{0}, Blue: []float64{0}}, color.ErrArgument},
		{"length mismatch", Spec{Red: []float64{0, 1}, Green: []float64{0, 1, 1}, Blue: []float64{1, 0}}, color.ErrArgument},
		{"out of range", Spec{Red: []float64{0, 1.5}, Green: []float64{0, 1}, Blue: []float64{1, 0}}, color.ErrDomain},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSpec_ReversedDoesNotMutate(t *testing.T) {
	spec := HeatSpec()
	orig := HeatSpec()
	rev := spec.Reversed()
	if diff := cmp.Diff(orig, spec); diff != "" {
		t.Errorf("input mutated (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{1, 1, .7, .35, 0}, rev.Green); diff != "" {
		t.Errorf("reversed green mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_Rainbow(t *testing.T) {
	backend := newFakeBackend()
	cm, err := NewBuilder(backend).Rainbow()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := cm.(*fakeMap)
	if m.levels != DefaultLevels {
		t.Errorf("levels = %d, want %d", m.levels, DefaultLevels)
	}
	first, last := endpoints(m.channels)
	if first != [3]float64{1, 0, 0} || last != [3]float64{1, 0, 0} {
		t.Errorf("endpoints = %v, %v, want red at both ends", first, last)
	}
	if len(m.channels.Red) != 7 {
		t.Errorf("got %d control points, want 7", len(m.channels.Red))
	}
}

func TestBuild_Heat(t *testing.T) {
	tests := []struct {
		name      string
		reversed  bool
		reverse   bool
		wantFirst [3]float64
		wantLast  [3]float64
	}{
		{"heat", false, false, [3]float64{1, 0, 0}, [3]float64{1, 1, 1}},
		{"heat_r", true, false, [3]float64{1, 1, 1}, [3]float64{1, 0, 0}},
		{"heat reversed", false, true, [3]float64{1, 1, 1}, [3]float64{1, 0, 0}},
		{"heat_r reversed", true, true, [3]float64{1, 0, 0}, [3]float64{1, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := newFakeBackend()
			cm, err := NewBuilder(backend).Build(ByHeat(tt.reversed), WithReverse(tt.reverse))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			first, last := endpoints(cm.(*fakeMap).channels)
			if first != tt.wantFirst || last != tt.wantLast {
				t.Errorf("endpoints = %v, %v, want %v, %v", first, last, tt.wantFirst, tt.wantLast)
			}
		})
	}
}

func TestBuild_RedGreenDefaultsToReversed(t *testing.T) {
	backend := newFakeBackend()
	cm, err := NewBuilder(backend).RedGreen(WithLevels(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := cm.(*fakeMap)
	first, last := endpoints(m.channels)
	if diff := cmp.Diff([3]float64{.1, .6, .1}, first, approx); diff != "" {
		t.Errorf("first mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([3]float64{1, 0, 0}, last, approx); diff != "" {
		t.Errorf("last mismatch (-want +got):\n%s", diff)
	}
	if m.levels != 10 {
		t.Errorf("levels = %d, want 10", m.levels)
	}
}

func TestBuild_Registered(t *testing.T) {
	backend := newFakeBackend("jet", "jet_r")
	b := NewBuilder(backend)

	tests := []struct {
		name    string
		reverse bool
		want    string
	}{
		{"jet", false, "jet"},
		{"jet", true, "jet_r"},
		{"jet_r", true, "jet_r"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			cm, err := b.Build(ByRegistered(tt.name), WithReverse(tt.reverse))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cm.Name() != tt.want {
				t.Errorf("Name() = %q, want %q", cm.Name(), tt.want)
			}
		})
	}
}

func TestBuild_DivergingBlack(t *testing.T) {
	tests := []struct {
		name     string
		wantLast [3]float64
	}{
		{"red_black_sky", [3]float64{0, 191.0 / 255, 1}},
		{"red_black_blue", [3]float64{0, 0, 1}},
		{"pink_black_green(w3c)", [3]float64{0, 128.0 / 255, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := newFakeBackend()
			cm, err := NewBuilder(backend).Build(ByDivergingBlack(tt.name))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			m := cm.(*fakeMap)
			mid := [3]float64{m.channels.Red[1].Y0, m.channels.Green[1].Y0, m.channels.Blue[1].Y0}
			if mid != [3]float64{0, 0, 0} {
				t.Errorf("middle = %v, want black", mid)
			}
			_, last := endpoints(m.channels)
			if diff := cmp.Diff(tt.wantLast, last, approx); diff != "" {
				t.Errorf("last mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuild_Errors(t *testing.T) {
	b := NewBuilder(newFakeBackend())
	tests := []struct {
		name string
		req  Request
		want error
	}{
		{"nil request", nil, color.ErrArgument},
		{"unknown registered", ByRegistered("nope"), color.ErrLookup},
		{"not diverging black", ByDivergingBlack("red_white_blue"), color.ErrLookup},
		{"bad spec", BySpec(Spec{Red: []float64{1}, Green: []float64{1}, Blue: []float64{1}}), color.ErrArgument},
		{"mismatched spec", BySpec(Spec{Red: []float64{1, 0}, Green: []float64{1}, Blue: []float64{1, 0}}), color.ErrArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.Build(tt.req)
			if !errors.Is(err, tt.want) {
				t.Errorf("Build() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBuild_SpecLabelAndInputUntouched(t *testing.T) {
	backend := newFakeBackend()
	spec := Spec{
		Red:   []float64{0, 0.25, 1},
		Green: []float64{0, 0.5, 1},
		Blue:  []float64{1, 0.75, 0},
	}
	cm, err := NewBuilder(backend).Build(BySpec(spec), WithReverse(true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cm.Name() != "custom" {
		t.Errorf("Name() = %q, want custom", cm.Name())
	}
	if diff := cmp.Diff([]float64{0, 0.25, 1}, spec.Red); diff != "" {
		t.Errorf("input mutated (-want +got):\n%s", diff)
	}
	first, _ := endpoints(cm.(*fakeMap).channels)
	if first != [3]float64{1, 1, 0} {
		t.Errorf("first = %v, want (1,1,0)", first)
	}
}

func TestBuilder_Bicolor(t *testing.T) {
	backend := newFakeBackend()
	cm, err := NewBuilder(backend).Bicolor(color.ByName("red"), color.ByHex("#0000FF"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first, last := endpoints(cm.(*fakeMap).channels)
	if first != [3]float64{1, 0, 0} || last != [3]float64{0, 0, 1} {
		t.Errorf("endpoints = %v, %v", first, last)
	}

	_, err = NewBuilder(backend).Bicolor(color.ByName("notacolor"), color.ByName("red"))
	var lookupErr *color.LookupError
	if !errors.As(err, &lookupErr) || lookupErr.Kind != "color" {
		t.Errorf("expected color LookupError, got %v", err)
	}
}

func TestBuilder_Resolve(t *testing.T) {
	b := NewBuilder(newFakeBackend("jet"))
	tests := []struct {
		name string
		want Request
	}{
		{"heat", ByHeat(false)},
		{"heat_r", ByHeat(true)},
		{"jet", ByRegistered("jet")},
		{"red_black_blue", ByDivergingBlack("red_black_blue")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.Resolve(tt.name)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(registeredRequest{}, divergingBlackRequest{}, specRequest{})); diff != "" {
				t.Errorf("Resolve(%q) mismatch (-want +got):\n%s", tt.name, diff)
			}
		})
	}

	_, err := b.Resolve("dummy")
	var lookupErr *color.LookupError
	if !errors.As(err, &lookupErr) || lookupErr.Kind != "colormap" || lookupErr.Name != "dummy" {
		t.Errorf("Resolve(dummy) error = %v", err)
	}
}

func TestBuilder_Get(t *testing.T) {
	b := NewBuilder(newFakeBackend("nipy_spectral"))

	for _, names := range [][]string{
		{"heat"},
		{"heat_r"},
		{"nipy_spectral"},
		{"red_black_blue"},
		{"red", "black", "yellow"},
		{"red", "black"},
		{"red_white_blue"},
	} {
		if _, err := b.Get(names); err != nil {
			t.Errorf("Get(%v) unexpected error: %v", names, err)
		}
	}

	if _, err := b.Get([]string{"dummy"}); !errors.Is(err, color.ErrLookup) {
		t.Errorf("Get(dummy) error = %v, want lookup error", err)
	}
	if _, err := b.Get([]string{"red_dummy_blue"}); !errors.Is(err, color.ErrLookup) {
		t.Errorf("Get(red_dummy_blue) error = %v, want lookup error", err)
	}
	if _, err := b.Get(nil); !errors.Is(err, color.ErrArgument) {
		t.Errorf("Get() error = %v, want argument error", err)
	}
}

func TestBuilder_Register(t *testing.T) {
	backend := newFakeBackend()
	b := NewBuilder(backend)
	if err := b.Register("ocean2", Spec{Red: []float64{0, 0}, Green: []float64{0, .5}, Blue: []float64{.5, 1}}, WithLevels(32)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !backend.Registered("ocean2") {
		t.Fatal("ocean2 not registered")
	}
	if got := backend.built[0].levels; got != 32 {
		t.Errorf("levels = %d, want 32", got)
	}
	req, err := b.Resolve("ocean2")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if _, ok := req.(registeredRequest); !ok {
		t.Errorf("Resolve(ocean2) = %T, want registered request", req)
	}

	if err := b.Register("bad", Spec{Red: []float64{0}}); !errors.Is(err, color.ErrArgument) {
		t.Errorf("Register(bad) error = %v", err)
	}
}

func TestBuilder_RegisteredShadowsHeat(t *testing.T) {
	backend := newFakeBackend()
	b := NewBuilder(backend)
	if err := b.Register("heat", Spec{Red: []float64{0, 0}, Green: []float64{0, 0}, Blue: []float64{0, 1}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req, err := b.Resolve("heat")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if diff := cmp.Diff(ByRegistered("heat"), req, cmp.AllowUnexported(registeredRequest{})); diff != "" {
		t.Errorf("Resolve(heat) mismatch (-want +got):\n%s", diff)
	}

	req, err = b.Resolve("heat_r")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if _, ok := req.(specRequest); !ok {
		t.Errorf("Resolve(heat_r) = %T, want built-in heat", req)
	}

	cm, err := b.Get([]string{"heat"})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if m := cm.(*fakeMap); m.label != "heat" || m.channels.Red != nil {
		t.Errorf("Get(heat) = %+v, want the registered colormap", m)
	}
}

func TestBuilder_Levels(t *testing.T) {
	spec := Spec{Red: []float64{0, 1}, Green: []float64{0, 1}, Blue: []float64{0, 1}}

	tests := []struct {
		name   string
		levels int
		want   error
	}{
		{"one", 1, nil},
		{"two", 2, nil},
		{"zero", 0, color.ErrArgument},
		{"negative", -4, color.ErrArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := newFakeBackend()
			b := NewBuilder(backend)

			cm, err := b.Build(BySpec(spec), WithLevels(tt.levels))
			if tt.want != nil {
				if !errors.Is(err, tt.want) {
					t.Errorf("Build(WithLevels(%d)) error = %v, want %v", tt.levels, err, tt.want)
				}
				if len(backend.built) != 0 {
					t.Errorf("backend called %d times, want 0", len(backend.built))
				}
				if err := b.Register("x", spec, WithLevels(tt.levels)); !errors.Is(err, tt.want) {
					t.Errorf("Register(WithLevels(%d)) error = %v, want %v", tt.levels, err, tt.want)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := cm.(*fakeMap).levels; got != tt.levels {
				t.Errorf("levels = %d, want %d", got, tt.levels)
			}
		})
	}
}

func TestBuilder_RegisterUnsupported(t *testing.T) {
	var backend Backend = struct {
		Backend
	}{newFakeBackend()}
	err := NewBuilder(backend).Register("x", HeatSpec())
	if !errors.Is(err, color.ErrArgument) {
		t.Errorf("Register() error = %v, want argument error", err)
	}
}

func TestBuilder_Names(t *testing.T) {
	b := NewBuilder(newFakeBackend("jet", "gray"))
	got := b.Names()
	want := append([]string{"gray", "jet"}, DivergingBlack...)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestCategory(t *testing.T) {
	got, ok := Category("diverging_black")
	if !ok {
		t.Fatal("diverging_black not found")
	}
	got[0] = "changed"
	if DivergingBlack[0] != "red_black_sky" {
		t.Error("Category returned the shared slice")
	}
	if _, ok := Category("nope"); ok {
		t.Error("unexpected category nope")
	}
	if diff := cmp.Diff([]string{"diverging", "diverging_black", "misc", "qualitative", "sequentials", "sequentials2"}, Categories()); diff != "" {
		t.Errorf("Categories() mismatch (-want +got):\n%s", diff)
	}
}

func TestSpecFromHexes(t *testing.T) {
	spec, err := SpecFromHexes([]string{"#FF0000FF", "#00FF19FF", "#0066FFFF"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Spec{
		Red:   []float64{1, 0, 0},
		Green: []float64{0, 1, 0.4},
		Blue:  []float64{0, 25.0 / 255, 1},
	}
	if diff := cmp.Diff(want, spec, approx); diff != "" {
		t.Errorf("SpecFromHexes() mismatch (-want +got):\n%s", diff)
	}
	if _, err := SpecFromHexes([]string{"#GG0000"}); !errors.Is(err, color.ErrFormat) {
		t.Errorf("expected format error, got %v", err)
	}
}
