package colormap

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jsvensson/colormap/color"
	"github.com/tliron/commonlog"
)

// Colormap is an opaque handle produced by a Backend.
type Colormap interface {
	Name() string
}

// Backend is the plotting library the builder hands control points to.
type Backend interface {
	// Registered reports whether the backend knows a colormap by this name.
	Registered(name string) bool
	// Lookup returns a registered colormap.
	Lookup(name string) (Colormap, error)
	// FromControlPoints builds a linear-segmented colormap with n levels.
	FromControlPoints(label string, ch Channels, n int) (Colormap, error)
}

// Registrar is implemented by backends that accept new named colormaps.
type Registrar interface {
	Register(name string, ch Channels, n int) error
}

// Lister is implemented by backends that can enumerate their colormaps.
type Lister interface {
	Names() []string
}

type options struct {
	reverse bool
	levels  int
}

// Option adjusts a single Build call.
type Option func(*options)

// WithReverse flips the colormap end to end.
func WithReverse(reverse bool) Option {
	return func(o *options) { o.reverse = reverse }
}

// WithLevels sets the number of discrete levels of built colormaps.
// Build and Register reject n below 1 with an *color.ArgumentError.
func WithLevels(n int) Option {
	return func(o *options) { o.levels = n }
}

func buildOptions(opts []Option) (options, error) {
	o := options{levels: DefaultLevels}
	for _, opt := range opts {
		opt(&o)
	}
	if o.levels < 1 {
		return o, &color.ArgumentError{Reason: fmt.Sprintf("levels must be positive, got %d", o.levels)}
	}
	return o, nil
}

// Builder turns color stops and colormap names into backend colormaps.
type Builder struct {
	backend Backend
}

// NewBuilder returns a Builder delegating to b.
func NewBuilder(b Backend) *Builder {
	return &Builder{backend: b}
}

// Backend returns the backend the builder was created with.
func (b *Builder) Backend() Backend { return b.backend }

func (b *Builder) log() commonlog.Logger {
	return commonlog.GetLogger("colormap.builder")
}

// Build produces the colormap described by req.
func (b *Builder) Build(req Request, opts ...Option) (Colormap, error) {
	if req == nil {
		return nil, &color.ArgumentError{Reason: "nil colormap request"}
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	b.log().Debugf("building %s (reverse=%t, levels=%d)", req.describe(), o.reverse, o.levels)

	switch r := req.(type) {
	case registeredRequest:
		name := r.name
		if o.reverse && !strings.HasSuffix(name, "_r") {
			name += "_r"
		}
		return b.backend.Lookup(name)
	case divergingBlackRequest:
		if !slices.Contains(DivergingBlack, r.name) {
			return nil, &color.LookupError{Kind: "colormap", Name: r.name}
		}
		tokens, err := splitDivergingBlack(r.name)
		if err != nil {
			return nil, err
		}
		return b.Linear(color.ByString(tokens[0]), color.ByString(tokens[1]), color.ByString(tokens[2]), opts...)
	case specRequest:
		return b.fromSpec(r.label, r.spec, r.reversed != o.reverse, o.levels)
	default:
		return nil, &color.ArgumentError{Reason: fmt.Sprintf("unsupported request %T", req)}
	}
}

func (b *Builder) fromSpec(label string, spec Spec, reverse bool, levels int) (Colormap, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if reverse {
		spec = spec.Reversed()
	}
	return b.backend.FromControlPoints(label, spec.ControlPoints(), levels)
}

// Bicolor builds a two-stop colormap from a to c.
func (b *Builder) Bicolor(a, c color.Source, opts ...Option) (Colormap, error) {
	spec, err := SpecFromSources(a, c)
	if err != nil {
		return nil, err
	}
	return b.Build(BySpec(spec), opts...)
}

// Linear builds a three-stop colormap from a through mid to c.
func (b *Builder) Linear(a, mid, c color.Source, opts ...Option) (Colormap, error) {
	spec, err := SpecFromSources(a, mid, c)
	if err != nil {
		return nil, err
	}
	return b.Build(BySpec(spec), opts...)
}

// Rainbow builds the RainbowSpec colormap.
func (b *Builder) Rainbow(opts ...Option) (Colormap, error) {
	return b.Build(specRequest{label: "rainbow", spec: RainbowSpec()}, opts...)
}

// RedGreen builds the RedGreenSpec colormap, reversed unless WithReverse(true)
// flips it back.
func (b *Builder) RedGreen(opts ...Option) (Colormap, error) {
	return b.Build(specRequest{label: "red_green", spec: RedGreenSpec(), reversed: true}, opts...)
}

// Resolve maps a colormap name to a request: names the backend has
// registered, then DivergingBlack names, then heat and heat_r.
func (b *Builder) Resolve(name string) (Request, error) {
	switch {
	case b.backend.Registered(name):
		return ByRegistered(name), nil
	case slices.Contains(DivergingBlack, name):
		return ByDivergingBlack(name), nil
	case name == "heat":
		return ByHeat(false), nil
	case name == "heat_r":
		return ByHeat(true), nil
	}
	return nil, &color.LookupError{Kind: "colormap", Name: name}
}

// Get builds a colormap from one to three names. Three names are the stops
// of a linear colormap and two of a bicolor one. A single name goes through
// Resolve, and failing that a name of three "_"-separated color tokens is
// built as a linear colormap.
func (b *Builder) Get(names []string, opts ...Option) (Colormap, error) {
	switch len(names) {
	case 3:
		return b.Linear(color.ByString(names[0]), color.ByString(names[1]), color.ByString(names[2]), opts...)
	case 2:
		return b.Bicolor(color.ByString(names[0]), color.ByString(names[1]), opts...)
	case 1:
	default:
		return nil, &color.ArgumentError{Reason: fmt.Sprintf("expected 1 to 3 names, got %d", len(names))}
	}

	name := names[0]
	req, err := b.Resolve(name)
	if err == nil {
		return b.Build(req, opts...)
	}
	if parts := strings.Split(name, "_"); len(parts) == 3 {
		cm, linErr := b.Linear(color.ByString(parts[0]), color.ByString(parts[1]), color.ByString(parts[2]), opts...)
		if linErr != nil {
			return nil, fmt.Errorf("colormap %q: %w", name, linErr)
		}
		return cm, nil
	}
	return nil, err
}

// Register adds spec to the backend under name. The backend must implement
// Registrar.
func (b *Builder) Register(name string, spec Spec, opts ...Option) error {
	reg, ok := b.backend.(Registrar)
	if !ok {
		return &color.ArgumentError{Reason: fmt.Sprintf("backend %T does not accept new colormaps", b.backend)}
	}
	if name == "" {
		return &color.ArgumentError{Reason: "empty colormap name"}
	}
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("colormap %q: %w", name, err)
	}
	o, err := buildOptions(opts)
	if err != nil {
		return fmt.Errorf("colormap %q: %w", name, err)
	}
	if o.reverse {
		spec = spec.Reversed()
	}
	b.log().Debugf("registering %s (%d stops, levels=%d)", name, len(spec.Red), o.levels)
	return reg.Register(name, spec.ControlPoints(), o.levels)
}

// Names lists the backend's colormaps, when it can enumerate them, followed
// by the DivergingBlack names.
func (b *Builder) Names() []string {
	var names []string
	if l, ok := b.backend.(Lister); ok {
		names = append(names, l.Names()...)
	}
	return append(names, DivergingBlack...)
}
