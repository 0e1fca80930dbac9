package segmented

import (
	"slices"
	"strings"
	"sync"

	"github.com/jsvensson/colormap"
	"github.com/jsvensson/colormap/color"
	"github.com/tliron/commonlog"
)

type entry struct {
	channels colormap.Channels
	levels   int
}

// Registry is a colormap.Backend holding named segment data. Every name is
// also available reversed with an "_r" suffix. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

var (
	_ colormap.Backend   = (*Registry)(nil)
	_ colormap.Registrar = (*Registry)(nil)
	_ colormap.Lister    = (*Registry)(nil)
)

// NewRegistry returns a Registry preloaded with the built-in colormaps.
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[string]entry, len(builtins))}
	for name, ch := range builtins {
		r.entries[name] = entry{channels: ch, levels: colormap.DefaultLevels}
	}
	return r
}

func (r *Registry) log() commonlog.Logger {
	return commonlog.GetLogger("colormap.segmented")
}

// find returns the entry for name, resolving an "_r" suffix to the reversed
// base entry when name itself is not registered.
func (r *Registry) find(name string) (entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.entries[name]; ok {
		return e, true
	}
	if base, ok := strings.CutSuffix(name, "_r"); ok {
		if e, ok := r.entries[base]; ok {
			return entry{channels: e.channels.Reversed(), levels: e.levels}, true
		}
	}
	return entry{}, false
}

// Registered reports whether name or its un-reversed base is known.
func (r *Registry) Registered(name string) bool {
	_, ok := r.find(name)
	return ok
}

// Lookup builds the lookup table of a registered colormap.
func (r *Registry) Lookup(name string) (colormap.Colormap, error) {
	return r.Get(name)
}

// Get is Lookup returning the concrete type.
func (r *Registry) Get(name string) (*Colormap, error) {
	e, ok := r.find(name)
	if !ok {
		return nil, &color.LookupError{Kind: "colormap", Name: name}
	}
	return New(name, e.channels, e.levels)
}

// FromControlPoints builds an unregistered colormap.
func (r *Registry) FromControlPoints(label string, ch colormap.Channels, n int) (colormap.Colormap, error) {
	return New(label, ch, n)
}

// Register validates the control points and stores them under name,
// replacing any previous entry.
func (r *Registry) Register(name string, ch colormap.Channels, n int) error {
	if _, err := New(name, ch, n); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[name]; ok {
		r.log().Debugf("replacing colormap %s", name)
	}
	r.entries[name] = entry{channels: ch, levels: n}
	return nil
}

// Names returns every registered name and its reversed variant, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, 2*len(r.entries))
	for name := range r.entries {
		names = append(names, name)
		if !strings.HasSuffix(name, "_r") {
			names = append(names, name+"_r")
		}
	}
	slices.Sort(names)
	return slices.Compact(names)
}
