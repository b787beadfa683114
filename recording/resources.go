package recording

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/ggchart"
)

// Clip is a named rectangular clipping region.
type Clip struct {
	ID   string
	Rect ggchart.Rect
}

// Resources holds the shared data referenced by commands: paths by
// PathRef, and the gradients and clips a vector backend must declare
// before use.
type Resources struct {
	paths     []*gg.Path
	gradients []*LinearGradientBrush
	clips     []Clip

	gradientIDs map[string]int
	clipIDs     map[string]int
}

// NewResources creates an empty resource set.
func NewResources() *Resources {
	return &Resources{
		paths:       make([]*gg.Path, 0, 32),
		gradientIDs: make(map[string]int),
		clipIDs:     make(map[string]int),
	}
}

// AddPath stores a clone of path and returns its reference.
// A nil path yields an invalid reference.
func (r *Resources) AddPath(path *gg.Path) PathRef {
	if path == nil {
		return PathRef(InvalidRef)
	}
	r.paths = append(r.paths, path.Clone())
	return PathRef(len(r.paths) - 1)
}

// Path returns the path for ref, or nil if ref is invalid.
func (r *Resources) Path(ref PathRef) *gg.Path {
	if !ref.IsValid() || int(ref) >= len(r.paths) {
		return nil
	}
	return r.paths[ref]
}

// PathCount returns the number of stored paths.
func (r *Resources) PathCount() int {
	return len(r.paths)
}

// AddGradient registers a gradient. A gradient with an ID that is
// already registered replaces the earlier definition.
func (r *Resources) AddGradient(g *LinearGradientBrush) {
	if g == nil {
		return
	}
	if i, ok := r.gradientIDs[g.ID]; ok {
		r.gradients[i] = g
		return
	}
	r.gradientIDs[g.ID] = len(r.gradients)
	r.gradients = append(r.gradients, g)
}

// Gradients returns the registered gradients in registration order.
func (r *Resources) Gradients() []*LinearGradientBrush {
	return r.gradients
}

// AddClip registers a clip. A clip with an ID that is already registered
// replaces the earlier rectangle.
func (r *Resources) AddClip(c Clip) {
	if i, ok := r.clipIDs[c.ID]; ok {
		r.clips[i] = c
		return
	}
	r.clipIDs[c.ID] = len(r.clips)
	r.clips = append(r.clips, c)
}

// Clip returns the clip with the given id.
func (r *Resources) Clip(id string) (Clip, bool) {
	i, ok := r.clipIDs[id]
	if !ok {
		return Clip{}, false
	}
	return r.clips[i], true
}

// Clips returns the registered clips in registration order.
func (r *Resources) Clips() []Clip {
	return r.clips
}
