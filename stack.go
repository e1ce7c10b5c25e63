package easel

import (
	"fmt"
	"math"
)

// DefaultBaseOrder is the stacking order given to the first surface added to
// a SurfaceStack.
const DefaultBaseOrder = 10

// SurfaceStack is the ordered collection of surfaces forming one drawing.
// Insertion order is visual order from bottom to top. The stack owns its
// surfaces; Active and Last are lookup aids that never outlive membership.
type SurfaceStack struct {
	width, height int

	layers []*Surface
	active *Surface
	last   *Surface

	next     int
	assigned bool

	changes changeRegistry[*Surface]
	host    RenderHost
	visible bool
}

// NewSurfaceStack creates an empty stack with the given bounds.
func NewSurfaceStack(width, height int) (*SurfaceStack, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: stack %dx%d", ErrInvalidDimension, width, height)
	}
	return &SurfaceStack{
		width:   width,
		height:  height,
		next:    DefaultBaseOrder,
		visible: true,
	}, nil
}

// SetBaseOrder changes the first stacking order handed out. It has no effect
// once a surface has been added.
func (st *SurfaceStack) SetBaseOrder(base int) {
	if st.assigned {
		return
	}
	st.next = base
}

// nextOrder returns the next stacking order and advances the counter.
func (st *SurfaceStack) nextOrder() int {
	o := st.next
	st.next++
	st.assigned = true
	return o
}

// Width returns the stack's bounds width.
func (st *SurfaceStack) Width() int { return st.width }

// Height returns the stack's bounds height.
func (st *SurfaceStack) Height() int { return st.height }

// Active returns the active surface, or nil.
func (st *SurfaceStack) Active() *Surface { return st.active }

// Last returns the previously active surface, or nil.
func (st *SurfaceStack) Last() *Surface { return st.last }

// Len returns the number of surfaces.
func (st *SurfaceStack) Len() int { return len(st.layers) }

// Layers returns the surfaces bottom to top. The returned slice MUST NOT be
// mutated by the caller.
func (st *SurfaceStack) Layers() []*Surface { return st.layers }

// LayerAt returns the surface at index, or nil if index is out of range.
func (st *SurfaceStack) LayerAt(index int) *Surface {
	if index < 0 || index >= len(st.layers) {
		return nil
	}
	return st.layers[index]
}

// IndexOf returns the position of s, or -1.
func (st *SurfaceStack) IndexOf(s *Surface) int {
	for i, l := range st.layers {
		if l == s {
			return i
		}
	}
	return -1
}

// ActiveIndex returns the position of the active surface, or -1.
func (st *SurfaceStack) ActiveIndex() int {
	if st.active == nil {
		return -1
	}
	return st.IndexOf(st.active)
}

// OnChange registers a callback invoked with (active, last) on every
// activation change. Callbacks run synchronously in registration order.
func (st *SurfaceStack) OnChange(fn func(active, last *Surface)) ChangeHandle {
	return st.changes.add(fn)
}

// AddLayer appends s on top of the stack, assigns it the next stacking order,
// centers it within the stack bounds and makes it the active surface.
func (st *SurfaceStack) AddLayer(s *Surface) error {
	if !s.valid() {
		return fmt.Errorf("%w: AddLayer requires a surface created by NewSurface", ErrTypeKindMismatch)
	}
	if s.owner != nil {
		return fmt.Errorf("%w: surface %d", ErrAlreadyAdded, s.id)
	}
	s.owner = st
	s.order = st.nextOrder()
	s.Center(float64(st.width), float64(st.height), 0)
	st.layers = append(st.layers, s)
	if st.host != nil {
		s.AttachTo(st.host)
	}
	st.activate(s)
	return nil
}

// RemoveLayer removes and disposes the surface at index. If it was active,
// the surface immediately below it becomes active; when the bottom surface is
// removed the new bottom becomes active, and an emptied stack has no active
// surface. Observers run before the removed surface is disposed.
func (st *SurfaceStack) RemoveLayer(index int) error {
	if index < 0 || index >= len(st.layers) {
		return fmt.Errorf("%w: %d (len %d)", ErrLayerIndex, index, len(st.layers))
	}
	removed := st.layers[index]
	copy(st.layers[index:], st.layers[index+1:])
	st.layers[len(st.layers)-1] = nil
	st.layers = st.layers[:len(st.layers)-1]

	wasActive := removed == st.active
	removed.setActive(false)
	if st.last == removed {
		st.last = nil
	}
	if wasActive {
		var next *Surface
		if len(st.layers) > 0 {
			next = st.layers[max(index-1, 0)]
		}
		st.last = nil
		st.active = next
		if next != nil {
			next.setActive(true)
		}
		st.changes.emit(st.active, st.last)
	}
	removed.dispose()
	return nil
}

// Activate makes the surface at index active.
func (st *SurfaceStack) Activate(index int) error {
	if index < 0 || index >= len(st.layers) {
		return fmt.Errorf("%w: %d (len %d)", ErrLayerIndex, index, len(st.layers))
	}
	st.activate(st.layers[index])
	return nil
}

func (st *SurfaceStack) activate(s *Surface) {
	if st.active == s {
		return
	}
	prev := st.active
	if prev != nil {
		prev.setActive(false)
	}
	st.last = prev
	st.active = s
	s.setActive(true)
	st.changes.emit(st.active, st.last)
}

// MoveUp swaps the surface at index with the one above it. The two surfaces
// exchange stacking orders so order still increases bottom to top. No-op for
// the top surface.
func (st *SurfaceStack) MoveUp(index int) error {
	if index < 0 || index >= len(st.layers) {
		return fmt.Errorf("%w: %d (len %d)", ErrLayerIndex, index, len(st.layers))
	}
	if index == len(st.layers)-1 {
		return nil
	}
	st.swap(index, index+1)
	return nil
}

// MoveDown swaps the surface at index with the one below it. No-op for the
// bottom surface.
func (st *SurfaceStack) MoveDown(index int) error {
	if index < 0 || index >= len(st.layers) {
		return fmt.Errorf("%w: %d (len %d)", ErrLayerIndex, index, len(st.layers))
	}
	if index == 0 {
		return nil
	}
	st.swap(index, index-1)
	return nil
}

func (st *SurfaceStack) swap(i, j int) {
	a, b := st.layers[i], st.layers[j]
	a.order, b.order = b.order, a.order
	st.layers[i], st.layers[j] = b, a
}

// MergeDown composites the pixels of the surface at index onto the surface
// below it, then removes the upper surface. Hidden surfaces merge nothing
// but are still removed.
func (st *SurfaceStack) MergeDown(index int) error {
	if index < 1 || index >= len(st.layers) {
		return fmt.Errorf("%w: cannot merge %d (len %d)", ErrLayerIndex, index, len(st.layers))
	}
	upper, lower := st.layers[index], st.layers[index-1]
	if upper.visible {
		dx := int(math.Round(upper.x - lower.x))
		dy := int(math.Round(upper.y - lower.y))
		lower.paint.DrawImage(upper.paint.Image(), dx, dy)
	}
	return st.RemoveLayer(index)
}

// Resize updates the stack bounds and re-centers every surface, bottom to
// top. Surface sizes are unchanged.
func (st *SurfaceStack) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: stack %dx%d", ErrInvalidDimension, width, height)
	}
	st.width = width
	st.height = height
	for _, s := range st.layers {
		s.Center(float64(width), float64(height), 0)
	}
	return nil
}

// SurfaceAt returns the topmost visible surface containing the stack-space
// point (x, y), or nil.
func (st *SurfaceStack) SurfaceAt(x, y float64) *Surface {
	for i := len(st.layers) - 1; i >= 0; i-- {
		s := st.layers[i]
		if s.visible && s.Bounds().Contains(x, y) {
			return s
		}
	}
	return nil
}

// --- Placeable ---

// AttachTo places the stack, and every surface in it, in host. Surfaces added
// later are placed in the same host.
func (st *SurfaceStack) AttachTo(host RenderHost) {
	if host == nil {
		return
	}
	st.host = host
	host.Place(st)
	for _, s := range st.layers {
		s.AttachTo(host)
	}
}

// Show makes the stack visible.
func (st *SurfaceStack) Show() { st.visible = true }

// Hide hides the whole stack. Individual surface visibility is kept.
func (st *SurfaceStack) Hide() { st.visible = false }

// Visible reports whether the stack is shown.
func (st *SurfaceStack) Visible() bool { return st.visible }
