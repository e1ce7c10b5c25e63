package easel

import "fmt"

// surfaceIDCounter is a plain counter; easel is single-threaded.
var surfaceIDCounter uint32

func nextSurfaceID() uint32 {
	surfaceIDCounter++
	return surfaceIDCounter
}

// Surface is a single paint target: a fixed-size pixel buffer with a paint
// context, an input source, a background fill and an active flag. Surfaces
// are owned by the SurfaceStack they are added to.
type Surface struct {
	// Name is a display label for layer panels. It has no effect on
	// ordering or identity.
	Name string

	id         uint32
	kind       kindTag
	width      int
	height     int
	background string
	bgColor    Color

	paint *PaintContext
	input InputSource

	x, y    float64
	order   int
	active  bool
	visible bool

	owner    *SurfaceStack
	host     RenderHost
	tools    []*Tool // tools bound to this surface
	disposed bool
}

// NewSurface creates a surface of the given size with a fresh paint context.
// background is an optional hex color string and defaults to white.
// Returns ErrInvalidDimension when width or height is not positive.
func NewSurface(width, height int, background ...string) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: surface %dx%d", ErrInvalidDimension, width, height)
	}
	bg := DefaultBackground
	if len(background) > 0 && background[0] != "" {
		bg = background[0]
	}
	c, err := ParseColor(bg)
	if err != nil {
		return nil, fmt.Errorf("surface background: %w", err)
	}
	id := nextSurfaceID()
	return &Surface{
		Name:       fmt.Sprintf("layer %d", id),
		id:         id,
		kind:       kindSurface,
		width:      width,
		height:     height,
		background: bg,
		bgColor:    c,
		paint:      newPaintContext(width, height),
		visible:    true,
	}, nil
}

// ID returns the surface's unique identifier. Zero after Dispose.
func (s *Surface) ID() uint32 { return s.id }

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.height }

// Background returns the background color string the surface was created with.
func (s *Surface) Background() string { return s.background }

// BackgroundColor returns the parsed background color.
func (s *Surface) BackgroundColor() Color { return s.bgColor }

// Paint returns the surface's paint context, or nil once disposed.
func (s *Surface) Paint() *PaintContext { return s.paint }

// Input returns the surface's pointer-event source.
func (s *Surface) Input() *InputSource { return &s.input }

// Active reports whether this is its stack's active surface.
func (s *Surface) Active() bool { return s.active }

// Order returns the stacking order assigned by the owning stack, or 0 if the
// surface was never added to one.
func (s *Surface) Order() int { return s.order }

// Position returns the top-left corner in stack coordinates.
func (s *Surface) Position() (x, y float64) { return s.x, s.y }

// Bounds returns the surface rectangle in stack coordinates.
func (s *Surface) Bounds() Rect {
	return Rect{X: s.x, Y: s.y, Width: float64(s.width), Height: float64(s.height)}
}

// Center places the surface so that it is centered within a reference area
// of refWidth x refHeight, shifted horizontally by offsetX.
func (s *Surface) Center(refWidth, refHeight, offsetX float64) {
	s.x = (refWidth-float64(s.width))/2 + offsetX
	s.y = (refHeight - float64(s.height)) / 2
}

// HandlePointer delivers ev to the listeners currently bound to this surface.
func (s *Surface) HandlePointer(ev PointerEvent) {
	if s.disposed {
		return
	}
	s.input.Dispatch(ev)
}

// setActive is called only by the owning SurfaceStack.
func (s *Surface) setActive(v bool) {
	s.active = v
}

// --- Placeable ---

// AttachTo places the surface in host.
func (s *Surface) AttachTo(host RenderHost) {
	if host == nil {
		return
	}
	s.host = host
	host.Place(s)
}

// Show makes the surface visible. Drawn content is untouched.
func (s *Surface) Show() { s.visible = true }

// Hide hides the surface without releasing its paint context.
func (s *Surface) Hide() { s.visible = false }

// Visible reports whether the surface is shown.
func (s *Surface) Visible() bool { return s.visible }

// --- Disposal ---

// IsDisposed returns true if the surface has been removed from its stack
// and released.
func (s *Surface) IsDisposed() bool { return s.disposed }

// valid reports whether s was built by NewSurface and is still alive.
func (s *Surface) valid() bool {
	return s != nil && s.kind == kindSurface && !s.disposed
}

func (s *Surface) dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.id = 0
	s.active = false
	s.owner = nil
	s.host = nil
	for _, t := range s.tools {
		t.forget(s)
	}
	s.tools = nil
	s.input.reset()
	if s.paint != nil {
		s.paint.release()
		s.paint = nil
	}
}
