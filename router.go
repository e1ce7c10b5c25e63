package easel

// pointerRouter turns raw per-frame pointer samples into pointer events on
// the active surface. Samples are in stack coordinates; events carry
// surface-local coordinates.
type pointerRouter struct {
	over   *Surface // surface the pointer was over last frame
	down   bool
	button MouseButton
	lastX  float64
	lastY  float64
	seen   bool
}

// process runs the pointer state machine for one sample. Only the active
// surface receives events, and only while the pointer is inside its bounds.
// Leaving the bounds, or the active surface changing underneath the pointer,
// delivers a leave event to the surface the pointer was over.
func (r *pointerRouter) process(active *Surface, x, y float64, pressed bool, button MouseButton, mods KeyModifiers) {
	var target *Surface
	if active.valid() && active.visible && active.Bounds().Contains(x, y) {
		target = active
	}

	if r.over != nil && r.over != target {
		if !r.over.disposed {
			r.fire(r.over, EventPointerLeave, x, y, r.button, mods)
		}
		r.over = nil
	}
	r.over = target

	moved := !r.seen || x != r.lastX || y != r.lastY
	r.lastX, r.lastY, r.seen = x, y, true

	switch {
	case pressed && !r.down:
		// Just pressed; the button is kept until release.
		r.down = true
		r.button = button
		if target != nil {
			r.fire(target, EventPointerDown, x, y, r.button, mods)
		}
	case !pressed && r.down:
		r.down = false
		if target != nil {
			r.fire(target, EventPointerUp, x, y, r.button, mods)
		}
	case moved:
		b := button
		if r.down {
			b = r.button
		}
		if target != nil {
			r.fire(target, EventPointerMove, x, y, b, mods)
		}
	}
}

// fire converts (x, y) to s-local coordinates and delivers one event.
func (r *pointerRouter) fire(s *Surface, kind EventKind, x, y float64, button MouseButton, mods KeyModifiers) {
	s.HandlePointer(PointerEvent{
		Kind:      kind,
		X:         x - s.x,
		Y:         y - s.y,
		Button:    button,
		Modifiers: mods,
	})
}

// reset forgets all pointer state, e.g. after the host loses focus.
func (r *pointerRouter) reset() {
	*r = pointerRouter{}
}
