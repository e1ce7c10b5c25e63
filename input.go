package easel

// PointerEvent carries pointer data delivered to a surface's listeners.
// X and Y are in surface-local pixels.
type PointerEvent struct {
	Kind      EventKind
	X, Y      float64
	Button    MouseButton
	PointerID int
	Modifiers KeyModifiers
}

// --- Listener registry ---

type listener struct {
	id uint32
	fn func(PointerEvent)
}

// InputSource is a surface's pointer-event source. Listeners are keyed by
// event kind and by the handle returned from Listen, so two listeners for
// the same kind are always distinguishable.
type InputSource struct {
	listeners [numEventKinds][]listener
	nextID    uint32
}

// ListenerHandle allows removing a listener registered with Listen.
type ListenerHandle struct {
	id   uint32
	src  *InputSource
	kind EventKind
}

// Listen registers fn for events of the given kind. Listeners fire in
// registration order.
func (in *InputSource) Listen(kind EventKind, fn func(PointerEvent)) ListenerHandle {
	if kind >= numEventKinds || fn == nil {
		return ListenerHandle{}
	}
	in.nextID++
	id := in.nextID
	in.listeners[kind] = append(in.listeners[kind], listener{id: id, fn: fn})
	return ListenerHandle{id: id, src: in, kind: kind}
}

// Remove unregisters the listener. Removing twice, or removing a zero
// handle, is a no-op.
func (h ListenerHandle) Remove() {
	if h.src == nil {
		return
	}
	s := h.src.listeners[h.kind]
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = listener{}
			h.src.listeners[h.kind] = s[:len(s)-1]
			return
		}
	}
}

// Attached reports whether the listener is still registered.
func (h ListenerHandle) Attached() bool {
	if h.src == nil {
		return false
	}
	for _, l := range h.src.listeners[h.kind] {
		if l.id == h.id {
			return true
		}
	}
	return false
}

// Dispatch delivers ev to every listener registered for ev.Kind. The
// listener list is snapshotted first so listeners may attach or detach
// during dispatch without affecting this delivery.
func (in *InputSource) Dispatch(ev PointerEvent) {
	if ev.Kind >= numEventKinds {
		return
	}
	src := in.listeners[ev.Kind]
	if len(src) == 0 {
		return
	}
	snapshot := make([]listener, len(src))
	copy(snapshot, src)
	for _, l := range snapshot {
		l.fn(ev)
	}
}

// Count returns the number of listeners registered for kind.
func (in *InputSource) Count(kind EventKind) int {
	if kind >= numEventKinds {
		return 0
	}
	return len(in.listeners[kind])
}

// Len returns the total number of registered listeners.
func (in *InputSource) Len() int {
	n := 0
	for k := range in.listeners {
		n += len(in.listeners[k])
	}
	return n
}

func (in *InputSource) reset() {
	for k := range in.listeners {
		clear(in.listeners[k])
		in.listeners[k] = nil
	}
}
