package easel

import "fmt"

// toolIDCounter is a plain counter; easel is single-threaded.
var toolIDCounter uint32

func nextToolID() uint32 {
	toolIDCounter++
	return toolIDCounter
}

// PointerState is a tool's transient view of the pointer while bound to a
// surface. It is reset to the zero value on every Bind and Unbind.
type PointerState struct {
	X, Y           float64 // last known position, valid when Known
	DeltaX, DeltaY float64 // movement since the previous event
	StartX, StartY float64 // position of the last press
	Known          bool
	Down           bool
}

// advance folds ev into the state after the tool's handler has run.
func (ps *PointerState) advance(ev PointerEvent) {
	if ps.Known {
		ps.DeltaX = ev.X - ps.X
		ps.DeltaY = ev.Y - ps.Y
	} else {
		ps.DeltaX, ps.DeltaY = 0, 0
	}
	ps.X, ps.Y = ev.X, ev.Y
	ps.Known = true

	switch ev.Kind {
	case EventPointerDown:
		ps.Down = true
		ps.StartX, ps.StartY = ev.X, ev.Y
	case EventPointerUp:
		ps.Down = false
	case EventPointerLeave:
		ps.Down = false
		ps.Known = false
	}
}

// ToolContext is passed to a tool's handlers. Prev is the tool's pointer
// state before Event is applied.
type ToolContext struct {
	Tool    *Tool
	Surface *Surface
	Paint   *PaintContext
	Event   PointerEvent
	Prev    PointerState
}

// Handler reacts to one pointer event on the bound surface.
type Handler func(ctx ToolContext)

// EventBinding pairs an event kind with the handler a tool wants for it.
type EventBinding struct {
	Kind    EventKind
	Handler Handler
}

// EventDeclarer is the capability every concrete tool provides: a fixed,
// ordered list of the events it listens for while bound. Events must be
// safe to call repeatedly and must not depend on mutable state.
type EventDeclarer interface {
	Events() []EventBinding
}

// Tool is a named, selectable unit of input-handling behavior. The concrete
// behavior comes from its EventDeclarer; a Tool built with a nil declarer is
// abstract and cannot be bound.
type Tool struct {
	id       uint32
	kind     kindTag
	name     string
	declarer EventDeclarer

	selected bool
	added    bool
	pickup   func()

	state PointerState
	bound map[*Surface][]ListenerHandle

	glow highlight
}

// NewTool creates a tool named name whose events come from d.
func NewTool(name string, d EventDeclarer) *Tool {
	return &Tool{
		id:       nextToolID(),
		kind:     kindTool,
		name:     name,
		declarer: d,
		bound:    make(map[*Surface][]ListenerHandle),
	}
}

// ID returns the tool's unique identifier.
func (t *Tool) ID() uint32 { return t.id }

// Name returns the tool's name.
func (t *Tool) Name() string { return t.name }

// Declarer returns the tool's concrete behavior, or nil for an abstract tool.
func (t *Tool) Declarer() EventDeclarer { return t.declarer }

// Selected reports whether the tool is the palette's current tool.
func (t *Tool) Selected() bool { return t.selected }

// Added reports whether the tool has been registered with a palette.
func (t *Tool) Added() bool { return t.added }

// State returns a copy of the tool's transient pointer state.
func (t *Tool) State() PointerState { return t.state }

// Highlight returns the selection styling level in [0, 1]. It eases toward 1
// after selection and toward 0 after deselection as the palette updates.
func (t *Tool) Highlight() float64 { return t.glow.value }

// setSelected is called only by the owning ToolPalette.
func (t *Tool) setSelected(v bool) {
	if t.selected == v {
		return
	}
	t.selected = v
	if v {
		t.glow.retarget(1)
	} else {
		t.glow.retarget(0)
	}
}

// markAdded flips the one-way added flag. Later calls are no-ops.
func (t *Tool) markAdded() {
	t.added = true
}

// Trigger is the user-initiated selection of this tool, e.g. a click on its
// palette icon. It does nothing until the tool has been added to a palette.
func (t *Tool) Trigger() {
	if !t.added || t.pickup == nil {
		return
	}
	t.pickup()
}

// update advances the selection fade by dt seconds.
func (t *Tool) update(dt float32) {
	t.glow.update(dt)
}

// Events returns the tool's declared event bindings.
func (t *Tool) Events() ([]EventBinding, error) {
	if t.declarer == nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingEventDeclaration, t.name)
	}
	return t.declarer.Events(), nil
}

// IsBoundTo reports whether the tool's handlers are attached to s.
func (t *Tool) IsBoundTo(s *Surface) bool {
	_, ok := t.bound[s]
	return ok
}

// Bind attaches one listener per declared event to s's input source. Each
// listener runs its handler against s's paint context. All bindings are
// checked before anything is attached. Binding a surface the tool is already
// bound to attaches nothing new. The transient pointer state is reset.
func (t *Tool) Bind(s *Surface) error {
	bindings, err := t.Events()
	if err != nil {
		return err
	}
	if !s.valid() {
		return fmt.Errorf("%w: Bind requires a live surface", ErrTypeKindMismatch)
	}
	for i, b := range bindings {
		if b.Handler == nil || b.Kind >= numEventKinds {
			return fmt.Errorf("%w: %q binding %d (%v) is incomplete", ErrMissingEventDeclaration, t.name, i, b.Kind)
		}
	}
	if _, ok := t.bound[s]; !ok {
		handles := make([]ListenerHandle, 0, len(bindings))
		for _, b := range bindings {
			handler := b.Handler
			handles = append(handles, s.input.Listen(b.Kind, func(ev PointerEvent) {
				t.dispatch(s, handler, ev)
			}))
		}
		t.bound[s] = handles
		s.tools = append(s.tools, t)
	}
	t.state = PointerState{}
	return nil
}

// Unbind detaches exactly the listeners Bind attached to s, then resets the
// transient pointer state. Unbinding a surface the tool is not bound to is a
// no-op.
func (t *Tool) Unbind(s *Surface) error {
	if t.declarer == nil {
		return fmt.Errorf("%w: %q", ErrMissingEventDeclaration, t.name)
	}
	handles, ok := t.bound[s]
	if !ok {
		return nil
	}
	for _, h := range handles {
		h.Remove()
	}
	t.forget(s)
	for i, bt := range s.tools {
		if bt == t {
			s.tools = append(s.tools[:i], s.tools[i+1:]...)
			break
		}
	}
	return nil
}

// forget drops the tool's record of s without touching s's input source.
func (t *Tool) forget(s *Surface) {
	delete(t.bound, s)
	t.state = PointerState{}
}

func (t *Tool) dispatch(s *Surface, handler Handler, ev PointerEvent) {
	if s.paint == nil {
		return
	}
	handler(ToolContext{
		Tool:    t,
		Surface: s,
		Paint:   s.paint,
		Event:   ev,
		Prev:    t.state,
	})
	t.state.advance(ev)
}

// valid reports whether t was built by NewTool.
func (t *Tool) valid() bool {
	return t != nil && t.kind == kindTool
}
