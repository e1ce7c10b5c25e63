package easel

import "fmt"

const (
	iconSize   = 30 // px, square
	iconMargin = 1  // px between icons
)

// ToolPalette is the collection of available tools. At most one tool is
// selected at a time; Current and Last are lookup aids, the palette owns
// the tools.
type ToolPalette struct {
	width, height int

	tools   []*Tool
	current *Tool
	last    *Tool

	changes changeRegistry[*Tool]
	host    RenderHost
	visible bool
}

// NewToolPalette creates an empty palette occupying width x height pixels
// of the render host.
func NewToolPalette(width, height int) *ToolPalette {
	return &ToolPalette{width: width, height: height, visible: true}
}

// Width returns the palette width.
func (p *ToolPalette) Width() int { return p.width }

// Height returns the palette height.
func (p *ToolPalette) Height() int { return p.height }

// Resize updates the palette's placement size.
func (p *ToolPalette) Resize(width, height int) {
	p.width = width
	p.height = height
}

// Current returns the selected tool, or nil.
func (p *ToolPalette) Current() *Tool { return p.current }

// Last returns the previously selected tool, or nil.
func (p *ToolPalette) Last() *Tool { return p.last }

// Tools returns the tools in the order they were added. The returned slice
// MUST NOT be mutated by the caller.
func (p *ToolPalette) Tools() []*Tool { return p.tools }

// Len returns the number of tools.
func (p *ToolPalette) Len() int { return len(p.tools) }

// Contains reports whether t is a member of the palette.
func (p *ToolPalette) Contains(t *Tool) bool {
	for _, m := range p.tools {
		if m == t {
			return true
		}
	}
	return false
}

// Lookup returns the first tool named name, or nil.
func (p *ToolPalette) Lookup(name string) *Tool {
	for _, t := range p.tools {
		if t.name == name {
			return t
		}
	}
	return nil
}

// OnChange registers a callback invoked with (current, last) on every
// selection change. Callbacks run synchronously in registration order.
func (p *ToolPalette) OnChange(fn func(current, last *Tool)) ChangeHandle {
	return p.changes.add(fn)
}

// AddTool registers t, marks it added and wires its Trigger to Pickup.
// Adding a tool that is already a member is a no-op.
func (p *ToolPalette) AddTool(t *Tool) error {
	if !t.valid() {
		return fmt.Errorf("%w: AddTool requires a tool created by NewTool", ErrTypeKindMismatch)
	}
	if p.Contains(t) {
		return nil
	}
	p.tools = append(p.tools, t)
	t.markAdded()
	t.pickup = func() {
		_ = p.Pickup(t)
	}
	return nil
}

// Pickup makes t the current tool. The previous tool is deselected and
// becomes Last before t is selected, then observers are notified. Picking
// up the current tool again changes nothing and notifies no one.
func (p *ToolPalette) Pickup(t *Tool) error {
	if !t.valid() {
		return fmt.Errorf("%w: Pickup requires a tool created by NewTool", ErrTypeKindMismatch)
	}
	if !p.Contains(t) {
		return fmt.Errorf("%w: %q", ErrUnknownTool, t.name)
	}
	if p.current == t {
		return nil
	}
	if p.current != nil {
		p.current.setSelected(false)
		p.last = p.current
	}
	p.current = t
	t.setSelected(true)
	p.changes.emit(p.current, p.last)
	return nil
}

// Putdown deselects the current tool without selecting a replacement. It
// becomes Last and observers receive (nil, last). No-op when nothing is held.
func (p *ToolPalette) Putdown() {
	if p.current == nil {
		return
	}
	p.current.setSelected(false)
	p.last = p.current
	p.current = nil
	p.changes.emit(nil, p.last)
}

// Update advances every tool's selection fade by dt seconds.
func (p *ToolPalette) Update(dt float32) {
	for _, t := range p.tools {
		t.update(dt)
	}
}

// IconRect returns the palette-local rectangle of the i-th tool icon. Icons
// are stacked top to bottom.
func (p *ToolPalette) IconRect(i int) Rect {
	x := float64(p.width-iconSize) / 2
	if x < 0 {
		x = 0
	}
	return Rect{
		X:      x,
		Y:      float64(i * (iconSize + iconMargin)),
		Width:  iconSize,
		Height: iconSize,
	}
}

// ToolAt returns the tool whose icon contains the palette-local point
// (x, y), or nil.
func (p *ToolPalette) ToolAt(x, y float64) *Tool {
	for i, t := range p.tools {
		if p.IconRect(i).Contains(x, y) {
			return t
		}
	}
	return nil
}

// --- Placeable ---

// AttachTo places the palette in host.
func (p *ToolPalette) AttachTo(host RenderHost) {
	if host == nil {
		return
	}
	p.host = host
	host.Place(p)
}

// Show makes the palette visible.
func (p *ToolPalette) Show() { p.visible = true }

// Hide hides the palette. Selection is unaffected.
func (p *ToolPalette) Hide() { p.visible = false }

// Visible reports whether the palette is shown.
func (p *ToolPalette) Visible() bool { return p.visible }
