package easel

// RenderHost is the container that displays Placeables. Place must be
// idempotent: placing the same value twice leaves a single entry.
type RenderHost interface {
	Place(p Placeable)
}

// Placeable is implemented by everything a RenderHost can display:
// Surface, SurfaceStack and ToolPalette.
type Placeable interface {
	AttachTo(host RenderHost)
	Show()
	Hide()
	Visible() bool
}

var (
	_ Placeable = (*Surface)(nil)
	_ Placeable = (*SurfaceStack)(nil)
	_ Placeable = (*ToolPalette)(nil)
)
