package easel

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Color implements color.Color, so it can be handed to any image/draw or gg API.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default surface background.
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is the default brush color.
var ColorBlack = Color{0, 0, 0, 1}

// DefaultBackground is the background string assigned to surfaces created
// without one.
const DefaultBackground = "#FFFFFF"

// RGBA implements color.Color. Values are premultiplied 16-bit.
func (c Color) RGBA() (r, g, b, a uint32) {
	a16 := clamp01(c.A) * 0xffff
	r = uint32(clamp01(c.R) * a16)
	g = uint32(clamp01(c.G) * a16)
	b = uint32(clamp01(c.B) * a16)
	a = uint32(a16)
	return
}

// ParseColor parses "#RRGGBB", "#RGB" or "#RRGGBBAA" (the leading '#' is
// optional). Failures wrap ErrInvalidColor.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimSpace(s)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if !isHexColor(hex[1:]) {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	alpha := 1.0
	if len(hex) == 9 {
		var a uint8
		if _, err := fmt.Sscanf(hex[7:], "%02x", &a); err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		alpha = float64(a) / 255
		hex = hex[:7]
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

// isHexColor reports whether digits is 3, 6 or 8 hex digits. colorful.Hex
// ignores trailing input, so length and alphabet are checked here.
func isHexColor(digits string) bool {
	switch len(digits) {
	case 3, 6, 8:
	default:
		return false
	}
	for _, r := range digits {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// EventKind identifies a kind of pointer event delivered by an InputSource.
type EventKind uint8

const (
	EventPointerDown  EventKind = iota // a pointer button was pressed over the surface
	EventPointerMove                   // the pointer moved over the surface
	EventPointerUp                     // a pointer button was released
	EventPointerLeave                  // the pointer left the surface bounds

	numEventKinds
)

func (k EventKind) String() string {
	switch k {
	case EventPointerDown:
		return "pointerdown"
	case EventPointerMove:
		return "pointermove"
	case EventPointerUp:
		return "pointerup"
	case EventPointerLeave:
		return "pointerleave"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// kindTag marks values built by this package's constructors. A zero-value
// Surface or Tool carries no tag and is rejected by the collections.
type kindTag uint8

const (
	kindNone kindTag = iota
	kindSurface
	kindTool
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
