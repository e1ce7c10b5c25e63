package easel

import (
	"errors"
	"math/rand"
	"testing"
)

func TestPickupSwitchesSelection(t *testing.T) {
	p := NewToolPalette(40, 400)
	a := NewPaintBrush("a", 2, ColorBlack)
	b := NewPaintBrush("b", 2, ColorBlack)
	if err := p.AddTool(a); err != nil {
		t.Fatal(err)
	}
	if err := p.AddTool(b); err != nil {
		t.Fatal(err)
	}

	if err := p.Pickup(a); err != nil {
		t.Fatal(err)
	}
	if !a.Selected() || p.Current() != a {
		t.Error("a not selected")
	}
	if err := p.Pickup(b); err != nil {
		t.Fatal(err)
	}
	if a.Selected() || !b.Selected() {
		t.Errorf("a.Selected=%v b.Selected=%v, want false true", a.Selected(), b.Selected())
	}
	if p.Last() != a {
		t.Error("Last != a")
	}
}

func TestAddToolRejects(t *testing.T) {
	p := NewToolPalette(40, 400)
	if err := p.AddTool(nil); !errors.Is(err, ErrTypeKindMismatch) {
		t.Errorf("AddTool(nil) error = %v, want ErrTypeKindMismatch", err)
	}
	if err := p.AddTool(&Tool{}); !errors.Is(err, ErrTypeKindMismatch) {
		t.Errorf("AddTool(zero) error = %v, want ErrTypeKindMismatch", err)
	}
	if p.Len() != 0 {
		t.Errorf("Len = %d, want 0", p.Len())
	}
}

func TestAddToolTwice(t *testing.T) {
	p := NewToolPalette(40, 400)
	a := NewPaintBrush("a", 2, ColorBlack)
	_ = p.AddTool(a)
	if err := p.AddTool(a); err != nil {
		t.Errorf("second AddTool = %v, want nil", err)
	}
	if p.Len() != 1 || !a.Added() {
		t.Errorf("Len=%d Added=%v, want 1 true", p.Len(), a.Added())
	}
	if p.Lookup("a") != a || p.Lookup("zzz") != nil {
		t.Error("Lookup mismatch")
	}
}

func TestPickupRejects(t *testing.T) {
	p := NewToolPalette(40, 400)
	if err := p.Pickup(nil); !errors.Is(err, ErrTypeKindMismatch) {
		t.Errorf("Pickup(nil) error = %v, want ErrTypeKindMismatch", err)
	}
	stranger := NewPaintBrush("x", 2, ColorBlack)
	if err := p.Pickup(stranger); !errors.Is(err, ErrUnknownTool) {
		t.Errorf("Pickup(stranger) error = %v, want ErrUnknownTool", err)
	}
	if stranger.Selected() || p.Current() != nil {
		t.Error("rejected pickup changed state")
	}
}

func TestPickupIdempotent(t *testing.T) {
	p := NewToolPalette(40, 400)
	a := NewPaintBrush("a", 2, ColorBlack)
	_ = p.AddTool(a)
	notified := 0
	p.OnChange(func(_, _ *Tool) { notified++ })

	_ = p.Pickup(a)
	_ = p.Pickup(a)
	if notified != 1 {
		t.Errorf("notifications = %d, want 1", notified)
	}
	if !a.Selected() || p.Last() != nil {
		t.Error("re-affirmed pickup changed state")
	}
}

func TestPutdown(t *testing.T) {
	p := NewToolPalette(40, 400)
	a := NewPaintBrush("a", 2, ColorBlack)
	_ = p.AddTool(a)
	_ = p.Pickup(a)

	var gotCur, gotLast *Tool
	notified := 0
	p.OnChange(func(cur, last *Tool) {
		notified++
		gotCur, gotLast = cur, last
	})
	p.Putdown()
	if notified != 1 || gotCur != nil || gotLast != a {
		t.Errorf("notified=%d cur=%v last=%v, want 1 nil a", notified, gotCur, gotLast)
	}
	if a.Selected() || p.Current() != nil || p.Last() != a {
		t.Error("Putdown left a selected")
	}
	p.Putdown()
	if notified != 1 {
		t.Error("Putdown with nothing held notified")
	}
}

func TestSingleSelectedTool(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	p := NewToolPalette(40, 400)
	for i := 0; i < 300; i++ {
		switch op := rng.Intn(4); {
		case op == 0 || p.Len() == 0:
			_ = p.AddTool(NewPaintBrush("t", 1, ColorBlack))
		case op == 1:
			p.Putdown()
		default:
			_ = p.Pickup(p.Tools()[rng.Intn(p.Len())])
		}
		selected := 0
		for _, tool := range p.Tools() {
			if tool.Selected() {
				selected++
				if tool != p.Current() {
					t.Fatalf("step %d: selected tool is not current", i)
				}
			}
		}
		if selected > 1 {
			t.Fatalf("step %d: %d selected tools", i, selected)
		}
	}
}

func TestTriggerPicksUp(t *testing.T) {
	p := NewToolPalette(40, 400)
	a := NewPaintBrush("a", 2, ColorBlack)
	_ = p.AddTool(a)
	a.Trigger()
	if p.Current() != a || !a.Selected() {
		t.Error("Trigger did not pick up the tool")
	}
}

func TestHighlightFades(t *testing.T) {
	p := NewToolPalette(40, 400)
	a, b := NewPaintBrush("a", 2, ColorBlack), NewPaintBrush("b", 2, ColorBlack)
	_ = p.AddTool(a)
	_ = p.AddTool(b)

	_ = p.Pickup(a)
	p.Update(selectionFadeSeconds / 2)
	if h := a.Highlight(); h <= 0 || h >= 1 {
		t.Errorf("mid-fade highlight = %v, want in (0, 1)", h)
	}
	p.Update(1)
	if a.Highlight() != 1 {
		t.Errorf("highlight = %v, want 1", a.Highlight())
	}

	_ = p.Pickup(b)
	p.Update(1)
	if a.Highlight() != 0 || b.Highlight() != 1 {
		t.Errorf("highlights a=%v b=%v, want 0 1", a.Highlight(), b.Highlight())
	}
}

func TestToolAt(t *testing.T) {
	p := NewToolPalette(40, 400)
	a, b := NewPaintBrush("a", 2, ColorBlack), NewPaintBrush("b", 2, ColorBlack)
	_ = p.AddTool(a)
	_ = p.AddTool(b)

	tests := []struct {
		name string
		x, y float64
		want *Tool
	}{
		{"first icon", 20, 10, a},
		{"second icon", 20, 40, b},
		{"margin left", 1, 10, nil},
		{"below icons", 20, 200, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.ToolAt(tt.x, tt.y); got != tt.want {
				t.Errorf("ToolAt(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}
