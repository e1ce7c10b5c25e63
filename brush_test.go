package easel

import "testing"

func boundBrush(t *testing.T, tool *Tool, bg ...string) *Surface {
	t.Helper()
	s := mustSurface(t, 50, 50, bg...)
	if err := tool.Bind(s); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	return s
}

func TestBrushStroke(t *testing.T) {
	tool := NewPaintBrush("b", 4, ColorBlack)
	s := boundBrush(t, tool)
	rev := s.Paint().Revision()

	s.HandlePointer(PointerEvent{Kind: EventPointerDown, X: 10, Y: 10})
	if s.Paint().Pixel(10, 10).A != 255 {
		t.Error("press did not paint a dot")
	}
	s.HandlePointer(PointerEvent{Kind: EventPointerMove, X: 40, Y: 10})
	if s.Paint().Pixel(25, 10).A != 255 {
		t.Error("move did not paint a segment")
	}
	s.HandlePointer(PointerEvent{Kind: EventPointerUp, X: 40, Y: 10})

	if s.Paint().Revision() <= rev {
		t.Error("revision did not advance")
	}
	if got := tool.Declarer().(*Brush).Strokes(); got != 1 {
		t.Errorf("Strokes = %d, want 1", got)
	}
}

func TestBrushHoverDoesNotPaint(t *testing.T) {
	tool := NewPaintBrush("b", 4, ColorBlack)
	s := boundBrush(t, tool)
	s.HandlePointer(PointerEvent{Kind: EventPointerMove, X: 10, Y: 10})
	s.HandlePointer(PointerEvent{Kind: EventPointerMove, X: 40, Y: 10})
	if s.Paint().Pixel(25, 10).A != 0 {
		t.Error("hover painted")
	}
}

func TestBrushLeaveEndsStroke(t *testing.T) {
	tool := NewPaintBrush("b", 4, ColorBlack)
	s := boundBrush(t, tool)
	s.HandlePointer(PointerEvent{Kind: EventPointerDown, X: 10, Y: 10})
	s.HandlePointer(PointerEvent{Kind: EventPointerLeave, X: 10, Y: 40})
	s.HandlePointer(PointerEvent{Kind: EventPointerMove, X: 40, Y: 40})
	if s.Paint().Pixel(25, 40).A != 0 {
		t.Error("move after leave painted")
	}
	if got := tool.Declarer().(*Brush).Strokes(); got != 1 {
		t.Errorf("Strokes = %d, want 1", got)
	}
}

func TestEraserUsesBackground(t *testing.T) {
	tool := NewEraser("e", 6)
	s := boundBrush(t, tool, "#FF0000")
	s.HandlePointer(PointerEvent{Kind: EventPointerDown, X: 20, Y: 20})
	px := s.Paint().Pixel(20, 20)
	if px.R != 255 || px.G != 0 || px.A != 255 {
		t.Errorf("erased pixel = %v, want background red", px)
	}
}

func TestLineTool(t *testing.T) {
	tool := NewLineTool("l", 2, ColorBlack)
	s := boundBrush(t, tool)
	s.HandlePointer(PointerEvent{Kind: EventPointerDown, X: 5, Y: 25})
	if s.Paint().Pixel(25, 25).A != 0 {
		t.Fatal("line painted before release")
	}
	s.HandlePointer(PointerEvent{Kind: EventPointerUp, X: 45, Y: 25})
	if s.Paint().Pixel(25, 25).A == 0 {
		t.Error("release did not draw the line")
	}
}

func TestLineToolLeaveCancels(t *testing.T) {
	tool := NewLineTool("l", 2, ColorBlack)
	s := boundBrush(t, tool)
	s.HandlePointer(PointerEvent{Kind: EventPointerDown, X: 5, Y: 25})
	s.HandlePointer(PointerEvent{Kind: EventPointerLeave, X: 0, Y: 25})
	s.HandlePointer(PointerEvent{Kind: EventPointerUp, X: 45, Y: 25})
	if s.Paint().Pixel(25, 25).A != 0 {
		t.Error("line drawn after leave")
	}
}
