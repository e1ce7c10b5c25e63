package easel

import "testing"

// countingTool declares one handler per event kind and counts deliveries.
type countingTool struct {
	calls map[EventKind]int
	prev  []PointerState
}

func newCountingTool() *countingTool {
	return &countingTool{calls: make(map[EventKind]int)}
}

func (c *countingTool) Events() []EventBinding {
	return []EventBinding{
		{Kind: EventPointerDown, Handler: c.record},
		{Kind: EventPointerMove, Handler: c.record},
		{Kind: EventPointerUp, Handler: c.record},
	}
}

func (c *countingTool) record(ctx ToolContext) {
	c.calls[ctx.Event.Kind]++
	c.prev = append(c.prev, ctx.Prev)
}

func mustSurface(t *testing.T, w, h int, bg ...string) *Surface {
	t.Helper()
	s, err := NewSurface(w, h, bg...)
	if err != nil {
		t.Fatalf("NewSurface(%d, %d): %v", w, h, err)
	}
	return s
}

func mustStack(t *testing.T, w, h int) *SurfaceStack {
	t.Helper()
	st, err := NewSurfaceStack(w, h)
	if err != nil {
		t.Fatalf("NewSurfaceStack(%d, %d): %v", w, h, err)
	}
	return st
}

func newTestSession(t *testing.T, cfg Config) *Session {
	t.Helper()
	s, err := NewSession(cfg)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// updateN runs n session frames.
func updateN(s *Session, n int) {
	for i := 0; i < n; i++ {
		s.Update(1.0 / 60)
	}
}
