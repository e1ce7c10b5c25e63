package easel

import "testing"

func TestInjectClick(t *testing.T) {
	s := newTestSession(t, DefaultConfig())
	var log eventLog
	log.listen(s.Stack().Active())

	s.InjectClick(100, 100)
	if len(s.injectQueue) != 2 {
		t.Fatalf("expected 2 queued events, got %d", len(s.injectQueue))
	}

	// Frame 1: press
	s.Update(0)
	if len(s.injectQueue) != 1 {
		t.Fatalf("expected 1 remaining event after frame 1, got %d", len(s.injectQueue))
	}
	// Frame 2: release
	s.Update(0)
	got := log.kinds()
	if len(got) != 2 || got[0] != EventPointerDown || got[1] != EventPointerUp {
		t.Errorf("events = %v, want [pointerdown pointerup]", got)
	}
	if e := log.events[0]; e.X != 20 || e.Y != 40 {
		t.Errorf("press at (%v, %v), want layer-local (20, 40)", e.X, e.Y)
	}
}

func TestInjectDrag(t *testing.T) {
	s := newTestSession(t, DefaultConfig())
	s.InjectDrag(100, 100, 200, 200, 5)
	if len(s.injectQueue) != 5 {
		t.Fatalf("expected 5 queued events, got %d", len(s.injectQueue))
	}
	mid := s.injectQueue[2]
	if mid.x != 150 || mid.y != 150 || !mid.pressed {
		t.Errorf("midpoint = %+v, want pressed at (150, 150)", mid)
	}
	last := s.injectQueue[4]
	if last.pressed || last.x != 200 {
		t.Errorf("last = %+v, want release at 200", last)
	}
}

func TestInjectDrag_MinFrames(t *testing.T) {
	s := newTestSession(t, DefaultConfig())
	s.InjectDrag(0, 0, 10, 10, 0)
	if len(s.injectQueue) != 2 {
		t.Errorf("expected 2 queued events, got %d", len(s.injectQueue))
	}
}

func TestProcessInjectedInput_EmptyQueue(t *testing.T) {
	s := newTestSession(t, DefaultConfig())
	if s.processInjectedInput() {
		t.Error("consumed an event from an empty queue")
	}
}

func TestInjectHover(t *testing.T) {
	s := newTestSession(t, DefaultConfig())
	var log eventLog
	log.listen(s.Stack().Active())
	s.InjectHover(100, 100)
	s.InjectHover(5, 5)
	updateN(s, 2)
	got := log.kinds()
	if len(got) != 2 || got[0] != EventPointerMove || got[1] != EventPointerLeave {
		t.Errorf("events = %v, want move then leave", got)
	}
}
