package easel

import (
	"errors"
	"os"
	"testing"
)

// runScript attaches runner to s and updates until it finishes.
func runScript(t *testing.T, s *Session, runner *ScriptRunner) {
	t.Helper()
	s.SetScript(runner)
	for i := 0; i < 200 && !runner.Done(); i++ {
		s.Update(1.0 / 60)
	}
	if !runner.Done() {
		t.Fatal("script did not finish")
	}
}

func TestLoadScript(t *testing.T) {
	runner, err := LoadScript([]byte(`{"steps": [{"action": "click", "x": 1, "y": 2}, {"action": "wait", "frames": 3}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if len(runner.steps) != 2 || runner.steps[0].X != 1 || runner.steps[1].Frames != 3 {
		t.Errorf("steps = %+v", runner.steps)
	}
}

func TestLoadScript_Invalid(t *testing.T) {
	if _, err := LoadScript([]byte(`{not json`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadScript_Empty(t *testing.T) {
	if _, err := LoadScript([]byte(`{"steps": []}`)); err == nil {
		t.Error("expected error for empty steps")
	}
}

func TestScriptLayersAndTools(t *testing.T) {
	s := newTestSession(t, DefaultConfig())
	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "add_layer", "label": "ink", "width": 200, "height": 100},
		{"action": "add_layer"},
		{"action": "pickup", "tool": "line"},
		{"action": "activate", "index": 1},
		{"action": "remove_layer", "index": 2},
		{"action": "set_visible", "index": 0, "value": false}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	runScript(t, s, runner)
	if err := runner.Err(); err != nil {
		t.Fatal(err)
	}

	st := s.Stack()
	if st.Len() != 2 {
		t.Fatalf("layers = %d, want 2", st.Len())
	}
	if a := st.Active(); a.Name != "ink" || a.Width() != 200 {
		t.Errorf("active = %q %dx%d, want ink 200x100", a.Name, a.Width(), a.Height())
	}
	if st.LayerAt(0).Visible() {
		t.Error("layer 0 still visible")
	}
	if s.Palette().Current().Name() != "line" {
		t.Errorf("tool = %q, want line", s.Palette().Current().Name())
	}
}

func TestScriptRejectsNonBooleanFlag(t *testing.T) {
	for _, value := range []string{`"yes"`, `1`, `null`} {
		t.Run(value, func(t *testing.T) {
			s := newTestSession(t, DefaultConfig())
			runner, err := LoadScript([]byte(`{"steps": [{"action": "set_visible", "index": 0, "value": ` + value + `}]}`))
			if err != nil {
				t.Fatal(err)
			}
			runScript(t, s, runner)
			if !errors.Is(runner.Err(), ErrInvalidFlagValue) {
				t.Errorf("Err = %v, want ErrInvalidFlagValue", runner.Err())
			}
			if !s.Stack().LayerAt(0).Visible() {
				t.Error("rejected flag changed visibility")
			}
		})
	}
}

func TestScriptStopsOnError(t *testing.T) {
	s := newTestSession(t, DefaultConfig())
	runner, _ := LoadScript([]byte(`{"steps": [
		{"action": "pickup", "tool": "missing"},
		{"action": "add_layer"}
	]}`))
	runScript(t, s, runner)
	if !errors.Is(runner.Err(), ErrUnknownTool) {
		t.Errorf("Err = %v, want ErrUnknownTool", runner.Err())
	}
	if s.Stack().Len() != 1 {
		t.Error("steps after the failure ran")
	}

	s2 := newTestSession(t, DefaultConfig())
	runner, _ = LoadScript([]byte(`{"steps": [{"action": "fly"}]}`))
	runScript(t, s2, runner)
	if runner.Err() == nil {
		t.Error("unknown action accepted")
	}
}

func TestScriptWaitsForInjectQueue(t *testing.T) {
	s := newTestSession(t, DefaultConfig())
	runner, _ := LoadScript([]byte(`{"steps": [
		{"action": "drag", "fromX": 100, "fromY": 100, "toX": 300, "toY": 100, "frames": 4},
		{"action": "pickup", "tool": "eraser"}
	]}`))
	s.SetScript(runner)

	// The drag takes four frames; the pickup must not run until it drains.
	updateN(s, 3)
	if s.Palette().Current().Name() != "brush" {
		t.Fatal("pickup ran before the drag finished")
	}
	updateN(s, 2)
	if s.Palette().Current().Name() != "eraser" {
		t.Errorf("tool = %q, want eraser", s.Palette().Current().Name())
	}
	if s.Stack().Active().Paint().Pixel(120, 40).A == 0 {
		t.Error("scripted drag did not paint")
	}
}

func TestScriptWait(t *testing.T) {
	s := newTestSession(t, DefaultConfig())
	runner, _ := LoadScript([]byte(`{"steps": [{"action": "wait", "frames": 3}, {"action": "putdown"}]}`))
	s.SetScript(runner)
	updateN(s, 3)
	if s.Palette().Current() == nil {
		t.Fatal("putdown ran during the wait")
	}
	updateN(s, 1)
	if s.Palette().Current() != nil {
		t.Error("putdown did not run after the wait")
	}
}

func TestScriptSnapshot(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SnapshotDir = t.TempDir()
	s := newTestSession(t, cfg)
	runner, _ := LoadScript([]byte(`{"steps": [{"action": "snapshot", "label": "end state"}]}`))
	runScript(t, s, runner)
	if err := runner.Err(); err != nil {
		t.Fatal(err)
	}
	paths := runner.Snapshots()
	if len(paths) != 1 {
		t.Fatalf("snapshots = %v, want 1", paths)
	}
	if _, err := os.Stat(paths[0]); err != nil {
		t.Errorf("snapshot missing: %v", err)
	}
}
