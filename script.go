package easel

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// scriptStep represents a single action in a session script.
type scriptStep struct {
	Action     string  `json:"action"`
	Label      string  `json:"label,omitempty"`
	Tool       string  `json:"tool,omitempty"`
	Index      int     `json:"index,omitempty"`
	Width      int     `json:"width,omitempty"`
	Height     int     `json:"height,omitempty"`
	Background string  `json:"background,omitempty"`
	Value      any     `json:"value,omitempty"`
	X          float64 `json:"x,omitempty"`
	Y          float64 `json:"y,omitempty"`
	FromX      float64 `json:"fromX,omitempty"`
	FromY      float64 `json:"fromY,omitempty"`
	ToX        float64 `json:"toX,omitempty"`
	ToY        float64 `json:"toY,omitempty"`
	Frames     int     `json:"frames,omitempty"`
}

// script is the top-level JSON structure for a session script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences layer and tool operations, injected strokes and
// snapshots across frames. Attach to a Session via SetScript.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	err       error
	snapshots []string
}

// LoadScript parses a JSON script and returns a runner ready to be attached
// to a Session via SetScript.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// SetScript attaches a runner to the session. Its step method is called from
// Session.Update before injected input is processed.
func (s *Session) SetScript(runner *ScriptRunner) {
	s.runner = runner
}

// Done reports whether the script has finished, either by running every step
// or by failing.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Err returns the error that stopped the script, or nil.
func (r *ScriptRunner) Err() error {
	return r.err
}

// Snapshots returns the paths written by snapshot steps so far.
func (r *ScriptRunner) Snapshots() []string {
	return r.snapshots
}

// step advances the runner by one frame. Called from Session.Update.
func (r *ScriptRunner) step(s *Session) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	if err := r.exec(s, st); err != nil {
		r.err = fmt.Errorf("script step %d (%s): %w", r.cursor-1, st.Action, err)
		r.done = true
		s.log.Debug("script failed", zap.Error(r.err))
		return
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}

func (r *ScriptRunner) exec(s *Session, st scriptStep) error {
	switch st.Action {
	case "add_layer":
		w, h := st.Width, st.Height
		if w == 0 && h == 0 {
			w, h = s.stack.Width(), s.stack.Height()
		}
		surf, err := s.AddLayer(w, h, st.Background)
		if err != nil {
			return err
		}
		if st.Label != "" {
			surf.Name = st.Label
		}
	case "remove_layer":
		return s.RemoveLayer(st.Index)
	case "activate":
		return s.ActivateLayer(st.Index)
	case "move_up":
		return s.stack.MoveUp(st.Index)
	case "move_down":
		return s.stack.MoveDown(st.Index)
	case "merge_down":
		s.dropStaleBindError()
		if err := s.stack.MergeDown(st.Index); err != nil {
			return err
		}
		return s.binder.Err()
	case "set_visible":
		visible, err := ParseFlag(st.Value)
		if err != nil {
			return err
		}
		surf := s.stack.LayerAt(st.Index)
		if surf == nil {
			return fmt.Errorf("%w: %d (len %d)", ErrLayerIndex, st.Index, s.stack.Len())
		}
		if visible {
			surf.Show()
		} else {
			surf.Hide()
		}
	case "pickup":
		return s.PickupByName(st.Tool)
	case "trigger":
		t := s.palette.Lookup(st.Tool)
		if t == nil {
			return fmt.Errorf("%w: %q", ErrUnknownTool, st.Tool)
		}
		s.dropStaleBindError()
		t.Trigger()
		return s.binder.Err()
	case "putdown":
		return s.Putdown()
	case "press":
		s.InjectPress(st.X, st.Y)
	case "move":
		s.InjectMove(st.X, st.Y)
	case "hover":
		s.InjectHover(st.X, st.Y)
	case "release":
		s.InjectRelease(st.X, st.Y)
	case "click":
		s.InjectClick(st.X, st.Y)
	case "drag":
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "snapshot":
		path, err := s.Snapshot(st.Label)
		if err != nil {
			return err
		}
		r.snapshots = append(r.snapshots, path)
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}
