package easel

import (
	"go.uber.org/zap"
)

// debugMaxLayers is the layer count past which debug mode warns. Every layer
// holds a full RGBA buffer, so large stacks are usually a leak.
const debugMaxLayers = 64

// newLogger returns a development logger in debug mode and a no-op logger
// otherwise.
func newLogger(debug bool) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return l.Named("easel")
}

// debugCheckLayerCount warns if the stack has grown past debugMaxLayers.
func (s *Session) debugCheckLayerCount() {
	if !s.debug {
		return
	}
	if n := s.stack.Len(); n > debugMaxLayers {
		s.log.Warn("layer count exceeds threshold",
			zap.Int("layers", n),
			zap.Int("threshold", debugMaxLayers))
	}
}

// debugLogChange records an activation or selection change.
func (s *Session) debugLogChange(ev ChangeEvent) {
	if !s.debug {
		return
	}
	s.log.Debug("change",
		zap.Stringer("kind", ev.Kind),
		zap.Uint32("current", ev.CurrentID),
		zap.String("currentName", ev.CurrentName),
		zap.Uint32("previous", ev.PreviousID),
		zap.String("previousName", ev.PreviousName))
}
