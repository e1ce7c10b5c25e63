package easel

import (
	"go.uber.org/zap"
)

// Binder keeps the current tool's handlers attached to the active surface.
// It observes both a SurfaceStack and a ToolPalette; on every change it
// unbinds the previously bound pair before binding the new one, so at most
// one tool receives input from at most one surface.
type Binder struct {
	stack   *SurfaceStack
	palette *ToolPalette
	log     *zap.Logger

	tool    *Tool
	surface *Surface

	handles [2]ChangeHandle
	err     error
}

// NewBinder subscribes to stack and palette and binds the current pair
// immediately. A nil logger disables logging.
func NewBinder(stack *SurfaceStack, palette *ToolPalette, logger *zap.Logger) *Binder {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &Binder{stack: stack, palette: palette, log: logger}
	b.handles[0] = stack.OnChange(func(_, _ *Surface) { b.resolve() })
	b.handles[1] = palette.OnChange(func(_, _ *Tool) { b.resolve() })
	b.resolve()
	return b
}

// Bound returns the pair whose handlers are currently attached. Both are nil
// when nothing is bound.
func (b *Binder) Bound() (*Tool, *Surface) {
	return b.tool, b.surface
}

// Err returns and clears the error from the most recent failed resolve.
// Notifications cannot return errors, so the mutating call that triggered
// them reports it instead. A later resolve that changes the pair clears it.
func (b *Binder) Err() error {
	err := b.err
	b.err = nil
	return err
}

// resolve reconciles the bound pair with (current tool, active surface).
func (b *Binder) resolve() {
	tool, surface := b.palette.Current(), b.stack.Active()
	if tool == b.tool && surface == b.surface {
		return
	}
	// A new pair supersedes any failure from an earlier one.
	b.err = nil

	if b.tool != nil && b.surface != nil {
		if err := b.tool.Unbind(b.surface); err != nil {
			b.err = err
		}
		b.log.Debug("unbind",
			zap.String("tool", b.tool.Name()),
			zap.Uint32("surface", b.surface.ID()))
	}
	b.tool, b.surface = nil, nil

	if tool == nil || surface == nil {
		return
	}
	if err := tool.Bind(surface); err != nil {
		b.err = err
		b.log.Debug("bind failed",
			zap.String("tool", tool.Name()),
			zap.Uint32("surface", surface.ID()),
			zap.Error(err))
		return
	}
	b.tool, b.surface = tool, surface
	b.log.Debug("bind",
		zap.String("tool", tool.Name()),
		zap.Uint32("surface", surface.ID()))
}

// Close stops observing and detaches the bound pair.
func (b *Binder) Close() error {
	for _, h := range b.handles {
		h.Remove()
	}
	var err error
	if b.tool != nil && b.surface != nil {
		err = b.tool.Unbind(b.surface)
	}
	b.tool, b.surface = nil, nil
	return err
}
