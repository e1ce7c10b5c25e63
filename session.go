package easel

import (
	"fmt"

	"go.uber.org/zap"
)

// ChangeKind says which collection a ChangeEvent came from.
type ChangeKind uint8

const (
	ChangeLayer ChangeKind = iota // the active surface changed
	ChangeTool                    // the current tool changed
)

func (k ChangeKind) String() string {
	if k == ChangeLayer {
		return "layer"
	}
	return "tool"
}

// ChangeEvent describes an activation or selection change. IDs are zero
// and names empty for a nil side.
type ChangeEvent struct {
	Kind         ChangeKind
	CurrentID    uint32
	CurrentName  string
	PreviousID   uint32
	PreviousName string
}

// EventStore is the interface for optional ECS integration.
// When set on a Session, every ChangeEvent is forwarded to it.
type EventStore interface {
	EmitEvent(event ChangeEvent)
}

// Session is one drawing session: it owns a SurfaceStack, a ToolPalette and
// the Binder between them, and hands references to whatever needs them.
// There is no package-level session.
type Session struct {
	cfg     Config
	stack   *SurfaceStack
	palette *ToolPalette
	binder  *Binder
	router  pointerRouter

	log    *zap.Logger
	logSet bool
	store  EventStore
	debug  bool

	injectQueue []syntheticPointerEvent
	injected    bool
	runner      *ScriptRunner

	// SnapshotDir is where Snapshot writes PNG files.
	SnapshotDir string
}

// NewSession validates cfg and builds the stack, palette, configured tools and
// initial layers. The first configured tool is picked up and the topmost
// configured layer is active.
func NewSession(cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	stack, err := NewSurfaceStack(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	stack.SetBaseOrder(cfg.BaseOrder)

	s := &Session{
		cfg:         cfg,
		stack:       stack,
		palette:     NewToolPalette(cfg.PaletteWidth, cfg.Height),
		log:         newLogger(cfg.Debug),
		debug:       cfg.Debug,
		SnapshotDir: cfg.SnapshotDir,
	}
	s.binder = NewBinder(s.stack, s.palette, s.log)
	s.stack.OnChange(func(active, last *Surface) {
		s.emit(ChangeEvent{
			Kind:         ChangeLayer,
			CurrentID:    active.idOrZero(),
			CurrentName:  active.nameOrEmpty(),
			PreviousID:   last.idOrZero(),
			PreviousName: last.nameOrEmpty(),
		})
	})
	s.palette.OnChange(func(current, last *Tool) {
		s.emit(ChangeEvent{
			Kind:         ChangeTool,
			CurrentID:    current.idOrZero(),
			CurrentName:  current.nameOrEmpty(),
			PreviousID:   last.idOrZero(),
			PreviousName: last.nameOrEmpty(),
		})
	})

	for _, tc := range cfg.Tools {
		t, err := NewToolFromConfig(tc)
		if err != nil {
			return nil, err
		}
		if err := s.AddTool(t); err != nil {
			return nil, err
		}
	}
	for _, lc := range cfg.Layers {
		surf, err := s.AddLayer(lc.Width, lc.Height, lc.Background)
		if err != nil {
			return nil, err
		}
		if lc.Name != "" {
			surf.Name = lc.Name
		}
	}
	if tools := s.palette.Tools(); len(tools) > 0 {
		if err := s.Pickup(tools[0]); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Config returns the config the session was built from.
func (s *Session) Config() Config { return s.cfg }

// Stack returns the session's surface stack.
func (s *Session) Stack() *SurfaceStack { return s.stack }

// Palette returns the session's tool palette.
func (s *Session) Palette() *ToolPalette { return s.palette }

// Binder returns the session's binding coordinator.
func (s *Session) Binder() *Binder { return s.binder }

// Logger returns the session logger.
func (s *Session) Logger() *zap.Logger { return s.log }

// SetLogger replaces the session logger. A nil logger disables logging.
func (s *Session) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	s.log = l
	s.binder.log = l
	s.logSet = true
}

// SetDebugMode enables or disables debug checks and change logging. Enabling
// it installs a development logger unless one was set with SetLogger.
func (s *Session) SetDebugMode(enabled bool) {
	if enabled && !s.logSet && !s.log.Core().Enabled(zap.DebugLevel) {
		s.log = newLogger(true)
		s.binder.log = s.log
	}
	s.debug = enabled
}

// SetEventStore sets the optional ECS bridge.
func (s *Session) SetEventStore(store EventStore) {
	s.store = store
}

func (s *Session) emit(ev ChangeEvent) {
	s.debugLogChange(ev)
	if s.store != nil {
		s.store.EmitEvent(ev)
	}
}

// AddLayer creates a width x height surface and adds it on top of the stack,
// making it active. An empty background uses the config default.
//
// Invalid arguments leave the session unchanged. A binding error from the
// current tool is reported after the commit: the surface is returned, added
// and active, with no tool bound to it. Pickup behaves the same way.
func (s *Session) AddLayer(width, height int, background string) (*Surface, error) {
	if background == "" {
		background = s.cfg.Background
	}
	surf, err := NewSurface(width, height, background)
	if err != nil {
		return nil, err
	}
	s.dropStaleBindError()
	if err := s.stack.AddLayer(surf); err != nil {
		return nil, err
	}
	s.debugCheckLayerCount()
	return surf, s.binder.Err()
}

// RemoveLayer removes the layer at index.
func (s *Session) RemoveLayer(index int) error {
	s.dropStaleBindError()
	if err := s.stack.RemoveLayer(index); err != nil {
		return err
	}
	return s.binder.Err()
}

// ActivateLayer makes the layer at index active.
func (s *Session) ActivateLayer(index int) error {
	s.dropStaleBindError()
	if err := s.stack.Activate(index); err != nil {
		return err
	}
	return s.binder.Err()
}

// AddTool adds t to the palette.
func (s *Session) AddTool(t *Tool) error {
	return s.palette.AddTool(t)
}

// Pickup makes t the current tool and binds it to the active layer.
func (s *Session) Pickup(t *Tool) error {
	s.dropStaleBindError()
	if err := s.palette.Pickup(t); err != nil {
		return err
	}
	return s.binder.Err()
}

// PickupByName picks up the tool named name.
func (s *Session) PickupByName(name string) error {
	t := s.palette.Lookup(name)
	if t == nil {
		return fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}
	return s.Pickup(t)
}

// Putdown releases the current tool.
func (s *Session) Putdown() error {
	s.dropStaleBindError()
	s.palette.Putdown()
	return s.binder.Err()
}

// dropStaleBindError discards a binding error left by a change made outside
// the session, such as a host calling Tool.Trigger, so it is not reported by
// the next unrelated operation.
func (s *Session) dropStaleBindError() {
	if err := s.binder.Err(); err != nil {
		s.log.Debug("stale bind error dropped", zap.Error(err))
	}
}

// Resize resizes the drawing area and palette to the given host size. The
// palette keeps its width; the stack gets the rest.
func (s *Session) Resize(width, height int) error {
	if err := s.stack.Resize(width-s.palette.Width(), height); err != nil {
		return err
	}
	s.palette.Resize(s.palette.Width(), height)
	return nil
}

// AttachTo places the stack and palette in host.
func (s *Session) AttachTo(host RenderHost) {
	s.palette.AttachTo(host)
	s.stack.AttachTo(host)
}

// Update advances one frame: the script runner, one injected pointer event
// and the palette's selection fades.
func (s *Session) Update(dt float32) {
	if s.runner != nil {
		s.runner.step(s)
	}
	s.injected = s.processInjectedInput()
	s.palette.Update(dt)
}

// HandlePointer routes a raw pointer sample in stack coordinates to the
// active layer. Hosts call it once per frame with the current pointer state.
func (s *Session) HandlePointer(x, y float64, pressed bool, button MouseButton, mods KeyModifiers) {
	s.router.process(s.stack.Active(), x, y, pressed, button, mods)
}

// Close detaches the bound tool and stops observing the collections.
func (s *Session) Close() error {
	s.router.reset()
	s.injectQueue = nil
	err := s.binder.Close()
	// Sync fails on terminals (ENOTTY/EINVAL); there is nothing to recover.
	_ = s.log.Sync()
	return err
}

func (s *Surface) idOrZero() uint32 {
	if s == nil {
		return 0
	}
	return s.id
}

func (s *Surface) nameOrEmpty() string {
	if s == nil {
		return ""
	}
	return s.Name
}

func (t *Tool) idOrZero() uint32 {
	if t == nil {
		return 0
	}
	return t.id
}

func (t *Tool) nameOrEmpty() string {
	if t == nil {
		return ""
	}
	return t.name
}
