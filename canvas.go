package easel

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

var (
	canvasBackdrop  = color.RGBA{0x33, 0x33, 0x33, 0xff}
	paletteBackdrop = color.RGBA{0x22, 0x22, 0x22, 0xff}
	iconIdle        = Color{0.45, 0.45, 0.45, 1}
	iconSelected    = Color{0.95, 0.75, 0.2, 1}
	activeOutline   = color.RGBA{0x40, 0x90, 0xff, 0xff}
)

// RunConfig configures a window opened by Run.
type RunConfig struct {
	Title string
	// Width and Height are the initial window size. Zero means palette
	// width plus the session's drawing area.
	Width, Height int
	// ExitWhenScriptDone ends the run loop once an attached script finishes.
	ExitWhenScriptDone bool
	// ShowFPS draws an FPS/TPS counter in the bottom-right corner.
	ShowFPS bool
}

// layerTexture caches a surface's composite on the GPU. It is re-uploaded
// only when the paint revision changes.
type layerTexture struct {
	img *ebiten.Image
	rev uint64
}

// Canvas is the ebiten render host for a Session: the palette strip on the
// left and the surface stack to its right. It implements ebiten.Game.
type Canvas struct {
	session *Session
	palette *ToolPalette
	stack   *SurfaceStack

	textures map[*Surface]*layerTexture
	pixel    *ebiten.Image

	outW, outH int
	exitOnDone bool
	fps        *fpsOverlay
}

// NewCanvas creates a canvas and attaches the session's palette and stack to
// it.
func NewCanvas(s *Session) *Canvas {
	c := &Canvas{
		session:  s,
		textures: make(map[*Surface]*layerTexture),
	}
	s.AttachTo(c)
	return c
}

// Place implements RenderHost.
func (c *Canvas) Place(p Placeable) {
	switch v := p.(type) {
	case *ToolPalette:
		c.palette = v
	case *SurfaceStack:
		c.stack = v
	case *Surface:
		if _, ok := c.textures[v]; !ok {
			c.textures[v] = &layerTexture{}
		}
	}
}

// Update implements ebiten.Game.
func (c *Canvas) Update() error {
	s := c.session
	dt := 1 / float64(ebiten.TPS())
	s.Update(float32(dt))
	if c.fps != nil {
		c.fps.update(dt)
	}

	if !s.Injecting() {
		c.processMouse()
	}
	if err := s.binder.Err(); err != nil {
		s.log.Warn("rebind failed", zap.Error(err))
	}
	if c.exitOnDone && s.runner != nil && s.runner.Done() {
		if err := s.runner.Err(); err != nil {
			return err
		}
		return ebiten.Termination
	}
	return nil
}

func (c *Canvas) processMouse() {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	pw := 0
	if c.palette != nil {
		pw = c.palette.Width()
	}

	if mx < pw {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			if t := c.palette.ToolAt(x, y); t != nil {
				t.Trigger()
			}
		}
		// Over the palette the stack sees the pointer as outside.
		c.session.HandlePointer(-1, -1, false, MouseButtonLeft, readModifiers())
		return
	}

	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else if right {
			button = MouseButtonRight
		} else {
			button = MouseButtonMiddle
		}
	}
	c.session.HandlePointer(x-float64(pw), y, pressed, button, readModifiers())
}

// readModifiers returns the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// Draw implements ebiten.Game.
func (c *Canvas) Draw(screen *ebiten.Image) {
	screen.Fill(canvasBackdrop)
	pw := 0
	if c.palette != nil && c.palette.Visible() {
		pw = c.palette.Width()
		c.drawPalette(screen)
	}
	if c.stack != nil && c.stack.Visible() {
		c.drawStack(screen, float64(pw))
	}
	if c.fps != nil {
		c.fps.draw(screen)
	}
	c.pruneTextures()
}

func (c *Canvas) drawPalette(screen *ebiten.Image) {
	p := c.palette
	c.fillRect(screen, 0, 0, float64(p.Width()), float64(p.Height()), paletteBackdrop)
	for i, t := range p.Tools() {
		r := p.IconRect(i)
		c.fillRect(screen, r.X, r.Y, r.Width, r.Height, lerpColor(iconIdle, iconSelected, t.Highlight()))
		label := t.Name()
		if len(label) > 2 {
			label = label[:2]
		}
		ebitenutil.DebugPrintAt(screen, label, int(r.X)+4, int(r.Y)+8)
	}
}

func (c *Canvas) drawStack(screen *ebiten.Image, offsetX float64) {
	for _, s := range c.stack.Layers() {
		if !s.Visible() {
			continue
		}
		tex := c.texture(s)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(offsetX+s.x, s.y)
		screen.DrawImage(tex.img, op)
	}
	if a := c.stack.Active(); a != nil && a.Visible() {
		c.strokeRect(screen, offsetX+a.x-1, a.y-1, float64(a.width)+2, float64(a.height)+2, activeOutline)
	}
}

// texture returns the cached texture for s, uploading its composite when the
// paint revision has moved.
func (c *Canvas) texture(s *Surface) *layerTexture {
	tex := c.textures[s]
	if tex == nil {
		tex = &layerTexture{}
		c.textures[s] = tex
	}
	if tex.img == nil {
		tex.img = ebiten.NewImage(s.width, s.height)
		tex.rev = ^uint64(0)
	}
	if rev := s.paint.Revision(); rev != tex.rev {
		tex.img.WritePixels(s.Composite().Pix)
		tex.rev = rev
	}
	return tex
}

// pruneTextures releases textures of surfaces that have been disposed.
func (c *Canvas) pruneTextures() {
	for s, tex := range c.textures {
		if !s.IsDisposed() {
			continue
		}
		if tex.img != nil {
			tex.img.Deallocate()
		}
		delete(c.textures, s)
	}
}

func (c *Canvas) whitePixel() *ebiten.Image {
	if c.pixel == nil {
		c.pixel = ebiten.NewImage(1, 1)
		c.pixel.Fill(color.White)
	}
	return c.pixel
}

func (c *Canvas) fillRect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	dst.DrawImage(c.whitePixel(), op)
}

func (c *Canvas) strokeRect(dst *ebiten.Image, x, y, w, h float64, clr color.Color) {
	c.fillRect(dst, x, y, w, 1, clr)
	c.fillRect(dst, x, y+h-1, w, 1, clr)
	c.fillRect(dst, x, y, 1, h, clr)
	c.fillRect(dst, x+w-1, y, 1, h, clr)
}

// Layout implements ebiten.Game. A change in window size resizes the session.
func (c *Canvas) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != c.outW || outsideHeight != c.outH {
		if err := c.session.Resize(outsideWidth, outsideHeight); err == nil {
			c.outW, c.outH = outsideWidth, outsideHeight
		}
	}
	return outsideWidth, outsideHeight
}

func lerpColor(a, b Color, t float64) Color {
	t = clamp01(t)
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}

// Run opens a window and runs s until the window is closed. It blocks.
func Run(s *Session, cfg RunConfig) error {
	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		w = s.palette.Width() + s.stack.Width()
		h = s.stack.Height()
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	c := NewCanvas(s)
	c.exitOnDone = cfg.ExitWhenScriptDone
	if cfg.ShowFPS {
		c.fps = &fpsOverlay{}
	}
	if err := ebiten.RunGame(c); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}
