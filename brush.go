package easel

// Brush paints freehand strokes: a dot on press, then a segment from the last
// known position on every move while the button is held.
type Brush struct {
	Width float64
	Color Color

	// erase paints with the surface background instead of Color.
	erase   bool
	strokes int
}

// NewPaintBrush returns a tool that paints freehand strokes of the given
// width and color.
func NewPaintBrush(name string, width float64, c Color) *Tool {
	return NewTool(name, &Brush{Width: width, Color: c})
}

// NewEraser returns a tool that paints with the bound surface's background
// color.
func NewEraser(name string, width float64) *Tool {
	return NewTool(name, &Brush{Width: width, erase: true})
}

// Events implements EventDeclarer.
func (b *Brush) Events() []EventBinding {
	return []EventBinding{
		{Kind: EventPointerDown, Handler: b.press},
		{Kind: EventPointerMove, Handler: b.move},
		{Kind: EventPointerUp, Handler: b.lift},
		{Kind: EventPointerLeave, Handler: b.lift},
	}
}

// Strokes returns the number of completed strokes.
func (b *Brush) Strokes() int { return b.strokes }

func (b *Brush) ink(ctx ToolContext) {
	if b.erase {
		ctx.Paint.SetColor(ctx.Surface.BackgroundColor())
	} else {
		ctx.Paint.SetColor(b.Color)
	}
	ctx.Paint.SetLineWidth(b.Width)
}

func (b *Brush) press(ctx ToolContext) {
	b.ink(ctx)
	ctx.Paint.FillCircle(ctx.Event.X, ctx.Event.Y, b.Width/2)
}

func (b *Brush) move(ctx ToolContext) {
	if !ctx.Prev.Down || !ctx.Prev.Known {
		return
	}
	b.ink(ctx)
	ctx.Paint.DrawLine(ctx.Prev.X, ctx.Prev.Y, ctx.Event.X, ctx.Event.Y)
}

func (b *Brush) lift(ctx ToolContext) {
	if ctx.Prev.Down {
		b.strokes++
	}
}

// Line draws a straight segment from the press position to the release
// position. Leaving the surface mid-drag cancels the segment.
type Line struct {
	Width float64
	Color Color
}

// NewLineTool returns a tool that draws straight lines.
func NewLineTool(name string, width float64, c Color) *Tool {
	return NewTool(name, &Line{Width: width, Color: c})
}

// Events implements EventDeclarer.
func (l *Line) Events() []EventBinding {
	return []EventBinding{
		{Kind: EventPointerDown, Handler: l.track},
		{Kind: EventPointerUp, Handler: l.release},
		{Kind: EventPointerLeave, Handler: l.track},
	}
}

// track draws nothing; declaring it lets the tool's pointer state record the
// press origin and cancel on leave.
func (l *Line) track(ToolContext) {}

func (l *Line) release(ctx ToolContext) {
	if !ctx.Prev.Down {
		return
	}
	ctx.Paint.SetColor(l.Color)
	ctx.Paint.SetLineWidth(l.Width)
	ctx.Paint.DrawLine(ctx.Prev.StartX, ctx.Prev.StartY, ctx.Event.X, ctx.Event.Y)
}
