package easel

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
)

// PaintContext is the drawing-command interface of a Surface. It owns the
// surface's pixel buffer and draws into it through a gg context. A
// PaintContext is created once with its Surface and released when the
// Surface is disposed.
type PaintContext struct {
	dc  *gg.Context
	img *image.RGBA
	rev uint64
}

func newPaintContext(w, h int) *PaintContext {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	dc := gg.NewContextForRGBA(img)
	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	dc.SetColor(ColorBlack)
	dc.SetLineWidth(1)
	return &PaintContext{dc: dc, img: img}
}

// Width returns the buffer width in pixels.
func (p *PaintContext) Width() int {
	return p.img.Bounds().Dx()
}

// Height returns the buffer height in pixels.
func (p *PaintContext) Height() int {
	return p.img.Bounds().Dy()
}

// Image returns the pixel buffer. The returned image MUST NOT be retained past
// the owning Surface's lifetime.
func (p *PaintContext) Image() *image.RGBA {
	return p.img
}

// Context returns the underlying gg context for drawing commands not covered
// here. Call MarkDirty after drawing through it directly.
func (p *PaintContext) Context() *gg.Context {
	return p.dc
}

// Revision increases every time the buffer changes. Renderers compare it to
// skip re-uploading unchanged layers.
func (p *PaintContext) Revision() uint64 {
	return p.rev
}

// MarkDirty bumps the revision.
func (p *PaintContext) MarkDirty() {
	p.rev++
}

// SetColor sets the color used by subsequent strokes and fills.
func (p *PaintContext) SetColor(c color.Color) {
	p.dc.SetColor(c)
}

// SetLineWidth sets the stroke width in pixels.
func (p *PaintContext) SetLineWidth(w float64) {
	p.dc.SetLineWidth(w)
}

// DrawLine strokes a segment from (x1, y1) to (x2, y2).
func (p *PaintContext) DrawLine(x1, y1, x2, y2 float64) {
	p.dc.DrawLine(x1, y1, x2, y2)
	p.dc.Stroke()
	p.rev++
}

// FillCircle fills a circle of radius r centered at (x, y).
func (p *PaintContext) FillCircle(x, y, r float64) {
	p.dc.DrawCircle(x, y, r)
	p.dc.Fill()
	p.rev++
}

// DrawImage composites src over the buffer with its top-left corner at (x, y).
func (p *PaintContext) DrawImage(src image.Image, x, y int) {
	p.dc.DrawImage(src, x, y)
	p.rev++
}

// Fill replaces every pixel with c.
func (p *PaintContext) Fill(c color.Color) {
	draw.Draw(p.img, p.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	p.rev++
}

// Clear makes every pixel fully transparent.
func (p *PaintContext) Clear() {
	clear(p.img.Pix)
	p.rev++
}

// Pixel returns the premultiplied pixel at (x, y).
func (p *PaintContext) Pixel(x, y int) color.RGBA {
	return p.img.RGBAAt(x, y)
}

func (p *PaintContext) release() {
	p.dc = nil
	p.img = nil
}
