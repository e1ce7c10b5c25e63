package easel

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefreshSeconds is how often the overlay text is redrawn.
const fpsRefreshSeconds = 0.5

// fpsOverlay draws the current FPS and TPS in the bottom-right corner of the
// canvas. Its image is redrawn every fpsRefreshSeconds.
type fpsOverlay struct {
	img   *ebiten.Image
	since float64
}

func (o *fpsOverlay) update(dt float64) {
	if o.img == nil {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		o.img = ebiten.NewImage(100, 32)
		o.since = fpsRefreshSeconds
	}
	o.since += dt
	if o.since < fpsRefreshSeconds {
		return
	}
	o.since = 0
	o.img.Clear()
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	if o.img == nil {
		return
	}
	b := screen.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(b.Dx()-o.img.Bounds().Dx()), float64(b.Dy()-o.img.Bounds().Dy()))
	screen.DrawImage(o.img, op)
}
