package easel

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// selectionFadeSeconds is how long a tool icon takes to fade between its
// selected and unselected styling.
const selectionFadeSeconds = 0.15

// highlight animates a tool's selection styling between 0 (unselected) and
// 1 (selected). There is no global animation manager; the palette advances
// every tool's highlight from its Update.
type highlight struct {
	tween *gween.Tween
	value float64
	done  bool
}

// retarget starts a fade from the current value toward target.
func (h *highlight) retarget(target float64) {
	h.tween = gween.New(float32(h.value), float32(target), selectionFadeSeconds, ease.OutQuad)
	h.done = false
}

// update advances the fade by dt seconds.
func (h *highlight) update(dt float32) {
	if h.done || h.tween == nil {
		return
	}
	val, finished := h.tween.Update(dt)
	h.value = float64(val)
	if finished {
		h.done = true
		h.tween = nil
	}
}
