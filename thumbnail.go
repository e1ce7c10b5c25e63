package easel

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Thumbnail returns the surface's composite scaled to fit within maxW x maxH,
// keeping its aspect ratio. Surfaces that already fit are not enlarged.
// Returns nil for non-positive bounds or a disposed surface.
func (s *Surface) Thumbnail(maxW, maxH int) *image.RGBA {
	if maxW <= 0 || maxH <= 0 || s.disposed {
		return nil
	}
	w, h := thumbnailSize(s.width, s.height, maxW, maxH)
	src := s.Composite()
	if w == s.width && h == s.height {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// thumbnailSize fits w x h inside maxW x maxH. Neither side drops below 1.
func thumbnailSize(w, h, maxW, maxH int) (int, int) {
	if w <= maxW && h <= maxH {
		return w, h
	}
	sx := float64(maxW) / float64(w)
	sy := float64(maxH) / float64(h)
	scale := min(sx, sy)
	tw := max(int(float64(w)*scale), 1)
	th := max(int(float64(h)*scale), 1)
	return tw, th
}
