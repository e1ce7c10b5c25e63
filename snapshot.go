package easel

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fogleman/gg"
	"go.uber.org/zap"
)

// Composite returns the surface as it is displayed: its background color
// with the painted pixels over it. The result is a new image.
func (s *Surface) Composite() *image.RGBA {
	dc := gg.NewContext(s.width, s.height)
	dc.SetColor(s.bgColor)
	dc.Clear()
	if s.paint != nil {
		dc.DrawImage(s.paint.Image(), 0, 0)
	}
	return dc.Image().(*image.RGBA)
}

// Flatten composites every visible surface, bottom to top, at its stack
// position into a new image the size of the stack bounds. Areas no surface
// covers are transparent.
func (st *SurfaceStack) Flatten() *image.RGBA {
	dc := gg.NewContext(st.width, st.height)
	for _, s := range st.layers {
		if !s.visible {
			continue
		}
		x := int(math.Round(s.x))
		y := int(math.Round(s.y))
		dc.DrawImage(s.Composite(), x, y)
	}
	return dc.Image().(*image.RGBA)
}

// Snapshot flattens the stack and writes it as a PNG to SnapshotDir with a
// timestamped filename. Returns the path written.
func (s *Session) Snapshot(label string) (string, error) {
	dir := s.SnapshotDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("snapshot: mkdir %s: %w", dir, err)
	}
	stamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
	if err := writePNG(path, toNRGBA(s.stack.Flatten())); err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}
	s.log.Debug("snapshot written", zap.String("path", path))
	return path, nil
}

// toNRGBA converts premultiplied RGBA to straight-alpha NRGBA for encoding.
func toNRGBA(src *image.RGBA) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		so := src.PixOffset(b.Min.X, b.Min.Y+y)
		do := img.PixOffset(0, y)
		for x := 0; x < w*4; x += 4 {
			r, g, bl, a := src.Pix[so+x], src.Pix[so+x+1], src.Pix[so+x+2], src.Pix[so+x+3]
			if a > 0 && a < 255 {
				r = uint8(min(int(r)*255/int(a), 255))
				g = uint8(min(int(g)*255/int(a), 255))
				bl = uint8(min(int(bl)*255/int(a), 255))
			}
			img.Pix[do+x] = r
			img.Pix[do+x+1] = g
			img.Pix[do+x+2] = bl
			img.Pix[do+x+3] = a
		}
	}
	return img
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
