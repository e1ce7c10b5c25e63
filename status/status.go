// Package status renders a one-line terminal summary of an easel session:
// the active layer and the current tool. The line is rebuilt whenever
// either changes.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/phanxgames/easel"
)

var (
	labelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F2C14E"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E0E0"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7A7A7A"))
	sectionSep  = mutedStyle.Render(" | ")
	noneMessage = mutedStyle.Render("none")
)

// Bar observes a session's stack and palette and keeps a rendered status
// line. OnUpdate, if set, receives every new line.
type Bar struct {
	stack   *easel.SurfaceStack
	palette *easel.ToolPalette
	handles [2]easel.ChangeHandle
	line    string

	OnUpdate func(line string)
}

// New creates a bar observing s and renders the initial line.
func New(s *easel.Session) *Bar {
	b := &Bar{stack: s.Stack(), palette: s.Palette()}
	b.handles[0] = b.stack.OnChange(func(_, _ *easel.Surface) { b.refresh() })
	b.handles[1] = b.palette.OnChange(func(_, _ *easel.Tool) { b.refresh() })
	b.line = b.render()
	return b
}

// String returns the current status line.
func (b *Bar) String() string { return b.line }

// Close stops observing the session.
func (b *Bar) Close() {
	for _, h := range b.handles {
		h.Remove()
	}
}

func (b *Bar) refresh() {
	b.line = b.render()
	if b.OnUpdate != nil {
		b.OnUpdate(b.line)
	}
}

func (b *Bar) render() string {
	var sb strings.Builder

	sb.WriteString(labelStyle.Render("layer "))
	if a := b.stack.Active(); a != nil {
		sb.WriteString(valueStyle.Render(fmt.Sprintf("%d/%d %s", b.stack.ActiveIndex()+1, b.stack.Len(), a.Name)))
	} else {
		sb.WriteString(noneMessage)
	}
	sb.WriteString(sectionSep)

	sb.WriteString(labelStyle.Render("tool "))
	if t := b.palette.Current(); t != nil {
		sb.WriteString(valueStyle.Render(t.Name()))
	} else {
		sb.WriteString(noneMessage)
	}
	if l := b.palette.Last(); l != nil {
		sb.WriteString(mutedStyle.Render(" (was " + l.Name() + ")"))
	}
	return sb.String()
}
