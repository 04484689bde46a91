package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ANSI emits frames as styled lines, one per row.
type ANSI struct {
	palette  Palette
	renderer *lipgloss.Renderer
}

// NewANSI returns an emitter that resolves roles through p and encodes
// colors for profile.
func NewANSI(p Palette, profile termenv.Profile) *ANSI {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)
	return &ANSI{palette: p, renderer: r}
}

// SetPalette replaces the cached palette.
func (e *ANSI) SetPalette(p Palette) { e.palette = p }

// Palette returns the cached palette.
func (e *ANSI) Palette() Palette { return e.palette }

// Emit renders every line of f.
func (e *ANSI) Emit(f Frame) string {
	out := make([]string, len(f.Lines))
	for i, ln := range f.Lines {
		out[i] = e.Line(ln)
	}
	return strings.Join(out, "\n")
}

// Line renders one line. A selected line is filled with the background
// color across its full width.
func (e *ANSI) Line(ln Line) string {
	var b strings.Builder
	b.WriteString(e.Segments(ln.Marker, ln.Selected))
	b.WriteString(e.Segments(ln.Body, ln.Selected))
	b.WriteString(e.Segments(ln.Suffix, ln.Selected))
	if ln.Selected && ln.Width < ln.Cols {
		b.WriteString(e.style(RolePlain, true).Render(strings.Repeat(" ", ln.Cols-ln.Width)))
	}
	return b.String()
}

// Segments renders a run of segments.
func (e *ANSI) Segments(segs []Segment, selected bool) string {
	var b strings.Builder
	for _, s := range segs {
		if s.Role == RolePlain && !selected {
			b.WriteString(s.Text)
			continue
		}
		b.WriteString(e.style(s.Role, selected).Render(s.Text))
	}
	return b.String()
}

// Style returns the style for role.
func (e *ANSI) Style(role Role) lipgloss.Style {
	return e.style(role, false)
}

func (e *ANSI) style(role Role, selected bool) lipgloss.Style {
	s := e.renderer.NewStyle()
	switch role {
	case RoleMatch, RoleArrows:
		s = s.Foreground(e.palette.Magenta.lipgloss()).Bold(true)
	case RoleMore:
		s = s.Foreground(e.palette.Red.lipgloss()).Bold(true)
	case RoleHint:
		s = s.Foreground(e.palette.Cyan.lipgloss())
	case RolePrompt:
		s = s.Foreground(e.palette.Green.lipgloss()).Bold(true)
	case RoleCurrent:
		s = s.Foreground(e.palette.Orange.lipgloss())
	}
	if selected {
		s = s.Background(e.palette.Background.lipgloss())
	}
	return s
}
