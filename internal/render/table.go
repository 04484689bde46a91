package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

// TableColumns is the fixed number of cells in every row: marker, name and
// suffix.
const TableColumns = 3

// Table emits frames as rows of fixed-width cells. Every row of a frame is
// exactly as wide as the frame's column budget, so the suffix column stays
// aligned.
type Table struct {
	ansi *ANSI
}

// NewTable returns a table emitter sharing the styling rules of NewANSI.
func NewTable(p Palette, profile termenv.Profile) *Table {
	return &Table{ansi: NewANSI(p, profile)}
}

// SetPalette replaces the cached palette.
func (t *Table) SetPalette(p Palette) { t.ansi.SetPalette(p) }

// Widths returns the column widths used for f. The name column takes what
// the marker and suffix columns leave of f.Cols.
func (t *Table) Widths(f Frame) [TableColumns]int {
	var w [TableColumns]int
	for _, ln := range f.Lines {
		w[0] = max(w[0], segmentsWidth(ln.Marker))
		w[2] = max(w[2], segmentsWidth(ln.Suffix))
	}
	w[1] = max(0, f.Cols-w[0]-w[2])
	return w
}

// Rows returns the styled, padded cells of every line.
func (t *Table) Rows(f Frame) [][]string {
	w := t.Widths(f)
	rows := make([][]string, len(f.Lines))
	for i, ln := range f.Lines {
		rows[i] = []string{
			t.cell(ln.Marker, w[0], ln.Selected),
			t.cell(ln.Body, w[1], ln.Selected),
			t.cell(ln.Suffix, w[2], ln.Selected),
		}
	}
	return rows
}

// Emit renders f as one table row per line.
func (t *Table) Emit(f Frame) string {
	if len(f.Lines) == 0 {
		return ""
	}
	rows := t.Rows(f)
	out := make([]string, len(rows))
	for i, cells := range rows {
		out[i] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, out...)
}

// cell cuts segs to width and pads the rest. Padding on a selected row
// carries the background so the row is filled end to end.
func (t *Table) cell(segs []Segment, width int, selected bool) string {
	fitted, used := fitSegments(segs, width)
	s := t.ansi.Segments(fitted, selected)
	if pad := width - used; pad > 0 {
		fill := strings.Repeat(" ", pad)
		if selected {
			fill = t.ansi.style(RolePlain, true).Render(fill)
		}
		s += fill
	}
	return s
}

func segmentsWidth(segs []Segment) int {
	w := 0
	for _, s := range segs {
		w += runewidth.StringWidth(s.Text)
	}
	return w
}

// fitSegments keeps the prefix of segs that fits in width columns.
func fitSegments(segs []Segment, width int) ([]Segment, int) {
	var out []Segment
	used := 0
	for _, s := range segs {
		text, n := truncate(s.Text, width-used)
		if text == "" {
			break
		}
		out = append(out, Segment{Text: text, Role: s.Role})
		used += n
		if text != s.Text {
			break
		}
	}
	return out, used
}
