package render

import (
	"fmt"
	"math"
	"strings"
)

const (
	// BrowseArrows marks the selected line while browsing.
	BrowseArrows = "<←↓↑→>"
	// SearchArrows marks the selected line while searching.
	SearchArrows = " <↓↑> "
	// FocusHint replaces the hidden-items indicator on the selected line.
	FocusHint = "<ENTER> focus"

	blankMarker = "      "
)

// Line is one rendered row: a marker, the item's spans and an optional
// suffix (hidden-items indicator or action hint).
type Line struct {
	Marker   []Segment
	Body     []Segment
	Suffix   []Segment
	Selected bool
	// Width is the number of columns the segments use; Cols is the budget
	// the line was built for.
	Width int
	Cols  int
}

// Text returns the line without styling.
func (l Line) Text() string {
	var b strings.Builder
	for _, part := range [][]Segment{l.Marker, l.Body, l.Suffix} {
		for _, s := range part {
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

type lineOpts struct {
	selected bool
	arrows   string
	above    int // hidden items before the window, drawn on the top line
	below    int // hidden items after the window, drawn on the bottom line
}

// minBodyCols is how much of the name a suffix may never squeeze out.
const minBodyCols = 12

// buildLine lays out spans in cols columns, left to right: the marker, then
// the body spans, then the suffix if it still fits. The suffix is reserved
// ahead of the body only while the body keeps at least minBodyCols (or its
// whole width, if shorter).
func buildLine(body []Span, cols int, o lineOpts) Line {
	ln := Line{Selected: o.selected, Cols: cols}
	remaining := cols

	marker := Fixed{Text: blankMarker, Role: RolePlain}
	if o.selected {
		marker = Fixed{Text: o.arrows, Role: RoleArrows}
	}
	ln.Marker, remaining = place(ln.Marker, marker, remaining)

	var suffix []Span
	if o.selected {
		suffix = append(suffix, Fixed{Text: " " + FocusHint, Role: RoleHint})
	} else {
		if o.above > 0 {
			suffix = append(suffix, Fixed{Text: fmt.Sprintf(" [↑ +%d more]", o.above), Role: RoleMore})
		}
		if o.below > 0 {
			suffix = append(suffix, Fixed{Text: fmt.Sprintf(" [↓ +%d more]", o.below), Role: RoleMore})
		}
	}

	budget := remaining - naturalWidth(suffix)
	if floor := min(naturalWidth(body), minBodyCols); budget < floor {
		budget = floor
	}
	if budget > remaining {
		budget = remaining
	}
	used := 0
	for _, s := range body {
		var n int
		ln.Body, n = placeUsed(ln.Body, s, budget-used)
		used += n
	}
	remaining -= used

	for _, s := range suffix {
		ln.Suffix, remaining = place(ln.Suffix, s, remaining)
	}

	ln.Width = cols - remaining
	return ln
}

// naturalWidth is the width spans take with no column limit.
func naturalWidth(spans []Span) int {
	w := 0
	for _, s := range spans {
		_, n := s.render(math.MaxInt)
		w += n
	}
	return w
}

func placeUsed(dst []Segment, s Span, remaining int) ([]Segment, int) {
	segs, used := s.render(remaining)
	return append(dst, segs...), used
}

func place(dst []Segment, s Span, remaining int) ([]Segment, int) {
	segs, used := s.render(remaining)
	return append(dst, segs...), remaining - used
}
