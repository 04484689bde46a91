package render

import (
	"github.com/ruminaider/tabpick/internal/tablist"
	"github.com/ruminaider/tabpick/internal/viewport"
)

// Frame is everything the picker draws for one render.
type Frame struct {
	Lines     []Line
	Window    viewport.Window
	Searching bool
	Cols      int
}

// Build reads the list and lays out at most rows lines of cols columns.
// While browsing it draws the canonical items; while searching it draws the
// results with the matched characters highlighted. Build has no side
// effects on l.
func Build(l *tablist.List, rows, cols int) Frame {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}

	var entries [][]Span
	arrows := BrowseArrows
	if l.IsSearching() {
		arrows = SearchArrows
		for _, m := range l.Results() {
			entries = append(entries, []Span{Highlighted{Text: m.Item.Name, Indices: m.Indices, Role: nameRole(m.Item)}})
		}
	} else {
		for _, it := range l.Items() {
			entries = append(entries, []Span{Plain{Text: it.Name, Role: nameRole(it)}})
		}
	}

	total := len(entries)
	deficit := total - rows
	if deficit < 0 {
		deficit = 0
	}
	selected, hasSelection := l.Cursor().Index()
	anchor := -1
	if hasSelection {
		anchor = selected
	}
	w := viewport.Compute(total, deficit, anchor)

	f := Frame{Window: w, Searching: l.IsSearching(), Cols: cols}
	for i := w.Start; i < w.End; i++ {
		o := lineOpts{
			selected: hasSelection && i == selected,
			arrows:   arrows,
		}
		if i == w.Start {
			o.above = w.HiddenAbove()
		}
		if i == w.End-1 {
			o.below = w.HiddenBelow()
		}
		f.Lines = append(f.Lines, buildLine(entries[i], cols, o))
	}
	return f
}

func nameRole(it tablist.Item) Role {
	if it.IsCurrent {
		return RoleCurrent
	}
	return RolePlain
}

// Emitter turns a frame into terminal output.
type Emitter interface {
	Emit(f Frame) string
}
