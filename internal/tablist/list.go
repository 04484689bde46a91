// Package tablist holds the picker's state: the canonical item list, the
// results of the current query and the selection cursor.
//
// The list is always in exactly one of two modes. Browsing carries a cursor
// into the canonical items. Searching carries the query, the scored results
// and a cursor into those results. The mode is derived from the query: an
// empty query means browsing.
package tablist

import (
	"github.com/ruminaider/tabpick/internal/fuzzy"
)

// Scorer matches a non-empty query against one candidate name.
type Scorer func(query, candidate string) (fuzzy.Match, bool)

// Host receives the commands the list issues on commit and dismiss.
type Host interface {
	Focus(position int)
	Dismiss()
}

type mode interface{ isMode() }

type browsing struct {
	cursor Cursor
}

type searching struct {
	query   []rune
	cursor  Cursor
	results []Match
}

func (browsing) isMode()  {}
func (searching) isMode() {}

// List is the picker model. The zero value is not usable; call New.
type List struct {
	items []Item
	mode  mode
	score Scorer
}

// Option configures a List.
type Option func(*List)

// WithScorer replaces the default fuzzy scorer.
func WithScorer(s Scorer) Option {
	return func(l *List) { l.score = s }
}

// New creates an empty list in browsing mode.
func New(opts ...Option) *List {
	l := &List{
		mode:  browsing{cursor: NoCursor},
		score: fuzzy.Score,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// SetItems replaces the canonical list with a host snapshot. It does not
// re-score; a browse cursor left past the end is clamped.
func (l *List) SetItems(items []Item) {
	l.items = sortItems(items)
	if b, ok := l.mode.(browsing); ok && b.cursor.Valid() {
		l.mode = browsing{cursor: b.cursor.clamp(len(l.items))}
	}
}

// Update is the host-update path: it replaces the items and, when a query is
// active, re-scores them.
func (l *List) Update(items []Item) {
	l.SetItems(items)
	if s, ok := l.mode.(searching); ok {
		l.mode = l.rescore(s.query, s.cursor)
	}
}

// Items returns the canonical, sorted item list.
func (l *List) Items() []Item { return l.items }

// Query returns the current query string.
func (l *List) Query() string {
	if s, ok := l.mode.(searching); ok {
		return string(s.query)
	}
	return ""
}

// IsSearching reports whether a query is active.
func (l *List) IsSearching() bool {
	_, ok := l.mode.(searching)
	return ok
}

// Results returns the matches for the current query, best first. It is empty
// while browsing.
func (l *List) Results() []Match {
	if s, ok := l.mode.(searching); ok {
		return s.results
	}
	return nil
}

// Cursor returns the live cursor: into Items while browsing, into Results
// while searching.
func (l *List) Cursor() Cursor {
	switch m := l.mode.(type) {
	case searching:
		return m.cursor
	case browsing:
		return m.cursor
	}
	return NoCursor
}

// Selected resolves the live cursor to an item.
func (l *List) Selected() (Item, bool) {
	switch m := l.mode.(type) {
	case searching:
		if i, ok := m.cursor.Index(); ok && i < len(m.results) {
			return m.results[i].Item, true
		}
	case browsing:
		if i, ok := m.cursor.Index(); ok && i < len(l.items) {
			return l.items[i], true
		}
	}
	return Item{}, false
}

// PushCharacter appends r to the query and re-scores every item.
func (l *List) PushCharacter(r rune) {
	var query []rune
	prev := NoCursor
	if s, ok := l.mode.(searching); ok {
		query = append(query, s.query...)
		prev = s.cursor
	}
	l.mode = l.rescore(append(query, r), prev)
}

// PopCharacter removes the last query character. Removing the last one
// returns the list to browsing with nothing selected.
func (l *List) PopCharacter() {
	s, ok := l.mode.(searching)
	if !ok {
		return
	}
	if len(s.query) <= 1 {
		l.mode = browsing{cursor: NoCursor}
		return
	}
	query := append([]rune(nil), s.query[:len(s.query)-1]...)
	l.mode = l.rescore(query, s.cursor)
}

// MoveSelectionDown advances the live cursor. Moving past the last entry
// clears the selection.
func (l *List) MoveSelectionDown() {
	switch m := l.mode.(type) {
	case browsing:
		l.mode = browsing{cursor: m.cursor.down(len(l.items))}
	case searching:
		m.cursor = m.cursor.down(len(m.results))
		l.mode = m
	}
}

// MoveSelectionUp moves the live cursor back. While browsing with nothing
// selected it lands on the last item; while searching it lands on the best
// result.
func (l *List) MoveSelectionUp() {
	switch m := l.mode.(type) {
	case browsing:
		l.mode = browsing{cursor: m.cursor.up(len(l.items))}
	case searching:
		if !m.cursor.Valid() {
			m.cursor = m.cursor.down(len(m.results))
		} else {
			m.cursor = m.cursor.up(len(m.results))
		}
		l.mode = m
	}
}

// CommitSelection asks the host to focus the selected item and then to hide
// the picker. It does nothing when nothing is selected.
func (l *List) CommitSelection(h Host) bool {
	it, ok := l.Selected()
	if !ok {
		return false
	}
	h.Focus(it.Position)
	h.Dismiss()
	return true
}

// Dismiss asks the host to hide the picker.
func (l *List) Dismiss(h Host) {
	h.Dismiss()
}

func (l *List) rescore(query []rune, prev Cursor) searching {
	q := string(query)
	results := make([]Match, 0, len(l.items))
	for _, it := range l.items {
		m, ok := l.score(q, it.Name)
		if !ok {
			continue
		}
		results = append(results, Match{Score: m.Score, Indices: m.Indices, Item: it})
	}
	sortMatches(results)

	cursor := prev.clamp(len(results))
	if !cursor.Valid() && len(results) > 0 {
		cursor = At(0)
	}
	return searching{query: query, cursor: cursor, results: results}
}
