package tablist

import "sort"

// Item is one selectable entry reported by the host.
type Item struct {
	Name      string
	Position  int  // stable handle used to focus the item in the host
	IsCurrent bool // the entry presently active in the host
}

// Match is an item that survived the current query.
type Match struct {
	Score   int64
	Indices []int // rune offsets into Item.Name that the query consumed
	Item    Item
}

// sortItems orders items so that current items sort last and everything else
// sorts by name. Position breaks ties so the result does not depend on the
// order the host reported them in.
func sortItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.IsCurrent != b.IsCurrent {
			return !a.IsCurrent
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.Position < b.Position
	})
	return out
}

// sortMatches orders matches by score, best first. Ties keep their order.
func sortMatches(matches []Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
}
