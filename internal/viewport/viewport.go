// Package viewport decides which slice of a list fits on screen.
package viewport

// Window is a contiguous range [Start, End) of a list centred on Anchor.
type Window struct {
	Start  int
	Anchor int
	End    int
	// Unresolved is the part of the deficit this window could not absorb.
	// It is non-zero only when even a single line overflows the budget.
	Unresolved int
	Total      int
}

// Compute elides deficit lines from a list of total entries, keeping the
// anchor visible. A negative anchor means nothing is selected and the window
// is anchored on the first entry.
//
// When deficit exceeds total the window collapses to the anchor alone and
// the excess (deficit - total + 1) is reported in Unresolved so callers that
// stack several windows can keep subtracting from their budget.
func Compute(total, deficit, anchor int) Window {
	if total < 0 {
		total = 0
	}
	if deficit < 0 {
		deficit = 0
	}
	shown, unresolved := total-deficit, 0
	if deficit > total {
		shown, unresolved = 1, deficit-total+1
	}
	if anchor < 0 {
		anchor = 0
	}

	start := anchor - shown/2
	if start < 0 {
		start = 0
	}
	end := start + shown
	if end > total {
		start -= end - total
		if start < 0 {
			start = 0
		}
		end = total
	}
	return Window{
		Start:      start,
		Anchor:     anchor,
		End:        end,
		Unresolved: unresolved,
		Total:      total,
	}
}

// Shown is the number of entries inside the window.
func (w Window) Shown() int { return w.End - w.Start }

// HiddenAbove is the number of entries elided before the window.
func (w Window) HiddenAbove() int { return w.Start }

// HiddenBelow is the number of entries elided after the window.
func (w Window) HiddenBelow() int {
	if w.Total < w.End {
		return 0
	}
	return w.Total - w.End
}

// Contains reports whether index i is drawn.
func (w Window) Contains(i int) bool { return i >= w.Start && i < w.End }
