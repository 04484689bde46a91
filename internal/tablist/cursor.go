package tablist

// Cursor is an optional index into a list. NoCursor means nothing is
// selected.
type Cursor int

// NoCursor is the empty selection.
const NoCursor Cursor = -1

// At returns a cursor pointing at i.
func At(i int) Cursor {
	if i < 0 {
		return NoCursor
	}
	return Cursor(i)
}

// Index returns the selected index and whether there is one.
func (c Cursor) Index() (int, bool) {
	if c < 0 {
		return 0, false
	}
	return int(c), true
}

// Valid reports whether the cursor selects something.
func (c Cursor) Valid() bool { return c >= 0 }

// clamp keeps c inside a list of length n.
func (c Cursor) clamp(n int) Cursor {
	if n == 0 {
		return NoCursor
	}
	if int(c) >= n {
		return At(n - 1)
	}
	return c
}

// down moves one step towards the end of a list of length n. Stepping past
// the last entry clears the selection.
func (c Cursor) down(n int) Cursor {
	if n == 0 {
		return NoCursor
	}
	if !c.Valid() {
		return At(0)
	}
	if int(c)+1 < n {
		return c + 1
	}
	return NoCursor
}

// up moves one step towards the start. Stepping before the first entry
// clears the selection; from no selection it lands on the last entry.
func (c Cursor) up(n int) Cursor {
	if n == 0 {
		return NoCursor
	}
	if !c.Valid() {
		return At(n - 1)
	}
	if c > 0 {
		return c - 1
	}
	return NoCursor
}
