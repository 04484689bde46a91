package render

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

// Role names what a piece of text means; emitters map roles to styles.
type Role int

const (
	RolePlain  Role = iota
	RoleMatch       // characters consumed by the query
	RoleArrows      // selection marker
	RoleMore        // hidden-items indicator
	RoleHint        // action hint on the selected line
	RolePrompt      // search prompt label
	RoleCurrent     // name of the tab the host has focused now
)

// Segment is a run of text sharing one role.
type Segment struct {
	Text string
	Role Role
}

// Span is one piece of a line. The set of spans is closed: Plain,
// Highlighted and Fixed.
type Span interface {
	// render returns the segments that fit in remaining columns and how
	// many columns they use.
	render(remaining int) ([]Segment, int)
}

// Plain is text drawn in a single role, truncated to the column budget.
type Plain struct {
	Text string
	Role Role
}

// Highlighted is text whose runes at Indices are drawn as matches. The
// other runes use Role.
type Highlighted struct {
	Text    string
	Indices []int
	Role    Role
}

// Fixed is drawn whole or not at all, for markers that make no sense when
// cut.
type Fixed struct {
	Text string
	Role Role
}

func (s Plain) render(remaining int) ([]Segment, int) {
	text, used := truncate(s.Text, remaining)
	if text == "" {
		return nil, 0
	}
	return []Segment{{Text: text, Role: s.Role}}, used
}

func (s Highlighted) render(remaining int) ([]Segment, int) {
	text, used := truncate(s.Text, remaining)
	if text == "" {
		return nil, 0
	}
	hit := make(map[int]bool, len(s.Indices))
	for _, i := range s.Indices {
		hit[i] = true
	}
	var segs []Segment
	i := 0
	for _, r := range text {
		role := s.Role
		if hit[i] {
			role = RoleMatch
		}
		segs = appendRune(segs, r, role)
		i++
	}
	return segs, used
}

func (s Fixed) render(remaining int) ([]Segment, int) {
	w := runewidth.StringWidth(s.Text)
	if w > remaining || s.Text == "" {
		return nil, 0
	}
	return []Segment{{Text: s.Text, Role: s.Role}}, w
}

// truncate keeps the longest prefix of s whose display width fits in
// budget. Control characters are drawn as spaces so they cannot move the
// terminal cursor.
func truncate(s string, budget int) (string, int) {
	if budget <= 0 {
		return "", 0
	}
	out := make([]rune, 0, len(s))
	used := 0
	for _, r := range s {
		if unicode.IsControl(r) {
			r = ' '
		}
		w := runewidth.RuneWidth(r)
		if used+w > budget {
			break
		}
		out = append(out, r)
		used += w
	}
	return string(out), used
}

func appendRune(segs []Segment, r rune, role Role) []Segment {
	if n := len(segs); n > 0 && segs[n-1].Role == role {
		segs[n-1].Text += string(r)
		return segs
	}
	return append(segs, Segment{Text: string(r), Role: role})
}
