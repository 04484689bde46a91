package tablist

import (
	"testing"

	"github.com/ruminaider/tabpick/internal/fuzzy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHost struct {
	focused   []int
	dismissed int
}

func (h *fakeHost) Focus(position int) { h.focused = append(h.focused, position) }
func (h *fakeHost) Dismiss()           { h.dismissed++ }

func names(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func threeItems() []Item {
	return []Item{
		{Name: "one", Position: 0},
		{Name: "two", Position: 1},
		{Name: "three", Position: 2},
	}
}

// --- Ordering ---

func TestSetItems_CurrentSortsLast(t *testing.T) {
	l := New()
	l.SetItems([]Item{
		{Name: "zeta", Position: 0},
		{Name: "alpha", Position: 1, IsCurrent: true},
	})
	assert.Equal(t, []string{"zeta", "alpha"}, names(l.Items()))
}

func TestSetItems_OthersByName(t *testing.T) {
	l := New()
	l.SetItems([]Item{
		{Name: "logs", Position: 3},
		{Name: "editor", Position: 0, IsCurrent: true},
		{Name: "build", Position: 2},
		{Name: "api", Position: 1},
	})
	assert.Equal(t, []string{"api", "build", "logs", "editor"}, names(l.Items()))
}

func TestSetItems_OrderIndependentOfInput(t *testing.T) {
	in := []Item{
		{Name: "b", Position: 1},
		{Name: "a", Position: 4},
		{Name: "a", Position: 2},
		{Name: "c", Position: 0, IsCurrent: true},
	}
	reversed := make([]Item, len(in))
	for i := range in {
		reversed[len(in)-1-i] = in[i]
	}

	l1, l2 := New(), New()
	l1.SetItems(in)
	l2.SetItems(reversed)
	assert.Equal(t, l1.Items(), l2.Items())
	assert.Equal(t, 2, l1.Items()[0].Position)
}

func TestSetItems_DoesNotMutateInput(t *testing.T) {
	in := []Item{{Name: "b"}, {Name: "a"}}
	New().SetItems(in)
	assert.Equal(t, "b", in[0].Name)
}

func TestSetItems_ClampsBrowseCursor(t *testing.T) {
	l := New()
	l.SetItems(threeItems())
	l.MoveSelectionUp() // last
	require.Equal(t, At(2), l.Cursor())

	l.SetItems(threeItems()[:1])
	assert.Equal(t, At(0), l.Cursor())

	l.SetItems(nil)
	assert.Equal(t, NoCursor, l.Cursor())
}

// --- Browsing navigation ---

func TestMoveDown_WrapsToNothingSelected(t *testing.T) {
	l := New()
	l.SetItems(threeItems())

	var seen []Cursor
	for i := 0; i < 4; i++ {
		l.MoveSelectionDown()
		seen = append(seen, l.Cursor())
	}
	assert.Equal(t, []Cursor{At(0), At(1), At(2), NoCursor}, seen)
}

func TestMoveUp_FromNothingLandsOnLast(t *testing.T) {
	l := New()
	l.SetItems(threeItems())
	l.MoveSelectionUp()
	assert.Equal(t, At(2), l.Cursor())
}

func TestMoveUp_FromFirstClears(t *testing.T) {
	l := New()
	l.SetItems(threeItems())
	l.MoveSelectionDown()
	l.MoveSelectionUp()
	assert.Equal(t, NoCursor, l.Cursor())
}

func TestMove_EmptyListIsNoop(t *testing.T) {
	l := New()
	l.MoveSelectionDown()
	assert.Equal(t, NoCursor, l.Cursor())
	l.MoveSelectionUp()
	assert.Equal(t, NoCursor, l.Cursor())
}

// --- Query editing ---

func TestPushPop_RoundTrip(t *testing.T) {
	l := New()
	l.SetItems(threeItems())
	require.False(t, l.IsSearching())

	for _, r := range "tw" {
		l.PushCharacter(r)
	}
	assert.True(t, l.IsSearching())
	assert.Equal(t, "tw", l.Query())

	l.PopCharacter()
	assert.Equal(t, "t", l.Query())
	l.PopCharacter()
	assert.Equal(t, "", l.Query())
	assert.False(t, l.IsSearching())
}

func TestPop_EmptyQueryIsNoop(t *testing.T) {
	l := New()
	l.SetItems(threeItems())
	l.MoveSelectionDown()
	l.PopCharacter()
	assert.False(t, l.IsSearching())
	assert.Equal(t, At(0), l.Cursor())
}

func TestPopToEmpty_ClearsSelection(t *testing.T) {
	l := New()
	l.SetItems(threeItems())
	l.MoveSelectionDown()
	l.PushCharacter('o')
	l.PopCharacter()
	assert.Equal(t, NoCursor, l.Cursor())
}

func TestPush_MultiByteRune(t *testing.T) {
	l := New()
	l.PushCharacter('é')
	l.PushCharacter('t')
	l.PopCharacter()
	assert.Equal(t, "é", l.Query())
}

func TestSearch_ResultsSortedByScore(t *testing.T) {
	l := New()
	l.SetItems([]Item{
		{Name: "zeta", Position: 0},
		{Name: "alpha", Position: 1, IsCurrent: true},
	})
	l.PushCharacter('a')

	res := l.Results()
	require.Len(t, res, 2)
	for i := 0; i+1 < len(res); i++ {
		assert.GreaterOrEqual(t, res[i].Score, res[i+1].Score)
	}
	assert.ElementsMatch(t, []string{"zeta", "alpha"}, []string{res[0].Item.Name, res[1].Item.Name})
}

func TestSearch_TiesKeepCanonicalOrder(t *testing.T) {
	flat := func(string, string) (fuzzy.Match, bool) { return fuzzy.Match{Score: 1}, true }
	l := New(WithScorer(flat))
	l.SetItems([]Item{{Name: "c"}, {Name: "a"}, {Name: "b"}})
	l.PushCharacter('x')
	var got []string
	for _, m := range l.Results() {
		got = append(got, m.Item.Name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestSearch_UsesScorerIndices(t *testing.T) {
	l := New()
	l.SetItems([]Item{{Name: "editor"}})
	l.PushCharacter('e')
	l.PushCharacter('d')
	require.Len(t, l.Results(), 1)
	assert.Equal(t, []int{0, 1}, l.Results()[0].Indices)
}

// --- Search cursor policy ---

func TestSearch_DefaultsCursorToFirstResult(t *testing.T) {
	l := New()
	l.SetItems(threeItems())
	l.PushCharacter('t')
	assert.Equal(t, At(0), l.Cursor())
}

func TestSearch_NoResultsClearsCursor(t *testing.T) {
	l := New()
	l.SetItems(threeItems())
	l.PushCharacter('q')
	assert.Empty(t, l.Results())
	assert.Equal(t, NoCursor, l.Cursor())
}

func TestSearch_CursorClampedWhenResultsShrink(t *testing.T) {
	scores := map[string]bool{}
	scorer := func(q, c string) (fuzzy.Match, bool) {
		if q == "x" {
			return fuzzy.Match{}, true
		}
		return fuzzy.Match{}, scores[c]
	}
	l := New(WithScorer(scorer))
	l.SetItems([]Item{{Name: "a"}, {Name: "b"}, {Name: "c"}})
	l.PushCharacter('x')
	l.MoveSelectionDown()
	l.MoveSelectionDown()
	require.Equal(t, At(2), l.Cursor())

	scores["a"] = true
	scores["b"] = true
	l.PushCharacter('y')
	assert.Len(t, l.Results(), 2)
	assert.Equal(t, At(1), l.Cursor())
}

func TestSearch_KeepsCursorInRange(t *testing.T) {
	l := New()
	l.SetItems([]Item{{Name: "ab"}, {Name: "abc"}, {Name: "abcd"}})
	l.PushCharacter('a')
	l.MoveSelectionDown()
	require.Equal(t, At(1), l.Cursor())
	l.PushCharacter('b')
	assert.Equal(t, At(1), l.Cursor())
}

func TestSearch_MoveFromNothingLandsOnFirst(t *testing.T) {
	for name, move := range map[string]func(*List){
		"up":   (*List).MoveSelectionUp,
		"down": (*List).MoveSelectionDown,
	} {
		t.Run(name, func(t *testing.T) {
			l := New()
			l.SetItems(threeItems())
			l.PushCharacter('o')
			require.NotEmpty(t, l.Results())
			// Walk off the end to clear the cursor.
			for l.Cursor().Valid() {
				l.MoveSelectionDown()
			}
			move(l)
			assert.Equal(t, At(0), l.Cursor())
		})
	}
}

func TestSearch_DownPastEndClears(t *testing.T) {
	l := New()
	l.SetItems(threeItems())
	l.PushCharacter('t') // two, three
	require.Len(t, l.Results(), 2)
	l.MoveSelectionDown()
	assert.Equal(t, At(1), l.Cursor())
	l.MoveSelectionDown()
	assert.Equal(t, NoCursor, l.Cursor())
}

func TestSearch_UpFromFirstClears(t *testing.T) {
	l := New()
	l.SetItems(threeItems())
	l.PushCharacter('t')
	l.MoveSelectionUp()
	assert.Equal(t, NoCursor, l.Cursor())
}

// --- Host update path ---

func TestUpdate_RescoresWhileSearching(t *testing.T) {
	l := New()
	l.SetItems([]Item{{Name: "api"}})
	l.PushCharacter('l')
	assert.Empty(t, l.Results())

	l.Update([]Item{{Name: "api"}, {Name: "logs", Position: 4}})
	require.Len(t, l.Results(), 1)
	assert.Equal(t, 4, l.Results()[0].Item.Position)
	assert.Equal(t, At(0), l.Cursor())
}

func TestSetItems_DoesNotRescore(t *testing.T) {
	l := New()
	l.SetItems([]Item{{Name: "api"}})
	l.PushCharacter('l')
	l.SetItems([]Item{{Name: "logs"}})
	assert.Empty(t, l.Results())
}

// --- Commit / dismiss ---

func TestCommit_BrowsingFocusesPosition(t *testing.T) {
	l := New()
	l.SetItems([]Item{
		{Name: "zeta", Position: 7},
		{Name: "alpha", Position: 3, IsCurrent: true},
	})
	l.MoveSelectionUp() // alpha, sorted last

	h := &fakeHost{}
	assert.True(t, l.CommitSelection(h))
	assert.Equal(t, []int{3}, h.focused)
	assert.Equal(t, 1, h.dismissed)
}

func TestCommit_SearchingFocusesResult(t *testing.T) {
	l := New()
	l.SetItems([]Item{{Name: "api", Position: 1}, {Name: "logs", Position: 2}})
	l.PushCharacter('g')

	h := &fakeHost{}
	require.True(t, l.CommitSelection(h))
	assert.Equal(t, []int{2}, h.focused)
}

func TestCommit_NoSelectionIsNoop(t *testing.T) {
	l := New()
	l.SetItems(threeItems())
	h := &fakeHost{}
	assert.False(t, l.CommitSelection(h))
	assert.Empty(t, h.focused)
	assert.Zero(t, h.dismissed)
}

func TestDismiss(t *testing.T) {
	l := New()
	l.SetItems(threeItems())
	l.MoveSelectionDown()
	h := &fakeHost{}
	l.Dismiss(h)
	assert.Equal(t, 1, h.dismissed)
	assert.Empty(t, h.focused)
	assert.Equal(t, At(0), l.Cursor())
}
