package tui

import (
	"github.com/ruminaider/tabpick/internal/render"
	"github.com/ruminaider/tabpick/internal/tablist"
)

// ItemsMsg carries a fresh snapshot of the host's tabs, or the error that
// prevented reading one.
type ItemsMsg struct {
	Items []tablist.Item
	Err   error
}

// PaletteMsg replaces the cached palette.
type PaletteMsg struct{ Palette render.Palette }

// focusDoneMsg reports the outcome of asking the host to focus a tab.
type focusDoneMsg struct {
	position int
	err      error
}

// refreshMsg fires on the refresh interval.
type refreshMsg struct{}
