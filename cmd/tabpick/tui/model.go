package tui

import (
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/ruminaider/tabpick/internal/render"
	"github.com/ruminaider/tabpick/internal/tablist"
)

// Host is the terminal multiplexer the picker reads tabs from and focuses
// tabs in.
type Host interface {
	Items() ([]tablist.Item, error)
	Focus(position int) error
}

// Emitter is a frame emitter whose palette can be swapped at runtime.
type Emitter interface {
	render.Emitter
	SetPalette(p render.Palette)
}

// Options configures a Model.
type Options struct {
	Emitter Emitter
	Palette render.Palette
	Profile termenv.Profile

	// Refresh re-reads the host's tabs on this interval when positive.
	Refresh time.Duration

	// LoadPalette, when set, is polled on every refresh so palette edits
	// take effect without a restart.
	LoadPalette func() (render.Palette, error)
}

// Model is the bubbletea model wrapping a tablist.List.
type Model struct {
	list    *tablist.List
	host    Host
	emitter Emitter
	chrome  *render.ANSI
	input   textinput.Model
	refresh time.Duration
	loadPal func() (render.Palette, error)

	width  int
	height int
	err    error

	// Quitting is set once the picker has been dismissed.
	Quitting bool
}

// NewModel creates the picker shell.
func NewModel(host Host, opts Options) Model {
	ti := textinput.New()
	ti.Prompt = "Search: "
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()

	em := opts.Emitter
	if em == nil {
		em = render.NewANSI(opts.Palette, opts.Profile)
	}
	em.SetPalette(opts.Palette)

	m := Model{
		list:    tablist.New(),
		host:    host,
		emitter: em,
		chrome:  render.NewANSI(opts.Palette, opts.Profile),
		input:   ti,
		refresh: opts.Refresh,
		loadPal: opts.LoadPalette,
	}
	m.styleInput()
	return m
}

// List exposes the underlying list model.
func (m Model) List() *tablist.List { return m.list }

// Err returns the host error currently shown on the status row.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{fetchItems(m.host)}
	if m.refresh > 0 {
		cmds = append(cmds, tick(m.refresh))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ItemsMsg:
		if msg.Err != nil {
			log.Printf("reading tabs: %v", msg.Err)
			m.err = msg.Err
			return m, nil
		}
		log.Printf("snapshot: %d tabs", len(msg.Items))
		m.list.Update(msg.Items)
		m.syncInput()
		return m, nil

	case PaletteMsg:
		m.emitter.SetPalette(msg.Palette)
		m.chrome.SetPalette(msg.Palette)
		m.styleInput()
		return m, nil

	case focusDoneMsg:
		if msg.err != nil {
			log.Printf("focus %d: %v", msg.position, msg.err)
			m.err = msg.err
			return m, fetchItems(m.host)
		}
		m.Quitting = true
		return m, tea.Quit

	case refreshMsg:
		cmds := []tea.Cmd{fetchItems(m.host), tick(m.refresh)}
		if m.loadPal != nil {
			cmds = append(cmds, reloadPalette(m.loadPal))
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	parts := []string{m.input.View()}
	if m.height == 0 {
		return parts[0]
	}

	rows := m.height - 1
	if m.err != nil {
		rows--
	}
	if rows > 0 {
		frame := render.Build(m.list, rows, m.width)
		if body := m.emitter.Emit(frame); body != "" {
			parts = append(parts, body)
		}
	}
	if m.err != nil {
		msg := ansi.Truncate(m.err.Error(), m.width, "…")
		parts = append(parts, m.chrome.Style(render.RoleMore).Render(msg))
	}
	return strings.Join(parts, "\n")
}

func (m *Model) syncInput() {
	m.input.SetValue(m.list.Query())
	m.input.CursorEnd()
}

func (m *Model) styleInput() {
	m.input.PromptStyle = m.chrome.Style(render.RolePrompt)
	m.input.TextStyle = m.chrome.Style(render.RolePlain).Bold(true)
}

func fetchItems(h Host) tea.Cmd {
	return func() tea.Msg {
		items, err := h.Items()
		return ItemsMsg{Items: items, Err: err}
	}
}

func focusItem(h Host, position int) tea.Cmd {
	return func() tea.Msg {
		return focusDoneMsg{position: position, err: h.Focus(position)}
	}
}

func reloadPalette(load func() (render.Palette, error)) tea.Cmd {
	return func() tea.Msg {
		p, err := load()
		if err != nil {
			log.Printf("reloading palette: %v", err)
			return nil
		}
		return PaletteMsg{Palette: p}
	}
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return refreshMsg{} })
}
