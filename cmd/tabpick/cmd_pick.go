package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/ruminaider/tabpick/cmd/tabpick/tui"
	"github.com/ruminaider/tabpick/internal/render"
	"github.com/spf13/cobra"
)

func runPicker(cmd *cobra.Command, args []string) error {
	// TTY guard: print a single frame when stdin is not a terminal.
	if !term.IsTerminal(os.Stdin.Fd()) {
		return listCmd.RunE(cmd, args)
	}

	closer, err := setupLogging()
	if err != nil {
		return fmt.Errorf("opening debug log: %w", err)
	}
	defer closer.Close()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	pal, err := palette(cfg)
	if err != nil {
		return err
	}
	log.Printf("starting picker: output=%s flavor=%s socket=%q", cfg.Output, cfg.Flavor, cfg.Socket)

	model := tui.NewModel(newHost(cfg), tui.Options{
		Emitter: newEmitter(cfg, pal),
		Palette: pal,
		Profile: lipgloss.ColorProfile(),
		Refresh: cfg.Refresh,
		LoadPalette: func() (render.Palette, error) {
			cfg, err := loadConfig()
			if err != nil {
				return render.Palette{}, err
			}
			return palette(cfg)
		},
	})
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
