package main

import (
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ruminaider/tabpick/cmd/tabpick/tui"
	"github.com/ruminaider/tabpick/internal/config"
	"github.com/ruminaider/tabpick/internal/paths"
	"github.com/ruminaider/tabpick/internal/render"
	"github.com/ruminaider/tabpick/internal/tmux"
)

// setupLogging routes the standard logger to the debug file, or discards it.
// The returned closer must be called on exit.
func setupLogging() (io.Closer, error) {
	if !debug && os.Getenv("TABPICK_DEBUG") == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	return tea.LogToFile(paths.DebugLog(), "tabpick")
}

func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return paths.ConfigFile()
}

// loadConfig reads the config and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(resolveConfigPath())
	if err != nil {
		return config.Config{}, err
	}
	if socketPath != "" {
		cfg.Socket = socketPath
	}
	return cfg, nil
}

// palette resolves the flavor and the per-role overrides.
func palette(cfg config.Config) (render.Palette, error) {
	return cfg.Palette.Apply(tui.FlavorPalette(cfg.Flavor))
}

func newEmitter(cfg config.Config, p render.Palette) tui.Emitter {
	profile := lipgloss.ColorProfile()
	if cfg.Output == config.OutputTable {
		return render.NewTable(p, profile)
	}
	return render.NewANSI(p, profile)
}

func newHost(cfg config.Config) tmux.Client {
	return tmux.Client{Socket: cfg.Socket}
}
