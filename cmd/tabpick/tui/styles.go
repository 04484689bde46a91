package tui

import (
	"log"

	catppuccin "github.com/catppuccin/go"
	"github.com/ruminaider/tabpick/internal/render"
)

// Flavor returns the catppuccin flavor called name, or Mocha when the name
// is unknown.
func Flavor(name string) catppuccin.Flavor {
	switch name {
	case "latte":
		return catppuccin.Latte
	case "frappe":
		return catppuccin.Frappe
	case "macchiato":
		return catppuccin.Macchiato
	default:
		return catppuccin.Mocha
	}
}

// FlavorPalette maps a catppuccin flavor onto the picker's color roles.
func FlavorPalette(name string) render.Palette {
	f := Flavor(name)
	def := render.DefaultPalette()
	return render.Palette{
		Green:      hex(f.Green(), def.Green),
		Red:        hex(f.Red(), def.Red),
		Cyan:       hex(f.Sky(), def.Cyan),
		Magenta:    hex(f.Mauve(), def.Magenta),
		Orange:     hex(f.Peach(), def.Orange),
		Background: hex(f.Surface0(), def.Background),
	}
}

func hex(c catppuccin.Color, fallback render.Color) render.Color {
	out, err := render.ParseColor(c.Hex)
	if err != nil {
		log.Printf("flavor color %q: %v", c.Hex, err)
		return fallback
	}
	return out
}
