package main

import (
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/ruminaider/tabpick/internal/render"
	"github.com/ruminaider/tabpick/internal/tablist"
	"github.com/spf13/cobra"
)

var (
	listQuery string
	listRows  int
	listCols  int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print one picker frame and exit",
	Long:  "Reads the current tmux windows, applies --query if given, and prints a single rendered frame to stdout.",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "search query to apply")
	listCmd.Flags().IntVar(&listRows, "rows", 0, "frame height (default: terminal height, or every item)")
	listCmd.Flags().IntVar(&listCols, "cols", 0, "frame width (default: terminal width, or 80)")
}

func runList(cmd *cobra.Command, args []string) error {
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

	items, err := newHost(cfg).Items()
	if err != nil {
		return err
	}
	log.Printf("list: %d tabs", len(items))

	l := tablist.New()
	l.SetItems(items)
	for _, r := range listQuery {
		l.PushCharacter(r)
	}

	rows, cols := frameSize(len(items))
	out := newEmitter(cfg, pal).Emit(render.Build(l, rows, cols))
	if out != "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	return nil
}

// frameSize picks the frame dimensions from flags, then the terminal, then
// fallbacks that show every item.
func frameSize(total int) (rows, cols int) {
	rows, cols = listRows, listCols
	if w, h, err := term.GetSize(os.Stdout.Fd()); err == nil {
		if rows <= 0 {
			rows = h
		}
		if cols <= 0 {
			cols = w
		}
	}
	if rows <= 0 {
		rows = total
	}
	if cols <= 0 {
		cols = 80
	}
	return rows, cols
}
