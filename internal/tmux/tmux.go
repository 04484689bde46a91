// Package tmux reads the windows of the current tmux session and focuses
// them. It is the host the picker runs under.
package tmux

import (
	"fmt"
	"log"
	"os/exec"
	"strconv"
	"strings"

	"github.com/ruminaider/tabpick/internal/tablist"
)

// windowFormat is passed to list-windows; the name goes last because it may
// itself contain tabs.
const windowFormat = "#{window_index}\t#{window_active}\t#{window_name}"

// Error is returned when tmux exits non-zero.
type Error struct {
	Args   []string
	Output string
	Err    error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("tmux %s: %v", strings.Join(e.Args, " "), e.Err)
	if e.Output != "" {
		msg += ": " + e.Output
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Client runs tmux commands, optionally against a specific server socket.
type Client struct {
	Socket string
	// Binary defaults to "tmux".
	Binary string
}

// Run executes a tmux command and returns trimmed stdout.
func (c Client) Run(args ...string) (string, error) {
	bin := c.Binary
	if bin == "" {
		bin = "tmux"
	}
	full := args
	if c.Socket != "" {
		full = append([]string{"-S", c.Socket}, args...)
	}
	out, err := exec.Command(bin, full...).CombinedOutput()
	trimmed := strings.TrimSpace(string(out))
	if err != nil {
		return trimmed, &Error{Args: full, Output: trimmed, Err: err}
	}
	return trimmed, nil
}

// Items lists the windows of the current session.
func (c Client) Items() ([]tablist.Item, error) {
	out, err := c.Run("list-windows", "-F", windowFormat)
	if err != nil {
		return nil, fmt.Errorf("listing windows: %w", err)
	}
	return ParseWindows(out), nil
}

// Focus selects the window at position in the current session.
func (c Client) Focus(position int) error {
	if _, err := c.Run("select-window", "-t", ":"+strconv.Itoa(position)); err != nil {
		return fmt.Errorf("selecting window %d: %w", position, err)
	}
	return nil
}

// ParseWindows reads list-windows output produced with windowFormat.
// Malformed lines are logged and skipped.
func ParseWindows(out string) []tablist.Item {
	var items []tablist.Item
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 3)
		if len(fields) != 3 {
			log.Printf("tmux: skipping malformed window line %q", line)
			continue
		}
		pos, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			log.Printf("tmux: skipping window with bad index %q", fields[0])
			continue
		}
		items = append(items, tablist.Item{
			Name:      fields[2],
			Position:  pos,
			IsCurrent: strings.TrimSpace(fields[1]) == "1",
		})
	}
	return items
}
