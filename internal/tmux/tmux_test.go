package tmux

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/ruminaider/tabpick/internal/tablist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWindows(t *testing.T) {
	out := "0\t0\teditor\n1\t1\tlogs\n3\t0\tbuild\twith\ttabs\n"
	items := ParseWindows(out)
	require.Len(t, items, 3)
	assert.Equal(t, tablist.Item{Name: "editor", Position: 0}, items[0])
	assert.Equal(t, tablist.Item{Name: "logs", Position: 1, IsCurrent: true}, items[1])
	assert.Equal(t, "build\twith\ttabs", items[2].Name)
	assert.Equal(t, 3, items[2].Position)
}

func TestParseWindows_SkipsMalformed(t *testing.T) {
	out := "garbage\nx\t0\tname\n2\t0\tok\n\n"
	items := ParseWindows(out)
	require.Len(t, items, 1)
	assert.Equal(t, "ok", items[0].Name)
}

func TestParseWindows_Empty(t *testing.T) {
	assert.Empty(t, ParseWindows(""))
}

func TestParseWindows_EmptyName(t *testing.T) {
	items := ParseWindows("4\t0\t")
	require.Len(t, items, 1)
	assert.Equal(t, "", items[0].Name)
	assert.Equal(t, 4, items[0].Position)
}

func TestClient_MissingBinary(t *testing.T) {
	c := Client{Binary: "tabpick-no-such-tmux"}
	_, err := c.Items()
	require.Error(t, err)

	var tmuxErr *Error
	require.ErrorAs(t, err, &tmuxErr)
	assert.True(t, errors.Is(err, exec.ErrNotFound))
	assert.Contains(t, err.Error(), "listing windows")
}

func TestError_IncludesOutput(t *testing.T) {
	err := &Error{Args: []string{"select-window", "-t", ":9"}, Output: "can't find window: 9", Err: errors.New("exit status 1")}
	assert.Equal(t, "tmux select-window -t :9: exit status 1: can't find window: 9", err.Error())
}
