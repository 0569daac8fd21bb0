package model

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("rows joined by newlines without a trailing one", func(t *testing.T) {
		t.Parallel()
		g, err := NewGrid(2, 3)
		require.NoError(t, err)
		g.Set(0, 0, true)
		g.Set(2, 0, true)
		g.Set(1, 1, true)

		out, err := g.Render('#', '.')
		require.NoError(t, err)
		assert.Equal(t, "#.#\n.#.", out)
	})

	t.Run("single row renders with no newline at all", func(t *testing.T) {
		t.Parallel()
		g, err := NewGrid(1, 4)
		require.NoError(t, err)
		g.Set(1, 0, true)

		out, err := g.Render('*', '-')
		require.NoError(t, err)
		assert.Equal(t, "-*--", out)
	})

	t.Run("zero runes fall back to the documented defaults", func(t *testing.T) {
		t.Parallel()
		g, err := NewGrid(1, 2)
		require.NoError(t, err)
		g.Set(0, 0, true)

		out, err := g.Render(0, 0)
		require.NoError(t, err)
		assert.Equal(t, "XO", out)
	})

	t.Run("multibyte runes are preserved", func(t *testing.T) {
		t.Parallel()
		g, err := NewGrid(1, 2)
		require.NoError(t, err)
		g.Set(1, 0, true)

		out, err := g.Render('█', '·')
		require.NoError(t, err)
		assert.Equal(t, "·█", out)
	})

	t.Run("uninitialized grid cannot render", func(t *testing.T) {
		t.Parallel()
		var g Grid
		_, err := g.Render('#', '.')
		assert.ErrorIs(t, err, ErrNotInitialized)
	})

	t.Run("render does not mutate the grid", func(t *testing.T) {
		t.Parallel()
		g, err := NewGrid(3, 3)
		require.NoError(t, err)
		require.NoError(t, g.Randomize(testRNG(5)))
		before := g.Cells()

		_, err = g.Render('#', '.')
		require.NoError(t, err)
		assert.Equal(t, before, g.Cells())
	})
}

func TestTerminalRenderer(t *testing.T) {
	t.Parallel()

	t.Run("display writes the frame plus a final newline", func(t *testing.T) {
		t.Parallel()
		g, err := NewGrid(2, 2)
		require.NoError(t, err)
		g.Set(0, 0, true)
		g.Set(1, 1, true)

		var buf bytes.Buffer
		r := NewTerminalRenderer(&buf, '#', '.')
		require.NoError(t, r.Display(g))
		assert.Equal(t, "#.\n.#\n", buf.String())
	})

	t.Run("display surfaces render failures", func(t *testing.T) {
		t.Parallel()
		var g Grid
		var buf bytes.Buffer
		r := NewTerminalRenderer(&buf, '#', '.')
		assert.ErrorIs(t, r.Display(&g), ErrNotInitialized)
		assert.Zero(t, buf.Len())
	})

	t.Run("clear emits the ANSI reset sequence", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		r := NewTerminalRenderer(&buf, 'X', 'O')
		require.NoError(t, r.Clear())
		assert.True(t, strings.HasPrefix(buf.String(), "\x1b["))
		assert.Equal(t, "\x1b[H\x1b[2J", buf.String())
	})
}
