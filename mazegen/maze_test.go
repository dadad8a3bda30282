package mazegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("rejects non-positive dimensions", func(t *testing.T) {
		_, err := New(Config{Width: 0, Height: 5})
		assert.ErrorIs(t, err, ErrInvalidDimension)

		_, err = New(Config{Width: 5, Height: -1})
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})

	t.Run("rejects out-of-bounds endpoints", func(t *testing.T) {
		_, err := New(Config{Width: 4, Height: 4, Entry: Point{X: 4, Y: 0}})
		assert.ErrorIs(t, err, ErrOutOfBounds)

		_, err = New(Config{Width: 4, Height: 4, Exit: Point{X: 0, Y: -1}})
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("allocates a fully walled map", func(t *testing.T) {
		m, err := New(Config{Width: 3, Height: 2, Entry: Point{0, 0}, Exit: Point{2, 1}})
		require.NoError(t, err)

		assert.Len(t, m.Map, 6)
		for _, cell := range m.Map {
			assert.Equal(t, allWalls, cell)
		}
		assert.Equal(t, 0, m.Entry)
		assert.Equal(t, 5, m.Exit)
	})
}

func TestResize(t *testing.T) {
	m, err := New(Config{Width: 4, Height: 4, Entry: Point{1, 1}, Exit: Point{2, 2}})
	require.NoError(t, err)

	t.Run("rejects non-positive dimensions", func(t *testing.T) {
		assert.ErrorIs(t, m.SetWidth(0), ErrInvalidDimension)
		assert.ErrorIs(t, m.SetHeight(-3), ErrInvalidDimension)
	})

	t.Run("reallocates and resets endpoints", func(t *testing.T) {
		require.NoError(t, m.SetWidth(6))

		assert.Len(t, m.Map, 24)
		assert.Equal(t, 0, m.Entry)
		assert.Equal(t, 23, m.Exit)
		for _, cell := range m.Map {
			assert.Equal(t, allWalls, cell)
		}

		require.NoError(t, m.SetHeight(2))
		assert.Len(t, m.Map, 12)
		assert.Equal(t, 11, m.Exit)
	})

	t.Run("same dimension is a no-op", func(t *testing.T) {
		var g Generator
		fresh, err := New(Config{Width: 3, Height: 3, Exit: Point{2, 2}, IsPerfect: true})
		require.NoError(t, err)
		_, err = g.GenerateInstant(fresh, 11)
		require.NoError(t, err)

		before := append([]uint8(nil), fresh.Map...)
		require.NoError(t, fresh.SetWidth(3))
		assert.Equal(t, before, fresh.Map)
	})
}

func TestString(t *testing.T) {
	m, err := New(Config{Width: 2, Height: 1, Exit: Point{1, 0}, IsPerfect: true})
	require.NoError(t, err)

	var g Generator
	_, err = g.GenerateInstant(m, 1)
	require.NoError(t, err)

	// A 2x1 maze has a single open east-west passage.
	assert.Equal(t, "+---+---+\n|       |\n+---+---+\n", m.String())
}
