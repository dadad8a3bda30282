package mazegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeRoundTrip(t *testing.T) {
	m := mustGenerate(t, Config{Width: 6, Height: 4, Exit: Point{5, 3}, IsPerfect: true}, 12)

	encoded, err := m.EncodeMap()
	require.NoError(t, err)

	lines := strings.Split(encoded, "\n")
	require.Len(t, lines, m.Height)
	for _, line := range lines {
		assert.Len(t, line, m.Width)
	}

	decoded, err := DecodeMap(encoded, m.Width, m.Height)
	require.NoError(t, err)
	assert.Equal(t, m.Map, decoded)
}

func TestEncodeEmptyMap(t *testing.T) {
	_, err := (&Maze{Width: 4, Height: 4}).EncodeMap()
	assert.ErrorIs(t, err, ErrEmptyMap)
}

func TestDecodeMalformed(t *testing.T) {
	cases := map[string]struct {
		encoded       string
		width, height int
	}{
		"wrong row count":  {"FFF\nFFF", 3, 3},
		"wrong row length": {"FF\nFFF\nFFF", 3, 3},
		"non-hex digit":    {"FFF\nFGF\nFFF", 3, 3},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeMap(tc.encoded, tc.width, tc.height)
			assert.ErrorIs(t, err, ErrMalformedEncoding)
		})
	}

	t.Run("invalid dimensions", func(t *testing.T) {
		_, err := DecodeMap("F", 0, 1)
		assert.ErrorIs(t, err, ErrInvalidDimension)
	})
}
