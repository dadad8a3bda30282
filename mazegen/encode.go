package mazegen

import (
	"strconv"
	"strings"
)

// EncodeMap serializes the maze map as hexadecimal text, one digit per
// cell in row-major order, one line per row. Cells excluded by a shape
// mask stay fully walled and therefore encode as 'F'.
func (m *Maze) EncodeMap() (string, error) {
	if len(m.Map) != m.Width*m.Height {
		return "", ErrEmptyMap
	}

	var b strings.Builder
	for y := 0; y < m.Height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < m.Width; x++ {
			b.WriteString(strings.ToUpper(strconv.FormatUint(uint64(m.Map[y*m.Width+x]), 16)))
		}
	}
	return b.String(), nil
}

// DecodeMap parses the output of EncodeMap back into a cell map of the
// given dimensions.
func DecodeMap(encoded string, width, height int) ([]uint8, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimension
	}

	lines := strings.Split(encoded, "\n")
	if len(lines) != height {
		return nil, ErrMalformedEncoding
	}

	cells := make([]uint8, 0, width*height)
	for _, line := range lines {
		if len(line) != width {
			return nil, ErrMalformedEncoding
		}
		for _, c := range line {
			v, err := strconv.ParseUint(string(c), 16, 8)
			if err != nil {
				return nil, ErrMalformedEncoding
			}
			cells = append(cells, uint8(v))
		}
	}
	return cells, nil
}
