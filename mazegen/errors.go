package mazegen

import "errors"

// Sentinel errors for maze construction, generation and solving.
var (
	// ErrInvalidDimension indicates a non-positive width or height.
	ErrInvalidDimension = errors.New("mazegen: width and height must be positive")
	// ErrOutOfBounds indicates an entry or exit cell outside the grid or
	// outside the shape mask.
	ErrOutOfBounds = errors.New("mazegen: entry/exit outside the maze")
	// ErrDisconnectedMask indicates the shape mask splits the maze into
	// more than one component, so no spanning tree can cover it.
	ErrDisconnectedMask = errors.New("mazegen: shape mask is not connected")
	// ErrGridTooSmall indicates the grid cannot fit the requested pattern.
	ErrGridTooSmall = errors.New("mazegen: grid too small for the '42' pattern")
	// ErrUnreachable indicates no path exists between entry and exit.
	// A generated maze always connects its cells, so this signals a
	// corrupted or hand-edited map.
	ErrUnreachable = errors.New("mazegen: exit is unreachable from entry")
	// ErrInvalidPath indicates a path with consecutive cells that are not
	// 4-neighbors.
	ErrInvalidPath = errors.New("mazegen: path cells are not adjacent")
	// ErrEmptyMap indicates the maze map has not been populated by a
	// generator yet.
	ErrEmptyMap = errors.New("mazegen: maze map is not populated")
	// ErrMalformedEncoding indicates a maze string that does not decode to
	// the expected dimensions.
	ErrMalformedEncoding = errors.New("mazegen: malformed maze encoding")
)
