// Package mazeapi provides the HTTP controller and DTOs for carving and
// reading mazes.
package mazeapi

import (
	"time"

	dmn "github.com/amazeing-labs/amazeing-api/domain"
)

// PointDTO is an (x, y) cell coordinate.
type PointDTO struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// CarveRequest carries the configuration surface for one generation
// request. Entry defaults to the top-left corner when omitted; Seed is
// optional and makes the maze reproducible.
type CarveRequest struct {
	Width     int      `json:"width" binding:"required"`
	Height    int      `json:"height" binding:"required"`
	Entry     PointDTO `json:"entry"`
	Exit      PointDTO `json:"exit"`
	IsPerfect bool     `json:"is_perfect"`
	Heart     bool     `json:"heart"`
	FortyTwo  bool     `json:"forty_two"`
	Seed      *int64   `json:"seed"`
}

// MazeResponse is the public view of a stored maze record.
type MazeResponse struct {
	ID         string    `json:"id"`
	OwnerID    string    `json:"owner_id"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Entry      PointDTO  `json:"entry"`
	Exit       PointDTO  `json:"exit"`
	IsPerfect  bool      `json:"is_perfect"`
	Heart      bool      `json:"heart"`
	FortyTwo   bool      `json:"forty_two"`
	Seed       int64     `json:"seed"`
	EncodedMap string    `json:"encoded_map"`
	CreatedAt  time.Time `json:"created_at"`
}

// SolutionResponse carries the shortest path of a maze, both as cell
// indices and as a direction string.
type SolutionResponse struct {
	Path       []int  `json:"path"`
	Directions string `json:"directions"`
}

func newMazeResponse(record *dmn.MazeRecord) *MazeResponse {
	return &MazeResponse{
		ID:         record.ID.String(),
		OwnerID:    record.OwnerID.String(),
		Width:      record.Width,
		Height:     record.Height,
		Entry:      PointDTO{X: record.EntryX, Y: record.EntryY},
		Exit:       PointDTO{X: record.ExitX, Y: record.ExitY},
		IsPerfect:  record.IsPerfect,
		Heart:      record.Heart,
		FortyTwo:   record.FortyTwo,
		Seed:       record.Seed,
		EncodedMap: record.EncodedMap,
		CreatedAt:  record.CreatedAt,
	}
}
