package domain

import (
	"time"

	"github.com/google/uuid"
)

// MazeRecord is the stored result of one generation request: the full
// configuration surface, the seed that reproduces it, the hex-encoded
// cell map, and the precomputed solution.
type MazeRecord struct {
	ID         uuid.UUID `bson:"_id"`
	OwnerID    uuid.UUID `bson:"ownerId"`
	Width      int       `bson:"width"`
	Height     int       `bson:"height"`
	EntryX     int       `bson:"entryX"`
	EntryY     int       `bson:"entryY"`
	ExitX      int       `bson:"exitX"`
	ExitY      int       `bson:"exitY"`
	IsPerfect  bool      `bson:"isPerfect"`
	Heart      bool      `bson:"heart"`
	FortyTwo   bool      `bson:"fortyTwo"`
	Seed       int64     `bson:"seed"`
	EncodedMap string    `bson:"encodedMap"`
	Solution   []int     `bson:"solution"`
	Directions string    `bson:"directions"`
	CreatedAt  time.Time `bson:"createdAt"`
}
