package i

import (
	"context"

	dmn "github.com/amazeing-labs/amazeing-api/domain"
	"github.com/google/uuid"
)

// MazeCarverRequest carries the configuration surface for one generation
// request. Seed is optional; a process-random seed is drawn when nil.
type MazeCarverRequest struct {
	Width     int
	Height    int
	EntryX    int
	EntryY    int
	ExitX     int
	ExitY     int
	IsPerfect bool
	Heart     bool
	FortyTwo  bool
	Seed      *int64
}

// MazeCarver generates, stores and serves mazes.
type MazeCarver interface {
	// Carve generates a maze for the owner and persists the record.
	Carve(ctx context.Context, ownerID uuid.UUID, req MazeCarverRequest) (*dmn.MazeRecord, error)

	// ByID returns a stored maze record.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)

	// Solution returns the shortest entry-to-exit path of a stored maze
	// as cell indices plus its direction string.
	Solution(ctx context.Context, id uuid.UUID) ([]int, string, error)

	// Recent returns the most recently carved mazes, newest first.
	Recent(ctx context.Context) ([]*dmn.MazeRecord, error)
}

// MazeCache stores hex-encoded maze maps keyed by their configuration so
// identical seeded requests skip regeneration.
type MazeCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, encoded string) error
}

// SortedQueue is a score-ordered queue with TTL, used for the
// recent-maze feed.
type SortedQueue interface {
	// Enqueue adds a member with the given score.
	Enqueue(ctx context.Context, queueKey string, score float64, member string) error

	// Tops returns up to amount members with the highest scores, without
	// removing them.
	Tops(ctx context.Context, queueKey string, amount int64) ([]string, error)

	// TrimBelowRank drops members outside the top amount.
	TrimBelowRank(ctx context.Context, queueKey string, amount int64) error

	// Count returns the number of members in the queue.
	Count(ctx context.Context, queueKey string) int64
}
