package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/amazeing-labs/amazeing-api/domain"
	"github.com/amazeing-labs/amazeing-api/logger"
	"github.com/amazeing-labs/amazeing-api/mazegen"
	"github.com/amazeing-labs/amazeing-api/service/i"
	"github.com/google/uuid"
)

const recentFeedKey = "mazes:recent"

// ErrDimensionTooLarge rejects requests above the configured limit
// before any generation work starts.
var ErrDimensionTooLarge = errors.New("maze dimensions exceed the configured limit")

// MazeService implements i.MazeCarver: it drives the mazegen engine and
// persists, caches and feeds the results.
type MazeService struct {
	repo       i.MazeRepo
	cache      i.MazeCache
	recentFeed i.SortedQueue
	logger     logger.Logger

	maxDimension int
	recentSize   int64
}

// MazeServiceConfig wires the service's collaborators.
type MazeServiceConfig struct {
	Repo         i.MazeRepo
	Cache        i.MazeCache
	RecentFeed   i.SortedQueue
	Logger       logger.Logger
	MaxDimension int
	RecentSize   int
}

// NewMazeService creates the maze service.
func NewMazeService(cfg MazeServiceConfig) (*MazeService, error) {
	if cfg.Repo == nil || cfg.Cache == nil || cfg.RecentFeed == nil || cfg.Logger == nil {
		return nil, errors.New("maze service requires a repo, a cache, a feed and a logger")
	}
	if cfg.MaxDimension <= 0 || cfg.RecentSize <= 0 {
		return nil, errors.New("maze service limits must be positive")
	}

	return &MazeService{
		repo:         cfg.Repo,
		cache:        cfg.Cache,
		recentFeed:   cfg.RecentFeed,
		logger:       cfg.Logger,
		maxDimension: cfg.MaxDimension,
		recentSize:   int64(cfg.RecentSize),
	}, nil
}

// Carve generates a maze for the owner and persists the record. Seeded
// requests reuse the cached encoding when the same configuration was
// generated before; the solution is recomputed either way since it is
// derived deterministically from the map.
func (s *MazeService) Carve(ctx context.Context, ownerID uuid.UUID, req i.MazeCarverRequest) (*dmn.MazeRecord, error) {
	if req.Width > s.maxDimension || req.Height > s.maxDimension {
		return nil, ErrDimensionTooLarge
	}

	maze, err := mazegen.New(mazegen.Config{
		Width:     req.Width,
		Height:    req.Height,
		Entry:     mazegen.Point{X: req.EntryX, Y: req.EntryY},
		Exit:      mazegen.Point{X: req.ExitX, Y: req.ExitY},
		IsPerfect: req.IsPerfect,
		Heart:     req.Heart,
		FortyTwo:  req.FortyTwo,
	})
	if err != nil {
		return nil, err
	}

	seed, seeded := int64(0), req.Seed != nil
	if seeded {
		seed = *req.Seed
	} else {
		seed = mazegen.RandomSeed()
	}

	encoded, err := s.carveMap(ctx, maze, seed, seeded, req)
	if err != nil {
		return nil, err
	}

	var finder mazegen.PathFinder
	path, err := finder.SolveInstant(maze)
	if err != nil {
		// The generator guarantees connectivity, so this is a defect.
		s.logger.Error(fmt.Sprintf("Solving freshly carved maze: %v", err))
		return nil, err
	}
	directions, err := mazegen.DirectionsString(maze, path)
	if err != nil {
		return nil, err
	}

	record := &dmn.MazeRecord{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Width:      req.Width,
		Height:     req.Height,
		EntryX:     req.EntryX,
		EntryY:     req.EntryY,
		ExitX:      req.ExitX,
		ExitY:      req.ExitY,
		IsPerfect:  req.IsPerfect,
		Heart:      req.Heart,
		FortyTwo:   req.FortyTwo,
		Seed:       seed,
		EncodedMap: encoded,
		Solution:   path,
		Directions: directions,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Save(record); err != nil {
		return nil, err
	}

	s.pushToRecentFeed(ctx, record)
	return record, nil
}

// carveMap produces the hex-encoded map, going through the cache for
// seeded requests.
func (s *MazeService) carveMap(ctx context.Context, maze *mazegen.Maze, seed int64, seeded bool, req i.MazeCarverRequest) (string, error) {
	var generator mazegen.Generator

	key := cacheKey(req, seed)
	if seeded {
		if encoded, ok := s.cache.Get(ctx, key); ok {
			decoded, err := mazegen.DecodeMap(encoded, maze.Width, maze.Height)
			if err == nil {
				maze.Map = decoded
				return encoded, nil
			}
			s.logger.Warning(fmt.Sprintf("Dropping undecodable cached maze %s: %v", key, err))
		}
	}

	encoded, err := generator.GenerateInstant(maze, seed)
	if err != nil {
		return "", err
	}

	if seeded {
		if err := s.cache.Set(ctx, key, encoded); err != nil {
			s.logger.Warning(fmt.Sprintf("Caching maze %s: %v", key, err))
		}
	}
	return encoded, nil
}

// ByID returns a stored maze record.
func (s *MazeService) ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	return s.repo.ByID(id)
}

// Solution returns the stored shortest path of a maze and its direction
// string.
func (s *MazeService) Solution(ctx context.Context, id uuid.UUID) ([]int, string, error) {
	record, err := s.repo.ByID(id)
	if err != nil {
		return nil, "", err
	}
	return record.Solution, record.Directions, nil
}

// Recent returns the most recently carved mazes, newest first.
func (s *MazeService) Recent(ctx context.Context) ([]*dmn.MazeRecord, error) {
	members, err := s.recentFeed.Tops(ctx, recentFeedKey, s.recentSize)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(members))
	for _, member := range members {
		id, err := uuid.Parse(member)
		if err != nil {
			s.logger.Warning(fmt.Sprintf("Skipping malformed feed member %q", member))
			continue
		}
		ids = append(ids, id)
	}

	return s.repo.ByIDs(ids)
}

func (s *MazeService) pushToRecentFeed(ctx context.Context, record *dmn.MazeRecord) {
	score := float64(record.CreatedAt.UnixNano())
	if err := s.recentFeed.Enqueue(ctx, recentFeedKey, score, record.ID.String()); err != nil {
		s.logger.Warning(fmt.Sprintf("Pushing maze %s to recent feed: %v", record.ID, err))
		return
	}
	if err := s.recentFeed.TrimBelowRank(ctx, recentFeedKey, s.recentSize); err != nil {
		s.logger.Warning(fmt.Sprintf("Trimming recent feed: %v", err))
	}
}

// cacheKey derives the cache key from everything that determines the
// final map.
func cacheKey(req i.MazeCarverRequest, seed int64) string {
	return fmt.Sprintf("maze:%dx%d:%d,%d-%d,%d:p%t:h%t:f%t:s%d",
		req.Width, req.Height,
		req.EntryX, req.EntryY, req.ExitX, req.ExitY,
		req.IsPerfect, req.Heart, req.FortyTwo, seed)
}
