package service

import (
	"context"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-carver/domain"
	"github.com/beka-birhanu/vinom-carver/maze"
	"github.com/beka-birhanu/vinom-carver/service/i"
	"github.com/google/uuid"
)

// MazeServiceConfig holds the dependencies and limits of a MazeService.
type MazeServiceConfig struct {
	Repo         i.MazeRepo
	Cache        i.MazeCache
	Index        i.SortedIndex
	Logger       i.Logger
	MaxDimension int // largest accepted width or height, 0 for no limit
	RecentLimit  int // mazes listed by Recent
}

// MazeService generates mazes, caches results by parameters and keeps a
// recent list per owner.
type MazeService struct {
	repo         i.MazeRepo
	cache        i.MazeCache
	index        i.SortedIndex
	logger       i.Logger
	maxDimension int
	recentLimit  int64
}

var _ i.MazeGenerator = &MazeService{}

// NewMazeService creates a MazeService from cfg.
func NewMazeService(cfg MazeServiceConfig) (*MazeService, error) {
	if cfg.Repo == nil || cfg.Cache == nil || cfg.Index == nil || cfg.Logger == nil {
		return nil, ErrMissingDependency
	}
	return &MazeService{
		repo:         cfg.Repo,
		cache:        cfg.Cache,
		index:        cfg.Index,
		logger:       cfg.Logger,
		maxDimension: cfg.MaxDimension,
		recentLimit:  int64(cfg.RecentLimit),
	}, nil
}

// Generate produces the maze for p, stores a copy owned by owner and adds it
// to the owner's recent list. Equal parameters reuse the cached walls.
func (s *MazeService) Generate(ctx context.Context, owner uuid.UUID, p dmn.MazeParams) (*dmn.Maze, error) {
	p, err := p.Normalize(s.maxDimension)
	if err != nil {
		return nil, err
	}

	res, err := s.result(ctx, p)
	if err != nil {
		return nil, err
	}

	m, err := dmn.NewMaze(owner, res)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, m); err != nil {
		return nil, err
	}

	if err := s.index.Add(ctx, recentKey(owner), float64(m.CreatedAt.UnixMilli()), m.ID.String()); err != nil {
		s.logger.Warn(fmt.Sprintf("Indexing maze %s for %s: %v", m.ID, owner, err))
	}

	s.logger.Info(fmt.Sprintf("Generated maze %s (%dx%d seed %d, %d steps)", m.ID, m.Width, m.Height, m.Seed, m.Steps))
	return m, nil
}

// ByID returns a stored maze.
func (s *MazeService) ByID(ctx context.Context, id uuid.UUID) (*dmn.Maze, error) {
	return s.repo.ByID(ctx, id)
}

// Recent returns the owner's latest mazes, newest first.
func (s *MazeService) Recent(ctx context.Context, owner uuid.UUID) ([]*dmn.Maze, error) {
	members, err := s.index.Top(ctx, recentKey(owner), s.recentLimit)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(members))
	for _, member := range members {
		id, err := uuid.Parse(member)
		if err != nil {
			s.logger.Warn(fmt.Sprintf("Skipping malformed recent entry %q: %v", member, err))
			continue
		}
		ids = append(ids, id)
	}

	return s.repo.ByIDs(ctx, ids)
}

// Stream carves p step by step, reporting every change to sink. The result is
// neither cached nor stored.
func (s *MazeService) Stream(ctx context.Context, p dmn.MazeParams, sink maze.Sink, delay time.Duration) (*maze.Result, error) {
	p, err := p.Normalize(s.maxDimension)
	if err != nil {
		return nil, err
	}

	return maze.Generate(ctx, p.Width, p.Height, p.Seed, p.Iterations,
		maze.WithSink(sink),
		maze.WithYield(maze.Delay(delay)),
	)
}

// result returns the cached walls for p, generating them under the
// distributed lock on a miss.
func (s *MazeService) result(ctx context.Context, p dmn.MazeParams) (*maze.Result, error) {
	key := p.Key()
	if res, ok := s.cached(ctx, key); ok {
		return res, nil
	}

	unlock, err := s.cache.Lock(ctx, key)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.logger.Warn(fmt.Sprintf("Generating %s without lock: %v", key, err))
	} else {
		defer unlock()
		// Another instance may have finished while we waited.
		if res, ok := s.cached(ctx, key); ok {
			return res, nil
		}
	}

	res, err := maze.Generate(ctx, p.Width, p.Height, p.Seed, p.Iterations)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Put(ctx, key, res); err != nil {
		s.logger.Warn(fmt.Sprintf("Caching %s: %v", key, err))
	}
	return res, nil
}

// cached treats cache failures as misses.
func (s *MazeService) cached(ctx context.Context, key string) (*maze.Result, bool) {
	res, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("Reading cache %s: %v", key, err))
		return nil, false
	}
	if ok {
		s.logger.Debug(fmt.Sprintf("Cache hit %s", key))
	}
	return res, ok
}

func recentKey(owner uuid.UUID) string {
	return "recent:" + owner.String()
}
