package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-carver/maze"
	"github.com/beka-birhanu/vinom-carver/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const lockExpiry = 30 * time.Second

// RedisMazeCache stores generation results in Redis and serialises their
// generation across instances with a redsync mutex.
type RedisMazeCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

var _ i.MazeCache = &RedisMazeCache{}

// NewRedisMazeCache initializes a RedisMazeCache with the provided Redis client and TTL.
func NewRedisMazeCache(client *redis.Client, ttlSeconds int) *RedisMazeCache {
	pool := goredis.NewPool(client)
	return &RedisMazeCache{
		client: client,
		locker: redsync.New(pool),
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
}

// Get returns the result cached under key.
func (c *RedisMazeCache) Get(ctx context.Context, key string) (*maze.Result, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}

	res, err := decodeResult(data)
	if err != nil {
		return nil, false, fmt.Errorf("decode %s: %w", key, err)
	}
	return res, true, nil
}

// Put caches res under key for the configured TTL.
func (c *RedisMazeCache) Put(ctx context.Context, key string, res *maze.Result) error {
	data, err := encodeResult(res)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Lock blocks until this instance holds the generation lock for key.
func (c *RedisMazeCache) Lock(ctx context.Context, key string) (func(), error) {
	mutex := c.locker.NewMutex(key+":lock", redsync.WithExpiry(lockExpiry))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("lock %s: %w", key, err)
	}
	return func() {
		_, _ = mutex.UnlockContext(context.Background())
	}, nil
}

type entry struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Seed       int64  `json:"seed"`
	Iterations int    `json:"iterations"`
	Walls      []byte `json:"walls"`
	Steps      int    `json:"steps"`
	Reason     int    `json:"reason"`
}

func encodeResult(res *maze.Result) ([]byte, error) {
	walls := make([]byte, len(res.Walls))
	for i, w := range res.Walls {
		walls[i] = byte(w)
	}
	return json.Marshal(entry{
		Width:      res.Width,
		Height:     res.Height,
		Seed:       res.Seed,
		Iterations: res.Iterations,
		Walls:      walls,
		Steps:      res.Steps,
		Reason:     int(res.Reason),
	})
}

// decodeResult rebuilds a result and re-derives its per-cell counts.
func decodeResult(data []byte) (*maze.Result, error) {
	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}

	masks := make([]maze.Walls, len(e.Walls))
	for i, b := range e.Walls {
		masks[i] = maze.Walls(b)
	}
	// Rejects entries whose walls do not fit the grid.
	if _, err := maze.LoadGrid(e.Width, e.Height, masks); err != nil {
		return nil, err
	}

	res := &maze.Result{
		Width:      e.Width,
		Height:     e.Height,
		Seed:       e.Seed,
		Iterations: e.Iterations,
		Walls:      masks,
		WallCounts: make([]int, len(masks)),
		Steps:      e.Steps,
		Reason:     maze.Reason(e.Reason),
	}
	for i, w := range masks {
		res.WallCounts[i] = w.Count()
		if w == maze.AllWalls {
			res.Untouched++
		}
	}
	return res, nil
}
