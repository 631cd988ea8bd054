package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/vinom-carver/domain"
	"github.com/beka-birhanu/vinom-carver/maze"
	"github.com/google/uuid"
)

var errBackend = errors.New("backend down")

type fakeLogger struct {
	mu    sync.Mutex
	warns []string
}

func (l *fakeLogger) Debug(string) {}
func (l *fakeLogger) Info(string)  {}
func (l *fakeLogger) Error(string) {}
func (l *fakeLogger) Warn(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}

type fakeMazeRepo struct {
	mazes   map[uuid.UUID]*dmn.Maze
	saveErr error
}

func newFakeMazeRepo() *fakeMazeRepo {
	return &fakeMazeRepo{mazes: map[uuid.UUID]*dmn.Maze{}}
}

func (r *fakeMazeRepo) Save(_ context.Context, m *dmn.Maze) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.mazes[m.ID] = m
	return nil
}

func (r *fakeMazeRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.Maze, error) {
	m, ok := r.mazes[id]
	if !ok {
		return nil, dmn.ErrMazeNotFound
	}
	return m, nil
}

func (r *fakeMazeRepo) ByIDs(_ context.Context, ids []uuid.UUID) ([]*dmn.Maze, error) {
	var out []*dmn.Maze
	for _, id := range ids {
		if m, ok := r.mazes[id]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeCache struct {
	results map[string]*maze.Result
	gets    int
	puts    int
	locks   int
	unlocks int
	getErr  error
	lockErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{results: map[string]*maze.Result{}}
}

func (c *fakeCache) Get(_ context.Context, key string) (*maze.Result, bool, error) {
	c.gets++
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	res, ok := c.results[key]
	return res, ok, nil
}

func (c *fakeCache) Put(_ context.Context, key string, res *maze.Result) error {
	c.puts++
	c.results[key] = res
	return nil
}

func (c *fakeCache) Lock(context.Context, string) (func(), error) {
	if c.lockErr != nil {
		return nil, c.lockErr
	}
	c.locks++
	return func() { c.unlocks++ }, nil
}

type fakeIndex struct {
	sets   map[string]map[string]float64
	addErr error
}

func newFakeIndex() *fakeIndex {
	return &fakeIndex{sets: map[string]map[string]float64{}}
}

func (x *fakeIndex) Add(_ context.Context, key string, score float64, member string) error {
	if x.addErr != nil {
		return x.addErr
	}
	if x.sets[key] == nil {
		x.sets[key] = map[string]float64{}
	}
	x.sets[key][member] = score
	return nil
}

func (x *fakeIndex) Top(_ context.Context, key string, limit int64) ([]string, error) {
	var members []string
	for m := range x.sets[key] {
		members = append(members, m)
	}
	sort.Slice(members, func(a, b int) bool {
		return x.sets[key][members[a]] > x.sets[key][members[b]]
	})
	if int64(len(members)) > limit {
		members = members[:limit]
	}
	return members, nil
}

func (x *fakeIndex) Count(_ context.Context, key string) int64 {
	return int64(len(x.sets[key]))
}

type fakeUserRepo struct {
	users map[string]*dmn.User
	err   error
}

func (r *fakeUserRepo) Save(u *dmn.User) error {
	if _, ok := r.users[u.Username]; ok {
		return dmn.ErrUsernameConflict
	}
	r.users[u.Username] = u
	return nil
}

func (r *fakeUserRepo) ByID(id uuid.UUID) (*dmn.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, dmn.ErrUserNotFound
}

func (r *fakeUserRepo) ByUsername(username string) (*dmn.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[username]
	if !ok {
		return nil, dmn.ErrUserNotFound
	}
	return u, nil
}

type fakeTokenizer struct {
	claims map[string]interface{}
	exp    time.Duration
}

func (t *fakeTokenizer) Generate(claims map[string]interface{}, exp time.Duration) (string, error) {
	t.claims = claims
	t.exp = exp
	return "signed-token", nil
}

func (t *fakeTokenizer) Decode(string) (map[string]interface{}, error) {
	return t.claims, nil
}
