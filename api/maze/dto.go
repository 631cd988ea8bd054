// Package mazeapi exposes maze generation over HTTP and websockets.
package mazeapi

import (
	"time"

	dmn "github.com/beka-birhanu/vinom-carver/domain"
)

// GenerateRequest represents a request to generate and store a maze.
type GenerateRequest struct {
	Width      int   `json:"width" binding:"required,min=1"`
	Height     int   `json:"height" binding:"required,min=1"`
	Seed       int64 `json:"seed"`
	Iterations int   `json:"iterations"`
}

func (r GenerateRequest) params() dmn.MazeParams {
	return dmn.MazeParams{Width: r.Width, Height: r.Height, Seed: r.Seed, Iterations: r.Iterations}
}

// StreamQuery holds the query parameters of the stream endpoint.
type StreamQuery struct {
	Width      int   `form:"width" binding:"required,min=1"`
	Height     int   `form:"height" binding:"required,min=1"`
	Seed       int64 `form:"seed"`
	Iterations int   `form:"iterations"`
	DelayMS    int   `form:"delay_ms" binding:"min=0,max=1000"`
}

func (q StreamQuery) params() dmn.MazeParams {
	return dmn.MazeParams{Width: q.Width, Height: q.Height, Seed: q.Seed, Iterations: q.Iterations}
}

// MazeResponse represents a stored maze.
type MazeResponse struct {
	ID         string    `json:"id"`
	OwnerID    string    `json:"owner_id"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Seed       int64     `json:"seed"`
	Iterations int       `json:"iterations"`
	Walls      []int     `json:"walls"`
	Steps      int       `json:"steps"`
	Complete   bool      `json:"complete"`
	ASCII      string    `json:"ascii"`
	CreatedAt  time.Time `json:"created_at"`
}

func newMazeResponse(m *dmn.Maze) (*MazeResponse, error) {
	g, err := m.Grid()
	if err != nil {
		return nil, err
	}

	walls := make([]int, len(m.Walls))
	for i, w := range m.Walls {
		walls[i] = int(w)
	}

	return &MazeResponse{
		ID:         m.ID.String(),
		OwnerID:    m.OwnerID.String(),
		Width:      m.Width,
		Height:     m.Height,
		Seed:       m.Seed,
		Iterations: m.Iterations,
		Walls:      walls,
		Steps:      m.Steps,
		Complete:   m.Complete,
		ASCII:      g.String(),
		CreatedAt:  m.CreatedAt,
	}, nil
}

// Stream event types.
const (
	EventCell     = "cell"
	EventFrontier = "frontier"
	EventCurrent  = "current"
	EventDone     = "done"
	EventError    = "error"
)

// CellEvent reports the new wall mask of a cell.
type CellEvent struct {
	Type  string `json:"type"`
	Index int    `json:"index"`
	Walls int    `json:"walls"`
}

// FrontierEvent reports a cell entering or leaving the frontier.
type FrontierEvent struct {
	Type   string `json:"type"`
	Index  int    `json:"index"`
	Member bool   `json:"member"`
}

// CurrentEvent reports the carver moving to a cell.
type CurrentEvent struct {
	Type  string `json:"type"`
	Index int    `json:"index"`
}

// DoneEvent ends a stream.
type DoneEvent struct {
	Type     string `json:"type"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Steps    int    `json:"steps"`
	Complete bool   `json:"complete"`
	Reason   string `json:"reason"`
}

// ErrorEvent ends a stream that failed after the upgrade.
type ErrorEvent struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}
