package mazeapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/beka-birhanu/vinom-carver/maze"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const writeWait = 5 * time.Second

// stream upgrades to a websocket and sends every change of a carving run as
// it happens, followed by a done event.
func (mc *MazeController) stream(ctx *gin.Context) {
	var query StreamQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	conn, err := mc.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		// The upgrader has already replied.
		mc.logger.Warn(fmt.Sprintf("Upgrading stream: %v", err))
		return
	}
	defer conn.Close()

	runCtx, cancel := context.WithCancel(ctx.Request.Context())
	defer cancel()
	go readUntilClosed(conn, cancel)

	sink := &socketSink{conn: conn, cancel: cancel}
	res, err := mc.mazes.Stream(runCtx, query.params(), sink, time.Duration(query.DelayMS)*time.Millisecond)
	switch {
	case sink.err != nil:
		mc.logger.Debug(fmt.Sprintf("Stream client went away: %v", sink.err))
		return
	case errors.Is(err, context.Canceled):
		mc.logger.Debug("Stream cancelled by client")
		return
	case err != nil:
		sink.send(ErrorEvent{Type: EventError, Error: err.Error()})
	default:
		sink.send(DoneEvent{
			Type:     EventDone,
			Width:    res.Width,
			Height:   res.Height,
			Steps:    res.Steps,
			Complete: res.Complete(),
			Reason:   res.Reason.String(),
		})
	}

	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
}

// readUntilClosed drains client frames so close and ping frames are handled,
// and cancels the run once the connection drops.
func readUntilClosed(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

// socketSink writes carver events to a websocket. The first write error
// cancels the run.
type socketSink struct {
	conn   *websocket.Conn
	cancel context.CancelFunc
	err    error
}

func (s *socketSink) CellChanged(index int, walls maze.Walls) {
	s.send(CellEvent{Type: EventCell, Index: index, Walls: int(walls)})
}

func (s *socketSink) FrontierChanged(index int, member bool) {
	s.send(FrontierEvent{Type: EventFrontier, Index: index, Member: member})
}

func (s *socketSink) CurrentChanged(index int) {
	s.send(CurrentEvent{Type: EventCurrent, Index: index})
}

func (s *socketSink) send(event interface{}) {
	if s.err != nil {
		return
	}
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := s.conn.WriteJSON(event); err != nil {
		s.err = err
		s.cancel()
	}
}
