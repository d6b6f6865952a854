// Package realtime pushes live auction countdowns to open room pages over a websocket
package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"late-rooms/internal/countdown"
	"late-rooms/internal/marketerrors"
	"late-rooms/internal/models"
	"late-rooms/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
	writeWait  = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// RoomSource loads the listing a countdown belongs to
type RoomSource interface {
	GetRoom(ctx context.Context, id string) (models.RoomListingView, error)
}

// clientMessage is sent by the page; "refresh" asks the server to reload the listing
type clientMessage struct {
	Type string `json:"type"`
}

// CountdownHandler streams one countdown per connection
type CountdownHandler struct {
	rooms    RoomSource
	interval time.Duration
	now      func() time.Time
}

// Option configures a CountdownHandler
type Option func(*CountdownHandler)

// WithInterval overrides the 1s push rate
func WithInterval(d time.Duration) Option {
	return func(h *CountdownHandler) { h.interval = d }
}

// WithClock overrides the clock used to compute ticks
func WithClock(now func() time.Time) Option {
	return func(h *CountdownHandler) { h.now = now }
}

// NewCountdownHandler creates a new CountdownHandler instance
func NewCountdownHandler(rooms RoomSource, opts ...Option) *CountdownHandler {
	h := &CountdownHandler{
		rooms:    rooms,
		interval: countdown.DefaultInterval,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Serve handles GET /ws/rooms/:id/countdown?style=card|detail|admin
func (h *CountdownHandler) Serve(c *gin.Context) {
	id := c.Param("id")
	style := utils.ParseStyle(c.Query("style"))

	room, err := h.rooms.GetRoom(c.Request.Context(), id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, marketerrors.ErrListingNotFound) {
			status = http.StatusNotFound
		}
		utils.JSONError(c, status, err, "countdown unavailable")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.Warn("websocket upgrade failed", map[string]any{"listing_id": id, "error": err.Error()})
		return
	}
	defer conn.Close()

	// scoped to the connection, not the upgraded request
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ticks := make(chan countdown.Tick)
	emit := func(t countdown.Tick) {
		select {
		case ticks <- t:
		case <-ctx.Done():
		}
	}

	timer := countdown.Start(ctx, room.AuctionEndsAt, style, emit,
		countdown.WithInterval(h.interval),
		countdown.WithClock(h.now),
	)
	defer timer.Stop()

	writerDone := make(chan struct{})
	go h.writeLoop(ctx, cancel, conn, ticks, writerDone)

	h.readLoop(conn, id, timer)

	cancel()
	timer.Stop()
	<-writerDone
}

// writeLoop is the only goroutine that writes to conn
func (h *CountdownHandler) writeLoop(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, ticks <-chan countdown.Tick, done chan<- struct{}) {
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ping.Stop()
		// unblocks the read loop when the writer fails first
		_ = conn.Close()
		close(done)
	}()

	for {
		select {
		case t := <-ticks:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(t); err != nil {
				cancel()
				return
			}
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				cancel()
				return
			}
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		}
	}
}

// readLoop handles refresh requests until the client goes away
func (h *CountdownHandler) readLoop(conn *websocket.Conn, id string, timer *countdown.Timer) {
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(raw, &msg); err != nil || msg.Type != "refresh" {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), writeWait)
		room, err := h.rooms.GetRoom(ctx, id)
		cancel()
		if err != nil {
			utils.Warn("countdown refresh failed", map[string]any{"listing_id": id, "error": err.Error()})
			continue
		}
		if !room.AuctionEndsAt.Equal(timer.End()) {
			timer.Reset(room.AuctionEndsAt)
		}
	}
}
