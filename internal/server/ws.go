package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

const (
	progressWSWriteWait = 10 * time.Second
	progressWSPongWait  = 60 * time.Second
	progressWSPingEvery = (progressWSPongWait * 9) / 10
)

var progressWSUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

// handleProgressWS streams batch status snapshots over a websocket until
// the batch completes. The final snapshot always has Done set, so
// clients can close on it.
//
// A batch has a single events channel, so it supports one progress
// subscriber at a time: concurrent connections for the same batch id
// split the event stream between them. Every connection still opens
// with the current snapshot and ends with the terminal one.
func (s *Server) handleProgressWS(w http.ResponseWriter, r *http.Request) {
	// Extract batch id from path: /api/v1/progress/{batchId}
	batchID := strings.TrimPrefix(r.URL.Path, "/api/v1/progress/")
	if batchID == "" {
		writeError(w, http.StatusBadRequest, "batch id required")
		return
	}

	b, ok := s.batches.get(batchID)
	if !ok {
		writeError(w, http.StatusNotFound, "batch not found")
		return
	}

	conn, err := progressWSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(progressWSPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(progressWSPongWait))
	})

	// Drain client frames so pong handlers run and closed peers are
	// noticed.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	// Send the current state first so late subscribers are not stuck
	// waiting for the next event.
	if err := writeStatus(conn, b.snapshot()); err != nil {
		return
	}

	pings := time.NewTicker(progressWSPingEvery)
	defer pings.Stop()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-pings.C:
			conn.SetWriteDeadline(time.Now().Add(progressWSWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case status, open := <-b.events:
			if !open {
				// Channel closed: replay the terminal snapshot and finish.
				_ = writeStatus(conn, b.snapshot())
				return
			}
			if err := writeStatus(conn, status); err != nil {
				return
			}
			if status.Done {
				return
			}
		}
	}
}

func writeStatus(conn *websocket.Conn, status BatchStatus) error {
	conn.SetWriteDeadline(time.Now().Add(progressWSWriteWait))
	return conn.WriteJSON(status)
}
