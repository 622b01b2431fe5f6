package handler

import (
	"net/http"
	"slices"
	"time"

	"github.com/gorilla/websocket"

	"github.com/travelglobal/planner/internal/session"
)

const (
	streamWriteWait  = 10 * time.Second
	streamPongWait   = 60 * time.Second
	streamPingPeriod = streamPongWait * 9 / 10
)

// Stream handles GET /sessions/{sessionId}/stream.
// It upgrades to a websocket, sends the current snapshot, then pushes one
// JSON event per mutation until the client disconnects or the session ends.
// Client messages are read only to notice disconnects.
func (s *Server) Stream(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	// Resolve the session before upgrading so unknown ids get a plain 404.
	snap, err := s.planner.GetSession(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	events, cancel, err := s.planner.Subscribe(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	defer cancel()

	upgrader := websocket.Upgrader{CheckOrigin: s.checkOrigin}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written an HTTP error.
		s.log.DebugContext(r.Context(), "websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	gone := make(chan struct{})
	go func() {
		defer close(gone)
		conn.SetReadLimit(512)
		//nolint:errcheck
		conn.SetReadDeadline(time.Now().Add(streamPongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(streamPongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	period := s.opts.StreamPingPeriod
	if period <= 0 {
		period = streamPingPeriod
	}
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	send := func(ev session.Event) bool {
		//nolint:errcheck
		conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
		return conn.WriteJSON(ev) == nil
	}

	if !send(session.Event{Snapshot: snap}) {
		return
	}
	for {
		select {
		case ev, open := <-events:
			if !open {
				//nolint:errcheck
				conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "session ended"),
					time.Now().Add(streamWriteWait))
				return
			}
			if !send(ev) {
				return
			}
		case <-ticker.C:
			// Refreshes the session's idle clock while a client is watching.
			if _, err := s.planner.GetSession(r.Context(), id); err != nil {
				return
			}
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(streamWriteWait)); err != nil {
				return
			}
		case <-gone:
			return
		case <-r.Context().Done():
			return
		}
	}
}

// checkOrigin allows same-host requests, requests without an Origin header,
// and origins in the configured allow-list. An empty allow-list or a "*"
// entry admits any origin.
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || len(s.opts.AllowedOrigins) == 0 || slices.Contains(s.opts.AllowedOrigins, "*") {
		return true
	}
	if origin == "http://"+r.Host || origin == "https://"+r.Host {
		return true
	}
	return slices.Contains(s.opts.AllowedOrigins, origin)
}
