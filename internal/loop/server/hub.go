package server

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/bouncer/internal/config"
	"github.com/tomz197/bouncer/internal/leaderboard"
)

// Hub tracks every live session in the process so they can share a
// leaderboard and be told about shutdown. Sessions never see each other's
// playfield.
type Hub struct {
	cfg    config.Game
	board  *leaderboard.Board
	logger *log.Logger

	mu      sync.RWMutex
	clients map[int]*Server
	nextID  int
}

// NewHub creates a hub. board and logger may be nil.
func NewHub(cfg config.Game, board *leaderboard.Board, logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Hub{
		cfg:     cfg,
		board:   board,
		logger:  logger,
		clients: make(map[int]*Server),
		nextID:  1,
	}
}

// Start creates a session for username and runs it until ctx is cancelled or
// the returned stop function is called. stop unregisters the session and
// waits for its goroutine to exit.
func (h *Hub) Start(ctx context.Context, username string) (*Server, func(), error) {
	opts := Options{
		Username: username,
		Logger:   h.logger.With("user", username),
	}
	if h.board != nil {
		opts.Submitter = h.board
	}

	s, err := NewServer(h.cfg, opts)
	if err != nil {
		return nil, nil, err
	}

	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.clients[id] = s
	h.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.Run(ctx)
	}()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			cancel()
			<-done
			h.mu.Lock()
			delete(h.clients, id)
			h.mu.Unlock()
		})
	}
	return s, stop, nil
}

// Players returns the number of live sessions.
func (h *Hub) Players() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Shutdown notifies every session's client about the shutdown and waits for
// them to disconnect (up to the given timeout).
// The caller should cancel the sessions' parent context after Shutdown returns.
func (h *Hub) Shutdown(timeout time.Duration) {
	h.mu.RLock()
	for _, s := range h.clients {
		s.notify(Event{Type: EventServerShutdown})
	}
	h.mu.RUnlock()

	deadline := time.After(timeout)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		if h.Players() == 0 {
			return
		}
		select {
		case <-deadline:
			h.logger.Warn("shutdown timed out", "remaining", h.Players())
			return
		case <-ticker.C:
		}
	}
}
