// Package server runs game sessions. Each Server owns one engine and is the
// only goroutine that touches it; clients talk to it through channels and
// read published snapshots.
package server

import (
	"context"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/bouncer/internal/config"
	"github.com/tomz197/bouncer/internal/game"
	"github.com/tomz197/bouncer/internal/leaderboard"
)

// GameServer is the interface clients use to communicate with their session.
// Decouples the Client from the concrete Server so front ends can be tested
// against fakes.
type GameServer interface {
	SendKey(k game.Key)
	Restart()
	GetSnapshot() *game.Snapshot
	Events() <-chan Event
	TopScores() []leaderboard.Entry
}

// EventType identifies the type of session event.
type EventType int

const (
	EventGameOver EventType = iota
	EventRestarted
	EventServerShutdown
)

// Event is sent from a session to its client.
type Event struct {
	Type  EventType
	Score int // Final score for EventGameOver
}

// Options configures a Server.
type Options struct {
	Username  string                     // Name used for leaderboard entries
	Submitter leaderboard.ScoreSubmitter // Optional; receives every final score
	Logger    *log.Logger                // Optional; discards when nil
	Rand      game.Rand                  // Optional; time-seeded when nil
}

// Server drives one engine on a fixed tick.
type Server struct {
	engine    *game.Engine
	tick      time.Duration
	snapshot  atomic.Pointer[game.Snapshot]
	keyCh     chan game.Key
	restartCh chan struct{}
	eventsCh  chan Event
	username  string
	submitter leaderboard.ScoreSubmitter
	logger    *log.Logger
}

// Compile-time check that Server implements GameServer.
var _ GameServer = (*Server)(nil)

// NewServer creates a session in the running state. Call Run to start ticking.
func NewServer(cfg config.Game, opts Options) (*Server, error) {
	engine, err := game.New(cfg, opts.Rand)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Server{
		engine:    engine,
		tick:      cfg.TickInterval,
		keyCh:     make(chan game.Key, 32),
		restartCh: make(chan struct{}, 1),
		eventsCh:  make(chan Event, 16),
		username:  opts.Username,
		submitter: opts.Submitter,
		logger:    logger,
	}
	s.publish()
	return s, nil
}

// Run ticks the engine and applies input until ctx is cancelled.
// Timer ticks and key events are handled on this goroutine only, so engine
// mutations never overlap.
func (s *Server) Run(ctx context.Context) {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	s.logger.Debug("session started")
	defer s.logger.Debug("session stopped")

	for {
		select {
		case <-ctx.Done():
			return
		case k := <-s.keyCh:
			if s.engine.HandleKey(k) {
				s.publish()
			}
		case <-s.restartCh:
			if s.engine.Restart() {
				s.logger.Info("round restarted")
				s.notify(Event{Type: EventRestarted})
				s.publish()
			}
		case <-ticker.C:
			s.step(ctx)
		}
	}
}

// step advances one tick and reports the end of a round.
func (s *Server) step(ctx context.Context) {
	wasRunning := s.engine.Phase() == game.PhaseRunning
	s.engine.Tick()
	if !wasRunning {
		return
	}
	s.publish()

	if s.engine.Phase() == game.PhaseGameOver {
		score := s.engine.Score()
		s.logger.Info("game over", "score", score)
		s.submit(ctx, score)
		s.notify(Event{Type: EventGameOver, Score: score})
	}
}

// submit hands the final score to the optional collaborator.
func (s *Server) submit(ctx context.Context, score int) {
	if s.submitter == nil || s.username == "" {
		return
	}
	entry := leaderboard.Entry{Name: s.username, Score: score, At: time.Now()}
	if err := s.submitter.SubmitScore(ctx, entry); err != nil {
		s.logger.Warn("score not recorded", "score", score, "err", err)
	}
}

// notify sends an event without blocking the tick loop.
func (s *Server) notify(e Event) {
	select {
	case s.eventsCh <- e:
	default:
		// Client is not draining events, drop
	}
}

func (s *Server) publish() {
	snap := s.engine.Snapshot()
	s.snapshot.Store(&snap)
}

// SendKey queues a key for the next loop iteration.
func (s *Server) SendKey(k game.Key) {
	select {
	case s.keyCh <- k:
	default:
		// Key channel full, drop input
	}
}

// Restart asks for a new round. It has no effect unless the round is over.
func (s *Server) Restart() {
	select {
	case s.restartCh <- struct{}{}:
	default:
		// A restart is already pending
	}
}

// GetSnapshot returns the latest published snapshot.
func (s *Server) GetSnapshot() *game.Snapshot {
	return s.snapshot.Load()
}

// Events returns the session's event stream.
func (s *Server) Events() <-chan Event {
	return s.eventsCh
}

// TopScores returns the leaderboard if the submitter keeps one.
func (s *Server) TopScores() []leaderboard.Entry {
	if r, ok := s.submitter.(leaderboard.Ranking); ok {
		return r.Top()
	}
	return nil
}

// Username returns the name this session records scores under.
func (s *Server) Username() string {
	return s.username
}
