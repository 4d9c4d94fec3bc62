// Package leaderboard keeps the best scores of the running process.
package leaderboard

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"
)

// ErrEmptyName is returned when a score is submitted without a player name.
var ErrEmptyName = errors.New("leaderboard: empty player name")

// Entry is a single finished round.
type Entry struct {
	Name  string
	Score int
	At    time.Time
}

// ScoreSubmitter receives the score of every finished round.
type ScoreSubmitter interface {
	SubmitScore(ctx context.Context, e Entry) error
}

// Ranking exposes the current table, best first.
type Ranking interface {
	Top() []Entry
}

// Board is an in-memory top-N table safe for concurrent use.
// Each name keeps only its best score.
type Board struct {
	mu      sync.RWMutex
	size    int
	entries []Entry
}

// Compile-time checks that Board implements both roles.
var (
	_ ScoreSubmitter = (*Board)(nil)
	_ Ranking        = (*Board)(nil)
)

// NewBoard creates a board holding at most size entries.
func NewBoard(size int) *Board {
	if size < 1 {
		size = 1
	}
	return &Board{size: size}
}

// SubmitScore records e if it makes the table.
func (b *Board) SubmitScore(ctx context.Context, e Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if e.Name == "" {
		return ErrEmptyName
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for i, cur := range b.entries {
		if cur.Name == e.Name {
			if e.Score <= cur.Score {
				return nil
			}
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			break
		}
	}

	b.entries = append(b.entries, e)
	// Higher score first; earlier round wins ties
	sort.SliceStable(b.entries, func(i, j int) bool {
		if b.entries[i].Score != b.entries[j].Score {
			return b.entries[i].Score > b.entries[j].Score
		}
		return b.entries[i].At.Before(b.entries[j].At)
	})
	if len(b.entries) > b.size {
		b.entries = b.entries[:b.size]
	}
	return nil
}

// Top returns a copy of the table, best first.
func (b *Board) Top() []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}
