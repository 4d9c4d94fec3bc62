package leaderboard

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(sec int) time.Time {
	return time.Unix(int64(sec), 0)
}

func names(entries []Entry) []string {
	var out []string
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func TestBoardOrdersAndTrims(t *testing.T) {
	ctx := context.Background()
	b := NewBoard(3)

	require.NoError(t, b.SubmitScore(ctx, Entry{Name: "ann", Score: 10, At: at(1)}))
	require.NoError(t, b.SubmitScore(ctx, Entry{Name: "bob", Score: 30, At: at(2)}))
	require.NoError(t, b.SubmitScore(ctx, Entry{Name: "cat", Score: 20, At: at(3)}))
	require.NoError(t, b.SubmitScore(ctx, Entry{Name: "dan", Score: 5, At: at(4)}))

	assert.Equal(t, []string{"bob", "cat", "ann"}, names(b.Top()))
}

func TestBoardKeepsBestPerName(t *testing.T) {
	ctx := context.Background()
	b := NewBoard(5)

	require.NoError(t, b.SubmitScore(ctx, Entry{Name: "ann", Score: 50, At: at(1)}))
	require.NoError(t, b.SubmitScore(ctx, Entry{Name: "ann", Score: 20, At: at(2)}))
	assert.Equal(t, []Entry{{Name: "ann", Score: 50, At: at(1)}}, b.Top())

	require.NoError(t, b.SubmitScore(ctx, Entry{Name: "ann", Score: 70, At: at(3)}))
	assert.Equal(t, []Entry{{Name: "ann", Score: 70, At: at(3)}}, b.Top())
}

func TestBoardTiesFavorEarlier(t *testing.T) {
	ctx := context.Background()
	b := NewBoard(5)

	require.NoError(t, b.SubmitScore(ctx, Entry{Name: "late", Score: 10, At: at(9)}))
	require.NoError(t, b.SubmitScore(ctx, Entry{Name: "early", Score: 10, At: at(1)}))

	assert.Equal(t, []string{"early", "late"}, names(b.Top()))
}

func TestBoardRejectsEmptyName(t *testing.T) {
	b := NewBoard(5)
	err := b.SubmitScore(context.Background(), Entry{Score: 10})
	require.ErrorIs(t, err, ErrEmptyName)
	assert.Empty(t, b.Top())
}

func TestBoardHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := NewBoard(5)
	require.ErrorIs(t, b.SubmitScore(ctx, Entry{Name: "ann", Score: 1}), context.Canceled)
	assert.Empty(t, b.Top())
}

func TestBoardTopIsACopy(t *testing.T) {
	b := NewBoard(5)
	require.NoError(t, b.SubmitScore(context.Background(), Entry{Name: "ann", Score: 1}))

	top := b.Top()
	top[0].Score = 999
	assert.Equal(t, 1, b.Top()[0].Score)
}

func TestBoardConcurrentSubmits(t *testing.T) {
	ctx := context.Background()
	b := NewBoard(10)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = b.SubmitScore(ctx, Entry{Name: fmt.Sprintf("p%d", i), Score: i, At: at(i)})
		}(i)
	}
	wg.Wait()

	top := b.Top()
	require.Len(t, top, 10)
	assert.Equal(t, 49, top[0].Score)
	assert.Equal(t, 40, top[9].Score)
}
