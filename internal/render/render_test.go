package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/bouncer/internal/config"
	"github.com/tomz197/bouncer/internal/game"
)

func TestBall(t *testing.T) {
	got := Ball(game.Vec{X: 400, Y: 550}, 20)
	assert.Equal(t, Element{Kind: KindCircle, X: 380, Y: 530, W: 40, H: 40, Style: StyleBall}, got)
}

func TestObstacle(t *testing.T) {
	got := Obstacle(game.Vec{X: 200, Y: -100}, 80, 20)
	assert.Equal(t, Element{Kind: KindRect, X: 200, Y: -100, W: 80, H: 20, Style: StyleObstacle}, got)
}

func TestScore(t *testing.T) {
	assert.Equal(t, "Score: 0", Score(0).Text)
	assert.Equal(t, "Score: 137", Score(137).Text)
	assert.Equal(t, Score(5), Score(5))
}

func TestFrameRunning(t *testing.T) {
	e, err := game.New(config.DefaultGame(), nil)
	require.NoError(t, err)
	s := e.Snapshot()

	got := Frame(&s)
	want := []Element{
		{Kind: KindText, X: 400, Text: Title, Anchor: AnchorCenter, Style: StyleTitle},
		{Kind: KindText, Text: "Score: 0", Style: StyleText},
		{Kind: KindRect, X: 200, Y: 0, W: 80, H: 20, Style: StyleObstacle},
		{Kind: KindRect, X: 400, Y: -100, W: 80, H: 20, Style: StyleObstacle},
		{Kind: KindRect, X: 600, Y: -200, W: 80, H: 20, Style: StyleObstacle},
		{Kind: KindCircle, X: 380, Y: 530, W: 40, H: 40, Style: StyleBall},
	}
	assert.Equal(t, want, got)
	assert.Equal(t, got, Frame(&s), "same snapshot renders the same frame")
}

func TestFrameGameOverHidesBall(t *testing.T) {
	s := game.Snapshot{
		Ball:       game.Vec{X: 400, Y: 550},
		BallRadius: 20,
		Obstacles:  []game.Obstacle{{Pos: game.Vec{X: 390, Y: 540}}},
		ObstacleW:  80,
		ObstacleH:  20,
		Score:      42,
		Phase:      game.PhaseGameOver,
		Width:      800,
		Height:     600,
	}

	got := Frame(&s)
	for _, el := range got {
		assert.NotEqual(t, KindCircle, el.Kind)
	}

	var texts []string
	for _, el := range got {
		if el.Kind == KindText {
			texts = append(texts, el.Text)
		}
	}
	assert.Equal(t, []string{Title, "Score: 42", "Game Over", "Your Score: 42", RestartHint}, texts)
}
