package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/bouncer/internal/config"
)

// fakeRand replays values, then keeps returning fallback.
type fakeRand struct {
	values   []float64
	fallback float64
}

func (r *fakeRand) Float64() float64 {
	if len(r.values) == 0 {
		return r.fallback
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v
}

// neverSpawn keeps the obstacle list under the test's control.
func neverSpawn() *fakeRand {
	return &fakeRand{fallback: 0.99}
}

func emptyField() config.Game {
	cfg := config.DefaultGame()
	cfg.ObstacleSeed = nil
	return cfg
}

func newEngine(t *testing.T, cfg config.Game, rng Rand) *Engine {
	t.Helper()
	e, err := New(cfg, rng)
	require.NoError(t, err)
	return e
}

func TestNewInitialState(t *testing.T) {
	e := newEngine(t, config.DefaultGame(), neverSpawn())
	s := e.Snapshot()

	assert.Equal(t, PhaseRunning, s.Phase)
	assert.Equal(t, Vec{X: 400, Y: 550}, s.Ball)
	assert.Equal(t, Vec{}, s.Velocity)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, []Obstacle{
		{Pos: Vec{X: 200, Y: 0}},
		{Pos: Vec{X: 400, Y: -100}},
		{Pos: Vec{X: 600, Y: -200}},
	}, s.Obstacles)
}

func TestNewRejectsDegenerateGeometry(t *testing.T) {
	cfg := config.DefaultGame()
	cfg.BallRadius = 0

	_, err := New(cfg, nil)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestNewDefaultRand(t *testing.T) {
	e, err := New(config.DefaultGame(), nil)
	require.NoError(t, err)
	e.Tick()
	assert.Equal(t, 1, e.Score())
}

func TestScoreIncrementsEveryRunningTick(t *testing.T) {
	e := newEngine(t, emptyField(), neverSpawn())

	for i := 1; i <= 50; i++ {
		before := e.Score()
		e.Tick()
		require.Equal(t, PhaseRunning, e.Phase())
		assert.Equal(t, before+1, e.Score())
	}
}

func TestAtMostOneObstacleAddedPerTick(t *testing.T) {
	// 0 spawns on every tick at x=0, well clear of the ball
	e := newEngine(t, config.DefaultGame(), &fakeRand{fallback: 0})

	for i := 0; i < 300 && e.Phase() == PhaseRunning; i++ {
		before := len(e.obstacles)
		e.Tick()
		assert.LessOrEqual(t, len(e.obstacles), before+1)
	}
}

func TestSpawnedObstacleStartsAtTopWithinBounds(t *testing.T) {
	cfg := emptyField()
	// First value passes the spawn roll, second picks the largest x
	e := newEngine(t, cfg, &fakeRand{values: []float64{0.01, 0.999999}, fallback: 0.99})

	e.Tick()
	require.Len(t, e.obstacles, 1)
	o := e.obstacles[0]
	assert.Equal(t, 0.0, o.Pos.Y)
	assert.GreaterOrEqual(t, o.Pos.X, 0.0)
	assert.Less(t, o.Pos.X, cfg.Width-cfg.ObstacleWidth)
}

func TestSpawnRollAtChanceDoesNotSpawn(t *testing.T) {
	e := newEngine(t, emptyField(), &fakeRand{fallback: 0.02})
	e.Tick()
	assert.Empty(t, e.obstacles)
}

func TestObstaclesFallAndArePruned(t *testing.T) {
	cfg := emptyField()
	cfg.ObstacleSeed = []config.Point{{X: 0, Y: 597}, {X: 0, Y: 590}, {X: 700, Y: -50}}
	e := newEngine(t, cfg, neverSpawn())

	e.Tick()

	assert.Equal(t, []Obstacle{
		{Pos: Vec{X: 0, Y: 593}},
		{Pos: Vec{X: 700, Y: -47}},
	}, e.obstacles)
	for _, o := range e.obstacles {
		assert.Less(t, o.Pos.Y, cfg.Height)
	}
}

func TestBallReflectsAtRightWallWithoutClamp(t *testing.T) {
	e := newEngine(t, emptyField(), neverSpawn())
	e.ball = Vec{X: 795, Y: 550}
	e.velocity = Vec{X: 10}

	e.Tick()
	assert.Equal(t, 805.0, e.ball.X, "position is committed unclamped for one frame")
	assert.Equal(t, -10.0, e.velocity.X)

	e.Tick()
	assert.Equal(t, 795.0, e.ball.X)
	assert.Equal(t, -10.0, e.velocity.X)
}

func TestBallReflectsAtRightWallWithClamp(t *testing.T) {
	cfg := emptyField()
	cfg.ClampBall = true
	e := newEngine(t, cfg, neverSpawn())
	e.ball = Vec{X: 795, Y: 550}
	e.velocity = Vec{X: 10}

	e.Tick()
	assert.Equal(t, 800.0, e.ball.X)
	assert.Equal(t, -10.0, e.velocity.X)
}

func TestBallReflectsAtLeftWall(t *testing.T) {
	e := newEngine(t, emptyField(), neverSpawn())
	e.ball = Vec{X: 5, Y: 550}
	e.velocity = Vec{X: -10}

	e.Tick()
	assert.Equal(t, -5.0, e.ball.X)
	assert.Equal(t, 10.0, e.velocity.X)
}

func TestBallOnBoundaryDoesNotReflect(t *testing.T) {
	e := newEngine(t, emptyField(), neverSpawn())
	e.ball = Vec{X: 790, Y: 550}
	e.velocity = Vec{X: 10}

	e.Tick()
	assert.Equal(t, 800.0, e.ball.X)
	assert.Equal(t, 10.0, e.velocity.X)
}

func TestVerticalVelocityIsNeverReflected(t *testing.T) {
	e := newEngine(t, emptyField(), neverSpawn())
	e.velocity = Vec{X: 10, Y: 2}

	for i := 0; i < 200; i++ {
		e.Tick()
		require.Equal(t, 2.0, e.velocity.Y)
	}
	assert.Equal(t, 550.0+2*200, e.ball.Y, "no vertical bounds")
}

func TestVelocityFlipsExactlyWhenOutOfBounds(t *testing.T) {
	e := newEngine(t, emptyField(), neverSpawn())
	e.velocity = Vec{X: 7}

	for i := 0; i < 500; i++ {
		before := e.velocity.X
		next := e.ball.X + before
		e.Tick()
		outside := next < 0 || next > 800
		assert.Equal(t, outside, e.velocity.X == -before, "tick %d at x=%g", i, next)
	}
}

func TestCollisionEndsRound(t *testing.T) {
	cfg := emptyField()
	// Ball bottom edge is at 570; after one tick the obstacle spans y 553..573
	cfg.ObstacleSeed = []config.Point{{X: 360, Y: 550}}
	e := newEngine(t, cfg, neverSpawn())

	e.Tick()
	assert.Equal(t, PhaseGameOver, e.Phase())
	assert.Equal(t, 1, e.Score(), "the colliding tick still scores")
}

func TestNearMissKeepsRunning(t *testing.T) {
	cfg := emptyField()
	// Obstacle right edge at 380 touches the ball's left edge without overlapping
	cfg.ObstacleSeed = []config.Point{{X: 300, Y: 540}}
	e := newEngine(t, cfg, neverSpawn())

	e.Tick()
	assert.Equal(t, PhaseRunning, e.Phase())
}

func TestMultipleOverlapsAreIdempotent(t *testing.T) {
	cfg := emptyField()
	cfg.ObstacleSeed = []config.Point{{X: 360, Y: 540}, {X: 370, Y: 545}}
	e := newEngine(t, cfg, neverSpawn())

	e.Tick()
	assert.Equal(t, PhaseGameOver, e.Phase())
	assert.Len(t, e.obstacles, 2)
}

func TestTickIsNoOpAfterGameOver(t *testing.T) {
	cfg := emptyField()
	cfg.ObstacleSeed = []config.Point{{X: 360, Y: 550}}
	e := newEngine(t, cfg, &fakeRand{fallback: 0})
	e.Tick()
	require.Equal(t, PhaseGameOver, e.Phase())

	before := e.Snapshot()
	for i := 0; i < 10; i++ {
		e.Tick()
	}
	assert.Equal(t, before, e.Snapshot())
}

func TestHandleKey(t *testing.T) {
	e := newEngine(t, emptyField(), neverSpawn())

	assert.True(t, e.HandleKey(KeyLeft))
	assert.Equal(t, Vec{X: -10}, e.velocity)

	assert.False(t, e.HandleKey(KeyLeft), "same direction is not a change")

	assert.True(t, e.HandleKey(KeyRight))
	assert.Equal(t, Vec{X: 10}, e.velocity)

	assert.False(t, e.HandleKey(KeyNone))
	assert.Equal(t, Vec{X: 10}, e.velocity)
}

func TestHandleKeyResetsVerticalComponent(t *testing.T) {
	e := newEngine(t, emptyField(), neverSpawn())
	e.velocity = Vec{X: 3, Y: 4}

	e.HandleKey(KeyLeft)
	assert.Equal(t, Vec{X: -10, Y: 0}, e.velocity)
}

func TestHandleKeyIgnoredAfterGameOver(t *testing.T) {
	e := newEngine(t, emptyField(), neverSpawn())
	e.phase = PhaseGameOver

	assert.False(t, e.HandleKey(KeyRight))
	assert.Equal(t, Vec{}, e.velocity)
}

func TestRestartFromGameOver(t *testing.T) {
	e := newEngine(t, config.DefaultGame(), neverSpawn())
	e.phase = PhaseGameOver
	e.score = 137
	e.ball = Vec{X: 123, Y: 456}
	e.velocity = Vec{X: -10}
	e.obstacles = []Obstacle{
		{Pos: Vec{X: 1, Y: 1}},
		{Pos: Vec{X: 2, Y: 2}},
		{Pos: Vec{X: 3, Y: 3}},
		{Pos: Vec{X: 4, Y: 4}},
		{Pos: Vec{X: 5, Y: 5}},
	}

	require.True(t, e.Restart())

	s := e.Snapshot()
	assert.Equal(t, Vec{X: 400, Y: 550}, s.Ball)
	assert.Equal(t, Vec{}, s.Velocity)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, PhaseRunning, s.Phase)
	assert.Equal(t, []Obstacle{
		{Pos: Vec{X: 200, Y: 0}},
		{Pos: Vec{X: 400, Y: -100}},
		{Pos: Vec{X: 600, Y: -200}},
	}, s.Obstacles)
}

func TestRestartTwiceIsHarmless(t *testing.T) {
	e := newEngine(t, config.DefaultGame(), neverSpawn())
	e.phase = PhaseGameOver
	e.score = 42

	require.True(t, e.Restart())
	e.HandleKey(KeyRight)
	e.Tick()
	afterFirst := e.Snapshot()

	assert.False(t, e.Restart(), "restart while running does nothing")
	assert.Equal(t, afterFirst, e.Snapshot())
}

func TestSnapshotDoesNotAlias(t *testing.T) {
	e := newEngine(t, config.DefaultGame(), neverSpawn())

	s := e.Snapshot()
	s.Obstacles[0].Pos.X = -999

	assert.Equal(t, 200.0, e.Snapshot().Obstacles[0].Pos.X)
}

func TestSeedIsNotMutatedByTicks(t *testing.T) {
	cfg := config.DefaultGame()
	e := newEngine(t, cfg, neverSpawn())
	for i := 0; i < 5; i++ {
		e.Tick()
	}
	assert.Equal(t, config.DefaultGame().ObstacleSeed, cfg.ObstacleSeed)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "running", PhaseRunning.String())
	assert.Equal(t, "game over", PhaseGameOver.String())
	assert.Equal(t, "ArrowLeft", KeyLeft.String())
	assert.Equal(t, "ArrowRight", KeyRight.String())
}
