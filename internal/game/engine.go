package game

import (
	"math/rand/v2"
	"time"

	"github.com/tomz197/bouncer/internal/config"
	"github.com/tomz197/bouncer/internal/physics"
)

// Rand supplies uniform values in [0, 1).
// *rand.Rand from math/rand and math/rand/v2 both satisfy it.
type Rand interface {
	Float64() float64
}

// Engine owns all mutable simulation state.
// It is not safe for concurrent use; a single goroutine must drive it.
type Engine struct {
	cfg config.Game
	rng Rand

	ball      Vec
	velocity  Vec
	obstacles []Obstacle
	score     int
	phase     Phase
}

// New creates an engine in PhaseRunning with the configured seed obstacles.
// A nil rng selects a time-seeded PCG source.
func New(cfg config.Game, rng Rand) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}

	e := &Engine{cfg: cfg, rng: rng}
	e.reset()
	return e, nil
}

// reset puts every piece of round state back to its initial value.
func (e *Engine) reset() {
	e.ball = vecFrom(e.cfg.BallStart)
	e.velocity = Vec{}
	e.obstacles = e.obstacles[:0]
	for _, p := range e.cfg.ObstacleSeed {
		e.obstacles = append(e.obstacles, Obstacle{Pos: vecFrom(p)})
	}
	e.score = 0
	e.phase = PhaseRunning
}

// Phase returns the current round state.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Tick advances the simulation by one step. It is a no-op after game over.
// A tick that starts running always scores, including the one that collides.
func (e *Engine) Tick() {
	if e.phase == PhaseGameOver {
		return
	}

	e.moveBall()
	e.advanceObstacles()
	e.checkCollisions()
	e.score++
}

// moveBall applies velocity and reflects horizontally at the walls.
// The reflected velocity takes effect on the next tick.
func (e *Engine) moveBall() {
	if e.phase == PhaseGameOver {
		return
	}
	next := e.ball.Add(e.velocity)
	if physics.Outside(next.X, 0, e.cfg.Width) {
		e.velocity.X = -e.velocity.X
		if e.cfg.ClampBall {
			next.X = physics.Clamp(next.X, 0, e.cfg.Width)
		}
	}
	e.ball = next
}

// advanceObstacles moves obstacles down, drops those past the bottom edge,
// and maybe spawns one new obstacle at the top.
func (e *Engine) advanceObstacles() {
	if e.phase == PhaseGameOver {
		return
	}
	kept := e.obstacles[:0]
	for _, o := range e.obstacles {
		o.Pos.Y += e.cfg.ObstacleSpeed
		if o.Pos.Y < e.cfg.Height {
			kept = append(kept, o)
		}
	}
	e.obstacles = kept

	if e.rng.Float64() < e.cfg.SpawnChance {
		x := e.rng.Float64() * (e.cfg.Width - e.cfg.ObstacleWidth)
		e.obstacles = append(e.obstacles, Obstacle{Pos: Vec{X: x, Y: 0}})
	}
}

func (e *Engine) checkCollisions() {
	if e.phase == PhaseGameOver {
		return
	}
	for _, o := range e.obstacles {
		box := physics.Rect{X: o.Pos.X, Y: o.Pos.Y, W: e.cfg.ObstacleWidth, H: e.cfg.ObstacleHeight}
		if physics.CircleHitsRect(e.ball.X, e.ball.Y, e.cfg.BallRadius, box) {
			e.phase = PhaseGameOver
		}
	}
}

// HandleKey sets the ball velocity from an arrow key.
// Keys are ignored after game over. Reports whether the velocity changed.
func (e *Engine) HandleKey(k Key) bool {
	if e.phase == PhaseGameOver {
		return false
	}

	var v Vec
	switch k {
	case KeyLeft:
		v = Vec{X: -e.cfg.KeyStep}
	case KeyRight:
		v = Vec{X: e.cfg.KeyStep}
	default:
		return false
	}

	changed := v != e.velocity
	e.velocity = v
	return changed
}

// Restart begins a fresh round. It only acts in PhaseGameOver and returns
// false without touching state otherwise, so repeated calls are harmless.
func (e *Engine) Restart() bool {
	if e.phase != PhaseGameOver {
		return false
	}
	e.reset()
	return true
}

// Snapshot copies the current state.
func (e *Engine) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(e.obstacles))
	copy(obstacles, e.obstacles)

	return Snapshot{
		Ball:       e.ball,
		BallRadius: e.cfg.BallRadius,
		Velocity:   e.velocity,
		Obstacles:  obstacles,
		ObstacleW:  e.cfg.ObstacleWidth,
		ObstacleH:  e.cfg.ObstacleHeight,
		Score:      e.score,
		Phase:      e.phase,
		Width:      e.cfg.Width,
		Height:     e.cfg.Height,
	}
}
