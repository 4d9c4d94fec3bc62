// Package game implements the bouncing-ball simulation: one ball steered
// left and right, obstacles falling from the top, and a collision that
// ends the round.
package game

import "github.com/tomz197/bouncer/internal/config"

// Phase is the state of a round.
type Phase int

const (
	PhaseRunning  Phase = iota // Simulation advances every tick
	PhaseGameOver              // Frozen until Restart
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Vec is a position or a per-tick displacement in logical units.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

func vecFrom(p config.Point) Vec {
	return Vec{X: p.X, Y: p.Y}
}

// Obstacle is a falling rectangle identified by its top-left corner.
type Obstacle struct {
	Pos Vec
}

// Key is an input event the engine understands.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
)

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "ArrowLeft"
	case KeyRight:
		return "ArrowRight"
	default:
		return "none"
	}
}

// Snapshot is an immutable copy of the simulation for rendering.
// Nothing in it aliases engine memory.
type Snapshot struct {
	Ball       Vec
	BallRadius float64
	Velocity   Vec
	Obstacles  []Obstacle
	ObstacleW  float64
	ObstacleH  float64
	Score      int
	Phase      Phase
	Width      float64
	Height     float64
}

// GameOver reports whether the snapshot was taken after a collision.
func (s *Snapshot) GameOver() bool {
	return s.Phase == PhaseGameOver
}
