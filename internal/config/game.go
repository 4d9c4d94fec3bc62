package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid game config")

// Point is a position in logical playfield units.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Game holds every tunable simulation parameter.
// The zero value is not usable; start from DefaultGame.
type Game struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	BallRadius float64 `yaml:"ball_radius"`
	BallStart  Point   `yaml:"ball_start"`
	KeyStep    float64 `yaml:"key_step"` // Horizontal speed set by an arrow key, units per tick

	// ClampBall pulls the ball back inside [0, Width] on the tick it overshoots.
	// Off by default: the ball is drawn past the edge for one frame.
	ClampBall bool `yaml:"clamp_ball"`

	ObstacleWidth  float64 `yaml:"obstacle_width"`
	ObstacleHeight float64 `yaml:"obstacle_height"`
	ObstacleSpeed  float64 `yaml:"obstacle_speed"` // Units per tick
	SpawnChance    float64 `yaml:"spawn_chance"`   // Probability of one new obstacle per tick
	ObstacleSeed   []Point `yaml:"obstacle_seed"`

	TickInterval time.Duration `yaml:"tick_interval"`
}

// DefaultGame returns the stock 800x600 configuration.
func DefaultGame() Game {
	return Game{
		Width:          800,
		Height:         600,
		BallRadius:     20,
		BallStart:      Point{X: 400, Y: 550},
		KeyStep:        10,
		ObstacleWidth:  80,
		ObstacleHeight: 20,
		ObstacleSpeed:  3,
		SpawnChance:    0.02,
		ObstacleSeed: []Point{
			{X: 200, Y: 0},
			{X: 400, Y: -100},
			{X: 600, Y: -200},
		},
		TickInterval: 16 * time.Millisecond,
	}
}

// LoadGame reads a YAML file and overlays it on DefaultGame.
// An empty path returns the defaults.
func LoadGame(path string) (Game, error) {
	cfg := DefaultGame()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Game{}, fmt.Errorf("read game config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Game{}, fmt.Errorf("parse game config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Game{}, err
	}
	return cfg, nil
}

// Validate rejects degenerate geometry and out-of-range rates.
func (g Game) Validate() error {
	switch {
	case g.Width <= 0 || g.Height <= 0:
		return fmt.Errorf("%w: playfield must be positive, got %gx%g", ErrInvalidConfig, g.Width, g.Height)
	case g.BallRadius <= 0:
		return fmt.Errorf("%w: ball radius must be positive, got %g", ErrInvalidConfig, g.BallRadius)
	case g.ObstacleWidth <= 0 || g.ObstacleHeight <= 0:
		return fmt.Errorf("%w: obstacle must be positive, got %gx%g", ErrInvalidConfig, g.ObstacleWidth, g.ObstacleHeight)
	case g.ObstacleWidth > g.Width:
		return fmt.Errorf("%w: obstacle width %g exceeds playfield width %g", ErrInvalidConfig, g.ObstacleWidth, g.Width)
	case g.SpawnChance < 0 || g.SpawnChance > 1:
		return fmt.Errorf("%w: spawn chance must be in [0,1], got %g", ErrInvalidConfig, g.SpawnChance)
	case g.TickInterval <= 0:
		return fmt.Errorf("%w: tick interval must be positive, got %s", ErrInvalidConfig, g.TickInterval)
	}
	return nil
}
