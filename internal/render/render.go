// Package render maps simulation values to positioned screen elements.
// Every function here is pure: the same inputs always give the same elements,
// so front ends can draw them however they like and tests can compare them.
package render

import (
	"fmt"

	"github.com/tomz197/bouncer/internal/game"
)

// Kind identifies what an Element draws.
type Kind int

const (
	KindCircle Kind = iota
	KindRect
	KindText
)

// Anchor says how a text element is placed relative to its X coordinate.
type Anchor int

const (
	AnchorLeft Anchor = iota
	AnchorCenter
)

// Element is one drawable item in logical playfield units.
// X and Y are the top-left offset, like an absolutely positioned box.
type Element struct {
	Kind   Kind
	X, Y   float64
	W, H   float64
	Text   string
	Anchor Anchor
	Style  Style
}

// Style is a semantic color role; front ends pick the actual colors.
type Style int

const (
	StyleBall Style = iota
	StyleObstacle
	StyleText
	StyleTitle
	StyleButton
)

// Title is shown above the playfield.
const Title = "Bouncing Ball Game"

// RestartHint labels the restart control.
const RestartHint = "[ Restart ]  press R"

// Ball draws a circle given its center and radius.
func Ball(center game.Vec, radius float64) Element {
	return Element{
		Kind:  KindCircle,
		X:     center.X - radius,
		Y:     center.Y - radius,
		W:     2 * radius,
		H:     2 * radius,
		Style: StyleBall,
	}
}

// Obstacle draws a rectangle at its top-left corner.
func Obstacle(pos game.Vec, width, height float64) Element {
	return Element{
		Kind:  KindRect,
		X:     pos.X,
		Y:     pos.Y,
		W:     width,
		H:     height,
		Style: StyleObstacle,
	}
}

// Score draws the running score in the top-left corner.
func Score(score int) Element {
	return Element{
		Kind:  KindText,
		Text:  fmt.Sprintf("Score: %d", score),
		Style: StyleText,
	}
}

// GameOver draws the end-of-round panel centered horizontally at cx.
func GameOver(score int, cx, cy float64) []Element {
	return []Element{
		{Kind: KindText, X: cx, Y: cy - 40, Text: "Game Over", Anchor: AnchorCenter, Style: StyleTitle},
		{Kind: KindText, X: cx, Y: cy, Text: fmt.Sprintf("Your Score: %d", score), Anchor: AnchorCenter, Style: StyleText},
		{Kind: KindText, X: cx, Y: cy + 40, Text: RestartHint, Anchor: AnchorCenter, Style: StyleButton},
	}
}

// Frame draws a whole snapshot: title, score, obstacles, then the ball while
// running or the game-over panel once the round has ended.
func Frame(s *game.Snapshot) []Element {
	elems := make([]Element, 0, len(s.Obstacles)+5)
	elems = append(elems,
		Element{Kind: KindText, X: s.Width / 2, Text: Title, Anchor: AnchorCenter, Style: StyleTitle},
		Score(s.Score),
	)

	for _, o := range s.Obstacles {
		elems = append(elems, Obstacle(o.Pos, s.ObstacleW, s.ObstacleH))
	}

	if s.GameOver() {
		elems = append(elems, GameOver(s.Score, s.Width/2, s.Height/2)...)
	} else {
		elems = append(elems, Ball(s.Ball, s.BallRadius))
	}
	return elems
}
