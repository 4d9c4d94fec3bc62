// Package desktop runs a game session in an Ebitengine window.
package desktop

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/bouncer/internal/game"
	"github.com/tomz197/bouncer/internal/loop/server"
	"github.com/tomz197/bouncer/internal/render"
)

// Debug font cell size used by ebitenutil.DebugPrintAt.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

var (
	backgroundColor = color.RGBA{R: 229, G: 231, B: 235, A: 255}
	ballColor       = color.RGBA{R: 34, G: 197, B: 94, A: 255}
	obstacleColor   = color.RGBA{R: 239, G: 68, B: 68, A: 255}
	buttonColor     = color.RGBA{R: 59, G: 130, B: 246, A: 255}
)

// Game adapts a session to the ebiten.Game interface.
// Ebiten only forwards keys and draws; the session keeps its own tick.
type Game struct {
	server server.GameServer
	width  int
	height int
}

// Compile-time check that Game implements ebiten.Game.
var _ ebiten.Game = (*Game)(nil)

// New creates a window front end for the session.
func New(gs server.GameServer) *Game {
	snap := gs.GetSnapshot()
	return &Game{
		server: gs,
		width:  int(snap.Width),
		height: int(snap.Height),
	}
}

// Update forwards key presses to the session.
// Returns ebiten.Termination when the player presses Escape.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.server.SendKey(game.KeyLeft)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.server.SendKey(game.KeyRight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.server.Restart()
	}
	return nil
}

// Draw renders the latest session snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	snap := g.server.GetSnapshot()
	for _, el := range render.Frame(snap) {
		switch el.Kind {
		case render.KindCircle:
			r := float32(el.W / 2)
			vector.FillCircle(screen, float32(el.X)+r, float32(el.Y)+r, r, ballColor, true)
		case render.KindRect:
			vector.FillRect(screen, float32(el.X), float32(el.Y), float32(el.W), float32(el.H), obstacleColor, true)
		case render.KindText:
			x, y := textOrigin(el)
			if el.Style == render.StyleButton {
				w := float32(len(el.Text)*glyphWidth + 16)
				vector.FillRect(screen, float32(x-8), float32(y-4), w, glyphHeight+8, buttonColor, true)
			}
			ebitenutil.DebugPrintAt(screen, el.Text, x, y)
		}
	}

	if snap.GameOver() {
		g.drawLeaderboard(screen, int(snap.Height/2)+80)
	}
}

// drawLeaderboard lists the best scores under the game-over panel.
func (g *Game) drawLeaderboard(screen *ebiten.Image, y int) {
	for _, line := range leaderboardLines(g.server.TopScores()) {
		x, _ := textOrigin(render.Element{X: float64(g.width) / 2, Text: line, Anchor: render.AnchorCenter})
		ebitenutil.DebugPrintAt(screen, line, x, y)
		y += glyphHeight
	}
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it is closed.
func Run(gs server.GameServer, title string) error {
	g := New(gs)
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(title)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
