package client

import (
	"fmt"
	"unicode/utf8"

	"github.com/tomz197/bouncer/internal/config"
	"github.com/tomz197/bouncer/internal/draw"
	"github.com/tomz197/bouncer/internal/game"
	"github.com/tomz197/bouncer/internal/leaderboard"
	"github.com/tomz197/bouncer/internal/render"
)

const controlsHint = "←/→ or A/D move   R restart   Q quit"

// inkFor maps shape styles to canvas colors.
func inkFor(style render.Style) draw.Ink {
	switch style {
	case render.StyleBall:
		return draw.InkGreen
	case render.StyleObstacle:
		return draw.InkRed
	default:
		return draw.InkWhite
	}
}

// textColor maps text styles to ANSI attributes.
func textColor(style render.Style) string {
	switch style {
	case render.StyleTitle:
		return draw.ColorBold
	case render.StyleButton:
		return draw.ColorBrightCyan
	default:
		return ""
	}
}

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	cw := c.chunkWriter
	snap := c.server.GetSnapshot()

	// Overlays differ between screens, so a screen change wipes the terminal.
	// Within a screen only changed cells are sent.
	if snap.Phase != c.state.prevPhase ||
		c.state.isInactive != c.state.wasInactive ||
		c.state.ShuttingDown != c.state.wasShuttingDown {
		cw.WriteString("\033[H\033[2J")
		c.canvas.ForceRedraw()
		c.state.prevPhase = snap.Phase
		c.state.wasInactive = c.state.isInactive
		c.state.wasShuttingDown = c.state.ShuttingDown
	}

	c.canvas.Clear()
	elems := render.Frame(snap)

	// Shapes go to the canvas first so text lands on top
	for _, el := range elems {
		switch el.Kind {
		case render.KindCircle:
			c.canvas.FillCircle(el.X+el.W/2, el.Y+el.H/2, el.W/2, inkFor(el.Style))
		case render.KindRect:
			c.canvas.FillRect(el.X, el.Y, el.W, el.H, inkFor(el.Style))
		}
	}
	c.canvas.Render(cw)
	c.canvas.RenderBorder(cw)

	for _, el := range elems {
		if el.Kind == render.KindText {
			c.drawText(el)
		}
	}

	c.drawUI(snap)

	return cw.Flush()
}

// drawText places a text element over the canvas.
func (c *Client) drawText(el render.Element) {
	col, row := c.canvas.LogicalToTerminal(el.X, el.Y)
	c.writeText(col, row, el.Text, el.Anchor, textColor(el.Style))
}

// writeText writes s at a canvas cell, clipped to the render area.
func (c *Client) writeText(col, row int, s string, anchor render.Anchor, color string) {
	width := utf8.RuneCountInString(s)
	if anchor == render.AnchorCenter {
		col -= width / 2
	} else {
		col++ // Keep left-aligned text off the border
	}
	if row < 1 || row > c.canvas.TerminalHeight() {
		return
	}
	if col < 1 {
		col = 1
	}
	// Text is not part of the canvas; repaint these cells next frame
	c.canvas.MarkTextDirty(col, row, width)

	if color != "" {
		c.chunkWriter.WriteAt(col, row, color+s+draw.ColorReset)
		return
	}
	c.chunkWriter.WriteAt(col, row, s)
}

// drawUI draws overlays that are not part of the playfield.
func (c *Client) drawUI(snap *game.Snapshot) {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if c.state.ShuttingDown {
		c.drawShutdownScreen(centerX, centerY)
		return
	}

	if c.state.isInactive {
		c.drawInactivityScreen(centerX, centerY)
		return
	}

	c.writeText(centerX, termHeight, controlsHint, render.AnchorCenter, "")

	if snap.GameOver() {
		_, row := c.canvas.LogicalToTerminal(0, snap.Height/2+80)
		c.drawLeaderboard(centerX, row, c.server.TopScores())
	}
}

// drawLeaderboard lists the best scores starting at row.
func (c *Client) drawLeaderboard(centerX, row int, entries []leaderboard.Entry) {
	if len(entries) == 0 {
		return
	}
	c.writeText(centerX, row, "Best scores", render.AnchorCenter, draw.ColorBold)
	for i, e := range entries {
		name := e.Name
		if utf8.RuneCountInString(name) > config.MaxUsernameLength {
			name = string([]rune(name)[:config.MaxUsernameLength])
		}
		line := fmt.Sprintf("%d. %-*s %8d", i+1, config.MaxUsernameLength, name, e.Score)
		c.writeText(centerX, row+1+i, line, render.AnchorCenter, "")
	}
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerX, centerY int) {
	remaining := int(config.InactivityDisconnectUser - c.now().Sub(c.lastInput).Seconds())
	c.writeText(centerX, centerY-2, "INACTIVITY WARNING", render.AnchorCenter, draw.ColorBold)
	c.writeText(centerX, centerY, fmt.Sprintf("You will be disconnected in %d seconds.", remaining), render.AnchorCenter, "")
	c.writeText(centerX, centerY+2, "Press any key to continue", render.AnchorCenter, "")
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen(centerX, centerY int) {
	c.writeText(centerX, centerY-3, "SERVER SHUTTING DOWN", render.AnchorCenter, draw.ColorBold)
	c.writeText(centerX, centerY-1, "The server is restarting for maintenance.", render.AnchorCenter, "")
	c.writeText(centerX, centerY, "Please reconnect in a moment.", render.AnchorCenter, "")
	remaining := int(c.state.shutdownTimer) + 1
	c.writeText(centerX, centerY+2, fmt.Sprintf("Disconnecting in %d seconds...", remaining), render.AnchorCenter, "")
	c.writeText(centerX, centerY+4, "Press Q to disconnect now", render.AnchorCenter, "")
}
