package desktop

import (
	"fmt"

	"github.com/tomz197/bouncer/internal/leaderboard"
	"github.com/tomz197/bouncer/internal/render"
)

// textOrigin returns the pixel position of a text element's top-left corner.
func textOrigin(el render.Element) (x, y int) {
	x, y = int(el.X), int(el.Y)
	if el.Anchor == render.AnchorCenter {
		x -= len(el.Text) * glyphWidth / 2
	} else {
		x += 8
		y += 4
	}
	return x, y
}

func leaderboardLines(entries []leaderboard.Entry) []string {
	if len(entries) == 0 {
		return nil
	}
	lines := []string{"Best scores"}
	for i, e := range entries {
		lines = append(lines, fmt.Sprintf("%d. %s  %d", i+1, e.Name, e.Score))
	}
	return lines
}
