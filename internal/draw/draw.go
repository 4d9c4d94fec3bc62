// Package draw renders to ANSI terminals: a scaled half-block canvas for
// shapes and a chunked writer for text overlays.
package draw

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Ink is a canvas pixel color. InkNone means the pixel is unset.
type Ink uint8

const (
	InkNone Ink = iota
	InkGreen
	InkRed
	InkWhite

	inkStale Ink = 0xff // Marks a cell that must be repainted
)

// ANSI SGR sequences.
const (
	ColorReset      = "\033[0m"
	ColorBold       = "\033[1m"
	ColorBrightCyan = "\033[96m"
)

// fgCodes maps inks to ANSI foreground SGR sequences.
var fgCodes = [...]string{
	InkNone:  "\033[39m",
	InkGreen: "\033[92m",
	InkRed:   "\033[91m",
	InkWhite: "\033[97m",
}

// bgCodes maps inks to ANSI background SGR sequences.
var bgCodes = [...]string{
	InkNone:  "\033[49m",
	InkGreen: "\033[102m",
	InkRed:   "\033[101m",
	InkWhite: "\033[107m",
}

// Fg returns the foreground escape for an ink.
func Fg(ink Ink) string {
	if int(ink) >= len(fgCodes) {
		return fgCodes[InkNone]
	}
	return fgCodes[ink]
}

// Bg returns the background escape for an ink.
func Bg(ink Ink) string {
	if int(ink) >= len(bgCodes) {
		return bgCodes[InkNone]
	}
	return bgCodes[ink]
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// FixedTermSize returns a TermSizeFunc that always reports the given size.
func FixedTermSize(width, height int) TermSizeFunc {
	return func() (int, int, error) {
		return width, height, nil
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
