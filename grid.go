package main

import (
	"time"

	"github.com/fogleman/gg"
)

// DigitGrid shows one digit as a 6x4 grid of 24 clock faces.
type DigitGrid struct {
	faces [gridRows][gridCols]*ClockFace
}

func newDigitGrid() *DigitGrid {
	g := &DigitGrid{}
	for row := 0; row < gridRows; row++ {
		for col := 0; col < gridCols; col++ {
			g.faces[row][col] = newClockFace()
		}
	}
	return g
}

// SetDigit retargets all 24 faces to the pattern for the given digit.
// Repeating the same digit is free: each face's retarget is a no-op once its
// angles match. A different digit arriving mid-transition retargets cleanly
// from the current interpolated angles.
func (g *DigitGrid) SetDigit(digit int, duration time.Duration) {
	pattern := PatternFor(digit)
	for row := 0; row < gridRows; row++ {
		for col := 0; col < gridCols; col++ {
			g.faces[row][col].Retarget(pattern[row][col], duration)
		}
	}
}

// SetDigitImmediate snaps all faces to the digit's pattern without
// animation. Used at startup and after a config reload.
func (g *DigitGrid) SetDigitImmediate(digit int) {
	pattern := PatternFor(digit)
	for row := 0; row < gridRows; row++ {
		for col := 0; col < gridCols; col++ {
			g.faces[row][col].SetImmediate(pattern[row][col])
		}
	}
}

// Advance steps every animating face by dt and reports whether any face is
// still animating.
func (g *DigitGrid) Advance(dt time.Duration) bool {
	animating := false
	for row := 0; row < gridRows; row++ {
		for col := 0; col < gridCols; col++ {
			if g.faces[row][col].Advance(dt) {
				animating = true
			}
		}
	}
	return animating
}

// Animating reports whether any face has a transition in flight.
func (g *DigitGrid) Animating() bool {
	for row := 0; row < gridRows; row++ {
		for col := 0; col < gridCols; col++ {
			if g.faces[row][col].Animating() {
				return true
			}
		}
	}
	return false
}

// Draw paints the grid with its top-left corner at (x, y).
func (g *DigitGrid) Draw(dc *gg.Context, x, y float64, st *Style) {
	size := float64(st.ClockSize)
	step := size + float64(st.ClockGap)
	for row := 0; row < gridRows; row++ {
		for col := 0; col < gridCols; col++ {
			cx := x + float64(col)*step + size/2
			cy := y + float64(row)*step + size/2
			g.faces[row][col].Draw(dc, cx, cy, st)
		}
	}
}

func digitGridWidth(st *Style) float64 {
	return float64(gridCols*st.ClockSize + (gridCols-1)*st.ClockGap)
}

func digitGridHeight(st *Style) float64 {
	return float64(gridRows*st.ClockSize + (gridRows-1)*st.ClockGap)
}
