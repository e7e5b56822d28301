package main

import (
	"testing"
	"time"
)

func testStyle() *Style {
	st, _ := DefaultConfig().Style()
	return &st
}

func newTestDisplay() *ClockDisplay {
	return NewClockDisplay(testStyle(), true)
}

func at(h, m, s int) time.Time {
	return time.Date(2024, 3, 15, h, m, s, 0, time.Local)
}

func settleDisplay(d *ClockDisplay) {
	for d.Advance(time.Second) {
	}
}

func TestExtractDigits(t *testing.T) {
	if got, want := extractDigits(at(12, 34, 56), true), [displayDigits]int{1, 2, 3, 4, 5, 6}; got != want {
		t.Errorf("extractDigits(12:34:56) = %v, want %v", got, want)
	}
	if got, want := extractDigits(at(23, 0, 9), true), [displayDigits]int{2, 3, 0, 0, 0, 9}; got != want {
		t.Errorf("extractDigits(23:00:09) = %v, want %v", got, want)
	}
}

func TestExtractDigits12Hour(t *testing.T) {
	// Midnight shows 12, afternoon hours wrap.
	if got, want := extractDigits(at(0, 5, 0), false), [displayDigits]int{1, 2, 0, 5, 0, 0}; got != want {
		t.Errorf("extractDigits(00:05:00, 12h) = %v, want %v", got, want)
	}
	if got, want := extractDigits(at(13, 5, 0), false), [displayDigits]int{0, 1, 0, 5, 0, 0}; got != want {
		t.Errorf("extractDigits(13:05:00, 12h) = %v, want %v", got, want)
	}
	if got, want := extractDigits(at(12, 0, 0), false), [displayDigits]int{1, 2, 0, 0, 0, 0}; got != want {
		t.Errorf("extractDigits(12:00:00, 12h) = %v, want %v", got, want)
	}
}

func TestTickRetargetsOnlyChangedGrids(t *testing.T) {
	d := newTestDisplay()
	d.ApplyImmediate(at(12, 34, 59))

	// 12:34:59 -> 12:35:00 changes minutes-units, seconds-tens and
	// seconds-units; hours and minutes-tens stay put.
	d.Tick(at(12, 35, 0))

	wantAnimating := [displayDigits]bool{false, false, false, true, true, true}
	for i, want := range wantAnimating {
		if got := d.grids[i].Animating(); got != want {
			t.Errorf("grid %d animating = %v, want %v", i, got, want)
		}
	}
}

func TestTickSecondDigitTransition(t *testing.T) {
	d := newTestDisplay()
	d.ApplyImmediate(at(12, 34, 55))
	d.Tick(at(12, 34, 56))

	// Only the seconds-units grid changed (5 -> 6); within it, exactly the
	// cells whose target angles differ between the two patterns animate.
	for i := 0; i < displayDigits-1; i++ {
		if d.grids[i].Animating() {
			t.Errorf("grid %d animating on an unchanged digit", i)
		}
	}
	g := d.grids[displayDigits-1]
	five, six := PatternFor(5), PatternFor(6)
	for row := 0; row < gridRows; row++ {
		for col := 0; col < gridCols; col++ {
			changed := five[row][col] != six[row][col]
			if got := g.faces[row][col].Animating(); got != changed {
				t.Errorf("seconds-units cell (%d,%d) animating = %v, want %v", row, col, got, changed)
			}
		}
	}
}

func TestTickIdempotentWithinSameSecond(t *testing.T) {
	d := newTestDisplay()
	d.ApplyImmediate(at(8, 15, 30))
	d.Tick(at(8, 15, 30))
	if d.Animating() {
		t.Error("tick with unchanged time started animations")
	}
}

func TestHourRollover(t *testing.T) {
	d := newTestDisplay()
	d.ApplyImmediate(at(23, 59, 59))
	d.Tick(at(0, 0, 0))
	settleDisplay(d)

	if got, want := d.digits, [displayDigits]int{0, 0, 0, 0, 0, 0}; got != want {
		t.Errorf("digits after midnight rollover = %v, want %v", got, want)
	}
}

func TestSetStyleKeepsAnimationsInFlight(t *testing.T) {
	d := newTestDisplay()
	d.ApplyImmediate(at(10, 20, 30))
	d.Tick(at(10, 20, 31))
	if !d.Animating() {
		t.Fatal("expected an in-flight transition")
	}

	st, _ := DefaultConfig().Style()
	st.HandActive = RGBA{R: 0, G: 1, B: 0, A: 1}
	d.SetStyle(&st)

	// The style swap must not disturb animator state.
	if !d.Animating() {
		t.Error("style swap cancelled in-flight animations")
	}
	settleDisplay(d)
	if d.Animating() {
		t.Error("display failed to settle after style swap")
	}
}

func TestTimeString(t *testing.T) {
	d := newTestDisplay()
	if got := d.TimeString(at(7, 8, 9)); got != "07:08:09" {
		t.Errorf("TimeString = %q, want 07:08:09", got)
	}
	d.SetUse24Hour(false)
	if got := d.TimeString(at(13, 8, 9)); got != "01:08:09" {
		t.Errorf("TimeString 12h = %q, want 01:08:09", got)
	}
}

func TestPixelSizePositive(t *testing.T) {
	d := newTestDisplay()
	w, h := d.PixelSize()
	if w <= 0 || h <= 0 {
		t.Errorf("PixelSize = (%d, %d)", w, h)
	}
}
