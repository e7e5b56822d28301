package main

import (
	"fmt"
	"time"

	"github.com/fogleman/gg"
)

// ClockDisplay is the full HH:MM:SS readout: six digit grids separated by
// two dotted separators, all drawn inside a rounded container.
type ClockDisplay struct {
	grids  [displayDigits]*DigitGrid
	digits [displayDigits]int // last applied digit per grid, -1 before first tick
	style  *Style
	use24  bool
}

func NewClockDisplay(st *Style, use24 bool) *ClockDisplay {
	d := &ClockDisplay{style: st, use24: use24}
	for i := range d.grids {
		d.grids[i] = newDigitGrid()
		d.digits[i] = -1
	}
	return d
}

// SetStyle swaps in a new style snapshot. In-flight animations are not
// touched; only subsequent draws and retargets see the new colors, sizes
// and animation duration.
func (d *ClockDisplay) SetStyle(st *Style) { d.style = st }

// Style returns the current style snapshot.
func (d *ClockDisplay) Style() *Style { return d.style }

// SetUse24Hour switches between 24-hour and 12-hour digit extraction.
func (d *ClockDisplay) SetUse24Hour(use24 bool) { d.use24 = use24 }

// Use24Hour reports the current display mode.
func (d *ClockDisplay) Use24Hour() bool { return d.use24 }

// Tick applies the wall-clock time, retargeting only the grids whose digit
// changed since the previous tick. Rollovers are ordinary digit changes.
func (d *ClockDisplay) Tick(now time.Time) {
	for i, digit := range extractDigits(now, d.use24) {
		if digit == d.digits[i] {
			continue
		}
		d.grids[i].SetDigit(digit, d.style.AnimationDuration)
		d.digits[i] = digit
	}
}

// ApplyImmediate snaps every grid to the current time without animation.
func (d *ClockDisplay) ApplyImmediate(now time.Time) {
	for i, digit := range extractDigits(now, d.use24) {
		d.grids[i].SetDigitImmediate(digit)
		d.digits[i] = digit
	}
}

// Advance steps all animating faces by dt and reports whether any remain.
func (d *ClockDisplay) Advance(dt time.Duration) bool {
	animating := false
	for _, g := range d.grids {
		if g.Advance(dt) {
			animating = true
		}
	}
	return animating
}

// Animating reports whether any face in the display is mid-transition.
func (d *ClockDisplay) Animating() bool {
	for _, g := range d.grids {
		if g.Animating() {
			return true
		}
	}
	return false
}

// extractDigits splits now into the six displayed digits: hours, minutes,
// seconds, two digits each. In 12-hour mode hour 0 maps to 12.
func extractDigits(now time.Time, use24 bool) [displayDigits]int {
	h := now.Hour()
	if !use24 {
		h %= 12
		if h == 0 {
			h = 12
		}
	}
	m, s := now.Minute(), now.Second()
	return [displayDigits]int{h / 10, h % 10, m / 10, m % 10, s / 10, s % 10}
}

// TimeString formats now the way the display shows it.
func (d *ClockDisplay) TimeString(now time.Time) string {
	ds := extractDigits(now, d.use24)
	return fmt.Sprintf("%d%d:%d%d:%d%d", ds[0], ds[1], ds[2], ds[3], ds[4], ds[5])
}

// PixelSize returns the frame dimensions for the current style: the rounded
// container plus a window margin on every side.
func (d *ClockDisplay) PixelSize() (int, int) {
	st := d.style
	dw := digitGridWidth(st)
	pairW := 2*dw + float64(st.DigitGap)
	inner := 3*pairW + 2*(separatorWidth+2*digitGroupGap)
	w := inner + 2*(windowMargin+displayPadding)
	h := digitGridHeight(st) + 2*(windowMargin+displayPadding)
	return int(w), int(h)
}

// Draw paints the rounded container, the six grids and the separators. The
// caller is expected to have cleared the context with the window background.
func (d *ClockDisplay) Draw(dc *gg.Context) {
	st := d.style
	w, h := d.PixelSize()

	boxBG := st.DisplayBG
	dc.SetRGBA(boxBG.R, boxBG.G, boxBG.B, boxBG.A)
	dc.DrawRoundedRectangle(windowMargin, windowMargin,
		float64(w)-2*windowMargin, float64(h)-2*windowMargin, displayCornerRadius)
	dc.Fill()

	boxBorder := st.DisplayBorder
	dc.SetRGBA(boxBorder.R, boxBorder.G, boxBorder.B, boxBorder.A)
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(windowMargin, windowMargin,
		float64(w)-2*windowMargin, float64(h)-2*windowMargin, displayCornerRadius)
	dc.Stroke()

	dw := digitGridWidth(st)
	dh := digitGridHeight(st)
	y := windowMargin + displayPadding
	x := windowMargin + displayPadding

	for group := 0; group < 3; group++ {
		d.grids[2*group].Draw(dc, x, y, st)
		x += dw + float64(st.DigitGap)
		d.grids[2*group+1].Draw(dc, x, y, st)
		x += dw
		if group < 2 {
			x += digitGroupGap
			d.drawSeparator(dc, x+separatorWidth/2, y, dh)
			x += separatorWidth + digitGroupGap
		}
	}
}

// drawSeparator paints the two colon dots centered on cx.
func (d *ClockDisplay) drawSeparator(dc *gg.Context, cx, top, height float64) {
	sep := d.style.Separator
	dc.SetRGBA(sep.R, sep.G, sep.B, sep.A)
	dc.DrawCircle(cx, top+height*separatorTopFraction, separatorDotRadius)
	dc.Fill()
	dc.DrawCircle(cx, top+height*separatorBottomFraction, separatorDotRadius)
	dc.Fill()
}
