package main

import (
	"math"
	"time"

	"github.com/fogleman/gg"
)

// ClockFace is one mini analog clock: an animator plus the active/inactive
// flag that selects its hand color. Drawing reads the animator's current
// interpolated angles and never mutates it.
type ClockFace struct {
	anim         HandAnimator
	active       bool
	targetActive bool
}

func newClockFace() *ClockFace {
	return &ClockFace{anim: newHandAnimator(inactivePos)}
}

// Retarget animates the face toward pos. The active flag settles together
// with the rotation; until then the hand color cross-fades between the
// active and inactive colors.
func (f *ClockFace) Retarget(pos ClockPosition, duration time.Duration) {
	f.targetActive = pos.IsActive()
	f.anim.Retarget(pos, duration)
	if !f.anim.Active() {
		f.active = f.targetActive
	}
}

// SetImmediate snaps the face to pos without animating.
func (f *ClockFace) SetImmediate(pos ClockPosition) {
	f.anim.Snap(pos)
	f.active = pos.IsActive()
	f.targetActive = f.active
}

// Advance steps the animator by dt and reports whether the face is still
// animating.
func (f *ClockFace) Advance(dt time.Duration) bool {
	f.anim.Advance(dt)
	if !f.anim.Active() {
		f.active = f.targetActive
	}
	return f.anim.Active()
}

// Animating reports whether a hand transition is in flight.
func (f *ClockFace) Animating() bool { return f.anim.Active() }

// Draw paints the face centered at (cx, cy): background circle, border,
// hour hand, minute hand, center dot. A degenerate size is a silent no-op,
// which can happen transiently while the window is being resized.
func (f *ClockFace) Draw(dc *gg.Context, cx, cy float64, st *Style) {
	radius := float64(st.ClockSize)/2 - clockRadiusPadding
	if radius <= 0 {
		return
	}

	bg := st.ClockBG
	dc.SetRGBA(bg.R, bg.G, bg.B, bg.A)
	dc.DrawCircle(cx, cy, radius)
	dc.Fill()

	border := st.ClockBorder
	dc.SetRGBA(border.R, border.G, border.B, border.A)
	dc.SetLineWidth(clockBorderWidth)
	dc.DrawCircle(cx, cy, radius)
	dc.Stroke()

	hand := f.handColor(st)
	dc.SetRGBA(hand.R, hand.G, hand.B, hand.A)
	dc.SetLineWidth(st.StrokeWidth)
	dc.SetLineCap(gg.LineCapRound)

	drawHand(dc, cx, cy, f.anim.HourAngle(), radius*hourHandRatio)
	drawHand(dc, cx, cy, f.anim.MinuteAngle(), radius*minuteHandRatio)

	dc.SetRGBA(hand.R, hand.G, hand.B, f.centerDotOpacity())
	dc.DrawCircle(cx, cy, st.StrokeWidth)
	dc.Fill()
}

func drawHand(dc *gg.Context, cx, cy, deg, length float64) {
	rad := (deg + angleOffsetDegrees) * math.Pi / 180
	dc.DrawLine(cx, cy, cx+length*math.Cos(rad), cy+length*math.Sin(rad))
	dc.Stroke()
}

// handColor picks the active or inactive hand color, blending between the
// two while an activeness transition is mid-flight.
func (f *ClockFace) handColor(st *Style) RGBA {
	if f.active == f.targetActive {
		if f.active {
			return st.HandActive
		}
		return st.HandInactive
	}
	from, to := st.HandActive, st.HandInactive
	if f.targetActive {
		from, to = st.HandInactive, st.HandActive
	}
	return lerpRGBA(from, to, f.anim.Progress())
}

func (f *ClockFace) centerDotOpacity() float64 {
	if f.active == f.targetActive {
		if f.active {
			return centerDotOpacityActive
		}
		return centerDotOpacityInactive
	}
	from, to := centerDotOpacityActive, centerDotOpacityInactive
	if f.targetActive {
		from, to = centerDotOpacityInactive, centerDotOpacityActive
	}
	return from + (to-from)*f.anim.Progress()
}

func lerpRGBA(a, b RGBA, t float64) RGBA {
	return RGBA{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}
