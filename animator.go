package main

import (
	"math"
	"time"
)

// HandAnimator drives the rotation of one clock's two hands from their
// current orientation to a requested target over a fixed duration.
//
// Angles are tracked as unbounded cumulative degrees rather than values
// wrapped to 0-359. Each retarget adds the smallest non-negative delta that
// reaches the requested absolute angle, so the cumulative value never
// decreases and the hands always rotate clockwise, never snap backward.
type HandAnimator struct {
	currentHour   float64
	currentMinute float64
	startHour     float64
	startMinute   float64
	targetHour    float64
	targetMinute  float64

	elapsed  time.Duration
	duration time.Duration
	progress float64 // eased progress of the last step, 1 when settled
	active   bool
}

func newHandAnimator(pos ClockPosition) HandAnimator {
	h, m := float64(pos.Hour), float64(pos.Minute)
	return HandAnimator{
		currentHour:   h,
		currentMinute: m,
		startHour:     h,
		startMinute:   m,
		targetHour:    h,
		targetMinute:  m,
		progress:      1,
	}
}

// clockwiseDelta returns how far a hand at cumulative angle cur must travel
// clockwise to point at the absolute angle target, in [0, 360).
func clockwiseDelta(cur, target float64) float64 {
	d := math.Mod(target-math.Mod(cur, 360), 360)
	if d < 0 {
		d += 360
	}
	return d
}

// Retarget starts a transition toward the given absolute hand angles.
//
// The deltas are computed from the current interpolated angles, not from the
// previous target, so a retarget that lands mid-transition animates cleanly
// from wherever the hands are. A retarget whose angles already match the
// current orientation is a no-op: it neither restarts the timer nor forces a
// revolution, which keeps redundant digit updates free.
func (a *HandAnimator) Retarget(pos ClockPosition, duration time.Duration) {
	dh := clockwiseDelta(a.currentHour, float64(pos.Hour))
	dm := clockwiseDelta(a.currentMinute, float64(pos.Minute))
	if dh == 0 && dm == 0 {
		return
	}

	a.startHour = a.currentHour
	a.startMinute = a.currentMinute
	a.targetHour = a.currentHour + dh
	a.targetMinute = a.currentMinute + dm

	if duration <= 0 {
		a.settle()
		return
	}

	a.elapsed = 0
	a.duration = duration
	a.progress = 0
	a.active = true
}

// Snap moves the hands to the given position immediately, resetting the
// cumulative angles to the absolute values. Used at construction and after a
// config reload, where animating from the old state would be misleading.
func (a *HandAnimator) Snap(pos ClockPosition) {
	*a = newHandAnimator(pos)
}

// Advance steps the transition by dt of wall time. It is a no-op while the
// animator is inactive. When the transition completes the current angles
// equal the targets exactly.
func (a *HandAnimator) Advance(dt time.Duration) {
	if !a.active {
		return
	}

	a.elapsed += dt
	t := 1.0
	if a.duration > 0 {
		t = float64(a.elapsed) / float64(a.duration)
	}
	if t >= 1 {
		a.settle()
		return
	}

	e := easeInOutCubic(t)
	a.progress = e
	a.currentHour = a.startHour + (a.targetHour-a.startHour)*e
	a.currentMinute = a.startMinute + (a.targetMinute-a.startMinute)*e
}

func (a *HandAnimator) settle() {
	a.currentHour = a.targetHour
	a.currentMinute = a.targetMinute
	a.progress = 1
	a.active = false
}

// Active reports whether a transition is in flight.
func (a *HandAnimator) Active() bool { return a.active }

// Progress returns the eased progress of the current transition, 1 when
// settled. Used to cross-fade colors in step with the rotation.
func (a *HandAnimator) Progress() float64 { return a.progress }

// CumulativeHour returns the unbounded hour-hand angle in degrees.
func (a *HandAnimator) CumulativeHour() float64 { return a.currentHour }

// CumulativeMinute returns the unbounded minute-hand angle in degrees.
func (a *HandAnimator) CumulativeMinute() float64 { return a.currentMinute }

// HourAngle returns the hour-hand angle wrapped to [0, 360) for drawing.
func (a *HandAnimator) HourAngle() float64 { return wrapAngle(a.currentHour) }

// MinuteAngle returns the minute-hand angle wrapped to [0, 360) for drawing.
func (a *HandAnimator) MinuteAngle() float64 { return wrapAngle(a.currentMinute) }

func wrapAngle(deg float64) float64 {
	w := math.Mod(deg, 360)
	if w < 0 {
		w += 360
	}
	return w
}

func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}
