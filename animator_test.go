package main

import (
	"math"
	"testing"
	"time"
)

const animTestDuration = 300 * time.Millisecond

func TestRetargetWrapsClockwise(t *testing.T) {
	a := newHandAnimator(ClockPosition{Hour: 350, Minute: 350})
	a.Retarget(ClockPosition{Hour: 10, Minute: 10}, animTestDuration)

	// 350 -> 10 is a 20 degree clockwise step, not a 340 degree reversal.
	if got := a.targetHour; got != 370 {
		t.Errorf("target cumulative hour = %v, want 370", got)
	}
	if got := a.targetMinute; got != 370 {
		t.Errorf("target cumulative minute = %v, want 370", got)
	}
}

func TestRetargetMonotonicCumulative(t *testing.T) {
	a := newHandAnimator(inactivePos)
	targets := []ClockPosition{
		{Hour: 0, Minute: 180},
		{Hour: 270, Minute: 90},
		{Hour: 90, Minute: 270},
		{Hour: 0, Minute: 0},
		{Hour: 350, Minute: 10},
		{Hour: 10, Minute: 350},
	}
	for _, pos := range targets {
		beforeH, beforeM := a.CumulativeHour(), a.CumulativeMinute()
		a.Retarget(pos, animTestDuration)
		if a.targetHour < beforeH {
			t.Fatalf("hour target %v below current %v after retarget to %+v", a.targetHour, beforeH, pos)
		}
		if a.targetMinute < beforeM {
			t.Fatalf("minute target %v below current %v after retarget to %+v", a.targetMinute, beforeM, pos)
		}
		// Partially advance so the next retarget starts mid-flight.
		a.Advance(animTestDuration / 3)
	}
}

func TestAdvanceConvergesExactly(t *testing.T) {
	a := newHandAnimator(ClockPosition{Hour: 0, Minute: 0})
	a.Retarget(ClockPosition{Hour: 90, Minute: 180}, animTestDuration)

	a.Advance(animTestDuration / 2)
	if !a.Active() {
		t.Fatal("animator settled halfway through")
	}
	mid := a.CumulativeHour()
	if mid <= 0 || mid >= 90 {
		t.Errorf("midway hour angle %v outside (0, 90)", mid)
	}

	a.Advance(animTestDuration) // cumulative elapsed > duration
	if a.Active() {
		t.Error("animator still active past duration")
	}
	if a.CumulativeHour() != 90 || a.CumulativeMinute() != 180 {
		t.Errorf("settled at (%v, %v), want exactly (90, 180)", a.CumulativeHour(), a.CumulativeMinute())
	}
}

func TestAdvanceInactiveNoop(t *testing.T) {
	a := newHandAnimator(ClockPosition{Hour: 45, Minute: 135})
	before := a
	a.Advance(time.Second)
	if a != before {
		t.Errorf("Advance on inactive animator changed state: %+v -> %+v", before, a)
	}
}

func TestZeroDeltaRetargetNoop(t *testing.T) {
	a := newHandAnimator(ClockPosition{Hour: 90, Minute: 270})
	a.Retarget(ClockPosition{Hour: 90, Minute: 270}, animTestDuration)
	if a.Active() {
		t.Error("zero-delta retarget started an animation")
	}
	if a.CumulativeHour() != 90 || a.CumulativeMinute() != 270 {
		t.Errorf("zero-delta retarget moved angles to (%v, %v)", a.CumulativeHour(), a.CumulativeMinute())
	}

	// Equality mod 360 also counts as zero delta.
	a.targetHour, a.currentHour = 450, 450
	a.targetMinute, a.currentMinute = 630, 630
	a.Retarget(ClockPosition{Hour: 90, Minute: 270}, animTestDuration)
	if a.Active() {
		t.Error("mod-360-equal retarget started an animation")
	}
}

func TestZeroDurationSnaps(t *testing.T) {
	a := newHandAnimator(ClockPosition{Hour: 0, Minute: 0})
	a.Retarget(ClockPosition{Hour: 90, Minute: 180}, 0)
	if a.Active() {
		t.Error("zero-duration retarget left animator active")
	}
	if a.CumulativeHour() != 90 || a.CumulativeMinute() != 180 {
		t.Errorf("zero-duration retarget landed at (%v, %v)", a.CumulativeHour(), a.CumulativeMinute())
	}
}

func TestMidFlightRetargetUsesCurrentAngles(t *testing.T) {
	a := newHandAnimator(ClockPosition{Hour: 0, Minute: 0})
	a.Retarget(ClockPosition{Hour: 180, Minute: 180}, animTestDuration)
	a.Advance(animTestDuration / 2)

	cur := a.CumulativeHour()
	a.Retarget(ClockPosition{Hour: 0, Minute: 0}, animTestDuration)

	// The new target must complete the lap from the interpolated position,
	// not from the abandoned 180 degree target.
	if a.startHour != cur {
		t.Errorf("retarget snapshot start %v, want current %v", a.startHour, cur)
	}
	want := cur + clockwiseDelta(cur, 0)
	if a.targetHour != want {
		t.Errorf("target cumulative %v, want %v", a.targetHour, want)
	}
	if a.targetHour < cur {
		t.Error("mid-flight retarget rotated backwards")
	}
}

func TestSnapResetsCumulative(t *testing.T) {
	a := newHandAnimator(ClockPosition{Hour: 0, Minute: 0})
	a.Retarget(ClockPosition{Hour: 350, Minute: 350}, animTestDuration)
	a.Advance(2 * animTestDuration)

	a.Snap(ClockPosition{Hour: 10, Minute: 20})
	if a.Active() {
		t.Error("snap left animator active")
	}
	if a.CumulativeHour() != 10 || a.CumulativeMinute() != 20 {
		t.Errorf("snap landed at (%v, %v), want (10, 20)", a.CumulativeHour(), a.CumulativeMinute())
	}
}

func TestEaseInOutCubic(t *testing.T) {
	if got := easeInOutCubic(0); got != 0 {
		t.Errorf("eased(0) = %v", got)
	}
	if got := easeInOutCubic(1); got != 1 {
		t.Errorf("eased(1) = %v", got)
	}
	if got := easeInOutCubic(0.5); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("eased(0.5) = %v, want 0.5", got)
	}
	// Monotonic on a coarse grid.
	prev := -1.0
	for i := 0; i <= 100; i++ {
		v := easeInOutCubic(float64(i) / 100)
		if v < prev {
			t.Fatalf("easing not monotonic at t=%v", float64(i)/100)
		}
		prev = v
	}
}

func TestWrapAngle(t *testing.T) {
	cases := map[float64]float64{0: 0, 360: 0, 370: 10, 725: 5, -10: 350}
	for in, want := range cases {
		if got := wrapAngle(in); math.Abs(got-want) > 1e-9 {
			t.Errorf("wrapAngle(%v) = %v, want %v", in, got, want)
		}
	}
}
