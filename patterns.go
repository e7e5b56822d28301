package main

import "fmt"

// ClockPosition is the target orientation of one mini clock: the hour and
// minute hand angles in degrees. 0 degrees points to 12 o'clock, 90 to
// 3 o'clock, 180 to 6 o'clock, 270 to 9 o'clock.
type ClockPosition struct {
	Hour   int
	Minute int
}

// Rest poses for clocks that are not part of a digit's strokes. Both hands
// line up into a single diagonal.
var (
	inactivePos    = ClockPosition{Hour: 135, Minute: 315}
	altInactivePos = ClockPosition{Hour: 225, Minute: 225}
)

// IsActive reports whether this position is part of a digit's visible
// strokes, i.e. not one of the diagonal rest poses.
func (p ClockPosition) IsActive() bool {
	return p != inactivePos && p != altInactivePos
}

// DigitPattern is the 6x4 grid of hand positions that traces one digit.
type DigitPattern [gridRows][gridCols]ClockPosition

// PatternFor returns the pattern for a digit 0-9. Digit extraction from a
// wall-clock time can never produce anything else, so an out-of-range value
// is a bug in the caller and panics.
func PatternFor(digit int) DigitPattern {
	if digit < 0 || digit > 9 {
		panic(fmt.Sprintf("patterns: digit %d out of range 0-9", digit))
	}
	return digitPatterns[digit]
}

// Shorthand for the rest pose inside the tables below.
var xx = inactivePos

// Hand-authored glyph tables. Overlaid, the active hand orientations of each
// grid trace the digit's shape; xx cells sit at the diagonal rest pose.
var digitPatterns = [10]DigitPattern{
	{ // 0
		{{90, 180}, {90, 270}, {90, 270}, {180, 270}},
		{{0, 180}, {90, 180}, {180, 270}, {0, 180}},
		{{0, 180}, {0, 180}, {0, 180}, {0, 180}},
		{{0, 180}, {0, 180}, {0, 180}, {0, 180}},
		{{0, 180}, {0, 90}, {0, 270}, {0, 180}},
		{{0, 90}, {90, 270}, {90, 270}, {0, 270}},
	},
	{ // 1
		{{90, 180}, {90, 270}, {270, 180}, xx},
		{{0, 90}, {270, 180}, {0, 180}, xx},
		{xx, {0, 180}, {0, 180}, xx},
		{xx, {0, 180}, {0, 180}, xx},
		{{90, 180}, {270, 0}, {0, 90}, {270, 180}},
		{{0, 90}, {90, 270}, {90, 270}, {0, 270}},
	},
	{ // 2
		{{90, 180}, {90, 270}, {90, 270}, {180, 270}},
		{{0, 90}, {90, 270}, {180, 270}, {0, 180}},
		{{90, 180}, {90, 270}, {0, 270}, {0, 180}},
		{{0, 180}, {90, 180}, {90, 270}, {0, 270}},
		{{0, 180}, {0, 90}, {90, 270}, {180, 270}},
		{{0, 90}, {90, 270}, {90, 270}, {0, 270}},
	},
	{ // 3
		{{90, 180}, {90, 270}, {90, 270}, {180, 270}},
		{{0, 90}, {90, 270}, {180, 270}, {0, 180}},
		{xx, {90, 180}, {0, 270}, {0, 180}},
		{xx, {0, 90}, {180, 270}, {0, 180}},
		{{90, 180}, {90, 270}, {0, 270}, {0, 180}},
		{{0, 90}, {90, 270}, {90, 270}, {0, 270}},
	},
	{ // 4
		{{90, 180}, {180, 270}, {180, 90}, {180, 270}},
		{{0, 180}, {0, 180}, {0, 180}, {0, 180}},
		{{0, 180}, {0, 90}, {0, 270}, {0, 180}},
		{{0, 90}, {90, 270}, {180, 270}, {0, 180}},
		{xx, xx, {0, 180}, {0, 180}},
		{xx, xx, {0, 90}, {0, 270}},
	},
	{ // 5
		{{180, 90}, {270, 90}, {270, 90}, {270, 180}},
		{{0, 180}, {180, 90}, {270, 90}, {0, 270}},
		{{0, 180}, {0, 90}, {270, 90}, {270, 180}},
		{{0, 90}, {270, 90}, {270, 180}, {0, 180}},
		{{180, 90}, {270, 90}, {0, 270}, {0, 180}},
		{{0, 90}, {270, 90}, {270, 90}, {0, 270}},
	},
	{ // 6
		{{180, 90}, {180, 270}, xx, xx},
		{{180, 0}, {180, 0}, xx, xx},
		{{180, 0}, {0, 90}, {270, 90}, {180, 270}},
		{{180, 0}, {180, 90}, {180, 270}, {180, 0}},
		{{180, 0}, {0, 90}, {270, 0}, {180, 0}},
		{{0, 90}, {270, 90}, {270, 90}, {270, 0}},
	},
	{ // 7
		{{90, 180}, {90, 270}, {90, 270}, {180, 270}},
		{{0, 90}, {90, 270}, {180, 270}, {0, 180}},
		{xx, xx, {0, 180}, {0, 180}},
		{xx, xx, {0, 180}, {0, 180}},
		{xx, xx, {0, 180}, {0, 180}},
		{xx, xx, {0, 90}, {0, 270}},
	},
	{ // 8
		{{90, 180}, {90, 270}, {90, 270}, {180, 270}},
		{{0, 180}, {90, 180}, {180, 270}, {0, 180}},
		{{0, 180}, {0, 90}, {0, 270}, {0, 180}},
		{{0, 180}, {90, 180}, {180, 270}, {0, 180}},
		{{0, 180}, {0, 90}, {0, 270}, {0, 180}},
		{{0, 90}, {90, 270}, {90, 270}, {0, 270}},
	},
	{ // 9
		{{90, 180}, {90, 270}, {90, 270}, {180, 270}},
		{{0, 180}, {90, 180}, {180, 270}, {0, 180}},
		{{0, 180}, {0, 90}, {0, 270}, {0, 180}},
		{{0, 90}, {90, 270}, {180, 270}, {0, 180}},
		{xx, xx, {0, 180}, {0, 180}},
		{xx, xx, {0, 90}, {0, 270}},
	},
}
