package main

import "time"

const (
	gridRows = 6
	gridCols = 4

	displayDigits = 6

	// Target animation rate for hand transitions.
	frameInterval = time.Second / 60
)

// Face geometry. Hand lengths are ratios of the face radius so the clocks
// scale with the configured size.
const (
	clockRadiusPadding = 2.0
	clockBorderWidth   = 1.0
	hourHandRatio      = 0.5
	minuteHandRatio    = 0.8

	centerDotOpacityActive   = 0.5
	centerDotOpacityInactive = 1.0

	// 0 degrees points to 12 o'clock, not 3 o'clock.
	angleOffsetDegrees = -90.0
)

// Display layout in pixels.
const (
	separatorWidth          = 20.0
	separatorDotRadius      = 4.0
	separatorTopFraction    = 0.3
	separatorBottomFraction = 0.7

	digitGroupGap       = 20.0
	displayPadding      = 40.0
	displayCornerRadius = 20.0
	windowMargin        = 24.0
)

const (
	configPollInterval = time.Second
	statusMessageTTL   = 3 * time.Second

	snapshotFontSize = 14.0
)
