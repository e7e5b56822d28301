package main

import "testing"

func TestPatternForAllDigits(t *testing.T) {
	for digit := 0; digit <= 9; digit++ {
		p := PatternFor(digit)
		active := 0
		for row := 0; row < gridRows; row++ {
			for col := 0; col < gridCols; col++ {
				pos := p[row][col]
				if pos.Hour < 0 || pos.Hour >= 360 {
					t.Errorf("digit %d cell (%d,%d): hour angle %d out of range", digit, row, col, pos.Hour)
				}
				if pos.Minute < 0 || pos.Minute >= 360 {
					t.Errorf("digit %d cell (%d,%d): minute angle %d out of range", digit, row, col, pos.Minute)
				}
				if pos.IsActive() {
					active++
				}
			}
		}
		if active == 0 {
			t.Errorf("digit %d has no active cells", digit)
		}
	}
}

func TestPatternForDeterministic(t *testing.T) {
	for digit := 0; digit <= 9; digit++ {
		if PatternFor(digit) != PatternFor(digit) {
			t.Errorf("digit %d: repeated lookups differ", digit)
		}
	}
}

func TestActiveCellsDistinctFromRestPoses(t *testing.T) {
	for digit := 0; digit <= 9; digit++ {
		p := PatternFor(digit)
		for row := 0; row < gridRows; row++ {
			for col := 0; col < gridCols; col++ {
				pos := p[row][col]
				if !pos.IsActive() && pos != inactivePos && pos != altInactivePos {
					t.Errorf("digit %d cell (%d,%d): inactive but not a rest pose: %+v", digit, row, col, pos)
				}
			}
		}
	}
}

func TestInactiveSentinel(t *testing.T) {
	if inactivePos.IsActive() {
		t.Error("rest pose reported active")
	}
	if altInactivePos.IsActive() {
		t.Error("alternate rest pose reported active")
	}
	if !(ClockPosition{Hour: 0, Minute: 180}).IsActive() {
		t.Error("stroke position reported inactive")
	}
}

func TestPatternForOutOfRangePanics(t *testing.T) {
	for _, digit := range []int{-1, 10, 99} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("PatternFor(%d) did not panic", digit)
				}
			}()
			PatternFor(digit)
		}()
	}
}
