// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package engine

import "time"

// =============================================================================
// Rules
// =============================================================================

// Rules collects the tuning constants of the simulation. They are plain
// data so the config layer can override them; DefaultRules documents the
// standard values.
type Rules struct {
	// LockDelay is the grace period after a piece becomes grounded during
	// which it can still move or rotate before merging into the board.
	LockDelay time.Duration

	// MaxLockResets caps how many times successful moves or rotations may
	// restart the lock delay, so a piece cannot stall forever.
	MaxLockResets int

	// GravityBase is the fall interval at level 1; each level above 1
	// subtracts GravityStep, never going below GravityMin.
	GravityBase time.Duration
	GravityStep time.Duration
	GravityMin  time.Duration

	// LinesPerLevel is the cumulative-lines threshold per level advance.
	LinesPerLevel int

	// StartLevel is the level the session begins at. Values below 1 are
	// treated as 1.
	StartLevel int
}

// DefaultRules returns the standard tuning: 500ms lock delay with 15
// resets, a 1000ms gravity base dropping 80ms per level to a 50ms floor,
// and a level every 10 lines.
func DefaultRules() Rules {
	return Rules{
		LockDelay:     500 * time.Millisecond,
		MaxLockResets: 15,
		GravityBase:   time.Second,
		GravityStep:   80 * time.Millisecond,
		GravityMin:    50 * time.Millisecond,
		LinesPerLevel: 10,
	}
}

// GravityInterval returns the time between automatic one-row drops at the
// given level. Monotonically non-increasing in level, bounded below by
// GravityMin.
func (r Rules) GravityInterval(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	interval := r.GravityBase - time.Duration(level-1)*r.GravityStep
	if interval < r.GravityMin {
		return r.GravityMin
	}
	return interval
}

// =============================================================================
// Scoring & Level Tracker
// =============================================================================

// clearValues maps a line-clear count (1-4) in a single event to its base
// score. A quadruple is worth disproportionately more than four singles.
var clearValues = [5]int{0, 100, 300, 500, 800}

// Tracker converts line-clear events into score and level progression.
// Score and Level only ever grow.
type Tracker struct {
	rules Rules
	start int

	Score int
	Lines int
	Level int
}

// NewTracker returns a tracker at the rules' start level with zero score.
func NewTracker(rules Rules) Tracker {
	start := rules.StartLevel
	if start < 1 {
		start = 1
	}
	return Tracker{rules: rules, start: start, Level: start}
}

// RecordClear applies a line-clear event of n rows (0-4). The score
// increment is the clear value multiplied by the level at clear time;
// the level is recomputed from the cumulative line count afterwards.
func (t *Tracker) RecordClear(n int) {
	if n <= 0 {
		return
	}
	if n >= len(clearValues) {
		n = len(clearValues) - 1
	}
	t.Score += clearValues[n] * t.Level
	t.Lines += n

	level := t.Lines/t.rules.LinesPerLevel + t.start
	if level > t.Level {
		t.Level = level
	}
}

// GravityInterval returns the current fall interval for the tracker's
// level.
func (t *Tracker) GravityInterval() time.Duration {
	return t.rules.GravityInterval(t.Level)
}
