// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package engine

import "time"

// =============================================================================
// Phases
// =============================================================================

// Phase is the state of the per-tick machine. The normal loop is
// Spawning -> Falling -> Locking -> Clearing -> Spawning; GameOver is
// terminal and reached from Spawning when the fresh piece does not fit.
type Phase int8

const (
	PhaseSpawning Phase = iota
	PhaseFalling
	PhaseLocking
	PhaseClearing
	PhaseGameOver
)

// String returns the phase name for logging.
func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseFalling:
		return "falling"
	case PhaseLocking:
		return "locking"
	case PhaseClearing:
		return "clearing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// =============================================================================
// Game
// =============================================================================

// Game is the complete simulation state: board, active piece, preview,
// score tracker and phase timers. Create one with NewGame, drive it with
// Tick, and replace it wholesale to restart. All mutation happens inside
// Tick; a tick either fully applies a transition or leaves the state
// unchanged.
type Game struct {
	rules   Rules
	board   *Board
	gen     *Generator
	tracker Tracker

	phase      Phase
	active     Piece
	next       Kind
	fallTimer  time.Duration
	lockTimer  time.Duration
	lockResets int
	paused     bool
	quit       bool
}

// NewGame returns a fresh game in the Spawning phase. A zero seed picks a
// time-based one; fixed seeds replay identical piece sequences.
func NewGame(rules Rules, seed int64) *Game {
	gen := NewGenerator(seed)
	return &Game{
		rules:   rules,
		board:   NewBoard(),
		gen:     gen,
		tracker: NewTracker(rules),
		next:    gen.Next(),
		phase:   PhaseSpawning,
	}
}

// Tick advances the simulation by elapsed wall time, first draining the
// input events queued since the previous tick in arrival order. It is the
// sole entry point for mutation and returns the render snapshot.
func (g *Game) Tick(elapsed time.Duration, events []Event) Snapshot {
	for _, ev := range events {
		g.apply(ev)
	}
	if !g.paused {
		g.step(elapsed)
	}
	return g.Snapshot()
}

// Board exposes the playfield for tests.
func (g *Game) Board() *Board {
	return g.board
}

// Phase returns the current machine phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// =============================================================================
// Event Handling
// =============================================================================

// apply translates one input event into controller calls. Piece commands
// are valid only while Falling or Locking and are dropped otherwise.
func (g *Game) apply(ev Event) {
	switch ev {
	case EventQuit:
		g.quit = true
		return
	case EventPause:
		if g.phase == PhaseFalling || g.phase == PhaseLocking {
			g.paused = !g.paused
		}
		return
	}

	if g.paused || (g.phase != PhaseFalling && g.phase != PhaseLocking) {
		return
	}

	switch ev {
	case EventMoveLeft:
		if g.tryShift(-1, 0) {
			g.afterGroundedMove()
		}
	case EventMoveRight:
		if g.tryShift(1, 0) {
			g.afterGroundedMove()
		}
	case EventRotateCW:
		if g.tryRotate(RotateCW) {
			g.afterGroundedMove()
		}
	case EventRotateCCW:
		if g.tryRotate(RotateCCW) {
			g.afterGroundedMove()
		}
	case EventSoftDrop:
		if g.tryShift(0, 1) {
			g.fallTimer = 0
			g.afterGroundedMove()
		} else if g.phase == PhaseFalling {
			g.enterLocking()
		}
	case EventHardDrop:
		for g.tryShift(0, 1) {
		}
		g.lockNow()
	}
}

// tryShift moves the active piece by (dc, dr) if the shifted placement is
// valid. Returns whether the piece moved.
func (g *Game) tryShift(dc, dr int) bool {
	cand := g.active.shifted(dc, dr)
	if !g.board.CanPlace(cand) {
		return false
	}
	g.active = cand
	return true
}

// tryRotate attempts the rotation in dir, testing each wall-kick offset
// in table order. The first valid placement commits rotation state and
// anchor together; if none fits the piece is left unchanged.
func (g *Game) tryRotate(dir RotationDir) bool {
	target := targetRot(g.active.Rot, dir)
	for _, kick := range kicksFor(g.active.Kind, g.active.Rot, dir) {
		cand := Piece{
			Kind: g.active.Kind,
			Rot:  target,
			Col:  g.active.Col + kick.DC,
			Row:  g.active.Row + kick.DR,
		}
		if g.board.CanPlace(cand) {
			g.active = cand
			return true
		}
	}
	return false
}

// afterGroundedMove handles lock-delay bookkeeping after a successful
// move or rotation. While Locking, a move that lifts the piece off the
// stack resumes Falling; otherwise the lock delay restarts, up to the
// reset cap.
func (g *Game) afterGroundedMove() {
	if g.phase != PhaseLocking {
		return
	}
	if g.board.CanPlace(g.active.shifted(0, 1)) {
		g.phase = PhaseFalling
		g.fallTimer = 0
		return
	}
	if g.lockResets < g.rules.MaxLockResets {
		g.lockResets++
		g.lockTimer = 0
	}
}

// =============================================================================
// Phase Machine
// =============================================================================

// step advances the phase machine by one tick.
func (g *Game) step(elapsed time.Duration) {
	switch g.phase {
	case PhaseSpawning:
		g.spawn()

	case PhaseFalling:
		g.fallTimer += elapsed
		interval := g.tracker.GravityInterval()
		for g.fallTimer >= interval {
			g.fallTimer -= interval
			if !g.tryShift(0, 1) {
				g.enterLocking()
				break
			}
		}

	case PhaseLocking:
		// A kick may have left the piece airborne; fall again.
		if g.board.CanPlace(g.active.shifted(0, 1)) {
			g.phase = PhaseFalling
			g.fallTimer = 0
			return
		}
		g.lockTimer += elapsed
		if g.lockTimer >= g.rules.LockDelay {
			g.lockNow()
		}

	case PhaseClearing:
		rows := g.board.FullRows()
		if len(rows) > 0 {
			g.board.ClearRows(rows)
			g.tracker.RecordClear(len(rows))
		}
		g.phase = PhaseSpawning

	case PhaseGameOver:
		// Terminal: ticks no longer mutate state.
	}
}

// spawn promotes the preview kind to the active piece and pulls a new
// preview. A blocked spawn area ends the game without touching the board.
func (g *Game) spawn() {
	g.active = SpawnPiece(g.next)
	g.next = g.gen.Next()
	g.fallTimer = 0
	g.lockTimer = 0
	g.lockResets = 0
	if !g.board.CanPlace(g.active) {
		g.phase = PhaseGameOver
		return
	}
	g.phase = PhaseFalling
}

// enterLocking starts the lock-delay timer for a grounded piece.
func (g *Game) enterLocking() {
	g.phase = PhaseLocking
	g.lockTimer = 0
}

// lockNow merges the active piece into the board and hands off to the
// line-clear pass.
func (g *Game) lockNow() {
	g.board.Merge(g.active)
	g.phase = PhaseClearing
}
