// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package engine

// =============================================================================
// Render Snapshot
// =============================================================================

// Snapshot is the render-able view of the game state: pure data, no
// references into engine internals. The terminal layer draws snapshots
// and never reaches past them.
type Snapshot struct {
	// Cells holds the locked playfield contents; KindNone marks empty.
	Cells [BoardHeight][BoardWidth]Kind

	// HasActive is true while a piece is falling or locking. ActiveCells
	// and GhostCells are meaningful only when it is set.
	HasActive   bool
	ActiveKind  Kind
	ActiveCells [4]Offset

	// GhostCells is the hard-drop shadow: where the active piece would
	// rest if dropped now.
	GhostCells [4]Offset

	// Next is the preview kind.
	Next Kind

	Score int
	Lines int
	Level int

	Phase         Phase
	Paused        bool
	GameOver      bool
	QuitRequested bool
}

// Snapshot captures the current state. Cheap enough to build every frame.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Next:          g.next,
		Score:         g.tracker.Score,
		Lines:         g.tracker.Lines,
		Level:         g.tracker.Level,
		Phase:         g.phase,
		Paused:        g.paused,
		GameOver:      g.phase == PhaseGameOver,
		QuitRequested: g.quit,
	}
	for r := 0; r < BoardHeight; r++ {
		snap.Cells[r] = g.board.cells[r]
	}
	if g.phase == PhaseFalling || g.phase == PhaseLocking {
		snap.HasActive = true
		snap.ActiveKind = g.active.Kind
		snap.ActiveCells = g.active.Cells()
		snap.GhostCells = g.ghost().Cells()
	}
	return snap
}

// ghost returns the active piece dropped as far as it can fall.
func (g *Game) ghost() Piece {
	p := g.active
	for g.board.CanPlace(p.shifted(0, 1)) {
		p = p.shifted(0, 1)
	}
	return p
}

// PreviewCells returns kind k's rotation-state-0 cells relative to its
// bounding grid, for drawing the NEXT panel.
func PreviewCells(k Kind) [4]Offset {
	return shapes[k][0]
}

// PreviewGridSize returns the bounding grid side length for the preview.
func PreviewGridSize(k Kind) int {
	return k.gridSize()
}
