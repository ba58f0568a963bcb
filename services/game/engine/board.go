// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package engine

import "fmt"

// =============================================================================
// Board Grid
// =============================================================================

const (
	// BoardWidth and BoardHeight are the visible playfield dimensions.
	BoardWidth  = 10
	BoardHeight = 20

	// spawnRow anchors a fresh piece one row above the visible field so
	// its bounding grid has clearance to rotate immediately.
	spawnRow = -1
)

// Board is the fixed 10x20 playfield. Each cell is either KindNone or the
// kind of the locked piece that filled it (used for color). Rows above the
// visible field (negative indices) are implicitly empty; everything else
// outside the bounds is solid boundary.
type Board struct {
	cells [BoardHeight][BoardWidth]Kind
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	b := &Board{}
	for r := range b.cells {
		for c := range b.cells[r] {
			b.cells[r][c] = KindNone
		}
	}
	return b
}

// Occupied reports whether (col, row) cannot hold a piece cell: outside
// the side or bottom bounds, or already filled. Rows above the visible
// field are free so pieces can spawn and kick through them.
func (b *Board) Occupied(col, row int) bool {
	if col < 0 || col >= BoardWidth || row >= BoardHeight {
		return true
	}
	if row < 0 {
		return false
	}
	return b.cells[row][col] != KindNone
}

// Cell returns the kind locked at (col, row), or KindNone if the cell is
// empty. Querying outside the visible field is a programming error.
func (b *Board) Cell(col, row int) Kind {
	if col < 0 || col >= BoardWidth || row < 0 || row >= BoardHeight {
		panic(fmt.Sprintf("engine: board cell (%d,%d) out of bounds", col, row))
	}
	return b.cells[row][col]
}

// CanPlace reports whether every cell of p maps to a free position.
func (b *Board) CanPlace(p Piece) bool {
	for _, cell := range p.Cells() {
		if b.Occupied(cell.DC, cell.DR) {
			return false
		}
	}
	return true
}

// Merge writes p's cells into the grid with its kind id. Cells above the
// visible field are dropped. The caller must have verified CanPlace;
// merging an invalid placement is a contract violation and panics.
func (b *Board) Merge(p Piece) {
	if !b.CanPlace(p) {
		panic(fmt.Sprintf("engine: merge of unplaceable %s piece at (%d,%d) rot %d",
			p.Kind, p.Col, p.Row, p.Rot))
	}
	for _, cell := range p.Cells() {
		if cell.DR >= 0 {
			b.cells[cell.DR][cell.DC] = p.Kind
		}
	}
}

// FullRows returns the indices of completely occupied rows, ordered top
// to bottom.
func (b *Board) FullRows() []int {
	var full []int
	for r := 0; r < BoardHeight; r++ {
		complete := true
		for c := 0; c < BoardWidth; c++ {
			if b.cells[r][c] == KindNone {
				complete = false
				break
			}
		}
		if complete {
			full = append(full, r)
		}
	}
	return full
}

// ClearRows removes the given rows, shifts every surviving row down by
// the number of cleared rows below it, and refills the top with empty
// rows. Handles multiple non-adjacent rows in one call by compacting the
// kept rows rather than shifting in place.
func (b *Board) ClearRows(rows []int) {
	if len(rows) == 0 {
		return
	}
	cleared := make(map[int]bool, len(rows))
	for _, r := range rows {
		cleared[r] = true
	}

	var kept [][BoardWidth]Kind
	for r := 0; r < BoardHeight; r++ {
		if !cleared[r] {
			kept = append(kept, b.cells[r])
		}
	}

	emptyRows := BoardHeight - len(kept)
	for r := 0; r < BoardHeight; r++ {
		if r < emptyRows {
			for c := 0; c < BoardWidth; c++ {
				b.cells[r][c] = KindNone
			}
		} else {
			b.cells[r] = kept[r-emptyRows]
		}
	}
}
