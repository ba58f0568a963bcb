// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillRow fills one row with kind k, skipping the listed columns.
func fillRow(t *testing.T, b *Board, row int, k Kind, skip ...int) {
	t.Helper()
	skipped := make(map[int]bool, len(skip))
	for _, c := range skip {
		skipped[c] = true
	}
	for c := 0; c < BoardWidth; c++ {
		if !skipped[c] {
			b.cells[row][c] = k
		}
	}
}

func TestBoardOccupied(t *testing.T) {
	b := NewBoard()
	b.cells[10][4] = KindT

	tests := []struct {
		name     string
		col, row int
		want     bool
	}{
		{"empty cell", 0, 0, false},
		{"filled cell", 4, 10, true},
		{"left of field", -1, 5, true},
		{"right of field", BoardWidth, 5, true},
		{"below floor", 3, BoardHeight, true},
		{"above field is free", 3, -1, false},
		{"far above field is free", 3, -4, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Occupied(tt.col, tt.row))
		})
	}
}

func TestBoardCanPlace(t *testing.T) {
	b := NewBoard()
	b.cells[19][5] = KindZ

	tests := []struct {
		name  string
		piece Piece
		want  bool
	}{
		{"empty area", Piece{Kind: KindT, Col: 3, Row: 5}, true},
		{"spawn clearance above field", Piece{Kind: KindI, Col: 3, Row: spawnRow}, true},
		{"overlapping stack", Piece{Kind: KindO, Col: 4, Row: 18}, false},
		{"past left wall", Piece{Kind: KindJ, Col: -1, Row: 5}, false},
		{"past right wall", Piece{Kind: KindL, Col: 8, Row: 5}, false},
		{"past floor", Piece{Kind: KindS, Col: 3, Row: 19}, false},
		{"resting on floor", Piece{Kind: KindT, Col: 0, Row: 17}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.CanPlace(tt.piece))
		})
	}
}

func TestBoardMerge(t *testing.T) {
	b := NewBoard()
	p := Piece{Kind: KindJ, Col: 0, Row: 17}
	require.True(t, b.CanPlace(p))

	b.Merge(p)

	for _, cell := range p.Cells() {
		assert.Equal(t, KindJ, b.Cell(cell.DC, cell.DR))
	}
	// Everything else stays empty.
	assert.Equal(t, KindNone, b.Cell(5, 5))
}

func TestBoardMergeContractViolationPanics(t *testing.T) {
	b := NewBoard()
	b.cells[19][0] = KindI

	assert.Panics(t, func() {
		b.Merge(Piece{Kind: KindJ, Col: 0, Row: 18})
	})
}

func TestBoardFullRows(t *testing.T) {
	b := NewBoard()
	fillRow(t, b, 19, KindI)
	fillRow(t, b, 17, KindT)
	fillRow(t, b, 15, KindS, 4) // gap at column 4

	assert.Equal(t, []int{17, 19}, b.FullRows())
}

func TestBoardClearRowsSingle(t *testing.T) {
	b := NewBoard()
	fillRow(t, b, 19, KindI)
	b.cells[18][3] = KindT

	b.ClearRows([]int{19})

	assert.Empty(t, b.FullRows())
	// The partial row shifted down onto the floor.
	assert.Equal(t, KindT, b.Cell(3, 19))
	assert.Equal(t, KindNone, b.Cell(3, 18))
}

func TestBoardClearRowsNonAdjacent(t *testing.T) {
	b := NewBoard()
	// Stack (top to bottom): partial A, full, partial B, full.
	b.cells[16][0] = KindJ // marker A
	fillRow(t, b, 17, KindI)
	b.cells[18][9] = KindL // marker B
	fillRow(t, b, 19, KindT)

	b.ClearRows([]int{17, 19})

	// Marker A shifts down by two rows, marker B by one.
	assert.Equal(t, KindJ, b.Cell(0, 18))
	assert.Equal(t, KindL, b.Cell(9, 19))
	// Vacated top rows are empty.
	for c := 0; c < BoardWidth; c++ {
		assert.Equal(t, KindNone, b.Cell(c, 16))
		assert.Equal(t, KindNone, b.Cell(c, 17))
	}
	assert.Empty(t, b.FullRows())
}

func TestBoardClearRowsNoop(t *testing.T) {
	b := NewBoard()
	b.cells[19][2] = KindZ

	b.ClearRows(nil)

	assert.Equal(t, KindZ, b.Cell(2, 19))
}
