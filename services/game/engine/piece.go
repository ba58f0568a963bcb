// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package engine implements the falling-block game simulation core.
//
// # Description
//
// The engine owns the playfield grid, the seven tetromino kinds with their
// rotation and wall-kick tables, the tick-driven state machine (spawn,
// fall, lock, line clear, game over), and the scoring/level model. It is
// deterministic for a fixed RNG seed and performs no terminal I/O: callers
// drive it through Game.Tick and render the returned Snapshot.
//
// # Thread Safety
//
// A Game is owned by a single goroutine (the UI event loop). No internal
// locking is performed.
package engine

// =============================================================================
// Tetromino Kinds
// =============================================================================

// Kind identifies one of the seven tetromino shapes.
//
// KindNone is the empty-cell sentinel used by the board grid; it is never
// a valid kind for a live piece.
type Kind int8

const (
	KindNone Kind = iota - 1
	KindI
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL

	// KindCount is the number of real kinds (excludes KindNone).
	KindCount = 7
)

// String returns the conventional one-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "?"
	}
}

// Valid reports whether k is one of the seven real kinds.
func (k Kind) Valid() bool {
	return k >= KindI && k < KindCount
}

// gridSize returns the side length of the bounding grid the kind's shape
// is defined on. Rotation happens inside this grid.
func (k Kind) gridSize() int {
	switch k {
	case KindI:
		return 4
	case KindO:
		return 2
	default:
		return 3
	}
}

// Offset is a relative (column, row) cell position. Rows grow downward.
type Offset struct {
	DC int
	DR int
}

// baseShapes holds each kind's rotation-state-0 cells on its bounding
// grid. Row 0 is the top of the grid.
var baseShapes = [KindCount][4]Offset{
	KindI: {{0, 1}, {1, 1}, {2, 1}, {3, 1}},
	KindO: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	KindT: {{1, 0}, {0, 1}, {1, 1}, {2, 1}},
	KindS: {{1, 0}, {2, 0}, {0, 1}, {1, 1}},
	KindZ: {{0, 0}, {1, 0}, {1, 1}, {2, 1}},
	KindJ: {{0, 0}, {0, 1}, {1, 1}, {2, 1}},
	KindL: {{2, 0}, {0, 1}, {1, 1}, {2, 1}},
}

// shapes caches the cells for every (kind, rotation state) pair. Built
// once at package init by rotating the base shape clockwise three times.
var shapes [KindCount][RotationStates][4]Offset

// RotationStates is the number of discrete orientations per kind. Kinds
// with symmetry (O, S, Z, I) still carry four table entries; symmetric
// states simply repeat cells.
const RotationStates = 4

func init() {
	for k := KindI; k < KindCount; k++ {
		cells := baseShapes[k]
		size := k.gridSize()
		for rot := 0; rot < RotationStates; rot++ {
			shapes[k][rot] = cells
			cells = rotateCW(cells, size)
		}
	}
}

// rotateCW maps each cell (c, r) to (size-1-r, c), a quarter turn
// clockwise inside the bounding grid.
func rotateCW(cells [4]Offset, size int) [4]Offset {
	var out [4]Offset
	for i, cell := range cells {
		out[i] = Offset{DC: size - 1 - cell.DR, DR: cell.DC}
	}
	return out
}

// =============================================================================
// Piece
// =============================================================================

// Piece is an active tetromino: a kind, a rotation state, and the anchor
// position of its bounding grid on the board. Piece has value semantics;
// the state machine validates a candidate copy before committing it.
type Piece struct {
	Kind Kind
	Rot  int
	Col  int
	Row  int
}

// SpawnPiece returns the piece for k at its spawn position: bounding grid
// horizontally centered, anchored one row above the visible field.
func SpawnPiece(k Kind) Piece {
	return Piece{
		Kind: k,
		Col:  (BoardWidth - k.gridSize()) / 2,
		Row:  spawnRow,
	}
}

// Cells returns the four absolute board cells the piece occupies.
func (p Piece) Cells() [4]Offset {
	var out [4]Offset
	for i, cell := range shapes[p.Kind][p.Rot] {
		out[i] = Offset{DC: p.Col + cell.DC, DR: p.Row + cell.DR}
	}
	return out
}

// shifted returns a copy of the piece moved by (dc, dr).
func (p Piece) shifted(dc, dr int) Piece {
	p.Col += dc
	p.Row += dr
	return p
}

// RotationDir selects the direction of a rotation request.
type RotationDir int8

const (
	RotateCW RotationDir = iota
	RotateCCW
)

// targetRot returns the rotation state reached from rot in direction dir.
func targetRot(rot int, dir RotationDir) int {
	if dir == RotateCW {
		return (rot + 1) % RotationStates
	}
	return (rot + RotationStates - 1) % RotationStates
}
