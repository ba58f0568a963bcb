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

func allKinds() []Kind {
	return []Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}
}

func TestShapeTables(t *testing.T) {
	for _, k := range allKinds() {
		t.Run(k.String(), func(t *testing.T) {
			size := k.gridSize()
			for rot := 0; rot < RotationStates; rot++ {
				cells := shapes[k][rot]
				seen := make(map[Offset]bool, 4)
				for _, cell := range cells {
					assert.GreaterOrEqual(t, cell.DC, 0)
					assert.Less(t, cell.DC, size)
					assert.GreaterOrEqual(t, cell.DR, 0)
					assert.Less(t, cell.DR, size)
					seen[cell] = true
				}
				assert.Len(t, seen, 4, "rot %d must have 4 distinct cells", rot)
			}
		})
	}
}

// TestRotationCycle verifies four clockwise quarter turns return every
// kind to its starting shape.
func TestRotationCycle(t *testing.T) {
	for _, k := range allKinds() {
		cells := baseShapes[k]
		for i := 0; i < RotationStates; i++ {
			cells = rotateCW(cells, k.gridSize())
		}
		assert.Equal(t, baseShapes[k], cells, "kind %s", k)
	}
}

func TestOPieceSymmetric(t *testing.T) {
	for rot := 1; rot < RotationStates; rot++ {
		assert.ElementsMatch(t, shapes[KindO][0], shapes[KindO][rot])
	}
}

func TestSpawnPiece(t *testing.T) {
	b := NewBoard()
	for _, k := range allKinds() {
		p := SpawnPiece(k)
		assert.Equal(t, 0, p.Rot)
		assert.Equal(t, spawnRow, p.Row)
		require.True(t, b.CanPlace(p), "kind %s must fit an empty board at spawn", k)
		for _, cell := range p.Cells() {
			assert.GreaterOrEqual(t, cell.DC, 0)
			assert.Less(t, cell.DC, BoardWidth)
			assert.Less(t, cell.DR, 2, "spawn cells stay near the top")
		}
	}
}

func TestTargetRot(t *testing.T) {
	assert.Equal(t, 1, targetRot(0, RotateCW))
	assert.Equal(t, 0, targetRot(3, RotateCW))
	assert.Equal(t, 3, targetRot(0, RotateCCW))
	assert.Equal(t, 2, targetRot(3, RotateCCW))
}

func TestKickTablesStartUnshifted(t *testing.T) {
	zero := Offset{}
	for _, k := range allKinds() {
		for rot := 0; rot < RotationStates; rot++ {
			for _, dir := range []RotationDir{RotateCW, RotateCCW} {
				kicks := kicksFor(k, rot, dir)
				require.NotEmpty(t, kicks)
				assert.Equal(t, zero, kicks[0], "kind %s rot %d", k, rot)
			}
		}
	}
}
