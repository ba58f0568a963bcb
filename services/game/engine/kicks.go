// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package engine

// =============================================================================
// Wall Kick Tables
// =============================================================================
//
// Standard SRS kick offsets, expressed in board coordinates (rows grow
// downward, so the vertical components are negated relative to the usual
// guideline notation). Tables are indexed by the rotation state being
// left and the rotation direction; the first candidate is always the
// unshifted placement.

// kickCandidates is an ordered list of offsets to try for one rotation
// transition.
type kickCandidates []Offset

var (
	// jlstzKicks covers the J, L, S, T and Z kinds.
	jlstzKicks = [RotationStates][2]kickCandidates{
		0: {
			RotateCW:  {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
			RotateCCW: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		},
		1: {
			RotateCW:  {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
			RotateCCW: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
		},
		2: {
			RotateCW:  {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
			RotateCCW: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		},
		3: {
			RotateCW:  {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
			RotateCCW: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		},
	}

	// iKicks covers the I kind, whose elongated bounding grid needs wider
	// horizontal nudges.
	iKicks = [RotationStates][2]kickCandidates{
		0: {
			RotateCW:  {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
			RotateCCW: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
		},
		1: {
			RotateCW:  {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
			RotateCCW: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
		},
		2: {
			RotateCW:  {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
			RotateCCW: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
		},
		3: {
			RotateCW:  {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
			RotateCCW: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
		},
	}

	// oKicks: the O piece occupies the same cells in every state, so the
	// identity offset always succeeds.
	oKicks = kickCandidates{{0, 0}}
)

// kicksFor returns the ordered kick candidates for rotating kind k out of
// rotation state rot in direction dir.
func kicksFor(k Kind, rot int, dir RotationDir) kickCandidates {
	switch k {
	case KindO:
		return oKicks
	case KindI:
		return iKicks[rot][dir]
	default:
		return jlstzKicks[rot][dir]
	}
}
