// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package engine

import (
	"math/rand"
	"time"
)

// =============================================================================
// Piece Generator
// =============================================================================

// Generator produces the sequence of upcoming piece kinds. It owns its
// randomness source, so a fixed seed replays the same sequence; this is
// what the deterministic engine tests rely on.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator seeded with seed. A zero seed selects
// a time-based seed for normal play.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Next returns the next kind, uniformly distributed over the seven
// shapes. It never fails; the falling piece and the preview slot are
// always defined while a game is active.
func (g *Generator) Next() Kind {
	return Kind(g.rng.Intn(KindCount))
}
