// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/blockfall/services/game/engine"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	return New(Options{
		Rules:     engine.DefaultRules(),
		Seed:      1,
		ShowGhost: true,
	})
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// update runs one Update and casts the result back to Model.
func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok, "Update must return a tui.Model")
	return model, cmd
}

func minActiveRow(snap engine.Snapshot) int {
	minRow := engine.BoardHeight
	for _, cell := range snap.ActiveCells {
		if cell.DR < minRow {
			minRow = cell.DR
		}
	}
	return minRow
}

func TestInitSchedulesTick(t *testing.T) {
	m := newTestModel(t)
	assert.NotNil(t, m.Init())
}

func TestMovementKeysQueueEvents(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want engine.Event
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, engine.EventMoveLeft},
		{"h", keyRune('h'), engine.EventMoveLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, engine.EventMoveRight},
		{"soft drop", keyRune('j'), engine.EventSoftDrop},
		{"hard drop", tea.KeyMsg{Type: tea.KeySpace}, engine.EventHardDrop},
		{"rotate cw", keyRune('x'), engine.EventRotateCW},
		{"rotate ccw", keyRune('z'), engine.EventRotateCCW},
		{"pause", keyRune('p'), engine.EventPause},
		{"quit", keyRune('q'), engine.EventQuit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			m, _ = update(t, m, tt.msg)
			require.Len(t, m.pending, 1)
			assert.Equal(t, tt.want, m.pending[0])
		})
	}
}

func TestTickSpawnsAndFalls(t *testing.T) {
	m := newTestModel(t)

	t0 := time.Now()
	m, cmd := update(t, m, TickMsg(t0))
	assert.NotNil(t, cmd)
	require.True(t, m.Snapshot().HasActive, "first tick must spawn a piece")
	startRow := minActiveRow(m.Snapshot())

	// Well past the level-1 gravity interval.
	m, _ = update(t, m, TickMsg(t0.Add(1200*time.Millisecond)))
	assert.Greater(t, minActiveRow(m.Snapshot()), startRow, "gravity must pull the piece down")
}

func TestQueuedEventsDrainOnTick(t *testing.T) {
	m := newTestModel(t)
	t0 := time.Now()
	m, _ = update(t, m, TickMsg(t0))

	startCol := m.Snapshot().ActiveCells[0].DC
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, TickMsg(t0.Add(10*time.Millisecond)))

	assert.Equal(t, startCol-2, m.Snapshot().ActiveCells[0].DC)
	assert.Empty(t, m.pending, "queue must drain each tick")
}

func TestQuitKeyStopsProgramOnNextTick(t *testing.T) {
	m := newTestModel(t)
	t0 := time.Now()
	m, _ = update(t, m, TickMsg(t0))

	m, _ = update(t, m, keyRune('q'))
	m, cmd := update(t, m, TickMsg(t0.Add(10*time.Millisecond)))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View(), "view goes blank while quitting")
}

func TestRestartIgnoredMidGame(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, TickMsg(time.Now()))

	before := m.game
	m, _ = update(t, m, keyRune('r'))
	assert.Same(t, before, m.game, "restart must not interrupt a live game")
}

func TestRestartAfterGameOver(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, TickMsg(time.Now()))

	before := m.game
	m.snap.GameOver = true
	m.loggedOver = true

	m, _ = update(t, m, keyRune('r'))
	assert.NotSame(t, before, m.game, "restart must replace the game")
	assert.False(t, m.Snapshot().GameOver)
	assert.False(t, m.loggedOver)
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t)
	assert.False(t, m.help.ShowAll)

	m, _ = update(t, m, keyRune('?'))
	assert.True(t, m.help.ShowAll)

	m, _ = update(t, m, keyRune('?'))
	assert.False(t, m.help.ShowAll)
}

func TestViewShowsBoardAndPanel(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, TickMsg(time.Now()))

	view := m.View()
	assert.Contains(t, view, "NEXT")
	assert.Contains(t, view, "SCORE")
	assert.Contains(t, view, "LINES")
	assert.Contains(t, view, "LEVEL")
	assert.NotContains(t, view, "GAME OVER")
}

func TestViewShowsStatusBadges(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, TickMsg(time.Now()))

	m.snap.Paused = true
	assert.Contains(t, m.View(), "PAUSED")

	m.snap.Paused = false
	m.snap.GameOver = true
	assert.Contains(t, m.View(), "GAME OVER")
}

func TestRenderPreviewCoversAllKinds(t *testing.T) {
	for k := engine.Kind(0); k < engine.KindCount; k++ {
		rows := renderPreview(k)
		require.Len(t, rows, 2)
		joined := strings.Join(rows, "")
		assert.Contains(t, joined, "█", "kind %s preview must draw cells", k)
	}
}
