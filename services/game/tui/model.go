// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AleutianAI/blockfall/pkg/logging"
	"github.com/AleutianAI/blockfall/services/game/engine"
)

// DefaultFrameInterval is the tick rate of the UI loop. Input events
// queue between ticks and are drained into the engine each frame.
const DefaultFrameInterval = 50 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a command that delivers the next TickMsg.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Options configures a game session model.
type Options struct {
	// Rules are the engine tuning constants, usually from config.
	Rules engine.Rules

	// Seed fixes the piece sequence; zero picks a time-based seed.
	Seed int64

	// ShowGhost toggles the hard-drop shadow.
	ShowGhost bool

	// Frame overrides DefaultFrameInterval when positive.
	Frame time.Duration

	// Logger receives session lifecycle events. Defaults to a stderr
	// logger when nil.
	Logger *logging.Logger
}

// Model is the Bubble Tea model for one terminal play session. It owns
// the engine Game exclusively and replaces it wholesale on restart.
type Model struct {
	game *engine.Game
	snap engine.Snapshot

	opts     Options
	frame    time.Duration
	keys     KeyMap
	help     help.Model
	pending  []engine.Event
	lastTick time.Time

	logger     *logging.Logger
	loggedOver bool
	quitting   bool
	width      int
}

// New returns a model ready for tea.NewProgram.
func New(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = logging.Default()
	}
	frame := opts.Frame
	if frame <= 0 {
		frame = DefaultFrameInterval
	}
	game := engine.NewGame(opts.Rules, opts.Seed)
	return Model{
		game:   game,
		snap:   game.Snapshot(),
		opts:   opts,
		frame:  frame,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: opts.Logger,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.frame)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}
	return m, nil
}

// handleKey queues engine events for the next tick. Session keys
// (restart, quit, help) act immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.pending = append(m.pending, engine.EventQuit)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Restart):
		if m.snap.GameOver {
			m.logger.Info("game restarted")
			m.game = engine.NewGame(m.opts.Rules, m.opts.Seed)
			m.snap = m.game.Snapshot()
			m.pending = nil
			m.loggedOver = false
		}

	case key.Matches(msg, m.keys.Left):
		m.pending = append(m.pending, engine.EventMoveLeft)
	case key.Matches(msg, m.keys.Right):
		m.pending = append(m.pending, engine.EventMoveRight)
	case key.Matches(msg, m.keys.SoftDrop):
		m.pending = append(m.pending, engine.EventSoftDrop)
	case key.Matches(msg, m.keys.HardDrop):
		m.pending = append(m.pending, engine.EventHardDrop)
	case key.Matches(msg, m.keys.RotateCW):
		m.pending = append(m.pending, engine.EventRotateCW)
	case key.Matches(msg, m.keys.RotateCCW):
		m.pending = append(m.pending, engine.EventRotateCCW)
	case key.Matches(msg, m.keys.Pause):
		m.pending = append(m.pending, engine.EventPause)
	}
	return m, nil
}

// handleTick advances the simulation by the measured elapsed time and
// schedules the next frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := m.frame
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	m.snap = m.game.Tick(elapsed, m.pending)
	m.pending = nil

	if m.snap.GameOver && !m.loggedOver {
		m.loggedOver = true
		m.logger.Info("game over",
			"score", m.snap.Score,
			"lines", m.snap.Lines,
			"level", m.snap.Level,
		)
	}

	if m.snap.QuitRequested {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.frame)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.render()
}

// Snapshot exposes the last rendered snapshot, e.g. for final-score
// reporting after the program exits.
func (m Model) Snapshot() engine.Snapshot {
	return m.snap
}
