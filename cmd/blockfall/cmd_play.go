// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/AleutianAI/blockfall/cmd/blockfall/config"
	"github.com/AleutianAI/blockfall/pkg/logging"
	"github.com/AleutianAI/blockfall/services/game/tui"
)

// runPlay loads the configuration, applies flag overrides and runs the
// game on the alternate screen until the player quits.
func runPlay(cmd *cobra.Command, args []string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("blockfall play needs an interactive terminal")
	}

	cfg, err := config.Load(playConfigPath)
	if err != nil {
		return err
	}

	rules := cfg.Game.Rules()
	if playStartLevel > 0 {
		rules.StartLevel = playStartLevel
	}
	showGhost := cfg.Game.Ghost && !playNoGhost

	// The alternate screen owns the terminal, so stderr logging stays off
	// for the duration of the session.
	logger := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.Log.Level),
		LogDir: cfg.Log.Dir,
		Quiet:  true,
	})
	defer logger.Close()

	sessionID := uuid.NewString()
	sessionLogger := logger.With("session_id", sessionID)
	sessionLogger.Info("session started",
		"seed", playSeed,
		"start_level", rules.StartLevel,
		"ghost", showGhost,
	)

	model := tui.New(tui.Options{
		Rules:     rules,
		Seed:      playSeed,
		ShowGhost: showGhost,
		Logger:    sessionLogger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("game session failed: %w", err)
	}

	if m, ok := final.(tui.Model); ok {
		snap := m.Snapshot()
		sessionLogger.Info("session ended",
			"score", snap.Score,
			"lines", snap.Lines,
			"level", snap.Level,
		)
		fmt.Printf("Final score: %d  (lines: %d, level: %d)\n",
			snap.Score, snap.Lines, snap.Level)
	}
	return nil
}
