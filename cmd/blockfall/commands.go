// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is stamped by the release build via -ldflags.
var Version = "dev"

// --- Global Command Variables ---
var (
	playSeed       int64  // Fixed piece sequence seed; 0 picks a random one
	playStartLevel int    // Starting level override
	playNoGhost    bool   // Disable the hard-drop shadow
	playConfigPath string // Explicit config file path

	rootCmd = &cobra.Command{
		Use:   "blockfall",
		Short: "A falling-block puzzle game for your terminal",
		Long: `Blockfall is a terminal falling-block puzzle game.

Pieces fall into a 10x20 well; complete rows vanish and score points,
and gravity speeds up as you clear lines. Runs entirely in your
terminal with no external services.

Running blockfall with no subcommand starts a game, same as
'blockfall play'.`,
		RunE: runPlay, // Defined in cmd_play.go
	}

	playCmd = &cobra.Command{
		Use:   "play",
		Short: "Start a game session in the terminal",
		Long: `Starts an interactive game session on the alternate screen.

Controls:
  left/h, right/l   move
  down/j            soft drop
  space             hard drop
  up/x, z           rotate clockwise / counter-clockwise
  p                 pause
  r                 restart (after game over)
  q, esc, ctrl+c    quit

Examples:
  blockfall play               # Standard session
  blockfall play --seed 42     # Reproducible piece sequence
  blockfall play --level 5     # Skip the slow early levels
  blockfall play --no-ghost    # Hide the hard-drop shadow`,
		RunE: runPlay, // Defined in cmd_play.go
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the blockfall version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("blockfall %s\n", Version)
		},
	}
)

func init() {
	// The root command doubles as play, so both carry the same flags.
	for _, c := range []*cobra.Command{rootCmd, playCmd} {
		c.Flags().Int64Var(&playSeed, "seed", 0,
			"Seed for the piece sequence (0 picks a random seed)")
		c.Flags().IntVar(&playStartLevel, "level", 0,
			"Starting level (0 uses level 1)")
		c.Flags().BoolVar(&playNoGhost, "no-ghost", false,
			"Disable the hard-drop shadow")
		c.Flags().StringVar(&playConfigPath, "config", "",
			"Path to the config file (default ~/.blockfall/blockfall.yaml)")
	}

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(versionCmd)
}
