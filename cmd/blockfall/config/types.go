// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package config loads and validates the blockfall YAML configuration.
//
// The file lives at ~/.blockfall/blockfall.yaml and is created with
// defaults on first run. All gameplay timing lives here so the engine
// carries no magic numbers; CLI flags override individual values.
package config

import (
	"time"

	"github.com/AleutianAI/blockfall/services/game/engine"
)

// BlockfallConfig is the root of the YAML configuration.
type BlockfallConfig struct {
	// Game holds the simulation tuning constants.
	Game GameConfig `yaml:"game" validate:"required"`

	// Log configures structured logging.
	Log LogConfig `yaml:"log"`
}

// GameConfig tunes the simulation. Durations are in milliseconds so the
// YAML stays plain integers.
type GameConfig struct {
	LockDelayMS   int `yaml:"lock_delay_ms" validate:"gte=0,lte=5000"`
	MaxLockResets int `yaml:"max_lock_resets" validate:"gte=0,lte=100"`
	GravityBaseMS int `yaml:"gravity_base_ms" validate:"gt=0"`
	GravityStepMS int `yaml:"gravity_step_ms" validate:"gte=0"`
	GravityMinMS  int `yaml:"gravity_min_ms" validate:"gt=0,ltefield=GravityBaseMS"`
	LinesPerLevel int `yaml:"lines_per_level" validate:"gt=0"`

	// Ghost toggles the hard-drop shadow in the renderer.
	Ghost bool `yaml:"ghost"`
}

// LogConfig configures the logging package.
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Dir   string `yaml:"dir"`
}

// Rules converts the game section into engine tuning.
func (g GameConfig) Rules() engine.Rules {
	return engine.Rules{
		LockDelay:     time.Duration(g.LockDelayMS) * time.Millisecond,
		MaxLockResets: g.MaxLockResets,
		GravityBase:   time.Duration(g.GravityBaseMS) * time.Millisecond,
		GravityStep:   time.Duration(g.GravityStepMS) * time.Millisecond,
		GravityMin:    time.Duration(g.GravityMinMS) * time.Millisecond,
		LinesPerLevel: g.LinesPerLevel,
	}
}

// DefaultConfig mirrors engine.DefaultRules plus ghost on and info-level
// stderr logging.
func DefaultConfig() BlockfallConfig {
	rules := engine.DefaultRules()
	return BlockfallConfig{
		Game: GameConfig{
			LockDelayMS:   int(rules.LockDelay / time.Millisecond),
			MaxLockResets: rules.MaxLockResets,
			GravityBaseMS: int(rules.GravityBase / time.Millisecond),
			GravityStepMS: int(rules.GravityStep / time.Millisecond),
			GravityMinMS:  int(rules.GravityMin / time.Millisecond),
			LinesPerLevel: rules.LinesPerLevel,
			Ghost:         true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
