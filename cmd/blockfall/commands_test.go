// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootHasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["play"])
	assert.True(t, names["version"])
}

func TestPlayFlagsRegistered(t *testing.T) {
	for _, name := range []string{"seed", "level", "no-ghost", "config"} {
		require.NotNil(t, playCmd.Flags().Lookup(name), "missing --%s", name)
	}
}

func TestPlayRefusesNonTerminal(t *testing.T) {
	// Test processes never have a TTY on stdout.
	err := runPlay(playCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}
