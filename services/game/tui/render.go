// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/AleutianAI/blockfall/services/game/engine"
)

// Each board cell renders as two terminal columns so cells come out
// roughly square.
const (
	cellFilled = "██"
	cellGhost  = "░░"
	cellEmpty  = " ·"
)

// =============================================================================
// Styles
// =============================================================================

var kindColors = map[engine.Kind]lipgloss.Color{
	engine.KindI: lipgloss.Color("45"),  // cyan
	engine.KindO: lipgloss.Color("226"), // yellow
	engine.KindT: lipgloss.Color("201"), // magenta
	engine.KindS: lipgloss.Color("46"),  // green
	engine.KindZ: lipgloss.Color("196"), // red
	engine.KindJ: lipgloss.Color("33"),  // blue
	engine.KindL: lipgloss.Color("208"), // orange
}

var (
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	ghostStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	panelValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	pausedBadge = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Background(lipgloss.Color("58")).
			Padding(0, 1)

	gameOverBadge = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("124")).
			Padding(0, 1)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

func kindStyle(k engine.Kind) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(kindColors[k])
}

// =============================================================================
// Rendering
// =============================================================================

// render draws the full frame: board, side panel, help footer.
func (m Model) render() string {
	board := renderBoard(m.snap, m.opts.ShowGhost)
	panel := m.renderPanel()

	main := lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", panel)
	return main + "\n" + m.help.View(m.keys) + "\n"
}

// renderBoard draws the playfield from the snapshot: locked cells, the
// ghost shadow, then the active piece on top.
func renderBoard(snap engine.Snapshot, showGhost bool) string {
	type cellClass int8
	const (
		classEmpty cellClass = iota
		classLocked
		classGhost
		classActive
	)

	var class [engine.BoardHeight][engine.BoardWidth]cellClass
	var kinds [engine.BoardHeight][engine.BoardWidth]engine.Kind

	for r := 0; r < engine.BoardHeight; r++ {
		for c := 0; c < engine.BoardWidth; c++ {
			if k := snap.Cells[r][c]; k != engine.KindNone {
				class[r][c] = classLocked
				kinds[r][c] = k
			}
		}
	}
	if snap.HasActive {
		if showGhost {
			for _, cell := range snap.GhostCells {
				if cell.DR >= 0 {
					class[cell.DR][cell.DC] = classGhost
				}
			}
		}
		for _, cell := range snap.ActiveCells {
			if cell.DR >= 0 {
				class[cell.DR][cell.DC] = classActive
				kinds[cell.DR][cell.DC] = snap.ActiveKind
			}
		}
	}

	var b strings.Builder
	for r := 0; r < engine.BoardHeight; r++ {
		if r > 0 {
			b.WriteString("\n")
		}
		for c := 0; c < engine.BoardWidth; c++ {
			switch class[r][c] {
			case classActive, classLocked:
				b.WriteString(kindStyle(kinds[r][c]).Render(cellFilled))
			case classGhost:
				b.WriteString(ghostStyle.Render(cellGhost))
			default:
				b.WriteString(emptyStyle.Render(cellEmpty))
			}
		}
	}
	return borderStyle.Render(b.String())
}

// renderPanel draws the NEXT preview, the counters and the status badge.
func (m Model) renderPanel() string {
	snap := m.snap

	lines := []string{
		panelTitleStyle.Render("NEXT"),
		"",
	}
	lines = append(lines, renderPreview(snap.Next)...)
	lines = append(lines,
		"",
		fmt.Sprintf("%s  %s", panelTitleStyle.Render("SCORE"), panelValueStyle.Render(fmt.Sprintf("%d", snap.Score))),
		fmt.Sprintf("%s  %s", panelTitleStyle.Render("LINES"), panelValueStyle.Render(fmt.Sprintf("%d", snap.Lines))),
		fmt.Sprintf("%s  %s", panelTitleStyle.Render("LEVEL"), panelValueStyle.Render(fmt.Sprintf("%d", snap.Level))),
	)

	switch {
	case snap.GameOver:
		lines = append(lines,
			"",
			gameOverBadge.Render("GAME OVER"),
			hintStyle.Render("r restart · q quit"),
		)
	case snap.Paused:
		lines = append(lines,
			"",
			pausedBadge.Render("PAUSED"),
			hintStyle.Render("p resume"),
		)
	}

	return strings.Join(lines, "\n")
}

// renderPreview draws the next kind's resting shape on two rows.
func renderPreview(k engine.Kind) []string {
	if !k.Valid() {
		return []string{"", ""}
	}
	cells := engine.PreviewCells(k)
	size := engine.PreviewGridSize(k)
	style := kindStyle(k)

	rows := make([]string, 2)
	for r := 0; r < 2; r++ {
		var b strings.Builder
		for c := 0; c < size; c++ {
			filled := false
			for _, cell := range cells {
				if cell.DC == c && cell.DR == r {
					filled = true
					break
				}
			}
			if filled {
				b.WriteString(style.Render(cellFilled))
			} else {
				b.WriteString("  ")
			}
		}
		rows[r] = b.String()
	}
	return rows
}
