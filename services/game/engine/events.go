// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package engine

// =============================================================================
// Input Events
// =============================================================================

// Event is an abstract player input. The terminal layer maps raw key
// presses to events and queues them; Game.Tick drains the queue in
// arrival order each tick.
type Event int8

const (
	EventMoveLeft Event = iota
	EventMoveRight
	EventSoftDrop
	EventHardDrop
	EventRotateCW
	EventRotateCCW
	EventPause
	EventQuit
)

// String returns the event name for logging.
func (e Event) String() string {
	switch e {
	case EventMoveLeft:
		return "move_left"
	case EventMoveRight:
		return "move_right"
	case EventSoftDrop:
		return "soft_drop"
	case EventHardDrop:
		return "hard_drop"
	case EventRotateCW:
		return "rotate_cw"
	case EventRotateCCW:
		return "rotate_ccw"
	case EventPause:
		return "pause"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}
