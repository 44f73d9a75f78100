// Package model defines the core types and interfaces for the UI.
package model

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/doudizhu-tally/internal/gesture"
	"github.com/palemoky/doudizhu-tally/internal/tally"
	"github.com/palemoky/doudizhu-tally/internal/ui/common"
)

// --- Tea Messages ---

// PendingTapMsg fires when a tap's double-tap window has closed.
type PendingTapMsg struct {
	Cell  gesture.Cell
	Token gesture.Token
}

// ClearNotificationMsg clears the toast if it is still the one identified by Seq.
type ClearNotificationMsg struct {
	Seq int
}

// --- Collaborators ---

// SoundPlayer plays named cues.
type SoundPlayer interface {
	Play(name string)
}

// Recorder receives board events.
type Recorder interface {
	Record(ev tally.Event)
}

// --- Model Interface ---

// Model is the main interface for TallyModel, used by the input and view packages.
type Model interface {
	// Board state
	Board() *tally.Board
	Grid() *Grid

	// Cursor
	Cursor() (row, col int)
	SetCursor(row, col int)
	MoveCursor(dRow, dCol int)

	// Gestures
	Tap(row, col int) tea.Cmd
	LongPress(row, col int) tea.Cmd
	PressReset() tea.Cmd
	Undo() tea.Cmd

	// Notification
	Notification() string

	// Help
	Keys() common.KeyMap
	Help() *help.Model
	ShowingHelp() bool
	SetShowingHelp(bool)

	// Dimensions
	Width() int
	Height() int
}
