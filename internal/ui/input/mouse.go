package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/doudizhu-tally/internal/tally"
	"github.com/palemoky/doudizhu-tally/internal/ui/common"
	"github.com/palemoky/doudizhu-tally/internal/ui/model"
)

// HandleMouse maps clicks to gestures. Left click taps a cell, right click
// long-presses it, a click on the reset bar presses the reset control.
func HandleMouse(m model.Model, msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || m.ShowingHelp() {
		return nil
	}

	if common.OnResetBar(msg.X, msg.Y) {
		if msg.Button == tea.MouseButtonLeft {
			return m.PressReset()
		}
		return nil
	}

	row, col, ok := common.CellAt(msg.X, msg.Y)
	if !ok || col == tally.LabelColumn {
		return nil
	}
	m.SetCursor(row, col)

	switch msg.Button {
	case tea.MouseButtonLeft:
		return m.Tap(row, col)
	case tea.MouseButtonRight:
		return m.LongPress(row, col)
	}
	return nil
}
