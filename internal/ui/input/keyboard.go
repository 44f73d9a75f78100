// Package input handles keyboard and mouse input processing.
package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/doudizhu-tally/internal/ui/model"
)

// HandleKeyPress handles keyboard input and returns whether it was handled.
func HandleKeyPress(m model.Model, msg tea.KeyMsg) (bool, tea.Cmd) {
	keys := m.Keys()

	// 帮助页打开时只响应关闭和退出
	if m.ShowingHelp() {
		switch {
		case key.Matches(msg, keys.Help), msg.Type == tea.KeyEsc:
			m.SetShowingHelp(false)
			return true, nil
		case key.Matches(msg, keys.Quit):
			return true, tea.Quit
		}
		return false, nil
	}

	row, col := m.Cursor()
	switch {
	case key.Matches(msg, keys.Quit):
		return true, tea.Quit
	case key.Matches(msg, keys.Help):
		m.SetShowingHelp(true)
		return true, nil
	case key.Matches(msg, keys.Up):
		m.MoveCursor(-1, 0)
	case key.Matches(msg, keys.Down):
		m.MoveCursor(1, 0)
	case key.Matches(msg, keys.Left):
		m.MoveCursor(0, -1)
	case key.Matches(msg, keys.Right):
		m.MoveCursor(0, 1)
	case key.Matches(msg, keys.Tap):
		return true, m.Tap(row, col)
	case key.Matches(msg, keys.Clear):
		return true, m.LongPress(row, col)
	case key.Matches(msg, keys.Reset):
		return true, m.PressReset()
	case key.Matches(msg, keys.Undo):
		return true, m.Undo()
	default:
		return false, nil
	}
	return true, nil
}
