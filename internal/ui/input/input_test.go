package input

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/doudizhu-tally/internal/tally"
	"github.com/palemoky/doudizhu-tally/internal/ui/common"
	"github.com/palemoky/doudizhu-tally/internal/ui/model"
)

func newTestModel(cfg tally.Config) *model.TallyModel {
	return model.NewTallyModel(cfg, model.Deps{Window: time.Minute})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func click(x, y int, button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: button}
}

// cellCenter returns screen coordinates inside a grid cell.
func cellCenter(row, col int) (x, y int) {
	return common.MarginLeft + col*common.CellWidth + common.CellWidth/2, common.GridTop + row
}

func TestHandleKeyPress_Movement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		keys    []tea.KeyMsg
		wantRow int
		wantCol int
	}{
		{"down", []tea.KeyMsg{{Type: tea.KeyDown}}, 1, 1},
		{"vim down", []tea.KeyMsg{runes("j"), runes("j")}, 2, 1},
		{"right", []tea.KeyMsg{{Type: tea.KeyRight}, runes("l")}, 0, 3},
		{"up wraps", []tea.KeyMsg{{Type: tea.KeyUp}}, tally.Rows - 1, 1},
		{"left wraps", []tea.KeyMsg{runes("h")}, 0, tally.Columns - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := newTestModel(tally.ClassicConfig())
			for _, k := range tt.keys {
				handled, cmd := HandleKeyPress(m, k)
				assert.True(t, handled)
				assert.Nil(t, cmd)
			}
			row, col := m.Cursor()
			assert.Equal(t, tt.wantRow, row)
			assert.Equal(t, tt.wantCol, col)
		})
	}
}

func TestHandleKeyPress_TapAndUndo(t *testing.T) {
	t.Parallel()

	m := newTestModel(tally.ClassicConfig())

	handled, cmd := HandleKeyPress(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, handled)
	require.NotNil(t, cmd, "first tap waits for the window")

	_, cmd = HandleKeyPress(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	assert.Nil(t, cmd)
	assert.Equal(t, 2, m.Board().Row(0).Count(1), "enter then space is a double tap")

	handled, _ = HandleKeyPress(m, runes("u"))
	assert.True(t, handled)
	assert.Zero(t, m.Board().Row(0).Count(1))

	_, cmd = HandleKeyPress(m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.NotNil(t, cmd)
	assert.Equal(t, tally.MsgNothingToUndo, m.Notification())
}

func TestHandleKeyPress_Reset(t *testing.T) {
	t.Parallel()

	m := newTestModel(tally.ClassicConfig())
	m.Tap(0, 1)
	m.Tap(0, 1)

	_, cmd := HandleKeyPress(m, runes("r"))
	require.NotNil(t, cmd)
	_, _ = HandleKeyPress(m, runes("r"))

	assert.Zero(t, m.Board().Row(0).Count(1), "double reset undoes")
	assert.Zero(t, m.Board().UndoDepth())
}

func TestHandleKeyPress_Clear(t *testing.T) {
	t.Parallel()

	t.Run("enabled", func(t *testing.T) {
		t.Parallel()
		m := newTestModel(tally.CompactConfig())
		m.Tap(0, 1)
		m.Tap(0, 1)

		handled, _ := HandleKeyPress(m, runes("x"))
		assert.True(t, handled)
		assert.Zero(t, m.Board().Row(0).Count(1))
	})

	t.Run("disabled binding", func(t *testing.T) {
		t.Parallel()
		m := newTestModel(tally.ClassicConfig())
		m.Tap(0, 1)
		m.Tap(0, 1)

		handled, _ := HandleKeyPress(m, runes("x"))
		assert.False(t, handled)
		assert.Equal(t, 2, m.Board().Row(0).Count(1))
	})
}

func TestHandleKeyPress_Help(t *testing.T) {
	t.Parallel()

	m := newTestModel(tally.ClassicConfig())

	handled, _ := HandleKeyPress(m, runes("?"))
	assert.True(t, handled)
	assert.True(t, m.ShowingHelp())

	handled, _ = HandleKeyPress(m, runes("j"))
	assert.False(t, handled, "help swallows nothing but close and quit")
	row, _ := m.Cursor()
	assert.Zero(t, row)

	handled, cmd := HandleKeyPress(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, handled)
	assert.Nil(t, cmd, "esc closes help instead of quitting")
	assert.False(t, m.ShowingHelp())
}

func TestHandleKeyPress_Quit(t *testing.T) {
	t.Parallel()

	for _, k := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		m := newTestModel(tally.ClassicConfig())
		handled, cmd := HandleKeyPress(m, k)
		assert.True(t, handled)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestHandleMouse(t *testing.T) {
	t.Parallel()

	t.Run("left click taps", func(t *testing.T) {
		t.Parallel()
		m := newTestModel(tally.ClassicConfig())
		x, y := cellCenter(4, 3)

		assert.NotNil(t, HandleMouse(m, click(x, y, tea.MouseButtonLeft)))
		assert.Nil(t, HandleMouse(m, click(x, y, tea.MouseButtonLeft)))

		assert.Equal(t, 2, m.Board().Row(4).Count(3))
		row, col := m.Cursor()
		assert.Equal(t, 4, row)
		assert.Equal(t, 3, col)
	})

	t.Run("right click clears", func(t *testing.T) {
		t.Parallel()
		m := newTestModel(tally.CompactConfig())
		m.Tap(2, 2)
		m.Tap(2, 2)
		x, y := cellCenter(2, 2)

		HandleMouse(m, click(x, y, tea.MouseButtonRight))
		assert.Zero(t, m.Board().Row(2).Count(2))
	})

	t.Run("reset bar", func(t *testing.T) {
		t.Parallel()
		m := newTestModel(tally.ClassicConfig())
		m.Tap(2, 2)
		m.Tap(2, 2)

		HandleMouse(m, click(common.MarginLeft, common.ResetLine, tea.MouseButtonLeft))
		HandleMouse(m, click(common.MarginLeft+1, common.ResetLine, tea.MouseButtonLeft))
		assert.Zero(t, m.Board().Row(2).Count(2))
	})

	t.Run("ignored", func(t *testing.T) {
		t.Parallel()
		m := newTestModel(tally.ClassicConfig())
		lx, ly := cellCenter(0, 0)

		assert.Nil(t, HandleMouse(m, click(lx, ly, tea.MouseButtonLeft)), "label column")
		assert.Nil(t, HandleMouse(m, click(0, 0, tea.MouseButtonLeft)), "outside the grid")

		x, y := cellCenter(0, 1)
		release := click(x, y, tea.MouseButtonLeft)
		release.Action = tea.MouseActionRelease
		assert.Nil(t, HandleMouse(m, release))
		assert.Zero(t, m.Board().UndoDepth())
	})
}
