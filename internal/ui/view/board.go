// Package view provides UI rendering functions.
package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/doudizhu-tally/internal/tally"
	"github.com/palemoky/doudizhu-tally/internal/ui/common"
	"github.com/palemoky/doudizhu-tally/internal/ui/model"
)

const title = "🃏 斗地主记牌器"

// CreateViewRenderer creates a view renderer function that can be injected into TallyModel.
func CreateViewRenderer() func(model.Model) string {
	return Render
}

// Render draws the whole screen. Lines are placed at the offsets in
// common/layout.go so mouse coordinates map back to cells.
func Render(m model.Model) string {
	lines := make([]string, common.HelpLine)

	lines[common.TitleLine] = common.TitleStyle(title)
	lines[common.HeaderLine] = renderHeader()
	for row := range tally.Rows {
		lines[common.GridTop+row] = renderRow(m, row)
	}
	lines[common.ResetLine] = common.ResetBarStyle.Render("重置 · 双击撤销")
	if n := m.Notification(); n != "" {
		lines[common.ToastLine] = common.ToastStyle.Render(n)
	}

	margin := strings.Repeat(" ", common.MarginLeft)
	var sb strings.Builder
	for _, line := range lines {
		if line != "" {
			sb.WriteString(margin)
			sb.WriteString(line)
		}
		sb.WriteString("\n")
	}

	sb.WriteString(margin)
	sb.WriteString(renderHelp(m))
	return sb.String()
}

func renderHeader() string {
	cells := make([]string, 0, tally.Columns)
	cells = append(cells, common.HeaderStyle.Render("剩余"))
	for col := 1; col < tally.Columns; col++ {
		cells = append(cells, common.HeaderStyle.Render(strconv.Itoa(col)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func renderRow(m model.Model, row int) string {
	grid := m.Grid()
	curRow, curCol := m.Cursor()

	cells := make([]string, 0, tally.Columns)
	label := fmt.Sprintf("%-2s %2d", grid.Text(row, tally.LabelColumn), grid.Remaining(row))
	labelStyle := common.LabelStyle.Inherit(common.BackgroundStyle(grid.CellColor(row, tally.LabelColumn)))
	cells = append(cells, labelStyle.Render(label))

	for col := 1; col < tally.Columns; col++ {
		style := common.CellStyle.Inherit(common.BackgroundStyle(grid.CellColor(row, col)))
		if row == curRow && col == curCol {
			style = common.CursorStyle.Inherit(style)
		}
		text := grid.Text(row, col)
		if text == "" {
			text = "·"
		}
		cells = append(cells, style.Render(text))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
