package model

import (
	"github.com/palemoky/doudizhu-tally/internal/logger"
	"github.com/palemoky/doudizhu-tally/internal/tally"
)

// Grid is the on-screen projection of the board. It implements
// tally.Renderer; the view only ever reads from it.
type Grid struct {
	text      [tally.Rows][tally.Columns]string
	remaining [tally.Rows]int
	rowColor  [tally.Rows]tally.Color
	cellColor [tally.Rows][tally.Columns]tally.Color
	messages  []string
}

// NewGrid creates an empty grid.
func NewGrid() *Grid {
	return &Grid{}
}

func (g *Grid) SetCellText(row, col int, text string) { g.text[row][col] = text }
func (g *Grid) SetRemainingText(row, value int)       { g.remaining[row] = value }

// SetRowBackground paints the whole row and drops per-cell overrides.
func (g *Grid) SetRowBackground(row int, color tally.Color) {
	g.rowColor[row] = color
	for col := range tally.Columns {
		g.cellColor[row][col] = tally.ColorDefault
	}
}

func (g *Grid) SetCellBackground(row, col int, color tally.Color) { g.cellColor[row][col] = color }
func (g *Grid) ShowMessage(text string)                           { g.messages = append(g.messages, text) }

func (g *Grid) LogDiagnostic(row, col, increment int) {
	logger.LogDebug("double tap row=%d col=%d +%d", row, col, increment)
}

// Text returns a cell's text.
func (g *Grid) Text(row, col int) string { return g.text[row][col] }

// Remaining returns a row's remaining count as last rendered.
func (g *Grid) Remaining(row int) int { return g.remaining[row] }

// RowColor returns a row's background.
func (g *Grid) RowColor(row int) tally.Color { return g.rowColor[row] }

// CellColor returns the effective background of a cell.
func (g *Grid) CellColor(row, col int) tally.Color {
	if c := g.cellColor[row][col]; c != tally.ColorDefault {
		return c
	}
	return g.rowColor[row]
}

// TakeMessages returns and clears messages shown since the last call.
func (g *Grid) TakeMessages() []string {
	msgs := g.messages
	g.messages = nil
	return msgs
}
