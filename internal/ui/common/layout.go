package common

import "github.com/palemoky/doudizhu-tally/internal/tally"

// Screen layout. The view renders at fixed offsets so mouse clicks can be
// mapped back to cells without measuring the output.
const (
	MarginLeft = 2
	CellWidth  = 7
	GridWidth  = CellWidth * tally.Columns

	TitleLine  = 0
	HeaderLine = 2
	GridTop    = 3
	ResetLine  = GridTop + tally.Rows + 1
	ToastLine  = ResetLine + 2
	HelpLine   = ToastLine + 2
)

// CellAt maps screen coordinates to a board cell.
func CellAt(x, y int) (row, col int, ok bool) {
	row = y - GridTop
	if row < 0 || row >= tally.Rows {
		return 0, 0, false
	}
	dx := x - MarginLeft
	if dx < 0 || dx >= GridWidth {
		return 0, 0, false
	}
	return row, dx / CellWidth, true
}

// OnResetBar reports whether screen coordinates hit the reset control.
func OnResetBar(x, y int) bool {
	dx := x - MarginLeft
	return y == ResetLine && dx >= 0 && dx < GridWidth
}
