// Package tally implements the card tally board: 13 rank rows, four play-count
// columns per row, a shared remaining count per rank and a single undo stack.
//
// The board is the only source of truth. After every mutation it projects the
// affected rows onto a Renderer, so a UI never has to read state back out of
// its own widgets. A Board is not safe for concurrent use; it is meant to be
// driven from one event loop.
package tally

import (
	"strconv"

	"github.com/palemoky/doudizhu-tally/internal/apperrors"
	"github.com/palemoky/doudizhu-tally/internal/card"
)

const (
	// Rows is the number of rank rows on the board.
	Rows = card.RowCount
	// Columns includes the label column.
	Columns = 5
	// LabelColumn holds the rank label and never mutates.
	LabelColumn = 0
	// HighlightNone disables the static column highlight.
	HighlightNone = 0
)

// Messages shown to the user.
const (
	MsgNothingToUndo = "没有可退回的步骤"
	MsgBoardReset    = "页面已重置"
)

// ExhaustedMessage returns the toast text for a rank that has run out.
func ExhaustedMessage(label string) string {
	return label + "已出完"
}

// Color is a background token understood by renderers.
type Color int

const (
	ColorDefault Color = iota
	ColorExhausted
	ColorHighlight
)

func (c Color) String() string {
	switch c {
	case ColorExhausted:
		return "exhausted"
	case ColorHighlight:
		return "highlight"
	default:
		return "default"
	}
}

// Renderer receives the visual projection of the board.
type Renderer interface {
	SetCellText(row, col int, text string)
	SetRemainingText(row, value int)
	SetRowBackground(row int, color Color)
	SetCellBackground(row, col int, color Color)
	ShowMessage(text string)
	LogDiagnostic(row, col, increment int)
}

// Config 记牌板配置
type Config struct {
	// Totals maps each rank to the number of copies in play.
	// Ranks missing from the map have a total of 0.
	Totals map[card.Rank]int
	// HighlightColumn receives a persistent highlight while its row is
	// not exhausted. HighlightNone disables it.
	HighlightColumn int
	// LongPressClear enables ClearCell.
	LongPressClear bool
}

// UniformTotals returns a totals table with n copies of every rank.
func UniformTotals(n int) map[card.Rank]int {
	totals := make(map[card.Rank]int, Rows)
	for _, r := range card.DisplayOrder {
		totals[r] = n
	}
	return totals
}

// ClassicConfig is the 12-per-rank board without highlight or long press.
func ClassicConfig() Config {
	return Config{Totals: UniformTotals(12)}
}

// CompactConfig is the 8-per-rank board with a column 2 highlight and
// long-press clearing.
func CompactConfig() Config {
	return Config{
		Totals:          UniformTotals(8),
		HighlightColumn: 2,
		LongPressClear:  true,
	}
}

// Validate checks the configuration for values the board cannot represent.
func (c Config) Validate() error {
	for r, n := range c.Totals {
		if !r.Valid() {
			return apperrors.ErrUnknownRank.With("%d", int(r))
		}
		if n < 0 {
			return apperrors.ErrInvalidTotal.With("%s=%d", r, n)
		}
	}
	if c.HighlightColumn < HighlightNone || c.HighlightColumn >= Columns {
		return apperrors.ErrInvalidColumn.With("%d", c.HighlightColumn)
	}
	return nil
}

// Row is one rank's tally.
type Row struct {
	Rank      card.Rank
	Total     int
	Remaining int
	// Counts[i] is the count of column i+1.
	Counts [Columns - 1]int
}

// Label returns the rank label shown in column 0.
func (r Row) Label() string { return r.Rank.String() }

// Exhausted reports whether no cards of this rank remain.
func (r Row) Exhausted() bool { return r.Remaining == 0 }

// Count returns the count of a play column, or 0 for the label column.
func (r Row) Count(col int) int {
	if col <= LabelColumn || col >= Columns {
		return 0
	}
	return r.Counts[col-1]
}

// Played returns the sum of all play columns.
func (r Row) Played() int {
	sum := 0
	for _, n := range r.Counts {
		sum += n
	}
	return sum
}

// UndoEntry records one committed increment.
type UndoEntry struct {
	Row   int
	Col   int
	Delta int
}

// Option customizes a Board.
type Option func(*Board)

// WithRenderer sets the projection target.
func WithRenderer(r Renderer) Option {
	return func(b *Board) { b.renderer = r }
}

// WithEventHook registers a callback invoked after every state change.
func WithEventHook(fn func(Event)) Option {
	return func(b *Board) { b.hook = fn }
}

// Board 记牌板状态机
type Board struct {
	cfg      Config
	rows     [Rows]Row
	undo     []UndoEntry
	renderer Renderer
	hook     func(Event)
}

// NewBoard creates a board with every row at its full total.
// The initial state is not rendered; call Render once the renderer is ready.
func NewBoard(cfg Config, opts ...Option) *Board {
	b := &Board{
		cfg:      cfg,
		renderer: nopRenderer{},
	}
	for _, opt := range opts {
		opt(b)
	}
	b.reset()
	return b
}

// Config returns the board configuration.
func (b *Board) Config() Config { return b.cfg }

// Row returns a copy of row i.
func (b *Board) Row(i int) Row { return b.rows[i] }

// Rows returns a copy of all rows.
func (b *Board) Rows() [Rows]Row { return b.rows }

// UndoDepth returns the number of entries on the undo stack.
func (b *Board) UndoDepth() int { return len(b.undo) }

// SingleIncrement 单击：对应格子加 1
func (b *Board) SingleIncrement(row, col int) {
	if !validCell(row, col) {
		return
	}
	if b.rows[row].Remaining == 0 {
		return
	}
	b.apply(row, col, 1)
}

// DoubleIncrement 双击：加 2，剩余不足 2 张时加 1
func (b *Board) DoubleIncrement(row, col int) {
	if !validCell(row, col) {
		return
	}

	increment := 2
	switch remaining := b.rows[row].Remaining; {
	case remaining == 0:
		return
	case remaining == 1:
		increment = 1
	}

	b.apply(row, col, increment)
	if !b.rows[row].Exhausted() {
		b.renderer.LogDiagnostic(row, col, increment)
	}
}

func (b *Board) apply(row, col, delta int) {
	r := &b.rows[row]
	r.Counts[col-1] += delta
	r.Remaining -= delta
	b.undo = append(b.undo, UndoEntry{Row: row, Col: col, Delta: delta})

	b.renderRow(row)
	b.emit(Event{Kind: EventIncrement, Row: row, Col: col, Delta: delta, Remaining: r.Remaining})

	if r.Exhausted() {
		b.renderer.ShowMessage(ExhaustedMessage(r.Label()))
		b.emit(Event{Kind: EventExhausted, Row: row, Col: col, Remaining: 0})
	}
}

// Undo 退回上一步
func (b *Board) Undo() {
	if len(b.undo) == 0 {
		b.renderer.ShowMessage(MsgNothingToUndo)
		return
	}

	entry := b.undo[len(b.undo)-1]
	b.undo = b.undo[:len(b.undo)-1]

	r := &b.rows[entry.Row]
	// A ClearCell since the increment can leave less than delta in the cell.
	if r.Counts[entry.Col-1] < entry.Delta {
		b.emit(Event{Kind: EventUndoSkipped, Row: entry.Row, Col: entry.Col, Delta: entry.Delta, Remaining: r.Remaining})
		return
	}

	r.Counts[entry.Col-1] -= entry.Delta
	r.Remaining += entry.Delta

	b.renderRow(entry.Row)
	b.emit(Event{Kind: EventUndo, Row: entry.Row, Col: entry.Col, Delta: entry.Delta, Remaining: r.Remaining})
}

// ClearCell 长按：清空格子并重新计算剩余张数，不入撤销栈
func (b *Board) ClearCell(row, col int) {
	if !b.cfg.LongPressClear || !validCell(row, col) {
		return
	}

	r := &b.rows[row]
	r.Counts[col-1] = 0
	r.Remaining = r.Total - r.Played()

	b.renderRow(row)
	b.emit(Event{Kind: EventClear, Row: row, Col: col, Remaining: r.Remaining})
}

// ResetAll 重置整个记牌板
func (b *Board) ResetAll() {
	b.reset()
	b.Render()
	b.renderer.ShowMessage(MsgBoardReset)
	b.emit(Event{Kind: EventReset, Row: -1, Col: -1})
}

func (b *Board) reset() {
	for i, rank := range card.DisplayOrder {
		total := b.cfg.Totals[rank]
		b.rows[i] = Row{Rank: rank, Total: total, Remaining: total}
	}
	b.undo = b.undo[:0]
}

// Render projects every row onto the renderer.
func (b *Board) Render() {
	for i := range b.rows {
		b.renderRow(i)
	}
}

func (b *Board) renderRow(i int) {
	r := b.rows[i]

	b.renderer.SetCellText(i, LabelColumn, r.Label())
	for col := 1; col < Columns; col++ {
		b.renderer.SetCellText(i, col, cellText(r.Count(col)))
	}
	b.renderer.SetRemainingText(i, r.Remaining)

	if r.Exhausted() {
		b.renderer.SetRowBackground(i, ColorExhausted)
		return
	}
	b.renderer.SetRowBackground(i, ColorDefault)
	if b.cfg.HighlightColumn != HighlightNone {
		b.renderer.SetCellBackground(i, b.cfg.HighlightColumn, ColorHighlight)
	}
}

func (b *Board) emit(ev Event) {
	if b.hook != nil {
		b.hook(ev)
	}
}

// cellText 0 显示为空
func cellText(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func validCell(row, col int) bool {
	return row >= 0 && row < Rows && col > LabelColumn && col < Columns
}

type nopRenderer struct{}

func (nopRenderer) SetCellText(int, int, string)      {}
func (nopRenderer) SetRemainingText(int, int)         {}
func (nopRenderer) SetRowBackground(int, Color)       {}
func (nopRenderer) SetCellBackground(int, int, Color) {}
func (nopRenderer) ShowMessage(string)                {}
func (nopRenderer) LogDiagnostic(int, int, int)       {}
