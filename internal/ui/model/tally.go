package model

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/doudizhu-tally/internal/gesture"
	"github.com/palemoky/doudizhu-tally/internal/sound"
	"github.com/palemoky/doudizhu-tally/internal/tally"
	"github.com/palemoky/doudizhu-tally/internal/ui/common"
)

// NotificationDuration is how long a toast stays on screen.
const NotificationDuration = 2 * time.Second

// Deps are the collaborators of a TallyModel. Nil fields get no-op defaults.
type Deps struct {
	Window   time.Duration
	Sound    SoundPlayer
	Recorder Recorder
	Now      func() time.Time

	// View renderer (injected to break circular import)
	ViewRenderer func(Model) string
	// Key handler (injected to break circular import)
	KeyHandler func(Model, tea.KeyMsg) (bool, tea.Cmd)
	// Mouse handler (injected to break circular import)
	MouseHandler func(Model, tea.MouseMsg) tea.Cmd
}

// TallyModel is the bubbletea model of the tally board.
type TallyModel struct {
	board    *tally.Board
	grid     *Grid
	resolver *gesture.Resolver

	sound    SoundPlayer
	recorder Recorder
	now      func() time.Time

	cursorRow int
	cursorCol int

	notification string
	notifySeq    int

	keys        common.KeyMap
	help        help.Model
	showingHelp bool

	width  int
	height int

	viewRenderer func(Model) string
	keyHandler   func(Model, tea.KeyMsg) (bool, tea.Cmd)
	mouseHandler func(Model, tea.MouseMsg) tea.Cmd
}

// NewTallyModel creates the model and renders the initial board.
func NewTallyModel(cfg tally.Config, deps Deps) *TallyModel {
	m := &TallyModel{
		grid:         NewGrid(),
		resolver:     gesture.NewResolver(deps.Window),
		sound:        deps.Sound,
		recorder:     deps.Recorder,
		now:          deps.Now,
		cursorCol:    1,
		keys:         common.DefaultKeyMap(cfg.LongPressClear),
		help:         help.New(),
		viewRenderer: deps.ViewRenderer,
		keyHandler:   deps.KeyHandler,
		mouseHandler: deps.MouseHandler,
	}
	if m.sound == nil {
		m.sound = silent{}
	}
	if m.recorder == nil {
		m.recorder = discard{}
	}
	if m.now == nil {
		m.now = time.Now
	}

	m.board = tally.NewBoard(cfg,
		tally.WithRenderer(m.grid),
		tally.WithEventHook(m.onBoardEvent),
	)
	m.board.Render()
	return m
}

func (m *TallyModel) Init() tea.Cmd {
	return nil
}

func (m *TallyModel) View() string {
	if m.viewRenderer == nil {
		return ""
	}
	return m.viewRenderer(m)
}

// Update handles tea messages.
func (m *TallyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		if m.keyHandler != nil {
			_, cmd := m.keyHandler(m, msg)
			return m, cmd
		}

	case tea.MouseMsg:
		if m.mouseHandler != nil {
			return m, m.mouseHandler(m, msg)
		}

	case PendingTapMsg:
		if !m.resolver.Resolve(msg.Cell, msg.Token) {
			return m, nil
		}
		if msg.Cell == gesture.ResetControl {
			m.board.ResetAll()
		} else {
			m.board.SingleIncrement(msg.Cell.Row, msg.Cell.Col)
		}
		return m, m.flushMessages()

	case ClearNotificationMsg:
		if msg.Seq == m.notifySeq {
			m.notification = ""
		}
	}

	return m, nil
}

// --- Gestures ---

// Tap handles a tap on a cell. Taps on the label column are ignored.
func (m *TallyModel) Tap(row, col int) tea.Cmd {
	if row < 0 || row >= tally.Rows || col <= tally.LabelColumn || col >= tally.Columns {
		return nil
	}
	return m.press(gesture.Cell{Row: row, Col: col}, func() {
		m.board.DoubleIncrement(row, col)
	})
}

// PressReset handles the reset control: a single press resets the board once
// the double-tap window closes, a double press undoes the last step.
func (m *TallyModel) PressReset() tea.Cmd {
	return m.press(gesture.ResetControl, m.board.Undo)
}

func (m *TallyModel) press(c gesture.Cell, onDouble func()) tea.Cmd {
	res := m.resolver.Tap(c, m.now())
	if res.Kind == gesture.Double {
		onDouble()
		return m.flushMessages()
	}
	return tea.Tick(m.resolver.Window(), func(time.Time) tea.Msg {
		return PendingTapMsg{Cell: res.Cell, Token: res.Token}
	})
}

// LongPress clears a cell when the board supports it.
func (m *TallyModel) LongPress(row, col int) tea.Cmd {
	m.board.ClearCell(row, col)
	return m.flushMessages()
}

// Undo reverts the last increment immediately.
func (m *TallyModel) Undo() tea.Cmd {
	m.board.Undo()
	return m.flushMessages()
}

// flushMessages turns board messages into a toast that clears itself.
func (m *TallyModel) flushMessages() tea.Cmd {
	msgs := m.grid.TakeMessages()
	if len(msgs) == 0 {
		return nil
	}
	m.notification = msgs[len(msgs)-1]
	m.notifySeq++
	seq := m.notifySeq
	return tea.Tick(NotificationDuration, func(time.Time) tea.Msg {
		return ClearNotificationMsg{Seq: seq}
	})
}

func (m *TallyModel) onBoardEvent(ev tally.Event) {
	m.recorder.Record(ev)

	switch ev.Kind {
	case tally.EventIncrement:
		m.sound.Play(sound.CueTap)
	case tally.EventExhausted:
		m.sound.Play(sound.CueExhausted)
	case tally.EventUndo:
		m.sound.Play(sound.CueUndo)
	case tally.EventReset:
		m.sound.Play(sound.CueReset)
	}
}

// --- Model interface implementation ---

func (m *TallyModel) Board() *tally.Board      { return m.board }
func (m *TallyModel) Grid() *Grid              { return m.grid }
func (m *TallyModel) Cursor() (row, col int)   { return m.cursorRow, m.cursorCol }
func (m *TallyModel) Notification() string     { return m.notification }
func (m *TallyModel) Keys() common.KeyMap      { return m.keys }
func (m *TallyModel) Help() *help.Model        { return &m.help }
func (m *TallyModel) ShowingHelp() bool        { return m.showingHelp }
func (m *TallyModel) SetShowingHelp(show bool) { m.showingHelp = show }
func (m *TallyModel) Width() int               { return m.width }
func (m *TallyModel) Height() int              { return m.height }

// SetCursor moves the cursor, clamped to the play columns.
func (m *TallyModel) SetCursor(row, col int) {
	m.cursorRow = min(max(row, 0), tally.Rows-1)
	m.cursorCol = min(max(col, 1), tally.Columns-1)
}

// MoveCursor moves the cursor by a delta, wrapping around the board.
func (m *TallyModel) MoveCursor(dRow, dCol int) {
	const playCols = tally.Columns - 1
	row := (m.cursorRow + dRow + tally.Rows) % tally.Rows
	col := (m.cursorCol - 1 + dCol + playCols) % playCols
	m.cursorRow, m.cursorCol = row, col+1
}

type silent struct{}

func (silent) Play(string) {}

type discard struct{}

func (discard) Record(tally.Event) {}
