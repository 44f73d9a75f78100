// Package gesture turns raw taps into single or double taps.
//
// A tap on a cell is held back for the double-tap window. If a second tap on
// the same cell arrives in time the pair becomes one double tap and the held
// tap is cancelled. Otherwise the caller's delayed callback fires the single
// tap. Each cell has at most one pending tap, identified by a Token.
package gesture

import "time"

// DefaultWindow is the double-tap window.
const DefaultWindow = 300 * time.Millisecond

// Cell identifies a tap target.
type Cell struct {
	Row int
	Col int
}

// ResetControl is the board-level reset button.
var ResetControl = Cell{Row: -1, Col: -1}

// Kind is the outcome of a tap.
type Kind int

const (
	// Pending means a single tap was scheduled; fire it with Resolve after Window.
	Pending Kind = iota
	// Double means the tap completed a double tap; act on it now.
	Double
)

// Token identifies one pending tap.
type Token uint64

// Result is returned by Tap.
type Result struct {
	Kind  Kind
	Cell  Cell
	Token Token
}

// Resolver 单击/双击判定
type Resolver struct {
	window time.Duration

	last    Cell
	lastAt  time.Time
	hasLast bool

	pending map[Cell]Token
	seq     Token
}

// NewResolver creates a resolver. A non-positive window uses DefaultWindow.
func NewResolver(window time.Duration) *Resolver {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Resolver{
		window:  window,
		pending: make(map[Cell]Token),
	}
}

// Window returns the double-tap window.
func (r *Resolver) Window() time.Duration { return r.window }

// Tap registers a tap on c at now.
func (r *Resolver) Tap(c Cell, now time.Time) Result {
	if r.hasLast && r.last == c && now.Sub(r.lastAt) < r.window {
		delete(r.pending, c)
		// A third quick tap starts a new gesture instead of chaining.
		r.hasLast = false
		return Result{Kind: Double, Cell: c}
	}

	r.seq++
	r.pending[c] = r.seq
	r.last, r.lastAt, r.hasLast = c, now, true
	return Result{Kind: Pending, Cell: c, Token: r.seq}
}

// Resolve reports whether the pending tap identified by tok should fire as a
// single tap, and clears it. Each token resolves true at most once.
func (r *Resolver) Resolve(c Cell, tok Token) bool {
	if cur, ok := r.pending[c]; !ok || cur != tok {
		return false
	}
	delete(r.pending, c)
	return true
}

// HasPending reports whether c has a tap waiting for its window to close.
func (r *Resolver) HasPending(c Cell) bool {
	_, ok := r.pending[c]
	return ok
}
