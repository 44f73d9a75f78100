package tally

// EventKind identifies a board state change.
type EventKind int

const (
	EventIncrement EventKind = iota
	EventExhausted
	EventUndo
	EventUndoSkipped
	EventClear
	EventReset
)

var eventNames = map[EventKind]string{
	EventIncrement:   "increment",
	EventExhausted:   "exhausted",
	EventUndo:        "undo",
	EventUndoSkipped: "undo_skipped",
	EventClear:       "clear",
	EventReset:       "reset",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseEventKind is the inverse of EventKind.String.
func ParseEventKind(s string) (EventKind, bool) {
	for k, name := range eventNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

// Event describes one board state change. Row and Col are -1 for Reset.
type Event struct {
	Kind      EventKind
	Row       int
	Col       int
	Delta     int
	Remaining int
}
