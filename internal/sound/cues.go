package sound

import "time"

// Cue names, matching file base names in the sound directory.
const (
	CueTap       = "tap"
	CueExhausted = "exhausted"
	CueUndo      = "undo"
	CueReset     = "reset"
)

// Cues lists every cue the board plays.
var Cues = []string{CueTap, CueExhausted, CueUndo, CueReset}

// tone is a fallback cue: each frequency plays for step.
type tone struct {
	freqs []float64
	step  time.Duration
}

var cueTones = map[string]tone{
	CueTap:       {freqs: []float64{880}, step: 40 * time.Millisecond},
	CueExhausted: {freqs: []float64{660, 880, 1320}, step: 90 * time.Millisecond}, // 上行三音
	CueUndo:      {freqs: []float64{660, 440}, step: 70 * time.Millisecond},
	CueReset:     {freqs: []float64{523.25, 392, 261.63}, step: 80 * time.Millisecond},
}

func isCue(name string) bool {
	_, ok := cueTones[name]
	return ok
}
