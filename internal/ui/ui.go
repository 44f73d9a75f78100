// Package ui provides the main entry point for the UI.
package ui

import (
	"time"

	"github.com/palemoky/doudizhu-tally/internal/tally"
	"github.com/palemoky/doudizhu-tally/internal/ui/input"
	"github.com/palemoky/doudizhu-tally/internal/ui/model"
	"github.com/palemoky/doudizhu-tally/internal/ui/view"
)

// NewModel creates a TallyModel with the view and input handlers wired in.
// sound and recorder may be nil.
func NewModel(cfg tally.Config, window time.Duration, sound model.SoundPlayer, recorder model.Recorder) *model.TallyModel {
	return model.NewTallyModel(cfg, model.Deps{
		Window:       window,
		Sound:        sound,
		Recorder:     recorder,
		ViewRenderer: view.CreateViewRenderer(),
		KeyHandler:   input.HandleKeyPress,
		MouseHandler: input.HandleMouse,
	})
}
