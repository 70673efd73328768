package generator

import (
	"image/color"

	"github.com/qrstudio/qr-studio/internal/encoder"
	"github.com/qrstudio/qr-studio/internal/model"
)

// ConfirmFunc asks whether path may be overwritten and reports the answer through answer.
// It may answer synchronously or later, e.g. from a dialog callback.
type ConfirmFunc func(path string, answer func(overwrite bool))

// Generator defines the operations the UI drives.
type Generator interface {
	SetUpdateCallback(func(State))
	SetText(text string)
	Generate()
	SetForeground(c color.Color)
	SetBackground(c color.Color)
	Copy()
	SuggestSave() (dir, name string, ok bool)
	SaveAs(chosen string, confirm ConfirmFunc)
	SaveFailed(err error)
	Reset()
	Configure(enc encoder.Encoder, size int)
	State() State
	LastSavedPath() string
}

// State is what the UI needs to draw after every operation.
type State struct {
	Text    string
	Preview *model.Snapshot // never nil once the service is constructed
	Current *model.Snapshot // nil until the user generates a code
	Palette model.Palette
	Status  model.Status
}
