package ui

import (
	"errors"

	nativedialog "github.com/sqweek/dialog"
)

// ErrChooserCancelled is returned when the user dismisses the save dialog.
var ErrChooserCancelled = errors.New("save dialog cancelled")

// PathChooser asks the user for a target file path. It must not create the file.
type PathChooser interface {
	ChooseSavePath(title, dir, name string) (string, error)
	// ConfirmsOverwrite reports whether the dialog itself asks before returning an
	// existing path.
	ConfirmsOverwrite() bool
}

// NativeChooser opens the operating system save dialog.
type NativeChooser struct{}

// NewNativeChooser creates a chooser backed by the platform file dialog
func NewNativeChooser() *NativeChooser {
	return &NativeChooser{}
}

// ConfirmsOverwrite implements PathChooser. The GTK, Win32 and Cocoa save dialogs all
// prompt before returning an existing file.
func (c *NativeChooser) ConfirmsOverwrite() bool {
	return true
}

// ChooseSavePath implements PathChooser with a PNG filter
func (c *NativeChooser) ChooseSavePath(title, dir, name string) (string, error) {
	builder := nativedialog.File().
		Title(title).
		Filter(PNGFilterDescription, PNGFilterExtension)
	if dir != "" {
		builder = builder.SetStartDir(dir)
	}
	if name != "" {
		builder = builder.SetStartFile(name)
	}

	path, err := builder.Save()
	if errors.Is(err, nativedialog.ErrCancelled) {
		return "", ErrChooserCancelled
	}
	return path, err
}
