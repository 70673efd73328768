package ui

import (
	"fyne.io/fyne/v2"
)

// LoadIconResource loads the window icon from its fixed relative path. Callers ignore the
// error: a missing icon only costs the decoration.
func LoadIconResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(IconPath)
}
