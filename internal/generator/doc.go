package generator

// Package generator owns the application state of the QR tool (input text, colors, the
// current image, the remembered save directory and the status line) and implements every
// user operation: regenerate, recolor, copy, save and reset. It has no UI dependency; the
// Fyne front end and the CLI both drive it. A Service is not safe for concurrent use and is
// meant to be called from the UI goroutine only.
