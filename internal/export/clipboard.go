package export

import (
	"fmt"
	"image"
	"sync"

	"golang.design/x/clipboard"
)

// Clipboard receives rendered images.
type Clipboard interface {
	WriteImage(img image.Image) error
}

// SystemClipboard writes PNG image data to the OS clipboard.
type SystemClipboard struct {
	once    sync.Once
	initErr error
}

// NewSystemClipboard returns a clipboard that initializes the platform backend on first use.
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

// WriteImage implements Clipboard.
func (c *SystemClipboard) WriteImage(img image.Image) error {
	c.once.Do(func() {
		c.initErr = clipboard.Init()
	})
	if c.initErr != nil {
		return fmt.Errorf("clipboard unavailable: %w", c.initErr)
	}

	data, err := EncodePNG(img)
	if err != nil {
		return err
	}

	clipboard.Write(clipboard.FmtImage, data)
	return nil
}
