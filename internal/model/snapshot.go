package model

import (
	"image"
	"time"

	"github.com/google/uuid"
)

// Snapshot is one rendered QR image together with the inputs that produced it
type Snapshot struct {
	ID          string
	Text        string
	Palette     Palette
	Image       *image.RGBA
	Placeholder bool // true for the "Insert a text" preview shown after reset
	CreatedAt   time.Time
}

// NewSnapshot stamps a rendered image with a fresh ID
func NewSnapshot(text string, palette Palette, img *image.RGBA, placeholder bool, now time.Time) *Snapshot {
	return &Snapshot{
		ID:          uuid.NewString(),
		Text:        text,
		Palette:     palette,
		Image:       img,
		Placeholder: placeholder,
		CreatedAt:   now,
	}
}

// ShortID returns the first block of the ID for log lines
func (s *Snapshot) ShortID() string {
	if len(s.ID) < 8 {
		return s.ID
	}
	return s.ID[:8]
}
