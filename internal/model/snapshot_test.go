package model

import (
	"image"
	"testing"
	"time"
)

func TestNewSnapshot(t *testing.T) {
	now := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	a := NewSnapshot("hello", DefaultPalette(), img, false, now)
	b := NewSnapshot("hello", DefaultPalette(), img, false, now)

	if a.ID == "" || a.ID == b.ID {
		t.Errorf("Expected unique non-empty IDs, got %q and %q", a.ID, b.ID)
	}

	if len(a.ShortID()) != 8 {
		t.Errorf("Expected 8 character short ID, got %q", a.ShortID())
	}

	if !a.CreatedAt.Equal(now) {
		t.Errorf("Expected CreatedAt to be %v, got %v", now, a.CreatedAt)
	}
}

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette()
	r, g, b, _ := p.Foreground.RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("Expected black foreground, got %v", p.Foreground)
	}
	r, g, b, _ = p.Background.RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff {
		t.Errorf("Expected white background, got %v", p.Background)
	}
}
