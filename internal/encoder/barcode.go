package encoder

import (
	"image/color"

	"github.com/boombuler/barcode/qr"
)

// Barcode encodes with github.com/boombuler/barcode.
type Barcode struct {
	level Level
}

// NewBarcode creates a boombuler/barcode-backed encoder.
func NewBarcode(level Level) *Barcode {
	return &Barcode{level: level}
}

// Name implements Encoder.
func (b *Barcode) Name() string { return BackendBarcode }

// Encode implements Encoder.
func (b *Barcode) Encode(text string, size int) (*Matrix, error) {
	if text == "" {
		return nil, &EncodeError{Backend: BackendBarcode, Kind: ErrEmptyText}
	}

	code, err := qr.Encode(text, barcodeLevel(b.level), qr.Auto)
	if err != nil {
		// Auto reports "no encoding found" for any failure. Unicode mode accepts every
		// input, so its error is a capacity error.
		code, err = qr.Encode(text, barcodeLevel(b.level), qr.Unicode)
		if err != nil {
			return nil, classify(BackendBarcode, err)
		}
	}

	// The unscaled code is one pixel per module without a quiet zone.
	bounds := code.Bounds()
	modules := make([][]bool, bounds.Dy())
	for y := range modules {
		modules[y] = make([]bool, bounds.Dx())
		for x := range modules[y] {
			gray := color.GrayModel.Convert(code.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray)
			modules[y][x] = gray.Y < 128
		}
	}

	return scaleModules(withQuietZone(modules), size), nil
}

func barcodeLevel(level Level) qr.ErrorCorrectionLevel {
	switch level {
	case LevelMedium:
		return qr.M
	case LevelQuartile:
		return qr.Q
	case LevelHigh:
		return qr.H
	default:
		return qr.L
	}
}
