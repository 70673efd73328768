package encoder

import (
	qrcode "github.com/skip2/go-qrcode"
)

// GoQRCode encodes with github.com/skip2/go-qrcode.
type GoQRCode struct {
	level Level
}

// NewGoQRCode creates a skip2/go-qrcode-backed encoder.
func NewGoQRCode(level Level) *GoQRCode {
	return &GoQRCode{level: level}
}

// Name implements Encoder.
func (g *GoQRCode) Name() string { return BackendGoQRCode }

// Encode implements Encoder.
func (g *GoQRCode) Encode(text string, size int) (*Matrix, error) {
	if text == "" {
		return nil, &EncodeError{Backend: BackendGoQRCode, Kind: ErrEmptyText}
	}

	code, err := qrcode.New(text, goQRCodeLevel(g.level))
	if err != nil {
		return nil, classify(BackendGoQRCode, err)
	}

	// Bitmap already carries a four module border.
	return scaleModules(code.Bitmap(), size), nil
}

func goQRCodeLevel(level Level) qrcode.RecoveryLevel {
	switch level {
	case LevelMedium:
		return qrcode.Medium
	case LevelQuartile:
		return qrcode.High
	case LevelHigh:
		return qrcode.Highest
	default:
		return qrcode.Low
	}
}
