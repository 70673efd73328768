package encoder

import (
	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	"github.com/makiuchi-d/gozxing/qrcode/decoder"
)

// ZXing encodes with the gozxing QR writer.
type ZXing struct {
	level Level
}

// NewZXing creates a gozxing-backed encoder.
func NewZXing(level Level) *ZXing {
	return &ZXing{level: level}
}

// Name implements Encoder.
func (z *ZXing) Name() string { return BackendZXing }

// Encode implements Encoder.
func (z *ZXing) Encode(text string, size int) (*Matrix, error) {
	if text == "" {
		return nil, &EncodeError{Backend: BackendZXing, Kind: ErrEmptyText}
	}

	hints := map[gozxing.EncodeHintType]interface{}{
		gozxing.EncodeHintType_ERROR_CORRECTION: zxingLevel(z.level),
		gozxing.EncodeHintType_CHARACTER_SET:    "UTF-8",
		gozxing.EncodeHintType_MARGIN:           QuietZone,
	}

	bits, err := qrcode.NewQRCodeWriter().Encode(text, gozxing.BarcodeFormat_QR_CODE, size, size, hints)
	if err != nil {
		return nil, classify(BackendZXing, err)
	}

	width, height := bits.GetWidth(), bits.GetHeight()
	out := NewMatrix(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if bits.Get(x, y) {
				out.Set(x, y, true)
			}
		}
	}
	return out, nil
}

func zxingLevel(level Level) decoder.ErrorCorrectionLevel {
	switch level {
	case LevelMedium:
		return decoder.ErrorCorrectionLevel_M
	case LevelQuartile:
		return decoder.ErrorCorrectionLevel_Q
	case LevelHigh:
		return decoder.ErrorCorrectionLevel_H
	default:
		return decoder.ErrorCorrectionLevel_L
	}
}
