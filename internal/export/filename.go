package export

import (
	"strings"
	"time"
)

// File naming
const (
	FilePrefix      = "QRCode_"
	FileExtension   = ".png"
	TimestampLayout = "20060102_150405"
)

// DefaultFileName returns QRCode_yyyyMMdd_HHmmss.png for t.
func DefaultFileName(t time.Time) string {
	return FilePrefix + t.Format(TimestampLayout) + FileExtension
}

// EnsureExtension appends .png unless path already ends with it (any case).
func EnsureExtension(path string) string {
	if strings.HasSuffix(strings.ToLower(path), FileExtension) {
		return path
	}
	return path + FileExtension
}
