package encoder

import (
	"fmt"
	"strings"
)

// Level is a QR error correction level.
type Level string

const (
	LevelLow      Level = "L" // ~7% recovery
	LevelMedium   Level = "M" // ~15% recovery
	LevelQuartile Level = "Q" // ~25% recovery
	LevelHigh     Level = "H" // ~30% recovery
)

// DefaultLevel matches the ZXing writer default.
const DefaultLevel = LevelLow

// Levels returns all supported levels from lowest to highest recovery.
func Levels() []Level {
	return []Level{LevelLow, LevelMedium, LevelQuartile, LevelHigh}
}

// ParseLevel accepts L, M, Q or H in any case.
func ParseLevel(s string) (Level, error) {
	level := Level(strings.ToUpper(strings.TrimSpace(s)))
	for _, l := range Levels() {
		if l == level {
			return level, nil
		}
	}
	return "", fmt.Errorf("unknown error correction level %q", s)
}

func (l Level) String() string {
	return string(l)
}
