package encoder

import (
	"fmt"
	"sort"
)

// Backend names accepted by New.
const (
	BackendZXing    = "zxing"
	BackendBarcode  = "barcode"
	BackendGoQRCode = "go-qrcode"
)

// DefaultBackend is used when no backend is configured.
const DefaultBackend = BackendZXing

var constructors = map[string]func(Level) Encoder{
	BackendZXing:    func(l Level) Encoder { return NewZXing(l) },
	BackendBarcode:  func(l Level) Encoder { return NewBarcode(l) },
	BackendGoQRCode: func(l Level) Encoder { return NewGoQRCode(l) },
}

// New returns the named backend configured with the given error correction level.
func New(name string, level Level) (Encoder, error) {
	if name == "" {
		name = DefaultBackend
	}
	ctor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("unknown encoder backend %q", name)
	}
	if level == "" {
		level = DefaultLevel
	}
	return ctor(level), nil
}

// Backends returns the sorted list of backend names.
func Backends() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
