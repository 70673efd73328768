package encoder

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyText is returned when there is nothing to encode.
	ErrEmptyText = errors.New("empty text")

	// ErrUnencodable is returned when the library refuses the input.
	ErrUnencodable = errors.New("text cannot be encoded")

	// ErrTooLarge is returned when the input exceeds the symbol capacity.
	ErrTooLarge = errors.New("content too large for QR code")
)

// EncodeError carries the backend that failed and the classified cause.
type EncodeError struct {
	Backend string
	Kind    error
	Err     error
}

func (e *EncodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Backend, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Backend, e.Kind, e.Err)
}

// Is matches the classified kind so callers can use errors.Is(err, ErrTooLarge).
func (e *EncodeError) Is(target error) bool {
	return target == e.Kind
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// capacityMarkers are fragments the supported libraries use for over-capacity errors.
var capacityMarkers = []string{"too big", "too long", "too much", "to much", "too large"}

// classify wraps a library error into an EncodeError with the matching kind.
func classify(backend string, err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range capacityMarkers {
		if strings.Contains(msg, marker) {
			return &EncodeError{Backend: backend, Kind: ErrTooLarge, Err: err}
		}
	}
	return &EncodeError{Backend: backend, Kind: ErrUnencodable, Err: err}
}
