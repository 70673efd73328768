package encoder

// Encoder defines the text to bit matrix boundary.
type Encoder interface {
	// Encode returns a size×size (or larger, if the symbol does not fit) matrix where true
	// marks a dark module pixel.
	Encode(text string, size int) (*Matrix, error)

	// Name returns the backend identifier accepted by New.
	Name() string
}
