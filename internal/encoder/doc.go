package encoder

// Package encoder turns text into a scaled QR bit matrix. The concrete QR library is hidden
// behind the Encoder interface so rendering and UI code never import it directly. Decode is
// provided for verification of rendered images.
