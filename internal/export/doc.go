package export

// Package export moves rendered QR images out of the app: PNG files with the default
// timestamped name and enforced extension, and image data on the system clipboard.
