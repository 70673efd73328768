package render

// Package render paints encoder matrices into two-color raster images and picks legible
// label colors for color swatches.
