package encoder

// QuietZone is the light border, in modules, around every symbol.
const QuietZone = 4

// Matrix is a row-major grid of pixels; true denotes a dark pixel.
type Matrix struct {
	width  int
	height int
	bits   []bool
}

// NewMatrix creates an all-light matrix.
func NewMatrix(width, height int) *Matrix {
	return &Matrix{
		width:  width,
		height: height,
		bits:   make([]bool, width*height),
	}
}

// Width returns the matrix width in pixels.
func (m *Matrix) Width() int { return m.width }

// Height returns the matrix height in pixels.
func (m *Matrix) Height() int { return m.height }

// Get reports whether the pixel at (x, y) is dark. Out of range reads are light.
func (m *Matrix) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return false
	}
	return m.bits[y*m.width+x]
}

// Set marks the pixel at (x, y).
func (m *Matrix) Set(x, y int, dark bool) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return
	}
	m.bits[y*m.width+x] = dark
}

// scaleModules lays a square module grid (quiet zone already included) onto a size×size
// matrix. Each module becomes an integer multiple of pixels and the symbol is centred; if
// the symbol is bigger than size, the output grows to fit it.
func scaleModules(modules [][]bool, size int) *Matrix {
	inputHeight := len(modules)
	if inputHeight == 0 {
		return NewMatrix(size, size)
	}
	inputWidth := len(modules[0])

	outputWidth := max(size, inputWidth)
	outputHeight := max(size, inputHeight)
	multiple := min(outputWidth/inputWidth, outputHeight/inputHeight)

	leftPadding := (outputWidth - inputWidth*multiple) / 2
	topPadding := (outputHeight - inputHeight*multiple) / 2

	out := NewMatrix(outputWidth, outputHeight)
	for inY := 0; inY < inputHeight; inY++ {
		row := modules[inY]
		outY := topPadding + inY*multiple
		for inX := 0; inX < inputWidth && inX < len(row); inX++ {
			if !row[inX] {
				continue
			}
			outX := leftPadding + inX*multiple
			for dy := 0; dy < multiple; dy++ {
				for dx := 0; dx < multiple; dx++ {
					out.Set(outX+dx, outY+dy, true)
				}
			}
		}
	}
	return out
}

// withQuietZone surrounds a module grid with QuietZone light modules.
func withQuietZone(modules [][]bool) [][]bool {
	n := len(modules)
	out := make([][]bool, n+2*QuietZone)
	for y := range out {
		out[y] = make([]bool, n+2*QuietZone)
	}
	for y, row := range modules {
		copy(out[y+QuietZone][QuietZone:], row)
	}
	return out
}
