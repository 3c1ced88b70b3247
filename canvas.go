package pix

// Canvas is a non-owning view over a caller-provided pixel buffer.
// It carries the buffer slice together with explicit width and height;
// the caller guarantees len(pix) == width*height. A Canvas never
// allocates, resizes, or retains the buffer — it only borrows it for
// the duration of each call, so the zero-cost value can be copied and
// passed around freely.
type Canvas struct {
	pix    []uint32
	width  int
	height int
}

// NewCanvas creates a canvas viewing the given pixel buffer.
// The buffer must hold width*height packed colors in row-major order;
// this is not validated.
func NewCanvas(pix []uint32, width, height int) Canvas {
	return Canvas{pix: pix, width: width, height: height}
}

// Width returns the width of the canvas.
func (c Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c Canvas) Height() int {
	return c.height
}

// Pix returns the underlying pixel buffer.
func (c Canvas) Pix() []uint32 {
	return c.pix
}

// SetPixel sets the color of a single pixel.
// Out-of-bounds coordinates are silently ignored.
func (c Canvas) SetPixel(x, y int, col Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.pix[y*c.width+x] = uint32(col)
}

// GetPixel returns the color of a single pixel.
// Out-of-bounds coordinates return Transparent.
func (c Canvas) GetPixel(x, y int) Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Transparent
	}
	return Color(c.pix[y*c.width+x])
}

// Fill overwrites every pixel of the canvas with col.
func (c Canvas) Fill(col Color) {
	n := c.width * c.height
	for i := 0; i < n; i++ {
		c.pix[i] = uint32(col)
	}
}
