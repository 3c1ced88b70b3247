package pix

// FillRect sets every pixel of the rectangle [x0, x0+w) x [y0, y0+h) to col.
// The origin may be negative and the rectangle may extend past the canvas
// edge; out-of-bounds pixels are silently skipped. A rectangle entirely
// outside the canvas is a no-op, as is one with w <= 0 or h <= 0.
func (c Canvas) FillRect(x0, y0, w, h int, col Color) {
	for dy := 0; dy < h; dy++ {
		y := y0 + dy
		if y < 0 || y >= c.height {
			continue
		}
		for dx := 0; dx < w; dx++ {
			x := x0 + dx
			if x < 0 || x >= c.width {
				continue
			}
			c.pix[y*c.width+x] = uint32(col)
		}
	}
}

// FillCircle fills the disk of radius r centered at (cx, cy): every pixel
// whose squared distance from the center is at most r*r, boundary included.
// The center may lie outside the canvas; out-of-bounds pixels are silently
// skipped. r == 0 fills only the center pixel, r < 0 fills nothing.
func (c Canvas) FillCircle(cx, cy, r int, col Color) {
	x1 := cx - r
	y1 := cy - r
	x2 := cx + r
	y2 := cy + r
	for y := y1; y <= y2; y++ {
		if y < 0 || y >= c.height {
			continue
		}
		for x := x1; x <= x2; x++ {
			if x < 0 || x >= c.width {
				continue
			}
			dx := x - cx
			dy := y - cy
			if dx*dx+dy*dy <= r*r {
				c.pix[y*c.width+x] = uint32(col)
			}
		}
	}
}

// DrawLine rasterizes a line segment from (x1, y1) to (x2, y2).
//
// For each pixel column the line crosses, the whole inclusive row span
// covered while x advances by one column is filled, so steep segments come
// out thicker than one pixel but never have gaps. The span endpoints are
// computed from the exact rational slope dy/dx with truncating integer
// division; the intercept is derived once from the first endpoint with the
// same division rule, which is what keeps per-column values consistent for
// negative coordinates. Vertical segments fill the inclusive column span,
// and a zero-length segment sets a single pixel. Anything outside the
// canvas is silently clipped.
func (c Canvas) DrawLine(x1, y1, x2, y2 int, col Color) {
	dx := x2 - x1
	dy := y2 - y1

	if dx != 0 {
		b := y1 - dy*x1/dx

		if x1 > x2 {
			x1, x2 = x2, x1
		}
		for x := x1; x <= x2; x++ {
			if x < 0 || x >= c.width {
				continue
			}
			sy1 := dy*x/dx + b
			sy2 := dy*(x+1)/dx + b
			if sy1 > sy2 {
				sy1, sy2 = sy2, sy1
			}
			for y := sy1; y <= sy2; y++ {
				if y < 0 || y >= c.height {
					continue
				}
				c.pix[y*c.width+x] = uint32(col)
			}
		}
	} else {
		x := x1
		if x < 0 || x >= c.width {
			return
		}
		if y1 > y2 {
			y1, y2 = y2, y1
		}
		for y := y1; y <= y2; y++ {
			if y < 0 || y >= c.height {
				continue
			}
			c.pix[y*c.width+x] = uint32(col)
		}
	}
}
