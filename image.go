package pix

import (
	"image"
	"image/color"
)

// At implements the image.Image interface.
func (c Canvas) At(x, y int) color.Color {
	return c.GetPixel(x, y).NRGBA()
}

// Bounds implements the image.Image interface.
func (c Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}

// ToImage copies the canvas into a new image.NRGBA, alpha included.
func (c Canvas) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			p := c.pix[y*c.width+x]
			i := img.PixOffset(x, y)
			img.Pix[i+0] = uint8(p)
			img.Pix[i+1] = uint8(p >> 8)
			img.Pix[i+2] = uint8(p >> 16)
			img.Pix[i+3] = uint8(p >> 24)
		}
	}
	return img
}

// CopyImage copies img into the canvas, pixel for pixel, with the image's
// top-left corner at the canvas origin. Pixels outside the canvas are
// discarded; canvas pixels beyond the image extent are left untouched.
func (c Canvas) CopyImage(img image.Image) {
	b := img.Bounds()
	w := b.Dx()
	if w > c.width {
		w = c.width
	}
	h := b.Dy()
	if h > c.height {
		h = c.height
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c.SetPixel(x, y, FromColor(img.At(b.Min.X+x, b.Min.Y+y)))
		}
	}
}
