package pix

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WritePPM serializes the canvas to w in the binary PPM ("P6") format:
// the ASCII header "P6\n<width> <height>\n255\n" followed by width*height
// RGB triplets in row-major order. Each triplet is the low three bytes of
// the packed color (red, green, blue); the alpha byte is not written.
//
// The first write or flush error aborts the serialization and is returned.
// A partially written stream is left as-is.
func (c Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", c.width, c.height); err != nil {
		return err
	}
	n := c.width * c.height
	for i := 0; i < n; i++ {
		p := c.pix[i]
		rgb := [3]byte{byte(p), byte(p >> 8), byte(p >> 16)}
		if _, err := bw.Write(rgb[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SavePPM writes the canvas to the file at path in the binary PPM format,
// creating or truncating it as needed. The file handle is closed on every
// exit path. On failure the returned error carries the underlying OS error
// (an *os.PathError wrapping a syscall.Errno); a truncated file may remain
// on disk after a mid-write failure.
func (c Canvas) SavePPM(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	if err := c.WritePPM(f); err != nil {
		return err
	}

	Logger().Debug("saved ppm",
		"path", path,
		"width", c.width,
		"height", c.height)
	return nil
}
