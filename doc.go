// Package pix provides a minimal software rasterizer over caller-owned
// pixel buffers.
//
// # Overview
//
// pix draws solid-color primitives (fills, rectangles, circles, lines)
// directly into a flat []uint32 buffer that the caller allocates and owns,
// and serializes that buffer to the binary PPM ("P6") image format. There
// is no anti-aliasing, no alpha blending, and no path machinery: every
// primitive writes opaque packed colors and silently clips anything that
// falls outside the buffer.
//
// # Quick Start
//
//	import "github.com/gogpu/pix"
//
//	pixels := make([]uint32, 800*600)
//	canvas := pix.NewCanvas(pixels, 800, 600)
//
//	canvas.Fill(pix.Color(0xFF202020))
//	canvas.FillCircle(400, 300, 100, pix.Red)
//	canvas.DrawLine(0, 0, 800, 600, pix.White)
//
//	if err := canvas.SavePPM("output.ppm"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Ownership
//
// Canvas is a view, not a container. It borrows the caller's buffer for
// the duration of each call and never allocates, resizes, or retains it.
// The caller is responsible for len(pix) == width*height; the drawing
// operations do not check this.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Coordinates are plain ints and may fall outside the buffer; every
// primitive clips internally rather than requiring valid input.
//
// # Colors
//
// Colors are packed 32-bit values with the red channel in the low byte:
// 0xAABBGGRR as a hex literal. The alpha byte is carried through drawing
// operations but never blended, and PPM output drops it.
//
// # Concurrency
//
// The library is fully synchronous and keeps no state between calls.
// Concurrent calls on the same buffer or the same destination file are
// not supported; callers must serialize them.
package pix

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
