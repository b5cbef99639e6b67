// SPDX-License-Identifier: EPL-2.0

package render

// Channel is a 2-bit pixel code in the packed canvas.
type Channel uint8

const (
	// Background is the empty pixel code.
	Background Channel = 0
	// Left marks the left (or mono) channel bar.
	Left Channel = 1
	// Right marks the right channel bar.
	Right Channel = 2
	// Collision is never drawn directly: it appears where Left and
	// Right bits were OR-ed onto the same pixel, and renders as
	// background.
	Collision Channel = 3
)

// Canvas is a 2-bit-per-pixel raster accumulating waveform bars.
//
// Each byte of the store packs a group of four horizontally adjacent
// pixels; pixel (x, y) lives at bits 2*(x%4) of byte x/4 + y*stride.
// Drawing always ORs bits in, never assigns, so overlapping bars from
// the two channels combine into the Collision code instead of erasing
// each other, and draw order never matters.
type Canvas struct {
	width  uint32
	height uint32
	center uint32
	stride uint32
	pix    []byte
}

// drawBits shifts a pixel code to its position within the byte holding
// column x.
func drawBits(code Channel, x uint32) byte {
	return byte(code&3) << (2 * (x & 3))
}

// clamp01 pins an amplitude into [0, 1]. Negative amplitudes collapse
// to zero (an empty bar), they are not mirrored.
func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}

	return v
}

// NewCanvas returns an all-background canvas of the given dimensions.
// Dimensions are assumed validated by the caller: width >= 16, height
// >= 6 and even.
func NewCanvas(width, height uint32) *Canvas {
	stride := (width + 3) >> 2

	return &Canvas{
		width:  width,
		height: height,
		center: height / 2,
		stride: stride,
		pix:    make([]byte, stride*height),
	}
}

// Width of the canvas in pixels.
func (c *Canvas) Width() uint32 { return c.width }

// Height of the canvas in pixels.
func (c *Canvas) Height() uint32 { return c.height }

// Stride is the byte length of one packed row.
func (c *Canvas) Stride() uint32 { return c.stride }

// At returns the pixel code at (x, y). Out-of-range coordinates read as
// Background.
func (c *Canvas) At(x, y uint32) Channel {
	if x >= c.width || y >= c.height {
		return Background
	}

	b := c.pix[(x>>2)+y*c.stride]
	return Channel(b>>(2*(x&3))) & 3
}

// DrawStereo draws one column of a stereo waveform: the left bar grows
// upward from the center line, the right bar downward. Columns at or
// past the width are ignored.
func (c *Canvas) DrawStereo(x uint32, left, right float32) {
	if x >= c.width {
		return
	}

	offset := x >> 2

	// Left channel, above center going up
	draw := drawBits(Left, x)
	half := uint32(float32(c.center)*clamp01(left) + 0.5)
	yStart := uint32(0)
	if half < c.center {
		yStart = c.center - half
	}
	for y := yStart; y < c.center; y++ {
		c.pix[offset+y*c.stride] |= draw
	}

	// Right channel, below center going down
	draw = drawBits(Right, x)
	half = uint32(float32(c.center)*clamp01(right) + 0.5)
	yEnd := c.center + half
	if yEnd > c.height {
		yEnd = c.height
	}
	for y := c.center; y < yEnd; y++ {
		c.pix[offset+y*c.stride] |= draw
	}
}

// DrawMono draws one column of a mono waveform as a single bar,
// symmetric around the center line, using the Left pixel code. Columns
// at or past the width are ignored.
func (c *Canvas) DrawMono(x uint32, amplitude float32) {
	if x >= c.width {
		return
	}

	offset := x >> 2
	draw := drawBits(Left, x)

	half := uint32(float32(c.center)*clamp01(amplitude) + 0.5)
	yStart := uint32(0)
	if half < c.center {
		yStart = c.center - half
	}
	yEnd := c.center + half
	if yEnd > c.height {
		yEnd = c.height
	}

	for y := yStart; y < yEnd; y++ {
		c.pix[offset+y*c.stride] |= draw
	}
}
