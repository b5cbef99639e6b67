// SPDX-License-Identifier: EPL-2.0

// Package render draws waveform columns into a packed raster and
// serializes it as an indexed-color PNG.
//
// # Packed Canvas
//
// The Canvas stores two bits per pixel, four pixels to a byte, which is
// all a waveform needs: background, left bar, right bar, and the
// collision of both. A 2048x128 image fits in 64 KiB and is written
// once, one column per output pixel:
//
//	canvas := render.NewCanvas(2048, 128)
//	canvas.DrawStereo(x, leftPeak, rightPeak)   // stereo column
//	canvas.DrawMono(x, peak)                    // mono column
//
// Stereo bars grow from the horizontal center line: left upward, right
// downward. Mono bars are symmetric around it. Amplitudes are clamped
// to [0, 1] and rounded half-up against the half-height; zero or
// negative amplitudes draw nothing. Out-of-range columns and clipped
// rows are silently ignored.
//
// Drawing ORs pixel codes together, so the two channels can never erase
// each other and column draw order is irrelevant.
//
// # PNG Output
//
// EncodePNG writes the canvas in its packed form: 2-bit indexed color,
// a 4-entry palette with a parallel transparency table, Up-filtered
// scanlines, maximum compression. Index 3 of the palette repeats the
// background so channel collisions render as gaps:
//
//	err := render.EncodePNG(w, canvas, background, left, right)
//
// The output is a complete, standalone PNG stream; any standard decoder
// recovers the exact pixel codes of the canvas.
package render
