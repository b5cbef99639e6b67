// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"github.com/ik5/waver/utils"
)

// ChannelMode is the closed set of channel layouts the renderer knows
// about. A stream's mode is picked once, from the decoded track's channel
// count; everything downstream dispatches on it instead of raw integers.
type ChannelMode uint8

const (
	// Mono streams carry one relevant channel.
	Mono ChannelMode = iota + 1
	// Stereo streams carry two. Channels past the second are ignored.
	Stereo
)

// ModeFor maps a decoded channel count onto a ChannelMode.
func ModeFor(channels int) ChannelMode {
	if channels <= 1 {
		return Mono
	}

	return Stereo
}

// Emit receives one finished output column: the column index and the peak
// amplitude per channel, each in [0, 1]. Mono streams only populate left.
type Emit func(x uint32, left, right float32)

// Downsampler folds an arbitrary number of audio frames onto exactly
// width output columns, one column peak per pixel of the final image.
//
// Bucketing is integer-exact: with total frames T and width W, every
// column owns either T/W or T/W+1 frames, the oversized columns spread
// evenly by a running fractional carry (a DDA, no accumulated float
// error). Bucket sizes always sum to T.
//
// The column budget is replenished when a column starts, the first column
// included, so the carry can never strand a frame past the last column.
//
// A zero (unknown) total is treated as 1 rather than dividing by zero.
// The resulting bucketing is degenerate for genuinely unknown-length
// streams; see NewDownsampler.
type Downsampler struct {
	width     uint32
	perColumn uint64
	remainder uint64

	budget uint64
	carry  uint64
	column uint32

	left  float32
	right float32

	emit Emit
}

// NewDownsampler returns a Downsampler distributing totalFrames frames
// over width columns, calling emit once per column, left to right.
//
// totalFrames == 0 means the container did not report a length; it is
// substituted with 1. That keeps the arithmetic defined but assigns the
// whole assumed stream to a single column, so images for unknown-length
// streams are mostly empty. Callers wanting better output for such
// streams must supply a real frame count.
func NewDownsampler(width uint32, totalFrames uint64, emit Emit) *Downsampler {
	if totalFrames == 0 {
		totalFrames = 1
	}

	d := &Downsampler{
		width:     width,
		perColumn: totalFrames / uint64(width),
		remainder: totalFrames % uint64(width),
		emit:      emit,
	}
	d.replenish()

	return d
}

// Frame feeds one audio frame into the current bucket. Samples are folded
// to clamped absolute amplitude before updating the per-channel maxima.
// Frames arriving after every column has been emitted are ignored.
func (d *Downsampler) Frame(left, right float32) {
	// Columns owning zero frames (total < width) complete without
	// consuming anything.
	for d.budget == 0 && d.column < d.width {
		d.finishColumn()
	}

	if d.column >= d.width {
		return
	}

	if peak := utils.PeakAbs(left); peak > d.left {
		d.left = peak
	}
	if peak := utils.PeakAbs(right); peak > d.right {
		d.right = peak
	}

	d.budget--
	if d.budget == 0 {
		d.finishColumn()
	}
}

// Flush emits every column not yet produced. The first flushed column
// carries whatever maxima accumulated in the trailing partial bucket; any
// after it are empty. After Flush exactly width columns have been emitted
// for the run, regardless of how many frames arrived.
func (d *Downsampler) Flush() {
	for d.column < d.width {
		d.finishColumn()
	}
}

// Columns reports how many columns have been emitted so far.
func (d *Downsampler) Columns() uint32 {
	return d.column
}

func (d *Downsampler) finishColumn() {
	d.emit(d.column, d.left, d.right)

	d.left = 0
	d.right = 0
	d.column++

	if d.column < d.width {
		d.replenish()
	}
}

// replenish sets the frame budget for the column about to start: the
// whole-number share plus one extra frame whenever the fractional carry
// crosses a full width.
func (d *Downsampler) replenish() {
	d.budget = d.perColumn
	d.carry += d.remainder

	if d.carry >= uint64(d.width) {
		d.carry -= uint64(d.width)
		d.budget++
	}
}
