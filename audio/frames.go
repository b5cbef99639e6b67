// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Frame is one time step of audio, reduced to the two channels the
// waveform renderer cares about. Mono streams leave Right at zero.
type Frame struct {
	Left  float32
	Right float32
}

// FrameReader adapts a Source's interleaved sample stream into frames.
// The first channel maps to Left, the second to Right; any further
// channels are dropped, not mixed.
type FrameReader struct {
	src      Source
	channels int
	tmp      []float32
}

func NewFrameReader(src Source) *FrameReader {
	channels := src.Channels()
	// Decoders validate their layouts, but a channel count below one
	// here would make every read a zero-sample no-op and the read loop
	// would never reach EOF. Treat it as mono.
	if channels < 1 {
		channels = 1
	}

	return &FrameReader{
		src:      src,
		channels: channels,
		tmp:      make([]float32, 4096),
	}
}

func (f *FrameReader) Mode() ChannelMode { return ModeFor(f.channels) }

func (f *FrameReader) Close() error {
	err := f.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadFrames fills dst with decoded frames and returns how many were
// read. Propagates the Source's error alongside any frames read; io.EOF
// with 0 frames means the stream is finished.
func (f *FrameReader) ReadFrames(dst []Frame) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	channels := f.channels
	samplesNeeded := len(dst) * channels

	// Grow tmp buffer if needed (but don't shrink to avoid thrashing)
	if cap(f.tmp) < samplesNeeded {
		newCap := samplesNeeded
		if newCap < 8192 {
			newCap = 8192
		}
		f.tmp = make([]float32, newCap)
	}
	f.tmp = f.tmp[:samplesNeeded]

	n, err := f.src.ReadSamples(f.tmp)
	if n == 0 {
		return 0, err
	}
	frames := n / channels

	switch channels {
	case 1:
		for i := range frames {
			dst[i] = Frame{Left: f.tmp[i]}
		}
	case 2:
		for i := range frames {
			idx := i << 1
			dst[i] = Frame{Left: f.tmp[idx], Right: f.tmp[idx+1]}
		}
	default:
		// Surround and other layouts: keep the first two channels,
		// drop the rest of each frame.
		for i := range frames {
			idx := i * channels
			dst[i] = Frame{Left: f.tmp[idx], Right: f.tmp[idx+1]}
		}
	}

	return frames, err
}
