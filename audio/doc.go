// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming primitives behind waveform
// rendering.
//
// This package contains the core building blocks:
//   - Source interface for decoded audio input
//   - FrameReader for turning interleaved samples into frames
//   - Downsampler for mapping frames onto output columns
//   - Format registry for decoder registration
//
// # Source Interface
//
// The Source interface is the foundation of the pipeline:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    TotalFrames() uint64
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All format decoders implement this interface. TotalFrames is a hint
// taken from the container; 0 means the length is unknown.
//
// # Frames
//
// A FrameReader reduces any channel layout to the two channels a
// waveform image can show:
//
//	frames := audio.NewFrameReader(source)
//	buf := make([]audio.Frame, 4096)
//	n, err := frames.ReadFrames(buf)
//
// Channels past the second are dropped; they are never mixed in.
//
// # Downsampling
//
// The Downsampler assigns every frame of a stream to exactly one of a
// fixed number of output columns and reports the per-channel peak of
// each column as it completes:
//
//	ds := audio.NewDownsampler(width, source.TotalFrames(), emit)
//	for each frame {
//	    ds.Frame(left, right)
//	}
//	ds.Flush()
//
// Bucket sizes differ by at most one frame and always sum to the total
// frame count; the distribution is computed with integer arithmetic
// only. Flush guarantees that exactly width columns are emitted no
// matter how many frames actually arrived.
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, _ := registry.Get("wav")
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// The Downsampler folds samples to absolute amplitude and clamps them
// to [0, 1], so sources that occasionally exceed the nominal range are
// still safe to feed in.
//
// # Error Handling
//
// Streaming functions return io.EOF when no more data is available.
// Other errors indicate problems with the source:
//
//	for {
//	    n, err := frames.ReadFrames(buf)
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Decode error
//	    }
//	    // Process n frames from buf
//	}
package audio
