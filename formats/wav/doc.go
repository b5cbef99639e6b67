// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding.
//
// This package uses github.com/go-audio/wav to parse the RIFF container
// and read PCM data, including files whose chunks are not laid out in
// the canonical 44-byte-header order.
//
// # Decoding WAV Files
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source providing samples as float32
// values normalized to [-1.0, 1.0], whatever the file's bit depth.
//
// # Frame Count
//
// WAV files state the PCM data size up front, so TotalFrames reports an
// exact frame count. That makes WAV the best-behaved input for
// waveform rendering: the downsampler can scale the stream without
// guessing.
//
// The decoder prefers an io.ReadSeeker; any other reader is buffered
// completely in memory first.
package wav
