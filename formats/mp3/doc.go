// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files.
//
// # Decoding MP3 Files
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples as float32 in range [-1.0, 1.0]
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Output Format
//
// go-mp3 always produces 16-bit stereo PCM, so the source reports two
// channels even for mono files (the decoder upmixes internally).
//
// # Frame Count
//
// For seekable input go-mp3 can report the decoded stream size, which
// the source exposes through TotalFrames. For unseekable input the
// count is unknown and TotalFrames reports 0; waveform output for such
// streams is degenerate.
package mp3
