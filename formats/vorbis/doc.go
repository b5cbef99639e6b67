// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis
// files. Samples come out as float32 in [-1.0, 1.0], interleaved:
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Frame Count
//
// For seekable streams oggvorbis scans to the final granule position
// and TotalFrames reports an exact per-channel sample count. Unseekable
// streams report 0 (unknown).
//
// Vorbis encoding is not supported, decoding only.
package vorbis
