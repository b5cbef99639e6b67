// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF audio file decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
// Only 16-bit PCM is supported for now.
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aiff")
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
// The COMM chunk carries the file's sample frame count, exposed through
// TotalFrames.
//
// The decoder prefers an io.ReadSeeker; any other reader is buffered
// completely in memory first.
package aiff
