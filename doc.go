// SPDX-License-Identifier: EPL-2.0

// Package waver renders waveform overview images from audio files.
//
// A track is decoded to interleaved float32 PCM, reduced to one peak
// amplitude pair per image column and painted onto a 2-bit indexed
// canvas that is written out as a paletted PNG. Mono tracks draw a
// single symmetric band around the vertical center; stereo tracks draw
// the left channel above the center line and the right channel below
// it.
//
// Decoders for WAV, MP3, Ogg Vorbis and AIFF live under formats/ and
// are looked up by file extension through an audio.Registry. The cli
// package parses the command line for the waver binary.
package waver
