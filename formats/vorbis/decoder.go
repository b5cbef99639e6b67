package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/waver/audio"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Length() int64
	Read([]float32) (int, error)
}

type source struct {
	dec         oggReader
	sampleRate  int
	channels    int
	totalFrames uint64
}

func (s *source) SampleRate() int     { return s.sampleRate }
func (s *source) Channels() int       { return s.channels }
func (s *source) TotalFrames() uint64 { return s.totalFrames }
func (s *source) Close() error        { return nil }
func (s *source) BufSize() int        { return 4096 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	// Hand the reader whole frames only; a trailing partial frame in
	// dst stays unused.
	want := len(dst) - len(dst)%s.channels
	if want == 0 {
		return 0, nil
	}

	// oggvorbis fills the buffer with interleaved samples and reports
	// how many values (samples times channels) it wrote, so the count
	// passes through unchanged.
	n, err := s.dec.Read(dst[:want])
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, nil
	}

	return n, err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	// Length reports frames per channel, 0 when the stream cannot be
	// scanned (unseekable input)
	var totalFrames uint64
	if length := dec.Length(); length > 0 {
		totalFrames = uint64(length)
	}

	return &source{
		dec:         dec,
		sampleRate:  dec.SampleRate(),
		channels:    dec.Channels(),
		totalFrames: totalFrames,
	}, nil
}
