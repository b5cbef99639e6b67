// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// mockAiffReader simulates the aiff.Decoder for testing
type mockAiffReader struct {
	sampleRate   int
	channels     int
	samples      []int
	offset       int
	returnErrors bool
}

func (m *mockAiffReader) Format() *goaudio.Format {
	return &goaudio.Format{
		SampleRate:  m.sampleRate,
		NumChannels: m.channels,
	}
}

func (m *mockAiffReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	samplesToRead := len(buf.Data)
	if samplesToRead > len(m.samples)-m.offset {
		samplesToRead = len(m.samples) - m.offset
	}

	copy(buf.Data, m.samples[m.offset:m.offset+samplesToRead])
	m.offset += samplesToRead

	if m.offset >= len(m.samples) {
		return samplesToRead, io.EOF
	}

	return samplesToRead, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	// Invalid AIFF data
	invalidData := []byte("This is not AIFF data")

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader(invalidData))

	if !errors.Is(err, ErrNotAiffFile) {
		t.Errorf("Decode() error = %v, want ErrNotAiffFile", err)
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader([]byte{}))

	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	mockReader := &mockAiffReader{
		sampleRate: 44100,
		channels:   2,
		samples:    make([]int, 100),
	}

	src := &source{
		dec:         mockReader,
		sampleRate:  44100,
		channels:    2,
		bitDepth:    16,
		totalFrames: 50,
	}

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}

	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}

	if src.TotalFrames() != 50 {
		t.Errorf("TotalFrames() = %d, want 50", src.TotalFrames())
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	samples := []int{0, 16384, -16384, 32767, -32768, 0}
	mockReader := &mockAiffReader{
		sampleRate: 44100,
		channels:   2,
		samples:    samples,
	}

	src := &source{
		dec:        mockReader,
		sampleRate: 44100,
		channels:   2,
		bitDepth:   16,
	}

	buf := make([]float32, len(samples))
	n, err := src.ReadSamples(buf)

	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != len(samples) {
		t.Fatalf("ReadSamples() n = %d, want %d", n, len(samples))
	}

	want := []float32{0, 0.5, -0.5, 32767.0 / 32768.0, -1.0, 0}
	for i := range want {
		if math.Abs(float64(buf[i]-want[i])) > 0.0001 {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i], want[i])
		}
	}
}

// buildAIFF assembles a minimal AIFF container for layout tests.
func buildAIFF(numChans uint16) []byte {
	var comm bytes.Buffer
	binary.Write(&comm, binary.BigEndian, numChans)
	binary.Write(&comm, binary.BigEndian, uint32(0)) // sample frames
	binary.Write(&comm, binary.BigEndian, uint16(16))
	comm.Write([]byte{0x40, 0x0E, 0xAC, 0x44, 0, 0, 0, 0, 0, 0}) // 44100 Hz as 80-bit float

	var ssnd bytes.Buffer
	binary.Write(&ssnd, binary.BigEndian, uint32(0)) // offset
	binary.Write(&ssnd, binary.BigEndian, uint32(0)) // block size

	var body bytes.Buffer
	body.WriteString("AIFF")
	body.WriteString("COMM")
	binary.Write(&body, binary.BigEndian, uint32(comm.Len()))
	body.Write(comm.Bytes())
	body.WriteString("SSND")
	binary.Write(&body, binary.BigEndian, uint32(ssnd.Len()))
	body.Write(ssnd.Bytes())

	var buf bytes.Buffer
	buf.WriteString("FORM")
	binary.Write(&buf, binary.BigEndian, uint32(body.Len()))
	buf.Write(body.Bytes())

	return buf.Bytes()
}

func TestDecoder_ZeroChannels(t *testing.T) {
	t.Parallel()

	// A COMM chunk declaring zero channels must be rejected before it
	// can reach the frame reader.
	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader(buildAIFF(0)))

	if !errors.Is(err, ErrUnsupportedAiffLayout) {
		t.Errorf("Decode() error = %v, want ErrUnsupportedAiffLayout", err)
	}
}

func TestSource_ReadSamplesError(t *testing.T) {
	t.Parallel()

	mockReader := &mockAiffReader{
		sampleRate:   44100,
		channels:     2,
		samples:      make([]int, 10),
		returnErrors: true,
	}

	src := &source{
		dec:        mockReader,
		sampleRate: 44100,
		channels:   2,
		bitDepth:   16,
	}

	buf := make([]float32, 10)
	_, err := src.ReadSamples(buf)

	if err == nil {
		t.Error("ReadSamples() error = nil, want error")
	}
}
