package mp3

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"
)

// mockMP3Reader simulates the gomp3.Decoder for testing
type mockMP3Reader struct {
	sampleRate   int
	samples      []int16 // PCM samples (16-bit)
	offset       int
	length       int64
	returnErrors bool
}

func (m *mockMP3Reader) SampleRate() int {
	return m.sampleRate
}

func (m *mockMP3Reader) Length() int64 {
	return m.length
}

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	// Calculate how many samples we can fit in the buffer
	bytesAvailable := (len(m.samples) - m.offset) * 2
	bytesToRead := len(buf)
	if bytesToRead > bytesAvailable {
		bytesToRead = bytesAvailable
	}

	// Ensure we read complete samples (even number of bytes)
	bytesToRead = (bytesToRead / 2) * 2
	samplesToRead := bytesToRead / 2

	// Write samples as little-endian int16
	for i := range samplesToRead {
		sample := m.samples[m.offset+i]
		binary.LittleEndian.PutUint16(buf[i*2:i*2+2], uint16(sample))
	}

	m.offset += samplesToRead

	if m.offset >= len(m.samples) {
		return bytesToRead, io.EOF
	}

	return bytesToRead, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	// Invalid MP3 data
	invalidData := []byte("This is not MP3 data")

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader(invalidData))

	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
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

	mockReader := &mockMP3Reader{
		sampleRate: 44100,
		samples:    make([]int16, 100),
		length:     200,
	}

	src := &source{
		dec:         mockReader,
		sampleRate:  44100,
		channels:    2,
		totalFrames: 50,
		buf:         make([]byte, 8192),
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

	// 16-bit full scale converts to ±1.0
	samples := []int16{0, 16384, -16384, 32767, -32768, 0}
	mockReader := &mockMP3Reader{
		sampleRate: 44100,
		samples:    samples,
		length:     int64(len(samples)) * 2,
	}

	src := &source{
		dec:        mockReader,
		sampleRate: 44100,
		channels:   2,
		buf:        make([]byte, 8192),
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

func TestSource_ReadSamplesError(t *testing.T) {
	t.Parallel()

	mockReader := &mockMP3Reader{
		sampleRate:   44100,
		samples:      make([]int16, 10),
		returnErrors: true,
	}

	src := &source{
		dec:        mockReader,
		sampleRate: 44100,
		channels:   2,
		buf:        make([]byte, 8192),
	}

	buf := make([]float32, 10)
	_, err := src.ReadSamples(buf)

	if err == nil {
		t.Error("ReadSamples() error = nil, want error")
	}
}
