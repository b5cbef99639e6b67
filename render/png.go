// SPDX-License-Identifier: EPL-2.0

package render

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/ik5/waver/colors"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

const (
	pngColorIndexed = 3

	pngFilterNone = 0
	pngFilterUp   = 2
)

// EncodePNG serializes the canvas as an indexed-color PNG: bit depth 2,
// a 4-entry palette [background, left, right, background] with a
// parallel transparency table, Up-filtered scanlines and maximum zlib
// compression.
//
// The palette repeats the background at index 3 on purpose: a pixel
// claimed by both channels (the Collision code) renders exactly like
// empty background, leaving a visible gap where the bars meet instead
// of a mixed color.
func EncodePNG(w io.Writer, c *Canvas, background, left, right colors.RGBA) error {
	if _, err := w.Write(pngSignature); err != nil {
		return fmt.Errorf("writing signature: %w", err)
	}

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], c.width)
	binary.BigEndian.PutUint32(ihdr[4:8], c.height)
	ihdr[8] = 2 // bit depth: four palette entries need two bits
	ihdr[9] = pngColorIndexed
	ihdr[10] = 0 // compression method
	ihdr[11] = 0 // filter method
	ihdr[12] = 0 // no interlace

	if err := writeChunk(w, "IHDR", ihdr); err != nil {
		return err
	}

	plte := []byte{
		background.Red, background.Green, background.Blue,
		left.Red, left.Green, left.Blue,
		right.Red, right.Green, right.Blue,
		background.Red, background.Green, background.Blue,
	}
	if err := writeChunk(w, "PLTE", plte); err != nil {
		return err
	}

	trns := []byte{background.Alpha, left.Alpha, right.Alpha, background.Alpha}
	if err := writeChunk(w, "tRNS", trns); err != nil {
		return err
	}

	idat, err := compressScanlines(c)
	if err != nil {
		return err
	}
	if err := writeChunk(w, "IDAT", idat); err != nil {
		return err
	}

	return writeChunk(w, "IEND", nil)
}

// compressScanlines filters the raster rows and deflates them into the
// IDAT payload. The first scanline takes the None filter (there is no
// previous row), all others the Up filter, which compresses the long
// vertical runs of waveform bars well.
func compressScanlines(c *Canvas) ([]byte, error) {
	var out bytes.Buffer

	zw, err := zlib.NewWriterLevel(&out, zlib.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("creating compressor: %w", err)
	}

	stride := int(c.stride)
	prev := make([]byte, stride)
	cur := make([]byte, stride)
	line := make([]byte, 1+stride)

	for y := 0; y < int(c.height); y++ {
		row := c.pix[y*stride : (y+1)*stride]
		for i, b := range row {
			cur[i] = msbPacked(b)
		}

		if y == 0 {
			line[0] = pngFilterNone
			copy(line[1:], cur)
		} else {
			line[0] = pngFilterUp
			for i := range cur {
				line[1+i] = cur[i] - prev[i]
			}
		}

		if _, err := zw.Write(line); err != nil {
			return nil, fmt.Errorf("compressing scanline %d: %w", y, err)
		}

		prev, cur = cur, prev
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("flushing compressor: %w", err)
	}

	return out.Bytes(), nil
}

// msbPacked mirrors the four 2-bit fields of a packed byte. The canvas
// keeps the leftmost pixel of each group in the low-order bits; PNG
// wants it in the high-order bits.
func msbPacked(b byte) byte {
	return (b&0x03)<<6 | (b&0x0C)<<2 | (b&0x30)>>2 | (b&0xC0)>>6
}

// writeChunk emits one PNG chunk: big-endian length, 4-byte type, data,
// and a CRC32 covering type plus data.
func writeChunk(w io.Writer, typ string, data []byte) error {
	var head [8]byte
	binary.BigEndian.PutUint32(head[0:4], uint32(len(data)))
	copy(head[4:8], typ)

	if _, err := w.Write(head[:]); err != nil {
		return fmt.Errorf("writing %s chunk: %w", typ, err)
	}
	if len(data) > 0 {
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("writing %s chunk: %w", typ, err)
		}
	}

	crc := crc32.NewIEEE()
	crc.Write(head[4:8])
	crc.Write(data)

	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], crc.Sum32())
	if _, err := w.Write(sum[:]); err != nil {
		return fmt.Errorf("writing %s chunk: %w", typ, err)
	}

	return nil
}
