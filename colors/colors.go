// SPDX-License-Identifier: EPL-2.0

package colors

import (
	"fmt"
	"strconv"
	"strings"
)

// RGBA is a color with 8-bit components, including alpha.
type RGBA struct {
	Red   uint8
	Green uint8
	Blue  uint8
	Alpha uint8
}

// New returns an RGBA color with the given components.
func New(red, green, blue, alpha uint8) RGBA {
	return RGBA{Red: red, Green: green, Blue: blue, Alpha: alpha}
}

// Opaque returns a fully opaque RGB color.
func Opaque(red, green, blue uint8) RGBA {
	return New(red, green, blue, 255)
}

// Parse reads a color from a hex string in one of three forms:
//
//   - RGB (3 hex digits), each digit scaled by 17: "F00" is bright red
//   - RRGGBB (6 hex digits): "FF0000"
//   - RRGGBBAA (8 hex digits): "FF0000FF"
//
// Surrounding whitespace is trimmed. Any other length or a non-hex
// character is an error.
func Parse(color string) (RGBA, error) {
	hex := strings.TrimSpace(color)

	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, color)
	}

	switch len(hex) {
	case 3:
		return RGBA{
			Red:   uint8((value&0xF00)>>8) * 17,
			Green: uint8((value&0x0F0)>>4) * 17,
			Blue:  uint8(value&0x00F) * 17,
			Alpha: 255,
		}, nil
	case 6:
		return RGBA{
			Red:   uint8((value & 0xFF0000) >> 16),
			Green: uint8((value & 0x00FF00) >> 8),
			Blue:  uint8(value & 0x0000FF),
			Alpha: 255,
		}, nil
	case 8:
		return RGBA{
			Red:   uint8((value & 0xFF000000) >> 24),
			Green: uint8((value & 0x00FF0000) >> 16),
			Blue:  uint8((value & 0x0000FF00) >> 8),
			Alpha: uint8(value & 0x000000FF),
		}, nil
	default:
		return RGBA{}, fmt.Errorf("%w: %q must be RGB, RRGGBB or RRGGBBAA", ErrInvalidColor, color)
	}
}
