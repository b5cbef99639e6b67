// SPDX-License-Identifier: EPL-2.0

package utils

// PeakAbs folds a signed sample into peak space: the absolute value,
// clamped to [0, 1]. Decoded streams may carry samples outside the
// nominal range (clipped masters, float formats), so the clamp is
// mandatory before any amplitude is fed to a renderer.
func PeakAbs(x float32) float32 {
	if x < 0 {
		x = -x
	}
	if x > 1 {
		x = 1
	}

	return x
}

// PCMDivisor returns the normalization divisor that maps signed PCM
// integers of the given bit depth to float32 in [-1, 1].
// Unknown depths fall back to the 16-bit divisor.
func PCMDivisor(bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return 128.0
	case 16:
		return 32768.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}
