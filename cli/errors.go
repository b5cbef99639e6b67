// SPDX-License-Identifier: EPL-2.0

package cli

import "errors"

var (
	// ErrInvalidArgument indicates a command-line argument that failed
	// validation.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoAudioFiles indicates that no input matched the given paths
	// and extensions.
	ErrNoAudioFiles = errors.New("no matching audio files found")
)
