// SPDX-License-Identifier: EPL-2.0

package waver

import "errors"

var (
	// ErrNoDecodableTrack indicates that no registered decoder handles
	// the file's format.
	ErrNoDecodableTrack = errors.New("no decodable audio track")
)
