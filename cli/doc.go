// SPDX-License-Identifier: EPL-2.0

// Package cli parses and validates waver's command-line arguments.
//
// Validation happens at parse time, so the rest of the program can
// assume the configuration is sound: the width is at least 16, the
// height at least 6 and even, colors are well-formed, and the output
// filename constraints hold (single input, not a directory).
//
// CollectFiles expands positional paths into the final work list:
// files are taken verbatim, directories are walked recursively and
// filtered by extension.
package cli
