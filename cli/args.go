// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/ik5/waver/colors"
)

const (
	// MinWidth is the smallest allowed image width in pixels.
	MinWidth = 16
	// MinHeight is the smallest allowed image height in pixels. The
	// height must also be even so the waveform has a center line.
	MinHeight = 6

	DefaultWidth      = 2048
	DefaultHeight     = 128
	DefaultLeft       = "00ff99"
	DefaultRight      = "99ff00"
	DefaultBackground = "ffffff00"
	DefaultExtensions = "mp3"
)

// Args holds the validated configuration for a run.
type Args struct {
	Width  uint32
	Height uint32

	LeftColor       colors.RGBA
	RightColor      colors.RGBA
	BackgroundColor colors.RGBA

	OutputFilename string
	FileExtensions []string

	DryRun    bool
	Overwrite bool
	Quiet     bool
	Verbose   bool

	// Paths are the audio files or directories to process.
	Paths []string

	// Stdout and Stderr receive user-facing messages; they default to
	// the process streams.
	Stdout io.Writer
	Stderr io.Writer
}

// Parse reads command-line arguments (without the program name),
// validates them and returns the run configuration.
func Parse(argv []string) (*Args, error) {
	fs := flag.NewFlagSet("waver", flag.ContinueOnError)

	width := fs.Uint("width", DefaultWidth, "width of the output image in pixels")
	height := fs.Uint("height", DefaultHeight, "height of the output image in pixels (must be even)")
	left := fs.String("left-color", DefaultLeft, "color for the left channel (RGB, RRGGBB or RRGGBBAA)")
	right := fs.String("right-color", DefaultRight, "color for the right channel (RGB, RRGGBB or RRGGBBAA)")
	background := fs.String("background-color", DefaultBackground, "background color (RGB, RRGGBB or RRGGBBAA)")
	extensions := fs.String("file-extensions", DefaultExtensions, "comma-separated audio file extensions matched when walking directories")

	var output string
	fs.StringVar(&output, "output-filename", "", "output PNG file name (single input only)")
	fs.StringVar(&output, "o", "", "shorthand for -output-filename")

	dryRun := fs.Bool("dry-run", false, "perform actions without generating files")
	overwrite := fs.Bool("overwrite", false, "overwrite existing output files")
	quiet := fs.Bool("quiet", false, "suppress most output")
	verbose := fs.Bool("verbose", false, "print additional information")

	if err := fs.Parse(argv); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	// flag.Uint is 64-bit on common platforms; an oversized value
	// would silently truncate to something that passes validation.
	if *width > math.MaxUint32 {
		return nil, fmt.Errorf("%w: width %d does not fit in 32 bits", ErrInvalidArgument, *width)
	}
	if *height > math.MaxUint32 {
		return nil, fmt.Errorf("%w: height %d does not fit in 32 bits", ErrInvalidArgument, *height)
	}

	exts, err := ParseExtensions(*extensions)
	if err != nil {
		return nil, err
	}

	args := &Args{
		Width:           uint32(*width),
		Height:          uint32(*height),
		OutputFilename:  output,
		FileExtensions:  exts,
		DryRun:          *dryRun,
		Overwrite:       *overwrite,
		Quiet:           *quiet,
		Verbose:         *verbose,
		Paths:           fs.Args(),
		Stdout:          os.Stdout,
		Stderr:          os.Stderr,
	}

	if args.LeftColor, err = colors.Parse(*left); err != nil {
		return nil, fmt.Errorf("%w: left-color: %w", ErrInvalidArgument, err)
	}
	if args.RightColor, err = colors.Parse(*right); err != nil {
		return nil, fmt.Errorf("%w: right-color: %w", ErrInvalidArgument, err)
	}
	if args.BackgroundColor, err = colors.Parse(*background); err != nil {
		return nil, fmt.Errorf("%w: background-color: %w", ErrInvalidArgument, err)
	}

	if err := args.Validate(); err != nil {
		return nil, err
	}

	return args, nil
}

// Validate checks dimension bounds and inter-argument constraints.
func (a *Args) Validate() error {
	if a.Width < MinWidth {
		return fmt.Errorf("%w: width must be at least %d pixels", ErrInvalidArgument, MinWidth)
	}

	if a.Height < MinHeight {
		return fmt.Errorf("%w: height must be at least %d pixels", ErrInvalidArgument, MinHeight)
	}
	if a.Height%2 != 0 {
		return fmt.Errorf("%w: height must be an even number", ErrInvalidArgument)
	}

	if len(a.Paths) == 0 {
		return fmt.Errorf("%w: no audio files or directories given", ErrInvalidArgument)
	}

	if a.OutputFilename != "" {
		if len(a.Paths) > 1 {
			return fmt.Errorf("%w: cannot use -output-filename with multiple audio files", ErrInvalidArgument)
		}

		for _, path := range a.Paths {
			info, err := os.Stat(path)
			if err == nil && info.IsDir() {
				return fmt.Errorf("%w: cannot use -output-filename with a directory", ErrInvalidArgument)
			}
		}
	}

	return nil
}

// ParseExtensions splits a comma-separated extension list, trimming
// whitespace and lowercasing each entry. Empty entries are skipped; an
// entirely empty list is an error.
func ParseExtensions(s string) ([]string, error) {
	var exts []string

	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		exts = append(exts, part)
	}

	if len(exts) == 0 {
		return nil, fmt.Errorf("%w: no file extensions specified", ErrInvalidArgument)
	}

	return exts, nil
}

// PrintOut prints a message for successful operations unless quiet mode
// is enabled.
func (a *Args) PrintOut(message string) {
	if !a.Quiet {
		fmt.Fprintln(a.stdout(), message)
	}
}

// PrintErr prints an error message unless quiet mode is enabled.
func (a *Args) PrintErr(message string) {
	if !a.Quiet {
		fmt.Fprintln(a.stderr(), message)
	}
}

// PrintVerbose prints a message only in verbose mode.
func (a *Args) PrintVerbose(message string) {
	if a.Verbose {
		fmt.Fprintln(a.stdout(), message)
	}
}

func (a *Args) stdout() io.Writer {
	if a.Stdout != nil {
		return a.Stdout
	}
	return os.Stdout
}

func (a *Args) stderr() io.Writer {
	if a.Stderr != nil {
		return a.Stderr
	}
	return os.Stderr
}
