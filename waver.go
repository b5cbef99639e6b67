// SPDX-License-Identifier: EPL-2.0

package waver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/ik5/waver/audio"
	"github.com/ik5/waver/cli"
	"github.com/ik5/waver/formats/aiff"
	"github.com/ik5/waver/formats/mp3"
	"github.com/ik5/waver/formats/vorbis"
	"github.com/ik5/waver/formats/wav"
	"github.com/ik5/waver/render"
)

// DefaultRegistry returns a registry with all built-in decoders
// registered under their usual file extensions.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return reg
}

// Generator renders waveform images for audio files according to a
// parsed command line. It is safe for concurrent use.
type Generator struct {
	args     *cli.Args
	registry *audio.Registry
}

// New creates a Generator using the built-in decoder registry.
func New(args *cli.Args) *Generator {
	return NewWithRegistry(args, DefaultRegistry())
}

// NewWithRegistry creates a Generator with a custom decoder registry.
func NewWithRegistry(args *cli.Args, registry *audio.Registry) *Generator {
	return &Generator{
		args:     args,
		registry: registry,
	}
}

// OutputPath returns the PNG path for an input file. The explicit
// output filename wins when set; otherwise the audio extension is
// replaced with ".png" next to the input.
func (g *Generator) OutputPath(input string) string {
	if g.args.OutputFilename != "" {
		return g.args.OutputFilename
	}

	return strings.TrimSuffix(input, filepath.Ext(input)) + ".png"
}

// Generate renders the waveform image for a single audio file.
//
// An existing output file is left untouched unless overwriting was
// requested. In dry-run mode the file is decoded and rendered but
// nothing is written to disk.
func (g *Generator) Generate(input string) error {
	output := g.OutputPath(input)

	if !g.args.Overwrite {
		if _, err := os.Stat(output); err == nil {
			g.args.PrintVerbose(fmt.Sprintf("%s: output %s already exists, skipping", input, output))
			return nil
		}
	}

	decoder, ok := g.registry.Get(cli.Extension(input))
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoDecodableTrack, input)
	}

	in, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("opening %s: %w", input, err)
	}
	defer in.Close()

	src, err := decoder.Decode(in)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", input, err)
	}
	defer src.Close()

	canvas, err := g.renderTrack(src)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", input, err)
	}

	if g.args.DryRun {
		g.args.PrintOut(fmt.Sprintf("%s: would write %s", input, output))
		return nil
	}

	if err := g.writePNG(canvas, output); err != nil {
		return err
	}

	g.args.PrintOut(fmt.Sprintf("%s -> %s", input, output))

	return nil
}

// renderTrack consumes the whole source and returns the painted canvas.
func (g *Generator) renderTrack(src audio.Source) (*render.Canvas, error) {
	frames := audio.NewFrameReader(src)
	canvas := render.NewCanvas(g.args.Width, g.args.Height)

	var emit audio.Emit
	switch frames.Mode() {
	case audio.Mono:
		emit = func(x uint32, left, _ float32) {
			canvas.DrawMono(x, left)
		}
	default:
		emit = canvas.DrawStereo
	}

	ds := audio.NewDownsampler(g.args.Width, src.TotalFrames(), emit)

	buf := make([]audio.Frame, frameBufLen(src))
	for {
		n, err := frames.ReadFrames(buf)
		for _, frame := range buf[:n] {
			ds.Frame(frame.Left, frame.Right)
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("reading samples: %w", err)
		}
	}

	ds.Flush()

	return canvas, nil
}

// writePNG encodes the canvas to the output path, removing the partial
// file when encoding fails midway.
func (g *Generator) writePNG(canvas *render.Canvas, output string) error {
	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}

	err = render.EncodePNG(out, canvas, g.args.BackgroundColor, g.args.LeftColor, g.args.RightColor)
	if err != nil {
		out.Close()
		os.Remove(output)

		return fmt.Errorf("encoding %s: %w", output, err)
	}

	if err := out.Close(); err != nil {
		os.Remove(output)

		return fmt.Errorf("writing %s: %w", output, err)
	}

	return nil
}

// Run renders all files, spreading the work over the available CPUs.
// Each file is independent; failures are collected and reported
// together once every file has been attempted.
func (g *Generator) Run(files []string) error {
	workers := runtime.NumCPU()
	if workers > len(files) {
		workers = len(files)
	}

	jobs := make(chan string)

	var (
		wg   sync.WaitGroup
		mtx  sync.Mutex
		errs []error
	)

	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for path := range jobs {
				if err := g.Generate(path); err != nil {
					g.args.PrintErr(err.Error())

					mtx.Lock()
					errs = append(errs, err)
					mtx.Unlock()
				}
			}
		}()
	}

	for _, path := range files {
		jobs <- path
	}
	close(jobs)

	wg.Wait()

	if len(errs) > 0 {
		return fmt.Errorf("%d of %d files failed: %w", len(errs), len(files), errors.Join(errs...))
	}

	return nil
}

func frameBufLen(src audio.Source) int {
	n := src.BufSize()
	if n <= 0 {
		n = 4096
	}

	return n
}
