// SPDX-License-Identifier: EPL-2.0

// Command waver renders waveform overview PNGs for audio files.
package main

import (
	"fmt"
	"os"

	"github.com/ik5/waver"
	"github.com/ik5/waver/cli"
)

func main() {
	args, err := cli.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	files, err := args.CollectFiles()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := waver.New(args).Run(files); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
