// This tool prints the format facts of the passed wav file.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cwbudde/wavefile"
)

const missingPathMessage = "You must pass the path of the file to inspect"

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		fmt.Println(missingPathMessage)
		os.Exit(1)
	}

	log.Fatal(err)
}

var errMissingPath = errors.New("missing path argument")

func run(args []string, out io.Writer) error {
	if len(args) < 1 {
		return errMissingPath
	}

	file, err := os.Open(args[0])
	if err != nil {
		return err
	}

	wav, err := wavefile.Open(file)
	if err != nil {
		file.Close()

		return err
	}
	defer wav.Close()

	fmt.Fprintf(out, "Channels: %d\n", wav.NumChannels())
	fmt.Fprintf(out, "Sample rate: %d Hz\n", wav.SampleRate())
	fmt.Fprintf(out, "Valid bits: %d\n", wav.ValidBits())
	fmt.Fprintf(out, "Bytes per sample: %d\n", wav.BytesPerSample())
	fmt.Fprintf(out, "Block align: %d\n", wav.BlockAlign())
	fmt.Fprintf(out, "Frames: %d\n", wav.NumFrames())
	fmt.Fprintf(out, "Duration: %s\n", wav.Duration())

	return nil
}
