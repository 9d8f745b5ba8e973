// This tool decodes an ogg vorbis file into a 16-bit PCM wav file
// stored in the same folder as the source.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/cwbudde/wavefile"
	"github.com/jfreymuth/oggvorbis"
)

const missingPathMessage = "You must pass the path of the file to convert"

func main() {
	err := run(os.Args[1:])
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

func run(args []string) error {
	if len(args) < 1 {
		return errMissingPath
	}

	sourcePath := args[0]

	file, err := os.Open(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", sourcePath, err)
	}
	defer file.Close()

	samples, format, err := oggvorbis.ReadAll(file)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", sourcePath, err)
	}

	const validBits = 16

	numFrames := int64(len(samples) / format.Channels)

	outPath := sourcePath[:len(sourcePath)-len(filepath.Ext(sourcePath))] + ".wav"

	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}

	out, err := wavefile.New(outFile, format.Channels, numFrames, validBits, format.SampleRate)
	if err != nil {
		outFile.Close()

		return err
	}

	frames := make([]float64, len(samples))
	for i, v := range samples {
		frames[i] = float64(v)
	}

	if _, err := out.WriteFramesFloat(frames, int(numFrames)); err != nil {
		out.Close()

		return err
	}

	if err := out.Close(); err != nil {
		return err
	}

	fmt.Printf("Ogg file converted to %s\n", outPath)

	return nil
}
