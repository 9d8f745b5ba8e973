// This tool converts a wav file into an aiff file and stores it in the
// same folder as the source.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/cwbudde/wavefile"
	"github.com/go-audio/aiff"
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

	wav, err := wavefile.Open(file)
	if err != nil {
		file.Close()

		return fmt.Errorf("invalid WAV file %s: %w", sourcePath, err)
	}

	buf, err := wav.FullPCMBuffer()
	if err != nil {
		wav.Close()

		return fmt.Errorf("failed to decode %s: %w", sourcePath, err)
	}

	sampleRate := wav.SampleRate()
	validBits := wav.ValidBits()
	numChannels := wav.NumChannels()

	if err := wav.Close(); err != nil {
		return err
	}

	outPath := sourcePath[:len(sourcePath)-len(filepath.Ext(sourcePath))] + ".aif"

	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer outFile.Close()

	encoder := aiff.NewEncoder(outFile, sampleRate, validBits, numChannels)

	if err := encoder.Write(buf); err != nil {
		return fmt.Errorf("failed to encode aiff: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalize aiff: %w", err)
	}

	fmt.Printf("Wav file converted to %s\n", outPath)

	return nil
}
