// This tool decodes an mp3 file into a 16-bit PCM wav file stored in
// the same folder as the source.
package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/cwbudde/wavefile"
	mp3 "github.com/hajimehoshi/go-mp3"
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

	dec, err := mp3.NewDecoder(file)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", sourcePath, err)
	}

	// go-mp3 emits 16-bit little-endian stereo PCM
	const (
		numChannels    = 2
		validBits      = 16
		bytesPerSample = 2
	)

	pcm, err := io.ReadAll(dec)
	if err != nil {
		return fmt.Errorf("failed to read PCM stream: %w", err)
	}

	numFrames := int64(len(pcm) / (numChannels * bytesPerSample))

	outPath := sourcePath[:len(sourcePath)-len(filepath.Ext(sourcePath))] + ".wav"

	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}

	out, err := wavefile.New(outFile, numChannels, numFrames, validBits, dec.SampleRate())
	if err != nil {
		outFile.Close()

		return err
	}

	frames := make([]int, numFrames*numChannels)
	for i := range frames {
		frames[i] = int(int16(binary.LittleEndian.Uint16(pcm[i*bytesPerSample:])))
	}

	if _, err := out.WriteFrames(frames, int(numFrames)); err != nil {
		out.Close()

		return err
	}

	if err := out.Close(); err != nil {
		return err
	}

	fmt.Printf("Mp3 file converted to %s\n", outPath)

	return nil
}
