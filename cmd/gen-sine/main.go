// This tool generates a wav file containing one or two sine tones.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/cwbudde/wavefile"
)

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("gen-sine", flag.ContinueOnError)

	output := flagSet.String("output", "output.wav", "filename to write to")
	frequency := flagSet.Float64("frequency", 440, "frequency in hertz to generate")
	frequency2 := flagSet.Float64("frequency2", 0, "second channel frequency in hertz, 0 for mono output")
	length := flagSet.Float64("length", 5, "length in seconds of output file")
	rate := flagSet.Int("rate", 48000, "sample rate in hertz")
	bits := flagSet.Int("bits", 16, "valid bits per sample")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	numChannels := 1
	if *frequency2 > 0 {
		numChannels = 2
	}

	numFrames := int64(float64(*rate) * *length)

	log.Printf("generating a %f sec sine wav at %f hz", *length, *frequency)

	file, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", *output, err)
	}

	out, err := wavefile.New(file, numChannels, numFrames, *bits, *rate)
	if err != nil {
		file.Close()

		return err
	}

	const blockFrames = 256

	frames := make([]float64, blockFrames*numChannels)

	var written int64
	for written < numFrames {
		count := blockFrames
		if remaining := numFrames - written; remaining < int64(count) {
			count = int(remaining)
		}

		for i := 0; i < count; i++ {
			t := float64(written+int64(i)) / float64(*rate)

			frames[i*numChannels] = math.Sin(2 * math.Pi * *frequency * t)
			if numChannels == 2 {
				frames[i*numChannels+1] = math.Sin(2 * math.Pi * *frequency2 * t)
			}
		}

		n, err := out.WriteFramesFloat(frames, count)
		if err != nil {
			out.Close()

			return err
		}

		written += int64(n)
	}

	return out.Close()
}
