package wavefile

import (
	"errors"
	"fmt"
	"io"
)

// readSample unpacks the next sample from the block buffer, pulling a
// fresh block from the source when the buffer is exhausted. The most
// significant byte is sign-extended unless the sample is a single byte,
// which is treated as unsigned.
func (f *File) readSample() (int64, error) {
	var sample int64

	for b := 0; b < f.bytesPerSample; b++ {
		if f.bufferPointer == f.bytesRead {
			n, err := f.r.Read(f.buffer[:])
			if err != nil && !errors.Is(err, io.EOF) {
				return 0, fmt.Errorf("failed to read sample data: %w", err)
			}

			// the data chunk length promised more bytes than the
			// source delivered
			if n <= 0 {
				return 0, formatErrorf("not enough data available")
			}

			f.bytesRead = n
			f.bufferPointer = 0
		}

		v := f.buffer[f.bufferPointer]
		if b < f.bytesPerSample-1 || f.bytesPerSample == 1 {
			sample |= int64(v) << uint(b*8)
		} else {
			sample |= int64(int8(v)) << uint(b*8)
		}

		f.bufferPointer++
	}

	return sample, nil
}

// writeSample packs the low-order bytes of sample into the block buffer
// least significant first, flushing full blocks to the sink.
func (f *File) writeSample(sample int64) error {
	for b := 0; b < f.bytesPerSample; b++ {
		if f.bufferPointer == len(f.buffer) {
			if err := f.flush(); err != nil {
				return err
			}
		}

		f.buffer[f.bufferPointer] = byte(sample)
		sample >>= 8
		f.bufferPointer++
	}

	return nil
}

// flush writes out the used portion of the block buffer.
func (f *File) flush() error {
	if f.bufferPointer == 0 {
		return nil
	}

	if _, err := f.w.Write(f.buffer[:f.bufferPointer]); err != nil {
		return fmt.Errorf("failed to write sample data: %w", err)
	}

	f.bufferPointer = 0

	return nil
}
