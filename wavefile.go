package wavefile

import (
	"fmt"
	"io"
	"time"

	"github.com/go-audio/audio"
)

// bufferSize is the capacity of the block buffer that amortizes
// per-sample reads and writes into block-sized transfers.
const bufferSize = 4096

// State describes the lifecycle of a File handle. A handle is created in
// Reading or Writing by the open functions and only ever transitions to
// Closed, via Close.
type State int

const (
	// Reading means the handle was opened by Open and accepts read
	// operations only.
	Reading State = iota + 1
	// Writing means the handle was created by New and accepts write
	// operations only.
	Writing
	// Closed means Close was called; only inspection is valid.
	Closed
)

// String implements the Stringer interface.
func (s State) String() string {
	switch s {
	case Reading:
		return "reading"
	case Writing:
		return "writing"
	case Closed:
		return "closed"
	default:
		return "invalid"
	}
}

// File is a single open WAV container, either being read or being
// written. It exclusively owns its byte source or sink until Close.
// A File is not safe for concurrent use.
type File struct {
	r io.ReadSeeker
	w io.Writer

	state State

	numChannels    int
	numFrames      int64
	sampleRate     int
	validBits      int
	bytesPerSample int
	blockAlign     int

	// facts for the integer <-> normalized float conversion; computed
	// differently for the read and write paths, see header.go.
	floatScale  float64
	floatOffset float64

	// wordAlignAdjust is set when the data chunk byte length is odd and
	// a single zero pad byte must follow the final sample.
	wordAlignAdjust bool

	buffer        [bufferSize]byte
	bufferPointer int
	bytesRead     int
	frameCounter  int64
}

// State returns the current lifecycle state of the handle.
func (f *File) State() State { return f.state }

// NumChannels returns the channel count of the container.
func (f *File) NumChannels() int { return f.numChannels }

// NumFrames returns the total frame capacity of the container: declared
// at creation for a writer, derived from the data chunk for a reader.
func (f *File) NumFrames() int64 { return f.numFrames }

// FramesRemaining returns how many frames are left to read or write
// before the container is exhausted.
func (f *File) FramesRemaining() int64 { return f.numFrames - f.frameCounter }

// SampleRate returns the sample rate in frames per second.
func (f *File) SampleRate() int { return f.sampleRate }

// ValidBits returns the number of meaningful bits per sample.
func (f *File) ValidBits() int { return f.validBits }

// BytesPerSample returns the on-disk byte width of one sample.
func (f *File) BytesPerSample() int { return f.bytesPerSample }

// BlockAlign returns the byte size of one frame.
func (f *File) BlockAlign() int { return f.blockAlign }

// Duration returns the play time of the full container.
func (f *File) Duration() time.Duration {
	if f.sampleRate == 0 {
		return 0
	}

	return time.Duration(f.numFrames) * time.Second / time.Duration(f.sampleRate)
}

// Format returns the audio format of the container content.
func (f *File) Format() *audio.Format {
	if f == nil {
		return nil
	}

	return &audio.Format{
		NumChannels: f.numChannels,
		SampleRate:  f.sampleRate,
	}
}

// require gates frame operations on the handle state.
func (f *File) require(want State, op string) error {
	if f.state == want {
		return nil
	}

	return invalidOpf(op, "container is %s, not %s", f.state, want)
}

// Close finalizes the container and releases the underlying medium when
// it implements io.Closer. For a writer it flushes the trailing partial
// block and emits the word-alignment pad byte if the data chunk length
// is odd. A writer closed before all declared frames were written leaves
// a file shorter than its header promises. Calling Close again is a
// no-op.
func (f *File) Close() error {
	switch f.state {
	case Writing:
		f.state = Closed

		if err := f.flush(); err != nil {
			return err
		}

		if f.wordAlignAdjust {
			if _, err := f.w.Write([]byte{0}); err != nil {
				return fmt.Errorf("failed to write alignment pad byte: %w", err)
			}
		}

		return closeMedium(f.w)
	case Reading:
		f.state = Closed

		return closeMedium(f.r)
	default:
		return nil
	}
}

func closeMedium(v any) error {
	c, ok := v.(io.Closer)
	if !ok {
		return nil
	}

	if err := c.Close(); err != nil {
		return fmt.Errorf("failed to close storage medium: %w", err)
	}

	return nil
}
