package wavefile

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-audio/riff"
)

const (
	compressionPCM = 1
	fmtChunkSize   = 16
	// riffOverhead is the byte count of the WAVE tag plus the fmt and
	// data chunk headers, everything the riff chunk size covers besides
	// the sample data itself.
	riffOverhead = 4 + 8 + fmtChunkSize + 8

	maxChannels  = 65535
	maxValidBits = 65535
)

var errNilMedium = errors.New("wavefile: nil storage medium")

// New opens a container for writing on w and emits the full header. The
// frame capacity is declared up front, so all chunk sizes are final and
// the sink never needs to seek. The returned handle owns w until Close.
func New(w io.Writer, numChannels int, numFrames int64, validBits, sampleRate int) (*File, error) {
	if w == nil {
		return nil, errNilMedium
	}

	if numChannels < 1 || numChannels > maxChannels {
		return nil, formatErrorf("illegal number of channels, valid range 1 to 65535: %d", numChannels)
	}

	if numFrames < 0 {
		return nil, formatErrorf("number of frames must be positive: %d", numFrames)
	}

	if validBits < 2 || validBits > maxValidBits {
		return nil, formatErrorf("illegal number of valid bits, valid range 2 to 65535: %d", validBits)
	}

	if sampleRate < 0 {
		return nil, formatErrorf("sample rate must be positive: %d", sampleRate)
	}

	f := &File{
		w:           w,
		state:       Writing,
		numChannels: numChannels,
		numFrames:   numFrames,
		sampleRate:  sampleRate,
		validBits:   validBits,
	}
	f.bytesPerSample = (validBits + 7) / 8
	f.blockAlign = f.bytesPerSample * numChannels

	dataChunkSize := int64(f.blockAlign) * numFrames

	riffChunkSize := int64(riffOverhead) + dataChunkSize
	if dataChunkSize%2 == 1 {
		riffChunkSize++
		f.wordAlignAdjust = true
	}

	var hdr [44]byte

	copy(hdr[0:4], riff.RiffID[:])
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(riffChunkSize))
	copy(hdr[8:12], riff.WavFormatID[:])
	copy(hdr[12:16], riff.FmtID[:])
	binary.LittleEndian.PutUint32(hdr[16:20], fmtChunkSize)
	binary.LittleEndian.PutUint16(hdr[20:22], compressionPCM)
	binary.LittleEndian.PutUint16(hdr[22:24], uint16(numChannels))
	binary.LittleEndian.PutUint32(hdr[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(hdr[28:32], uint32(sampleRate*f.blockAlign))
	binary.LittleEndian.PutUint16(hdr[32:34], uint16(f.blockAlign))
	binary.LittleEndian.PutUint16(hdr[34:36], uint16(validBits))
	copy(hdr[36:40], riff.DataFormatID[:])
	binary.LittleEndian.PutUint32(hdr[40:44], uint32(dataChunkSize))

	if _, err := w.Write(hdr[:]); err != nil {
		return nil, fmt.Errorf("failed to write container header: %w", err)
	}

	if validBits > 8 {
		// signed convention: scale to the largest representable
		// positive magnitude
		f.floatOffset = 0

		if validBits <= 64 {
			f.floatScale = float64(int64(math.MaxInt64) >> uint(64-validBits))
		} else {
			f.floatScale = math.Ldexp(1, validBits-1)
		}
	} else {
		// unsigned convention
		f.floatOffset = 1
		f.floatScale = 0.5 * float64((uint64(1)<<uint(validBits))-1)
	}

	return f, nil
}

// Open opens a container for reading from r, validating the header and
// scanning the chunk sequence up to the start of the sample data. The
// source must be seekable: the declared riff length is checked against
// the actual byte length before any chunk is trusted. The returned
// handle owns r until Close.
func Open(r io.ReadSeeker) (*File, error) {
	if r == nil {
		return nil, errNilMedium
	}

	f := &File{r: r, state: Reading}

	var hdr [12]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, formatErrorf("not enough data available: short riff header")
		}

		return nil, fmt.Errorf("failed to read riff header: %w", err)
	}

	var id [4]byte

	copy(id[:], hdr[0:4])
	if id != riff.RiffID {
		return nil, formatErrorf("invalid wav header data, incorrect riff chunk ID")
	}

	riffChunkSize := binary.LittleEndian.Uint32(hdr[4:8])

	copy(id[:], hdr[8:12])
	if id != riff.WavFormatID {
		return nil, formatErrorf("invalid wav header data, incorrect wave format")
	}

	totalLen, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to determine source length: %w", err)
	}

	if _, err := r.Seek(int64(len(hdr)), io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to seek past riff header: %w", err)
	}

	if int64(riffChunkSize)+8 != totalLen {
		return nil, formatErrorf("header chunk size %d does not match file size %d", riffChunkSize, totalLen)
	}

	if err := f.scanChunks(); err != nil {
		return nil, err
	}

	if f.validBits > 8 {
		f.floatOffset = 0
		f.floatScale = math.Ldexp(1, f.validBits-1)
	} else {
		f.floatOffset = -1
		f.floatScale = 0.5 * float64((uint64(1)<<uint(f.validBits))-1)
	}

	return f, nil
}

// OpenBytes opens a container held entirely in memory.
func OpenBytes(data []byte) (*File, error) {
	return Open(bytes.NewReader(data))
}

// scanChunks walks the (tag, length) chunk sequence until the data
// chunk. Unknown chunks are skipped word-aligned; the format chunk must
// appear before the data chunk.
func (f *File) scanChunks() error {
	foundFormat := false

	for {
		var chunkHdr [8]byte

		_, err := io.ReadFull(f.r, chunkHdr[:])
		if errors.Is(err, io.EOF) {
			if !foundFormat {
				return formatErrorf("reached end of file without finding format chunk")
			}

			return formatErrorf("reached end of file without finding data chunk")
		}

		if err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) {
				return formatErrorf("could not read chunk header")
			}

			return fmt.Errorf("failed to read chunk header: %w", err)
		}

		var id [4]byte

		copy(id[:], chunkHdr[0:4])
		chunkSize := int64(binary.LittleEndian.Uint32(chunkHdr[4:8]))

		// chunk payloads end on an even byte boundary
		numChunkBytes := chunkSize
		if chunkSize%2 == 1 {
			numChunkBytes++
		}

		switch id {
		case riff.FmtID:
			foundFormat = true

			if err := f.readFormatFields(); err != nil {
				return err
			}

			// skip any extended format bytes we did not consume
			if err := f.skip(numChunkBytes - fmtChunkSize); err != nil {
				return err
			}
		case riff.DataFormatID:
			if !foundFormat {
				return formatErrorf("data chunk found before format chunk")
			}

			if chunkSize%int64(f.blockAlign) != 0 {
				return formatErrorf("data chunk size %d is not a multiple of block align %d", chunkSize, f.blockAlign)
			}

			f.numFrames = chunkSize / int64(f.blockAlign)

			return nil
		default:
			if err := f.skip(numChunkBytes); err != nil {
				return err
			}
		}
	}
}

// readFormatFields parses the fixed 16-byte portion of the format chunk
// and derives the per-sample byte layout.
func (f *File) readFormatFields() error {
	var fields [fmtChunkSize]byte

	if _, err := io.ReadFull(f.r, fields[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return formatErrorf("not enough data available: short format chunk")
		}

		return fmt.Errorf("failed to read format chunk: %w", err)
	}

	compression := binary.LittleEndian.Uint16(fields[0:2])
	if compression != compressionPCM {
		return formatErrorf("compression code %d not supported", compression)
	}

	f.numChannels = int(binary.LittleEndian.Uint16(fields[2:4]))
	f.sampleRate = int(binary.LittleEndian.Uint32(fields[4:8]))
	f.blockAlign = int(binary.LittleEndian.Uint16(fields[12:14]))
	f.validBits = int(binary.LittleEndian.Uint16(fields[14:16]))

	if f.numChannels == 0 {
		return formatErrorf("number of channels specified in header is equal to zero")
	}

	if f.blockAlign == 0 {
		return formatErrorf("block align specified in header is equal to zero")
	}

	if f.validBits < 2 {
		return formatErrorf("valid bits specified in header is less than 2")
	}

	if f.validBits > 64 {
		return formatErrorf("valid bits specified in header is greater than 64")
	}

	f.bytesPerSample = (f.validBits + 7) / 8
	if f.bytesPerSample*f.numChannels != f.blockAlign {
		return formatErrorf("block align %d does not agree with bytes per sample %d and number of channels %d",
			f.blockAlign, f.bytesPerSample, f.numChannels)
	}

	return nil
}

// skip advances the source past n bytes of chunk payload.
func (f *File) skip(n int64) error {
	if n <= 0 {
		return nil
	}

	if _, err := f.r.Seek(n, io.SeekCurrent); err != nil {
		return fmt.Errorf("failed to skip chunk payload: %w", err)
	}

	return nil
}
