package wavefile

// Per-sample conversion strategies between the raw on-disk sample value
// and the caller's numeric domain. The float pair applies the
// floatOffset/floatScale facts established at open time; the float
// encode truncates toward zero.

func rawToInt(_ *File, raw int64) int { return int(raw) }

func rawToInt64(_ *File, raw int64) int64 { return raw }

func rawToFloat(f *File, raw int64) float64 {
	return f.floatOffset + float64(raw)/f.floatScale
}

func intToRaw(_ *File, v int) int64 { return int64(v) }

func int64ToRaw(_ *File, v int64) int64 { return v }

func floatToRaw(f *File, v float64) int64 {
	return int64(f.floatScale * (f.floatOffset + v))
}

// readInterleaved walks up to numFrames frames into dst, channels in
// ascending index order. It stops short without error once the declared
// frame count is exhausted; the returned count is the end-of-stream
// signal, not a failure.
func readInterleaved[T any](f *File, op string, dst []T, numFrames int, conv func(*File, int64) T) (int, error) {
	if err := f.require(Reading, op); err != nil {
		return 0, err
	}

	if avail := len(dst) / f.numChannels; numFrames > avail {
		numFrames = avail
	}

	for frame := 0; frame < numFrames; frame++ {
		if f.frameCounter == f.numFrames {
			return frame, nil
		}

		base := frame * f.numChannels
		for ch := 0; ch < f.numChannels; ch++ {
			raw, err := f.readSample()
			if err != nil {
				return frame, err
			}

			dst[base+ch] = conv(f, raw)
		}

		f.frameCounter++
	}

	return numFrames, nil
}

func readPlanar[T any](f *File, op string, dst [][]T, numFrames int, conv func(*File, int64) T) (int, error) {
	if err := f.require(Reading, op); err != nil {
		return 0, err
	}

	if len(dst) != f.numChannels {
		return 0, invalidOpf(op, "planar buffer has %d channel slices, container has %d channels", len(dst), f.numChannels)
	}

	for _, chBuf := range dst {
		if len(chBuf) < numFrames {
			numFrames = len(chBuf)
		}
	}

	for frame := 0; frame < numFrames; frame++ {
		if f.frameCounter == f.numFrames {
			return frame, nil
		}

		for ch := 0; ch < f.numChannels; ch++ {
			raw, err := f.readSample()
			if err != nil {
				return frame, err
			}

			dst[ch][frame] = conv(f, raw)
		}

		f.frameCounter++
	}

	return numFrames, nil
}

func writeInterleaved[T any](f *File, op string, src []T, numFrames int, conv func(*File, T) int64) (int, error) {
	if err := f.require(Writing, op); err != nil {
		return 0, err
	}

	if avail := len(src) / f.numChannels; numFrames > avail {
		numFrames = avail
	}

	for frame := 0; frame < numFrames; frame++ {
		if f.frameCounter == f.numFrames {
			return frame, nil
		}

		base := frame * f.numChannels
		for ch := 0; ch < f.numChannels; ch++ {
			if err := f.writeSample(conv(f, src[base+ch])); err != nil {
				return frame, err
			}
		}

		f.frameCounter++
	}

	return numFrames, nil
}

func writePlanar[T any](f *File, op string, src [][]T, numFrames int, conv func(*File, T) int64) (int, error) {
	if err := f.require(Writing, op); err != nil {
		return 0, err
	}

	if len(src) != f.numChannels {
		return 0, invalidOpf(op, "planar buffer has %d channel slices, container has %d channels", len(src), f.numChannels)
	}

	for _, chBuf := range src {
		if len(chBuf) < numFrames {
			numFrames = len(chBuf)
		}
	}

	for frame := 0; frame < numFrames; frame++ {
		if f.frameCounter == f.numFrames {
			return frame, nil
		}

		for ch := 0; ch < f.numChannels; ch++ {
			if err := f.writeSample(conv(f, src[ch][frame])); err != nil {
				return frame, err
			}
		}

		f.frameCounter++
	}

	return numFrames, nil
}

// ReadFrames decodes up to numFrames channel-interleaved frames into
// buf. It returns the number of frames actually decoded, which is lower
// than numFrames only when the container's declared frame count has been
// reached; once exhausted, further calls return 0 without error. The
// handle must be in the Reading state.
func (f *File) ReadFrames(buf []int, numFrames int) (int, error) {
	return readInterleaved(f, "read frames", buf, numFrames, rawToInt)
}

// ReadFramesInt64 is ReadFrames for a wide integer buffer.
func (f *File) ReadFramesInt64(buf []int64, numFrames int) (int, error) {
	return readInterleaved(f, "read frames", buf, numFrames, rawToInt64)
}

// ReadFramesFloat is ReadFrames for a normalized float buffer. Samples
// wider than 8 bits map to roughly [-1, 1]; 8-bit and narrower samples
// use the unsigned convention centered with a -1 offset.
func (f *File) ReadFramesFloat(buf []float64, numFrames int) (int, error) {
	return readInterleaved(f, "read frames", buf, numFrames, rawToFloat)
}

// ReadFramesPlanar decodes up to numFrames frames into one slice per
// channel. buf must hold exactly one slice per container channel, in
// container channel order.
func (f *File) ReadFramesPlanar(buf [][]int, numFrames int) (int, error) {
	return readPlanar(f, "read frames", buf, numFrames, rawToInt)
}

// ReadFramesInt64Planar is ReadFramesPlanar for wide integer buffers.
func (f *File) ReadFramesInt64Planar(buf [][]int64, numFrames int) (int, error) {
	return readPlanar(f, "read frames", buf, numFrames, rawToInt64)
}

// ReadFramesFloatPlanar is ReadFramesPlanar for normalized float buffers.
func (f *File) ReadFramesFloatPlanar(buf [][]float64, numFrames int) (int, error) {
	return readPlanar(f, "read frames", buf, numFrames, rawToFloat)
}

// WriteFrames encodes up to numFrames channel-interleaved frames from
// buf. It returns the number of frames actually encoded, which is lower
// than numFrames only when the container's declared frame capacity has
// been reached; once full, further calls return 0 without error. The
// handle must be in the Writing state.
func (f *File) WriteFrames(buf []int, numFrames int) (int, error) {
	return writeInterleaved(f, "write frames", buf, numFrames, intToRaw)
}

// WriteFramesInt64 is WriteFrames for a wide integer buffer.
func (f *File) WriteFramesInt64(buf []int64, numFrames int) (int, error) {
	return writeInterleaved(f, "write frames", buf, numFrames, int64ToRaw)
}

// WriteFramesFloat is WriteFrames for a normalized float buffer. The
// conversion to the on-disk integer range truncates toward zero.
func (f *File) WriteFramesFloat(buf []float64, numFrames int) (int, error) {
	return writeInterleaved(f, "write frames", buf, numFrames, floatToRaw)
}

// WriteFramesPlanar encodes up to numFrames frames from one slice per
// channel. buf must hold exactly one slice per container channel, in
// container channel order.
func (f *File) WriteFramesPlanar(buf [][]int, numFrames int) (int, error) {
	return writePlanar(f, "write frames", buf, numFrames, intToRaw)
}

// WriteFramesInt64Planar is WriteFramesPlanar for wide integer buffers.
func (f *File) WriteFramesInt64Planar(buf [][]int64, numFrames int) (int, error) {
	return writePlanar(f, "write frames", buf, numFrames, int64ToRaw)
}

// WriteFramesFloatPlanar is WriteFramesPlanar for normalized float buffers.
func (f *File) WriteFramesFloatPlanar(buf [][]float64, numFrames int) (int, error) {
	return writePlanar(f, "write frames", buf, numFrames, floatToRaw)
}
