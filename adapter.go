package wavefile

import "github.com/go-audio/audio"

// ReadIntBuffer fills buf.Data with decoded interleaved frames and
// stamps the buffer with the container format and source bit depth. It
// returns the number of frames decoded.
func (f *File) ReadIntBuffer(buf *audio.IntBuffer) (int, error) {
	if buf == nil {
		return 0, nil
	}

	buf.Format = f.Format()
	buf.SourceBitDepth = f.validBits

	return f.ReadFrames(buf.Data, len(buf.Data)/f.numChannels)
}

// WriteIntBuffer encodes every frame held in buf. It returns the number
// of frames encoded, which falls short of the buffer content only when
// the container's declared capacity is reached.
func (f *File) WriteIntBuffer(buf *audio.IntBuffer) (int, error) {
	if buf == nil {
		return 0, invalidOpf("write frames", "nil buffer")
	}

	return f.WriteFrames(buf.Data, len(buf.Data)/f.numChannels)
}

// FullPCMBuffer decodes every remaining frame into a single IntBuffer.
// The entire PCM data is held in memory.
func (f *File) FullPCMBuffer() (*audio.IntBuffer, error) {
	remaining := int(f.FramesRemaining())

	buf := &audio.IntBuffer{
		Format:         f.Format(),
		SourceBitDepth: f.validBits,
		Data:           make([]int, remaining*f.numChannels),
	}

	n, err := f.ReadFrames(buf.Data, remaining)
	if err != nil {
		return nil, err
	}

	buf.Data = buf.Data[:n*f.numChannels]

	return buf, nil
}

// FullFloatBuffer decodes every remaining frame into a normalized
// Float32Buffer.
func (f *File) FullFloatBuffer() (*audio.Float32Buffer, error) {
	remaining := int(f.FramesRemaining())

	tmp := make([]float64, remaining*f.numChannels)

	n, err := f.ReadFramesFloat(tmp, remaining)
	if err != nil {
		return nil, err
	}

	data := make([]float32, n*f.numChannels)
	for i := range data {
		data[i] = float32(tmp[i])
	}

	return &audio.Float32Buffer{
		Format:         f.Format(),
		SourceBitDepth: f.validBits,
		Data:           data,
	}, nil
}
