package wavefile

import (
	"bytes"
	"math"
	"testing"

	"github.com/go-audio/audio"
)

func TestIntBufferRoundTrip(t *testing.T) {
	samples := []int{-32768, -1, 0, 1, 32767, 100, -100, 255}

	var buf bytes.Buffer

	w, err := New(&buf, 2, 4, 16, 44100)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	in := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: 44100},
		SourceBitDepth: 16,
		Data:           samples,
	}

	n, err := w.WriteIntBuffer(in)
	if err != nil {
		t.Fatalf("WriteIntBuffer: %v", err)
	}

	if n != 4 {
		t.Fatalf("WriteIntBuffer=%d, want 4", n)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r, err := OpenBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("OpenBytes: %v", err)
	}

	out := &audio.IntBuffer{Data: make([]int, 8)}

	n, err = r.ReadIntBuffer(out)
	if err != nil {
		t.Fatalf("ReadIntBuffer: %v", err)
	}

	if n != 4 {
		t.Fatalf("ReadIntBuffer=%d, want 4", n)
	}

	if out.Format == nil || out.Format.NumChannels != 2 || out.Format.SampleRate != 44100 {
		t.Fatalf("ReadIntBuffer format=%+v", out.Format)
	}

	if out.SourceBitDepth != 16 {
		t.Fatalf("SourceBitDepth=%d, want 16", out.SourceBitDepth)
	}

	for i := range samples {
		if out.Data[i] != samples[i] {
			t.Errorf("sample %d = %d, want %d", i, out.Data[i], samples[i])
		}
	}
}

func TestFullPCMBuffer(t *testing.T) {
	samples := []int{5, 6, 7, 8, 9, 10}
	data := writeContainer(t, 2, 3, 24, 48000, samples)

	f, err := OpenBytes(data)
	if err != nil {
		t.Fatalf("OpenBytes: %v", err)
	}

	buf, err := f.FullPCMBuffer()
	if err != nil {
		t.Fatalf("FullPCMBuffer: %v", err)
	}

	if buf.NumFrames() != 3 {
		t.Fatalf("NumFrames=%d, want 3", buf.NumFrames())
	}

	for i := range samples {
		if buf.Data[i] != samples[i] {
			t.Errorf("sample %d = %d, want %d", i, buf.Data[i], samples[i])
		}
	}

	// the container is exhausted now
	again, err := f.FullPCMBuffer()
	if err != nil {
		t.Fatalf("FullPCMBuffer after exhaustion: %v", err)
	}

	if len(again.Data) != 0 {
		t.Fatalf("FullPCMBuffer after exhaustion holds %d samples, want 0", len(again.Data))
	}
}

func TestFullFloatBuffer(t *testing.T) {
	values := []float64{-0.5, 0, 0.5, 0.25}

	var buf bytes.Buffer

	w, err := New(&buf, 1, int64(len(values)), 16, 8000)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := w.WriteFramesFloat(values, len(values)); err != nil {
		t.Fatalf("WriteFramesFloat: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	r, err := OpenBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("OpenBytes: %v", err)
	}

	fbuf, err := r.FullFloatBuffer()
	if err != nil {
		t.Fatalf("FullFloatBuffer: %v", err)
	}

	if len(fbuf.Data) != len(values) {
		t.Fatalf("FullFloatBuffer holds %d samples, want %d", len(fbuf.Data), len(values))
	}

	for i, want := range values {
		if diff := math.Abs(float64(fbuf.Data[i]) - want); diff > 1e-3 {
			t.Errorf("sample %d = %g, want %g", i, fbuf.Data[i], want)
		}
	}
}

func TestReadIntBufferNil(t *testing.T) {
	data := writeContainer(t, 1, 1, 16, 8000, []int{1})

	f, err := OpenBytes(data)
	if err != nil {
		t.Fatalf("OpenBytes: %v", err)
	}

	n, err := f.ReadIntBuffer(nil)
	if err != nil || n != 0 {
		t.Fatalf("ReadIntBuffer(nil)=(%d, %v), want (0, nil)", n, err)
	}

	if _, err := f.WriteIntBuffer(nil); !isInvalidOp(err) {
		t.Fatalf("WriteIntBuffer(nil)=%v, want InvalidOperationError", err)
	}
}
