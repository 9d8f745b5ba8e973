package wavefile

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// The files this codec writes must be readable by an independent WAV
// implementation, and vice versa.

func TestCompatibilityDecodeOurOutput(t *testing.T) {
	samples := []int{-32768, -1000, -1, 0, 1, 1000, 32767, 42}

	var buf bytes.Buffer

	w, err := New(&buf, 2, 4, 16, 44100)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := w.WriteFrames(samples, 4); err != nil {
		t.Fatalf("WriteFrames: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	dec := wav.NewDecoder(bytes.NewReader(buf.Bytes()))
	if !dec.IsValidFile() {
		t.Fatal("go-audio/wav rejected our container")
	}

	dec = wav.NewDecoder(bytes.NewReader(buf.Bytes()))

	got, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatalf("go-audio/wav FullPCMBuffer: %v", err)
	}

	if dec.NumChans != 2 || dec.SampleRate != 44100 || dec.BitDepth != 16 {
		t.Fatalf("go-audio/wav read %d ch, %d Hz, %d bits", dec.NumChans, dec.SampleRate, dec.BitDepth)
	}

	if len(got.Data) != len(samples) {
		t.Fatalf("go-audio/wav decoded %d samples, want %d", len(got.Data), len(samples))
	}

	for i := range samples {
		if got.Data[i] != samples[i] {
			t.Errorf("sample %d = %d, want %d", i, got.Data[i], samples[i])
		}
	}
}

func TestCompatibilityReadTheirOutput(t *testing.T) {
	samples := []int{100, -100, 2000, -2000, 30000, -30000}

	path := filepath.Join(t.TempDir(), "theirs.wav")

	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	enc := wav.NewEncoder(out, 22050, 16, 1, 1)

	err = enc.Write(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: 22050},
		SourceBitDepth: 16,
		Data:           samples,
	})
	if err != nil {
		t.Fatalf("go-audio/wav Write: %v", err)
	}

	if err := enc.Close(); err != nil {
		t.Fatalf("go-audio/wav Close: %v", err)
	}

	if err := out.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}

	in, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	f, err := Open(in)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	if f.NumChannels() != 1 || f.SampleRate() != 22050 || f.ValidBits() != 16 {
		t.Fatalf("read %d ch, %d Hz, %d bits", f.NumChannels(), f.SampleRate(), f.ValidBits())
	}

	if f.NumFrames() != int64(len(samples)) {
		t.Fatalf("NumFrames=%d, want %d", f.NumFrames(), len(samples))
	}

	got := make([]int, len(samples))
	if _, err := f.ReadFrames(got, len(samples)); err != nil {
		t.Fatalf("ReadFrames: %v", err)
	}

	for i := range samples {
		if got[i] != samples[i] {
			t.Errorf("sample %d = %d, want %d", i, got[i], samples[i])
		}
	}
}
