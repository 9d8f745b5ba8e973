package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestRunRequiresPath(t *testing.T) {
	err := run(nil)
	if !errors.Is(err, errMissingPath) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunMissingFile(t *testing.T) {
	err := run([]string{filepath.Join(t.TempDir(), "nope.mp3")})
	if err == nil {
		t.Fatalf("expected error for missing input file")
	}
}

func TestRunRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.mp3")

	if err := os.WriteFile(path, []byte("not an mp3 stream"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := run([]string{path}); err == nil {
		t.Fatalf("expected decode error for garbage input")
	}
}
