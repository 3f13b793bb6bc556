package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteAudio writes a small fake audio payload to the target path.
func WriteAudio(t testing.TB, path string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	payload := []byte("RIFF....WAVEfmt fake audio payload")
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
