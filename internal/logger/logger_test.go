package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestLogAppendsTimestampedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "out.txt")
	l := New(path, &bytes.Buffer{})

	l.Log("started")
	l.Logf("position %d,%d", 1, 2)

	lines := readLines(t, path)
	if len(lines) != 2 {
		t.Fatalf("lines = %q, want 2", lines)
	}
	if !strings.HasPrefix(lines[0], "[") || !strings.HasSuffix(lines[0], "] started") {
		t.Fatalf("unexpected line %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "] position 1,2") {
		t.Fatalf("unexpected line %q", lines[1])
	}
}

func TestErrorfEchoes(t *testing.T) {
	var errOut bytes.Buffer
	path := filepath.Join(t.TempDir(), "out.txt")
	l := New(path, &errOut)

	l.Errorf("Failed to initialize %s", "GLFW")

	if got := errOut.String(); got != "Failed to initialize GLFW\n" {
		t.Fatalf("error stream = %q", got)
	}
	lines := readLines(t, path)
	if len(lines) != 1 || !strings.HasSuffix(lines[0], "error: Failed to initialize GLFW") {
		t.Fatalf("lines = %q", lines)
	}
}

func TestLogKeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := os.WriteFile(path, []byte("earlier run\n"), 0644); err != nil {
		t.Fatal(err)
	}
	New(path, &bytes.Buffer{}).Log("again")

	lines := readLines(t, path)
	if len(lines) != 2 || lines[0] != "earlier run" {
		t.Fatalf("lines = %q", lines)
	}
}
