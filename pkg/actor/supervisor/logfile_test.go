package supervisor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestCreateLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs", "ping")
	file, path, err := createLogFile(dir)
	if err != nil {
		t.Fatalf("createLogFile failed: %v", err)
	}
	defer file.Close()

	if filepath.Dir(path) != dir {
		t.Fatalf("log landed in %q, expected %q", filepath.Dir(path), dir)
	}
	base := filepath.Base(path)
	if !strings.HasSuffix(base, ".log") {
		t.Fatalf("unexpected log name %q", base)
	}
	stamp := strings.TrimSuffix(base, ".log")
	if _, err := time.Parse(logTimeFormat, stamp); err != nil {
		t.Fatalf("log name %q is not a timestamp: %v", base, err)
	}
}

func TestCreateLogFileNeverReuses(t *testing.T) {
	dir := t.TempDir()

	first, firstPath, err := createLogFile(dir)
	if err != nil {
		t.Fatalf("first createLogFile failed: %v", err)
	}
	_ = first.Close()

	// Same second: the second call must wait out the clock, not reuse.
	second, secondPath, err := createLogFile(dir)
	if err != nil {
		t.Fatalf("second createLogFile failed: %v", err)
	}
	_ = second.Close()

	if firstPath == secondPath {
		t.Fatalf("second start reused %s", firstPath)
	}
	if filepath.Base(secondPath) <= filepath.Base(firstPath) {
		t.Fatalf("log names out of order: %s then %s", firstPath, secondPath)
	}
}

func TestTailLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.log")
	if err := os.WriteFile(path, []byte("a\nb\nc\nd\n"), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	lines := tailLines(path, 2)
	if len(lines) != 2 || lines[0] != "c" || lines[1] != "d" {
		t.Fatalf("unexpected tail %v", lines)
	}
	if lines := tailLines(path, 10); len(lines) != 4 {
		t.Fatalf("expected the whole file, got %v", lines)
	}
	if lines := tailLines(filepath.Join(t.TempDir(), "missing.log"), 2); lines != nil {
		t.Fatalf("expected nil for a missing file, got %v", lines)
	}
}
