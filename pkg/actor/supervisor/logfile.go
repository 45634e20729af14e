package supervisor

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const logTimeFormat = "2006-01-02T15:04:05"

// logTailLines bounds how much of a failed start's log is echoed back.
const logTailLines = 40

// createLogFile opens a fresh log file named for the current second.
// O_EXCL guarantees a start never reuses an earlier file; a restart
// within the same second waits for the clock to move on, so names stay
// in launch order.
func createLogFile(dir string) (*os.File, string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, "", err
	}
	for i := 0; ; i++ {
		path := filepath.Join(dir, time.Now().Format(logTimeFormat)+".log")
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
		if err == nil {
			return file, path, nil
		}
		if !errors.Is(err, os.ErrExist) || i >= 3 {
			return nil, "", err
		}
		time.Sleep(time.Second)
	}
}

// tailLines returns up to n trailing lines of the file. Startup logs
// are small, so reading the whole file is fine here.
func tailLines(path string, n int) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	text := strings.TrimRight(string(data), "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines
}
