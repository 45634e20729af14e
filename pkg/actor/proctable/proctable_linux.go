//go:build linux

package proctable

import (
	"os"
	"strconv"
	"strings"
)

type systemScanner struct{}

// Snapshot reads /proc directly; no helper process is spawned, so only
// this process itself has to be excluded from the result.
func (systemScanner) Snapshot() ([]Entry, error) {
	dirents, err := os.ReadDir("/proc")
	if err != nil {
		return nil, err
	}

	self := os.Getpid()
	var entries []Entry
	for _, dirent := range dirents {
		pid, err := strconv.Atoi(dirent.Name())
		if err != nil || pid == self {
			continue
		}
		raw, err := os.ReadFile("/proc/" + dirent.Name() + "/cmdline")
		if err != nil {
			// Exited between ReadDir and ReadFile
			continue
		}
		cmdline := strings.TrimRight(string(raw), "\x00")
		if cmdline == "" {
			// Kernel thread or zombie
			continue
		}
		entries = append(entries, Entry{
			PID:     pid,
			Cmdline: strings.ReplaceAll(cmdline, "\x00", " "),
		})
	}

	return entries, nil
}
