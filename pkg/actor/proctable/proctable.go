// Package proctable takes snapshots of the live process table.
package proctable

import "strings"

// Entry is one process observed in a snapshot. It is valid only as of
// the snapshot that produced it; the OS may reuse PIDs at any time.
type Entry struct {
	PID     int
	Cmdline string
}

// Scanner lists the processes currently alive. Snapshots are stateless
// and safe to take in a tight loop.
type Scanner interface {
	Snapshot() ([]Entry, error)
}

// System returns the platform scanner.
func System() Scanner {
	return systemScanner{}
}

// Find returns the entries whose command line contains every token.
func Find(scanner Scanner, tokens []string) ([]Entry, error) {
	entries, err := scanner.Snapshot()
	if err != nil {
		return nil, err
	}
	var matches []Entry
	for _, entry := range entries {
		if containsAll(entry.Cmdline, tokens) {
			matches = append(matches, entry)
		}
	}
	return matches, nil
}

func containsAll(cmdline string, tokens []string) bool {
	for _, token := range tokens {
		if !strings.Contains(cmdline, token) {
			return false
		}
	}
	return true
}
