//go:build !linux

package proctable

import (
	"os"
	"os/exec"
	"strconv"
	"strings"
)

type systemScanner struct{}

// Snapshot shells out to ps(1). The transient ps child lists itself in
// its own output, so it is excluded along with this process.
func (systemScanner) Snapshot() ([]Entry, error) {
	cmd := exec.Command("ps", "axww", "-o", "pid=,args=")
	out, err := cmd.Output()
	if err != nil {
		return nil, err
	}

	self := os.Getpid()
	helper := cmd.Process.Pid
	var entries []Entry
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		pidField, cmdline, ok := strings.Cut(line, " ")
		if !ok {
			continue
		}
		pid, err := strconv.Atoi(pidField)
		if err != nil || pid == self || pid == helper {
			continue
		}
		entries = append(entries, Entry{PID: pid, Cmdline: strings.TrimSpace(cmdline)})
	}

	return entries, nil
}
