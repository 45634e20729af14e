package supervisor

import (
	"fmt"
	"os/exec"
	"strings"
)

// Start launches the actor unless it is already running. The child is
// detached into its own process group with stdout and stderr on a fresh
// log file, then the process table is polled until the actor shows up.
// Start never waits for the actor to exit.
func (supervisor *Supervisor) Start() error {
	entry, running, err := supervisor.locate()
	if err != nil {
		return err
	}
	if running {
		supervisor.logger.Info("already running", "pid", entry.PID)
		return nil
	}

	logFile, logPath, err := createLogFile(supervisor.spec.LogDir)
	if err != nil {
		return err
	}

	argv := supervisor.spec.Argv()
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = supervisor.spec.Dir
	// cmd.Stdin is left nil, so it will use /dev/null
	cmd.Stdout = logFile
	cmd.Stderr = logFile
	cmd.SysProcAttr = detachAttr()

	supervisor.logger.Debug("launching", "argv", strings.Join(argv, " "), "log", logPath)
	if err := cmd.Start(); err != nil {
		_ = logFile.Close()
		return fmt.Errorf("launch %s: %w", supervisor.spec.Name, err)
	}
	_ = logFile.Close()

	// Waiter: reaps the child if it dies while this invocation is still
	// around. The actor outlives the invocation in the normal case.
	go func() {
		_ = cmd.Wait()
	}()

	up, err := supervisor.pollState(true)
	if err != nil {
		return err
	}
	if !up {
		supervisor.dumpLog(logPath)
		return fmt.Errorf("%s: %w (see %s)", supervisor.spec.Name, ErrStartTimeout, logPath)
	}

	supervisor.logger.Info("started", "log", logPath)
	return nil
}

// dumpLog echoes the tail of a failed start's log so the operator does
// not have to go hunt for it.
func (supervisor *Supervisor) dumpLog(path string) {
	lines := tailLines(path, logTailLines)
	if len(lines) == 0 {
		supervisor.logger.Error("actor never came up and its log is empty", "log", path)
		return
	}
	supervisor.logger.Error("actor never came up, dumping log", "log", path)
	for _, line := range lines {
		fmt.Fprintln(supervisor.out, line)
	}
}
