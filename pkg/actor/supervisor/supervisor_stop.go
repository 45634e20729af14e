package supervisor

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Stop asks the actor to exit with SIGTERM and escalates to a single
// SIGKILL if it is still in the process table once the poll attempts
// are spent. Stopping an actor that is not running is a no-op.
func (supervisor *Supervisor) Stop() error {
	return supervisor.shutdown(false)
}

// StopDead skips the graceful attempt entirely and goes straight to
// SIGKILL, for actors known to ignore SIGTERM.
func (supervisor *Supervisor) StopDead() error {
	return supervisor.shutdown(true)
}

func (supervisor *Supervisor) shutdown(force bool) error {
	entry, running, err := supervisor.locate()
	if err != nil {
		return err
	}
	if !running {
		supervisor.logger.Info("not running")
		return nil
	}

	if !force {
		supervisor.logger.Debug("sending SIGTERM", "pid", entry.PID)
		if err := supervisor.signal(entry.PID, unix.SIGTERM); err != nil {
			return err
		}
		gone, err := supervisor.pollState(false)
		if err != nil {
			return err
		}
		if gone {
			supervisor.logger.Info("stopped", "pid", entry.PID)
			return nil
		}
		supervisor.logger.Warn("actor did not exit after SIGTERM, sending SIGKILL", "pid", entry.PID)

		// The handle is stale after any signal; find the live one again.
		entry, running, err = supervisor.locate()
		if err != nil {
			return err
		}
		if !running {
			supervisor.logger.Info("stopped")
			return nil
		}
	}

	if err := supervisor.signal(entry.PID, unix.SIGKILL); err != nil {
		return err
	}
	gone, err := supervisor.pollState(false)
	if err != nil {
		return err
	}
	if !gone {
		return fmt.Errorf("pid %d: %w", entry.PID, ErrStuck)
	}

	supervisor.logger.Info("stopped", "pid", entry.PID)
	return nil
}

// signal delivers sig to a single PID. ESRCH means the process beat us
// to the exit, which is success as far as stopping is concerned.
func (supervisor *Supervisor) signal(pid int, sig unix.Signal) error {
	if err := supervisor.kill(pid, sig); err != nil && !errors.Is(err, unix.ESRCH) {
		return fmt.Errorf("signal %v to pid %d: %w", sig, pid, err)
	}
	return nil
}
