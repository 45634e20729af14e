package supervisor

import (
	"fmt"

	"github.com/Subaru-PFS/tron-actorcore/pkg/actor"
)

// StatusResult reports one actor's presence as of a single process
// table scan.
type StatusResult struct {
	Actor   string
	State   actor.State
	PID     int
	Cmdline string
}

func (result *StatusResult) String() string {
	if result.State == actor.StateRunning {
		return fmt.Sprintf("%s: %s (pid %d)", result.Actor, result.State, result.PID)
	}
	return fmt.Sprintf("%s: %s", result.Actor, result.State)
}

// Status reports whether the actor is running. It only reads the
// process table; nothing is signalled, launched or written.
func (supervisor *Supervisor) Status() (*StatusResult, error) {
	entry, running, err := supervisor.locate()
	if err != nil {
		return nil, err
	}

	result := &StatusResult{Actor: supervisor.spec.Name, State: actor.StateStopped}
	if running {
		result.State = actor.StateRunning
		result.PID = entry.PID
		result.Cmdline = entry.Cmdline
	}
	return result, nil
}
