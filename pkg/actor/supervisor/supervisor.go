// Package supervisor starts, stops, restarts and inspects actor
// processes. Nothing is cached between operations: every verb re-derives
// the actor's state from the live process table, and there is no PID
// file and no lock file. Two stageManager invocations against the same
// actor can therefore race; that is a known property inherited from the
// control scripts this package replaces.
package supervisor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sys/unix"

	"github.com/Subaru-PFS/tron-actorcore/pkg/actor"
	"github.com/Subaru-PFS/tron-actorcore/pkg/actor/proctable"
)

var (
	// ErrAmbiguous reports more than one process matching the actor's
	// signature. The supervisor never picks one; the operator decides.
	ErrAmbiguous = errors.New("multiple processes match actor signature")

	// ErrStartTimeout reports an actor that never showed up in the
	// process table after launch.
	ErrStartTimeout = errors.New("actor did not appear in process table")

	// ErrStuck reports an actor still alive after SIGKILL.
	ErrStuck = errors.New("actor survived SIGKILL")
)

const (
	defaultAttempts = 20
	defaultInterval = 250 * time.Millisecond
)

// Options tunes a Supervisor. Zero values pick the defaults.
type Options struct {
	Attempts int           // checks per poll loop
	Interval time.Duration // delay between checks
	Logger   *log.Logger   // diagnostics; discarded when nil
	Out      io.Writer     // status lines; os.Stdout when nil
	Scanner  proctable.Scanner
}

// Supervisor drives one actor's lifecycle.
type Supervisor struct {
	spec     actor.Spec
	attempts int
	interval time.Duration
	logger   *log.Logger
	out      io.Writer
	scanner  proctable.Scanner
	kill     func(pid int, sig unix.Signal) error
}

// New creates a Supervisor for the given actor.
func New(spec actor.Spec, opts Options) *Supervisor {
	if opts.Attempts <= 0 {
		opts.Attempts = defaultAttempts
	}
	if opts.Interval <= 0 {
		opts.Interval = defaultInterval
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Scanner == nil {
		opts.Scanner = proctable.System()
	}

	return &Supervisor{
		spec:     spec,
		attempts: opts.Attempts,
		interval: opts.Interval,
		logger:   opts.Logger,
		out:      opts.Out,
		scanner:  opts.Scanner,
		kill: func(pid int, sig unix.Signal) error {
			return unix.Kill(pid, sig)
		},
	}
}

// locate finds the actor in the process table. At most one entry may
// match; the result is stale the moment it is returned.
func (supervisor *Supervisor) locate() (proctable.Entry, bool, error) {
	matches, err := proctable.Find(supervisor.scanner, supervisor.spec.Signature())
	if err != nil {
		return proctable.Entry{}, false, err
	}
	switch len(matches) {
	case 0:
		return proctable.Entry{}, false, nil
	case 1:
		return matches[0], true, nil
	default:
		pids := make([]int, len(matches))
		for i, match := range matches {
			pids[i] = match.PID
		}
		return proctable.Entry{}, false, fmt.Errorf("%w: pids %v", ErrAmbiguous, pids)
	}
}

// pollState waits for the actor to be present (true) or absent (false)
// in the process table, re-locating on every check.
func (supervisor *Supervisor) pollState(wantRunning bool) (bool, error) {
	return pollUntil(supervisor.attempts, supervisor.interval, func() (bool, error) {
		_, running, err := supervisor.locate()
		if err != nil {
			return false, err
		}
		return running == wantRunning, nil
	})
}
