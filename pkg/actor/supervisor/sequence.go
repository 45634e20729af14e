package supervisor

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

// Verb is one operator-requested action.
type Verb int

const (
	VerbStart Verb = iota
	VerbStop
	VerbStopDead
	VerbRestart
	VerbStatus
	VerbPause
)

func (verb Verb) String() string {
	switch verb {
	case VerbStart:
		return "start"
	case VerbStop:
		return "stop"
	case VerbStopDead:
		return "stopdead"
	case VerbRestart:
		return "restart"
	case VerbStatus:
		return "status"
	case VerbPause:
		return "pause"
	}
	return "unknown"
}

// Step is one entry of the command queue: a verb, or a pause with its
// duration.
type Step struct {
	Verb  Verb
	Pause time.Duration
}

// ParseSteps validates the whole verb queue up front. Any unrecognized
// token rejects the entire invocation; nothing runs on a partial parse.
func ParseSteps(args []string) ([]Step, error) {
	if len(args) == 0 {
		return nil, errors.New("at least one verb is required")
	}
	steps := make([]Step, 0, len(args))
	for _, arg := range args {
		switch arg {
		case "start":
			steps = append(steps, Step{Verb: VerbStart})
		case "stop":
			steps = append(steps, Step{Verb: VerbStop})
		case "stopdead":
			steps = append(steps, Step{Verb: VerbStopDead})
		case "restart":
			steps = append(steps, Step{Verb: VerbRestart})
		case "status":
			steps = append(steps, Step{Verb: VerbStatus})
		default:
			seconds, err := strconv.ParseFloat(arg, 64)
			if err != nil || seconds < 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
				return nil, fmt.Errorf("unknown verb %q", arg)
			}
			steps = append(steps, Step{
				Verb:  VerbPause,
				Pause: time.Duration(seconds * float64(time.Second)),
			})
		}
	}
	return steps, nil
}

// Run executes the queue strictly in order. A failing verb is reported
// and the sequencer moves on: verbs are operator steps, not a
// transaction. The returned error joins every failure, so the exit
// status still reflects that something went wrong.
func (supervisor *Supervisor) Run(steps []Step) error {
	var failures []error
	for _, step := range steps {
		if step.Verb == VerbPause {
			supervisor.logger.Debug("pausing", "seconds", step.Pause.Seconds())
			time.Sleep(step.Pause)
			continue
		}
		if err := supervisor.runVerb(step.Verb); err != nil {
			supervisor.logger.Error(step.Verb.String()+" failed", "err", err)
			failures = append(failures, fmt.Errorf("%s: %w", step.Verb, err))
		}
	}
	return errors.Join(failures...)
}

func (supervisor *Supervisor) runVerb(verb Verb) error {
	switch verb {
	case VerbStart:
		return supervisor.Start()
	case VerbStop:
		return supervisor.Stop()
	case VerbStopDead:
		return supervisor.StopDead()
	case VerbRestart:
		return supervisor.Restart()
	case VerbStatus:
		result, err := supervisor.Status()
		if err != nil {
			return err
		}
		fmt.Fprintln(supervisor.out, result)
	}
	return nil
}
