// Package actor describes the worker processes managed by stageManager.
package actor

import (
	"path/filepath"
	"strings"
)

// State mirrors the coarse lifecycle states reported by status.
// It's intentionally minimal; state is re-derived from the live
// process table on every query, never cached.
type State int

const (
	StateUnknown State = iota
	StateStopped
	StateRunning
)

func (state State) String() string {
	switch state {
	case StateRunning:
		return "Running"
	case StateStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// Arg is one extra launch argument, rendered as --key=value.
type Arg struct {
	Key   string
	Value string
}

// Spec describes one actor: how to launch it and how to recognize it
// in the process table. Built once per invocation, never mutated.
type Spec struct {
	Name       string // actor name, e.g. "mcs"
	Product    string // eups product, e.g. "mcsActor"
	ProductDir string // install directory of the product
	Python     string // interpreter used to run main.py
	Dir        string // working directory for the actor
	LogDir     string // directory receiving one log file per start
	Args       []Arg  // extra --key=value arguments, order preserved
}

// ProductName derives the eups product for an actor name.
func ProductName(name string) string {
	if strings.HasSuffix(name, "Actor") {
		return name
	}
	return name + "Actor"
}

// MainScript returns the product entry point launched for this actor.
func (spec Spec) MainScript() string {
	return filepath.Join(spec.ProductDir, "python", spec.Product, "main.py")
}

// Argv builds the full launch vector: interpreter, entry point, then
// every extra argument in declared order.
func (spec Spec) Argv() []string {
	argv := []string{spec.Python, spec.MainScript()}
	for _, arg := range spec.Args {
		argv = append(argv, "--"+arg.Key+"="+arg.Value)
	}
	return argv
}

// Signature returns the tokens that identify this actor in the process
// table. A command line matches only if it contains every token, so two
// instances of one product with different --name or --cam arguments are
// tracked independently.
func (spec Spec) Signature() []string {
	sig := []string{spec.Product + "/main.py"}
	for _, arg := range spec.Args {
		sig = append(sig, "--"+arg.Key+"="+arg.Value)
	}
	return sig
}
