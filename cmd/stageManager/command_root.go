package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Subaru-PFS/tron-actorcore/pkg/actor"
	"github.com/Subaru-PFS/tron-actorcore/pkg/actor/config"
	"github.com/Subaru-PFS/tron-actorcore/pkg/actor/supervisor"
)

func NewRootCmd() *cobra.Command {
	var (
		logsRoot string
		verbose  bool
		name     string
		cam      string
	)

	root := &cobra.Command{
		Use:   "stageManager [flags] actor verb [verb|seconds ...]",
		Short: "Start, stop and inspect ICS actor processes",
		Long: `stageManager drives one actor through a sequence of verbs:

  start     launch the actor unless it is already running
  stop      SIGTERM, escalating to SIGKILL if the actor lingers
  stopdead  SIGKILL immediately, for actors that ignore SIGTERM
  restart   stop to completion, then start
  status    report presence and pid; changes nothing
  <number>  pause that many seconds before the next verb

Verbs run strictly in the order given. A failing verb is reported and
the remaining verbs still run; the exit status is non-zero if any verb
failed.`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The whole queue must parse before anything runs.
			steps, err := supervisor.ParseSteps(args[1:])
			if err != nil {
				return err
			}

			cfg, err := config.Load(os.Getenv)
			if err != nil {
				return err
			}
			if logsRoot != "" {
				cfg.LogsRoot = logsRoot
			}
			cfg.Verbose = verbose

			var extra []actor.Arg
			if name != "" {
				extra = append(extra, actor.Arg{Key: "name", Value: name})
			}
			if cam != "" {
				extra = append(extra, actor.Arg{Key: "cam", Value: cam})
			}

			spec := cfg.SpecFor(args[0], extra)
			sup := supervisor.New(spec, supervisor.Options{
				Attempts: cfg.Attempts,
				Interval: cfg.Interval,
				Logger:   newLogger(cfg.Verbose, spec.Name),
				Out:      cmd.OutOrStdout(),
			})
			return sup.Run(steps)
		},
	}

	root.Flags().StringVar(&logsRoot, "logs", "", "override the log root directory")
	root.Flags().BoolVar(&verbose, "verbose", false, "debug logging")
	root.Flags().StringVar(&name, "name", "", "instance name forwarded to the actor")
	root.Flags().StringVar(&cam, "cam", "", "camera selector forwarded to the actor")

	return root
}

func newLogger(verbose bool, actorName string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          actorName,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
		// Tag every record so interleaved invocations can be told apart.
		return logger.With("run", actor.NewRunID())
	}
	return logger
}
