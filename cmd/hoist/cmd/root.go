// Package cmd implements the hoist CLI commands.
//
// The root command reads HOIST_* settings from the environment, installs a
// structured logger and dispatches to render, watch and version.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/go-drift/hoist/cmd/hoist/internal/config"
	"github.com/go-drift/hoist/cmd/hoist/internal/ctxlog"
	"github.com/go-drift/hoist/cmd/hoist/internal/scenario"
	hoisterrors "github.com/go-drift/hoist/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// options are shared by every command.
type options struct {
	env      config.Env
	logLevel string
}

// NewRootCommand returns the hoist command tree.
func NewRootCommand() *cobra.Command {
	env, envErr := config.FromEnv()
	opts := &options{env: env}

	root := &cobra.Command{
		Use:   "hoist",
		Short: "Render hoisting scenarios",
		Long: `hoist mounts a scenario file describing providers, slots and hoisted
content, and prints the resulting tree as an outline.

Scenarios are YAML (.yaml, .yml) or HCL (.hcl) files.

Environment:
  HOIST_LOG_LEVEL   default log level (debug, info, warn, error)
  HOIST_DEBOUNCE    default watch debounce, e.g. 250ms
  HOIST_SCENARIO    scenario used when no argument is given`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return envErr
			}
			level, err := config.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			hoisterrors.SetHandler(&hoisterrors.LogHandler{Logger: logger, Verbose: level <= slog.LevelDebug})
			cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", env.LogLevel, "log level (debug, info, warn, error)")

	root.AddCommand(
		newRenderCommand(opts),
		newWatchCommand(opts),
		newVersionCommand(),
	)
	return root
}

// Execute runs the CLI with os.Args.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "hoist version %s (built %s), scenario format %s\n",
				Version, BuildTime, scenario.FormatMajor)
		},
	}
}

// scenarioPath picks the scenario from the arguments or HOIST_SCENARIO.
func (o *options) scenarioPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if o.env.Scenario != "" {
		return o.env.Scenario, nil
	}
	return "", errors.New("no scenario given: pass a file or set HOIST_SCENARIO")
}
