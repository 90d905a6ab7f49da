package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/go-drift/hoist/cmd/hoist/internal/ctxlog"
	"github.com/go-drift/hoist/cmd/hoist/internal/scenario"
	"github.com/go-drift/hoist/cmd/hoist/internal/watch"
)

func newWatchCommand(opts *options) *cobra.Command {
	debounce := opts.env.Debounce

	cmd := &cobra.Command{
		Use:   "watch [scenario]",
		Short: "Render a scenario and re-render it whenever the file changes",
		Long: `watch renders a scenario, then reloads it on every save and updates the
mounted tree in place. Hoisted entries that survive an edit keep their
place in registration order, so only priority edits move them.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := opts.scenarioPath(args)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			logger := ctxlog.FromContext(ctx)
			out := cmd.OutOrStdout()

			session := scenario.NewSession(logger)
			defer session.Close()

			reload := func() error {
				s, err := scenario.Load(path)
				if err != nil {
					return err
				}
				if err := session.Apply(s); err != nil {
					return fmt.Errorf("render %s: %w", path, err)
				}
				_, err = io.WriteString(out, session.Outline()+"---\n")
				return err
			}
			w, err := watch.New(watch.Config{Path: path, Debounce: debounce, Logger: logger})
			if err != nil {
				return err
			}
			if err := reload(); err != nil {
				w.Close()
				return err
			}
			logger.Info("watching scenario", "path", path, "debounce", debounce)
			return w.Run(ctx, reload)
		},
	}
	cmd.Flags().DurationVar(&debounce, "debounce", debounce, "wait this long after the last write before re-rendering")
	return cmd
}
