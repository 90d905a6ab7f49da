package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/go-drift/hoist/cmd/hoist/internal/ctxlog"
	"github.com/go-drift/hoist/cmd/hoist/internal/scenario"
)

func newRenderCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "render [scenario]",
		Short: "Mount a scenario and print its outline",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := opts.scenarioPath(args)
			if err != nil {
				return err
			}
			logger := ctxlog.FromContext(cmd.Context())

			s, err := scenario.Load(path)
			if err != nil {
				return err
			}
			session := scenario.NewSession(logger)
			defer session.Close()

			if err := session.Apply(s); err != nil {
				return fmt.Errorf("render %s: %w", path, err)
			}
			logger.Debug("scenario rendered", "path", path, "systems", s.Systems)
			_, err = io.WriteString(cmd.OutOrStdout(), session.Outline())
			return err
		},
	}
}
