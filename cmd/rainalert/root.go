package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jrescalona/rainalert/internal/config"
	"github.com/jrescalona/rainalert/internal/platform/logger"
	"github.com/jrescalona/rainalert/internal/redact"
	"github.com/spf13/cobra"
)

// errNotFound makes the process exit non-zero when an update or delete hit no row.
var errNotFound = errors.New("not found")

// cli carries state between the root command and its subcommands.
type cli struct {
	app    *application
	output string
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	c := &cli{}
	defer func() {
		if c.app != nil {
			c.app.close()
		}
	}()

	root := newRootCmd(c)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		_, _ = color.New(color.FgRed).Fprintf(stderr, "Error: %s\n", redact.Error(err))
		return 1
	}
	return 0
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "rainalert",
		Short:         "Manage rain-alert projects, addresses and locations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(c.output); err != nil {
				return err
			}
			if c.app != nil {
				return nil
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			log, err := logger.SetupWithWriter(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("failed to set up logger: %w", err)
			}

			ctx := logger.WithLogger(cmd.Context(), log)
			cmd.SetContext(ctx)

			app, err := newApplication(ctx, cfg, log)
			if err != nil {
				return err
			}
			c.app = app
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&c.output, "output", "o", "json", "output format (json|yaml)")

	root.AddCommand(
		newMigrateCmd(c),
		newProjectCmd(c),
		newLocationCmd(c),
		newUserCmd(c),
	)
	return root
}
