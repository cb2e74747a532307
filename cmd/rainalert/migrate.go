package main

import (
	"github.com/fatih/color"
	"github.com/jrescalona/rainalert/internal/platform/postgres"
	"github.com/spf13/cobra"
)

func newMigrateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate <up|up-by-one|down|redo|reset|status|version> [args]",
		Short:     "Run database schema migrations",
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: []string{"up", "up-by-one", "down", "redo", "reset", "status", "version"},
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := c.app.requireDB()
			if err != nil {
				return err
			}

			if err := postgres.Migrate(cmd.Context(), db, args[0], args[1:]...); err != nil {
				return err
			}

			_, _ = color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "migrate %s: ok\n", args[0])
			return nil
		},
	}
}
