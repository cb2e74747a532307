package main

import (
	"github.com/spf13/cobra"
)

func newLocationCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "location",
		Short: "Inspect stored locations",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List every location",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				locations, err := c.app.locations()
				if err != nil {
					return err
				}

				all, err := locations.List(cmd.Context())
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), c.output, all)
			},
		},
		&cobra.Command{
			Use:   "get <location-id>",
			Short: "Show a location",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID("location", args[0])
				if err != nil {
					return err
				}

				locations, err := c.app.locations()
				if err != nil {
					return err
				}

				location, err := locations.GetByID(cmd.Context(), id)
				if err != nil {
					return err
				}
				return render(cmd.OutOrStdout(), c.output, location)
			},
		},
	)
	return cmd
}
