package main

import (
	"github.com/jrescalona/rainalert/internal/domain"
	"github.com/spf13/cobra"
)

func newUserCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}

	cmd.AddCommand(newUserCreateCmd(c), newUserGetCmd(c))
	return cmd
}

func newUserCreateCmd(c *cli) *cobra.Command {
	var firstName, lastName, email, role, password string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := c.app.users()
			if err != nil {
				return err
			}

			user, err := domain.NewUser(firstName, lastName, role, email, password)
			if err != nil {
				return err
			}

			if err := users.Create(cmd.Context(), user); err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), c.output, user)
		},
	}

	f := cmd.Flags()
	f.StringVar(&firstName, "first-name", "", "first name")
	f.StringVar(&lastName, "last-name", "", "last name")
	f.StringVar(&email, "email", "", "email address")
	f.StringVar(&role, "role", domain.RoleUser, "role (user|admin)")
	f.StringVar(&password, "password", "", "password (12-72 characters)")
	for _, required := range []string{"first-name", "last-name", "email", "password"} {
		_ = cmd.MarkFlagRequired(required)
	}
	return cmd
}

func newUserGetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "get <user-id>",
		Short: "Show a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("user", args[0])
			if err != nil {
				return err
			}

			users, err := c.app.users()
			if err != nil {
				return err
			}

			user, err := users.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), c.output, user)
		},
	}
}
