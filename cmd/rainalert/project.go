package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jrescalona/rainalert/internal/domain"
	"github.com/spf13/cobra"
)

func newProjectCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
		Long:  "Create, list, show, update, and delete projects",
	}

	cmd.AddCommand(
		newProjectListCmd(c),
		newProjectGetCmd(c),
		newProjectCreateCmd(c),
		newProjectUpdateCmd(c),
		newProjectDeleteCmd(c),
	)
	return cmd
}

func newProjectListCmd(c *cli) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Long:  "List every project, or only those owned by --user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				projects []*domain.Project
				err      error
			)

			if userID != "" {
				id, parseErr := parseID("user", userID)
				if parseErr != nil {
					return parseErr
				}
				projects, err = c.app.projects.GetAllProjectsByUserID(cmd.Context(), id)
			} else {
				projects, err = c.app.projects.GetAllProjects(cmd.Context())
			}
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), c.output, projects)
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "only list projects owned by this user ID")
	return cmd
}

func newProjectGetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "get <project-id>",
		Short: "Show a project with its address and location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("project", args[0])
			if err != nil {
				return err
			}

			project, err := c.app.projects.GetProjectByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), c.output, project)
		},
	}
}

func newProjectCreateCmd(c *cli) *cobra.Command {
	var (
		userID      string
		name        string
		description string
		line1       string
		line2       string
		city        string
		state       string
		postalCode  string
		gridID      string
		gridX       int
		gridY       int
		longitude   float64
		latitude    float64
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project with its address and location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, err := parseID("user", userID)
			if err != nil {
				return err
			}

			location, err := domain.NewLocation(gridID, gridX, gridY, longitude, latitude)
			if err != nil {
				return err
			}
			address, err := domain.NewAddress(line1, line2, city, state, postalCode, location)
			if err != nil {
				return err
			}
			project, err := domain.NewProject(owner, name, description, address)
			if err != nil {
				return err
			}

			created, err := c.app.projects.AddProject(cmd.Context(), project)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), c.output, created)
		},
	}

	f := cmd.Flags()
	f.StringVar(&userID, "user", "", "owner user ID")
	f.StringVar(&name, "name", "", "project name")
	f.StringVar(&description, "description", "", "project description")
	f.StringVar(&line1, "line1", "", "address line 1")
	f.StringVar(&line2, "line2", "", "address line 2")
	f.StringVar(&city, "city", "", "city")
	f.StringVar(&state, "state", "", "state")
	f.StringVar(&postalCode, "postal-code", "", "postal code")
	f.StringVar(&gridID, "grid-id", "", "forecast office grid ID")
	f.IntVar(&gridX, "grid-x", 0, "forecast grid X")
	f.IntVar(&gridY, "grid-y", 0, "forecast grid Y")
	f.Float64Var(&longitude, "longitude", 0, "longitude")
	f.Float64Var(&latitude, "latitude", 0, "latitude")
	for _, required := range []string{"user", "name", "line1", "grid-id"} {
		_ = cmd.MarkFlagRequired(required)
	}
	return cmd
}

func newProjectUpdateCmd(c *cli) *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "update <project-id>",
		Short: "Replace a project's name and description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("project", args[0])
			if err != nil {
				return err
			}

			update := &domain.Project{Name: name, Description: description}
			status, err := c.app.projects.UpdateProjectByID(cmd.Context(), id, update)
			if err != nil {
				return err
			}
			return reportStatus(cmd.OutOrStdout(), "update project", args[0], status)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new project name")
	cmd.Flags().StringVar(&description, "description", "", "new project description")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newProjectDeleteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <project-id>",
		Short: "Delete a project with its address and location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("project", args[0])
			if err != nil {
				return err
			}

			status, err := c.app.projects.DeleteProjectByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			return reportStatus(cmd.OutOrStdout(), "delete project", args[0], status)
		},
	}
}

// parseID parses a UUID argument, naming the entity in the error.
func parseID(entity, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s ID %q", domain.ErrInvalidID, entity, raw)
	}
	return id, nil
}
