package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jrescalona/rainalert/internal/store"
	"gopkg.in/yaml.v3"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

func validateOutput(format string) error {
	switch format {
	case outputJSON, outputYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (want json or yaml)", format)
	}
}

// render writes v to w in the requested format.
func render(w io.Writer, format string, v any) error {
	switch format {
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	}
}

// reportStatus prints the outcome of an update or delete. StatusNotFound is
// turned into errNotFound so the command exits non-zero.
func reportStatus(w io.Writer, action, id string, status store.Status) error {
	if status == store.StatusNotFound {
		_, _ = color.New(color.FgYellow).Fprintf(w, "%s %s: %s\n", action, id, status)
		return fmt.Errorf("%s %s: %w", action, id, errNotFound)
	}
	_, _ = color.New(color.FgGreen).Fprintf(w, "%s %s: %s\n", action, id, status)
	return nil
}
