// Package main implements the rainalert command-line tool, a diagnostic
// front end for the project data layer: it runs schema migrations and
// exposes the project, location and user stores.
package main

import (
	"context"
	"os"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
