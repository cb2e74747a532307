// Package config loads application settings from defaults, an optional
// config.yaml and RAINALERT_* environment variables, and validates them
// before any component is built from them.
package config
