// Package store defines the persistence contracts for users, projects,
// addresses and locations. Implementations live under internal/platform
// (postgres and memory), so callers stay independent of the storage backend
// selected at startup.
package store
