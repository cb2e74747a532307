// Package domain contains the core entities of the rain alert backend: users,
// the projects they own, and each project's address and geocoded location.
// It is independent of any storage technology.
package domain
