// Package memory provides process-local implementations of the store
// interfaces. They are used for development and tests, and hold no state
// beyond the lifetime of the store value.
package memory
