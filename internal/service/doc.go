// Package service contains the application-level operations on projects.
//
// ProjectService is bound to a single store.ProjectStore at construction;
// the caller picks the backend (PostgreSQL or in-memory) from configuration.
// The service adds no business rules of its own. It assigns identifiers on
// creation, logs each operation, and translates store errors into service
// errors:
//
//   - ErrProjectNotFound is returned directly for missing projects, so
//     callers can check it with errors.Is.
//   - Any other failure is wrapped in a *ProjectServiceError carrying the
//     operation name.
//
// The service depends only on the store interfaces, never on a specific
// storage implementation.
package service
