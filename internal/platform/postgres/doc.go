// Package postgres provides PostgreSQL implementations of the store
// interfaces defined in internal/store. Queries run through database/sql with
// the pgx driver; joined selects and partial updates are built with squirrel.
// The schema is managed by goose migrations embedded in this package.
package postgres
