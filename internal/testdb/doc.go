// Package testdb provides utilities specifically for database testing.
// Tests that use it connect to the database named by DATABASE_URL (or
// RAINALERT_TEST_DB_URL), apply the embedded migrations once, and run each
// case inside a transaction that is rolled back afterwards.
package testdb
