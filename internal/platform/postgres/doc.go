// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package. It handles query
// execution, mapping between domain entities and database rows, and the
// schema migrations embedded in the binary.
package postgres
