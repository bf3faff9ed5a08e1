// Package store provides abstractions for data persistence. Implementations
// live under internal/platform; services depend only on the interfaces here.
package store
