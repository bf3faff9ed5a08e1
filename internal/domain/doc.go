// Package domain defines the core business entities of the task board and the
// errors shared across layers. It depends on nothing else in the module.
package domain
