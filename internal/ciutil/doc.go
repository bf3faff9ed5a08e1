// Package ciutil detects the execution environment (CI or local) and reads
// environment variables that may be set under more than one name.
package ciutil
