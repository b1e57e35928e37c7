// Package backend provides translation backend implementations.
package backend

import "github.com/veznalabs/glot"

// Backend is the interface for translation backends.
// This is an alias to the main package interface for convenience.
type Backend = glot.Backend

// Result is an alias to the main package type.
type Result = glot.BackendResult
