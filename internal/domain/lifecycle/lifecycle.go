// Package lifecycle holds shared timing constants for startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and background workers.
const DefaultTimeout = 10 * time.Second

// BootTimeout bounds the initial session restore and catalog fetch.
const BootTimeout = 15 * time.Second
