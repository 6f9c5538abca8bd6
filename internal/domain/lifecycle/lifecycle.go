// Package lifecycle holds shared constants for component start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown of infrastructure
// components managed through fx lifecycle hooks.
const DefaultTimeout = 10 * time.Second
