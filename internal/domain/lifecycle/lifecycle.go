// Package lifecycle holds shared shutdown constants for delivery servers.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of a delivery server.
const DefaultTimeout = 30 * time.Second
