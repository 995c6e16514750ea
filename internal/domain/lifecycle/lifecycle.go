// Package lifecycle holds process lifecycle settings shared by servers and clients.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of a single component.
const DefaultTimeout = 10 * time.Second
