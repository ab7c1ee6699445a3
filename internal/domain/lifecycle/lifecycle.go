// Package lifecycle holds shared constants for application startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown operations such as
// server drain, database ping, and publisher close.
const DefaultTimeout = 10 * time.Second
