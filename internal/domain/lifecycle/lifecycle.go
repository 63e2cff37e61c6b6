// Package lifecycle holds timings shared by every component started and
// stopped through fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds a single start or stop hook.
const DefaultTimeout = 10 * time.Second
