package probe

import (
	"context"
	"time"
)

// Result is the unified outcome of a single probe.
//
// Success reflects reachability, not HTTP health: any response counts as
// success unless the checker is configured strict. StatusCode is 0 for
// transport-level failures (timeout, refused connection, DNS).
type Result struct {
	Success    bool
	StatusCode int
	LatencyMS  float64
	Message    string
	Timestamp  time.Time
}

// Checker performs a single probe against a target URL.
type Checker interface {
	Check(ctx context.Context, target string) Result
}
