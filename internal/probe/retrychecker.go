package probe

import (
	"context"
	"time"
)

// RetryChecker re-probes a target that failed, up to Attempts total tries.
// Wire it only when a deployment wants flap suppression; a single attempt
// keeps the one-request-per-probe contract.
type RetryChecker struct {
	Inner    Checker
	Attempts int
	Backoff  time.Duration
}

func (r *RetryChecker) Check(ctx context.Context, target string) Result {
	attempts := r.Attempts
	if attempts < 1 {
		attempts = 1
	}
	var last Result
	for i := 0; i < attempts; i++ {
		last = r.Inner.Check(ctx, target)
		if last.Success {
			return last
		}
		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return last
			case <-time.After(r.Backoff):
			}
		}
	}
	return last
}
