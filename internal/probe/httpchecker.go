package probe

import (
	"context"
	"net/http"
	"time"
)

const DefaultUserAgent = "keepalive-monitor/1.0 (+https://github.com/hamed0406/keepalive)"

type HTTPChecker struct {
	Client    *http.Client
	UserAgent string

	// StrictStatus makes 5xx responses count as offline. Default keeps the
	// reachability semantics: any response means the endpoint is up.
	StrictStatus bool
}

func NewHTTPChecker(timeout time.Duration) *HTTPChecker {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPChecker{
		Client:    &http.Client{Timeout: timeout},
		UserAgent: DefaultUserAgent,
	}
}

func (h *HTTPChecker) Check(ctx context.Context, target string) Result {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return Result{Message: err.Error(), Timestamp: time.Now().UTC()}
	}
	req.Header.Set("User-Agent", h.UserAgent)

	resp, err := h.Client.Do(req)
	latency := time.Since(start).Seconds() * 1000 // ms
	if err != nil {
		return Result{
			LatencyMS: latency,
			Message:   err.Error(),
			Timestamp: time.Now().UTC(),
		}
	}
	defer resp.Body.Close()

	success := true
	if h.StrictStatus && resp.StatusCode >= 500 {
		success = false
	}
	return Result{
		Success:    success,
		StatusCode: resp.StatusCode,
		LatencyMS:  latency,
		Message:    resp.Status,
		Timestamp:  time.Now().UTC(),
	}
}
