// Package registry is the core of the monitor: it owns the durable set of
// endpoints and is the single place probe outcomes become state.
package registry

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/keepalive/internal/code"
	"github.com/hamed0406/keepalive/internal/domain"
	"github.com/hamed0406/keepalive/internal/metrics"
	"github.com/hamed0406/keepalive/internal/probe"
	"github.com/hamed0406/keepalive/internal/store"
)

// Registry serializes every load-mutate-save cycle through one mutex, so
// overlapping API calls and the background sweep cannot lose each other's
// writes.
type Registry struct {
	mu      sync.Mutex
	store   store.Store
	checker probe.Checker
	gen     *code.Generator
	logger  *zap.Logger
	metrics *metrics.Collector

	// Pacing is the delay between consecutive probes during a sweep,
	// protecting monitored endpoints from bursts. Zero disables it.
	Pacing time.Duration
}

func New(s store.Store, chk probe.Checker, gen *code.Generator, logger *zap.Logger, mc *metrics.Collector) *Registry {
	if gen == nil {
		gen = code.NewGenerator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		store:   s,
		checker: chk,
		gen:     gen,
		logger:  logger,
		metrics: mc,
		Pacing:  time.Second,
	}
}

// applyProbe is the probe-outcome mutation rule shared by Add, Refresh and
// Sweep. No other path mutates endpoint health state.
func (r *Registry) applyProbe(e *domain.Endpoint, res probe.Result) {
	e.LastCheck = res.Timestamp
	e.ResponseTime = res.LatencyMS
	e.StatusCode = res.StatusCode
	e.TotalChecks++
	if res.Success {
		e.Status = domain.StatusOnline
		ts := res.Timestamp
		e.LastSuccess = &ts
		e.FailCount = 0
	} else {
		e.Status = domain.StatusOffline
		e.FailCount++
		e.LastError = res.Message
	}
	r.metrics.RecordProbe(e.Code, res.Success, res.LatencyMS/1000)
}

// Add registers a new URL: validate, reject duplicates, assign a unique
// code, run one synchronous probe, persist. On a store failure the
// in-memory add is discarded so memory and disk stay consistent.
func (r *Registry) Add(ctx context.Context, rawURL string) (*domain.Endpoint, error) {
	if err := validateURL(rawURL); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load registry: %w", err)
	}
	if existing := doc.FindURL(rawURL); existing != nil {
		return nil, &DuplicateError{Code: existing.Code, URL: rawURL}
	}

	c := r.gen.Unique(func(candidate string) bool {
		return doc.Find(candidate) != nil
	})

	res := r.checker.Check(ctx, rawURL)
	e := domain.Endpoint{
		Code:    c,
		URL:     rawURL,
		AddedAt: time.Now().UTC(),
	}
	r.applyProbe(&e, res)

	doc.Links = append(doc.Links, e)
	doc.Recompute()
	if err := r.store.Save(ctx, doc); err != nil {
		r.metrics.RecordRemoval(c)
		return nil, fmt.Errorf("%w: %v", ErrPersist, err)
	}
	r.metrics.RecordStats(doc.Stats.TotalLinks, doc.Stats.ActiveLinks)

	r.logger.Info("endpoint_added",
		zap.String("code", c),
		zap.String("url", rawURL),
		zap.String("status", string(e.Status)),
		zap.Float64("response_ms", e.ResponseTime),
	)
	return &e, nil
}

// Refresh probes the endpoint with the given code right now, applies the
// mutation rule and persists the result.
func (r *Registry) Refresh(ctx context.Context, c string) (*domain.Endpoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load registry: %w", err)
	}
	e := doc.Find(c)
	if e == nil {
		return nil, ErrNotFound
	}

	res := r.checker.Check(ctx, e.URL)
	r.applyProbe(e, res)

	doc.Recompute()
	if err := r.store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersist, err)
	}
	r.metrics.RecordStats(doc.Stats.TotalLinks, doc.Stats.ActiveLinks)

	r.logger.Debug("endpoint_refreshed",
		zap.String("code", e.Code),
		zap.String("status", string(e.Status)),
		zap.Int("status_code", e.StatusCode),
	)
	cp := *e
	return &cp, nil
}

// List returns the freshest known state: the document reloaded from the
// store, without probing anything.
func (r *Registry) List(ctx context.Context) (*domain.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, err := r.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load registry: %w", err)
	}
	return doc, nil
}

// Remove deletes the endpoint with the given code and persists the shrunken
// document.
func (r *Registry) Remove(ctx context.Context, c string) (*domain.Endpoint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load registry: %w", err)
	}
	removed := doc.Remove(c)
	if removed == nil {
		return nil, ErrNotFound
	}

	doc.Recompute()
	if err := r.store.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersist, err)
	}
	r.metrics.RecordRemoval(removed.Code)
	r.metrics.RecordStats(doc.Stats.TotalLinks, doc.Stats.ActiveLinks)

	r.logger.Info("endpoint_removed",
		zap.String("code", removed.Code),
		zap.String("url", removed.URL),
	)
	return removed, nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme must be http or https", ErrInvalidURL)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidURL)
	}
	return nil
}
