package registry

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/keepalive/internal/probe"
)

// Sweep probes every registered endpoint once and persists the whole batch
// in a single save.
//
// Probing happens outside the registry mutex so API requests are not blocked
// for the sweep's full wall-clock span (pacing alone can make that minutes).
// The results are then applied under the mutex against a freshly loaded
// document: endpoints deleted mid-sweep are simply skipped, never
// resurrected, and nothing another writer persisted in the meantime is lost.
func (r *Registry) Sweep(ctx context.Context) error {
	start := time.Now()

	r.mu.Lock()
	doc, err := r.store.Load(ctx)
	r.mu.Unlock()
	if err != nil {
		return err
	}
	if len(doc.Links) == 0 {
		// Nothing to probe; skip the load-then-save round trip.
		return nil
	}

	type outcome struct {
		code string
		res  probe.Result
	}
	results := make([]outcome, 0, len(doc.Links))
	for i := range doc.Links {
		if i > 0 && r.Pacing > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(r.Pacing):
			}
		}
		e := &doc.Links[i]
		res := r.checker.Check(ctx, e.URL)
		results = append(results, outcome{code: e.Code, res: res})
		if !res.Success {
			r.logger.Debug("sweep_probe_failed",
				zap.String("code", e.Code),
				zap.String("url", e.URL),
				zap.String("reason", res.Message),
			)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, err := r.store.Load(ctx)
	if err != nil {
		return err
	}
	for _, o := range results {
		if e := current.Find(o.code); e != nil {
			r.applyProbe(e, o.res)
		}
	}
	current.Recompute()
	if err := r.store.Save(ctx, current); err != nil {
		// Operationally significant, but the next sweep starts fresh.
		r.logger.Warn("sweep_save_failed", zap.Error(err))
		return err
	}
	r.metrics.RecordStats(current.Stats.TotalLinks, current.Stats.ActiveLinks)
	r.metrics.RecordSweep(time.Since(start).Seconds())

	r.logger.Info("sweep_done",
		zap.Int("probed", len(results)),
		zap.Int("active", current.Stats.ActiveLinks),
		zap.Duration("took", time.Since(start)),
	)
	return nil
}
