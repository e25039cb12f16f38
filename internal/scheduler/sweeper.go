package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Core is the slice of the registry the sweeper drives.
type Core interface {
	Sweep(ctx context.Context) error
}

// Sweeper fires one sweep after InitialDelay, then a full sweep every
// Interval until the context is cancelled. Probe failures inside a sweep are
// recorded by the registry and never abort the cycle; a failed sweep never
// halts future ones.
type Sweeper struct {
	Logger       *zap.Logger
	Registry     Core
	InitialDelay time.Duration
	Interval     time.Duration
}

func NewSweeper(logger *zap.Logger, core Core, initialDelay, interval time.Duration) *Sweeper {
	if logger == nil {
		logger = zap.NewNop()
	}
	if initialDelay < 0 {
		initialDelay = 0
	}
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &Sweeper{
		Logger:       logger,
		Registry:     core,
		InitialDelay: initialDelay,
		Interval:     interval,
	}
}

// Run blocks until ctx is done.
func (s *Sweeper) Run(ctx context.Context) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(s.InitialDelay):
	}
	s.sweepOnce(ctx)

	t := time.NewTicker(s.Interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			s.Logger.Info("sweeper_stopped")
			return
		case <-t.C:
			s.sweepOnce(ctx)
		}
	}
}

func (s *Sweeper) sweepOnce(ctx context.Context) {
	if err := s.Registry.Sweep(ctx); err != nil && ctx.Err() == nil {
		s.Logger.Warn("sweep_error", zap.Error(err))
	}
}
