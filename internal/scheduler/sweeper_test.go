package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

type countingCore struct {
	mu   sync.Mutex
	n    int
	errs []error
}

func (c *countingCore) Sweep(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
	if len(c.errs) > 0 {
		err := c.errs[0]
		c.errs = c.errs[1:]
		return err
	}
	return nil
}

func (c *countingCore) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

func TestSweeper_InitialDelayThenTicks(t *testing.T) {
	core := &countingCore{}
	sw := NewSweeper(zap.NewNop(), core, 5*time.Millisecond, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sw.Run(ctx)

	time.Sleep(2 * time.Millisecond)
	if core.count() != 0 {
		t.Fatalf("sweep fired before initial delay")
	}

	time.Sleep(50 * time.Millisecond)
	if n := core.count(); n < 2 {
		t.Fatalf("want initial sweep plus ticks, got %d", n)
	}
}

func TestSweeper_ErrorDoesNotHaltLoop(t *testing.T) {
	core := &countingCore{errs: []error{errors.New("save failed")}}
	sw := NewSweeper(zap.NewNop(), core, 0, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sw.Run(ctx)

	time.Sleep(30 * time.Millisecond)
	if n := core.count(); n < 2 {
		t.Fatalf("failed sweep halted the loop, got %d sweeps", n)
	}
}

func TestSweeper_StopsOnCancel(t *testing.T) {
	core := &countingCore{}
	sw := NewSweeper(zap.NewNop(), core, 0, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sw.Run(ctx)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}
