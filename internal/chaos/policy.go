// Package chaos implements the pluggable latency/failure injection policy for
// the simulated network. The backend and the sync client each hold their own
// policy, so flakiness can be tuned per layer: tests zero it out for
// determinism, chaos tests raise it.
package chaos

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Policy injects an artificial delay in [MinDelay, MaxDelay] and fails a
// fraction FailureRate of calls. A nil *Policy is valid and injects nothing.
type Policy struct {
	MinDelay    time.Duration
	MaxDelay    time.Duration
	FailureRate float64

	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a policy with its own seeded random source, so a fixed seed
// makes injected failures reproducible.
func New(minDelay, maxDelay time.Duration, failureRate float64, seed int64) *Policy {
	return &Policy{
		MinDelay:    minDelay,
		MaxDelay:    maxDelay,
		FailureRate: failureRate,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

// None returns a policy that injects neither latency nor failures.
func None() *Policy {
	return New(0, 0, 0, 0)
}

// Wait sleeps for a random duration within the policy's bounds. It returns
// early with the context's error if the context is done first.
func (p *Policy) Wait(ctx context.Context) error {
	if p == nil {
		return nil
	}
	d := p.delay()
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ShouldFail reports whether this call should be failed artificially.
func (p *Policy) ShouldFail() bool {
	if p == nil || p.FailureRate <= 0 {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Float64() < p.FailureRate
}

func (p *Policy) delay() time.Duration {
	if p.MaxDelay <= 0 {
		return 0
	}
	if p.MaxDelay <= p.MinDelay {
		return p.MinDelay
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.MinDelay + time.Duration(p.rng.Int63n(int64(p.MaxDelay-p.MinDelay)))
}
