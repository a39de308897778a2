// Package ratelimit gates outbound calls to the campaign API with a continuously refilled
// token bucket and a lockout window that callers trigger when the upstream rejects them.
// The limiter knows nothing about HTTP; translating a 429 into TriggerLockout is the
// caller's job.
package ratelimit

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Config fixes the bucket shape for the lifetime of a Limiter.
type Config struct {
	Capacity int
	Window   time.Duration
	Lockout  time.Duration
}

// Stats is a point-in-time view of the bucket.
type Stats struct {
	Capacity    int
	Tokens      float64
	RefillRate  float64
	LockedUntil time.Time
	Admitted    uint64
	Lockouts    uint64
}

// Locked reports whether admissions are suspended at now.
func (s Stats) Locked(now time.Time) bool {
	return now.Before(s.LockedUntil)
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock replaces the wall clock, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

// WithSleep replaces the blocking sleep, mostly for tests.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(l *Limiter) { l.sleep = sleep }
}

func WithLogger(logger *slog.Logger) Option {
	return func(l *Limiter) { l.logger = logger }
}

// Limiter admits at most Capacity calls per Window and stops admitting for Lockout
// after TriggerLockout.
type Limiter struct {
	mu          sync.Mutex
	bucket      *rate.Limiter
	capacity    int
	refill      rate.Limit
	lockout     time.Duration
	lockedUntil time.Time
	admitted    uint64
	lockouts    uint64

	now    func() time.Time
	sleep  func(ctx context.Context, d time.Duration) error
	logger *slog.Logger
}

// New returns a limiter whose bucket starts full.
func New(cfg Config, opts ...Option) (*Limiter, error) {
	if cfg.Capacity <= 0 {
		return nil, errors.New("ratelimit: capacity must be positive")
	}
	if cfg.Window <= 0 {
		return nil, errors.New("ratelimit: window must be positive")
	}
	if cfg.Lockout < 0 {
		return nil, errors.New("ratelimit: lockout cannot be negative")
	}

	refill := rate.Limit(float64(cfg.Capacity) / cfg.Window.Seconds())
	l := &Limiter{
		bucket:   rate.NewLimiter(refill, cfg.Capacity),
		capacity: cfg.Capacity,
		refill:   refill,
		lockout:  cfg.Lockout,
		now:      time.Now,
		sleep:    sleepContext,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}

	l.logger.Info("rate limiter configured",
		"capacity", cfg.Capacity,
		"window", cfg.Window,
		"lockout", cfg.Lockout,
		"refill_per_sec", float64(refill),
	)

	return l, nil
}

// Wait blocks until one admission is available and debits it. It only returns an error
// when ctx is done; otherwise it waits as long as the lockout and refill require.
func (l *Limiter) Wait(ctx context.Context) error {
	for {
		wait, admitted := l.poll()
		if admitted {
			return nil
		}
		if err := l.sleep(ctx, wait); err != nil {
			return err
		}
	}
}

// poll performs one admission attempt. When it fails it returns how long to sleep before
// the next attempt can succeed.
func (l *Limiter) poll() (time.Duration, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Before(l.lockedUntil) {
		wait := l.lockedUntil.Sub(now)
		l.logger.Warn("campaign API locked, waiting", "wait", wait)
		return wait, false
	}

	tokens := l.bucket.TokensAt(now)
	if tokens >= 1 && l.bucket.AllowN(now, 1) {
		l.admitted++
		return 0, true
	}

	missing := 1 - tokens
	wait := time.Duration(math.Ceil(missing / float64(l.refill) * float64(time.Second)))
	l.logger.Debug("rate limit hit, waiting", "wait", wait, "tokens", tokens)
	return wait, false
}

// TriggerLockout suspends admissions for the configured lockout and empties the bucket.
// A lockout during an active lockout moves locked_until to now+lockout; it does not add up.
func (l *Limiter) TriggerLockout() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.lockedUntil = now.Add(l.lockout)
	l.lockouts++

	// Lowering the burst to zero caps the stored tokens at zero; restoring it keeps
	// the bucket empty with refill restarting from now.
	l.bucket.SetBurstAt(now, 0)
	l.bucket.SetBurstAt(now, l.capacity)

	l.logger.Error("campaign API limit exceeded, entering lockout",
		"lockout", l.lockout,
		"locked_until", l.lockedUntil,
	)
}

// Stats reports the bucket as of the limiter clock.
func (l *Limiter) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()

	return Stats{
		Capacity:    l.capacity,
		Tokens:      l.bucket.TokensAt(l.now()),
		RefillRate:  float64(l.refill),
		LockedUntil: l.lockedUntil,
		Admitted:    l.admitted,
		Lockouts:    l.lockouts,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
