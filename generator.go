// Package ksuid - generator.go provides a configurable, concurrency-safe KSUID
// generator and the package-level convenience functions backed by it.

package ksuid

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// batchCheckInterval is how many IDs GenerateBatch produces between context
// checks.
const batchCheckInterval = 100

// Config holds configuration options for a Generator.
//
// Sensible defaults are provided via DefaultConfig().
type Config struct {
	// Rand supplies payload entropy. Reads are serialised by the generator,
	// so the reader does not need to be safe for concurrent use.
	// Default: crypto/rand.Reader
	Rand io.Reader

	// Clock returns the current time.
	// Default: time.Now
	Clock func() time.Time

	// EnableMetrics determines whether to collect internal counters.
	// Default: true
	EnableMetrics bool

	// Logger receives warnings about random source failures.
	// Default: a logger that discards everything
	Logger *slog.Logger
}

// DefaultConfig returns a Config using the system CSPRNG and wall clock.
func DefaultConfig() Config {
	return Config{
		Rand:          DefaultSource(),
		Clock:         time.Now,
		EnableMetrics: true,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Validate checks the configuration, filling in a discard logger when none
// is set. Returns *ConfigError when a required field is missing.
func (c *Config) Validate() error {
	if c.Rand == nil {
		return newConfigError("Rand", "random source must not be nil")
	}
	if c.Clock == nil {
		return newConfigError("Clock", "clock must not be nil")
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return nil
}

// Metrics holds generator counters. All counters are monotonically
// increasing until ResetMetrics.
type Metrics struct {
	Generated    int64 // IDs successfully generated
	RandomErrors int64 // random source failures (ID not generated)
}

// Generator produces KSUIDs from a configured clock and random source.
//
// Generator is safe for concurrent use. The mutex guards only the random
// reader; metrics are atomic and may be read without locking.
type Generator struct {
	mu     sync.Mutex
	rand   io.Reader
	clock  func() time.Time
	logger *slog.Logger

	metricsEnabled bool
	generated      atomic.Int64
	randomErrors   atomic.Int64
}

// NewGenerator creates a Generator with the given configuration.
//
// Example:
//
//	cfg := ksuid.DefaultConfig()
//	cfg.Rand = ksuid.SourceReader(rand.NewChaCha8(seed))
//	gen, err := ksuid.NewGenerator(cfg)
func NewGenerator(cfg Config) (*Generator, error) {
	if err := (&cfg).Validate(); err != nil {
		return nil, err
	}

	return &Generator{
		rand:           cfg.Rand,
		clock:          cfg.Clock,
		logger:         cfg.Logger,
		metricsEnabled: cfg.EnableMetrics,
	}, nil
}

// New generates a KSUID for the current clock time.
func (g *Generator) New() (KSUID, error) {
	return g.NewWithTime(g.clock())
}

// NewWithTime generates a KSUID for t with a fresh payload.
func (g *Generator) NewWithTime(t time.Time) (KSUID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.generateLocked(t)
}

// MustNew generates a KSUID and panics on error.
func (g *Generator) MustNew() KSUID {
	id, err := g.New()
	if err != nil {
		panic(err)
	}
	return id
}

// GenerateBatch generates count KSUIDs under a single lock acquisition,
// all stamped with the clock reading taken when the batch starts.
//
// If the context is canceled or the random source fails, the IDs generated so
// far are returned together with the error.
//
// Example:
//
//	ids, err := gen.GenerateBatch(ctx, 1000)
//	if err != nil {
//	    log.Error("batch generation failed", "generated", len(ids), "err", err)
//	}
func (g *Generator) GenerateBatch(ctx context.Context, count int) ([]KSUID, error) {
	if count <= 0 {
		return []KSUID{}, nil
	}

	ids := make([]KSUID, 0, count)

	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.clock()
	for i := 0; i < count; i++ {
		if i%batchCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return ids, err
			}
		}

		id, err := g.generateLocked(now)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func (g *Generator) generateLocked(t time.Time) (KSUID, error) {
	id, err := Generate(t, g.rand)
	if err != nil {
		if g.metricsEnabled {
			g.randomErrors.Add(1)
		}
		g.logger.Warn("ksuid: random source failed", "error", err)
		return Nil, err
	}

	if g.metricsEnabled {
		g.generated.Add(1)
	}
	return id, nil
}

// GetMetrics returns a snapshot of current metrics.
func (g *Generator) GetMetrics() Metrics {
	return Metrics{
		Generated:    g.generated.Load(),
		RandomErrors: g.randomErrors.Load(),
	}
}

// ResetMetrics resets all counters to zero. Primarily useful in tests.
func (g *Generator) ResetMetrics() {
	g.generated.Store(0)
	g.randomErrors.Store(0)
}

// Default generator for the package-level functions, initialised on first
// use.
var (
	defaultGenerator     *Generator
	defaultGeneratorOnce sync.Once
	defaultGeneratorErr  error
)

func initDefaultGenerator() {
	defaultGenerator, defaultGeneratorErr = NewGenerator(DefaultConfig())
}

// New generates a KSUID for the current time using crypto/rand.
//
// It panics if the system random source fails, which does not happen on
// supported platforms. Use NewRandom to handle the error instead.
func New() KSUID {
	id, err := NewRandom()
	if err != nil {
		panic(err)
	}
	return id
}

// NewRandom generates a KSUID for the current time using crypto/rand.
func NewRandom() (KSUID, error) {
	return NewRandomWithTime(time.Now())
}

// NewRandomWithTime generates a KSUID for t using crypto/rand.
func NewRandomWithTime(t time.Time) (KSUID, error) {
	defaultGeneratorOnce.Do(initDefaultGenerator)
	if defaultGeneratorErr != nil {
		return Nil, defaultGeneratorErr
	}
	return defaultGenerator.NewWithTime(t)
}

// GetDefaultMetrics returns metrics from the default generator.
func GetDefaultMetrics() (Metrics, error) {
	defaultGeneratorOnce.Do(initDefaultGenerator)
	if defaultGeneratorErr != nil {
		return Metrics{}, defaultGeneratorErr
	}
	return defaultGenerator.GetMetrics(), nil
}
