package teams

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/teampair/assign"
	"github.com/katalvlaran/teampair/preference"
)

// Defaults used by DefaultOptions.
const (
	DefaultRounds          = 5
	DefaultNoiseFactor     = 0.1
	DefaultStagnationLimit = 10
	DefaultParallelism     = 1
)

// Options configures Build.
//
// Seed            – seed for the noise generator; 0 selects a fixed default seed.
// Rand            – optional injected generator; when set, Seed is ignored.
// Rounds          – number of diversification rounds (≥ 1).
// NoiseFactor     – noise half-width is floor(NoiseFactor*10) cost units (≥ 0).
// Solvers         – solvers run on every noisy matrix (non-empty).
// StagnationLimit – idle-pass limit of the local search (≥ 1); any valid value gives the same result.
// MaxPasses       – hard cap on local-search passes; 0 means unlimited.
// Parallelism     – number of rounds solved concurrently (≥ 1).
// Logger          – structured logger; nil means zap.NewNop().
type Options struct {
	Seed            int64
	Rand            *rand.Rand
	Rounds          int
	NoiseFactor     float64
	Solvers         []assign.Solver
	StagnationLimit int
	MaxPasses       int
	Parallelism     int
	Logger          *zap.Logger
}

// Option represents a functional option for configuring Build.
type Option func(*Options)

// DefaultOptions returns the configuration used when no Option is given.
//
// Defaults:
//   - Seed:            0 (fixed default stream).
//   - Rounds:          5.
//   - NoiseFactor:     0.1 (noise in [-1, 1]).
//   - Solvers:         Hungarian, then Greedy (10 candidates in total).
//   - StagnationLimit: 10.
//   - MaxPasses:       0 (unlimited).
//   - Parallelism:     1 (sequential).
//   - Logger:          zap.NewNop().
func DefaultOptions() Options {
	return Options{
		Rounds:          DefaultRounds,
		NoiseFactor:     DefaultNoiseFactor,
		Solvers:         []assign.Solver{assign.Hungarian{}, assign.Greedy{}},
		StagnationLimit: DefaultStagnationLimit,
		Parallelism:     DefaultParallelism,
		Logger:          zap.NewNop(),
	}
}

// WithSeed sets the noise seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand injects a generator (used only to derive per-round streams,
// on the calling goroutine).
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

// WithRounds sets the number of diversification rounds.
func WithRounds(n int) Option {
	return func(o *Options) { o.Rounds = n }
}

// WithNoiseFactor sets the noise factor.
func WithNoiseFactor(f float64) Option {
	return func(o *Options) { o.NoiseFactor = f }
}

// WithSolvers replaces the solver list.
func WithSolvers(s ...assign.Solver) Option {
	return func(o *Options) { o.Solvers = s }
}

// WithStagnationLimit sets the local-search stagnation limit.
func WithStagnationLimit(n int) Option {
	return func(o *Options) { o.StagnationLimit = n }
}

// WithMaxPasses caps local-search passes (0 = unlimited).
func WithMaxPasses(n int) Option {
	return func(o *Options) { o.MaxPasses = n }
}

// WithParallelism sets how many rounds may run concurrently.
func WithParallelism(n int) Option {
	return func(o *Options) { o.Parallelism = n }
}

// WithLogger sets the structured logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// newOptions applies opts over DefaultOptions and validates the result.
func newOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	return o, validateOptions(o)
}

// validateOptions checks Options without referencing any roster.
func validateOptions(o Options) error {
	if o.Rounds < 1 {
		return ErrBadRounds
	}
	if _, err := preference.NoiseBound(o.NoiseFactor); err != nil {
		return err
	}
	if len(o.Solvers) == 0 {
		return ErrNoSolvers
	}
	for _, s := range o.Solvers {
		if s == nil {
			return assign.ErrNoSolver
		}
	}
	if o.StagnationLimit < 1 {
		return ErrBadStagnation
	}
	if o.MaxPasses < 0 {
		return ErrBadMaxPasses
	}
	if o.Parallelism < 1 {
		return ErrBadParallelism
	}

	return nil
}

// baseRand returns the generator per-round streams are derived from.
func (o Options) baseRand() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}

	return rngFromSeed(o.Seed)
}
