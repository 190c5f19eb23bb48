// Package variate draws reproducible random variates.
//
// A Sampler wires a seedable uniform source (package rng) to a standard
// normal generator (package normal) and exposes the normal and lognormal
// samplers of package dist on top of them.
//
// Basic usage:
//
//	s, err := variate.New(variate.DefaultConfig())
//	xs := s.LNorm(1000, 0, 1)
//
// A Sampler is not safe for concurrent use.
package variate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/nozzle/variate/dist"
	"github.com/nozzle/variate/internal/logging"
	"github.com/nozzle/variate/internal/vector"
	"github.com/nozzle/variate/normal"
	"github.com/nozzle/variate/rng"
)

// Config configures a Sampler.
type Config struct {
	// Seed for the uniform source.
	// Default: 0
	Seed uint32

	// Source is the uniform source algorithm.
	// Options: "mersenne-twister", "tausworthe"
	// Default: "mersenne-twister"
	Source string

	// Normal is the standard normal generation method.
	// Options: "kinderman-ramage", "box-muller", "inversion"
	// Default: "kinderman-ramage"
	Normal string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Seed:   0,
		Source: rng.KindMersenneTwister.String(),
		Normal: normal.KindKindermanRamage.String(),
	}
}

// Validate checks that the named algorithms exist.
func (c Config) Validate() error {
	if _, err := rng.ParseKind(c.Source); err != nil {
		return fmt.Errorf("source: %w", err)
	}
	if _, err := normal.ParseKind(c.Normal); err != nil {
		return fmt.Errorf("normal: %w", err)
	}
	return nil
}

// Sampler draws variates from a single reproducible stream.
type Sampler struct {
	Config Config

	src rng.Source
	gen normal.Generator
}

// New builds the source and generator named by config.
func New(config Config) (*Sampler, error) {
	srcKind, err := rng.ParseKind(config.Source)
	if err != nil {
		return nil, fmt.Errorf("source: %w", err)
	}
	genKind, err := normal.ParseKind(config.Normal)
	if err != nil {
		return nil, fmt.Errorf("normal: %w", err)
	}

	src, err := rng.New(srcKind, config.Seed)
	if err != nil {
		return nil, err
	}
	gen, err := normal.New(genKind, src)
	if err != nil {
		return nil, err
	}
	return &Sampler{Config: config, src: src, gen: gen}, nil
}

// Norm draws n variates from Normal(mean, sd).
func (s *Sampler) Norm(n int, mean, sd float64) dist.Variates {
	return dist.RNorm(n, mean, sd, s.gen)
}

// LNorm draws n variates from the lognormal distribution with log-mean
// meanlog and log-standard-deviation sdlog.
func (s *Sampler) LNorm(n int, meanlog, sdlog float64) dist.Variates {
	return dist.RLNorm(n, meanlog, sdlog, s.gen)
}

// Uniform draws n uniform deviates in [0, 1).
func (s *Sampler) Uniform(n int) dist.Variates {
	return vector.Map(vector.Seq(n), func(int) float64 { return s.src.Float64() })
}

// UniformRange draws n uniform deviates in [low, high). Bounds that are
// not finite, or low > high, yield NaN for every element.
func (s *Sampler) UniformRange(n int, low, high float64) dist.Variates {
	if math.IsNaN(low) || math.IsNaN(high) || math.IsInf(low, 0) || math.IsInf(high, 0) || low > high {
		logging.DomainWarning("runif", map[string]any{"n": n, "min": low, "max": high})
		return vector.Fill(n, math.NaN())
	}
	draw := func(int) float64 { return low + (high-low)*s.src.Float64() }
	if r, ok := s.src.(rng.Ranged); ok {
		draw = func(int) float64 { return r.Uniform(low, high) }
	}
	return vector.Map(vector.Seq(n), draw)
}

// Reseed restarts the stream from seed.
func (s *Sampler) Reseed(seed uint32) {
	s.Config.Seed = seed
	s.src.Init(seed)
}

// Snapshot is the full state of a Sampler stream.
type Snapshot struct {
	// Source is the uniform source state, as returned by rng.Source.Seed.
	Source []uint32
	// Normal holds draws the generator has made but not yet returned.
	// It is nil for generators without such state.
	Normal []float64
}

// Seed returns a snapshot of the stream. Passing it to Restore resumes
// every sampler at the same point.
func (s *Sampler) Seed() Snapshot {
	snapshot := Snapshot{Source: s.src.Seed()}
	if g, ok := s.gen.(normal.Stateful); ok {
		snapshot.Normal = g.State()
	}
	return snapshot
}

// Restore installs a snapshot taken with Seed. Reseeding the source drops
// any pending generator state, so it is put back afterwards.
func (s *Sampler) Restore(snapshot Snapshot) error {
	if err := s.src.SetSeed(snapshot.Source); err != nil {
		return err
	}
	if g, ok := s.gen.(normal.Stateful); ok {
		g.SetState(snapshot.Normal)
	}
	return nil
}

// Source returns the uniform source.
func (s *Sampler) Source() rng.Source { return s.src }

// Generator returns the standard normal generator.
func (s *Sampler) Generator() normal.Generator { return s.gen }

// Summary describes a batch of draws.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize computes moments and range of xs. Empty input or any NaN
// yields NaN statistics.
func Summarize(xs []float64) Summary {
	sum := Summary{N: len(xs)}
	if len(xs) == 0 || floats.HasNaN(xs) {
		nan := math.NaN()
		sum.Mean, sum.StdDev, sum.Min, sum.Max = nan, nan, nan, nan
		return sum
	}
	sum.Mean, sum.StdDev = stat.MeanStdDev(xs, nil)
	sum.Min, sum.Max = floats.Min(xs), floats.Max(xs)
	return sum
}
