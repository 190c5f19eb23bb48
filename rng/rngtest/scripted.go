// Package rngtest provides uniform sources for deterministic tests.
package rngtest

import (
	"fmt"

	"github.com/nozzle/variate/rng"
)

// Scripted replays a fixed sequence of uniform deviates and counts draws.
// It panics when the script is exhausted, so an unexpected extra draw
// fails the test instead of hanging a rejection loop.
type Scripted struct {
	rng.Notifier

	values []float64
	pos    int
	draws  int
}

var _ rng.Source = (*Scripted)(nil)

// NewScripted returns a source that yields values in order.
func NewScripted(values ...float64) *Scripted {
	s := &Scripted{}
	s.Init(0)
	s.values = values
	return s
}

// Name implements rng.Source.
func (s *Scripted) Name() string { return "Scripted" }

// Kind implements rng.Source.
func (s *Scripted) Kind() rng.Kind { return rng.KindUserSupplied }

// Init rewinds the script to position seed and fires rng.EventInit.
func (s *Scripted) Init(seed uint32) {
	s.pos = int(seed)
	_ = s.Emit(rng.EventInit)
}

// Seed returns the current script position.
func (s *Scripted) Seed() []uint32 {
	return []uint32{uint32(s.pos)}
}

// SetSeed rewinds the script to seed[0].
func (s *Scripted) SetSeed(seed []uint32) error {
	if len(seed) != 1 {
		return fmt.Errorf("%w: want 1 word, got %d", rng.ErrSeedLength, len(seed))
	}
	s.Init(seed[0])
	return nil
}

// Float64 returns the next scripted value.
func (s *Scripted) Float64() float64 {
	if s.pos >= len(s.values) {
		panic(fmt.Sprintf("rngtest: script exhausted after %d draws", s.draws))
	}
	v := s.values[s.pos]
	s.pos++
	s.draws++
	return v
}

// Draws reports how many values have been consumed since construction.
func (s *Scripted) Draws() int { return s.draws }

// Remaining reports how many scripted values are left.
func (s *Scripted) Remaining() int { return len(s.values) - s.pos }

// Counting wraps a source and counts calls to Float64.
type Counting struct {
	rng.Source

	draws int
}

// NewCounting wraps src.
func NewCounting(src rng.Source) *Counting {
	return &Counting{Source: src}
}

// Float64 implements rng.Source.
func (c *Counting) Float64() float64 {
	c.draws++
	return c.Source.Float64()
}

// Draws reports how many values have been drawn through c.
func (c *Counting) Draws() int { return c.draws }
