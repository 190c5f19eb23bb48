// Package normal generates standard normal variates from a uniform source.
//
// A Generator shares its rng.Source with the caller: seeding, snapshots and
// lifecycle listeners all go through the source, never the generator.
package normal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nozzle/variate/rng"
)

// ErrUnknownKind is returned for generator names that are not registered.
var ErrUnknownKind = errors.New("normal: unknown generator kind")

// Generator draws from N(0, 1).
type Generator interface {
	// NormFloat64 returns one standard normal variate, advancing the source.
	NormFloat64() float64
	// Source returns the shared uniform source.
	Source() rng.Source
}

// Stateful is implemented by generators that hold draws between calls.
// That state lives outside the source snapshot, so resuming a stream
// needs both.
type Stateful interface {
	Generator
	// State returns the pending draws, or nil when there are none.
	State() []float64
	// SetState replaces the pending draws. A nil state clears them.
	SetState(state []float64)
}

// Kind identifies a normal generation method.
type Kind int

const (
	// KindKindermanRamage is the default rejection method.
	KindKindermanRamage Kind = iota
	// KindBoxMuller is the polar transform of uniform pairs.
	KindBoxMuller
	// KindInversion inverts the normal CDF.
	KindInversion
)

func (k Kind) String() string {
	switch k {
	case KindKindermanRamage:
		return "kinderman-ramage"
	case KindBoxMuller:
		return "box-muller"
	case KindInversion:
		return "inversion"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Kinds lists every generation method in declaration order.
func Kinds() []Kind {
	return []Kind{KindKindermanRamage, KindBoxMuller, KindInversion}
}

// ParseKind maps a method name to its Kind. Matching ignores case.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "kinderman-ramage", "kr":
		return KindKindermanRamage, nil
	case "box-muller", "bm":
		return KindBoxMuller, nil
	case "inversion", "inv":
		return KindInversion, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// New constructs a generator of the given kind on src.
// A nil src is replaced by a Mersenne Twister seeded with 0.
func New(kind Kind, src rng.Source) (Generator, error) {
	switch kind {
	case KindKindermanRamage:
		return NewKindermanRamage(src), nil
	case KindBoxMuller:
		return NewBoxMuller(src), nil
	case KindInversion:
		return NewInversion(src), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
}

// Base holds the shared source. Concrete generators embed it.
type Base struct {
	src rng.Source
}

func newBase(src rng.Source) Base {
	if src == nil {
		src = rng.NewMT19937(0)
	}
	return Base{src: src}
}

// Source implements Generator.
func (b Base) Source() rng.Source { return b.src }

func (b Base) unif() float64 { return b.src.Float64() }
