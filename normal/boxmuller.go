package normal

import (
	"math"

	"github.com/nozzle/variate/rng"
)

// dblMin is the smallest positive normal float64. It keeps the radius
// strictly positive.
const dblMin = 0x1p-1022

// BoxMuller samples N(0,1) with the Box-Muller transform. Each pair of
// uniforms yields two variates; the second is kept for the next call and
// discarded whenever the source is reseeded.
type BoxMuller struct {
	Base

	keep    float64
	hasKeep bool
}

var _ Stateful = (*BoxMuller)(nil)

// NewBoxMuller returns a generator on src, or on a Mersenne Twister seeded
// with 0 when src is nil.
func NewBoxMuller(src rng.Source) *BoxMuller {
	bm := &BoxMuller{Base: newBase(src)}
	bm.src.Register(rng.EventInit, bm.reset)
	return bm
}

func (bm *BoxMuller) reset() error {
	bm.keep, bm.hasKeep = 0, false
	return nil
}

// State implements Stateful. It holds the cached sine value, if any.
func (bm *BoxMuller) State() []float64 {
	if !bm.hasKeep {
		return nil
	}
	return []float64{bm.keep}
}

// SetState implements Stateful.
func (bm *BoxMuller) SetState(state []float64) {
	if len(state) == 0 {
		bm.keep, bm.hasKeep = 0, false
		return
	}
	bm.keep, bm.hasKeep = state[0], true
}

// NormFloat64 implements Generator.
func (bm *BoxMuller) NormFloat64() float64 {
	if bm.hasKeep {
		bm.hasKeep = false
		return bm.keep
	}
	theta := 2 * math.Pi * bm.unif()
	r := math.Sqrt(-2*math.Log(bm.unif())) + 10*dblMin
	bm.keep, bm.hasKeep = r*math.Sin(theta), true
	return r * math.Cos(theta)
}
