package normal

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/nozzle/variate/rng"
)

// invBig is 2^27. Two uniforms are combined to get more than 32 bits of
// resolution in the quantile argument.
const invBig = 134217728

// Inversion samples N(0,1) by inverting the normal CDF.
type Inversion struct {
	Base
}

var _ Generator = (*Inversion)(nil)

// NewInversion returns a generator on src, or on a Mersenne Twister seeded
// with 0 when src is nil.
func NewInversion(src rng.Source) *Inversion {
	return &Inversion{Base: newBase(src)}
}

// NormFloat64 implements Generator.
func (inv *Inversion) NormFloat64() float64 {
	u := math.Floor(invBig*inv.unif()) + inv.unif()
	return distuv.UnitNormal.Quantile(u / invBig)
}
