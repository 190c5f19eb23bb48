package normal

import (
	"math"

	"github.com/nozzle/variate/rng"
)

// Kinderman-Ramage constants.
//
// Kinderman A. J. and Ramage J. G. (1976).
// Computer generation of normal random variables. JASA 71, 893-896.
const (
	krA  = 2.216035867166471
	krC1 = 0.398942280401433
	krC2 = 0.180025191068563
)

// Region boundaries for the first uniform.
const (
	krCentral = 0.884070402298758
	krRegion2 = 0.911312780288703
	krRegion3 = 0.958720824790463
	krTail    = 0.973310954173898
	krTailNeg = 0.986655477086949
)

// KindermanRamage samples N(0,1) with the Kinderman-Ramage algorithm,
// including Josef Leydold's correction of the tail region.
type KindermanRamage struct {
	Base
}

var _ Generator = (*KindermanRamage)(nil)

// NewKindermanRamage returns a generator on src, or on a Mersenne Twister
// seeded with 0 when src is nil.
func NewKindermanRamage(src rng.Source) *KindermanRamage {
	return &KindermanRamage{Base: newBase(src)}
}

// NormFloat64 implements Generator.
//
// The central region takes exactly two uniforms. Every other region loops
// on fresh (u2, u3) pairs until acceptance; the first uniform is never
// redrawn. The loops are unbounded so the output is not biased.
func (kr *KindermanRamage) NormFloat64() float64 {
	u1 := kr.unif()

	if u1 < krCentral {
		return kr.central(u1, kr.unif())
	}

	var trial func(u1, u2, u3 float64) (float64, bool)
	switch {
	case u1 >= krTail:
		trial = kr.tail
	case u1 >= krRegion3:
		trial = kr.region3
	case u1 >= krRegion2:
		trial = kr.region2
	default:
		trial = kr.region1
	}

	for {
		u2 := kr.unif()
		u3 := kr.unif()
		if x, ok := trial(u1, u2, u3); ok {
			return x
		}
	}
}

func (kr *KindermanRamage) central(u1, u2 float64) float64 {
	return krA * (1.13113163544418*u1 + u2 - 1)
}

func (kr *KindermanRamage) tail(u1, u2, u3 float64) (float64, bool) {
	tt := krA*krA - 2*math.Log(u3)
	if u2*u2 >= krA*krA/tt {
		return 0, false
	}
	if u1 < krTailNeg {
		return math.Sqrt(tt), true
	}
	return -math.Sqrt(tt), true
}

func (kr *KindermanRamage) region3(_, u2, u3 float64) (float64, bool) {
	tt := krA - 0.63083480192196*math.Min(u2, u3)
	return squeeze(tt, u2, u3, 0.755591531667601, 0.034240503750111)
}

func (kr *KindermanRamage) region2(_, u2, u3 float64) (float64, bool) {
	tt := 0.479727404222441 + 1.10547366102207*math.Min(u2, u3)
	return squeeze(tt, u2, u3, 0.87283497667179, 0.049264496373128)
}

func (kr *KindermanRamage) region1(_, u2, u3 float64) (float64, bool) {
	tt := 0.479727404222441 - 0.59550713801594*math.Min(u2, u3)
	if tt < 0 {
		return 0, false
	}
	return squeeze(tt, u2, u3, 0.805577924423817, 0.053377549506886)
}

// squeeze accepts tt outright below the envelope threshold, otherwise tests
// against the density g. The sign comes from the order of u2 and u3.
func squeeze(tt, u2, u3, envelope, coef float64) (float64, bool) {
	if math.Max(u2, u3) <= envelope || coef*math.Abs(u2-u3) <= g(tt) {
		if u2 < u3 {
			return tt, true
		}
		return -tt, true
	}
	return 0, false
}

func g(x float64) float64 {
	return krC1*math.Exp(-x*x/2) - krC2*(krA-x)
}
