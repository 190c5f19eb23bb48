// Package dist draws batches of variates from normal-derived distributions.
//
// Samplers never return errors. Parameters outside the domain of a
// distribution produce a warning on the sampler's diagnostic channel and a
// batch of NaN with the requested length; the generator is not touched.
package dist

import (
	"math"

	"github.com/nozzle/variate/internal/logging"
	"github.com/nozzle/variate/internal/vector"
	"github.com/nozzle/variate/normal"
)

// Variates is an ordered batch of draws. A batch of one is a scalar result.
type Variates []float64

// IsScalar reports whether the batch holds exactly one draw.
func (v Variates) IsScalar() bool { return len(v) == 1 }

// Scalar returns the single draw of a scalar batch, or NaN otherwise.
func (v Variates) Scalar() float64 {
	if !v.IsScalar() {
		return math.NaN()
	}
	return v[0]
}

// HasNaN reports whether any draw is NaN.
func (v Variates) HasNaN() bool {
	for _, x := range v {
		if math.IsNaN(x) {
			return true
		}
	}
	return false
}

// RNorm draws n variates from Normal(mean, sd) using g.
//
// mean must not be NaN and sd must be finite and non-negative. With sd == 0
// or an infinite mean every draw is mean and g is not consulted.
func RNorm(n int, mean, sd float64, g normal.Generator) Variates {
	if invalid(mean, sd) {
		logging.DomainWarning("rnorm", map[string]any{"n": n, "mean": mean, "sd": sd})
		return vector.Fill(n, math.NaN())
	}
	return vector.Map(vector.Seq(n), func(int) float64 {
		if sd == 0 || math.IsInf(mean, 0) {
			return mean
		}
		return mean + sd*g.NormFloat64()
	})
}

// RLNorm draws n variates from the lognormal distribution whose logarithm
// is Normal(meanlog, sdlog).
func RLNorm(n int, meanlog, sdlog float64, g normal.Generator) Variates {
	if invalid(meanlog, sdlog) {
		logging.DomainWarning("rlnorm", map[string]any{"n": n, "meanlog": meanlog, "sdlog": sdlog})
		return vector.Fill(n, math.NaN())
	}
	return vector.Apply(RNorm(n, meanlog, sdlog, g), math.Exp)
}

func invalid(location, scale float64) bool {
	return math.IsNaN(location) || math.IsNaN(scale) || math.IsInf(scale, 0) || scale < 0
}
