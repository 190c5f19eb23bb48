// Package vector provides the sequence and elementwise helpers the samplers
// use to turn scalar draws into N-length results.
package vector

// Seq returns the indices [0, n). A non-positive n yields an empty slice.
func Seq(n int) []int {
	if n <= 0 {
		return []int{}
	}
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

// Map applies fn to each element of seq and collects results in order.
func Map[S, T any](seq []S, fn func(S) T) []T {
	results := make([]T, len(seq))
	for i, v := range seq {
		results[i] = fn(v)
	}
	return results
}

// Apply replaces each element of xs with fn(x) in place and returns xs.
func Apply(xs []float64, fn func(float64) float64) []float64 {
	for i, x := range xs {
		xs[i] = fn(x)
	}
	return xs
}

// Fill returns n copies of v.
func Fill(n int, v float64) []float64 {
	return Map(Seq(n), func(int) float64 { return v })
}
