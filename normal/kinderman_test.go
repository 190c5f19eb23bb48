package normal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nozzle/variate/rng/rngtest"
)

func TestKindermanRamageRegions(t *testing.T) {
	tail := math.Sqrt(krA*krA - 2*math.Log(0.5))

	tests := []struct {
		name   string
		script []float64
		want   float64
	}{
		{
			name:   "central",
			script: []float64{0.5, 0.5},
			want:   krA * (1.13113163544418*0.5 + 0.5 - 1),
		},
		{
			name:   "region1",
			script: []float64{0.9, 0.2, 0.3},
			want:   0.479727404222441 - 0.59550713801594*0.2,
		},
		{
			name:   "region1 negative tt retries",
			script: []float64{0.9, 0.9, 0.95, 0.3, 0.1},
			want:   -(0.479727404222441 - 0.59550713801594*0.1),
		},
		{
			name:   "region2",
			script: []float64{0.93, 0.1, 0.2},
			want:   0.479727404222441 + 1.10547366102207*0.1,
		},
		{
			name:   "region2 rejection",
			script: []float64{0.93, 0.99, 0.01, 0.1, 0.2},
			want:   0.479727404222441 + 1.10547366102207*0.1,
		},
		{
			name:   "region3",
			script: []float64{0.96, 0.5, 0.4},
			want:   -(krA - 0.63083480192196*0.4),
		},
		{
			name:   "region3 density acceptance",
			script: []float64{0.96, 0.80, 0.79},
			want:   -(krA - 0.63083480192196*0.79),
		},
		{
			name:   "tail positive",
			script: []float64{0.98, 0.5, 0.5},
			want:   tail,
		},
		{
			name:   "tail negative",
			script: []float64{0.999, 0.5, 0.5},
			want:   -tail,
		},
		{
			name:   "tail rejection keeps u1",
			script: []float64{0.98, 0.99, 0.5, 0.5, 0.5},
			want:   tail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := rngtest.NewScripted(tt.script...)
			got := NewKindermanRamage(src).NormFloat64()

			assert.InDelta(t, tt.want, got, 1e-12)
			assert.False(t, math.IsNaN(got) || math.IsInf(got, 0))
			assert.Equal(t, len(tt.script), src.Draws())
			assert.Zero(t, src.Remaining())
		})
	}
}

func TestKindermanRamageProbesTerminate(t *testing.T) {
	for _, u1 := range []float64{0.5, 0.9, 0.93, 0.96, 0.98, 0.999} {
		script := []float64{u1}
		for n := 0; n < 50; n++ {
			script = append(script, 0.3, 0.6)
		}
		got := NewKindermanRamage(rngtest.NewScripted(script...)).NormFloat64()
		assert.False(t, math.IsNaN(got) || math.IsInf(got, 0), "u1=%v", u1)
	}
}

func TestSqueeze(t *testing.T) {
	x, ok := squeeze(1.5, 0.1, 0.2, 0.5, 0.01)
	require.True(t, ok)
	assert.Equal(t, 1.5, x)

	x, ok = squeeze(1.5, 0.2, 0.1, 0.5, 0.01)
	require.True(t, ok)
	assert.Equal(t, -1.5, x)

	_, ok = squeeze(0.490782, 0.99, 0.01, 0.87283497667179, 0.049264496373128)
	assert.False(t, ok)
}

func TestDensityEnvelope(t *testing.T) {
	// At A the linear term drops out.
	assert.InDelta(t, krC1*math.Exp(-krA*krA/2), g(krA), 1e-15)
	assert.Greater(t, g(0.5), 0.0)
}
