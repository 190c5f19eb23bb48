package rng_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nozzle/variate/rng"
)

func TestMT19937VsNumpy(t *testing.T) {
	mt := rng.NewMT19937(42)

	// Expected values from Python: numpy.random.RandomState(42).uniform(-10, 10, 20)
	expected := []float64{
		-2.509197623052750,
		9.014286128198323,
		4.639878836228101,
		1.973169683940732,
		-6.879627191151270,
		-6.880109593275947,
		-8.838327756636010,
		7.323522915498703,
		2.022300234864176,
		4.161451555920910,
		-9.588310114083951,
		9.398197043239886,
		6.648852816008435,
		-5.753217786434477,
		-6.363500655857988,
		-6.331909802931324,
		-3.915155140809246,
		0.495128632644757,
		-1.361099627157685,
		-4.175417196039161,
	}

	for i, exp := range expected {
		got := mt.Uniform(-10.0, 10.0)
		assert.InDelta(t, exp, got, 1e-6, "value %d", i)
	}
}

func TestMT19937RNGState(t *testing.T) {
	// After 30 uniform calls the next 3 randint values match what Python
	// generates with random_state.randint(INT32_MIN, INT32_MAX+1, 3).
	mt := rng.NewMT19937(42)
	for n := 0; n < 30; n++ {
		_ = mt.Uniform(-10.0, 10.0)
	}

	// NumPy draws a uint32 and subtracts 2^31 to shift the range.
	expected := []int32{461901618, 774414982, -1415088108}
	for i, exp := range expected {
		assert.Equal(t, exp, int32(mt.Uint32()-0x80000000), "rng state %d", i)
	}
}

func TestMT19937ReferenceOutputs(t *testing.T) {
	// First outputs of the reference mt19937ar.c implementation.
	mt := rng.NewMT19937(5489)
	assert.Equal(t, uint32(3499211612), mt.Uint32())

	key := []uint32{0x123, 0x234, 0x345, 0x456}
	require.NoError(t, mt.SetSeed(key))
	want := []uint32{1067595299, 955945823, 477289528, 4107218783, 4228976476}
	for i, w := range want {
		assert.Equal(t, w, mt.Uint32(), "output %d", i)
	}
}

func TestMT19937SnapshotRoundTrip(t *testing.T) {
	mt := rng.NewMT19937(7)
	for n := 0; n < 1000; n++ {
		mt.Float64()
	}

	snapshot := mt.Seed()
	require.Len(t, snapshot, 625)

	first := draw(mt, 50)
	require.NoError(t, mt.SetSeed(snapshot))
	assert.Equal(t, first, draw(mt, 50))

	require.NoError(t, mt.SetSeed(snapshot))
	assert.Equal(t, snapshot, mt.Seed())
}

func TestMT19937SeedIsStateNotInput(t *testing.T) {
	mt := rng.NewMT19937(1)
	before := mt.Seed()
	mt.Float64()
	after := mt.Seed()
	assert.NotEqual(t, before, after)
	assert.Equal(t, uint32(624), before[0])
}

func TestMT19937Determinism(t *testing.T) {
	for _, seed := range []uint32{0, 1, 42, 0xdeadbeef} {
		t.Run(fmt.Sprint(seed), func(t *testing.T) {
			mt := rng.NewMT19937(seed)
			first := draw(mt, 100)
			mt.Init(seed)
			assert.Equal(t, first, draw(mt, 100))
			require.NoError(t, mt.SetSeed([]uint32{seed}))
			assert.Equal(t, first, draw(mt, 100))
		})
	}
}

func TestMT19937AllZeroSnapshot(t *testing.T) {
	mt := rng.NewMT19937(3)
	require.NoError(t, mt.SetSeed(make([]uint32, 625)))

	nonZero := false
	for n := 0; n < 10; n++ {
		if mt.Uint32() != 0 {
			nonZero = true
		}
	}
	assert.True(t, nonZero, "all-zero snapshot should be replaced")
}

func TestMT19937EmptySeed(t *testing.T) {
	mt := rng.NewMT19937(3)
	err := mt.SetSeed(nil)
	assert.True(t, errors.Is(err, rng.ErrEmptySeed))
}

func draw(src rng.Source, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = src.Float64()
	}
	return out
}
