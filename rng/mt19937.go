package rng

// This implements the Mersenne Twister (MT19937) algorithm. Single word
// seeding matches numpy.random.RandomState(seed) exactly.

const (
	mtN        = 624
	mtM        = 397
	matrixA    = 0x9908b0df
	upperMask  = 0x80000000
	lowerMask  = 0x7fffffff
	temperingB = 0x9d2c5680
	temperingC = 0xefc60000

	// mtDefaultSeed is the reference seed used when the state is unusable.
	mtDefaultSeed = 5489
	// mtSnapshotLen is mti followed by the 624 state words.
	mtSnapshotLen = mtN + 1
)

// MT19937 is a Mersenne Twister random number generator compatible with NumPy.
type MT19937 struct {
	Notifier

	mt  [mtN]uint32
	mti int
}

var _ Ranged = (*MT19937)(nil)

// NewMT19937 creates a new Mersenne Twister with the given seed.
// This matches numpy.random.RandomState(seed).
func NewMT19937(seed uint32, opts ...Option) *MT19937 {
	mt := &MT19937{}
	mt.apply(opts)
	mt.setup()
	mt.Init(seed)
	return mt
}

// setup marks the state as never seeded.
func (mt *MT19937) setup() {
	mt.mti = mtN + 1
}

// Name implements Source.
func (mt *MT19937) Name() string { return "Mersenne-Twister" }

// Kind implements Source.
func (mt *MT19937) Kind() Kind { return KindMersenneTwister }

// Init seeds the generator from a single word and fires EventInit.
func (mt *MT19937) Init(seed uint32) {
	mt.initGenrand(seed)
	mt.fire(EventInit, mt.Kind().String())
}

// Seed returns mti followed by the 624 state words.
func (mt *MT19937) Seed() []uint32 {
	out := make([]uint32, mtSnapshotLen)
	out[0] = uint32(mt.mti)
	copy(out[1:], mt.mt[:])
	return out
}

// SetSeed reseeds the generator and fires EventInit.
//
// A snapshot previously returned by Seed restores that exact state. A
// single word is equivalent to Init. Any other length is used as an
// init_by_array key.
func (mt *MT19937) SetSeed(seed []uint32) error {
	switch len(seed) {
	case 0:
		return ErrEmptySeed
	case 1:
		mt.Init(seed[0])
		return nil
	case mtSnapshotLen:
		mt.restore(seed)
	default:
		mt.initByArray(seed)
	}
	mt.fire(EventInit, mt.Kind().String())
	return nil
}

func (mt *MT19937) restore(snapshot []uint32) {
	mti := int(snapshot[0])
	if mti > mtN {
		mti = mtN
	}
	copy(mt.mt[:], snapshot[1:])
	mt.mti = mti

	for _, w := range mt.mt {
		if w != 0 {
			return
		}
	}
	// An all-zero state would only ever produce zeros.
	mt.initGenrand(mtDefaultSeed)
}

func (mt *MT19937) initGenrand(seed uint32) {
	mt.mt[0] = seed
	for i := 1; i < mtN; i++ {
		mt.mt[i] = 1812433253*(mt.mt[i-1]^(mt.mt[i-1]>>30)) + uint32(i)
	}
	mt.mti = mtN
}

func (mt *MT19937) initByArray(key []uint32) {
	mt.initGenrand(19650218)
	i, j := 1, 0
	k := max(mtN, len(key))
	for ; k > 0; k-- {
		mt.mt[i] = (mt.mt[i] ^ ((mt.mt[i-1] ^ (mt.mt[i-1] >> 30)) * 1664525)) + key[j] + uint32(j)
		i++
		j++
		if i >= mtN {
			mt.mt[0] = mt.mt[mtN-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = mtN - 1; k > 0; k-- {
		mt.mt[i] = (mt.mt[i] ^ ((mt.mt[i-1] ^ (mt.mt[i-1] >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= mtN {
			mt.mt[0] = mt.mt[mtN-1]
			i = 1
		}
	}
	mt.mt[0] = 0x80000000
}

// Uint32 generates a random uint32.
func (mt *MT19937) Uint32() uint32 {
	var y uint32
	mag01 := [2]uint32{0, matrixA}

	if mt.mti >= mtN {
		if mt.mti == mtN+1 {
			mt.initGenrand(mtDefaultSeed)
		}
		// Generate N words at a time
		var kk int
		for kk = 0; kk < mtN-mtM; kk++ {
			y = (mt.mt[kk] & upperMask) | (mt.mt[kk+1] & lowerMask)
			mt.mt[kk] = mt.mt[kk+mtM] ^ (y >> 1) ^ mag01[y&1]
		}
		for ; kk < mtN-1; kk++ {
			y = (mt.mt[kk] & upperMask) | (mt.mt[kk+1] & lowerMask)
			mt.mt[kk] = mt.mt[kk+(mtM-mtN)] ^ (y >> 1) ^ mag01[y&1]
		}
		y = (mt.mt[mtN-1] & upperMask) | (mt.mt[0] & lowerMask)
		mt.mt[mtN-1] = mt.mt[mtM-1] ^ (y >> 1) ^ mag01[y&1]
		mt.mti = 0
	}

	y = mt.mt[mt.mti]
	mt.mti++

	// Tempering
	y ^= y >> 11
	y ^= (y << 7) & temperingB
	y ^= (y << 15) & temperingC
	y ^= y >> 18

	return y
}

// Float64 generates a random float64 in [0, 1) with 53 bits of precision.
// This matches numpy's random_sample().
func (mt *MT19937) Float64() float64 {
	a := mt.Uint32() >> 5
	b := mt.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) * (1.0 / 9007199254740992.0)
}

// Uniform generates a random float64 in [low, high).
// This matches numpy.random.uniform(low, high).
func (mt *MT19937) Uniform(low, high float64) float64 {
	return low + (high-low)*mt.Float64()
}
