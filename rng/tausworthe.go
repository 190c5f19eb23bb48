package rng

// Tausworthe is L'Ecuyer's maximally equidistributed combined Tausworthe
// generator (taus88). Its state is three 32-bit words with lower bounds
// 2, 8 and 16 respectively.
type Tausworthe struct {
	Notifier

	s [3]uint32
}

var _ Ranged = (*Tausworthe)(nil)

const tausWarmup = 10

// NewTausworthe creates a new Tausworthe generator with the given seed.
func NewTausworthe(seed uint32, opts ...Option) *Tausworthe {
	t := &Tausworthe{}
	t.apply(opts)
	t.setup()
	t.Init(seed)
	return t
}

func (t *Tausworthe) setup() {
	t.s = [3]uint32{2, 8, 16}
}

// Name implements Source.
func (t *Tausworthe) Name() string { return "Tausworthe" }

// Kind implements Source.
func (t *Tausworthe) Kind() Kind { return KindTausworthe }

// Init seeds the three components from a 69069 LCG and warms up.
func (t *Tausworthe) Init(seed uint32) {
	if seed == 0 {
		seed = 1
	}
	s := seed
	for i := range t.s {
		s = 69069 * s
		t.s[i] = s
	}
	t.fixup()
	for n := 0; n < tausWarmup; n++ {
		t.Uint32()
	}
	t.fire(EventInit, t.Kind().String())
}

// Seed returns the three state words.
func (t *Tausworthe) Seed() []uint32 {
	return []uint32{t.s[0], t.s[1], t.s[2]}
}

// SetSeed restores a 3-word snapshot, or seeds from a single word.
func (t *Tausworthe) SetSeed(seed []uint32) error {
	switch len(seed) {
	case 0:
		return ErrEmptySeed
	case 1:
		t.Init(seed[0])
		return nil
	case len(t.s):
		copy(t.s[:], seed)
		t.fixup()
		t.fire(EventInit, t.Kind().String())
		return nil
	}
	return ErrSeedLength
}

// fixup enforces the component minimums; below them a component degenerates.
func (t *Tausworthe) fixup() {
	if t.s[0] < 2 {
		t.s[0] += 2
	}
	if t.s[1] < 8 {
		t.s[1] += 8
	}
	if t.s[2] < 16 {
		t.s[2] += 16
	}
}

// Uint32 generates a pseudo-random uint32.
func (t *Tausworthe) Uint32() uint32 {
	t.s[0] = ((t.s[0] & 4294967294) << 12) ^ (((t.s[0] << 13) ^ t.s[0]) >> 19)
	t.s[1] = ((t.s[1] & 4294967288) << 4) ^ (((t.s[1] << 2) ^ t.s[1]) >> 25)
	t.s[2] = ((t.s[2] & 4294967280) << 17) ^ (((t.s[2] << 3) ^ t.s[2]) >> 11)
	return t.s[0] ^ t.s[1] ^ t.s[2]
}

// Float64 generates a pseudo-random float64 in [0, 1).
func (t *Tausworthe) Float64() float64 {
	return float64(t.Uint32()) * 2.3283064365386963e-10
}

// Uniform generates a pseudo-random float64 in [low, high).
func (t *Tausworthe) Uniform(low, high float64) float64 {
	return low + (high-low)*t.Float64()
}
