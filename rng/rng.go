package rng

import "math"

// State is a 32-bit PCG hash state. The zero value is a valid state, but
// callers normally construct one with Init or Init2 so that nearby seeds
// decohere before the first draw.
type State uint32

// pcg applies one PCG-RXS-M-XS round to s.
func pcg(s uint32) uint32 {
	b := s*747796405 + 2891336453
	c := ((b >> ((b >> 28) + 4)) ^ b) * 277803737
	return (c >> 22) ^ c
}

// Init returns a State derived from seed by one hash round.
func Init(seed uint32) State {
	return State(pcg(seed))
}

// Init2 returns a State derived from seed+offset by one hash round.
// It is the re-seeding operation used to derive decorrelated substreams
// from a common base seed.
func Init2(seed, offset uint32) State {
	return State(pcg(seed + offset))
}

// Uint32 advances the state by one round and returns it.
func (s *State) Uint32() uint32 {
	*s = State(pcg(uint32(*s)))
	return uint32(*s)
}

// Float advances the state and returns a uniform sample in [0,1),
// built from the top 24 bits of the advanced state.
func (s *State) Float() float64 {
	return float64(s.Uint32()>>8) * (1.0 / 16777216.0)
}

// Uniform advances the state and returns a uniform sample in [lo,hi).
func (s *State) Uniform(lo, hi float64) float64 {
	return s.Float()*(hi-lo) + lo
}

// Normal advances the state twice and returns a standard normal sample
// via the Box–Muller transform. If the first draw is exactly zero the
// logarithm diverges; the draw is clamped to the smallest nonzero Float
// output instead.
func (s *State) Normal() float64 {
	u := s.Float()
	v := s.Float()
	if u == 0 {
		u = 1.0 / 16777216.0
	}
	return math.Sqrt(-2*math.Log(u)) * math.Cos(2*math.Pi*v)
}
