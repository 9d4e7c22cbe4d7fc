// Package rng implements the seeded 32-bit scalar samplers that drive
// lattice gradient hashing: a PCG-style hash state with uniform and normal
// draws.
//
// 🚀 Contract
//
//	A State is a pure function of the integers that built it.  Init(seed)
//	and Init2(seed, offset) fold their arguments through one PCG
//	(RXS-M-XS) round; every draw advances the state by one further round
//	and maps the new state to a scalar.  Identical construction plus an
//	identical draw sequence always reproduces identical scalars — there is
//	no global state and no entropy source.
//
// ✨ Samplers:
//   - Uint32          — raw advanced state
//   - Float           — uniform in [0,1), top 24 bits of the state
//   - Uniform(lo, hi) — affine map of Float onto [lo,hi)
//   - Normal          — standard normal via Box–Muller (two Float draws)
//
// ⚙️ Usage:
//
//	st := rng.Init2(seed, lattice)
//	g := st.Uniform(-1, 1)
//
// Determinism is the whole point: math/rand is deliberately not used, since
// its stream is neither a pure function of a 32-bit hash state nor stable
// across Go releases.
package rng
