// SPDX-License-Identifier: MIT

// Package noise: hash and kernel constants (single source of truth).
//
// The per-axis multipliers and the curl re-seed offsets are part of the
// documented hash contract: an implementation using the same constants and
// the same integer hashing reproduces the same lattice gradient assignment.
package noise

const (
	// heavisideEps is the derivative-continuity guard radius. A fractional
	// offset below this threshold is treated as sitting exactly on a lattice
	// node and the offset chain-rule term for that axis is suppressed.
	heavisideEps = 1e-6

	// Per-axis lattice hash multipliers. One fixed large prime per axis,
	// combined by XOR after per-axis integer multiplication.
	primeX uint32 = 73856093
	primeY uint32 = 19349663
	primeZ uint32 = 53471161
	primeW uint32 = 10000019

	// Re-seed offsets deriving the second and third decorrelated scalar
	// fields of the 3D/4D curl construction from the base seed.
	curlReseedB uint32 = 10019689
	curlReseedC uint32 = 13112221

	// maxDim is the highest supported coordinate dimensionality.
	maxDim = 4
)
