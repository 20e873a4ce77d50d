// Package lvlga is your in-memory playground for geometric (Clifford)
// algebra — build multivectors over any metric signature and push them
// through products, projections and inverses with plain float64 math.
//
// 🚀 What is lvlga?
//
//	A small, thread-safe, zero-dependency library that brings together:
//		• Basis elements: canonical ordering, contraction under a metric
//		• Multivectors: sums of weighted blades, always kept simplified
//		• Products: geometric, dot (inner), wedge (outer), commutator
//		• Involutions: reversion, grade involution, Clifford conjugation
//		• Inverses: division and integer powers via the reversion formula
//		• Generators: full 2ᴺ basis for any (p,q,r) or custom signature
//
// ✨ Why choose lvlga?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – immutable values, in-code docs & contracts
//   - Pure Go – no cgo, no hidden deps
//   - Metric-agnostic – Euclidean, Minkowski, degenerate (PGA) signatures alike
//
// Under the hood, everything lives in one subpackage:
//
//	ga/ — Element, Blade, Signature, Multivector & every operation on them
//
// Quick ASCII example:
//
//	    e1·e1 = +1        e12 = e1∧e2
//	    (3 + 4e12)(3 + 4e12) = -7 + 24e12
//
//	a rotor in the Euclidean plane, squared.
//
// Next up: sparse blade maps, conformal-model helpers and beyond.
// Dive into README.md for full examples, a feature matrix, and our roadmap.
//
//	go get github.com/katalvlaran/lvlga/ga
package lvlga
