// Package ga implements geometric (Clifford) algebra: multivector values
// over an arbitrary metric signature, with the full product family.
//
// 🚀 What is geometric algebra?
//
//	An algebra where vectors multiply: the geometric product fuses the
//	dot and wedge products into one associative operation, and a single
//	Multivector value can hold a scalar, a vector, a plane, a volume —
//	or any sum of them.  It shows up in:
//	  • 2D/3D rotations without matrices or quaternions (rotors)
//	  • Special relativity (spacetime algebra, Minkowski metrics)
//	  • Projective & conformal geometry (degenerate metrics)
//	  • Physics engines and computer graphics
//
// ✨ Key features:
//   - one value type, Multivector: immutable, always simplified
//   - any metric: each basis vector squares to +1, -1 or 0 (Signature)
//   - geometric product, Dot, Wedge, Commutator, grade projection
//   - reversion, grade involution, Clifford conjugation
//   - Div / Inverse / negative Pow via the reversion formula
//   - Basis: all 2ⁿ basis blades of an algebra, grade-major
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlga/ga"
//
//	// the Euclidean plane: e1² = e2² = +1
//	sig, _ := ga.NewSignature(2, 0, 0)
//
//	// v = 3 + 4*e12  (a rotor, scalar + bivector)
//	v, _ := ga.New([]ga.Blade{{3, nil}, {4, ga.Element{1, 2}}}, sig)
//
//	v2, _ := v.Mul(v)        // -7 + 24*e12
//	n, _ := v.Mul(v.Reverse())
//	fmt.Println(v2, n)       // norm² = 25
//
// Conventions:
//
//   - A basis element is its ascending index list: e12 = Element{1, 2};
//     the empty element is the scalar unit.
//   - Construction accepts raw, unsorted, repeated indices and
//     canonicalizes them (e21 becomes -1*e12 on the way in).
//   - Operations reject mismatched signatures instead of guessing.
//
// Performance:
//
//   - Product of p- and q-term values: O(p·q·k²), k the element length
//   - Everything allocates fresh values; nothing locks, nothing mutates
//
// See examples in example_test.go and runnable scenarios under examples/.
package ga
