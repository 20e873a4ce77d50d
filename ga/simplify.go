// SPDX-License-Identifier: MIT
// Package ga: blade-list simplifier.
//
// Simplify brings a list of weighted terms to the unique normal form every
// Multivector keeps: zero terms dropped, equal basis elements merged, the
// rest ordered by grade and then lexicographically. One fused cursor pass
// does all three at once instead of a prune + sort + merge pipeline.

package ga

// Simplify returns the simplified copy of a blade list.
//
// One cursor walks adjacent pairs, restarting locally after each rewrite:
//   - zero coefficient      — drop the blade, step back one;
//   - equal basis elements  — add the right coefficient into the left,
//     drop the right, stay put (the merged sum may itself be zero);
//   - out-of-order pair     — swap, step back one;
//   - ordered pair          — advance.
//
// Basis elements are compared verbatim; feed canonical elements (see
// Canonicalize) if e12 and e21 must meet as one term. The input and its
// backing elements are never touched.
//
// Example: 1 + 5*e12 + (-3)*e12 + 0*e2 + 0.5  ->  1.5 + 2*e12.
//
// Complexity: O(m²) adjacent steps for m blades, O(m) extra memory.
func Simplify(blades []Blade) []Blade {
	return simplifyInPlace(cloneBlades(blades))
}

// simplifyInPlace is the cursor engine behind Simplify. It owns v outright:
// internal callers that just built a fresh list skip the defensive copy.
func simplifyInPlace(v []Blade) []Blade {
	i := 0
	for i < len(v) {
		switch {
		case v[i].Coeff == 0: // dead term -> drop
			v = append(v[:i], v[i+1:]...)
			if i > 0 {
				i-- // so we compare next time from the previous blade
			}
		case i+1 >= len(v):
			return v // nothing left to compare, we are done
		case sameElement(v[i].Elem, v[i+1].Elem): // same basis element -> merge
			v[i].Coeff += v[i+1].Coeff
			v = append(v[:i+1], v[i+2:]...)
			// cursor stays: the merged coefficient gets its own zero check
		case elementLess(v[i+1].Elem, v[i].Elem): // out of order -> swap
			v[i], v[i+1] = v[i+1], v[i] // 3*e12 + 5*e1  ->  5*e1 + 3*e12
			if i > 0 {
				i-- // so we keep comparing this blade
			}
		default:
			i++
		}
	}

	return v
}
