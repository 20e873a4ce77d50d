// SPDX-License-Identifier: MIT
// Package ga: basis-element canonicalizer.
//
// Canonicalize rewrites a raw index sequence into canonical ascending form,
// tracking the sign picked up from anticommuting swaps and resolving
// repeated indices through the metric. Every geometric product funnels its
// concatenated elements through this one engine.

package ga

// Canonicalize returns the canonical form of e under sig together with the
// scalar factor the rewrite produced.
//
// The walk is a cursor over adjacent index pairs:
//   - repeated pair   — contract it, multiply the factor by that index's
//     square (+1 under a nil signature), step the cursor back one;
//   - descending pair — swap it (perpendicular basis vectors anticommute),
//     negate the factor, step the cursor back one;
//   - ascending pair  — advance.
//
// The factor is always -1, 0 or +1, and is 0 exactly when a null basis
// vector (square 0) contracts; the walk still runs to completion so the
// element comes back canonical. Contracting an index that a non-nil sig
// does not define is ErrMissingSignatureEntry; a square outside {-1, 0, +1}
// is ErrBadSignature. The input slice is never touched — the walk owns a
// copy from the start.
//
// Example: e13512 -> e235 with factor +1, or -1 once e1*e1 == -1.
//
// Complexity: O(k²) adjacent steps for k = len(e), O(k) extra memory.
func Canonicalize(e Element, sig Signature) (Element, int, error) {
	return canonicalizeInPlace(cloneElement(e), sig)
}

// canonicalizeInPlace is the cursor engine behind Canonicalize. It owns out
// outright: product loops that just concatenated two canonical elements
// skip the defensive copy.
func canonicalizeInPlace(out Element, sig Signature) (Element, int, error) {
	factor := 1

	i := 0
	for i < len(out)-1 {
		switch {
		case out[i] == out[i+1]: // repeated index -> contract through the metric
			sq, ok := sig.square(out[i])
			if !ok {
				return nil, 0, ErrMissingSignatureEntry
			}
			if sq < -1 || sq > 1 {
				return nil, 0, ErrBadSignature
			}
			factor *= sq
			out = append(out[:i], out[i+2:]...)
			if i > 0 {
				i-- // the indices newly adjacent across the gap may be out of order
			}
		case out[i] > out[i+1]: // descending -> swap, anticommute
			factor = -factor
			out[i], out[i+1] = out[i+1], out[i]
			if i > 0 {
				i-- // so we keep comparing this element
			}
		default: // ascending -> next pair
			i++
		}
	}

	return out, factor, nil
}
