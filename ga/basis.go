package ga

// NewSignature returns the metric of the algebra usually written
// Cl(p,q,r): p basis vectors squaring to +1, then q squaring to -1, then
// r squaring to 0, indexed from 1 upward.
//
//	NewSignature(2, 0, 0)  // Euclidean plane: e1²=e2²=+1
//	NewSignature(1, 3, 0)  // particle-physics spacetime: +,-,-,-
//	NewSignature(3, 0, 1)  // 3D projective (PGA): one null direction
func NewSignature(p, q, r int) (Signature, error) {
	return NewSignatureAt(1, p, q, r)
}

// NewSignatureAt is NewSignature with the first basis vector at index
// start, for conventions that number from 0 (relativists like e0 = e_t).
// A negative count is ErrBadSignature.
func NewSignatureAt(start, p, q, r int) (Signature, error) {
	if p < 0 || q < 0 || r < 0 {
		return nil, ErrBadSignature
	}

	sig := make(Signature, p+q+r)
	i := start
	for k := 0; k < p; k++ {
		sig[i] = 1
		i++
	}
	for k := 0; k < q; k++ {
		sig[i] = -1
		i++
	}
	for k := 0; k < r; k++ {
		sig[i] = 0
		i++
	}

	return sig, nil
}

// Basis returns all 2ⁿ basis blades of the n-vector algebra sig
// describes, each a single unit term carrying sig: the scalar 1 first,
// then every vector, every bivector, ... up to the pseudoscalar —
// grade-major, lexicographic inside each grade.
//
// The indices of sig must be successive numbers (the walk runs from the
// smallest); gaps, a square outside {-1, 0, +1}, or a nil signature are
// ErrBadSignature. An empty signature yields just the scalar.
//
// Complexity: O(n·2ⁿ) — the output itself is that big.
func Basis(sig Signature) ([]Multivector, error) {
	if sig == nil {
		return nil, ErrBadSignature
	}
	if err := sig.validate(); err != nil {
		return nil, err
	}

	n := len(sig)
	start, first := 0, true
	for i := range sig {
		if first || i < start {
			start, first = i, false
		}
	}
	// basis vectors have to be successive numbers
	for i := start; i < start+n; i++ {
		if _, ok := sig[i]; !ok {
			return nil, ErrBadSignature
		}
	}

	owned := sig.clone() // one copy, shared read-only by every blade
	out := make([]Multivector, 0, 1<<n)
	for e := (Element{}); e != nil; e = nextElement(e, n, start) {
		out = append(out, Multivector{
			blades: []Blade{{Coeff: 1, Elem: e}},
			sig:    owned,
		})
	}

	return out, nil
}

// isLast reports whether e closes its grade: each index already sits at
// its maximum, the run start+n-len(e) .. start+n-1.
func isLast(e Element, n, start int) bool {
	for i := range e {
		if e[i] != start+n-len(e)+i {
			return false
		}
	}

	return true
}

// nextElement returns the canonical element following e in grade-major,
// lexicographic order over n basis vectors, or nil once the pseudoscalar
// is done. e itself is never touched.
func nextElement(e Element, n, start int) Element {
	if isLast(e, n, start) {
		if len(e) == n {
			return nil // the pseudoscalar closes the walk
		}

		// open the next grade with the lowest run: start, start+1, ...
		next := make(Element, len(e)+1)
		for i := range next {
			next[i] = start + i
		}

		return next
	}

	next := cloneElement(e)

	// last position that doesn't contain its maximum possible value
	pos := len(next) - 1
	for next[pos] == start+n-(len(next)-pos) {
		pos--
	}

	next[pos]++ // increment at that position
	for i := pos + 1; i < len(next); i++ {
		next[i] = next[i-1] + 1 // and make the following ones follow up
	}

	return next
}
