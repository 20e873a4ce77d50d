package ga

// gradeSigned returns m with each term's coefficient negated whenever
// negate(grade) holds. The three involutions share this walk; sign flips
// keep the normal form, so no re-simplify.
func (m Multivector) gradeSigned(negate func(r int) bool) Multivector {
	out := make([]Blade, len(m.blades))
	for i, b := range m.blades {
		c := b.Coeff
		if negate(len(b.Elem)) {
			c = -c
		}
		out[i] = Blade{Coeff: c, Elem: b.Elem}
	}

	return Multivector{blades: out, sig: m.sig}
}

// Reverse returns the reversion of m: each grade-r term picks up the sign
// (-1)^(r(r-1)/2), so grades 2, 3, 6, 7, ... negate. Writing a basis
// element's vectors in the opposite order costs exactly that sign.
func (m Multivector) Reverse() Multivector {
	return m.gradeSigned(func(r int) bool { return (r / 2 % 2) == 1 })
}

// GradeInvolution returns the main automorphism of m: every odd-grade
// term negated, the sign (-1)^r of reflecting all basis vectors.
func (m Multivector) GradeInvolution() Multivector {
	return m.gradeSigned(func(r int) bool { return (r % 2) == 1 })
}

// Conjugate returns the Clifford conjugation of m — reversion composed
// with grade involution, the sign (-1)^(r(r+1)/2): grades 1, 2, 5, 6, ...
// negate.
func (m Multivector) Conjugate() Multivector {
	return m.gradeSigned(func(r int) bool { return ((r + 1) / 2 % 2) == 1 })
}

// Grade returns the grade-r part of m, the projection ⟨m⟩ᵣ: only the
// terms whose basis elements hold exactly r vectors, under m's signature.
// A grade m does not contain (negative r included) projects to zero.
func (m Multivector) Grade(r int) Multivector {
	out := make([]Blade, 0, len(m.blades))
	for _, b := range m.blades {
		if len(b.Elem) == r {
			out = append(out, b)
		}
	}

	return Multivector{blades: out, sig: m.sig}
}

// Grades returns the ascending list of grades present in m, one entry per
// grade, empty for the zero multivector. Terms sit in grade-major order,
// so adjacent duplicates are the only ones to skip.
func (m Multivector) Grades() []int {
	out := make([]int, 0, len(m.blades))
	for _, b := range m.blades {
		r := len(b.Elem)
		if len(out) == 0 || out[len(out)-1] != r {
			out = append(out, r)
		}
	}

	return out
}
