package ga

// operandTerms coerces v into a term list compatible with m's signature.
// A Scalar becomes a single grade-0 term; a Multivector must carry m's
// exact signature or the coercion is ErrSignatureMismatch. The returned
// slice is shared and read-only.
func (m Multivector) operandTerms(v Operand) ([]Blade, error) {
	switch w := v.(type) {
	case Scalar:
		return []Blade{{Coeff: float64(w), Elem: Element{}}}, nil
	case Multivector:
		if !sigEqual(m.sig, w.sig) {
			return nil, ErrSignatureMismatch
		}

		return w.blades, nil
	default:
		panic(panicOperandTermsBadKind)
	}
}

// Add returns m + v, simplified. Adding a Scalar adds a grade-0 term;
// adding a Multivector with a different signature is ErrSignatureMismatch.
func (m Multivector) Add(v Operand) (Multivector, error) {
	terms, err := m.operandTerms(v)
	if err != nil {
		return Multivector{}, err
	}

	sum := make([]Blade, 0, len(m.blades)+len(terms))
	sum = append(sum, m.blades...)
	sum = append(sum, terms...)

	return fromCanonical(sum, m.sig), nil
}

// Sub returns m - v. Same operand rules as Add.
func (m Multivector) Sub(v Operand) (Multivector, error) {
	terms, err := m.operandTerms(v)
	if err != nil {
		return Multivector{}, err
	}

	diff := make([]Blade, 0, len(m.blades)+len(terms))
	diff = append(diff, m.blades...)
	for _, b := range terms {
		diff = append(diff, Blade{Coeff: -b.Coeff, Elem: b.Elem})
	}

	return fromCanonical(diff, m.sig), nil
}

// Neg returns -m.
func (m Multivector) Neg() Multivector {
	out := make([]Blade, len(m.blades))
	for i, b := range m.blades {
		out[i] = Blade{Coeff: -b.Coeff, Elem: b.Elem}
	}

	// negation keeps the normal form, no re-simplify needed
	return Multivector{blades: out, sig: m.sig}
}

// scale returns m with every coefficient multiplied by f.
func (m Multivector) scale(f float64) Multivector {
	out := make([]Blade, 0, len(m.blades))
	for _, b := range m.blades {
		out = append(out, Blade{Coeff: f * b.Coeff, Elem: b.Elem})
	}

	return fromCanonical(out, m.sig)
}

// Mul returns the geometric product m * v, simplified.
//
// Every pair of terms multiplies by concatenating its basis elements and
// canonicalizing the result under m's signature, so anticommutation signs
// and metric contractions fall out of the one engine. A Scalar operand is
// a grade-0 term; a null contraction (square 0) erases its pair.
//
// Returns ErrSignatureMismatch for a foreign-signature operand and
// ErrMissingSignatureEntry when a contraction meets an index the (non-nil)
// signature does not define — the index domain is checked at product time,
// not at construction.
//
// Complexity: O(p·q·k²) for p, q terms and elements of length k.
func (m Multivector) Mul(v Operand) (Multivector, error) {
	terms, err := m.operandTerms(v)
	if err != nil {
		return Multivector{}, err
	}

	prod := make([]Blade, 0, len(m.blades)*len(terms))
	for _, a := range m.blades {
		for _, b := range terms {
			concat := make(Element, 0, len(a.Elem)+len(b.Elem))
			concat = append(concat, a.Elem...)
			concat = append(concat, b.Elem...)

			elem, factor, err := canonicalizeInPlace(concat, m.sig)
			if err != nil {
				return Multivector{}, err
			}
			prod = append(prod, Blade{Coeff: float64(factor) * a.Coeff * b.Coeff, Elem: elem})
		}
	}

	return fromCanonical(prod, m.sig), nil
}

// Div returns m / v.
//
// A Scalar divisor multiplies by its reciprocal; Scalar(0) is
// ErrNonInvertible. A Multivector divisor goes through Inverse, so the
// same reversion-formula conditions apply.
func (m Multivector) Div(v Operand) (Multivector, error) {
	switch w := v.(type) {
	case Scalar:
		if float64(w) == 0 {
			return Multivector{}, ErrNonInvertible
		}

		return m.scale(1 / float64(w)), nil
	case Multivector:
		if !sigEqual(m.sig, w.sig) {
			return Multivector{}, ErrSignatureMismatch
		}
		inv, err := w.Inverse()
		if err != nil {
			return Multivector{}, err
		}

		return m.Mul(inv)
	default:
		panic(panicDivBadKind)
	}
}

// Inverse returns m⁻¹ by the reversion formula: reverse(m) scaled by the
// reciprocal of the scalar m * reverse(m).
//
// When that self-product is not a pure scalar, or is zero (null blades,
// zero multivector), there is no inverse under this formula and the
// result is ErrNonInvertible.
func (m Multivector) Inverse() (Multivector, error) {
	r := m.Reverse()
	selfProd, err := m.Mul(r)
	if err != nil {
		return Multivector{}, err
	}

	norm2, err := selfProd.Float()
	if err != nil || norm2 == 0 {
		return Multivector{}, ErrNonInvertible
	}

	return r.scale(1 / norm2), nil
}

// Pow returns mⁿ for integer n by repeated geometric products. m⁰ is the
// scalar 1 carrying m's signature; negative n inverts the |n|-th power,
// so it shares Inverse's ErrNonInvertible conditions.
func (m Multivector) Pow(n int) (Multivector, error) {
	abs := n
	if abs < 0 {
		abs = -abs
	}

	v := Multivector{blades: []Blade{{Coeff: 1, Elem: Element{}}}, sig: m.sig}
	var err error
	for i := 0; i < abs; i++ {
		if v, err = v.Mul(m); err != nil {
			return Multivector{}, err
		}
	}

	if n >= 0 {
		return v, nil
	}

	return v.Inverse()
}
