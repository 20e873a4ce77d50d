package ga

// singleGrade returns the one grade shared by every term of m.
// ErrUngradedOperand when m mixes grades or has none (the zero
// multivector).
func singleGrade(m Multivector) (int, error) {
	grades := m.Grades()
	if len(grades) != 1 {
		return 0, ErrUngradedOperand
	}

	return grades[0], nil
}

// Dot returns the dot (inner) product of a and b: the grade-|ra-rb| part
// of their geometric product, ra and rb being the operand grades.
//
// Both operands must be homogeneous — exactly one grade each, scalars
// (grade 0) included — otherwise the projection target is undefined and
// the result is ErrUngradedOperand. Signature errors from the underlying
// product pass through.
func Dot(a, b Multivector) (Multivector, error) {
	ra, err := singleGrade(a)
	if err != nil {
		return Multivector{}, err
	}
	rb, err := singleGrade(b)
	if err != nil {
		return Multivector{}, err
	}

	prod, err := a.Mul(b)
	if err != nil {
		return Multivector{}, err
	}

	target := ra - rb
	if target < 0 {
		target = -target
	}

	return prod.Grade(target), nil
}

// Wedge returns the wedge (exterior) product of a and b: the grade-(ra+rb)
// part of their geometric product. Same homogeneity rule as Dot; the
// result is zero whenever the operands share a basis vector.
func Wedge(a, b Multivector) (Multivector, error) {
	ra, err := singleGrade(a)
	if err != nil {
		return Multivector{}, err
	}
	rb, err := singleGrade(b)
	if err != nil {
		return Multivector{}, err
	}

	prod, err := a.Mul(b)
	if err != nil {
		return Multivector{}, err
	}

	return prod.Grade(ra + rb), nil
}

// Commutator returns (ab - ba)/2, the commutator product. No homogeneity
// requirement; it vanishes exactly when a and b commute.
func Commutator(a, b Multivector) (Multivector, error) {
	ab, err := a.Mul(b)
	if err != nil {
		return Multivector{}, err
	}
	ba, err := b.Mul(a)
	if err != nil {
		return Multivector{}, err
	}

	diff, err := ab.Sub(ba)
	if err != nil {
		return Multivector{}, err
	}

	return diff.scale(0.5), nil
}
