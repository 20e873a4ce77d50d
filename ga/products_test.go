package ga_test

import (
	"testing"

	"github.com/katalvlaran/lvlga/ga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// vec builds a grade-1 multivector a*e1 + b*e2 with no signature.
func vec(t *testing.T, a, b float64) ga.Multivector {
	t.Helper()

	return mv(t, []ga.Blade{
		{Coeff: a, Elem: ga.Element{1}},
		{Coeff: b, Elem: ga.Element{2}},
	}, nil)
}

// TestDot_Vectors verifies the inner product of plane vectors is the
// familiar scalar: (2e1 + 3e2) · (4e1 + 5e2) = 23.
func TestDot_Vectors(t *testing.T) {
	a := vec(t, 2, 3)
	b := vec(t, 4, 5)

	d, err := ga.Dot(a, b)
	require.NoError(t, err)
	assert.True(t, d.Equal(ga.Scalar(23)))
}

// TestDot_VectorBivector verifies the mixed-grade projection rule:
// e1 · e12 keeps the grade |1-2| = 1 part, e2.
func TestDot_VectorBivector(t *testing.T) {
	e1 := mv(t, []ga.Blade{{Coeff: 1, Elem: ga.Element{1}}}, nil)
	e12 := mv(t, []ga.Blade{{Coeff: 1, Elem: ga.Element{1, 2}}}, nil)

	d, err := ga.Dot(e1, e12)
	require.NoError(t, err)
	assert.Equal(t, "e2", d.String())
}

// TestDot_ScalarOperand verifies grade-0 operands are legal: the target
// grade is just the other operand's.
func TestDot_ScalarOperand(t *testing.T) {
	two := mv(t, []ga.Blade{{Coeff: 2, Elem: ga.Element{}}}, nil)
	b := vec(t, 1, 1)

	d, err := ga.Dot(two, b)
	require.NoError(t, err)
	assert.Equal(t, "2*e1 + 2*e2", d.String())
}

// TestDot_UngradedOperand verifies mixed-grade and zero operands are
// rejected: the projection target would be undefined.
func TestDot_UngradedOperand(t *testing.T) {
	mixed := rotor(t) // 3 + 4*e12: grades 0 and 2
	b := vec(t, 1, 1)

	_, err := ga.Dot(mixed, b)
	assert.ErrorIs(t, err, ga.ErrUngradedOperand)
	_, err = ga.Dot(b, mixed)
	assert.ErrorIs(t, err, ga.ErrUngradedOperand)

	var zero ga.Multivector
	_, err = ga.Dot(zero, b)
	assert.ErrorIs(t, err, ga.ErrUngradedOperand, "zero has no grade to project from")
}

// TestWedge_Vectors verifies the oriented area: (2e1 + 3e2) ∧ (4e1 + 5e2)
// spans -2*e12, the determinant of the pair.
func TestWedge_Vectors(t *testing.T) {
	a := vec(t, 2, 3)
	b := vec(t, 4, 5)

	w, err := ga.Wedge(a, b)
	require.NoError(t, err)
	assert.Equal(t, "-2*e12", w.String())
}

// TestWedge_SelfVanishes verifies v ∧ v = 0.
func TestWedge_SelfVanishes(t *testing.T) {
	a := vec(t, 2, 3)

	w, err := ga.Wedge(a, a)
	require.NoError(t, err)
	assert.True(t, w.IsZero())
}

// TestWedge_SharedVectorVanishes verifies a wedge with a common factor
// vanishes: e1 ∧ e12 = 0.
func TestWedge_SharedVectorVanishes(t *testing.T) {
	e1 := mv(t, []ga.Blade{{Coeff: 1, Elem: ga.Element{1}}}, nil)
	e12 := mv(t, []ga.Blade{{Coeff: 1, Elem: ga.Element{1, 2}}}, nil)

	w, err := ga.Wedge(e1, e12)
	require.NoError(t, err)
	assert.True(t, w.IsZero())
}

// TestWedge_BuildsPseudoscalar verifies e1 ∧ e23 = e123.
func TestWedge_BuildsPseudoscalar(t *testing.T) {
	e1 := mv(t, []ga.Blade{{Coeff: 1, Elem: ga.Element{1}}}, nil)
	e23 := mv(t, []ga.Blade{{Coeff: 1, Elem: ga.Element{2, 3}}}, nil)

	w, err := ga.Wedge(e1, e23)
	require.NoError(t, err)
	assert.Equal(t, "e123", w.String())
}

// TestWedge_UngradedOperand verifies the homogeneity rule mirrors Dot's.
func TestWedge_UngradedOperand(t *testing.T) {
	mixed := rotor(t)
	b := vec(t, 1, 1)

	_, err := ga.Wedge(mixed, b)
	assert.ErrorIs(t, err, ga.ErrUngradedOperand)
}

// TestCommutator_AnticommutingVectors verifies ½(ab - ba) recovers the
// full product of anticommuting factors: ½(e1e2 - e2e1) = e12.
func TestCommutator_AnticommutingVectors(t *testing.T) {
	e1 := mv(t, []ga.Blade{{Coeff: 1, Elem: ga.Element{1}}}, nil)
	e2 := mv(t, []ga.Blade{{Coeff: 1, Elem: ga.Element{2}}}, nil)

	c, err := ga.Commutator(e1, e2)
	require.NoError(t, err)
	assert.Equal(t, "e12", c.String())
}

// TestCommutator_CommutingVanishes verifies scalars commute with
// everything, so the commutator vanishes.
func TestCommutator_CommutingVanishes(t *testing.T) {
	s := mv(t, []ga.Blade{{Coeff: 5, Elem: ga.Element{}}}, nil)
	v := rotor(t)

	c, err := ga.Commutator(s, v)
	require.NoError(t, err)
	assert.True(t, c.IsZero())

	// and anything commutes with itself
	c, err = ga.Commutator(v, v)
	require.NoError(t, err)
	assert.True(t, c.IsZero())
}

// TestCommutator_MixedGradesAllowed verifies the commutator, unlike Dot
// and Wedge, takes inhomogeneous operands.
func TestCommutator_MixedGradesAllowed(t *testing.T) {
	v := rotor(t) // 3 + 4*e12
	e1 := mv(t, []ga.Blade{{Coeff: 1, Elem: ga.Element{1}}}, nil)

	c, err := ga.Commutator(v, e1)
	require.NoError(t, err)
	assert.Equal(t, "-4*e2", c.String())
}

// TestProducts_SignatureMismatch verifies the underlying product's
// signature check reaches the derived products.
func TestProducts_SignatureMismatch(t *testing.T) {
	a := mv(t, []ga.Blade{{Coeff: 1, Elem: ga.Element{1}}}, nil)
	b := mv(t, []ga.Blade{{Coeff: 1, Elem: ga.Element{1}}}, euclid2(t))

	_, err := ga.Dot(a, b)
	assert.ErrorIs(t, err, ga.ErrSignatureMismatch)
	_, err = ga.Wedge(a, b)
	assert.ErrorIs(t, err, ga.ErrSignatureMismatch)
	_, err = ga.Commutator(a, b)
	assert.ErrorIs(t, err, ga.ErrSignatureMismatch)
}
