package ga_test

import (
	"testing"

	"github.com/katalvlaran/lvlga/ga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gradeSample is 1 + 2*e1 + 3*e12 + 4*e123: one term of each grade 0..3.
func gradeSample(t *testing.T) ga.Multivector {
	t.Helper()

	return mv(t, []ga.Blade{
		{Coeff: 1, Elem: ga.Element{}},
		{Coeff: 2, Elem: ga.Element{1}},
		{Coeff: 3, Elem: ga.Element{1, 2}},
		{Coeff: 4, Elem: ga.Element{1, 2, 3}},
	}, nil)
}

// TestReverse verifies the reversion signs (-1)^(r(r-1)/2): grades 2 and 3
// negate, grades 0 and 1 hold.
func TestReverse(t *testing.T) {
	v := gradeSample(t)
	assert.Equal(t, "1 + 2*e1 + -3*e12 + -4*e123", v.Reverse().String())

	// the rotor case: ~(3 + 4*e12) = 3 - 4*e12
	r := rotor(t)
	assert.Equal(t, "3 + -4*e12", r.Reverse().String())
}

// TestReverse_Involution verifies reversing twice is the identity.
func TestReverse_Involution(t *testing.T) {
	v := gradeSample(t)
	assert.True(t, v.Reverse().Reverse().Equal(v))
}

// TestGradeInvolution verifies the main automorphism (-1)^r: odd grades
// negate.
func TestGradeInvolution(t *testing.T) {
	v := gradeSample(t)
	assert.Equal(t, "1 + -2*e1 + 3*e12 + -4*e123", v.GradeInvolution().String())
	assert.True(t, v.GradeInvolution().GradeInvolution().Equal(v))
}

// TestConjugate verifies Clifford conjugation (-1)^(r(r+1)/2): grades 1
// and 2 negate, and the operation equals grade involution after reversion.
func TestConjugate(t *testing.T) {
	v := gradeSample(t)
	assert.Equal(t, "1 + -2*e1 + -3*e12 + 4*e123", v.Conjugate().String())

	composed := v.Reverse().GradeInvolution()
	assert.True(t, v.Conjugate().Equal(composed), "conjugation = reversion ∘ grade involution")
}

// TestGrade projects every grade out of the mixed sample, absent and
// negative grades included.
func TestGrade(t *testing.T) {
	v := gradeSample(t)

	assert.Equal(t, "1", v.Grade(0).String())
	assert.Equal(t, "2*e1", v.Grade(1).String())
	assert.Equal(t, "3*e12", v.Grade(2).String())
	assert.Equal(t, "4*e123", v.Grade(3).String())
	assert.True(t, v.Grade(4).IsZero(), "absent grade projects to zero")
	assert.True(t, v.Grade(-1).IsZero(), "negative grade projects to zero")
}

// TestGrade_KeepsSignature verifies projection carries the metric along.
func TestGrade_KeepsSignature(t *testing.T) {
	sig := euclid2(t)
	v := mv(t, []ga.Blade{
		{Coeff: 1, Elem: ga.Element{1}},
		{Coeff: 2, Elem: ga.Element{1, 2}},
	}, sig)

	assert.Equal(t, sig, v.Grade(2).Signature())
}

// TestGrades verifies the grade census: present grades, ascending, once.
func TestGrades(t *testing.T) {
	v := gradeSample(t)
	assert.Equal(t, []int{0, 1, 2, 3}, v.Grades())

	m := mv(t, []ga.Blade{
		{Coeff: 1, Elem: ga.Element{1}},
		{Coeff: 2, Elem: ga.Element{2}},
		{Coeff: 3, Elem: ga.Element{1, 2}},
	}, nil)
	assert.Equal(t, []int{1, 2}, m.Grades(), "three terms, two grades")

	var zero ga.Multivector
	assert.Empty(t, zero.Grades())

	// the element-level view agrees
	assert.Equal(t, 2, ga.Element{1, 2}.Grade())
	assert.Equal(t, 0, ga.Element{}.Grade())
}

// TestReverse_NormSquare verifies v * ~v collapses to a pure scalar for
// a rotor — the property norms are built from.
func TestReverse_NormSquare(t *testing.T) {
	v := rotor(t)

	n2, err := v.Mul(v.Reverse())
	require.NoError(t, err)

	f, err := n2.Float()
	require.NoError(t, err)
	assert.Equal(t, 25.0, f)
}
