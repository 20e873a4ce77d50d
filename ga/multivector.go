package ga

import (
	"strconv"
	"strings"
)

// Multivector is a sum of weighted basis elements under one metric
// signature — the single value type of the algebra.
//
// A Multivector is immutable: every operation returns a fresh value and
// accessors hand out copies, so any value can be shared across goroutines
// without locks. Its term list is always simplified (no zero terms, one
// term per basis element, grade-major then lexicographic order) and every
// element is canonical.
//
// The zero value is the zero multivector with no signature.
type Multivector struct {
	blades []Blade
	sig    Signature
}

// New builds a multivector from raw terms under the given signature.
//
// Raw elements may repeat or disorder indices: each one runs through
// Canonicalize (its sign or null factor folds into the coefficient) and
// the resulting terms through Simplify, so e21 and -1*e12 meet as one
// term. A nil signature means every basis vector squares to +1.
//
// Returns ErrBadSignature for a square outside {-1, 0, +1}, and
// ErrMissingSignatureEntry when a repeated index is missing from a
// non-nil signature. The input and the signature are copied, never kept.
func New(blades []Blade, sig Signature) (Multivector, error) {
	if err := sig.validate(); err != nil {
		return Multivector{}, err
	}

	canon := make([]Blade, 0, len(blades))
	for _, b := range blades {
		elem, factor, err := Canonicalize(b.Elem, sig)
		if err != nil {
			return Multivector{}, err
		}
		canon = append(canon, Blade{Coeff: float64(factor) * b.Coeff, Elem: elem})
	}

	return Multivector{blades: simplifyInPlace(canon), sig: sig.clone()}, nil
}

// fromCanonical assembles a multivector from terms whose elements are
// already canonical, simplifying in place. The caller hands over blades
// and shares sig; both must never be written to again.
func fromCanonical(blades []Blade, sig Signature) Multivector {
	return Multivector{blades: simplifyInPlace(blades), sig: sig}
}

// Blades returns a deep copy of the simplified term list, in grade-major
// then lexicographic order. The zero multivector returns an empty list.
func (m Multivector) Blades() []Blade { return cloneBlades(m.blades) }

// Signature returns a copy of the metric, nil when none was supplied.
func (m Multivector) Signature() Signature { return m.sig.clone() }

// IsZero reports whether m has no terms.
func (m Multivector) IsZero() bool { return len(m.blades) == 0 }

// Float returns the value of a pure scalar multivector; the zero
// multivector converts to 0. Any non-scalar term is ErrNotScalar.
func (m Multivector) Float() (float64, error) {
	switch {
	case len(m.blades) == 0:
		return 0, nil
	case len(m.blades) == 1 && len(m.blades[0].Elem) == 0:
		return m.blades[0].Coeff, nil
	default:
		return 0, ErrNotScalar
	}
}

// Equal reports whether m and v hold the same value.
//
// Against a Scalar it holds iff m is a pure scalar (or zero) of exactly
// that value. Against a Multivector it needs identical term lists and the
// same signature — mismatched signatures compare unequal, never error.
func (m Multivector) Equal(v Operand) bool {
	switch w := v.(type) {
	case Scalar:
		f, err := m.Float()

		return err == nil && f == float64(w)
	case Multivector:
		if !sigEqual(m.sig, w.sig) || len(m.blades) != len(w.blades) {
			return false
		}
		for i := range m.blades {
			if m.blades[i].Coeff != w.blades[i].Coeff ||
				!sameElement(m.blades[i].Elem, w.blades[i].Elem) {
				return false
			}
		}

		return true
	default:
		panic(panicEqualBadKind)
	}
}

// String renders m in e-notation: terms joined by " + ", each term a
// coefficient and a basis part "e" plus its indices run together.
//
//	0                      // zero multivector
//	1.5 + 2*e12            // coefficient shown with '*'
//	e12                    // coefficient 1 hides on non-scalar terms
//	1 + -3*e12             // negatives keep the " + " join
func (m Multivector) String() string {
	if len(m.blades) == 0 {
		return "0"
	}

	parts := make([]string, len(m.blades))
	for i, b := range m.blades {
		parts[i] = bladeString(b)
	}

	return strings.Join(parts, " + ")
}

// bladeString renders a single term.
func bladeString(b Blade) string {
	showE := len(b.Elem) != 0       // show the basis element, except for scalars
	showX := b.Coeff != 1 || !showE // do not show the coefficient if just 1

	var sb strings.Builder
	if showX {
		sb.WriteString(strconv.FormatFloat(b.Coeff, 'g', -1, 64))
	}
	if showX && showE {
		sb.WriteByte('*')
	}
	if showE {
		sb.WriteByte('e')
		for _, idx := range b.Elem {
			sb.WriteString(strconv.Itoa(idx))
		}
	}

	return sb.String()
}
