// Package ga defines the value types and sentinel errors of the algebra.
package ga

import "errors"

// Element is a basis element of the algebra, written as the sequence of
// basis-vector indices it multiplies. The empty Element is the scalar unit.
//
// Canonical form (produced by Canonicalize and kept by every Multivector):
// indices strictly ascending, no repeats. Raw, unordered sequences are
// accepted anywhere an Element enters the package and are canonicalized
// on the way in.
//
// Examples:
//
//	Element{}        // 1   (scalar unit)
//	Element{2}       // e2
//	Element{1, 2}    // e12 == e1*e2
type Element []int

// Grade reports the number of basis vectors in e (0 for the scalar unit).
func (e Element) Grade() int { return len(e) }

// Blade is one weighted term of a multivector: Coeff * e_{Elem}.
type Blade struct {
	Coeff float64
	Elem  Element
}

// Signature describes the metric: for each basis-vector index, the square
// of that basis vector, which must be -1, 0 or +1.
//
// A nil Signature means "no metric supplied": every basis vector squares
// to +1. A non-nil Signature is authoritative — contracting an index it
// does not contain is ErrMissingSignatureEntry, even if the map is empty.
//
// Examples:
//
//	Signature{1: +1, 2: +1}                 // Euclidean plane
//	Signature{0: -1, 1: +1, 2: +1, 3: +1}   // spacetime, e0 = e_t
type Signature map[int]int

// Scalar is a plain real number in operand position. It lets mixed
// expressions such as v.Add(Scalar(2)) or v.Mul(Scalar(0.5)) stay typed:
// the only values an operation accepts are Scalar and Multivector.
type Scalar float64

// Operand is the closed set of operand kinds: Scalar or Multivector.
// The interface is sealed; no other type can satisfy it.
type Operand interface{ isOperand() }

func (Scalar) isOperand()      {}
func (Multivector) isOperand() {}

// Every message is prefixed with "ga: " for easy grepping. Sentinels are
// returned bare and matched with errors.Is; wrap with fmt.Errorf only at
// an outer boundary where extra context is essential.
var (
	// ErrSignatureMismatch is returned by binary operations whose two
	// multivector operands carry different signatures (nil and empty
	// count as different).
	ErrSignatureMismatch = errors.New("ga: signature mismatch")

	// ErrMissingSignatureEntry is returned when a contraction looks up a
	// basis-vector index that a non-nil signature does not define.
	ErrMissingSignatureEntry = errors.New("ga: missing signature entry")

	// ErrBadSignature is returned on construction when a signature is
	// malformed: a square outside {-1, 0, +1}, a negative vector count,
	// non-successive indices where a basis is generated, or a nil
	// signature where one is required.
	ErrBadSignature = errors.New("ga: invalid signature")

	// ErrNonInvertible is returned by Div, Inverse and negative Pow when
	// the divisor has no inverse under the reversion formula (its
	// self-product with its reverse is not a nonzero scalar). Division
	// by Scalar(0) reports the same condition.
	ErrNonInvertible = errors.New("ga: multivector has no inverse")

	// ErrNotScalar is returned by Float on a multivector that is not a
	// pure scalar (a single grade-0 blade or zero).
	ErrNotScalar = errors.New("ga: cannot convert to scalar")

	// ErrUngradedOperand is returned by Dot and Wedge when an operand
	// mixes grades or has none (the zero multivector); both products are
	// grade projections and need one grade per side.
	ErrUngradedOperand = errors.New("ga: operand is not a single grade")
)

// Panic messages for the sealed-union switches (no magic strings).
// Operand is sealed, so reaching any of these is a programmer error.
const (
	panicOperandTermsBadKind = "ga: operandTerms: operand is neither Scalar nor Multivector"
	panicDivBadKind          = "ga: Div: operand is neither Scalar nor Multivector"
	panicEqualBadKind        = "ga: Equal: operand is neither Scalar nor Multivector"
)

// square resolves the metric square of index i: +1 under a nil signature,
// the stored value otherwise. ok is false when a non-nil signature lacks i.
func (s Signature) square(i int) (factor int, ok bool) {
	if s == nil {
		return 1, true
	}
	factor, ok = s[i]

	return factor, ok
}

// validate checks that every square is -1, 0 or +1. A nil signature is valid.
func (s Signature) validate() error {
	for _, sq := range s {
		if sq < -1 || sq > 1 {
			return ErrBadSignature
		}
	}

	return nil
}

// clone returns an independent copy of s, preserving nil-ness.
func (s Signature) clone() Signature {
	if s == nil {
		return nil
	}
	out := make(Signature, len(s))
	for i, sq := range s {
		out[i] = sq
	}

	return out
}

// sigEqual reports whether two signatures are the same metric.
// nil equals only nil: "no signature" and "empty signature" differ.
func sigEqual(a, b Signature) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	if len(a) != len(b) {
		return false
	}
	for i, sq := range a {
		got, ok := b[i]
		if !ok || got != sq {
			return false
		}
	}

	return true
}

// cloneElement returns an independent copy of e.
func cloneElement(e Element) Element {
	out := make(Element, len(e))
	copy(out, e)

	return out
}

// sameElement reports whether a and b name the same basis element.
func sameElement(a, b Element) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// elementLess orders basis elements by grade first, then lexicographically
// by index. This is the term order every simplified multivector keeps.
func elementLess(a, b Element) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}

// cloneBlades deep-copies a blade list, including each backing element.
func cloneBlades(blades []Blade) []Blade {
	out := make([]Blade, len(blades))
	for i, b := range blades {
		out[i] = Blade{Coeff: b.Coeff, Elem: cloneElement(b.Elem)}
	}

	return out
}
