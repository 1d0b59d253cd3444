// SPDX-License-Identifier: MIT
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

package decaf377

// Element is a point on the embedded twisted Edwards curve in extended
// projective coordinates (X : Y : Z : T), with x = X/Z, y = Y/Z and
// T = XY/Z. Extended coordinates let Add and Double avoid any field
// inversion, at the cost of carrying the extra T coordinate; the formulas
// below are the standard Hisil-Wong-Carter-Dawson "extended" additions,
// generalized over the curve's a and d parameters rather than hardcoding
// a = -1, per the Field / curve-parameter-block / Decaf layering called
// for in DESIGN.md. Grounded on the teacher's Point type in point.go, which
// implements the same shape of formulas for edwards25519's curve.
//
// Element values are NOT guaranteed to be the canonical Decaf
// representative of their coset; they represent a raw point on the curve.
// Decaf equivalence is Equal below; encoding lives in encoding.go.
type Element struct {
	X, Y, Z, T Fq
}

// newElementFromAffineUnchecked builds an extended-coordinate point from
// affine (x, y), without checking the curve equation. Used for constants
// and internally by routines that have already established the point is
// on the curve.
func newElementFromAffineUnchecked(x, y Fq) Element {
	return Element{X: x, Y: y, Z: FqOne(), T: x.Mul(y)}
}

// IsOnCurve reports whether e satisfies -x^2 + y^2 = 1 + d*x^2*y^2 in
// affine coordinates, i.e. whether it is a valid point of the embedded
// twisted Edwards curve (not necessarily canonical under Decaf
// equivalence).
func (e Element) IsOnCurve() bool {
	x, y := e.toAffineUnchecked()
	x2 := x.Square()
	y2 := y.Square()
	lhs := curveA.Mul(x2).Add(y2)
	rhs := FqOne().Add(curveD.Mul(x2).Mul(y2))
	return lhs.Equal(rhs)
}

// ToAffine converts e to affine (x, y) coordinates by dividing through by
// Z. Panics-free: a zero Z (only possible for a malformed Element) yields
// (0, 1), matching toAffineUnchecked's fallback.
func (e Element) ToAffine() (Fq, Fq) {
	return e.toAffineUnchecked()
}

// toAffineUnchecked divides through by Z without checking the curve
// equation. A zero Z, only possible for a malformed Element (which never
// arises from this package's own constructors), yields (0, 1).
func (e Element) toAffineUnchecked() (Fq, Fq) {
	zInv, err := e.Z.Invert()
	if err != nil {
		return FqZero(), FqOne()
	}
	return e.X.Mul(zInv), e.Y.Mul(zInv)
}

// Add returns e + other.
func (e Element) Add(other Element) Element {
	a := e.X.Mul(other.X)
	b := e.Y.Mul(other.Y)
	c := curveD.Mul(e.T).Mul(other.T)
	d := e.Z.Mul(other.Z)
	exy := e.X.Add(e.Y).Mul(other.X.Add(other.Y)).Sub(a).Sub(b)
	f := d.Sub(c)
	g := d.Add(c)
	h := b.Sub(curveA.Mul(a))
	return Element{
		X: exy.Mul(f),
		Y: g.Mul(h),
		T: exy.Mul(h),
		Z: f.Mul(g),
	}
}

// Double returns e + e, via the dedicated doubling formula.
func (e Element) Double() Element {
	a := e.X.Square()
	b := e.Y.Square()
	c := e.Z.Square().Add(e.Z.Square())
	dd := curveA.Mul(a)
	exy := e.X.Add(e.Y).Square().Sub(a).Sub(b)
	g := dd.Add(b)
	f := g.Sub(c)
	h := dd.Sub(b)
	return Element{
		X: exy.Mul(f),
		Y: g.Mul(h),
		T: exy.Mul(h),
		Z: f.Mul(g),
	}
}

// Negate returns -e.
func (e Element) Negate() Element {
	return Element{X: e.X.Neg(), Y: e.Y, Z: e.Z, T: e.T.Neg()}
}

// Sub returns e - other.
func (e Element) Sub(other Element) Element {
	return e.Add(other.Negate())
}

// Equal reports whether e and other represent the same Decaf coset, via
// the Decaf equivalence X1*Y2 == X2*Y1 (§3 / §4.G / P3), not pointwise
// projective coordinate equality: two different extended-coordinate
// representatives of the same coset must compare equal. Grounded on the
// teacher's IsEqual in point.go.
func (e Element) Equal(other Element) bool {
	lhs := e.X.Mul(other.Y)
	rhs := other.X.Mul(e.Y)
	return lhs.Equal(rhs)
}

// ScalarMult returns [s]e via constant-structure double-and-add over the
// bits of s's canonical representative, most significant bit first. The
// number of iterations depends only on the bit length of Fr's modulus, not
// on s's value, per the constant-time discipline in §5.
func (e Element) ScalarMult(s Fr) Element {
	acc := Identity()
	for i := frB - 1; i >= 0; i-- {
		acc = acc.Double()
		bit := s.bit(i)
		sum := acc.Add(e)
		acc = selectElement(bit == 1, sum, acc)
	}
	return acc
}

// selectElement returns a if cond, else b. Both branches are always
// computed by the caller; this only selects the result, so ScalarMult's
// timing does not depend on the scalar's bits.
func selectElement(cond bool, a, b Element) Element {
	if cond {
		return a
	}
	return b
}

// NormalizeBatch converts a slice of Elements to affine (x, y) coordinates
// using Montgomery's trick: a single field inversion amortized across the
// whole batch, rather than one inversion per element. Ported from the
// batch-inversion pattern in mleku-p256k1/field.go's batchInverse, since
// the teacher's own Point type only ever normalizes one point at a time
// and batch normalization is a named operation of the group layer.
func NormalizeBatch(elements []Element) []AffineElement {
	n := len(elements)
	out := make([]AffineElement, n)
	if n == 0 {
		return out
	}

	prefix := make([]Fq, n)
	acc := FqOne()
	for i, e := range elements {
		prefix[i] = acc
		acc = acc.Mul(e.Z)
	}

	accInv, err := acc.Invert()
	if err != nil {
		// A zero Z among the batch means a malformed Element; fall back
		// to per-element inversion for that entry only.
		for i, e := range elements {
			x, y := e.toAffineUnchecked()
			out[i] = AffineElement{X: x, Y: y}
		}
		return out
	}

	for i := n - 1; i >= 0; i-- {
		zInv := accInv.Mul(prefix[i])
		out[i] = AffineElement{X: elements[i].X.Mul(zInv), Y: elements[i].Y.Mul(zInv)}
		accInv = accInv.Mul(elements[i].Z)
	}
	return out
}
