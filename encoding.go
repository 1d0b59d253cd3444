// SPDX-License-Identifier: MIT
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

package decaf377

// aMinusD is the curve constant (a - d) used by Encode and Decode below;
// unlike decaf448 this curve's Encode/Decode need no SQRT_MINUS_D constant
// at all, per spec §4.E.
var aMinusD = curveA.Sub(curveD)

// reverseBytes returns a reversed copy of b, used to convert between this
// package's little-endian wire format and math/big's big-endian Bytes().
func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out
}

// Encode returns the canonical 32-byte little-endian encoding of e's Decaf
// coset: the unique representative field element s such that decoding s
// yields a point equal to e under Decaf equivalence, for any extended
// representative of that coset. Implements §4.E's compress_to_field for
// a = -1, grounded on the teacher's Encode in decaf.go but following the
// distinct decaf377 formula (no SQRT_MINUS_D constant; the ratio is taken
// directly against (a - d)), per original_source/src/ark_curve/r1cs/inner.rs.
func (e Element) Encode() [32]byte {
	u1 := e.X.Add(e.T).Mul(e.X.Sub(e.T))

	ratioDen := u1.Mul(aMinusD).Mul(e.X.Square())
	_, v := SqrtRatioZeta(FqOne(), ratioDen)

	u2 := v.Mul(u1).Abs()
	u3 := u2.Mul(e.Z).Sub(e.T)

	s := aMinusD.Mul(v).Mul(u3).Mul(e.X).Abs()

	return s.ToLEBytes()
}

// Decode decodes the canonical 32-byte little-endian encoding produced by
// Encode, returning ErrNonCanonicalBytes if s is not the canonical
// representative of an Fq element, ErrNegativeEncoding if s is negative in
// the §4.E sign convention, and ErrNotInImage if s does not correspond to
// any Decaf element. Implements §4.E's vartime_decompress, grounded on the
// teacher's Decode in decaf.go but following the distinct decaf377 formula
// (u1 = 1 - s^2, no SQRT_MINUS_D constant), per
// original_source/src/ark_curve/r1cs/inner.rs:50-99.
func Decode(input [32]byte) (Element, error) {
	s, err := FqFromLEBytes(input[:])
	if err != nil {
		return Element{}, err
	}
	if s.IsNegative() {
		return Element{}, ErrNegativeEncoding
	}

	ss := s.Square()
	u1 := FqOne().Sub(ss)

	four := fqFromUint64(4)
	u2 := u1.Square().Sub(four.Mul(curveD).Mul(ss))

	wasSquare, v := SqrtRatioZeta(FqOne(), u2.Mul(u1.Square()))
	if !wasSquare {
		return Element{}, ErrNotInImage
	}

	two := fqFromUint64(2)
	twoSU1 := two.Mul(s).Mul(u1)
	if twoSU1.Mul(v).IsNegative() {
		v = v.Neg()
	}

	x := twoSU1.Mul(v.Square()).Mul(u2)
	y := FqOne().Add(ss).Mul(v).Mul(u1)
	t := x.Mul(y)

	return Element{X: x, Y: y, Z: FqOne(), T: t}, nil
}
