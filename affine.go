// SPDX-License-Identifier: MIT
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

package decaf377

// AffineElement is a point on the embedded twisted Edwards curve in plain
// (x, y) affine coordinates, used as the output of batch normalization
// (NormalizeBatch).
type AffineElement struct {
	X, Y Fq
}

// ToExtended lifts a to extended projective coordinates with Z = 1.
func (a AffineElement) ToExtended() Element {
	return newElementFromAffineUnchecked(a.X, a.Y)
}

// IsOnCurve reports whether a satisfies the curve equation.
func (a AffineElement) IsOnCurve() bool {
	return a.ToExtended().IsOnCurve()
}

// Equal reports whether a and other are the same affine point.
func (a AffineElement) Equal(other AffineElement) bool {
	return a.X.Equal(other.X) && a.Y.Equal(other.Y)
}
