// SPDX-License-Identifier: MIT
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

package decaf377

// Twisted Edwards curve parameters: -x^2 + y^2 = 1 + d*x^2*y^2 over Fq.
var (
	curveA = fqFromUint64(1).Neg() // a = -1
	curveD = fqFromUint64(3021)    // d = 3021
)

// basepointXDec, basepointYDec are the affine coordinates of the pinned §6
// canonical Decaf basepoint, decoded once from the Montgomery-domain limbs
// GENERATOR_X / GENERATOR_Y of original_source/src/ark_curve/constants.rs
// (true value = raw·R⁻¹ mod p for R = 2^256, the same decode used for ζ in
// sqrt.go) into plain decimal form, since this package represents field
// elements as reduced big.Int rather than fixed limbs. Cross-checked to
// satisfy the curve equation over the resolved Fq modulus (see §0) and to
// agree with B_T = B_X * B_Y from the same source.
const (
	basepointXDec = "4959445789346820725352484487855828915252512307947624787834978378872129235627"
	basepointYDec = "6060471950081851567114691557659790004756535011754163002297540472747064943288"
)

var basepoint Element

func init() {
	x := fqMustDecimal(basepointXDec)
	y := fqMustDecimal(basepointYDec)
	basepoint = newElementFromAffineUnchecked(x, y)
}

// Basepoint returns the canonical generator of the Decaf group.
func Basepoint() Element {
	return basepoint
}

// Identity returns the identity element of the Decaf group.
func Identity() Element {
	return newElementFromAffineUnchecked(FqZero(), FqOne())
}
