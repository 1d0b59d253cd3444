// SPDX-License-Identifier: MIT
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

package decaf377

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBasepointIsOnCurve(t *testing.T) {
	require.True(t, Basepoint().IsOnCurve())
}

func TestIdentityIsOnCurve(t *testing.T) {
	require.True(t, Identity().IsOnCurve())
}

// P7: the curve group law is consistent: Add(P, P) agrees with Double(P),
// and P + identity == P.
func TestElementAddDoubleConsistency(t *testing.T) {
	p := Basepoint()
	require.True(t, p.Add(p).Equal(p.Double()))
	require.True(t, p.Add(Identity()).Equal(p))
}

func TestElementNegateIsInverse(t *testing.T) {
	p := Basepoint()
	require.True(t, p.Add(p.Negate()).Equal(Identity()))
}

// P8: scalar multiplication by 2 agrees with Double, and by 0 gives the
// identity.
func TestScalarMultAgreesWithDouble(t *testing.T) {
	p := Basepoint()
	two := FrOne().Add(FrOne())
	require.True(t, p.ScalarMult(two).Equal(p.Double()))
	require.True(t, p.ScalarMult(FrZero()).Equal(Identity()))
}

// P9: NormalizeBatch agrees with per-element ToAffine.
func TestNormalizeBatchAgreesWithToAffine(t *testing.T) {
	p := Basepoint()
	elements := []Element{p, p.Double(), p.Double().Add(p)}

	batch := NormalizeBatch(elements)
	require.Len(t, batch, len(elements))

	for i, e := range elements {
		x, y := e.ToAffine()
		require.True(t, batch[i].X.Equal(x))
		require.True(t, batch[i].Y.Equal(y))
	}
}

func TestNormalizeBatchEmpty(t *testing.T) {
	require.Empty(t, NormalizeBatch(nil))
}
