// SPDX-License-Identifier: MIT
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

package decaf377

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// P1: field addition, subtraction, and negation form a consistent abelian
// group for every sampled element.
func TestFqAddSubNegConsistency(t *testing.T) {
	for i := 0; i < 32; i++ {
		a := FqRandom()
		b := FqRandom()

		sum := a.Add(b)
		back := sum.Sub(b)
		require.True(t, back.Equal(a), "a + b - b must equal a")

		require.True(t, a.Add(a.Neg()).IsZero(), "a + (-a) must be zero")
	}
}

// P2: multiplicative inversion is a true two-sided inverse for every
// nonzero sampled element, and Invert rejects zero.
func TestFqInvertIsInverse(t *testing.T) {
	for i := 0; i < 32; i++ {
		a := FqRandom()
		if a.IsZero() {
			continue
		}
		inv, err := a.Invert()
		require.NoError(t, err)
		require.True(t, a.Mul(inv).Equal(FqOne()))
	}

	_, err := FqZero().Invert()
	require.ErrorIs(t, err, ErrNotInvertible)
}

// P3: canonical byte encoding round-trips and rejects out-of-range values.
func TestFqByteRoundTrip(t *testing.T) {
	for i := 0; i < 32; i++ {
		a := FqRandom()
		bytes := a.ToLEBytes()
		back, err := FqFromLEBytes(bytes[:])
		require.NoError(t, err)
		require.True(t, back.Equal(a))
	}

	tooFew := make([]byte, 31)
	_, err := FqFromLEBytes(tooFew)
	require.ErrorIs(t, err, ErrNonCanonicalBytes)

	// A value >= p, encoded little-endian, must be rejected as non-canonical.
	var tooLarge [fqByteLen]byte
	for i := range tooLarge {
		tooLarge[i] = 0xFF
	}
	_, err = FqFromLEBytes(tooLarge[:])
	require.ErrorIs(t, err, ErrNonCanonicalBytes)
}

// P4: Abs is idempotent and always returns a non-negative representative.
func TestFqAbsIsNonNegative(t *testing.T) {
	for i := 0; i < 32; i++ {
		a := FqRandom()
		abs := a.Abs()
		require.False(t, abs.IsNegative())
		require.True(t, abs.Abs().Equal(abs))
	}
}

func TestFqEqualIsConstantShapeComparison(t *testing.T) {
	a := FqRandom()
	b := a
	require.True(t, a.Equal(b))

	c := a.Add(FqOne())
	require.False(t, a.Equal(c))
}

func TestFqZeroizeClearsState(t *testing.T) {
	a := FqRandom()
	require.False(t, a.IsZero())
	a.Zeroize()
	require.True(t, a.IsZero())
}
