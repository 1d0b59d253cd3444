// SPDX-License-Identifier: MIT
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

package decaf377

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// P5: Sqrt produces a genuine square root for every quadratic residue it
// is given, and reports ErrNotAResidue for non-residues.
func TestFqSqrtRoundTrips(t *testing.T) {
	found := 0
	for i := 0; i < 64 && found < 16; i++ {
		a := FqRandom()
		if a.IsZero() || !a.IsSquare() {
			continue
		}
		root, err := a.Sqrt()
		require.NoError(t, err)
		require.True(t, root.Square().Equal(a))
		found++
	}
	require.Greater(t, found, 0, "expected to sample at least one residue")
}

func TestFqSqrtRejectsNonResidue(t *testing.T) {
	found := false
	for i := 0; i < 64; i++ {
		a := FqRandom()
		if a.IsZero() || a.IsSquare() {
			continue
		}
		_, err := a.Sqrt()
		require.ErrorIs(t, err, ErrNotAResidue)
		found = true
		break
	}
	require.True(t, found, "expected to sample at least one non-residue")
}

// S1: sqrt_ratio_zeta's documented edge cases: v == 0 yields (false, 0),
// and u == 0 (with v != 0) yields (true, 0).
func TestSqrtRatioZetaEdgeCases(t *testing.T) {
	wasSquare, root := SqrtRatioZeta(FqRandom(), FqZero())
	require.False(t, wasSquare)
	require.True(t, root.IsZero())

	v := FqRandom()
	for v.IsZero() {
		v = FqRandom()
	}
	wasSquare, root = SqrtRatioZeta(FqZero(), v)
	require.True(t, wasSquare)
	require.True(t, root.IsZero())
}

// P6: when sqrt_ratio_zeta reports a square, the returned root squared
// times v equals u; when it reports a non-residue, the root squared times
// v equals ζ*u instead.
func TestSqrtRatioZetaSatisfiesDefiningEquation(t *testing.T) {
	checked := 0
	for i := 0; i < 64 && checked < 16; i++ {
		u := FqRandom()
		v := FqRandom()
		if u.IsZero() || v.IsZero() {
			continue
		}
		wasSquare, root := SqrtRatioZeta(u, v)
		lhs := root.Square().Mul(v)
		if wasSquare {
			require.True(t, lhs.Equal(u))
		} else {
			require.True(t, lhs.Equal(u.Mul(fqZeta)))
		}
		checked++
	}
	require.Greater(t, checked, 0)
}
