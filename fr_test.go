// SPDX-License-Identifier: MIT
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

package decaf377

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrAddSubNegConsistency(t *testing.T) {
	for i := 0; i < 32; i++ {
		a := FrRandom()
		b := FrRandom()
		require.True(t, a.Add(b).Sub(b).Equal(a))
		require.True(t, a.Add(a.Neg()).IsZero())
	}
}

func TestFrInvertIsInverse(t *testing.T) {
	for i := 0; i < 32; i++ {
		a := FrRandom()
		if a.IsZero() {
			continue
		}
		inv, err := a.Invert()
		require.NoError(t, err)
		require.True(t, a.Mul(inv).Equal(FrOne()))
	}

	_, err := FrZero().Invert()
	require.ErrorIs(t, err, ErrNotInvertible)
}

func TestFrByteRoundTrip(t *testing.T) {
	for i := 0; i < 32; i++ {
		a := FrRandom()
		b := a.ToLEBytes()
		back, err := FrFromLEBytes(b[:])
		require.NoError(t, err)
		require.True(t, back.Equal(a))
	}
}

func TestFrFromLEBytesRejectsWrongLength(t *testing.T) {
	_, err := FrFromLEBytes(make([]byte, 10))
	require.ErrorIs(t, err, ErrNonCanonicalBytes)
}
