// SPDX-License-Identifier: MIT
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

package decaf377

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// Cross-checks the divstep-based inversion directly against math/big's own
// ModInverse, independent of the Fq wrapper type.
func TestDivstepInvertMatchesBigModInverse(t *testing.T) {
	for i := 0; i < 32; i++ {
		a := FqRandom()
		if a.IsZero() {
			continue
		}
		got := divstepInvert(&a.n, fqModulus, fqB)
		want := new(big.Int).ModInverse(&a.n, fqModulus)
		require.Equal(t, 0, got.Cmp(want))
	}
}

func TestDivstepItersFormula(t *testing.T) {
	// I = ceil((49*B + 57) / 17)
	require.Equal(t, (49*253+57+16)/17, divstepIters(253))
}
