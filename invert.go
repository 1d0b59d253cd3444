// SPDX-License-Identifier: MIT
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

package decaf377

import "math/big"

// divstepIters returns I = ceil((49*B + 57) / 17), the fixed number of
// divstep rounds run for a B-bit field per §4.F, independent of the value
// being inverted.
func divstepIters(b int) int {
	return (49*b + 57 + 16) / 17
}

// halveMod returns e/2 mod m for odd m, reducing e into [0, m) first. Used
// to keep the divstep accumulator bounded across rounds instead of
// deferring the division by a power of two to the end.
func halveMod(e, m *big.Int) *big.Int {
	r := new(big.Int).Mod(e, m)
	if r.Bit(0) == 0 {
		r.Rsh(r, 1)
		return r
	}
	r.Add(r, m)
	r.Rsh(r, 1)
	return r
}

// divstepInvert computes a^-1 mod m via the Bernstein-Yang divstep
// iteration (the jump-divstep variant without the batched transition
// matrix, since this package operates on math/big words rather than fixed
// 64-bit limbs — see DESIGN.md). It runs exactly divstepIters(bitlen)
// rounds regardless of a, per §4.F. m must be odd and a must be coprime to
// m (callers are expected to have already rejected a == 0).
//
// Invariant maintained each round: d*a ≡ f (mod m) and e*a ≡ g (mod m).
// At termination f = ±1 = gcd(a, m), so d is a^-1 up to the sign of f.
func divstepInvert(a, m *big.Int, bitlen int) *big.Int {
	delta := 1
	f := new(big.Int).Set(m)
	g := new(big.Int).Mod(a, m)
	d := big.NewInt(0)
	e := big.NewInt(1)

	for i := 0; i < divstepIters(bitlen); i++ {
		gOdd := g.Bit(0) == 1
		if delta > 0 && gOdd {
			delta = 1 - delta
			newF := new(big.Int).Set(g)
			newG := new(big.Int).Sub(g, f)
			newD := new(big.Int).Set(e)
			newE := new(big.Int).Sub(e, d)
			f, g, d, e = newF, newG, newD, newE
		} else {
			delta = delta + 1
			if gOdd {
				g.Add(g, f)
				e.Add(e, d)
			}
		}
		g.Rsh(g, 1)
		e = halveMod(e, m)
	}

	result := new(big.Int).Mod(d, m)
	if f.Sign() < 0 {
		result.Sub(m, result)
		result.Mod(result, m)
	}
	return result
}
