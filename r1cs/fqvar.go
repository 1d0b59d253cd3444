// SPDX-License-Identifier: MIT
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

// Package r1cs mirrors the field and group operations of the decaf377
// package as gadgets over a rank-1 constraint system, so the same
// algebraic identities can be proved inside a Groth16 circuit. It is built
// against github.com/consensys/gnark and github.com/consensys/gnark-crypto,
// grounded on logical-mechanism-peace-protocol/app/snark/kappa.go, the only
// gnark/gnark-crypto consumer in the retrieval pack.
//
// The constraint system's native field is compiled to equal the decaf377
// package's Fq (see SPEC_FULL.md §0, via ecc.BLS12_377's scalar field), so
// FqVar is a direct frontend.Variable with no emulated-field arithmetic,
// unlike kappa.go's sw_emulated/sw_bls12381 circuits which prove statements
// about a *different* curve's field inside a BLS12-381 circuit.
package r1cs

import (
	"math/big"

	"github.com/consensys/gnark/frontend"
)

// FqVar is an in-circuit element of Fq.
type FqVar struct {
	V frontend.Variable
}

// NewFqVarConstant wraps a Go value (an int, *big.Int, or frontend.Variable)
// as an FqVar constant, for use in circuit Define methods.
func NewFqVarConstant(v interface{}) FqVar {
	return FqVar{V: v}
}

// Add returns a + b.
func (a FqVar) Add(api frontend.API, b FqVar) FqVar {
	return FqVar{V: api.Add(a.V, b.V)}
}

// Sub returns a - b.
func (a FqVar) Sub(api frontend.API, b FqVar) FqVar {
	return FqVar{V: api.Sub(a.V, b.V)}
}

// Mul returns a * b.
func (a FqVar) Mul(api frontend.API, b FqVar) FqVar {
	return FqVar{V: api.Mul(a.V, b.V)}
}

// Square returns a * a.
func (a FqVar) Square(api frontend.API) FqVar {
	return FqVar{V: api.Mul(a.V, a.V)}
}

// Neg returns -a.
func (a FqVar) Neg(api frontend.API) FqVar {
	return FqVar{V: api.Neg(a.V)}
}

// Inverse returns a^-1, unconstrained (zero) behavior on a == 0 is the
// caller's responsibility, matching frontend.API.Inverse's own contract.
func (a FqVar) Inverse(api frontend.API) FqVar {
	return FqVar{V: api.Inverse(a.V)}
}

// AssertIsEqual constrains a == b.
func (a FqVar) AssertIsEqual(api frontend.API, b FqVar) {
	api.AssertIsEqual(a.V, b.V)
}

// ConditionalSelect returns a if cond == 1, else b.
func ConditionalSelect(api frontend.API, cond frontend.Variable, a, b FqVar) FqVar {
	return FqVar{V: api.Select(cond, a.V, b.V)}
}

// ConditionalEnforceEqual constrains a == b only when cond == 1.
func ConditionalEnforceEqual(api frontend.API, cond frontend.Variable, a, b FqVar) {
	diff := api.Sub(a.V, b.V)
	api.AssertIsEqual(api.Mul(cond, diff), 0)
}

// ConditionalEnforceNotEqual constrains a != b only when cond == 1, via a
// witnessed inverse of the difference: the prover must supply inv such that
// cond*diff*inv == cond, which for cond == 1 is only satisfiable when
// diff != 0 and for cond == 0 always holds.
func ConditionalEnforceNotEqual(api frontend.API, cond frontend.Variable, a, b FqVar) {
	diff := api.Sub(a.V, b.V)
	invHint, err := api.Compiler().NewHint(inverseOrZeroHint, 1, diff)
	if err != nil {
		panic(err)
	}
	api.AssertIsEqual(api.Mul(cond, diff, invHint[0]), cond)
}

// inverseOrZeroHint computes inputs[0]^-1 mod field, or 0 if inputs[0] == 0.
func inverseOrZeroHint(field *big.Int, inputs []*big.Int, outputs []*big.Int) error {
	x := new(big.Int).Mod(inputs[0], field)
	if x.Sign() == 0 {
		outputs[0].SetInt64(0)
		return nil
	}
	outputs[0].ModInverse(x, field)
	return nil
}

// ToBits decomposes a into its field-native bit representation, most
// significant bit last (api.ToBinary's convention), constrained to
// reconstruct a.
func (a FqVar) ToBits(api frontend.API, nbBits int) []frontend.Variable {
	return api.ToBinary(a.V, nbBits)
}

// FqVarFromBits reconstructs an FqVar from a little-endian bit slice,
// constraining each entry to be boolean.
func FqVarFromBits(api frontend.API, bits []frontend.Variable) FqVar {
	return FqVar{V: api.FromBinary(bits...)}
}

// signHint witnesses the least-significant bit of inputs[0] mod field, the
// in-circuit analog of decaf377.Fq.IsNegative's LSB sign convention.
func signHint(field *big.Int, inputs []*big.Int, outputs []*big.Int) error {
	x := new(big.Int).Mod(inputs[0], field)
	outputs[0].SetUint64(x.Bit(0))
	return nil
}

// halfHint witnesses floor(inputs[0] / 2) mod field's representative.
func halfHint(field *big.Int, inputs []*big.Int, outputs []*big.Int) error {
	x := new(big.Int).Mod(inputs[0], field)
	outputs[0].Rsh(x, 1)
	return nil
}

// IsNegative returns a boolean FqVar: 1 if a's canonical representative is
// odd, 0 otherwise. Rather than a full ~log2(p)-bit decomposition, it
// witnesses the sign bit and the remaining half directly (the
// witness-plus-constraint pattern named in SPEC_FULL.md §4.R) and
// constrains a == 2*half + sign with sign boolean.
func (a FqVar) IsNegative(api frontend.API) FqVar {
	sign, err := api.Compiler().NewHint(signHint, 1, a.V)
	if err != nil {
		panic(err)
	}
	half, err := api.Compiler().NewHint(halfHint, 1, a.V)
	if err != nil {
		panic(err)
	}
	api.AssertIsBoolean(sign[0])
	reconstructed := api.Add(api.Mul(2, half[0]), sign[0])
	api.AssertIsEqual(reconstructed, a.V)
	return FqVar{V: sign[0]}
}

// IsNonNegative is the complement of IsNegative.
func (a FqVar) IsNonNegative(api frontend.API) FqVar {
	neg := a.IsNegative(api)
	return FqVar{V: api.Sub(1, neg.V)}
}

// Abs returns |a| under the LSB sign convention: a if non-negative, else
// -a.
func (a FqVar) Abs(api frontend.API) FqVar {
	sign := a.IsNegative(api)
	negA := api.Neg(a.V)
	return FqVar{V: api.Select(sign.V, negA, a.V)}
}

// sqrtHint witnesses a square root of inputs[0] mod field when one exists,
// and 0 otherwise; the caller is responsible for constraining the result
// and for handling the non-residue case (see Isqrt below).
func sqrtHint(field *big.Int, inputs []*big.Int, outputs []*big.Int) error {
	x := new(big.Int).Mod(inputs[0], field)
	if x.Sign() == 0 {
		outputs[0].SetInt64(0)
		return nil
	}
	root := new(big.Int).ModSqrt(x, field)
	if root == nil {
		outputs[0].SetInt64(0)
		return nil
	}
	outputs[0].Set(root)
	return nil
}

// Isqrt witnesses a square root of a and constrains result*result == a. If
// a is not a quadratic residue the constraint is unsatisfiable and proving
// fails; callers that need the non-residue branch of
// sqrt_ratio_zeta should fold in the ζ correction themselves before calling
// Isqrt, mirroring how decaf377.SqrtRatioZeta does it out of circuit.
func (a FqVar) Isqrt(api frontend.API) FqVar {
	root, err := api.Compiler().NewHint(sqrtHint, 1, a.V)
	if err != nil {
		panic(err)
	}
	squared := api.Mul(root[0], root[0])
	api.AssertIsEqual(squared, a.V)
	return FqVar{V: root[0]}
}
