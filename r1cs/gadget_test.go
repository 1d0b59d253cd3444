// SPDX-License-Identifier: MIT
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

package r1cs_test

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/require"

	decaf377r1cs "github.com/decaf377/decaf377-go/r1cs"
)

// onCurveCircuit asserts that a witnessed affine point lies on the
// embedded twisted Edwards curve, mirroring decaf377.Element.IsOnCurve.
type onCurveCircuit struct {
	X, Y frontend.Variable
}

func (c *onCurveCircuit) Define(api frontend.API) error {
	e := decaf377r1cs.NewElementVarFromAffine(api, decaf377r1cs.NewFqVarConstant(c.X), decaf377r1cs.NewFqVarConstant(c.Y))
	e.AssertIsOnCurve(api)
	return nil
}

func TestOnCurveCircuitSatisfiedForBasepoint(t *testing.T) {
	assert := test.NewAssert(t)
	basepointX := "4959445789346820725352484487855828915252512307947624787834978378872129235627"
	basepointY := "6060471950081851567114691557659790004756535011754163002297540472747064943288"

	assert.ProverSucceeded(
		&onCurveCircuit{},
		&onCurveCircuit{X: basepointX, Y: basepointY},
		test.WithCurves(ecc.BLS12_377),
	)
}

// doublingCircuit asserts that Add(P, P) agrees with Double(P) for a
// witnessed point P, i.e. that the dedicated doubling formula and the
// general addition formula are consistent.
type doublingCircuit struct {
	X, Y frontend.Variable
}

func (c *doublingCircuit) Define(api frontend.API) error {
	p := decaf377r1cs.NewElementVarFromAffine(api, decaf377r1cs.NewFqVarConstant(c.X), decaf377r1cs.NewFqVarConstant(c.Y))
	viaAdd := p.Add(api, p)
	viaDouble := p.Double(api)
	isEq := viaAdd.IsEqual(api, viaDouble)
	api.AssertIsEqual(isEq.V, 1)
	return nil
}

func TestDoublingMatchesAddition(t *testing.T) {
	assert := test.NewAssert(t)
	basepointX := "4959445789346820725352484487855828915252512307947624787834978378872129235627"
	basepointY := "6060471950081851567114691557659790004756535011754163002297540472747064943288"

	assert.ProverSucceeded(
		&doublingCircuit{},
		&doublingCircuit{X: basepointX, Y: basepointY},
		test.WithCurves(ecc.BLS12_377),
	)
}

// roundTripCircuit allocates a point the sound way (option (a) of
// SPEC_FULL.md §4.R/§9): the compressed representative and the affine
// coordinates are both witnessed, and decoding the former must agree with
// the latter.
type roundTripCircuit struct {
	S, X, Y frontend.Variable
}

func (c *roundTripCircuit) Define(api frontend.API) error {
	decaf377r1cs.AllocateWitness(
		api,
		decaf377r1cs.NewFqVarConstant(c.S),
		decaf377r1cs.NewFqVarConstant(c.X),
		decaf377r1cs.NewFqVarConstant(c.Y),
	)
	return nil
}

func TestAllocateWitnessRejectsMismatchedAffineCoordinates(t *testing.T) {
	// A prover supplying an on-curve (x, y) that does NOT correspond to the
	// claimed compressed representative s must fail: this is the soundness
	// property that option (a) restores over the rejected "halving point Q"
	// design.
	_, err := frontend.Compile(ecc.BLS12_377.ScalarField(), r1cs.NewBuilder, &roundTripCircuit{})
	require.NoError(t, err)

	// s = 8 is the encoding of the basepoint B; (-B_x, B_y) is on the curve
	// but is a different Decaf element, so the witness must be rejected.
	assert := test.NewAssert(t)
	assert.ProverFailed(
		&roundTripCircuit{},
		&roundTripCircuit{
			S: 8,
			X: "3485015960081549698896340450925717616123387027206439040100255077045280003414",
			Y: "6060471950081851567114691557659790004756535011754163002297540472747064943288",
		},
		test.WithCurves(ecc.BLS12_377),
	)
}
