// SPDX-License-Identifier: MIT
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

// Package decaf377 implements the Decaf group of prime order built as a
// quotient of a twisted Edwards curve defined over the scalar field of
// BLS12-377.
//
// The group has prime order; there is no cofactor to reason about. Elements
// are encoded to and decoded from 32-byte field-element representatives, and
// a hash-to-group map (Elligator) is provided for deriving group elements
// from uniform field elements. The r1cs subpackage mirrors the encode and
// decode logic as gadgets over a rank-1 constraint system, so the same
// algebraic identities can be proved inside a zero-knowledge circuit.
package decaf377
