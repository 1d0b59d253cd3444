// SPDX-License-Identifier: MIT
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

package decaf377

import "errors"

// Error kinds returned by the field and encoding operations.
// Every failure is reported as one of these sentinels rather than a panic or
// a silent zero value; callers should compare with errors.Is.
var (
	// ErrNotInvertible is returned by Fq.Invert and Fr.Invert when the
	// receiver is zero.
	ErrNotInvertible = errors.New("decaf377: element has no inverse")

	// ErrNotAResidue is returned by Fq.Sqrt when the input is not a
	// quadratic residue.
	ErrNotAResidue = errors.New("decaf377: not a quadratic residue")

	// ErrNonCanonicalBytes is returned by decode when the input is not the
	// canonical 32-byte little-endian encoding of an element of Fq: the
	// lift is >= p, or the top two bits of the last byte are set.
	ErrNonCanonicalBytes = errors.New("decaf377: non-canonical byte encoding")

	// ErrNegativeEncoding is returned by decode when s is "negative" in
	// the Decaf sign convention (odd canonical representative).
	ErrNegativeEncoding = errors.New("decaf377: negative field representative")

	// ErrNotInImage is returned by decode when the decompression square
	// root does not exist: the input does not correspond to any Decaf
	// element.
	ErrNotInImage = errors.New("decaf377: not in the image of encoding")
)
