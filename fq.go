// SPDX-License-Identifier: MIT
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

package decaf377

import (
	"crypto/rand"
	"crypto/subtle"
	"math/big"
)

// fqByteLen is the canonical little-endian byte width of an Fq element. See
// SPEC_FULL.md §0: Fq is BLS12-377's scalar field (253 bits), not the
// 377-bit base field the distilled spec's prose names; 32 bytes is the
// smallest width that holds it and is what the pinned §6 constants and the
// "p < 2^254" claim in §4.E actually require.
const fqByteLen = 32

// fqModulusDec is the decimal modulus of Fq: the order of BLS12-377's
// scalar field, and the base field of the embedded twisted Edwards curve
// this package quotients by Decaf.
const fqModulusDec = "8444461749428370424248824938781546531375899335154063827935233455917409239041"

// fqB is the bit length of Fq used to size the divstep inversion in §4.F.
const fqB = 253

var fqModulus, _ = new(big.Int).SetString(fqModulusDec, 10)

// Fq is an element of the base field of the embedded Edwards curve. Values
// are always kept in canonical, reduced form: 0 <= n < p. Like the teacher's
// Element type, arithmetic is expressed over math/big rather than a fixed
// limb array; see DESIGN.md for why no ecosystem divstep/safegcd library
// was available to reach for instead.
type Fq struct {
	n big.Int
}

// FqZero is the additive identity of Fq.
func FqZero() Fq { return Fq{} }

// FqOne is the multiplicative identity of Fq.
func FqOne() Fq {
	var f Fq
	f.n.SetInt64(1)
	return f
}

// fqFromUint64 constructs an Fq element from a small non-negative integer.
func fqFromUint64(v uint64) Fq {
	var f Fq
	f.n.SetUint64(v)
	return f
}

// FqFromLEBytes decodes the canonical 32-byte little-endian representation
// of an Fq element, rejecting any value >= p.
func FqFromLEBytes(b []byte) (Fq, error) {
	if len(b) != fqByteLen {
		return Fq{}, ErrNonCanonicalBytes
	}
	be := make([]byte, fqByteLen)
	for i, c := range b {
		be[fqByteLen-1-i] = c
	}
	var f Fq
	f.n.SetBytes(be)
	if f.n.Cmp(fqModulus) >= 0 {
		return Fq{}, ErrNonCanonicalBytes
	}
	return f, nil
}

// FqFromLELimbs constructs an Fq element directly from four little-endian
// 64-bit limbs of the plain (non-Montgomery) integer value. The limbs are
// reduced mod p.
func FqFromLELimbs(limbs [4]uint64) Fq {
	var f Fq
	buf := make([]byte, 32)
	for i, l := range limbs {
		for j := 0; j < 8; j++ {
			buf[31-(i*8+j)] = byte(l >> (8 * j))
		}
	}
	f.n.SetBytes(buf)
	f.n.Mod(&f.n, fqModulus)
	return f
}

// ToLEBytes returns the canonical 32-byte little-endian encoding of f.
func (f Fq) ToLEBytes() [fqByteLen]byte {
	var out [fqByteLen]byte
	be := f.n.Bytes()
	for i, c := range be {
		out[len(be)-1-i] = c
	}
	return out
}

// Add returns f + g.
func (f Fq) Add(g Fq) Fq {
	var r Fq
	r.n.Add(&f.n, &g.n)
	r.n.Mod(&r.n, fqModulus)
	return r
}

// Sub returns f - g.
func (f Fq) Sub(g Fq) Fq {
	var r Fq
	r.n.Sub(&f.n, &g.n)
	r.n.Mod(&r.n, fqModulus)
	return r
}

// Neg returns -f.
func (f Fq) Neg() Fq {
	var r Fq
	r.n.Neg(&f.n)
	r.n.Mod(&r.n, fqModulus)
	return r
}

// Mul returns f * g.
func (f Fq) Mul(g Fq) Fq {
	var r Fq
	r.n.Mul(&f.n, &g.n)
	r.n.Mod(&r.n, fqModulus)
	return r
}

// Square returns f * f.
func (f Fq) Square() Fq {
	return f.Mul(f)
}

// Invert returns f^-1, or ErrNotInvertible iff f is zero. Internally this
// runs the Bernstein-Yang "divstep" iteration described in §4.F: a fixed
// I = ceil((49*B + 57) / 17) rounds regardless of the input, so the number
// of steps taken does not depend on secret data.
func (f Fq) Invert() (Fq, error) {
	if f.IsZero() {
		return Fq{}, ErrNotInvertible
	}
	return Fq{n: *divstepInvert(&f.n, fqModulus, fqB)}, nil
}

// IsZero reports whether f is the additive identity.
func (f Fq) IsZero() bool {
	return f.n.Sign() == 0
}

// Equal reports whether f == g in constant time, via subtract-and-test-zero
// as specified in §4.F.
func (f Fq) Equal(g Fq) bool {
	d := f.Sub(g)
	db := d.ToLEBytes()
	var zero [fqByteLen]byte
	return subtle.ConstantTimeCompare(db[:], zero[:]) == 1
}

// IsNegative reports whether f is "negative" in the Decaf sign convention of
// §4.E: the least-significant bit of its canonical (non-Montgomery)
// representative is 1.
func (f Fq) IsNegative() bool {
	return f.n.Bit(0) == 1
}

// Abs returns f if it is non-negative, and -f otherwise, per §4.E.
func (f Fq) Abs() Fq {
	if f.IsNegative() {
		return f.Neg()
	}
	return f
}

// Zeroize overwrites f's internal storage, for callers scrubbing secrets
// per §5.
func (f *Fq) Zeroize() {
	words := f.n.Bits()
	for i := range words {
		words[i] = 0
	}
	f.n.SetInt64(0)
}

// FqRandom returns a uniformly random element of Fq using a CSPRNG.
func FqRandom() Fq {
	n, err := rand.Int(rand.Reader, fqModulus)
	if err != nil {
		panic(err)
	}
	var f Fq
	f.n.Set(n)
	return f
}
