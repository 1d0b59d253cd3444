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

// frByteLen is the canonical little-endian byte width of an Fr element.
const frByteLen = 32

// frModulusDec is the decimal modulus ℓ: the order of the Decaf group,
// pinned verbatim in spec.md §6/§7.
const frModulusDec = "2111115437357092606062206234695386632838870926408408195193685246394721360383"

// frB is the bit length of Fr used to size the divstep inversion in §4.F.
const frB = 251

var frModulus *big.Int

func init() {
	frModulus, _ = new(big.Int).SetString(frModulusDec, 10)
}

// Fr is a scalar: an element of the prime order ℓ of the Decaf group,
// which is how ScalarMult exponents are represented. Same canonical-reduced-big.Int
// representation discipline as Fq; see fq.go.
type Fr struct {
	n big.Int
}

// FrZero is the additive identity of Fr.
func FrZero() Fr { return Fr{} }

// FrOne is the multiplicative identity of Fr.
func FrOne() Fr {
	var f Fr
	f.n.SetInt64(1)
	return f
}

// FrFromLEBytes decodes the canonical 32-byte little-endian representation
// of an Fr element, rejecting any value >= ℓ.
func FrFromLEBytes(b []byte) (Fr, error) {
	if len(b) != frByteLen {
		return Fr{}, ErrNonCanonicalBytes
	}
	be := make([]byte, frByteLen)
	for i, c := range b {
		be[frByteLen-1-i] = c
	}
	var f Fr
	f.n.SetBytes(be)
	if f.n.Cmp(frModulus) >= 0 {
		return Fr{}, ErrNonCanonicalBytes
	}
	return f, nil
}

// ToLEBytes returns the canonical 32-byte little-endian encoding of f.
func (f Fr) ToLEBytes() [frByteLen]byte {
	var out [frByteLen]byte
	be := f.n.Bytes()
	for i, c := range be {
		out[len(be)-1-i] = c
	}
	return out
}

// Add returns f + g.
func (f Fr) Add(g Fr) Fr {
	var r Fr
	r.n.Add(&f.n, &g.n)
	r.n.Mod(&r.n, frModulus)
	return r
}

// Sub returns f - g.
func (f Fr) Sub(g Fr) Fr {
	var r Fr
	r.n.Sub(&f.n, &g.n)
	r.n.Mod(&r.n, frModulus)
	return r
}

// Neg returns -f.
func (f Fr) Neg() Fr {
	var r Fr
	r.n.Neg(&f.n)
	r.n.Mod(&r.n, frModulus)
	return r
}

// Mul returns f * g.
func (f Fr) Mul(g Fr) Fr {
	var r Fr
	r.n.Mul(&f.n, &g.n)
	r.n.Mod(&r.n, frModulus)
	return r
}

// Square returns f * f.
func (f Fr) Square() Fr {
	return f.Mul(f)
}

// Invert returns f^-1, or ErrNotInvertible iff f is zero. Same fixed-round
// divstep approach as Fq.Invert, sized to frB.
func (f Fr) Invert() (Fr, error) {
	if f.IsZero() {
		return Fr{}, ErrNotInvertible
	}
	return Fr{n: *divstepInvert(&f.n, frModulus, frB)}, nil
}

// IsZero reports whether f is the additive identity.
func (f Fr) IsZero() bool {
	return f.n.Sign() == 0
}

// Equal reports whether f == g in constant time.
func (f Fr) Equal(g Fr) bool {
	d := f.Sub(g)
	db := d.ToLEBytes()
	var zero [frByteLen]byte
	return subtle.ConstantTimeCompare(db[:], zero[:]) == 1
}

// Zeroize overwrites f's internal storage, for callers scrubbing secrets.
func (f *Fr) Zeroize() {
	words := f.n.Bits()
	for i := range words {
		words[i] = 0
	}
	f.n.SetInt64(0)
}

// FrRandom returns a uniformly random scalar using a CSPRNG.
func FrRandom() Fr {
	n, err := rand.Int(rand.Reader, frModulus)
	if err != nil {
		panic(err)
	}
	var f Fr
	f.n.Set(n)
	return f
}

// bitLen returns the bit length of the canonical representative of f.
func (f Fr) bitLen() int {
	return f.n.BitLen()
}

// bit returns the i'th bit (0 = least significant) of f's canonical
// representative.
func (f Fr) bit(i int) uint {
	return f.n.Bit(i)
}
