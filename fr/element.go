// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>


// Package fr implements arithmetic in the Bandersnatch scalar field.
// Every Element holds a canonical representative in [0, Modulus).
package fr

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/verkle-trie/internal/modular"
)

// ByteLen is the width of the little-endian encoding produced by Bytes
// and consumed by SetBytes/SetBytesReduce.
const ByteLen = 32

// ErrNonCanonical is returned by SetBytes when the encoded integer is
// not strictly smaller than Modulus.
var ErrNonCanonical = errors.New("fr: value is not a canonical field element")

// Modulus is the Bandersnatch scalar field prime:
// 13108968793781547619861935127046491459309155893440570251786403306729687672801.
var Modulus, _ = new(big.Int).SetString(
	"13108968793781547619861935127046491459309155893440570251786403306729687672801", 10)

var qMinusOneDiv2 = new(big.Int).Rsh(new(big.Int).Sub(Modulus, big.NewInt(1)), 1)

// Element is a field element of fr, the Bandersnatch scalar field. The
// zero value is the additive identity.
type Element struct {
	v big.Int
}

// Zero returns the additive identity.
func Zero() Element {
	return Element{}
}

// One returns the multiplicative identity.
func One() Element {
	var z Element
	z.SetOne()
	return z
}

// SetZero sets z to 0 and returns z.
func (z *Element) SetZero() *Element {
	z.v.SetInt64(0)
	return z
}

// SetOne sets z to 1 and returns z.
func (z *Element) SetOne() *Element {
	z.v.SetInt64(1)
	return z
}

// SetUint64 sets z to v reduced modulo Modulus and returns z.
func (z *Element) SetUint64(v uint64) *Element {
	z.v.SetUint64(v)
	z.v.Mod(&z.v, Modulus)
	return z
}

// SetInt64 sets z to v reduced modulo Modulus and returns z.
func (z *Element) SetInt64(v int64) *Element {
	z.v.SetInt64(v)
	z.v.Mod(&z.v, Modulus)
	return z
}

// Set sets z to x and returns z.
func (z *Element) Set(x *Element) *Element {
	z.v.Set(&x.v)
	return z
}

// Add sets z = x + y and returns z.
func (z *Element) Add(x, y *Element) *Element {
	modular.Add(&z.v, &x.v, &y.v, Modulus)
	return z
}

// Sub sets z = x - y and returns z.
func (z *Element) Sub(x, y *Element) *Element {
	modular.Sub(&z.v, &x.v, &y.v, Modulus)
	return z
}

// Mul sets z = x * y and returns z.
func (z *Element) Mul(x, y *Element) *Element {
	modular.Mul(&z.v, &x.v, &y.v, Modulus)
	return z
}

// Square sets z = x * x and returns z.
func (z *Element) Square(x *Element) *Element {
	return z.Mul(x, x)
}

// Neg sets z = -x and returns z.
func (z *Element) Neg(x *Element) *Element {
	modular.Neg(&z.v, &x.v, Modulus)
	return z
}

// Inverse sets z = x^-1 and returns z. It panics if x is zero.
func (z *Element) Inverse(x *Element) *Element {
	modular.Inverse(&z.v, &x.v, Modulus)
	return z
}

// InverseOrZero sets z = x^-1, or z = 0 if x is zero, and returns z.
// This is the unchecked Fermat inversion the reference polynomial
// weight tables rely on to produce their deliberate "1/0" sentinel;
// everywhere else, prefer the panicking Inverse.
func (z *Element) InverseOrZero(x *Element) *Element {
	modular.FermatInverse(&z.v, &x.v, Modulus)
	return z
}

// Div sets z = x / y and returns z. It panics if y is zero.
func (z *Element) Div(x, y *Element) *Element {
	var inv Element
	inv.Inverse(y)
	return z.Mul(x, &inv)
}

// Exp sets z = x^e and returns z.
func (z *Element) Exp(x *Element, e *big.Int) *Element {
	modular.Exp(&z.v, &x.v, e, Modulus)
	return z
}

// Legendre returns the Legendre symbol of z.
func (z *Element) Legendre() int {
	return modular.Legendre(&z.v, Modulus)
}

// Sqrt sets z to a square root of x and returns (z, true) if one
// exists, or (z, false) otherwise.
func (z *Element) Sqrt(x *Element) (*Element, bool) {
	_, ok := modular.Sqrt(&z.v, &x.v, Modulus)
	if !ok {
		return z, false
	}
	return z, true
}

// IsZero reports whether z == 0.
func (z *Element) IsZero() bool {
	return z.v.Sign() == 0
}

// Equal reports whether z == x.
func (z *Element) Equal(x *Element) bool {
	return z.v.Cmp(&x.v) == 0
}

// Cmp compares the canonical representatives of z and x.
func (z *Element) Cmp(x *Element) int {
	return z.v.Cmp(&x.v)
}

// LexicographicallyLargest reports whether z's canonical
// representative is strictly greater than (Modulus-1)/2.
func (z *Element) LexicographicallyLargest() bool {
	return z.v.Cmp(qMinusOneDiv2) > 0
}

// Bytes returns the 32-byte little-endian encoding of z's canonical
// representative.
func (z *Element) Bytes() [ByteLen]byte {
	var out [ByteLen]byte
	be := z.v.Bytes()
	for i, b := range be {
		out[len(be)-1-i] = b
	}
	return out
}

// SetBytes interprets b as a little-endian integer and sets z to it.
// It returns ErrNonCanonical if the integer is not strictly smaller
// than Modulus, leaving z unchanged.
func (z *Element) SetBytes(b []byte) error {
	if len(b) != ByteLen {
		return fmt.Errorf("fr: SetBytes expects %d bytes, got %d", ByteLen, len(b))
	}
	v := leToBigInt(b)
	if v.Cmp(Modulus) >= 0 {
		return ErrNonCanonical
	}
	z.v.Set(v)
	return nil
}

// SetBytesReduce interprets b as a little-endian integer, reduces it
// modulo Modulus, and sets z to the result.
func (z *Element) SetBytesReduce(b []byte) *Element {
	v := leToBigInt(b)
	z.v.Mod(v, Modulus)
	return z
}

// SetRandom sets z to a uniformly random element and returns it, or an
// error if the system randomness source fails.
func (z *Element) SetRandom() (*Element, error) {
	v, err := rand.Int(rand.Reader, Modulus)
	if err != nil {
		return nil, err
	}
	z.v.Set(v)
	return z, nil
}

// String returns the canonical representative as a hex string, for log
// and test-failure readability.
func (z *Element) String() string {
	return "0x" + z.v.Text(16)
}

// GoString implements fmt.GoStringer, so %#v on an Element prints a
// value that reads back as Go source.
func (z *Element) GoString() string {
	return fmt.Sprintf("fr.Element(%s)", z.String())
}

func leToBigInt(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i, c := range b {
		be[len(b)-1-i] = c
	}
	return new(big.Int).SetBytes(be)
}

// BatchInvert inverts every element of xs using Montgomery's trick.
func BatchInvert(xs []Element) []Element {
	vals := make([]*big.Int, len(xs))
	for i := range xs {
		vals[i] = &xs[i].v
	}
	inv := modular.BatchInvert(vals, Modulus)
	out := make([]Element, len(xs))
	for i := range out {
		out[i].v.Set(inv[i])
	}
	return out
}
