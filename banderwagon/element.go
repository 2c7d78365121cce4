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

// Package banderwagon implements the Banderwagon group, the prime-order
// quotient of the Bandersnatch curve by its 2-torsion subgroup.
package banderwagon

import (
	"encoding/hex"
	"errors"

	"github.com/ethereum/verkle-trie/bandersnatch"
	"github.com/ethereum/verkle-trie/fp"
	"github.com/ethereum/verkle-trie/fr"
)

// ErrInvalidEncoding is returned by SetBytes when the input is not a
// canonical Fp value, has no corresponding curve point, or that point
// fails the subgroup check.
var ErrInvalidEncoding = errors.New("banderwagon: invalid point encoding")

// Element is a point of the Banderwagon group, represented internally
// as a Bandersnatch affine point. Two Elements that differ only by the
// curve's 2-torsion point are equal as Banderwagon elements.
type Element struct {
	inner bandersnatch.PointAffine
}

// Generator returns the Banderwagon group generator.
func Generator() Element {
	return Element{inner: bandersnatch.Generator()}
}

// Identity returns the Banderwagon neutral element.
func Identity() Element {
	return Element{inner: bandersnatch.Identity()}
}

// TwoTorsionPoint returns the nontrivial point of the curve's 2-torsion
// subgroup, (0, -1): a distinct Bandersnatch point from the identity
// (0, 1) that nonetheless represents the same Banderwagon element,
// since Equal ignores the coset representative.
func TwoTorsionPoint() Element {
	var p bandersnatch.PointAffine
	p.Y.SetOne()
	p.Y.Neg(&p.Y)
	return Element{inner: p}
}

// Equal reports whether z and x represent the same Banderwagon element:
// x1*y2 == x2*y1, with the (0,0) point (reachable only via the unsafe
// zero-value Element, never via Generator/Identity/arithmetic) treated
// as unequal to everything, including itself.
func (z *Element) Equal(x *Element) bool {
	x1, y1 := z.inner.X, z.inner.Y
	x2, y2 := x.inner.X, x.inner.Y

	if x1.IsZero() && y1.IsZero() {
		return false
	}
	if x2.IsZero() && y2.IsZero() {
		return false
	}

	var lhs, rhs fp.Element
	lhs.Mul(&x1, &y2)
	rhs.Mul(&x2, &y1)
	return lhs.Equal(&rhs)
}

// Add sets z = p + q and returns z.
func (z *Element) Add(p, q *Element) *Element {
	z.inner.Add(&p.inner, &q.inner)
	return z
}

// Sub sets z = p - q and returns z.
func (z *Element) Sub(p, q *Element) *Element {
	var negQ Element
	negQ.Neg(q)
	return z.Add(p, &negQ)
}

// Neg sets z = -p and returns z.
func (z *Element) Neg(p *Element) *Element {
	z.inner.Neg(&p.inner)
	return z
}

// Double sets z = 2p and returns z.
func (z *Element) Double(p *Element) *Element {
	z.inner.Double(&p.inner)
	return z
}

// ScalarMul sets z = scalar*p and returns z.
func (z *Element) ScalarMul(p *Element, scalar *fr.Element) *Element {
	z.inner.ScalarMul(&p.inner, scalar)
	return z
}

// MSM computes the multi-scalar multiplication sum(scalars[i]*points[i])
// naively, one scalar multiplication and addition per term. points and
// scalars must be the same length.
func MSM(points []Element, scalars []fr.Element) Element {
	res := Identity()
	for i := range points {
		var term Element
		term.ScalarMul(&points[i], &scalars[i])
		res.Add(&res, &term)
	}
	return res
}

// subgroupCheck returns the Legendre symbol of 1 - A*x^2, where A is
// the Bandersnatch curve's twisted Edwards "a" coefficient: a valid
// Banderwagon x-coordinate requires this to be 1.
func subgroupCheck(x *fp.Element) int {
	var res fp.Element
	res.Square(x)
	res.Mul(&res, &bandersnatch.A)
	res.Neg(&res)

	var one fp.Element
	one.SetOne()
	res.Add(&res, &one)
	return res.Legendre()
}

// Bytes returns the 32-byte big-endian compressed encoding of z: the
// encoding of the affine x-coordinate whose matching point has a
// lexicographically-largest y, reversed to big-endian order.
func (z *Element) Bytes() [fp.ByteLen]byte {
	var x fp.Element
	x.Set(&z.inner.X)
	if !z.inner.Y.LexicographicallyLargest() {
		x.Neg(&x)
	}
	le := x.Bytes()
	var be [fp.ByteLen]byte
	for i, b := range le {
		be[fp.ByteLen-1-i] = b
	}
	return be
}

// SetBytes decodes a 32-byte big-endian encoding produced by Bytes and
// sets z to the result. It returns ErrInvalidEncoding if the bytes do
// not encode a canonical Fp value, the resulting x has no curve point,
// or the point fails the subgroup check.
func (z *Element) SetBytes(be []byte) error {
	if len(be) != fp.ByteLen {
		return ErrInvalidEncoding
	}
	le := make([]byte, fp.ByteLen)
	for i, b := range be {
		le[fp.ByteLen-1-i] = b
	}

	var x fp.Element
	if err := x.SetBytes(le); err != nil {
		return ErrInvalidEncoding
	}

	y, ok := bandersnatch.GetYCoordinate(x, true)
	if !ok {
		return ErrInvalidEncoding
	}

	if subgroupCheck(&x) != 1 {
		return ErrInvalidEncoding
	}

	z.inner = bandersnatch.PointAffine{X: x, Y: y}
	return nil
}

// MapToField computes the scalar-field image of z used as a
// VerkleCommitment's memoized point_as_field: x/y in Fp, serialized,
// then reduced modulo fr.Modulus.
func (z *Element) MapToField() fr.Element {
	var quotient fp.Element
	quotient.Div(&z.inner.X, &z.inner.Y)
	b := quotient.Bytes()

	var out fr.Element
	out.SetBytesReduce(b[:])
	return out
}

// MapToFieldBytes returns the 32-byte little-endian encoding of
// MapToField's Fp quotient, prior to reduction into Fr.
func (z *Element) MapToFieldBytes() [fp.ByteLen]byte {
	var quotient fp.Element
	quotient.Div(&z.inner.X, &z.inner.Y)
	return quotient.Bytes()
}

// IsOnCurve reports whether z's representative point lies on the
// underlying Bandersnatch curve; true for every Element reachable via
// this package's constructors.
func (z *Element) IsOnCurve() bool {
	return z.inner.IsOnCurve()
}

// String returns a human-readable representation for debugging.
func (z *Element) String() string {
	b := z.Bytes()
	return hex.EncodeToString(b[:])
}
