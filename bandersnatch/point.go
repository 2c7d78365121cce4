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


// Package bandersnatch implements the Bandersnatch twisted Edwards
// curve over fp, the curve underlying the Banderwagon prime-order
// group.
package bandersnatch

import (
	"math/big"

	"github.com/ethereum/verkle-trie/fp"
	"github.com/ethereum/verkle-trie/fr"
)

// A is the curve's twisted Edwards "a" coefficient.
var A = mustFp(-5)

// dNum and dDen are the numerator and denominator of the curve's
// twisted Edwards "d" coefficient; D = dNum/dDen, computed once.
var (
	dNum = mustFpDec("138827208126141220649022263972958607803")
	dDen = mustFpDec("171449701953573178309673572579671231137")

	// D is the curve's twisted Edwards "d" coefficient.
	D = func() fp.Element {
		var den, d fp.Element
		den.Set(&dDen)
		den.Inverse(&den)
		d.Mul(&dNum, &den)
		return d
	}()
)

func mustFp(v int64) fp.Element {
	var z fp.Element
	z.SetInt64(v)
	return z
}

func mustFpDec(s string) fp.Element {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bandersnatch: bad decimal constant " + s)
	}
	var z fp.Element
	b := v.Bytes()
	le := make([]byte, len(b))
	for i, c := range b {
		le[len(b)-1-i] = c
	}
	z.SetBytesReduce(le)
	return z
}

// PointAffine is a point on the Bandersnatch curve in affine
// coordinates, satisfying A*X^2 + Y^2 = 1 + D*X^2*Y^2.
type PointAffine struct {
	X, Y fp.Element
}

// Identity returns the curve's neutral element, (0, 1).
func Identity() PointAffine {
	var p PointAffine
	p.Y.SetOne()
	return p
}

// Generator returns the Bandersnatch base point used throughout this
// module.
func Generator() PointAffine {
	var p PointAffine
	xBytes := hexLE("29c132cc2c0b34c5743711777bbe42f32b79c022ad998465e1e71866a252ae18")
	yBytes := hexLE("2a6c669eda123e0f157d8b50badcd586358cad81eee464605e3167b6cc974166")
	if err := p.X.SetBytes(xBytes); err != nil {
		panic("bandersnatch: bad generator x: " + err.Error())
	}
	if err := p.Y.SetBytes(yBytes); err != nil {
		panic("bandersnatch: bad generator y: " + err.Error())
	}
	return p
}

// hexLE decodes a hex string as a big-endian integer and returns its
// fixed 32-byte little-endian encoding.
func hexLE(hexStr string) []byte {
	v, ok := new(big.Int).SetString(hexStr, 16)
	if !ok {
		panic("bandersnatch: bad hex constant " + hexStr)
	}
	be := v.Bytes()
	out := make([]byte, fp.ByteLen)
	for i, c := range be {
		out[len(be)-1-i] = c
	}
	return out
}

// IsOnCurve reports whether p satisfies the curve equation.
func (p *PointAffine) IsOnCurve() bool {
	var xSq, ySq, dxy, axSq, lhs, rhs fp.Element
	xSq.Square(&p.X)
	ySq.Square(&p.Y)
	dxy.Mul(&xSq, &ySq)
	dxy.Mul(&dxy, &D)
	axSq.Mul(&A, &xSq)

	lhs.Add(&axSq, &ySq)
	rhs.SetOne()
	rhs.Add(&rhs, &dxy)
	return lhs.Equal(&rhs)
}

// Equal reports plain affine equality, distinct from Banderwagon's
// quotient equality.
func (p *PointAffine) Equal(q *PointAffine) bool {
	return p.X.Equal(&q.X) && p.Y.Equal(&q.Y)
}

// Add sets z = p + q using the complete twisted Edwards addition law
// and returns z. Doubling is simply Add(p, p).
func (z *PointAffine) Add(p, q *PointAffine) *PointAffine {
	var x1y2, y1x2, ax1x2, y1y2, dx1x2y1y2 fp.Element
	x1y2.Mul(&p.X, &q.Y)
	y1x2.Mul(&p.Y, &q.X)
	ax1x2.Mul(&p.X, &q.X)
	ax1x2.Mul(&ax1x2, &A)
	y1y2.Mul(&p.Y, &q.Y)

	dx1x2y1y2.Mul(&x1y2, &y1x2)
	dx1x2y1y2.Mul(&dx1x2y1y2, &D)

	var xNum, xDen, yNum, yDen, one fp.Element
	one.SetOne()

	xNum.Add(&x1y2, &y1x2)
	xDen.Add(&one, &dx1x2y1y2)

	yNum.Sub(&y1y2, &ax1x2)
	yDen.Sub(&one, &dx1x2y1y2)

	var x, y fp.Element
	x.Div(&xNum, &xDen)
	y.Div(&yNum, &yDen)

	z.X = x
	z.Y = y
	return z
}

// Double sets z = 2p and returns z.
func (z *PointAffine) Double(p *PointAffine) *PointAffine {
	return z.Add(p, p)
}

// Neg sets z = -p and returns z.
func (z *PointAffine) Neg(p *PointAffine) *PointAffine {
	z.Y = p.Y
	z.X.Neg(&p.X)
	return z
}

// ScalarMul sets z = scalar*p via double-and-add and returns z.
func (z *PointAffine) ScalarMul(p *PointAffine, scalar *fr.Element) *PointAffine {
	result := Identity()
	temp := *p

	bits := scalarBits(scalar)
	for i := len(bits) - 1; i >= 0; i-- {
		if bits[i] {
			result.Add(&result, &temp)
		}
		temp.Double(&temp)
	}
	*z = result
	return z
}

// scalarBits returns the big-endian bits of the scalar's canonical
// representative, most significant bit first, with no leading zero
// bits (matching Python's format(v, 'b')).
func scalarBits(scalar *fr.Element) []bool {
	b := scalar.Bytes()
	be := make([]byte, len(b))
	for i, c := range b {
		be[len(b)-1-i] = c
	}
	v := new(big.Int).SetBytes(be)
	if v.Sign() == 0 {
		return []bool{false}
	}
	bits := make([]bool, v.BitLen())
	for i := 0; i < v.BitLen(); i++ {
		bits[i] = v.Bit(v.BitLen()-1-i) == 1
	}
	return bits
}

// GetYCoordinate computes y^2 = (A*x^2 - 1)/(D*x^2 - 1) and returns the
// root whose LexicographicallyLargest flag matches wantPositive. It
// returns ok=false if the denominator is zero or the numerator is a
// non-residue.
func GetYCoordinate(x fp.Element, wantPositive bool) (fp.Element, bool) {
	var xSq, den, num, one fp.Element
	one.SetOne()
	xSq.Square(&x)

	den.Mul(&xSq, &D)
	den.Sub(&den, &one)
	if den.IsZero() {
		return fp.Element{}, false
	}

	num.Mul(&xSq, &A)
	num.Sub(&num, &one)

	var ySq fp.Element
	ySq.Div(&num, &den)

	var y fp.Element
	if _, ok := y.Sqrt(&ySq); !ok {
		return fp.Element{}, false
	}

	if y.LexicographicallyLargest() != wantPositive {
		y.Neg(&y)
	}
	return y, true
}

// Bytes returns the 32-byte little-endian compressed encoding of p: the
// bytes of X, with the high bit of the last byte set iff Y is
// lexicographically largest. This is the raw twisted-Edwards encoding
// used to verify curve test vectors; Banderwagon uses a different,
// quotient-aware encoding (see the banderwagon package).
func (p *PointAffine) Bytes() [fp.ByteLen]byte {
	out := p.X.Bytes()
	if p.Y.LexicographicallyLargest() {
		out[fp.ByteLen-1] |= 0x80
	}
	return out
}

// SetBytes decodes a 32-byte compressed encoding produced by Bytes and
// sets p to the result, returning ok=false if the encoding does not
// correspond to a point on the curve.
func (p *PointAffine) SetBytes(b [fp.ByteLen]byte) bool {
	sign := b[fp.ByteLen-1]&0x80 != 0
	b[fp.ByteLen-1] &^= 0x80

	var x fp.Element
	if err := x.SetBytes(b[:]); err != nil {
		return false
	}
	y, ok := GetYCoordinate(x, sign)
	if !ok {
		return false
	}
	p.X = x
	p.Y = y
	return true
}

// String returns a human-readable representation for debugging.
func (p *PointAffine) String() string {
	return "(" + p.X.String() + ", " + p.Y.String() + ")"
}
