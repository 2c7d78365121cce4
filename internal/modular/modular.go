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


// Package modular implements the handful of big.Int-based modular
// arithmetic primitives shared by the fp and fr field packages: both
// fields are odd primes of identical byte width and need the same
// add/sub/mul/inverse/sqrt/legendre machinery, only the modulus differs.
package modular

import "math/big"

// Add sets z = (x + y) mod p and returns z.
func Add(z, x, y, p *big.Int) *big.Int {
	z.Add(x, y)
	return z.Mod(z, p)
}

// Sub sets z = (x - y) mod p and returns z.
func Sub(z, x, y, p *big.Int) *big.Int {
	z.Sub(x, y)
	return z.Mod(z, p)
}

// Mul sets z = (x * y) mod p and returns z.
func Mul(z, x, y, p *big.Int) *big.Int {
	z.Mul(x, y)
	return z.Mod(z, p)
}

// Neg sets z = (-x) mod p and returns z.
func Neg(z, x, p *big.Int) *big.Int {
	z.Neg(x)
	return z.Mod(z, p)
}

// Exp sets z = x^e mod p and returns z. e is not reduced.
func Exp(z, x, e, p *big.Int) *big.Int {
	return z.Exp(x, e, p)
}

// FermatInverse sets z = x^(p-2) mod p, the Fermat's-little-theorem
// inverse of x. Unlike Inverse, it does not reject x == 0: Exp with a
// zero base and a positive exponent is 0, so FermatInverse(0) == 0.
// PrecomputedWeights relies on exactly this behavior to build its
// domain_inverses sentinel at index 0 (see ipa.PrecomputedWeights).
func FermatInverse(z, x, p *big.Int) *big.Int {
	e := new(big.Int).Sub(p, big.NewInt(2))
	return z.Exp(x, e, p)
}

// Inverse sets z = x^-1 mod p and returns z. It panics if x == 0: per
// this module's error model, inverting zero is a programmer error, not
// a recoverable condition (see the DivisionByZero error kind).
func Inverse(z, x, p *big.Int) *big.Int {
	if x.Sign() == 0 {
		panic("modular: inverse of zero")
	}
	return FermatInverse(z, x, p)
}

// Legendre returns the Legendre symbol of x modulo the odd prime p: 1
// if x is a nonzero quadratic residue, -1 if it is a non-residue, and
// 0 if x is zero.
func Legendre(x, p *big.Int) int {
	if x.Sign() == 0 {
		return 0
	}
	e := new(big.Int).Rsh(new(big.Int).Sub(p, big.NewInt(1)), 1)
	t := new(big.Int).Exp(x, e, p)
	switch {
	case t.Cmp(big.NewInt(1)) == 0:
		return 1
	default:
		return -1
	}
}

// Sqrt computes a square root of x modulo the odd prime p via
// Tonelli-Shanks, reporting ok=false if x has no square root. The
// p ≡ 3 (mod 4) case is handled with the closed-form a^((p+1)/4)
// shortcut; general p falls through to the full algorithm.
func Sqrt(z, x, p *big.Int) (*big.Int, bool) {
	if x.Sign() == 0 {
		z.SetInt64(0)
		return z, true
	}
	if Legendre(x, p) != 1 {
		return nil, false
	}

	four := big.NewInt(4)
	if new(big.Int).Mod(p, four).Cmp(big.NewInt(3)) == 0 {
		e := new(big.Int).Rsh(new(big.Int).Add(p, big.NewInt(1)), 2)
		z.Exp(x, e, p)
		return z, true
	}

	one := big.NewInt(1)

	// p - 1 = q * 2^s, q odd.
	q := new(big.Int).Sub(p, big.NewInt(1))
	s := 0
	for q.Bit(0) == 0 {
		q.Rsh(q, 1)
		s++
	}

	// A fixed quadratic non-residue to seed the descent.
	nonResidue := big.NewInt(2)
	for Legendre(nonResidue, p) != -1 {
		nonResidue.Add(nonResidue, one)
	}

	m := s
	c := new(big.Int).Exp(nonResidue, q, p)
	t := new(big.Int).Exp(x, q, p)
	qPlus1Half := new(big.Int).Rsh(new(big.Int).Add(q, one), 1)
	r := new(big.Int).Exp(x, qPlus1Half, p)

	for {
		if t.Cmp(one) == 0 {
			z.Set(r)
			return z, true
		}

		// Least i, 0 < i < m, such that t^(2^i) == 1 (mod p).
		i := 0
		tt := new(big.Int).Set(t)
		for tt.Cmp(one) != 0 {
			tt.Mul(tt, tt)
			tt.Mod(tt, p)
			i++
			if i == m {
				return nil, false
			}
		}

		b := new(big.Int).Exp(c, new(big.Int).Lsh(one, uint(m-i-1)), p)
		m = i
		c.Mul(b, b)
		c.Mod(c, p)
		t.Mul(t, c)
		t.Mod(t, p)
		r.Mul(r, b)
		r.Mod(r, p)
	}
}

// BatchInvert inverts every element of xs modulo p using Montgomery's
// trick: a single modular inversion and O(n) multiplications, rather
// than n separate Fermat exponentiations. A zero entry inverts to
// zero, matching FermatInverse's convention.
func BatchInvert(xs []*big.Int, p *big.Int) []*big.Int {
	n := len(xs)
	result := make([]*big.Int, n)
	if n == 0 {
		return result
	}

	prefix := make([]*big.Int, n)
	acc := big.NewInt(1)
	for i, x := range xs {
		prefix[i] = new(big.Int).Set(acc)
		if x.Sign() != 0 {
			Mul(acc, acc, x, p)
		}
	}

	accInv := Inverse(new(big.Int), acc, p)
	for i := n - 1; i >= 0; i-- {
		x := xs[i]
		if x.Sign() == 0 {
			result[i] = big.NewInt(0)
			continue
		}
		result[i] = Mul(new(big.Int), accInv, prefix[i], p)
		Mul(accInv, accInv, x, p)
	}
	return result
}
