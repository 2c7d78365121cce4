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

package ipa

import "github.com/ethereum/verkle-trie/fr"

// MonomialBasis is a polynomial in coefficient form: coeffs[i] is the
// coefficient of x^i, lowest degree first.
type MonomialBasis struct {
	Coeffs []fr.Element
}

// Evaluate computes the polynomial's value at x by Horner-free direct
// summation of powers, matching the reference implementation.
func (m MonomialBasis) Evaluate(x fr.Element) fr.Element {
	y := fr.Zero()
	powerOfX := fr.One()
	for _, c := range m.Coeffs {
		var term fr.Element
		term.Mul(&powerOfX, &c)
		y.Add(&y, &term)
		powerOfX.Mul(&powerOfX, &x)
	}
	return y
}

// FormalDerivative returns the formal derivative of m: the coefficient
// c of x^n becomes the new coefficient n*c of x^(n-1).
func (m MonomialBasis) FormalDerivative() MonomialBasis {
	if len(m.Coeffs) <= 1 {
		return MonomialBasis{}
	}
	out := make([]fr.Element, len(m.Coeffs)-1)
	for n, c := range m.Coeffs[1:] {
		var coeff fr.Element
		coeff.SetInt64(int64(n + 1))
		out[n].Mul(&coeff, &c)
	}
	return MonomialBasis{Coeffs: out}
}

// VanishingPoly returns the monic polynomial prod(x - xi) over the
// given points.
func VanishingPoly(xs []fr.Element) MonomialBasis {
	root := []fr.Element{fr.One()}
	for _, x := range xs {
		root = append([]fr.Element{fr.Zero()}, root...)
		for j := 0; j < len(root)-1; j++ {
			var term fr.Element
			term.Mul(&root[j+1], &x)
			root[j].Sub(&root[j], &term)
		}
	}
	return MonomialBasis{Coeffs: root}
}
