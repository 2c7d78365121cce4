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

import (
	"sync"

	"github.com/ethereum/verkle-trie/fr"
)

// inverseTableLen is the width of the combined {1/k} table: k ranges
// over domain_size values 0..255 followed by -255..-1.
const inverseTableLen = 2*DomainSize - 1

// PrecomputedWeights holds the barycentric-evaluation constants for the
// fixed domain [0, 255]: the vanishing polynomial and its derivative,
// the derivative evaluated (and inverted) on the domain, and a combined
// inverse table for every offset k = -255..255, k != 0.
//
// domainInverses[0] holds the Fermat inverse of zero, which is zero by
// convention (see fr.Element.InverseOrZero) rather than a reported
// error: index 0 of this table is never read by ComputeQuotientInsideDomain,
// since the i == index term is always skipped there.
type PrecomputedWeights struct {
	A      MonomialBasis
	Aprime MonomialBasis

	AprimeDomain    [DomainSize]fr.Element
	AprimeDomainInv [DomainSize]fr.Element

	domain         [DomainSize]fr.Element
	domainInverses [inverseTableLen]fr.Element
}

var (
	defaultWeights     *PrecomputedWeights
	defaultWeightsOnce sync.Once
)

// DefaultWeights returns the package-wide PrecomputedWeights singleton
// for the fixed [0, 255] domain.
func DefaultWeights() *PrecomputedWeights {
	defaultWeightsOnce.Do(func() {
		defaultWeights = NewPrecomputedWeights(Domain())
	})
	return defaultWeights
}

// NewPrecomputedWeights builds the barycentric constants for domain, a
// continuous increasing sequence of field elements (0, 1, 2, ...).
func NewPrecomputedWeights(domain [DomainSize]fr.Element) *PrecomputedWeights {
	w := &PrecomputedWeights{domain: domain}

	w.A = VanishingPoly(domain[:])
	w.Aprime = w.A.FormalDerivative()

	for i := range domain {
		x := domainPoint(i)
		aprimeX := w.Aprime.Evaluate(x)
		w.AprimeDomain[i] = aprimeX

		var inv fr.Element
		inv.InverseOrZero(&aprimeX)
		w.AprimeDomainInv[i] = inv
	}

	for d := 0; d < DomainSize; d++ {
		var x fr.Element
		x.SetInt64(int64(d))
		var inv fr.Element
		inv.InverseOrZero(&x)
		w.domainInverses[inverseIndex(d)] = inv
	}
	for d := -DomainSize + 1; d < 0; d++ {
		var x fr.Element
		x.SetInt64(int64(d))
		var inv fr.Element
		inv.InverseOrZero(&x)
		w.domainInverses[inverseIndex(d)] = inv
	}

	return w
}

// inverseIndex maps an offset d in [-(DomainSize-1), DomainSize-1] to
// its slot in domainInverses, matching the reference table layout
// [1/0, 1/1, ..., 1/255, 1/-255, ..., 1/-1].
func inverseIndex(d int) int {
	m := ((d % inverseTableLen) + inverseTableLen) % inverseTableLen
	return m
}

// BarycentricFormulaConstants returns, for each domain index i, the
// constant A(z) / A'(domain[i]) * 1/(z - domain[i]) used to evaluate a
// LagrangeBasis polynomial outside the domain at z.
func (w *PrecomputedWeights) BarycentricFormulaConstants(z fr.Element) [DomainSize]fr.Element {
	az := w.A.Evaluate(z)

	diffs := make([]fr.Element, DomainSize)
	for i, x := range w.domain {
		diffs[i].Sub(&z, &x)
	}
	invs := fr.BatchInvert(diffs)

	var r [DomainSize]fr.Element
	for i := range r {
		r[i].Mul(&az, &w.AprimeDomainInv[i])
		r[i].Mul(&r[i], &invs[i])
	}
	return r
}

// EvaluateOutsideDomain evaluates f, in evaluation form, at a point z
// not on the domain, via the barycentric formula. Callers must ensure
// z is not one of the domain points; behavior is otherwise undefined
// (the reference implementation treats A(z) == 0 as that precondition
// violation).
func (w *PrecomputedWeights) EvaluateOutsideDomain(f LagrangeBasis, z fr.Element) fr.Element {
	constants := w.BarycentricFormulaConstants(z)
	r := fr.Zero()
	for i := range f {
		var term fr.Element
		term.Mul(&f[i], &constants[i])
		r.Add(&r, &term)
	}
	return r
}

// ComputeQuotientInsideDomain computes the evaluation-form quotient
// q(X) = (f(X) - f(index)) / (X - index) for index itself a domain
// point, per the multipoint-opening quotient construction.
func (w *PrecomputedWeights) ComputeQuotientInsideDomain(f LagrangeBasis, index int) [DomainSize]fr.Element {
	var q [DomainSize]fr.Element
	y := f[index]

	for i := 0; i < DomainSize; i++ {
		if i == index {
			continue
		}
		var diff fr.Element
		diff.Sub(&f[i], &y)

		var term fr.Element
		term.Mul(&diff, &w.domainInverses[inverseIndex(i-index)])
		q[i] = term

		var crossTerm fr.Element
		crossTerm.Mul(&diff, &w.domainInverses[inverseIndex(index-i)])
		crossTerm.Mul(&crossTerm, &w.AprimeDomain[index])
		crossTerm.Mul(&crossTerm, &w.AprimeDomainInv[i])
		q[index].Add(&q[index], &crossTerm)
	}
	return q
}
