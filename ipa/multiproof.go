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
	"github.com/ethereum/verkle-trie/banderwagon"
	"github.com/ethereum/verkle-trie/fp"
	"github.com/ethereum/verkle-trie/fr"
	"github.com/ethereum/verkle-trie/ipa/crs"
)

// MultiProverQuery bundles one opening claim going into a multiproof:
// f(z) = y for the polynomial committed to by C.
type MultiProverQuery struct {
	F LagrangeBasis
	C banderwagon.Element
	Z fr.Element
	Y fr.Element
}

// MultiVerifierQuery is a MultiProverQuery stripped of the witness
// polynomial: only the public claim a verifier checks against.
type MultiVerifierQuery struct {
	C banderwagon.Element
	Z fr.Element
	Y fr.Element
}

// MultiProof batches several polynomial openings into a single IPA
// proof via a random linear combination of their quotients.
type MultiProof struct {
	IPA Proof
	D   banderwagon.Element
}

// indexOf returns the domain index of z, which every query's z is
// expected to be (queries always open at a domain point here, per the
// trie's usage — opening at an out-of-domain point is not exercised).
func indexOf(z fr.Element) int {
	for i := 0; i < DomainSize; i++ {
		if z.Equal(&domainCache[i]) {
			return i
		}
	}
	panic("ipa: multiproof query point is not on the domain")
}

var domainCache = Domain()

// CreateMultiProof builds a MultiProof attesting that each query's
// claimed (C, z, y) is a valid opening, using weights as the
// precomputed barycentric constants for the shared domain.
func CreateMultiProof(transcript *Transcript, c *crs.CRS, weights *PrecomputedWeights, queries []MultiProverQuery) MultiProof {
	transcript.DomainSep("multiproof")

	for _, q := range queries {
		transcript.AppendPoint(&q.C, "C")
		transcript.AppendScalar(&q.Z, "z")
		transcript.AppendScalar(&q.Y, "y")
	}

	r := transcript.ChallengeScalar("r")

	g := make([]fr.Element, DomainSize)
	powerOfR := fr.One()
	for _, q := range queries {
		index := indexOf(q.Z)
		quotient := weights.ComputeQuotientInsideDomain(q.F, index)
		for i := 0; i < DomainSize; i++ {
			var term fr.Element
			term.Mul(&powerOfR, &quotient[i])
			g[i].Add(&g[i], &term)
		}
		powerOfR.Mul(&powerOfR, &r)
	}

	d := c.Commit(g)
	transcript.AppendPoint(&d, "D")

	t := transcript.ChallengeScalar("t")

	h := make([]fr.Element, DomainSize)
	powerOfR = fr.One()
	for _, q := range queries {
		index := indexOf(q.Z)
		var denom, denomInv fr.Element
		denom.Sub(&t, &domainCache[index])
		denomInv.Inverse(&denom)

		for i := 0; i < DomainSize; i++ {
			var term fr.Element
			term.Mul(&powerOfR, &q.F[i])
			term.Mul(&term, &denomInv)
			h[i].Add(&h[i], &term)
		}
		powerOfR.Mul(&powerOfR, &r)
	}

	hMinusG := make([]fr.Element, DomainSize)
	for i := range hMinusG {
		hMinusG[i].Sub(&h[i], &g[i])
	}

	e := c.Commit(h)
	transcript.AppendPoint(&e, "E")

	var ipaCommitment banderwagon.Element
	ipaCommitment.Sub(&e, &d)

	inputPointVector := weights.BarycentricFormulaConstants(t)

	var poly LagrangeBasis
	copy(poly[:], hMinusG)

	proverQuery := ProverQuery{
		Poly: poly,
		C:    ipaCommitment,
		Z:    t,
		B:    inputPointVector,
	}
	_, ipaProof := CreateIPAProof(transcript, c, proverQuery)

	return MultiProof{IPA: ipaProof, D: d}
}

// CheckMultiProof verifies a MultiProof against queries, returning true
// iff every claimed opening is consistent with it. A commitment opened
// at more than one point contributes once per query but is
// accumulated under a single grouped coefficient, keyed by its
// serialized encoding, so it is never double-counted when
// reconstructing E.
func CheckMultiProof(transcript *Transcript, c *crs.CRS, weights *PrecomputedWeights, queries []MultiVerifierQuery, proof MultiProof) bool {
	transcript.DomainSep("multiproof")

	for _, q := range queries {
		transcript.AppendPoint(&q.C, "C")
		transcript.AppendScalar(&q.Z, "z")
		transcript.AppendScalar(&q.Y, "y")
	}

	r := transcript.ChallengeScalar("r")

	transcript.AppendPoint(&proof.D, "D")
	t := transcript.ChallengeScalar("t")

	type key = [fp.ByteLen]byte
	coeffByCommitment := make(map[key]fr.Element)
	commitmentByKey := make(map[key]banderwagon.Element)

	g2OfT := fr.Zero()
	powerOfR := fr.One()

	for _, q := range queries {
		index := indexOf(q.Z)

		var denom, coeff fr.Element
		denom.Sub(&t, &domainCache[index])
		coeff.Inverse(&denom)
		coeff.Mul(&coeff, &powerOfR)

		var term fr.Element
		term.Mul(&coeff, &q.Y)
		g2OfT.Add(&g2OfT, &term)

		k := q.C.Bytes()
		if existing, ok := coeffByCommitment[k]; ok {
			coeff.Add(&coeff, &existing)
		}
		coeffByCommitment[k] = coeff
		commitmentByKey[k] = q.C

		powerOfR.Mul(&powerOfR, &r)
	}

	points := make([]banderwagon.Element, 0, len(coeffByCommitment))
	coeffs := make([]fr.Element, 0, len(coeffByCommitment))
	for k, coeff := range coeffByCommitment {
		points = append(points, commitmentByKey[k])
		coeffs = append(coeffs, coeff)
	}
	e := banderwagon.MSM(points, coeffs)
	transcript.AppendPoint(&e, "E")

	var ipaCommitment banderwagon.Element
	ipaCommitment.Sub(&e, &proof.D)

	inputPointVector := weights.BarycentricFormulaConstants(t)

	verifierQuery := VerifierQuery{
		C:     ipaCommitment,
		Z:     t,
		B:     inputPointVector,
		Y:     g2OfT,
		Proof: proof.IPA,
	}
	return CheckIPAProof(transcript, c, verifierQuery)
}
