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

// Package ipa implements the Bulletproofs-style inner product argument
// used to open Banderwagon vector commitments, along with the
// supporting polynomial, barycentric-weight, and transcript machinery,
// and the multipoint (multiproof) opening built on top of it.
package ipa

import (
	"errors"

	"github.com/ethereum/verkle-trie/banderwagon"
	"github.com/ethereum/verkle-trie/fr"
	"github.com/ethereum/verkle-trie/ipa/crs"
)

// NumRounds is log2(DomainSize), the number of halving rounds the IPA
// protocol runs.
const NumRounds = 8

// ErrInvalidProof is the package's sentinel for a proof that fails to
// verify. CheckIPAProof and CheckMultiProof themselves report that
// outcome as a false result and do not return this error. Fiat-Shamir
// makes verification deterministic: there is no retry path, only
// accept or reject.
var ErrInvalidProof = errors.New("ipa: invalid proof")

// ProverQuery bundles what the prover needs to open C = Commit(Poly) at
// point Z, claiming inner product y = <Poly, B>.
type ProverQuery struct {
	Poly LagrangeBasis
	C    banderwagon.Element
	Z    fr.Element
	B    [DomainSize]fr.Element
}

// VerifierQuery bundles what the verifier needs to check a claimed
// opening of C at Z with output Y, against Proof.
type VerifierQuery struct {
	C     banderwagon.Element
	Z     fr.Element
	B     [DomainSize]fr.Element
	Y     fr.Element
	Proof Proof
}

// Proof is an IPA opening proof: one (L, R) commitment pair per
// reduction round, plus the final folded scalar A.
type Proof struct {
	L [NumRounds]banderwagon.Element
	R [NumRounds]banderwagon.Element
	A fr.Element
}

func innerProduct(a, b []fr.Element) fr.Element {
	r := fr.Zero()
	for i := range a {
		var term fr.Element
		term.Mul(&a[i], &b[i])
		r.Add(&r, &term)
	}
	return r
}

func foldScalars(a, b []fr.Element, x fr.Element) []fr.Element {
	out := make([]fr.Element, len(a))
	for i := range a {
		var term fr.Element
		term.Mul(&b[i], &x)
		out[i].Add(&a[i], &term)
	}
	return out
}

func foldPoints(a, b []banderwagon.Element, x fr.Element) []banderwagon.Element {
	out := make([]banderwagon.Element, len(a))
	for i := range a {
		var term banderwagon.Element
		term.ScalarMul(&b[i], &x)
		out[i].Add(&a[i], &term)
	}
	return out
}

// CreateIPAProof produces an opening proof for query.C = Commit(query.Poly)
// against basis c, returning the claimed inner product y = <Poly, B> and
// the proof that attests to it. The transcript must already reflect any
// protocol-level context the caller wants bound into the proof (e.g. a
// multiproof's combination challenges).
func CreateIPAProof(transcript *Transcript, c *crs.CRS, query ProverQuery) (fr.Element, Proof) {
	transcript.DomainSep("ipa")

	a := append([]fr.Element(nil), query.Poly[:]...)
	b := append([]fr.Element(nil), query.B[:]...)
	basis := append([]banderwagon.Element(nil), c.SRS[:]...)

	y := innerProduct(a, b)

	transcript.AppendPoint(&query.C, "C")
	transcript.AppendScalar(&query.Z, "input point")
	transcript.AppendScalar(&y, "output point")
	w := transcript.ChallengeScalar("w")

	var q banderwagon.Element
	q.ScalarMul(&c.Q, &w)

	var proof Proof
	n := len(a)
	round := 0
	for n > 1 {
		m := n / 2
		aL, aR := a[:m], a[m:]
		bL, bR := b[:m], b[m:]
		gL, gR := basis[:m], basis[m:]

		zL := innerProduct(aR, bL)
		zR := innerProduct(aL, bR)

		var cL, cR, termL, termR banderwagon.Element
		cL = banderwagon.MSM(gL, aR)
		termL.ScalarMul(&q, &zL)
		cL.Add(&cL, &termL)

		cR = banderwagon.MSM(gR, aL)
		termR.ScalarMul(&q, &zR)
		cR.Add(&cR, &termR)

		proof.L[round] = cL
		proof.R[round] = cR

		transcript.AppendPoint(&cL, "L")
		transcript.AppendPoint(&cR, "R")
		x := transcript.ChallengeScalar("x")

		var xInv fr.Element
		xInv.Inverse(&x)

		a = foldScalars(aL, aR, x)
		b = foldScalars(bL, bR, xInv)
		basis = foldPoints(gL, gR, xInv)

		n = m
		round++
	}

	proof.A = a[0]
	return y, proof
}

// CheckIPAProof verifies an IPA opening proof, returning true iff it
// attests to the claimed commitment, point, and output value. Round
// challenges are collected first and batch-inverted once, rather than
// inverted one at a time as the naive per-round approach would.
func CheckIPAProof(transcript *Transcript, c *crs.CRS, query VerifierQuery) bool {
	transcript.DomainSep("ipa")

	b := append([]fr.Element(nil), query.B[:]...)

	transcript.AppendPoint(&query.C, "C")
	transcript.AppendScalar(&query.Z, "input point")
	transcript.AppendScalar(&query.Y, "output point")
	w := transcript.ChallengeScalar("w")

	var q, current banderwagon.Element
	q.ScalarMul(&c.Q, &w)
	var qy banderwagon.Element
	qy.ScalarMul(&q, &query.Y)
	current.Add(&query.C, &qy)

	xs := make([]fr.Element, NumRounds)
	for i := 0; i < NumRounds; i++ {
		cL, cR := query.Proof.L[i], query.Proof.R[i]
		transcript.AppendPoint(&cL, "L")
		transcript.AppendPoint(&cR, "R")
		xs[i] = transcript.ChallengeScalar("x")
	}
	xInvs := fr.BatchInvert(xs)

	for i := 0; i < NumRounds; i++ {
		cL, cR := query.Proof.L[i], query.Proof.R[i]
		var termL, termR banderwagon.Element
		termL.ScalarMul(&cL, &xs[i])
		termR.ScalarMul(&cR, &xInvs[i])
		current.Add(&current, &termL)
		current.Add(&current, &termR)
	}

	basis := append([]banderwagon.Element(nil), c.SRS[:]...)
	for i := 0; i < NumRounds; i++ {
		m := len(basis) / 2
		gL, gR := basis[:m], basis[m:]
		bL, bR := b[:m], b[m:]
		basis = foldPoints(gL, gR, xInvs[i])
		b = foldScalars(bL, bR, xInvs[i])
	}

	if len(b) != 1 || len(basis) != 1 {
		return false
	}

	var gotCommitment, term1, term2 banderwagon.Element
	term1.ScalarMul(&basis[0], &query.Proof.A)

	var ab fr.Element
	ab.Mul(&query.Proof.A, &b[0])
	term2.ScalarMul(&q, &ab)

	gotCommitment.Add(&term1, &term2)

	return current.Equal(&gotCommitment)
}
