package ipa

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethereum/verkle-trie/fr"
	"github.com/ethereum/verkle-trie/ipa/crs"
)

// repeatingCount builds the LagrangeBasis [1..32] repeated eight times
// over the 256-wide domain.
func repeatingCount() LagrangeBasis {
	var poly LagrangeBasis
	for i := range poly {
		poly[i].SetInt64(int64(i%32) + 1)
	}
	return poly
}

func TestIPAOpeningVector(t *testing.T) {
	const (
		commitmentHex = "1b9dff8f5ebbac250d291dfe90e36283a227c64b113c37f1bfb9e7a743cdb128"
		stateHex      = "0a81881cbfd7d7197a54ebd67ed6a68b5867f3c783706675b34ece43e85e7306"
	)

	c := crs.Default()
	poly := repeatingCount()
	commitment := c.Commit(poly[:])

	b := commitment.Bytes()
	require.Equal(t, commitmentHex, hex.EncodeToString(b[:]))

	var z fr.Element
	z.SetInt64(2101)
	weights := DefaultWeights().BarycentricFormulaConstants(z)

	transcript := NewTranscript("test")
	query := ProverQuery{Poly: poly, C: commitment, Z: z, B: weights}
	_, _ = CreateIPAProof(transcript, c, query)

	state := transcript.ChallengeScalar("state")
	got := state.Bytes()
	require.Equal(t, stateHex, hex.EncodeToString(got[:]))
}

func TestIPACompleteness(t *testing.T) {
	c := crs.Default()
	weights := DefaultWeights()

	var poly LagrangeBasis
	for i := range poly {
		poly[i].SetInt64(int64((i * 7) % 251))
	}
	commitment := c.Commit(poly[:])

	var z fr.Element
	z.SetInt64(9999)
	b := weights.BarycentricFormulaConstants(z)

	proverTranscript := NewTranscript("test")
	query := ProverQuery{Poly: poly, C: commitment, Z: z, B: b}
	y, proof := CreateIPAProof(proverTranscript, c, query)

	verifierTranscript := NewTranscript("test")
	vq := VerifierQuery{C: commitment, Z: z, B: b, Y: y, Proof: proof}
	require.True(t, CheckIPAProof(verifierTranscript, c, vq))
}

func TestIPASoundnessProbe(t *testing.T) {
	c := crs.Default()
	weights := DefaultWeights()

	poly := repeatingCount()
	commitment := c.Commit(poly[:])

	var z fr.Element
	z.SetInt64(2101)
	b := weights.BarycentricFormulaConstants(z)

	proverTranscript := NewTranscript("test")
	query := ProverQuery{Poly: poly, C: commitment, Z: z, B: b}
	y, proof := CreateIPAProof(proverTranscript, c, query)

	base := VerifierQuery{C: commitment, Z: z, B: b, Y: y, Proof: proof}
	one := fr.One()

	t.Run("tampered commitment", func(t *testing.T) {
		q := base
		q.C.Double(&q.C)
		require.False(t, CheckIPAProof(NewTranscript("test"), c, q))
	})

	t.Run("tampered point", func(t *testing.T) {
		q := base
		q.Z.Add(&q.Z, &one)
		require.False(t, CheckIPAProof(NewTranscript("test"), c, q))
	})

	t.Run("tampered output", func(t *testing.T) {
		q := base
		q.Y.Add(&q.Y, &one)
		require.False(t, CheckIPAProof(NewTranscript("test"), c, q))
	})

	t.Run("tampered final scalar", func(t *testing.T) {
		q := base
		q.Proof.A.Add(&q.Proof.A, &one)
		require.False(t, CheckIPAProof(NewTranscript("test"), c, q))
	})

	t.Run("tampered round commitment", func(t *testing.T) {
		q := base
		q.Proof.L[0].Double(&q.Proof.L[0])
		require.False(t, CheckIPAProof(NewTranscript("test"), c, q))
	})

	t.Run("wrong transcript label", func(t *testing.T) {
		q := base
		require.False(t, CheckIPAProof(NewTranscript("not-test"), c, q))
	})
}
