package ipa

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethereum/verkle-trie/fr"
	"github.com/ethereum/verkle-trie/ipa/crs"
)

// countingDown builds the LagrangeBasis [32..1] repeated eight times,
// the mirror image of repeatingCount.
func countingDown() LagrangeBasis {
	var poly LagrangeBasis
	for i := range poly {
		poly[i].SetInt64(32 - int64(i%32))
	}
	return poly
}

func TestMultiProofVector(t *testing.T) {
	const stateHex = "eee8a80357ff74b766eba39db90797d022e8d6dee426ded71234241be504d519"

	c := crs.Default()
	weights := DefaultWeights()

	polyA := repeatingCount()
	polyB := countingDown()

	cA := c.Commit(polyA[:])
	cB := c.Commit(polyB[:])

	var z, yA, yB fr.Element
	z.SetInt64(0)
	yA.SetInt64(1)
	yB.SetInt64(32)

	proverTranscript := NewTranscript("test")
	queries := []MultiProverQuery{
		{F: polyA, C: cA, Z: z, Y: yA},
		{F: polyB, C: cB, Z: z, Y: yB},
	}
	proof := CreateMultiProof(proverTranscript, c, weights, queries)

	proverState := proverTranscript.ChallengeScalar("state")
	proverBytes := proverState.Bytes()
	require.Equal(t, stateHex, hex.EncodeToString(proverBytes[:]))

	verifierTranscript := NewTranscript("test")
	verifierQueries := []MultiVerifierQuery{
		{C: cA, Z: z, Y: yA},
		{C: cB, Z: z, Y: yB},
	}
	require.True(t, CheckMultiProof(verifierTranscript, c, weights, verifierQueries, proof))

	verifierState := verifierTranscript.ChallengeScalar("state")
	verifierBytes := verifierState.Bytes()
	require.Equal(t, stateHex, hex.EncodeToString(verifierBytes[:]))
}

func TestMultiProofCompleteness(t *testing.T) {
	c := crs.Default()
	weights := DefaultWeights()

	var polyA, polyB, polyC LagrangeBasis
	for i := range polyA {
		polyA[i].SetInt64(int64(i%17) + 1)
		polyB[i].SetInt64(int64(i%23) + 1)
		polyC[i].SetInt64(int64(i%5) + 1)
	}

	cA := c.Commit(polyA[:])
	cB := c.Commit(polyB[:])
	cC := c.Commit(polyC[:])

	zA, zB, zC := domainCache[3], domainCache[10], domainCache[200]
	yA, yB, yC := polyA[3], polyB[10], polyC[200]

	proverTranscript := NewTranscript("multi")
	queries := []MultiProverQuery{
		{F: polyA, C: cA, Z: zA, Y: yA},
		{F: polyB, C: cB, Z: zB, Y: yB},
		{F: polyC, C: cC, Z: zC, Y: yC},
	}
	proof := CreateMultiProof(proverTranscript, c, weights, queries)

	verifierTranscript := NewTranscript("multi")
	verifierQueries := []MultiVerifierQuery{
		{C: cA, Z: zA, Y: yA},
		{C: cB, Z: zB, Y: yB},
		{C: cC, Z: zC, Y: yC},
	}
	require.True(t, CheckMultiProof(verifierTranscript, c, weights, verifierQueries, proof))
}

func TestMultiProofRepeatedCommitmentDifferentPoints(t *testing.T) {
	c := crs.Default()
	weights := DefaultWeights()

	poly := repeatingCount()
	commitment := c.Commit(poly[:])

	z1, z2 := domainCache[0], domainCache[1]
	y1, y2 := poly[0], poly[1]

	proverTranscript := NewTranscript("repeat")
	queries := []MultiProverQuery{
		{F: poly, C: commitment, Z: z1, Y: y1},
		{F: poly, C: commitment, Z: z2, Y: y2},
	}
	proof := CreateMultiProof(proverTranscript, c, weights, queries)

	verifierTranscript := NewTranscript("repeat")
	verifierQueries := []MultiVerifierQuery{
		{C: commitment, Z: z1, Y: y1},
		{C: commitment, Z: z2, Y: y2},
	}
	require.True(t, CheckMultiProof(verifierTranscript, c, weights, verifierQueries, proof))
}

func TestMultiProofSoundnessProbe(t *testing.T) {
	c := crs.Default()
	weights := DefaultWeights()

	polyA := repeatingCount()
	polyB := countingDown()
	cA := c.Commit(polyA[:])
	cB := c.Commit(polyB[:])

	var z, yA, yB fr.Element
	z.SetInt64(0)
	yA.SetInt64(1)
	yB.SetInt64(32)

	proverTranscript := NewTranscript("test")
	queries := []MultiProverQuery{
		{F: polyA, C: cA, Z: z, Y: yA},
		{F: polyB, C: cB, Z: z, Y: yB},
	}
	proof := CreateMultiProof(proverTranscript, c, weights, queries)

	one := fr.One()
	tampered := yA
	tampered.Add(&tampered, &one)

	verifierTranscript := NewTranscript("test")
	badQueries := []MultiVerifierQuery{
		{C: cA, Z: z, Y: tampered},
		{C: cB, Z: z, Y: yB},
	}
	require.False(t, CheckMultiProof(verifierTranscript, c, weights, badQueries, proof))
}
