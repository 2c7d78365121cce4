package banderwagon

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethereum/verkle-trie/fr"
)

func TestGeneratorOnCurve(t *testing.T) {
	g := Generator()
	require.True(t, g.IsOnCurve())
}

func TestTwoTorsionEquality(t *testing.T) {
	g := Generator()
	torsion := TwoTorsionPoint()

	var sum Element
	sum.Add(&g, &torsion)
	require.True(t, sum.Equal(&g))
}

func TestIdentityRejectsZeroZero(t *testing.T) {
	var raw Element
	require.False(t, raw.Equal(&raw))
}

func TestBytesRoundTrip(t *testing.T) {
	g := Generator()
	b := g.Bytes()

	var got Element
	require.NoError(t, got.SetBytes(b[:]))
	require.True(t, g.Equal(&got))
}

func TestGeneratorDoubledSixteenTimes(t *testing.T) {
	const (
		first = "4a2c7486fd924882bf02c6908de395122843e3e05264d7991e18e7985dad51e9"
		last  = "3fa4384b2fa0ecc3c0582223602921daaa893a97b64bdf94dcaa504e8b7b9e5f"
	)

	current := Generator()
	encodings := make([]string, 16)
	for i := 0; i < 16; i++ {
		b := current.Bytes()
		encodings[i] = hex.EncodeToString(b[:])
		current.Double(&current)
	}

	require.Equal(t, first, encodings[0])
	require.Equal(t, last, encodings[15])
}

func TestAddSubRoundTrip(t *testing.T) {
	g := Generator()
	var h, scalar2, back Element
	var two fr.Element
	two.SetUint64(2)
	scalar2.ScalarMul(&g, &two)
	h.Add(&g, &g)
	require.True(t, h.Equal(&scalar2))

	back.Sub(&h, &g)
	require.True(t, back.Equal(&g))
}

func TestMSMMatchesSequentialSum(t *testing.T) {
	g := Generator()
	var h Element
	h.Double(&g)

	var s1, s2 fr.Element
	s1.SetUint64(3)
	s2.SetUint64(5)

	got := MSM([]Element{g, h}, []fr.Element{s1, s2})

	var t1, t2, want Element
	t1.ScalarMul(&g, &s1)
	t2.ScalarMul(&h, &s2)
	want.Add(&t1, &t2)

	require.True(t, got.Equal(&want))
}

func TestMapToFieldDeterministic(t *testing.T) {
	g := Generator()
	a := g.MapToField()
	b := g.MapToField()
	require.True(t, a.Equal(&b))
}
