package bandersnatch

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ethereum/verkle-trie/fr"
)

func TestGeneratorOnCurve(t *testing.T) {
	g := Generator()
	require.True(t, g.IsOnCurve())
}

func TestIdentityOnCurve(t *testing.T) {
	id := Identity()
	require.True(t, id.IsOnCurve())
}

func TestAddNegIsIdentity(t *testing.T) {
	g := Generator()
	var neg, sum PointAffine
	neg.Neg(&g)
	sum.Add(&g, &neg)

	id := Identity()
	require.True(t, sum.Equal(&id))
}

func TestDoubleMatchesAdd(t *testing.T) {
	g := Generator()
	var doubled, added PointAffine
	doubled.Double(&g)
	added.Add(&g, &g)
	require.True(t, doubled.Equal(&added))
}

// rawScalarMul multiplies p by the raw big.Int n via double-and-add,
// independent of fr.Element (whose arithmetic is reduced mod the group
// order and so can't itself be used to probe what that order is).
func rawScalarMul(p *PointAffine, n *big.Int) PointAffine {
	result := Identity()
	temp := *p
	for i := 0; i < n.BitLen(); i++ {
		if n.Bit(i) == 1 {
			result.Add(&result, &temp)
		}
		temp.Double(&temp)
	}
	return result
}

func TestGeneratorOrderMatchesFrModulus(t *testing.T) {
	g := Generator()
	result := rawScalarMul(&g, fr.Modulus)
	id := Identity()
	require.True(t, result.Equal(&id))
}

func TestScalarMulByFrElementMatchesRawScalarMul(t *testing.T) {
	g := Generator()
	var scalar fr.Element
	scalar.SetUint64(12345)

	var viaAPI PointAffine
	viaAPI.ScalarMul(&g, &scalar)

	raw := big.NewInt(12345)
	viaRaw := rawScalarMul(&g, raw)

	require.True(t, viaAPI.Equal(&viaRaw))
}

func TestBytesRoundTrip(t *testing.T) {
	g := Generator()
	b := g.Bytes()

	var got PointAffine
	require.True(t, got.SetBytes(b))
	require.True(t, g.Equal(&got))
}

func TestGetYCoordinateSignSelection(t *testing.T) {
	g := Generator()
	yPos, ok := GetYCoordinate(g.X, true)
	require.True(t, ok)
	yNeg, ok := GetYCoordinate(g.X, false)
	require.True(t, ok)

	require.True(t, yPos.LexicographicallyLargest())
	require.False(t, yNeg.LexicographicallyLargest())
}
