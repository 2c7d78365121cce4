package fp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func randomElement(t *testing.T) Element {
	t.Helper()
	var e Element
	_, err := e.SetRandom()
	require.NoError(t, err)
	return e
}

func TestRoundTrip(t *testing.T) {
	for i := 0; i < 32; i++ {
		a := randomElement(t)

		b := a.Bytes()
		var got Element
		require.NoError(t, got.SetBytes(b[:]))
		require.True(t, a.Equal(&got))
	}
}

func TestAdditionAssociative(t *testing.T) {
	a := randomElement(t)
	b := randomElement(t)
	c := randomElement(t)

	var lhs, rhs, tmp Element
	tmp.Add(&a, &b)
	lhs.Add(&tmp, &c)
	tmp.Add(&b, &c)
	rhs.Add(&a, &tmp)

	require.True(t, lhs.Equal(&rhs))
}

func TestInverse(t *testing.T) {
	a := randomElement(t)

	var inv, product Element
	inv.Inverse(&a)
	product.Mul(&a, &inv)

	one := One()
	require.True(t, product.Equal(&one))
}

func TestInverseZeroPanics(t *testing.T) {
	var zero Element
	require.Panics(t, func() {
		var z Element
		z.Inverse(&zero)
	})
}

func TestSqrtMatchesSquare(t *testing.T) {
	found := 0
	for i := 0; i < 64 && found < 8; i++ {
		a := randomElement(t)
		var square Element
		square.Square(&a)

		if square.Legendre() != 1 {
			continue
		}
		found++

		var root Element
		_, ok := root.Sqrt(&square)
		require.True(t, ok)

		var back Element
		back.Square(&root)
		require.True(t, back.Equal(&square))
	}
	require.Greater(t, found, 0, "expected to find at least one quadratic residue")
}

func TestBatchInvertMatchesNaive(t *testing.T) {
	xs := make([]Element, 9)
	for i := range xs {
		xs[i] = randomElement(t)
	}

	batched := BatchInvert(xs)
	for i := range xs {
		var want Element
		want.Inverse(&xs[i])
		require.True(t, want.Equal(&batched[i]))
	}
}
