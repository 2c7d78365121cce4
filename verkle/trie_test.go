package verkle

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
)

func sequentialBytes() []byte {
	b := make([]byte, 32)
	for i := range b {
		b[i] = byte(i + 1)
	}
	return b
}

func fullBytes(start, step int) []byte {
	b := make([]byte, 32)
	for i := range b {
		b[i] = byte(start + i*step)
	}
	return b
}

func TestEmptyTrieRootIsZero(t *testing.T) {
	tr := New()
	root := tr.Root()
	for _, b := range root {
		require.Zero(t, b)
	}
}

func TestInsertGetRoundTrip(t *testing.T) {
	tr := New()
	key := sequentialBytes()
	value := sequentialBytes()
	require.NoError(t, tr.Insert(key, value))

	got, ok, err := tr.Get(key)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, value, got)
}

func TestGetMissingKey(t *testing.T) {
	tr := New()
	require.NoError(t, tr.Insert(sequentialBytes(), sequentialBytes()))

	_, ok, err := tr.Get(fullBytes(200, 1))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestInsertIdempotent(t *testing.T) {
	tr := New()
	key := sequentialBytes()
	value := sequentialBytes()
	require.NoError(t, tr.Insert(key, value))
	before := tr.Root()

	require.NoError(t, tr.Insert(key, value))
	after := tr.Root()

	require.Equal(t, before, after, "re-inserting the same value changed the root:\n%s", spew.Sdump(tr.root))
}

func TestCopyIsolatesMutation(t *testing.T) {
	tr := New()
	key1 := sequentialBytes()
	value1 := sequentialBytes()
	require.NoError(t, tr.Insert(key1, value1))

	original := tr.Root()
	cp := tr.Copy()

	key2 := fullBytes(200, 1)
	value2 := fullBytes(9, 3)
	require.NoError(t, cp.Insert(key2, value2))

	require.Equal(t, original, tr.Root(), "mutating the copy affected the original:\n%s", spew.Sdump(tr.root))
	require.NotEqual(t, original, cp.Root())

	_, ok, err := tr.Get(key2)
	require.NoError(t, err)
	require.False(t, ok)

	got, ok, err := cp.Get(key2)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, value2, got)
}

// TestSingleInsertRootVector is the "single insert" case: the root
// node's commitment mapped into the scalar field after inserting one
// key/value pair.
func TestSingleInsertRootVector(t *testing.T) {
	const fieldHex = "029b6c4c8af9001f0ac76472766c6579f41eec84a73898da06eb97ebdab80a09"

	tr := New()
	key := sequentialBytes()
	value := sequentialBytes()
	require.NoError(t, tr.Insert(key, value))

	field := tr.root.Commitment().ToField()
	b := field.Bytes()
	require.Equal(t, fieldHex, hex.EncodeToString(b[:]))
}

// TestUpdateToRealValueRootVector inserts a placeholder zero value and
// then overwrites it with the real one, checking both of the trie's
// two root encodings against the values the same end state produces in
// TestSingleInsertRootVector: ToField() and the raw compressed point
// returned by Root() are different serializations of the same
// commitment, not competing answers to "the root".
func TestUpdateToRealValueRootVector(t *testing.T) {
	const (
		fieldHex = "029b6c4c8af9001f0ac76472766c6579f41eec84a73898da06eb97ebdab80a09"
		rootHex  = "6f5e7cfc3a158a64e5718b0d2f18f564171342380f5808f3d2a82f7e7f3c2778"
	)

	tr := New()
	key := sequentialBytes()
	placeholder := make([]byte, 32)
	require.NoError(t, tr.Insert(key, placeholder))

	value := sequentialBytes()
	require.NoError(t, tr.Insert(key, value))

	field := tr.root.Commitment().ToField()
	fb := field.Bytes()
	require.Equal(t, fieldHex, hex.EncodeToString(fb[:]))

	root := tr.Root()
	require.Equal(t, rootHex, hex.EncodeToString(root[:]))
}

// TestLongestPathSplitVector forces the deepest possible stem split: two
// keys agreeing on every byte but the second-to-last.
func TestLongestPathSplitVector(t *testing.T) {
	const fieldHex = "fe2e17833b90719eddcad493c352ccd491730643ecee39060c7c1fff5fcc621a"

	tr := New()
	keyZero := make([]byte, 32)
	keyZeroExcept30 := make([]byte, 32)
	keyZeroExcept30[30] = 1

	require.NoError(t, tr.Insert(keyZero, keyZero))
	require.NoError(t, tr.Insert(keyZeroExcept30, keyZeroExcept30))

	field := tr.root.Commitment().ToField()
	b := field.Bytes()
	require.Equal(t, fieldHex, hex.EncodeToString(b[:]))
}

// prngBytes reproduces the reference PRNG: SHA-256 over an 8-byte
// little-endian counter followed by a fixed 32-byte seed, counter
// starting at zero and incrementing once per output.
func prngBytes(seed [32]byte, n int) [][]byte {
	out := make([][]byte, n)
	for i := range out {
		h := sha256.New()
		var counter [8]byte
		binary.LittleEndian.PutUint64(counter[:], uint64(i))
		h.Write(counter[:])
		h.Write(seed[:])
		out[i] = h.Sum(nil)
	}
	return out
}

func TestPRNGVectors(t *testing.T) {
	var seed [32]byte
	outputs := prngBytes(seed, 3)

	expected := []string{
		"2c34ce1df23b838c5abf2a7f6437cca3d3067ed509ff25f11df6b11b582b51eb",
		"b68f593141969cfeddf2011667ccdca92d2d22b414194bdf4ccbaa2833c85be2",
		"74d8b89f49a16dd0a338f1dc90fe470f3137d7df12cf0b76c82b0b5f2fa9028b",
	}
	for i, want := range expected {
		require.Equal(t, want, hex.EncodeToString(outputs[i]))
	}
}

// TestPRNGInsert100Vector inserts the first 100 pseudorandom 32-byte
// outputs of the reference PRNG into a fresh trie, each as its own
// value, and checks the resulting root field encoding.
func TestPRNGInsert100Vector(t *testing.T) {
	const fieldHex = "afb01df826bd42ddea9001551980f7cfa74f0ca7e0ba36a9079dea4062848600"

	var seed [32]byte
	keys := prngBytes(seed, 100)

	tr := New()
	for _, k := range keys {
		require.NoError(t, tr.Insert(k, k))
	}

	field := tr.root.Commitment().ToField()
	b := field.Bytes()
	require.Equal(t, fieldHex, hex.EncodeToString(b[:]))
}

func TestInsertBatchMatchesSequentialInserts(t *testing.T) {
	var seed [32]byte
	keys := prngBytes(seed, 20)

	batched := New()
	require.NoError(t, batched.InsertBatch(keys, keys))

	sequential := New()
	for _, k := range keys {
		require.NoError(t, sequential.Insert(k, k))
	}

	require.Equal(t, sequential.Root(), batched.Root())
}

func TestInsertRejectsNilValue(t *testing.T) {
	tr := New()
	key := sequentialBytes()
	value := sequentialBytes()
	require.NoError(t, tr.Insert(key, value))
	before := tr.Root()

	require.ErrorIs(t, tr.Insert(key, nil), ErrUnsupportedOperation)
	require.Equal(t, before, tr.Root())
}

func TestInsertRejectsWrongLengths(t *testing.T) {
	tr := New()
	require.ErrorIs(t, tr.Insert(make([]byte, 31), sequentialBytes()), ErrInvalidKeyLength)
	require.ErrorIs(t, tr.Insert(sequentialBytes(), make([]byte, 31)), ErrInvalidValueLength)
}
