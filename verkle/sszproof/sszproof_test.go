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

package sszproof

import (
	"testing"

	"github.com/karalabe/ssz"
	"github.com/stretchr/testify/require"
)

func TestIPAProofSSZRoundTrip(t *testing.T) {
	var p IPAProofSSZ
	for i := range p.CL {
		p.CL[i][0] = byte(i + 1)
		p.CR[i][0] = byte(i + 101)
	}
	p.FinalEvaluation[0] = 0xab

	buf := make([]byte, ssz.Size(&p))
	require.NoError(t, ssz.EncodeToBytes(buf, &p))

	var got IPAProofSSZ
	require.NoError(t, ssz.DecodeFromBytes(buf, &got))
	require.Equal(t, p, got)
}

func TestStemStateDiffSSZRoundTrip(t *testing.T) {
	s := StemStateDiffSSZ{}
	for i := range s.Stem {
		s.Stem[i] = byte(i)
	}

	buf := make([]byte, ssz.Size(&s))
	require.NoError(t, ssz.EncodeToBytes(buf, &s))

	var got StemStateDiffSSZ
	require.NoError(t, ssz.DecodeFromBytes(buf, &got))
	require.Equal(t, s, got)
}

func TestVerkleProofSSZRoundTrip(t *testing.T) {
	p := VerkleProofSSZ{
		OtherStems:            [][31]byte{{1}, {2, 3}},
		DepthExtensionPresent: []byte{0x01, 0x02, 0x03},
		CommitmentsByPath:     [][32]byte{{9}, {8}, {7}},
	}
	p.D[0] = 0xff
	for i := range p.IPAProof.CL {
		p.IPAProof.CL[i][0] = byte(i + 1)
		p.IPAProof.CR[i][0] = byte(i + 1)
	}
	p.IPAProof.FinalEvaluation[0] = 0x42

	buf := make([]byte, ssz.Size(&p))
	require.NoError(t, ssz.EncodeToBytes(buf, &p))

	var got VerkleProofSSZ
	require.NoError(t, ssz.DecodeFromBytes(buf, &got))
	require.Equal(t, p, got)
}

func TestVerkleProofSSZRoundTripEmpty(t *testing.T) {
	var p VerkleProofSSZ

	buf := make([]byte, ssz.Size(&p))
	require.NoError(t, ssz.EncodeToBytes(buf, &p))

	var got VerkleProofSSZ
	require.NoError(t, ssz.DecodeFromBytes(buf, &got))
	require.Equal(t, p, got)
}
