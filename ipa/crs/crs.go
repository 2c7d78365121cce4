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

// Package crs derives and exposes the fixed 256-point common reference
// string that the IPA commitment scheme is built on.
package crs

import (
	"crypto/sha256"
	"encoding/binary"
	"sync"

	"github.com/ethereum/verkle-trie/banderwagon"
	"github.com/ethereum/verkle-trie/fp"
	"github.com/ethereum/verkle-trie/fr"
)

// NumPoints is the width of the committed vector, and thus the size of
// the basis G.
const NumPoints = 256

// seed is the domain-separation string hashed (with an appended 8-byte
// big-endian counter) to derive each CRS point.
const seed = "eth_verkle_oct_2021"

// CRS is the common reference string: a fixed basis of NumPoints
// independent Banderwagon generators, plus the distinguished point Q
// used to blind the inner product in the IPA scheme.
type CRS struct {
	SRS [NumPoints]banderwagon.Element
	Q   banderwagon.Element
}

// NewCRS deterministically rederives the 256-point basis by hashing
// seed with an increasing 8-byte big-endian counter through SHA-256,
// reducing each 32-byte big-endian digest modulo the base field
// modulus, attempting the re-encoded result as a compressed Banderwagon
// encoding and keeping it only if it decodes to a valid, non-generator
// point; the counter advances on any failure until 256 points are
// collected. Q is the Banderwagon generator.
func NewCRS() *CRS {
	crs := &CRS{Q: banderwagon.Generator()}
	generator := banderwagon.Generator()

	var counter uint64
	for i := 0; i < NumPoints; {
		digest := hashCounter(counter)
		counter++

		var p banderwagon.Element
		if err := p.SetBytes(digest[:]); err != nil {
			continue
		}
		if p.Equal(&generator) {
			continue
		}
		crs.SRS[i] = p
		i++
	}
	return crs
}

func hashCounter(counter uint64) [sha256.Size]byte {
	h := sha256.New()
	h.Write([]byte(seed))
	var counterBytes [8]byte
	binary.BigEndian.PutUint64(counterBytes[:], counter)
	h.Write(counterBytes[:])
	digest := h.Sum(nil)
	le := make([]byte, fp.ByteLen)
	for i, b := range digest {
		le[fp.ByteLen-1-i] = b
	}
	var x fp.Element
	x.SetBytesReduce(le)
	xLE := x.Bytes()
	var out [sha256.Size]byte
	for i, b := range xLE {
		out[fp.ByteLen-1-i] = b
	}
	return out
}

// Commit computes the MSM of coeffs against the CRS basis G, per
// VerkleCommitment's commit operation. len(coeffs) must not exceed
// NumPoints.
func (c *CRS) Commit(coeffs []fr.Element) banderwagon.Element {
	return banderwagon.MSM(c.SRS[:len(coeffs)], coeffs)
}

// CommitSparse computes the same MSM as Commit, but over a sparse
// index->coefficient map, touching only the basis points whose index
// is present in the map (an entry with a zero coefficient is still
// multiplied and added).
func (c *CRS) CommitSparse(coeffs map[int]fr.Element) banderwagon.Element {
	res := banderwagon.Identity()
	for idx, coeff := range coeffs {
		var term banderwagon.Element
		term.ScalarMul(&c.SRS[idx], &coeff)
		res.Add(&res, &term)
	}
	return res
}

var (
	defaultCRS  *CRS
	defaultOnce sync.Once
)

// Default returns the package-wide CRS singleton, deriving it on first
// use. Concurrent first callers block on the same sync.Once rather than
// racing independent derivations across, e.g., parallel package tests.
func Default() *CRS {
	defaultOnce.Do(func() {
		defaultCRS = NewCRS()
	})
	return defaultCRS
}
