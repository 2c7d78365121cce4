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
	"crypto/sha256"
	"hash"

	"github.com/ethereum/verkle-trie/banderwagon"
	"github.com/ethereum/verkle-trie/fr"
)

// Transcript implements the Fiat-Shamir transformation used by the IPA
// and multiproof protocols: a running SHA-256 state that absorbs
// labeled scalars and points, and squeezes out challenge scalars.
type Transcript struct {
	state hash.Hash
}

// NewTranscript starts a transcript domain-separated by label.
func NewTranscript(label string) *Transcript {
	t := &Transcript{state: sha256.New()}
	t.state.Write([]byte(label))
	return t
}

// DomainSep separates sub-protocols, or separates appends from a
// challenge squeeze, by absorbing label on its own.
func (t *Transcript) DomainSep(label string) {
	t.state.Write([]byte(label))
}

// AppendScalar absorbs label followed by scalar's little-endian bytes.
func (t *Transcript) AppendScalar(scalar *fr.Element, label string) {
	b := scalar.Bytes()
	t.state.Write([]byte(label))
	t.state.Write(b[:])
}

// AppendPoint absorbs label followed by point's compressed encoding.
func (t *Transcript) AppendPoint(point *banderwagon.Element, label string) {
	b := point.Bytes()
	t.state.Write([]byte(label))
	t.state.Write(b[:])
}

// ChallengeScalar domain-separates on label, hashes the transcript so
// far into a challenge, resets the running hash, then re-appends the
// challenge under the same label before returning it. The reset is
// cosmetic; the rebind is load-bearing, since it makes every
// subsequent challenge depend on every prior one, preventing a
// malicious prover from engineering a repeat.
func (t *Transcript) ChallengeScalar(label string) fr.Element {
	t.DomainSep(label)

	digest := t.state.Sum(nil)
	var challenge fr.Element
	challenge.SetBytesReduce(digest)

	t.state = sha256.New()
	t.AppendScalar(&challenge, label)

	return challenge
}
