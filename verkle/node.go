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

package verkle

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/ethereum/verkle-trie/banderwagon"
	"github.com/ethereum/verkle-trie/fr"
	"github.com/ethereum/verkle-trie/ipa/crs"
)

// StemSize is the length in bytes of a leaf's stem: a key with its
// final (suffix) byte removed.
const StemSize = 31

// Node is a node of the trie: either an InnerNode (indexed by key byte,
// one per trie level) or a LeafNode (holds the up-to-256 values sharing
// a stem).
type Node interface {
	// Commitment returns the node's own commitment, by reference so
	// callers can incrementally update it with AddPoint.
	Commitment() *VerkleCommitment
}

// InnerNode is an internal trie node: up to 256 children indexed by the
// path byte at this node's depth, sparsely stored since real tries are
// nowhere near fully branching. present tracks occupied indices in O(1)
// without scanning the map, mirroring how a dense bitmap is kept
// alongside sparse storage purely to answer membership queries.
type InnerNode struct {
	children map[byte]Node
	present  *bitset.BitSet
	commit   VerkleCommitment
}

// newInnerNode returns an empty InnerNode, committing to nothing.
func newInnerNode() *InnerNode {
	return &InnerNode{
		children: make(map[byte]Node),
		present:  bitset.New(256),
		commit:   EmptyCommitment(),
	}
}

// Commitment implements Node.
func (n *InnerNode) Commitment() *VerkleCommitment {
	return &n.commit
}

// Child returns the child at index, or nil if absent.
func (n *InnerNode) Child(index byte) Node {
	return n.children[index]
}

// HasChild reports whether index is occupied.
func (n *InnerNode) HasChild(index byte) bool {
	return n.present.Test(uint(index))
}

// setChild installs child at index, without touching the commitment —
// the caller (the trie's insert path) is responsible for folding in the
// corresponding commitment delta via updateChild, since the two are
// computed from different information (old vs. new field value) that
// setChild alone doesn't have.
func (n *InnerNode) setChild(index byte, child Node) {
	n.children[index] = child
	n.present.Set(uint(index))
}

// updateChild folds the commitment delta for child index changing its
// field image from oldField to newField into this node's commitment,
// scaled by the CRS basis point for index.
func (n *InnerNode) updateChild(index byte, oldField, newField fr.Element, c *crs.CRS) {
	var delta fr.Element
	delta.Sub(&newField, &oldField)

	var deltaPoint banderwagon.Element
	deltaPoint.ScalarMul(&c.SRS[index], &delta)
	n.commit.AddPoint(&deltaPoint)
}

// LeafNode holds every value sharing a 31-byte stem, committed as two
// half-width vector commitments (C1 for suffixes 0-127, C2 for 128-255)
// plus an extension commitment binding {1, stem, C1-field, C2-field}.
type LeafNode struct {
	stem   [StemSize]byte
	values map[byte][]byte

	c1, c2    VerkleCommitment
	extension VerkleCommitment
}

// newLeafNode returns a LeafNode for stem with no values set yet, its
// extension commitment already bound to {0: 1, 1: stem-as-field} (the
// C1/C2 field terms are zero until a value is set, matching the
// identity commitment's field image).
func newLeafNode(stem [StemSize]byte, c *crs.CRS) *LeafNode {
	l := &LeafNode{
		stem:      stem,
		values:    make(map[byte][]byte),
		c1:        EmptyCommitment(),
		c2:        EmptyCommitment(),
		extension: EmptyCommitment(),
	}

	var stemField fr.Element
	stemField.SetBytesReduce(append(stem[:StemSize:StemSize], 0))

	one := fr.One()
	l.extension = NewCommitment(c.CommitSparse(map[int]fr.Element{0: one, 1: stemField}))
	return l
}

// Commitment implements Node.
func (l *LeafNode) Commitment() *VerkleCommitment {
	return &l.extension
}

// Value returns the raw value stored at suffix index, and whether one
// is present.
func (l *LeafNode) Value(index byte) ([]byte, bool) {
	v, ok := l.values[index]
	return v, ok
}

// setValue installs value at suffix index (present=false deletes it,
// if it's ever needed), incrementally updating C1 or C2 and then the
// extension commitment from the resulting deltas — never recomputing
// either commitment from scratch.
func (l *LeafNode) setValue(index byte, value []byte, present bool, c *crs.CRS) {
	oldValue, hadOld := l.values[index]
	oldLow, oldHigh := splitValue(oldValue, hadOld)
	newLow, newHigh := splitValue(value, present)

	var deltaLow, deltaHigh fr.Element
	deltaLow.Sub(&newLow, &oldLow)
	deltaHigh.Sub(&newHigh, &oldHigh)

	idxLow := (2 * int(index)) % 256
	idxHigh := (2*int(index) + 1) % 256

	var t1, t2, deltaPoint banderwagon.Element
	t1.ScalarMul(&c.SRS[idxLow], &deltaLow)
	t2.ScalarMul(&c.SRS[idxHigh], &deltaHigh)
	deltaPoint.Add(&t1, &t2)

	if index < 128 {
		oldField := l.c1.ToField()
		l.c1.AddPoint(&deltaPoint)
		newField := l.c1.ToField()

		var deltaC fr.Element
		deltaC.Sub(&newField, &oldField)
		var extDelta banderwagon.Element
		extDelta.ScalarMul(&c.SRS[2], &deltaC)
		l.extension.AddPoint(&extDelta)
	} else {
		oldField := l.c2.ToField()
		l.c2.AddPoint(&deltaPoint)
		newField := l.c2.ToField()

		var deltaC fr.Element
		deltaC.Sub(&newField, &oldField)
		var extDelta banderwagon.Element
		extDelta.ScalarMul(&c.SRS[3], &deltaC)
		l.extension.AddPoint(&extDelta)
	}

	if present {
		l.values[index] = value
	} else {
		delete(l.values, index)
	}
}

// pathDiff compares two stems and returns their common prefix bytes
// together with the first pair of bytes at which they diverge. hasDiff
// is false only if a and b are identical, which never happens where
// pathDiff is used (it's only called to split two leaves that were
// found to disagree).
func pathDiff(a, b [StemSize]byte) (common []byte, diffA, diffB byte, hasDiff bool) {
	for i := 0; i < StemSize; i++ {
		if a[i] != b[i] {
			return common, a[i], b[i], true
		}
		common = append(common, a[i])
	}
	return common, 0, 0, false
}
