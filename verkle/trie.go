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
	"github.com/ethereum/verkle-trie/fr"
	"github.com/ethereum/verkle-trie/ipa/crs"
)

// Trie is a Verkle trie: a radix-256 authenticated key-value map whose
// every node carries a Banderwagon/IPA vector commitment, updated
// incrementally on every Insert rather than recomputed from scratch.
type Trie struct {
	crs  *crs.CRS
	root *InnerNode
}

// New returns an empty trie committed against crs.Default().
func New() *Trie {
	return NewWithCRS(crs.Default())
}

// NewWithCRS returns an empty trie committed against c.
func NewWithCRS(c *crs.CRS) *Trie {
	return &Trie{crs: c, root: newInnerNode()}
}

// frame records, for one ancestor InnerNode visited while descending to
// a key's leaf, the index used to reach the next node down and that
// next node's commitment field value as it stood before this
// operation — needed to fold the eventual commitment delta back up
// the path after the leaf-level change is known.
type frame struct {
	parent   *InnerNode
	index    byte
	oldField fr.Element
}

// propagate folds the commitment change at (node, idx) — whose child's
// field value moved from oldField to newField — into node, then
// repeats the same fold up through trail from the bottom, so every
// ancestor's commitment reflects the change with exactly one scalar
// multiplication and one point addition per level.
func (t *Trie) propagate(node *InnerNode, idx byte, oldField, newField fr.Element, trail []frame) {
	node.updateChild(idx, oldField, newField, t.crs)
	childField := node.Commitment().ToField()
	for i := len(trail) - 1; i >= 0; i-- {
		f := trail[i]
		f.parent.updateChild(f.index, f.oldField, childField, t.crs)
		childField = f.parent.Commitment().ToField()
	}
}

// Insert sets key (32 bytes) to value (32 bytes) in the trie. A nil
// value is rejected with ErrUnsupportedOperation: this trie has no
// deletion semantics, so there is nothing for a nil write to mean.
// Three cases arise at the point where descent stops: the slot holds
// a leaf with a matching stem (update it in place), a leaf with a
// different stem (split it, inserting whatever chain of single-child
// InnerNodes is needed to separate the two stems at their first
// differing byte), or no child at all (insert a fresh leaf directly).
func (t *Trie) Insert(key, value []byte) error {
	if len(key) != 32 {
		return ErrInvalidKeyLength
	}
	if value == nil {
		return ErrUnsupportedOperation
	}
	if len(value) != 32 {
		return ErrInvalidValueLength
	}

	var stem [StemSize]byte
	copy(stem[:], key[:StemSize])
	suffix := key[StemSize]
	const present = true

	node := t.root
	depth := 0
	var trail []frame

	for {
		idx := stem[depth]
		child := node.Child(idx)

		var oldField fr.Element
		if child != nil {
			oldField = child.Commitment().ToField()
		}

		switch c := child.(type) {
		case nil:
			leaf := newLeafNode(stem, t.crs)
			leaf.setValue(suffix, value, present, t.crs)
			node.setChild(idx, leaf)
			t.propagate(node, idx, oldField, leaf.Commitment().ToField(), trail)
			return nil

		case *LeafNode:
			if c.stem == stem {
				c.setValue(suffix, value, present, t.crs)
				t.propagate(node, idx, oldField, c.Commitment().ToField(), trail)
				return nil
			}

			newLeaf := newLeafNode(stem, t.crs)
			newLeaf.setValue(suffix, value, present, t.crs)

			common, diffOld, diffNew, _ := pathDiff(c.stem, stem)
			diffIndex := len(common)

			branch := newInnerNode()
			branch.setChild(diffOld, c)
			branch.updateChild(diffOld, fr.Zero(), c.Commitment().ToField(), t.crs)
			branch.setChild(diffNew, newLeaf)
			branch.updateChild(diffNew, fr.Zero(), newLeaf.Commitment().ToField(), t.crs)

			top := Node(branch)
			for j := diffIndex - 1; j > depth; j-- {
				parent := newInnerNode()
				parent.setChild(stem[j], top)
				parent.updateChild(stem[j], fr.Zero(), top.Commitment().ToField(), t.crs)
				top = parent
			}

			node.setChild(idx, top)
			t.propagate(node, idx, oldField, top.Commitment().ToField(), trail)
			return nil

		case *InnerNode:
			trail = append(trail, frame{parent: node, index: idx, oldField: oldField})
			node = c
			depth++

		default:
			panic("verkle: unreachable node type")
		}
	}
}

// InsertBatch inserts every (keys[i], values[i]) pair in order. It is
// the naive per-key loop: there is no batched commitment shortcut here,
// each Insert still folds its own delta up the path.
func (t *Trie) InsertBatch(keys, values [][]byte) error {
	for i := range keys {
		if err := t.Insert(keys[i], values[i]); err != nil {
			return err
		}
	}
	return nil
}

// Get looks up key, returning its value and true if present, or nil
// and false if the key (or its stem) is absent from the trie.
func (t *Trie) Get(key []byte) ([]byte, bool, error) {
	if len(key) != 32 {
		return nil, false, ErrInvalidKeyLength
	}

	var stem [StemSize]byte
	copy(stem[:], key[:StemSize])
	suffix := key[StemSize]

	node := t.root
	depth := 0
	for {
		child := node.Child(stem[depth])
		switch c := child.(type) {
		case nil:
			return nil, false, nil
		case *LeafNode:
			if c.stem != stem {
				return nil, false, nil
			}
			v, ok := c.Value(suffix)
			return v, ok, nil
		case *InnerNode:
			node = c
			depth++
		default:
			panic("verkle: unreachable node type")
		}
	}
}

// Root returns the trie's root commitment in its compressed 32-byte
// encoding.
func (t *Trie) Root() [32]byte {
	point := t.root.Commitment().Point()
	return point.Bytes()
}

// Copy returns a deep copy of the trie: every node and commitment is
// duplicated, so mutating the copy never touches the original.
func (t *Trie) Copy() *Trie {
	return &Trie{crs: t.crs, root: copyInner(t.root)}
}

func copyInner(n *InnerNode) *InnerNode {
	out := newInnerNode()
	out.commit = n.commit.Clone()
	out.present = n.present.Clone()
	for idx, child := range n.children {
		switch c := child.(type) {
		case *InnerNode:
			out.children[idx] = copyInner(c)
		case *LeafNode:
			out.children[idx] = copyLeaf(c)
		}
	}
	return out
}

func copyLeaf(l *LeafNode) *LeafNode {
	out := &LeafNode{
		stem:      l.stem,
		values:    make(map[byte][]byte, len(l.values)),
		c1:        l.c1.Clone(),
		c2:        l.c2.Clone(),
		extension: l.extension.Clone(),
	}
	for idx, v := range l.values {
		cp := make([]byte, len(v))
		copy(cp, v)
		out.values[idx] = cp
	}
	return out
}

// CreateProof and VerifyProof are intentionally unimplemented: this
// trie's node-level commitment structure is complete, but wiring it up
// to the multiproof machinery in package ipa to produce and check
// trie-wide opening proofs is out of scope here.
func (t *Trie) CreateProof(keys [][]byte) (interface{}, error) {
	return nil, ErrUnsupportedOperation
}

func (t *Trie) VerifyProof(proof interface{}) (bool, error) {
	return false, ErrUnsupportedOperation
}
