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

// Package verkle implements the Verkle trie: a radix-256 authenticated
// key-value map whose node commitments are Banderwagon/IPA vector
// commitments, updated incrementally rather than recomputed from
// scratch on every insertion.
package verkle

import (
	"github.com/ethereum/verkle-trie/banderwagon"
	"github.com/ethereum/verkle-trie/fr"
)

// VerkleCommitment pairs a Banderwagon group element with its memoized
// scalar-field image, used as the "node hash" fed into parent
// commitments. The memo is invalidated on every AddPoint and eagerly
// recomputed, mirroring the reference implementation's add_point.
type VerkleCommitment struct {
	point        banderwagon.Element
	pointAsField fr.Element
	valid        bool
}

// EmptyCommitment returns the commitment to the Banderwagon identity.
func EmptyCommitment() VerkleCommitment {
	return VerkleCommitment{point: banderwagon.Identity()}
}

// NewCommitment wraps an already-computed Banderwagon element.
func NewCommitment(point banderwagon.Element) VerkleCommitment {
	return VerkleCommitment{point: point}
}

// Point returns the underlying Banderwagon element.
func (c *VerkleCommitment) Point() banderwagon.Element {
	return c.point
}

// ToField returns the memoized scalar-field image of the commitment,
// computing and caching it on first use via the point's MapToField.
func (c *VerkleCommitment) ToField() fr.Element {
	if !c.valid {
		c.pointAsField = c.point.MapToField()
		c.valid = true
	}
	return c.pointAsField
}

// AddPoint adds delta to the commitment in place, invalidates the
// memoized field image, and immediately recomputes it so ToField never
// observes a stale cache.
func (c *VerkleCommitment) AddPoint(delta *banderwagon.Element) {
	c.point.Add(&c.point, delta)
	c.valid = false
	c.ToField()
}

// Clone returns a commitment with the same value as c but no shared
// mutable state: the underlying field elements are math/big-backed, so
// a plain struct copy would alias their internal digit slices with c's.
// Round-tripping through the compressed encoding sidesteps that
// without needing a deep-copy method on every field/curve type.
func (c *VerkleCommitment) Clone() VerkleCommitment {
	b := c.point.Bytes()
	var p banderwagon.Element
	if err := p.SetBytes(b[:]); err != nil {
		panic("verkle: cloning a valid commitment's point failed: " + err.Error())
	}
	return NewCommitment(p)
}
