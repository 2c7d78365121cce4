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
	"github.com/holiman/uint256"

	"github.com/ethereum/verkle-trie/fr"
)

// valueExistsMarker is added to the low 128-bit half of a present
// value so that committing to "value absent" and "value present, but
// zero" produce different field elements; Pedersen-style commitments
// otherwise can't distinguish committing to 0 from not committing at
// all.
var valueExistsMarker = new(uint256.Int).Lsh(uint256.NewInt(1), 128)

// splitValue splits a 32-byte value into its low/high 128-bit halves
// as field elements, adding valueExistsMarker to the low half iff
// present is true. The marker is added only after splitting, on a
// 256-bit uint256.Int wide enough to hold a 128-bit half plus the
// marker without carrying into the high half — adding it to the full
// 256-bit value before splitting would risk exactly that overflow.
func splitValue(value []byte, present bool) (low, high fr.Element) {
	if !present {
		return fr.Zero(), fr.Zero()
	}

	var lowInt, highInt uint256.Int
	lowInt.SetBytes(reverse(value[:16]))
	highInt.SetBytes(reverse(value[16:32]))

	lowInt.Add(&lowInt, valueExistsMarker)

	lowBytes := lowInt.Bytes32()
	highBytes := highInt.Bytes32()

	low.SetBytesReduce(reverse(lowBytes[:]))
	high.SetBytesReduce(reverse(highBytes[:]))
	return low, high
}

// reverse returns a new slice with b's bytes in reverse order, used to
// turn uint256's big-endian Bytes32 output into the little-endian
// encoding fr.Element expects.
func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out
}
