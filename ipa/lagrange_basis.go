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

import "github.com/ethereum/verkle-trie/fr"

// DomainSize is the width of the evaluation domain, 0..255.
const DomainSize = 256

// LagrangeBasis holds the evaluations of a polynomial of degree < 256
// over the fixed domain [0, 255].
type LagrangeBasis [DomainSize]fr.Element

// domainPoint returns fr.Element(i) for i in [0, DomainSize).
func domainPoint(i int) fr.Element {
	var x fr.Element
	x.SetInt64(int64(i))
	return x
}

// Domain returns the fixed evaluation domain [0, 255] as field elements.
func Domain() [DomainSize]fr.Element {
	var d [DomainSize]fr.Element
	for i := range d {
		d[i] = domainPoint(i)
	}
	return d
}
