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

// Package sszproof defines SSZ container encodings for Verkle proof
// wire shapes, so a proof produced by this module can be round-tripped
// through the same binary encoding tooling consumes elsewhere in the
// stack. It mirrors the field layout of the reference implementation's
// JSON proof encoding (OtherStems, DepthExtensionPresent,
// CommitmentsByPath, D, IPAProof), not its own proof construction.
package sszproof

import "github.com/karalabe/ssz"

// MaxStems and MaxCommitments bound the variable-length proof fields.
// A real proof is bounded by the trie depth and the number of keys
// opened at once; these are generous fixed ceilings so the same
// container shape serializes any proof this module could produce.
const (
	MaxStems       = 256
	MaxCommitments = 256
	IPAProofDepth  = 8
)

// IPAProofSSZ is the SSZ encoding of an ipa.Proof: one (L, R)
// commitment pair per reduction round plus the final folded scalar.
type IPAProofSSZ struct {
	CL              [IPAProofDepth][32]byte
	CR              [IPAProofDepth][32]byte
	FinalEvaluation [32]byte
}

// SizeSSZ returns the encoded size of an IPAProofSSZ, which is
// entirely fixed-size fields.
func (p *IPAProofSSZ) SizeSSZ(*ssz.Sizer) uint32 {
	return uint32(IPAProofDepth)*32*2 + 32
}

// DefineSSZ declares the field layout for SSZ encoding/decoding.
func (p *IPAProofSSZ) DefineSSZ(codec *ssz.Codec) {
	ssz.DefineArrayOfStaticBytes(codec, &p.CL)
	ssz.DefineArrayOfStaticBytes(codec, &p.CR)
	ssz.DefineStaticBytes(codec, &p.FinalEvaluation)
}

// StemStateDiffSSZ is a placeholder for a single stem's worth of proof
// metadata; it exists so a future proof encoder has a ready container
// for per-stem data without needing to touch this file's shape again.
// Unused fields are intentionally absent until CreateProof exists.
type StemStateDiffSSZ struct {
	Stem [31]byte
}

// SizeSSZ returns the encoded size of a StemStateDiffSSZ.
func (s *StemStateDiffSSZ) SizeSSZ(*ssz.Sizer) uint32 {
	return 31
}

// DefineSSZ declares the field layout for SSZ encoding/decoding.
func (s *StemStateDiffSSZ) DefineSSZ(codec *ssz.Codec) {
	ssz.DefineStaticBytes(codec, &s.Stem)
}

// VerkleProofSSZ is the SSZ encoding of a Verkle multiproof: the stems
// of leaves visited along proven paths but not matching the proven
// key (OtherStems), a bitfield of which (depth, extension-present)
// pairs were encountered (DepthExtensionPresent), the commitments
// collected along each proven path (CommitmentsByPath), the
// multiproof's D commitment, and the underlying IPA opening proof.
type VerkleProofSSZ struct {
	OtherStems            [][31]byte `ssz-max:"256"`
	DepthExtensionPresent []byte     `ssz-max:"256"`
	CommitmentsByPath     [][32]byte `ssz-max:"256"`
	D                     [32]byte
	IPAProof              IPAProofSSZ
}

// SizeSSZ returns the encoded size of a VerkleProofSSZ, including the
// variable-length fields' actual contents.
func (p *VerkleProofSSZ) SizeSSZ(siz *ssz.Sizer) uint32 {
	size := uint32(4 + 4 + 4) // three dynamic-field offsets
	size += ssz.SizeSliceOfStaticBytes(siz, p.OtherStems)
	size += ssz.SizeDynamicBytes(siz, p.DepthExtensionPresent)
	size += ssz.SizeSliceOfStaticBytes(siz, p.CommitmentsByPath)
	size += 32
	size += p.IPAProof.SizeSSZ(siz)
	return size
}

// DefineSSZ declares the field layout for SSZ encoding/decoding. Offset
// fields for the variable-length members are defined first, per SSZ's
// fixed-then-variable layout rule, followed by their contents and the
// fixed-size tail.
func (p *VerkleProofSSZ) DefineSSZ(codec *ssz.Codec) {
	ssz.DefineSliceOfStaticBytesOffset(codec, &p.OtherStems, MaxStems)
	ssz.DefineDynamicBytesOffset(codec, &p.DepthExtensionPresent, MaxCommitments)
	ssz.DefineSliceOfStaticBytesOffset(codec, &p.CommitmentsByPath, MaxCommitments)
	ssz.DefineStaticBytes(codec, &p.D)
	ssz.DefineStaticObject(codec, &p.IPAProof)

	ssz.DefineSliceOfStaticBytesContent(codec, &p.OtherStems, MaxStems)
	ssz.DefineDynamicBytesContent(codec, &p.DepthExtensionPresent, MaxCommitments)
	ssz.DefineSliceOfStaticBytesContent(codec, &p.CommitmentsByPath, MaxCommitments)
}
