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

import "errors"

var (
	// ErrInvalidKeyLength is returned when a key is not exactly 32 bytes
	// (31-byte stem + 1-byte suffix).
	ErrInvalidKeyLength = errors.New("verkle: key must be 32 bytes")

	// ErrInvalidValueLength is returned when a non-nil value is not
	// exactly 32 bytes.
	ErrInvalidValueLength = errors.New("verkle: value must be 32 bytes")

	// ErrUnsupportedOperation is returned by operations this
	// implementation deliberately does not provide: proof
	// creation/verification and deletion.
	ErrUnsupportedOperation = errors.New("verkle: unsupported operation")
)
