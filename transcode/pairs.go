/*
Copyright 2011-2026 Frederic Langlet
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package transcode

import (
	"encoding/binary"

	"github.com/nilxtext/unitext"
)

// decodeUTF8Adapter adapts decodeUTF8 to decodeFn; UTF-8 has no byte order.
func decodeUTF8Adapter(src []byte, i int, _ binary.ByteOrder) (rune, int, decodeOutcome) {
	return decodeUTF8(src, i)
}

// encodeUTF8Adapter adapts encodeUTF8 to encodeFn; UTF-8 has no byte order.
func encodeUTF8Adapter(dst []byte, s rune, _ binary.ByteOrder) (int, bool) {
	return encodeUTF8(dst, s)
}

var (
	utf8ToUTF16Cfg = pairConfig{unitext.UTF8, unitext.UTF16, decodeUTF8Adapter, encodeUTF16}
	utf16ToUTF8Cfg = pairConfig{unitext.UTF16, unitext.UTF8, decodeUTF16, encodeUTF8Adapter}
	utf8ToUTF32Cfg = pairConfig{unitext.UTF8, unitext.UTF32, decodeUTF8Adapter, encodeUTF32}
	utf32ToUTF8Cfg = pairConfig{unitext.UTF32, unitext.UTF8, decodeUTF32, encodeUTF8Adapter}
	utf16ToUTF32Cfg = pairConfig{unitext.UTF16, unitext.UTF32, decodeUTF16, encodeUTF32}
	utf32ToUTF16Cfg = pairConfig{unitext.UTF32, unitext.UTF16, decodeUTF32, encodeUTF16}
)

// UTF8ToUTF16 decodes src as UTF-8 and writes its UTF-16 equivalent to
// dst, using order for the UTF-16 side (UTF-8 has no endian variants).
// outLen is the number of UTF-16 code units written, not counting the
// trailing zero unit always appended when dst has room for it. consumed
// is the number of UTF-8 bytes read, including a BOM if one was present
// and accepted.
//
// On StatusNoSpace/StatusInvalidArgument/StatusInvalidCodepoint, outLen
// and consumed report progress up to but not including the unit that
// caused the failure.
func UTF8ToUTF16(dst, src []byte, order unitext.Endian, flags unitext.Flags, nullTerminated bool) (outLen, consumed int, err error) {
	return convert(utf8ToUTF16Cfg, dst, true, src, order, flags, nullTerminated)
}

// UTF8ToUTF16Length reports what UTF8ToUTF16 would produce without
// writing any output; equivalent to calling UTF8ToUTF16 with an
// unbounded destination.
func UTF8ToUTF16Length(src []byte, order unitext.Endian, flags unitext.Flags, nullTerminated bool) (outLen, consumed int, err error) {
	return convert(utf8ToUTF16Cfg, nil, false, src, order, flags, nullTerminated)
}

// UTF16ToUTF8 decodes src as UTF-16 under order and writes its UTF-8
// equivalent to dst. outLen counts UTF-8 bytes written (excluding the
// trailing NUL); consumed counts UTF-16 code units read.
func UTF16ToUTF8(dst, src []byte, order unitext.Endian, flags unitext.Flags, nullTerminated bool) (outLen, consumed int, err error) {
	return convert(utf16ToUTF8Cfg, dst, true, src, order, flags, nullTerminated)
}

// UTF16ToUTF8Length reports what UTF16ToUTF8 would produce without
// writing any output.
func UTF16ToUTF8Length(src []byte, order unitext.Endian, flags unitext.Flags, nullTerminated bool) (outLen, consumed int, err error) {
	return convert(utf16ToUTF8Cfg, nil, false, src, order, flags, nullTerminated)
}

// UTF8ToUTF32 decodes src as UTF-8 and writes its UTF-32 equivalent to
// dst under order.
func UTF8ToUTF32(dst, src []byte, order unitext.Endian, flags unitext.Flags, nullTerminated bool) (outLen, consumed int, err error) {
	return convert(utf8ToUTF32Cfg, dst, true, src, order, flags, nullTerminated)
}

// UTF8ToUTF32Length reports what UTF8ToUTF32 would produce without
// writing any output.
func UTF8ToUTF32Length(src []byte, order unitext.Endian, flags unitext.Flags, nullTerminated bool) (outLen, consumed int, err error) {
	return convert(utf8ToUTF32Cfg, nil, false, src, order, flags, nullTerminated)
}

// UTF32ToUTF8 decodes src as UTF-32 under order and writes its UTF-8
// equivalent to dst.
func UTF32ToUTF8(dst, src []byte, order unitext.Endian, flags unitext.Flags, nullTerminated bool) (outLen, consumed int, err error) {
	return convert(utf32ToUTF8Cfg, dst, true, src, order, flags, nullTerminated)
}

// UTF32ToUTF8Length reports what UTF32ToUTF8 would produce without
// writing any output.
func UTF32ToUTF8Length(src []byte, order unitext.Endian, flags unitext.Flags, nullTerminated bool) (outLen, consumed int, err error) {
	return convert(utf32ToUTF8Cfg, nil, false, src, order, flags, nullTerminated)
}

// UTF16ToUTF32 decodes src as UTF-16 and writes its UTF-32 equivalent to
// dst. order applies uniformly to both sides.
func UTF16ToUTF32(dst, src []byte, order unitext.Endian, flags unitext.Flags, nullTerminated bool) (outLen, consumed int, err error) {
	return convert(utf16ToUTF32Cfg, dst, true, src, order, flags, nullTerminated)
}

// UTF16ToUTF32Length reports what UTF16ToUTF32 would produce without
// writing any output.
func UTF16ToUTF32Length(src []byte, order unitext.Endian, flags unitext.Flags, nullTerminated bool) (outLen, consumed int, err error) {
	return convert(utf16ToUTF32Cfg, nil, false, src, order, flags, nullTerminated)
}

// UTF32ToUTF16 decodes src as UTF-32 and writes its UTF-16 equivalent to
// dst. order applies uniformly to both sides.
func UTF32ToUTF16(dst, src []byte, order unitext.Endian, flags unitext.Flags, nullTerminated bool) (outLen, consumed int, err error) {
	return convert(utf32ToUTF16Cfg, dst, true, src, order, flags, nullTerminated)
}

// UTF32ToUTF16Length reports what UTF32ToUTF16 would produce without
// writing any output.
func UTF32ToUTF16Length(src []byte, order unitext.Endian, flags unitext.Flags, nullTerminated bool) (outLen, consumed int, err error) {
	return convert(utf32ToUTF16Cfg, nil, false, src, order, flags, nullTerminated)
}
