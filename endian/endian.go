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

// Package endian implements the in-place 16/32-bit byte swap helpers and
// the byte-order-mark predicates used by the transcode package and the
// unitext command.
package endian

import "github.com/nilxtext/unitext"

// NullTerminated, passed as count to SwapEndian16/SwapEndian32, means "stop
// at the first zero code unit" instead of swapping a fixed number of units.
const NullTerminated = -1

// SwapEndian16 byte-swaps count 16-bit code units of buf in place. If
// count is NullTerminated, it stops at the first unit whose swapped value
// is zero or when buf is exhausted, whichever comes first.
func SwapEndian16(buf []byte, count int) {
	n := len(buf) / 2

	if count != NullTerminated && count < n {
		n = count
	}

	for i := 0; i < n; i++ {
		j := i * 2
		buf[j], buf[j+1] = buf[j+1], buf[j]

		if count == NullTerminated && buf[j] == 0 && buf[j+1] == 0 {
			return
		}
	}
}

// SwapEndian32 byte-swaps count 32-bit code units of buf in place. If
// count is NullTerminated, it stops at the first unit whose swapped value
// is zero or when buf is exhausted, whichever comes first.
func SwapEndian32(buf []byte, count int) {
	n := len(buf) / 4

	if count != NullTerminated && count < n {
		n = count
	}

	for i := 0; i < n; i++ {
		j := i * 4
		buf[j], buf[j+1], buf[j+2], buf[j+3] = buf[j+3], buf[j+2], buf[j+1], buf[j]

		if count == NullTerminated && buf[j] == 0 && buf[j+1] == 0 && buf[j+2] == 0 && buf[j+3] == 0 {
			return
		}
	}
}

// utf8BOM is the three-byte UTF-8 byte order mark.
var utf8BOM = [3]byte{0xEF, 0xBB, 0xBF}

// IsBOMUTF8 reports whether the first three bytes of b are the UTF-8 BOM.
// The caller must supply at least three bytes.
func IsBOMUTF8(b []byte) bool {
	return b[0] == utf8BOM[0] && b[1] == utf8BOM[1] && b[2] == utf8BOM[2]
}

// IsBOMUTF16LE reports whether the first two bytes of b are the UTF-16 LE
// BOM (FF FE). The caller must supply at least two bytes.
func IsBOMUTF16LE(b []byte) bool {
	return b[0] == 0xFF && b[1] == 0xFE
}

// IsBOMUTF16BE reports whether the first two bytes of b are the UTF-16 BE
// BOM (FE FF). The caller must supply at least two bytes.
func IsBOMUTF16BE(b []byte) bool {
	return b[0] == 0xFE && b[1] == 0xFF
}

// IsBOMUTF32LE reports whether the first four bytes of b are the UTF-32 LE
// BOM (FF FE 00 00). The caller must supply at least four bytes.
func IsBOMUTF32LE(b []byte) bool {
	return b[0] == 0xFF && b[1] == 0xFE && b[2] == 0x00 && b[3] == 0x00
}

// IsBOMUTF32BE reports whether the first four bytes of b are the UTF-32 BE
// BOM (00 00 FE FF). The caller must supply at least four bytes.
func IsBOMUTF32BE(b []byte) bool {
	return b[0] == 0x00 && b[1] == 0x00 && b[2] == 0xFE && b[3] == 0xFF
}

// HasBOMUTF8 reports whether b is at least 3 bytes long and starts with
// the UTF-8 BOM.
func HasBOMUTF8(b []byte) bool { return len(b) >= 3 && IsBOMUTF8(b) }

// HasBOMUTF16LE reports whether b is at least 2 bytes long and starts
// with the UTF-16 LE BOM.
func HasBOMUTF16LE(b []byte) bool { return len(b) >= 2 && IsBOMUTF16LE(b) }

// HasBOMUTF16BE reports whether b is at least 2 bytes long and starts
// with the UTF-16 BE BOM.
func HasBOMUTF16BE(b []byte) bool { return len(b) >= 2 && IsBOMUTF16BE(b) }

// HasBOMUTF32LE reports whether b is at least 4 bytes long and starts
// with the UTF-32 LE BOM.
func HasBOMUTF32LE(b []byte) bool { return len(b) >= 4 && IsBOMUTF32LE(b) }

// HasBOMUTF32BE reports whether b is at least 4 bytes long and starts
// with the UTF-32 BE BOM.
func HasBOMUTF32BE(b []byte) bool { return len(b) >= 4 && IsBOMUTF32BE(b) }

// BOMLen returns the byte length of enc's byte order mark, which is the
// number of bytes the transcoder skips when it recognizes a BOM. order
// does not change the result: both byte orders of a BOM have the same
// length.
func BOMLen(enc unitext.Encoding, order unitext.Endian) int {
	switch enc {
	case unitext.UTF8:
		return 3
	case unitext.UTF16:
		return 2
	case unitext.UTF32:
		return 4
	default:
		return 0
	}
}

// DetectBOM tries every recognized byte order mark against b and reports
// the encoding and byte order it belongs to. ok is false if none match.
func DetectBOM(b []byte) (enc unitext.Encoding, order unitext.Endian, ok bool) {
	switch {
	case HasBOMUTF8(b):
		return unitext.UTF8, unitext.NativeEndian, true
	case HasBOMUTF32LE(b):
		// Must be checked before UTF-16 LE: FF FE 00 00 also matches the
		// UTF-16 LE prefix FF FE.
		return unitext.UTF32, unitext.LittleEndian, true
	case HasBOMUTF32BE(b):
		return unitext.UTF32, unitext.BigEndian, true
	case HasBOMUTF16LE(b):
		return unitext.UTF16, unitext.LittleEndian, true
	case HasBOMUTF16BE(b):
		return unitext.UTF16, unitext.BigEndian, true
	default:
		return 0, 0, false
	}
}
