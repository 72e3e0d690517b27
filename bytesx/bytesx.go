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

// Package bytesx implements byte-level UTF-8 helpers used throughout this
// module: whitespace/newline classification, bounded copy/concatenate,
// and integer-to-string rendering.
package bytesx

import (
	"unicode/utf8"

	"github.com/nilxtext/unitext"
	"github.com/nilxtext/unitext/internal"
)

// IsNullOrWhitespace reports whether span is nil or every scalar it
// decodes to is Unicode whitespace (the curated set in
// internal.WhitespaceScalars, not the full Unicode White_Space property).
// An invalid UTF-8 byte counts as non-whitespace.
func IsNullOrWhitespace(span []byte) bool {
	if span == nil {
		return true
	}
	for i := 0; i < len(span); {
		r, n := utf8.DecodeRune(span[i:])
		if r == utf8.RuneError && n <= 1 {
			return false
		}
		if !internal.WhitespaceScalars[r] {
			return false
		}
		i += n
	}
	return true
}

// LTrimOffset returns the byte offset of the first non-whitespace scalar
// in span: 0 if span has none, len(span) if every scalar is whitespace.
func LTrimOffset(span []byte) int {
	i := 0
	for i < len(span) {
		r, n := utf8.DecodeRune(span[i:])
		if r == utf8.RuneError && n <= 1 {
			return i
		}
		if !internal.WhitespaceScalars[r] {
			return i
		}
		i += n
	}
	return len(span)
}

// RTrimOffset returns the byte offset one past the last non-whitespace
// scalar in span: len(span) if span has no trailing whitespace, 0 if
// every scalar is whitespace.
func RTrimOffset(span []byte) int {
	last := 0
	for i := 0; i < len(span); {
		r, n := utf8.DecodeRune(span[i:])
		if r == utf8.RuneError && n <= 1 {
			i++
			last = i
			continue
		}
		i += n
		if !internal.WhitespaceScalars[r] {
			last = i
		}
	}
	return last
}

// NextLine returns the byte offset of the next line's first byte and the
// byte length of the current line, excluding its terminator. If span has
// no newline scalar, thisLen covers all of span and the returned offset
// equals len(span). CR LF (0x0D 0x0A) is treated as a single terminator.
func NextLine(span []byte) (nextOffset, thisLen int) {
	for i := 0; i < len(span); {
		r, n := utf8.DecodeRune(span[i:])
		if r == utf8.RuneError && n <= 1 {
			i++
			continue
		}
		if internal.NewlineScalars[r] {
			thisLen = i
			next := i + n
			if r == 0x000D && next < len(span) && span[next] == 0x0A {
				next++
			}
			return next, thisLen
		}
		i += n
	}
	return len(span), len(span)
}

// digits are the 2..36 base digit glyphs, 0-9 then lowercase a-z.
const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// IntToString renders value into dst in the given radix (2..36). A
// negative sign is emitted only for radix 10. No leading zeros are
// produced (a value of 0 renders as "0"). Returns the number of bytes
// written, or StatusRange if dst is too small, or StatusInvalidArgument
// if radix is out of range.
func IntToString(dst []byte, value int64, radix int) (int, error) {
	if radix < 2 || radix > 36 {
		return 0, unitext.ErrInvalidArgument
	}

	neg := radix == 10 && value < 0

	u := uint64(value)
	if neg {
		u = uint64(-value)
	}

	var tmp [64]byte
	i := len(tmp)
	for {
		i--
		tmp[i] = digits[u%uint64(radix)]
		u /= uint64(radix)
		if u == 0 {
			break
		}
	}

	n := len(tmp) - i
	total := n
	if neg {
		total++
	}
	if len(dst) < total {
		return 0, unitext.ErrRange
	}

	pos := 0
	if neg {
		dst[0] = '-'
		pos = 1
	}
	copy(dst[pos:], tmp[i:])
	return total, nil
}

// SafeCopy copies all of src into dst, including a trailing nul, failing
// if dst cannot hold src plus its terminator. A nil src is InvalidArgument.
func SafeCopy(dst, src []byte) (int, error) {
	return SafeCopyN(dst, src, len(src))
}

// SafeCopyN copies at most n bytes of src into dst, including a trailing
// nul, failing with Range if dst cannot hold n bytes plus the terminator.
func SafeCopyN(dst, src []byte, n int) (int, error) {
	if src == nil {
		return 0, unitext.ErrInvalidArgument
	}
	if n > len(src) {
		n = len(src)
	}
	if len(dst) < n+1 {
		return 0, unitext.ErrRange
	}
	copy(dst, src[:n])
	dst[n] = 0
	return n, nil
}

// SafeConcat appends all of src after the existing nul-terminated content
// of dst, failing with Range if the result (plus terminator) would not fit.
func SafeConcat(dst, src []byte) (int, error) {
	return SafeConcatN(dst, src, len(src))
}

// SafeConcatN appends at most n bytes of src after the existing
// nul-terminated content of dst, failing with Range if the result (plus
// terminator) would not fit.
func SafeConcatN(dst, src []byte, n int) (int, error) {
	if src == nil {
		return 0, unitext.ErrInvalidArgument
	}
	existing := 0
	for existing < len(dst) && dst[existing] != 0 {
		existing++
	}
	if n > len(src) {
		n = len(src)
	}
	if len(dst) < existing+n+1 {
		return 0, unitext.ErrRange
	}
	copy(dst[existing:], src[:n])
	dst[existing+n] = 0
	return existing + n, nil
}
