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

package cstr

import "github.com/nilxtext/unitext/bytesx"

// Set replaces s's content with a copy of src, growing s if needed. A nil
// s allocates a fresh string sized to src; a nil src leaves s unmodified
// if s is non-nil, or returns nil if s is also nil.
func Set(s *String, src []byte) *String {
	return SetN(s, src, len(src))
}

// SetN replaces s's content with the first n bytes of src, growing s if
// needed.
func SetN(s *String, src []byte, n int) *String {
	if src == nil {
		return s
	}
	if n > len(src) {
		n = len(src)
	}
	if s == nil {
		s = Allocate(n)
	} else {
		s.growTo(n)
	}
	copy(s.data, src[:n])
	s.length = n
	s.data[s.length] = 0
	return s
}

// Cat appends a copy of src to s's content, growing s if needed. A nil
// src leaves s unmodified (the handle is returned as-is).
func Cat(s *String, src []byte) *String {
	return CatN(s, src, len(src))
}

// CatN appends the first n bytes of src to s's content, growing s if
// needed. A nil src leaves s unmodified.
func CatN(s *String, src []byte, n int) *String {
	if src == nil {
		return s
	}
	if n > len(src) {
		n = len(src)
	}
	if s == nil {
		s = Allocate(n)
	}
	s.growTo(s.length + n)
	copy(s.data[s.length:], src[:n])
	s.length += n
	s.data[s.length] = 0
	return s
}

// RemoveAt erases the byte at index, relocating the terminator. An
// out-of-range index (including a nil handle) returns s unchanged.
func RemoveAt(s *String, index int) *String {
	if s == nil || index < 0 || index >= s.length {
		return s
	}
	copy(s.data[index:], s.data[index+1:s.length+1])
	s.length--
	return s
}

// ReplaceRange splices other (or its first otherLen bytes) into s in
// place of the len bytes starting at off: s becomes s[:off] + other[:otherLen] + s[off+len:].
// A nil other is treated as empty. off/len are clamped to s's bounds.
func ReplaceRange(s *String, off, length int, other []byte, otherLen int) *String {
	if s == nil {
		return NewFromBytes(other[:clamp(otherLen, len(other))])
	}
	if off < 0 {
		off = 0
	}
	if off > s.length {
		off = s.length
	}
	if length < 0 {
		length = 0
	}
	if off+length > s.length {
		length = s.length - off
	}
	if other == nil {
		otherLen = 0
	} else if otherLen > len(other) {
		otherLen = len(other)
	}

	tail := append([]byte(nil), s.data[off+length:s.length]...)
	newLen := off + otherLen + len(tail)
	s.growTo(newLen)

	if otherLen > 0 {
		copy(s.data[off:], other[:otherLen])
	}
	copy(s.data[off+otherLen:], tail)
	s.length = newLen
	s.data[s.length] = 0
	return s
}

func clamp(n, max int) int {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}

// ReplaceRangeTagged locates the tag-bounded range in s — excluding
// begTag/endTag themselves — and the tag-bounded range in other —
// including otherBegTag/otherEndTag — then splices the latter into the
// former. If keepOnSeparateLines, the spliced content is wrapped with a
// newline on each side. Returns s unchanged if either range in s or other
// cannot be located.
func ReplaceRangeTagged(s *String, begTag, endTag []byte, other []byte, otherBegTag, otherEndTag []byte, keepOnSeparateLines bool) *String {
	if s == nil {
		return nil
	}

	off, length, ok := taggedSpan(s.Bytes(), begTag, endTag, false)
	if !ok {
		return s
	}

	otherOff, otherLen, ok := taggedSpan(other, otherBegTag, otherEndTag, true)
	if !ok {
		return s
	}

	replacement := other[otherOff : otherOff+otherLen]
	if keepOnSeparateLines {
		wrapped := make([]byte, 0, len(replacement)+2)
		wrapped = append(wrapped, '\n')
		wrapped = append(wrapped, replacement...)
		wrapped = append(wrapped, '\n')
		replacement = wrapped
	}

	return ReplaceRange(s, off, length, replacement, len(replacement))
}

// taggedSpan resolves the byte range between begTag and endTag within
// src. inclusive controls whether the tags themselves are part of the
// returned range (true for the "other" side of ReplaceRangeTagged, false
// for the side being replaced in place). Empty/nil tags mean
// start-of-string / end-of-string respectively.
func taggedSpan(src []byte, begTag, endTag []byte, inclusive bool) (off, length int, ok bool) {
	begAt := 0
	if len(begTag) > 0 {
		idx := indexOf(src, begTag, 0)
		if idx == NotFound {
			return 0, 0, false
		}
		begAt = idx
		if !inclusive {
			begAt += len(begTag)
		}
	}

	searchFrom := begAt
	if len(begTag) > 0 && inclusive {
		searchFrom = begAt + len(begTag)
	}

	endAt := len(src)
	if len(endTag) > 0 {
		idx := indexOf(src, endTag, searchFrom)
		if idx == NotFound {
			return 0, 0, false
		}
		endAt = idx
		if inclusive {
			endAt += len(endTag)
		}
	}

	if endAt < begAt {
		return 0, 0, false
	}
	return begAt, endAt - begAt, true
}

// NewTrim returns a new String holding src with leading and trailing
// whitespace removed. A nil src returns nil.
func NewTrim(src []byte) *String {
	return NewTrimN(src, len(src))
}

// NewTrimN returns a new String holding the first n bytes of src with
// leading and trailing whitespace removed. A nil src returns nil.
func NewTrimN(src []byte, n int) *String {
	if src == nil {
		return nil
	}
	if n > len(src) {
		n = len(src)
	}
	span := src[:n]
	l := bytesx.LTrimOffset(span)
	r := bytesx.RTrimOffset(span)
	if r < l {
		r = l
	}
	return NewFromBytes(span[l:r])
}
