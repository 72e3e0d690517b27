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

import "bytes"

// indexOf is a small linear search wrapper shared by Find and
// taggedSpan, starting the search no earlier than from.
func indexOf(haystack, needle []byte, from int) int {
	if from < 0 {
		from = 0
	}
	if from > len(haystack) {
		return NotFound
	}
	idx := bytes.Index(haystack[from:], needle)
	if idx == NotFound {
		return NotFound
	}
	return from + idx
}

// Find returns the byte offset of the first occurrence of needle in s's
// content at or after from, or NotFound.
func Find(s *String, needle []byte, from int) int {
	return indexOf(s.Bytes(), needle, from)
}

// FindLast returns the byte offset of the last occurrence of needle in
// s's content, or NotFound.
func FindLast(s *String, needle []byte) int {
	haystack := s.Bytes()
	idx := bytes.LastIndex(haystack, needle)
	if idx < 0 {
		return NotFound
	}
	return idx
}

// SubstringTagged locates the span in src running from the first
// occurrence of begTag through (and including) the first subsequent
// occurrence of endTag. An empty or nil begTag means "start of string";
// an empty or nil endTag means "end of string." Returns the located
// slice and its length; ok is false if either tag is set and not found.
func SubstringTagged(src []byte, begTag, endTag []byte) (sub []byte, length int, ok bool) {
	begAt := 0
	if len(begTag) > 0 {
		idx := indexOf(src, begTag, 0)
		if idx == NotFound {
			return nil, 0, false
		}
		begAt = idx
	}

	endAt := len(src)
	if len(endTag) > 0 {
		idx := indexOf(src, endTag, begAt+len(begTag))
		if idx == NotFound {
			return nil, 0, false
		}
		endAt = idx + len(endTag)
	}

	return src[begAt:endAt], endAt - begAt, true
}

// NewSubstringTagged behaves like SubstringTagged, copying the located
// span into a new String. Returns nil if the span cannot be located.
func NewSubstringTagged(src []byte, begTag, endTag []byte) *String {
	sub, _, ok := SubstringTagged(src, begTag, endTag)
	if !ok {
		return nil
	}
	return NewFromBytes(sub)
}
