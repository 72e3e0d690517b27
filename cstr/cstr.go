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

// Package cstr implements a length-prefixed, mutable, nul-terminated byte
// string container. A nil *String stands in for the null handle: every
// accessor treats it as length/capacity zero, and every constructor or
// mutator that would fail returns nil rather than panicking, mirroring
// the allocator-failure contract of the host this was modeled on.
package cstr

// String is a growable byte buffer with a cached length and a trailing
// nul always held one byte past it. data always satisfies
// len(data) == capacity+1 and data[length] == 0; every method preserves
// that invariant on return.
type String struct {
	data   []byte
	length int
}

// NotFound is returned by Find/FindLast in place of an offset when the
// needle does not occur in the haystack.
const NotFound = -1

// Length returns the number of content bytes, 0 for a nil handle.
func (s *String) Length() int {
	if s == nil {
		return 0
	}
	return s.length
}

// Capacity returns the number of content bytes s can hold before a
// mutating operation must grow it, 0 for a nil handle.
func (s *String) Capacity() int {
	if s == nil {
		return 0
	}
	return len(s.data) - 1
}

// Bytes returns the content as a slice sharing s's backing array. The
// caller must not retain it across a subsequent mutating call, which may
// reallocate. Returns nil for a nil handle.
func (s *String) Bytes() []byte {
	if s == nil {
		return nil
	}
	return s.data[:s.length]
}

// String returns the content as a freshly copied Go string. Returns ""
// for a nil handle.
func (s *String) String() string {
	if s == nil {
		return ""
	}
	return string(s.data[:s.length])
}

// Clone returns an independent copy of s, or nil if s is nil.
func (s *String) Clone() *String {
	if s == nil {
		return nil
	}
	data := make([]byte, len(s.data))
	copy(data, s.data)
	return &String{data: data, length: s.length}
}

// Allocate returns a zero-length String with room for capacity bytes
// before the first grow. A negative capacity returns nil.
func Allocate(capacity int) *String {
	if capacity < 0 {
		return nil
	}
	return &String{data: make([]byte, capacity+1)}
}

// NewFromBytes returns a String holding a copy of src. A nil src returns
// nil, matching the null-pointer-in contract of NewFromNullTerminated.
func NewFromBytes(src []byte) *String {
	if src == nil {
		return nil
	}
	s := Allocate(len(src))
	copy(s.data, src)
	s.length = len(src)
	return s
}

// NewFromNullTerminated returns a String holding a copy of src up to (but
// not including) its first zero byte. A nil src returns nil.
func NewFromNullTerminated(src []byte) *String {
	if src == nil {
		return nil
	}
	n := 0
	for n < len(src) && src[n] != 0 {
		n++
	}
	return NewFromBytes(src[:n])
}

// growTo ensures s can hold at least needed content bytes, doubling its
// prior capacity (or using needed directly from empty) to amortize
// repeated appends, then re-establishes the trailing-nul invariant.
func (s *String) growTo(needed int) {
	if needed <= s.Capacity() {
		return
	}
	newCap := s.Capacity() * 2
	if newCap < needed {
		newCap = needed
	}
	data := make([]byte, newCap+1)
	copy(data, s.data[:s.length])
	s.data = data
}
