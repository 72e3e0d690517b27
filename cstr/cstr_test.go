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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func invariant(t *testing.T, s *String) {
	t.Helper()
	require.LessOrEqual(t, s.Length(), s.Capacity())
	require.Equal(t, byte(0), s.data[s.length])
}

func TestAllocateAndAccessors(t *testing.T) {
	s := Allocate(8)
	require.Equal(t, 0, s.Length())
	require.Equal(t, 8, s.Capacity())
	invariant(t, s)

	var nilS *String
	require.Equal(t, 0, nilS.Length())
	require.Equal(t, 0, nilS.Capacity())
	require.Nil(t, nilS.Bytes())
	require.Equal(t, "", nilS.String())
	require.Nil(t, nilS.Clone())
}

func TestNewFromBytesAndNullTerminated(t *testing.T) {
	s := NewFromBytes([]byte("hello"))
	require.Equal(t, "hello", s.String())
	invariant(t, s)

	require.Nil(t, NewFromBytes(nil))

	nt := NewFromNullTerminated([]byte("hi\x00garbage"))
	require.Equal(t, "hi", nt.String())
}

func TestSetAndCatGrow(t *testing.T) {
	s := Allocate(2)
	s = Set(s, []byte("hello world"))
	require.Equal(t, "hello world", s.String())
	invariant(t, s)

	s = Cat(s, []byte("!"))
	require.Equal(t, "hello world!", s.String())
	invariant(t, s)

	require.Same(t, s, Cat(s, nil))
}

func TestFindAndFindLast(t *testing.T) {
	s := NewFromBytes([]byte("abcabc"))
	require.Equal(t, 0, Find(s, []byte("abc"), 0))
	require.Equal(t, 3, Find(s, []byte("abc"), 1))
	require.Equal(t, NotFound, Find(s, []byte("xyz"), 0))
	require.Equal(t, 3, FindLast(s, []byte("abc")))
}

func TestSubstringTagged(t *testing.T) {
	src := []byte("prefix<<BEGIN>>payload<<END>>suffix")
	sub, n, ok := SubstringTagged(src, []byte("<<BEGIN>>"), []byte("<<END>>"))
	require.True(t, ok)
	require.Equal(t, "<<BEGIN>>payload<<END>>", string(sub))
	require.Equal(t, len(sub), n)

	_, _, ok = SubstringTagged(src, []byte("nope"), nil)
	require.False(t, ok)

	named := NewSubstringTagged(src, []byte("<<BEGIN>>"), []byte("<<END>>"))
	require.Equal(t, "<<BEGIN>>payload<<END>>", named.String())
}

func TestReplaceRangeScenario(t *testing.T) {
	s := NewFromBytes([]byte("hello world"))
	s = ReplaceRange(s, 6, 5, []byte("there"), 5)
	require.Equal(t, "hello there", s.String())
	require.Equal(t, 11, s.Length())
	invariant(t, s)
}

func TestReplaceRangeTagged(t *testing.T) {
	s := NewFromBytes([]byte("before [SLOT]after"))
	other := NewFromBytes([]byte("{{X}}replacement{{/X}}"))

	s = ReplaceRangeTagged(s, []byte("["), []byte("]"), other.Bytes(), []byte("{{X}}"), []byte("{{/X}}"), false)
	require.Equal(t, "before [{{X}}replacement{{/X}}]after", s.String())
}

func TestReplaceRangeTaggedSeparateLines(t *testing.T) {
	s := NewFromBytes([]byte("<a></a>"))
	s = ReplaceRangeTagged(s, []byte("<a>"), []byte("</a>"), []byte("body"), nil, nil, true)
	require.Equal(t, "<a>\nbody\n</a>", s.String())
}

func TestRemoveAt(t *testing.T) {
	s := NewFromBytes([]byte("hello"))
	s = RemoveAt(s, 1)
	require.Equal(t, "hllo", s.String())
	invariant(t, s)

	before := s.String()
	s = RemoveAt(s, 99)
	require.Equal(t, before, s.String())
}

func TestScalarCount(t *testing.T) {
	s := NewFromBytes([]byte("h\xC3\xA9llo \xF0\x9F\x98\x80"))
	n, err := ScalarCount(s)
	require.NoError(t, err)
	require.Equal(t, 7, n)

	n, err = ScalarCount(nil)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestNewTrim(t *testing.T) {
	s := NewTrim([]byte("  hello world  "))
	require.Equal(t, "hello world", s.String())
	require.Nil(t, NewTrim(nil))
}
