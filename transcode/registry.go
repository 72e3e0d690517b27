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

import "github.com/nilxtext/unitext"

// ConvertFunc is the signature shared by every named pair function
// (UTF8ToUTF16, UTF16ToUTF8, ...).
type ConvertFunc func(dst, src []byte, order unitext.Endian, flags unitext.Flags, nullTerminated bool) (outLen, consumed int, err error)

// LengthFunc is the signature shared by every named pair function's
// *Length counterpart.
type LengthFunc func(src []byte, order unitext.Endian, flags unitext.Flags, nullTerminated bool) (outLen, consumed int, err error)

// Pair names one ordered (source, destination) encoding combination and
// its Convert/MeasuredLength implementation.
type Pair struct {
	Src, Dst unitext.Encoding
	Convert  ConvertFunc
	Length   LengthFunc
}

// allPairs is built once; AllPairs returns a copy so callers can't mutate
// the registry through the slice they get back.
var allPairs = []Pair{
	{unitext.UTF8, unitext.UTF16, UTF8ToUTF16, UTF8ToUTF16Length},
	{unitext.UTF16, unitext.UTF8, UTF16ToUTF8, UTF16ToUTF8Length},
	{unitext.UTF8, unitext.UTF32, UTF8ToUTF32, UTF8ToUTF32Length},
	{unitext.UTF32, unitext.UTF8, UTF32ToUTF8, UTF32ToUTF8Length},
	{unitext.UTF16, unitext.UTF32, UTF16ToUTF32, UTF16ToUTF32Length},
	{unitext.UTF32, unitext.UTF16, UTF32ToUTF16, UTF32ToUTF16Length},
}

// AllPairs returns every supported ordered (source, destination) encoding
// pair, each paired with its Convert/MeasuredLength implementation, for
// callers and tests that want to walk every direction without a switch
// statement. The CLI resolves its --from/--to flags through Lookup.
func AllPairs() []Pair {
	out := make([]Pair, len(allPairs))
	copy(out, allPairs)
	return out
}

// Lookup returns the Pair for (src, dst), if supported. Same-encoding
// pairs (src == dst) are never registered: converting an encoding to
// itself is outside this engine's scope.
func Lookup(src, dst unitext.Encoding) (Pair, bool) {
	for _, p := range allPairs {
		if p.Src == src && p.Dst == dst {
			return p, true
		}
	}
	return Pair{}, false
}
