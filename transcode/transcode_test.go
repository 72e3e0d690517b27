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
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nilxtext/unitext"
)

func TestUTF8ToUTF16ASCII(t *testing.T) {
	dst := make([]byte, 16)
	outLen, consumed, err := UTF8ToUTF16(dst, []byte("ABC"), unitext.NativeEndian, 0, false)
	require.NoError(t, err)
	require.Equal(t, 3, outLen)
	require.Equal(t, 3, consumed)
	require.Equal(t, []byte{0x41, 0x00, 0x42, 0x00, 0x43, 0x00}, dst[:6])
}

func TestUTF8ToUTF32SupplementaryPlane(t *testing.T) {
	dst := make([]byte, 8)
	outLen, consumed, err := UTF8ToUTF32(dst, []byte{0xF0, 0x9F, 0x98, 0x80}, unitext.LittleEndian, 0, false)
	require.NoError(t, err)
	require.Equal(t, 1, outLen)
	require.Equal(t, 4, consumed)
	require.Equal(t, []byte{0x00, 0xF6, 0x01, 0x00}, dst[:4])
}

func TestUTF16ToUTF8SurrogatePair(t *testing.T) {
	src := []byte{0x3D, 0xD8, 0x00, 0xDE} // D83D DE00 little-endian
	dst := make([]byte, 8)
	outLen, consumed, err := UTF16ToUTF8(dst, src, unitext.LittleEndian, 0, false)
	require.NoError(t, err)
	require.Equal(t, 4, outLen)
	require.Equal(t, 2, consumed)
	require.Equal(t, []byte{0xF0, 0x9F, 0x98, 0x80}, dst[:4])
}

func TestUTF16ToUTF8BOMSelectedBigEndian(t *testing.T) {
	src := []byte{0xFE, 0xFF, 0x00, 0x41, 0x00, 0x42}
	dst := make([]byte, 8)
	outLen, consumed, err := UTF16ToUTF8(dst, src, unitext.NativeEndian, 0, false)
	require.NoError(t, err)
	require.Equal(t, 2, outLen)
	require.Equal(t, 3, consumed)
	require.Equal(t, "AB", string(dst[:2]))
}

func TestUTF8StrictInvalidScalarSurrogate(t *testing.T) {
	src := []byte{0xED, 0xA0, 0x80} // encodes U+D800

	dst := make([]byte, 8)
	_, consumed, err := UTF8ToUTF32(dst, src, unitext.NativeEndian, unitext.StrictCodePoints, false)
	require.ErrorIs(t, err, unitext.ErrInvalidCodepoint)
	require.Equal(t, 0, consumed)

	outLen, consumed, err := UTF8ToUTF32(dst, src, unitext.NativeEndian, 0, false)
	require.NoError(t, err)
	require.Equal(t, 1, outLen)
	require.Equal(t, 3, consumed)
	require.Equal(t, uint32(unitext.ReplacementScalar), leUint32(dst[:4]))
}

func TestLoneHighSurrogateAtEndOfInput(t *testing.T) {
	src := []byte{0x3D, 0xD8} // D83D with nothing following
	dst := make([]byte, 8)
	_, consumed, err := UTF16ToUTF8(dst, src, unitext.LittleEndian, 0, false)
	require.ErrorIs(t, err, unitext.ErrInvalidArgument)
	require.Equal(t, 0, consumed)
}

func TestLoneLowSurrogate(t *testing.T) {
	src := []byte{0x00, 0xDE} // DE00 with no preceding high surrogate
	dst := make([]byte, 8)

	_, _, err := UTF16ToUTF8(dst, src, unitext.LittleEndian, unitext.StrictCodePoints, false)
	require.ErrorIs(t, err, unitext.ErrInvalidCodepoint)

	outLen, _, err := UTF16ToUTF8(dst, src, unitext.LittleEndian, 0, false)
	require.NoError(t, err)
	require.Equal(t, []byte{0xEF, 0xBF, 0xBD}, dst[:outLen])
}

func TestEmptyInputProducesSuccessAndTerminator(t *testing.T) {
	dst := make([]byte, 4)
	outLen, consumed, err := UTF8ToUTF16(dst, []byte{}, unitext.NativeEndian, 0, false)
	require.NoError(t, err)
	require.Equal(t, 0, outLen)
	require.Equal(t, 0, consumed)
	require.Equal(t, []byte{0, 0}, dst[:2])
}

func TestExactCapacitySucceedsOneShortFails(t *testing.T) {
	src := []byte("hi")
	outLen, _, err := UTF8ToUTF16Length(src, unitext.NativeEndian, 0, false)
	require.NoError(t, err)

	ok := make([]byte, (outLen+1)*2)
	_, _, err = UTF8ToUTF16(ok, src, unitext.NativeEndian, 0, false)
	require.NoError(t, err)

	short := make([]byte, outLen*2)
	_, _, err = UTF8ToUTF16(short, src, unitext.NativeEndian, 0, false)
	require.ErrorIs(t, err, unitext.ErrNoSpace)
}

func TestMeasuredLengthMatchesConvert(t *testing.T) {
	src := []byte("héllo wörld \xF0\x9F\x98\x80")
	measured, consumedM, err := UTF8ToUTF16Length(src, unitext.NativeEndian, 0, false)
	require.NoError(t, err)

	dst := make([]byte, (measured+1)*2)
	outLen, consumedC, err := UTF8ToUTF16(dst, src, unitext.NativeEndian, 0, false)
	require.NoError(t, err)
	require.Equal(t, measured, outLen)
	require.Equal(t, consumedM, consumedC)
}

func TestRoundTripUTF8ToUTF32ToUTF8(t *testing.T) {
	original := []byte("Hello, 世界! \xF0\x9F\x98\x80")

	n32, _, err := UTF8ToUTF32Length(original, unitext.NativeEndian, 0, false)
	require.NoError(t, err)
	buf32 := make([]byte, (n32+1)*4)
	outLen32, _, err := UTF8ToUTF32(buf32, original, unitext.NativeEndian, 0, false)
	require.NoError(t, err)
	buf32 = buf32[:outLen32*4]

	n8, _, err := UTF32ToUTF8Length(buf32, unitext.NativeEndian, 0, false)
	require.NoError(t, err)
	buf8 := make([]byte, n8+1)
	outLen8, _, err := UTF32ToUTF8(buf8, buf32, unitext.NativeEndian, 0, false)
	require.NoError(t, err)

	require.True(t, bytes.Equal(original, buf8[:outLen8]))
}

func TestRoundTripUTF16ToUTF32ToUTF16PreservesSurrogates(t *testing.T) {
	src := []byte{0x3D, 0xD8, 0x00, 0xDE, 0x41, 0x00} // surrogate pair + 'A', little-endian

	n32, _, err := UTF16ToUTF32Length(src, unitext.LittleEndian, 0, false)
	require.NoError(t, err)
	buf32 := make([]byte, (n32+1)*4)
	outLen32, _, err := UTF16ToUTF32(buf32, src, unitext.LittleEndian, 0, false)
	require.NoError(t, err)
	buf32 = buf32[:outLen32*4]

	n16, _, err := UTF32ToUTF16Length(buf32, unitext.LittleEndian, 0, false)
	require.NoError(t, err)
	buf16 := make([]byte, (n16+1)*2)
	outLen16, _, err := UTF32ToUTF16(buf16, buf32, unitext.LittleEndian, 0, false)
	require.NoError(t, err)

	require.True(t, bytes.Equal(src, buf16[:outLen16*2]))
}

func TestForbidBOMRejectsLeadingMark(t *testing.T) {
	src := []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}
	dst := make([]byte, 8)
	_, _, err := UTF8ToUTF16(dst, src, unitext.NativeEndian, unitext.ForbidBOM, false)
	require.ErrorIs(t, err, unitext.ErrBOMForbidden)
}

func TestExplicitOrderKeepsItsOrderEvenWithOppositeBOM(t *testing.T) {
	// A BE BOM in a stream explicitly declared LittleEndian: the BOM is
	// not recognized under the fixed order, so it decodes as ordinary
	// content rather than being skipped or flipping the order.
	src := []byte{0xFE, 0xFF, 0x00, 0x41}
	dst := make([]byte, 16)
	outLen, consumed, err := UTF16ToUTF8(dst, src, unitext.LittleEndian, 0, false)
	require.NoError(t, err)
	require.Equal(t, 2, consumed)
	require.NotEqual(t, "A", string(dst[:outLen]))
}

func TestNullTerminatedStopsAtZeroUnit(t *testing.T) {
	src := []byte{'h', 'i', 0x00, 'x', 'y'}
	dst := make([]byte, 16)
	outLen, consumed, err := UTF8ToUTF16(dst, src, unitext.NativeEndian, 0, true)
	require.NoError(t, err)
	require.Equal(t, 2, outLen)
	require.Equal(t, 2, consumed)
}

func TestAllPairsMeasureSingleASCIIUnit(t *testing.T) {
	for _, p := range AllPairs() {
		src := []byte{0x41, 0x00, 0x00, 0x00}[:p.Src.UnitWidth()]
		if p.Src == unitext.UTF8 {
			src = []byte{0x41}
		}
		n, _, err := p.Length(src, unitext.LittleEndian, 0, false)
		require.NoErrorf(t, err, "%s->%s", p.Src, p.Dst)
		require.Equal(t, 1, n)
	}
}

func TestLookupRejectsSameEncoding(t *testing.T) {
	_, ok := Lookup(unitext.UTF8, unitext.UTF8)
	require.False(t, ok)
}

func TestDetectBOM(t *testing.T) {
	enc, order, ok := DetectBOM([]byte{0xFF, 0xFE, 0x00, 0x00})
	require.True(t, ok)
	require.Equal(t, unitext.UTF32, enc)
	require.Equal(t, unitext.LittleEndian, order)
}

func leUint32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
