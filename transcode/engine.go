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

// Package transcode implements the Unicode transcoding engine: decode and
// encode automatons for UTF-8, UTF-16 and UTF-32, wired into the six
// ordered conversion pairs (excluding same-to-same) through a single
// generic walker.
package transcode

import (
	"encoding/binary"

	"github.com/nilxtext/unitext"
	"github.com/nilxtext/unitext/endian"
	"github.com/nilxtext/unitext/internal"
)

// decodeFn decodes one scalar from src at source-unit-aligned byte offset
// i. n is reported in source code units, not bytes.
type decodeFn func(src []byte, i int, order binary.ByteOrder) (scalar rune, n int, outcome decodeOutcome)

// encodeFn encodes one scalar into dst. n is reported in destination code
// units, not bytes.
type encodeFn func(dst []byte, s rune, order binary.ByteOrder) (n int, ok bool)

// pairConfig binds a decode/encode automaton pair to the encodings they
// read and write, so the shared walker can convert byte offsets to unit
// counts and back without per-pair special-casing.
type pairConfig struct {
	srcEnc, dstEnc unitext.Encoding
	decode         decodeFn
	encode         encodeFn
}

// effectiveLen returns the number of leading bytes of src that belong to
// the logical input. With nullTerminated, it scans forward in unitWidth
// strides for the first all-zero code unit; if none is found before src
// is exhausted, the whole (unit-aligned) slice is treated as the input
// rather than reading past its end.
func effectiveLen(src []byte, unitWidth int, nullTerminated bool) int {
	if !nullTerminated {
		return len(src)
	}
	for i := 0; i+unitWidth <= len(src); i += unitWidth {
		zero := true
		for k := 0; k < unitWidth; k++ {
			if src[i+k] != 0 {
				zero = false
				break
			}
		}
		if zero {
			return i
		}
	}
	return len(src) - len(src)%unitWidth
}

// resolveByteOrder maps the public Endian selection to a concrete
// encoding/binary.ByteOrder, resolving NativeEndian against the host.
func resolveByteOrder(e unitext.Endian) binary.ByteOrder {
	switch e {
	case unitext.LittleEndian:
		return binary.LittleEndian
	case unitext.BigEndian:
		return binary.BigEndian
	default:
		return internal.NativeOrder
	}
}

// matchBOM reports whether the leading bytes of src carry a byte order
// mark recognized for srcEnc under the requested order. For NativeEndian
// it is BOM-driven: both byte orders are tried and the one that matches
// is reported back, so the caller can adopt it for the rest of the
// conversion. For an explicit LittleEndian/BigEndian request, only the
// BOM matching that fixed order is recognized; the order itself never
// changes as a result.
func matchBOM(srcEnc unitext.Encoding, order unitext.Endian, src []byte) (matched bool, matchedOrder unitext.Endian) {
	switch srcEnc {
	case unitext.UTF8:
		return endian.HasBOMUTF8(src), unitext.NativeEndian

	case unitext.UTF16:
		switch order {
		case unitext.LittleEndian:
			return endian.HasBOMUTF16LE(src), unitext.LittleEndian
		case unitext.BigEndian:
			return endian.HasBOMUTF16BE(src), unitext.BigEndian
		default:
			if endian.HasBOMUTF16LE(src) {
				return true, unitext.LittleEndian
			}
			if endian.HasBOMUTF16BE(src) {
				return true, unitext.BigEndian
			}
			return false, unitext.NativeEndian
		}

	case unitext.UTF32:
		switch order {
		case unitext.LittleEndian:
			return endian.HasBOMUTF32LE(src), unitext.LittleEndian
		case unitext.BigEndian:
			return endian.HasBOMUTF32BE(src), unitext.BigEndian
		default:
			if endian.HasBOMUTF32LE(src) {
				return true, unitext.LittleEndian
			}
			if endian.HasBOMUTF32BE(src) {
				return true, unitext.BigEndian
			}
			return false, unitext.NativeEndian
		}

	default:
		return false, unitext.NativeEndian
	}
}

// consumeBOM resolves the byte order to decode src with and the number of
// leading source code units a recognized BOM occupies (0 if absent or
// forbidden-but-tolerated doesn't apply: ForbidBOM makes a present BOM an
// error, never a silent pass-through).
func consumeBOM(srcEnc unitext.Encoding, order unitext.Endian, src []byte, flags unitext.Flags) (bo binary.ByteOrder, bomUnits int, err error) {
	matched, matchedOrder := matchBOM(srcEnc, order, src)

	effectiveOrder := order
	if matched && order == unitext.NativeEndian {
		effectiveOrder = matchedOrder
	}
	bo = resolveByteOrder(effectiveOrder)

	if !matched {
		return bo, 0, nil
	}

	if flags.Has(unitext.ForbidBOM) {
		return bo, 0, unitext.ErrBOMForbidden
	}

	if srcEnc == unitext.UTF8 {
		return bo, 3, nil
	}
	return bo, 1, nil
}

// convert is the single walker behind every named pair function and its
// *Length counterpart. When haveDst is false, dst is ignored and the walk
// never fails for lack of room: it behaves exactly like Convert run
// against an infinite destination, per the MeasuredLength contract.
func convert(cfg pairConfig, dst []byte, haveDst bool, src []byte, order unitext.Endian, flags unitext.Flags, nullTerminated bool) (outLen, consumed int, err error) {
	if src == nil {
		return 0, 0, unitext.ErrInvalidArgument
	}

	srcWidth := cfg.srcEnc.UnitWidth()
	dstWidth := cfg.dstEnc.UnitWidth()

	effLen := effectiveLen(src, srcWidth, nullTerminated)

	bo, bomUnits, err := consumeBOM(cfg.srcEnc, order, src[:effLen], flags)
	if err != nil {
		return 0, 0, err
	}

	pos := bomUnits * srcWidth
	srcUnits := bomUnits
	outUnits := 0
	outBytePos := 0

	outCap := 0
	if haveDst {
		outCap = len(dst)
	}

	for pos < effLen {
		unitStart := srcUnits

		scalar, n, outcome := cfg.decode(src[:effLen], pos, bo)

		if outcome == decTruncated {
			return outUnits, unitStart, unitext.ErrInvalidArgument
		}

		if outcome == decInvalid && flags.Has(unitext.StrictCodePoints) {
			return outUnits, unitStart, unitext.ErrInvalidCodepoint
		}

		if outcome == decInvalid {
			scalar = unitext.ReplacementScalar
		}

		pos += n * srcWidth
		srcUnits += n

		var written int
		var ok bool
		if haveDst {
			written, ok = cfg.encode(dst[outBytePos:], scalar, bo)
		} else {
			written, ok = measureEncode(cfg.dstEnc, scalar), true
		}

		if !ok {
			return outUnits, unitStart, unitext.ErrNoSpace
		}

		outUnits += written
		outBytePos += written * dstWidth
	}

	if haveDst {
		if outBytePos+dstWidth > outCap {
			return outUnits, srcUnits, unitext.ErrNoSpace
		}
		clear(dst[outBytePos : outBytePos+dstWidth])
	}

	return outUnits, srcUnits, nil
}
