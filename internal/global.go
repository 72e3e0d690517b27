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

// Package internal holds literal tables and host-introspection helpers
// shared by the transcode and bytesx packages, but not meant for use
// outside this module.
package internal

import "encoding/binary"

// NativeOrder is the host's byte order. binary.NativeEndian resolves this
// per architecture at build time; the transcode package resolves
// NativeEndian through this value rather than re-probing.
var NativeOrder binary.ByteOrder = binary.NativeEndian

// WhitespaceScalars lists the Unicode scalar values this package treats
// as whitespace for IsNullOrWhitespace/trim-offset purposes; a fixed,
// curated set rather than the full Unicode White_Space property.
var WhitespaceScalars = map[rune]bool{
	0x0009: true, 0x000A: true, 0x000B: true, 0x000C: true, 0x000D: true,
	0x0020: true,
	0x0085: true,
	0x00A0: true,
	0x1680: true,
	0x2000: true, 0x2001: true, 0x2002: true, 0x2003: true, 0x2004: true,
	0x2005: true, 0x2006: true, 0x2007: true, 0x2008: true, 0x2009: true,
	0x200A: true,
	0x2028: true, 0x2029: true,
	0x202F: true,
	0x205F: true,
	0x3000: true,
}

// NewlineScalars lists the Unicode scalar values that terminate a line for
// NextLine purposes. CR LF (0x0D 0x0A) is handled as a single two-unit
// terminator by the caller; each scalar below otherwise ends a line alone.
var NewlineScalars = map[rune]bool{
	0x000A: true, 0x000B: true, 0x000C: true, 0x000D: true,
	0x0085: true,
	0x2028: true, 0x2029: true,
}
