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

package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nilxtext/unitext"
)

// cmdErrOut is where the CLI's own diagnostics (never the library's) go.
var cmdErrOut io.Writer = os.Stderr

// readInput returns the full contents of path, or of stdin when path is
// "-" or empty.
func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// writeOutput writes data to path, or to stdout when path is "-" or empty.
func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// parseEncoding maps a --from/--to flag value to an unitext.Encoding.
func parseEncoding(name string) (unitext.Encoding, error) {
	switch strings.ToLower(name) {
	case "utf8", "utf-8":
		return unitext.UTF8, nil
	case "utf16", "utf-16":
		return unitext.UTF16, nil
	case "utf32", "utf-32":
		return unitext.UTF32, nil
	default:
		return 0, fmt.Errorf("unrecognized encoding %q (want utf8, utf16 or utf32)", name)
	}
}

// parseEndian maps a --from-endian/--to-endian flag value to an
// unitext.Endian. The empty string means native, matching the library's
// own NativeEndian zero value.
func parseEndian(name string) (unitext.Endian, error) {
	switch strings.ToLower(name) {
	case "", "native", "ne":
		return unitext.NativeEndian, nil
	case "little", "le":
		return unitext.LittleEndian, nil
	case "big", "be":
		return unitext.BigEndian, nil
	default:
		return 0, fmt.Errorf("unrecognized byte order %q (want native, little or big)", name)
	}
}

// effectiveLittleEndian resolves e against the host's actual byte order,
// so two Endian values that both resolve to the same concrete order (one
// explicit, one native) compare as equal rather than triggering a
// needless swap.
func effectiveLittleEndian(e unitext.Endian) bool {
	if e == unitext.LittleEndian {
		return true
	}
	if e == unitext.BigEndian {
		return false
	}
	var buf [2]byte
	binary.NativeEndian.PutUint16(buf[:], 1)
	return buf[0] == 1
}
