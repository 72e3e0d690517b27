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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nilxtext/unitext"
	"github.com/nilxtext/unitext/endian"
	"github.com/nilxtext/unitext/transcode"
)

var (
	convertFrom       string
	convertTo         string
	convertFromEndian string
	convertToEndian   string
	convertForbidBOM  bool
	convertStrict     bool
	convertNullTerm   bool
	convertInput      string
	convertOutput     string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Transcode a byte stream between UTF-8, UTF-16 and UTF-32",
	Long: "convert reads --input (or stdin), transcodes it from --from to --to, " +
		"and writes the result to --output (or stdout). A --to-endian different " +
		"from --from-endian is applied as an explicit byte swap after " +
		"conversion, never as a single combined pass.",
	RunE: runConvert,
}

func init() {
	flags := convertCmd.Flags()
	flags.StringVar(&convertFrom, "from", "", "source encoding: utf8, utf16 or utf32 (required)")
	flags.StringVar(&convertTo, "to", "", "destination encoding: utf8, utf16 or utf32 (required)")
	flags.StringVar(&convertFromEndian, "from-endian", "native", "byte order to decode the source under: native, little or big")
	flags.StringVar(&convertToEndian, "to-endian", "native", "byte order to encode the destination as: native, little or big")
	flags.BoolVar(&convertForbidBOM, "forbid-bom", false, "fail instead of silently consuming a leading byte order mark")
	flags.BoolVar(&convertStrict, "strict", false, "halt on the first invalid scalar instead of emitting U+FFFD")
	flags.BoolVar(&convertNullTerm, "null-terminated", false, "stop reading the source at its first zero code unit")
	flags.StringVar(&convertInput, "input", "-", "input file, or - for stdin")
	flags.StringVar(&convertOutput, "output", "-", "output file, or - for stdout")
	_ = convertCmd.MarkFlagRequired("from")
	_ = convertCmd.MarkFlagRequired("to")
}

func runConvert(cmd *cobra.Command, args []string) error {
	srcEnc, err := parseEncoding(convertFrom)
	if err != nil {
		return err
	}
	dstEnc, err := parseEncoding(convertTo)
	if err != nil {
		return err
	}
	if srcEnc == dstEnc {
		return fmt.Errorf("--from and --to must name different encodings")
	}

	fromOrder, err := parseEndian(convertFromEndian)
	if err != nil {
		return err
	}
	toOrder, err := parseEndian(convertToEndian)
	if err != nil {
		return err
	}

	pair, ok := transcode.Lookup(srcEnc, dstEnc)
	if !ok {
		return fmt.Errorf("no transcoder registered for %s -> %s", srcEnc, dstEnc)
	}

	src, err := readInput(convertInput)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	var flags unitext.Flags
	if convertForbidBOM {
		flags |= unitext.ForbidBOM
	}
	if convertStrict {
		flags |= unitext.StrictCodePoints
	}

	log.Debugf("measuring %s -> %s (endian %s)", srcEnc, dstEnc, fromOrder)
	outLen, consumed, err := pair.Length(src, fromOrder, flags, convertNullTerm)
	if err != nil {
		return annotateStatus(err, consumed)
	}

	dstWidth := dstEnc.UnitWidth()
	dst := make([]byte, (outLen+1)*dstWidth)

	log.Debugf("converting %d source units, expecting %d destination units", consumed, outLen)
	_, _, err = pair.Convert(dst, src, fromOrder, flags, convertNullTerm)
	if err != nil {
		return annotateStatus(err, consumed)
	}
	dst = dst[:outLen*dstWidth]

	if dstWidth > 1 && effectiveLittleEndian(toOrder) != effectiveLittleEndian(fromOrder) {
		log.Debugf("re-ordering destination units from %s to %s", fromOrder, toOrder)
		if dstWidth == 2 {
			endian.SwapEndian16(dst, outLen)
		} else {
			endian.SwapEndian32(dst, outLen)
		}
	}

	if err := writeOutput(convertOutput, dst); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// annotateStatus adds the halting offset to the library's bare status
// error, since the CLI is the one place that needs a human-readable
// message rather than an errors.Is-able sentinel.
func annotateStatus(err error, consumed int) error {
	return fmt.Errorf("%w (at source unit %d)", err, consumed)
}
