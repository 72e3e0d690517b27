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
	"github.com/nilxtext/unitext/transcode"
)

var (
	measureFrom      string
	measureTo        string
	measureEndian    string
	measureForbidBOM bool
	measureStrict    bool
	measureNullTerm  bool
	measureInput     string
)

var measureCmd = &cobra.Command{
	Use:   "measure",
	Short: "Report the destination length a convert would produce, without writing output",
	RunE:  runMeasure,
}

func init() {
	flags := measureCmd.Flags()
	flags.StringVar(&measureFrom, "from", "", "source encoding: utf8, utf16 or utf32 (required)")
	flags.StringVar(&measureTo, "to", "", "destination encoding: utf8, utf16 or utf32 (required)")
	flags.StringVar(&measureEndian, "endian", "native", "byte order to decode the source under: native, little or big")
	flags.BoolVar(&measureForbidBOM, "forbid-bom", false, "fail instead of silently consuming a leading byte order mark")
	flags.BoolVar(&measureStrict, "strict", false, "halt on the first invalid scalar instead of emitting U+FFFD")
	flags.BoolVar(&measureNullTerm, "null-terminated", false, "stop reading the source at its first zero code unit")
	flags.StringVar(&measureInput, "input", "-", "input file, or - for stdin")
	_ = measureCmd.MarkFlagRequired("from")
	_ = measureCmd.MarkFlagRequired("to")
}

func runMeasure(cmd *cobra.Command, args []string) error {
	srcEnc, err := parseEncoding(measureFrom)
	if err != nil {
		return err
	}
	dstEnc, err := parseEncoding(measureTo)
	if err != nil {
		return err
	}
	order, err := parseEndian(measureEndian)
	if err != nil {
		return err
	}

	pair, ok := transcode.Lookup(srcEnc, dstEnc)
	if !ok {
		return fmt.Errorf("no transcoder registered for %s -> %s", srcEnc, dstEnc)
	}

	src, err := readInput(measureInput)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	var flags unitext.Flags
	if measureForbidBOM {
		flags |= unitext.ForbidBOM
	}
	if measureStrict {
		flags |= unitext.StrictCodePoints
	}

	outLen, consumed, err := pair.Length(src, order, flags, measureNullTerm)
	if err != nil {
		return annotateStatus(err, consumed)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "outLen=%d consumed=%d\n", outLen, consumed)
	return nil
}
