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

	"github.com/nilxtext/unitext/transcode"
)

var detectBOMInput string

var detectBOMCmd = &cobra.Command{
	Use:   "detect-bom",
	Short: "Report which byte order mark, if any, a stream starts with",
	RunE:  runDetectBOM,
}

func init() {
	detectBOMCmd.Flags().StringVar(&detectBOMInput, "input", "-", "input file, or - for stdin")
}

func runDetectBOM(cmd *cobra.Command, args []string) error {
	src, err := readInput(detectBOMInput)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	enc, order, ok := transcode.DetectBOM(src)
	if !ok {
		fmt.Fprintln(cmd.OutOrStdout(), "no byte order mark")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "encoding=%s endian=%s\n", enc, order)
	return nil
}
