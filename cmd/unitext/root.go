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
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// log is the CLI's own diagnostic logger. The library packages
// (transcode, endian, cstr, bytesx) never touch it; they report failure
// by return value only, never through this logger.
var log = logrus.New()

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "unitext",
	Short:         "Unicode transcoding utilities",
	Long:          "unitext exposes the UTF-8/UTF-16/UTF-32 transcoding engine as a command line tool: convert, measure and detect-bom operate on files or stdin/stdout.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
		return nil
	},
}

func init() {
	log.SetOutput(cmdErrOut)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose diagnostic logging")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(measureCmd)
	rootCmd.AddCommand(detectBOMCmd)
}
