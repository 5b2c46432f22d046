// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Flags
	debugMode bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "toolbox",
		Short:         "reusable file, hash and request helpers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
	}

	cmd.PersistentFlags().BoolVarP(&debugMode, "debug", "d", false, "enable debug logging")

	cmd.AddCommand(newCopyCmd())
	cmd.AddCommand(newRequestCmd())
	cmd.AddCommand(newHashCmd())
	cmd.AddCommand(newMkdirCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debugMode {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}
