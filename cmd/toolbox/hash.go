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
	"fmt"

	"github.com/spf13/cobra"
	"github.com/walteh/toolbox/pkg/hashing"
)

func newHashCmd() *cobra.Command {
	var (
		algoName string
		filePath string
		example  bool
	)

	cmd := &cobra.Command{
		Use:   "hash [text]",
		Short: "digest text or a file with a named hash algorithm",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			algo, err := hashing.ParseAlgorithm(algoName)
			if err != nil {
				return err
			}

			var digest string
			switch {
			case filePath != "":
				digest, err = hashing.SumFile(filePath, algo)
			case len(args) == 1 && example:
				digest, err = hashing.SumExample(args[0], algo)
			case len(args) == 1:
				digest, err = hashing.Sum(args[0], algo)
			default:
				return cmd.Usage()
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), digest)
			return nil
		},
	}

	cmd.Flags().StringVarP(&algoName, "algo", "a", "md5", "hash algorithm (md5, sha1, sha256, xxh64)")
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "hash a file instead of the text argument")
	cmd.Flags().BoolVar(&example, "example", false, "prefix the digest with the example marker")

	return cmd
}
