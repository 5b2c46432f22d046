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
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/toolbox/pkg/config"
	"github.com/walteh/toolbox/pkg/fileops"
	"github.com/walteh/toolbox/pkg/log"
	"github.com/walteh/toolbox/pkg/text"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// concurrent manifest entries processed at once
const copyBatchSize = 4

func newCopyCmd() *cobra.Command {
	var (
		manifestPath string
		replaceFlags []string
	)

	cmd := &cobra.Command{
		Use:   "copy [source destination]",
		Short: "copy a file, optionally rewriting text on the way",
		Long: `Copy one file with positional source/destination arguments, or many
files from a manifest (--config). Each --replace old=new adds an ordered
substitution rule applied to the content during the copy.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := log.New(os.Stdout, currentLevel())
			ctx = log.NewContext(ctx, logger)

			if manifestPath != "" {
				if len(args) > 0 {
					return errors.New("positional arguments and --config are mutually exclusive")
				}
				return runManifestCopy(ctx, manifestPath)
			}

			if len(args) != 2 {
				return errors.New("source and destination are required without --config")
			}

			rules, err := parseReplaceFlags(replaceFlags)
			if err != nil {
				return err
			}
			return runSingleCopy(ctx, args[0], args[1], rules)
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "config", "c", "", "copy manifest file (.yaml, .json or .hcl)")
	cmd.Flags().StringArrayVarP(&replaceFlags, "replace", "r", nil, "substitution rule old=new, repeatable, applied in order")

	return cmd
}

// parseReplaceFlags turns repeated old=new flags into ordered rules.
func parseReplaceFlags(flags []string) ([]text.ReplaceInfo, error) {
	rules := make([]text.ReplaceInfo, 0, len(flags))
	for _, f := range flags {
		old, newText, ok := strings.Cut(f, "=")
		if !ok || old == "" {
			return nil, errors.Errorf("invalid --replace value %q, want old=new", f)
		}
		rules = append(rules, text.ReplaceInfo{Old: old, New: newText})
	}
	return rules, nil
}

func runSingleCopy(ctx context.Context, src, dst string, rules []text.ReplaceInfo) error {
	logger := log.FromContext(ctx)

	isNew := !fileExists(dst)
	result, err := fileops.Copy(ctx, src, dst, rules)
	if err != nil {
		logger.LogCopyOperation(ctx, log.CopyOperation{Source: src, Destination: dst, Failed: true})
		return err
	}

	logger.LogCopyOperation(ctx, log.CopyOperation{
		Source:       src,
		Destination:  dst,
		Replacements: result.Replacements,
		IsNew:        isNew,
	})

	if len(rules) > 0 && result.Replacements == 0 {
		logger.Warning(fmt.Sprintf("no replacements matched in %s", src))
	}
	return nil
}

func runManifestCopy(ctx context.Context, path string) error {
	logger := log.FromContext(ctx)

	manifest, err := config.Load(ctx, path)
	if err != nil {
		return errors.Errorf("loading manifest: %w", err)
	}

	logger.Header("copying files")
	logger.Infof("processing %d entries from %s", len(manifest.Copies), path)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(copyBatchSize)
	for _, entry := range manifest.Copies {
		entry := entry
		g.Go(func() error {
			if err := runSingleCopy(gctx, entry.Source, entry.Destination, entry.Rules()); err != nil {
				return errors.Errorf("copying %s: %w", entry.Source, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	logger.Successf("copied %d files", len(manifest.Copies))
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func currentLevel() zerolog.Level {
	if debugMode {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}
