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

// Package fileops copies files, optionally rewriting their text content
// with ordered substitution rules on the way through.
package fileops

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/toolbox/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// ErrBinaryContent is returned when substitution rules are supplied for a
// source file that does not look like text. Rewriting binary data through
// string replacement would corrupt it, so the combination is rejected
// outright. A copy with no rules handles binary files fine.
var ErrBinaryContent = errors.New("source is binary, refusing to apply text replacements")

// CopyResult reports what a Copy call did.
type CopyResult struct {
	Replacements int   // occurrences replaced across all rules
	Bytes        int64 // bytes written to the destination
}

// Copy copies src to dst, applying rules in order to the content when any
// are given. With no applicable rules the copy is byte-for-byte and the
// source file mode is preserved. An existing destination is overwritten.
// Missing parent directories of dst are created.
//
// The write is not staged through a temp file; interrupting the process can
// leave a partial destination.
func Copy(ctx context.Context, src, dst string, rules []text.ReplaceInfo) (*CopyResult, error) {
	logger := zerolog.Ctx(ctx)

	if err := text.Validate(rules); err != nil {
		return nil, errors.Errorf("validating rules: %w", err)
	}

	info, err := os.Stat(src)
	if err != nil {
		return nil, errors.Errorf("reading source %s: %w", src, err)
	}
	if info.IsDir() {
		return nil, errors.Errorf("source %s is a directory", src)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return nil, errors.Errorf("creating parent directories for %s: %w", dst, err)
	}

	applicable := text.RulesFor(dst, rules)
	if len(applicable) == 0 {
		return copyBytes(ctx, src, dst, info.Mode())
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return nil, errors.Errorf("reading source %s: %w", src, err)
	}
	if IsBinary(data) {
		return nil, errors.Errorf("copying %s: %w", src, ErrBinaryContent)
	}

	replaced, count := text.Apply(string(data), applicable)
	if err := os.WriteFile(dst, []byte(replaced), info.Mode().Perm()); err != nil {
		return nil, errors.Errorf("writing destination %s: %w", dst, err)
	}

	logger.Debug().
		Str("src", src).
		Str("dst", dst).
		Int("replacements", count).
		Msg("copied file with replacements")

	return &CopyResult{Replacements: count, Bytes: int64(len(replaced))}, nil
}

// copyBytes streams src to dst unchanged.
func copyBytes(ctx context.Context, src, dst string, mode os.FileMode) (*CopyResult, error) {
	in, err := os.Open(src)
	if err != nil {
		return nil, errors.Errorf("opening source %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode.Perm())
	if err != nil {
		return nil, errors.Errorf("opening destination %s: %w", dst, err)
	}

	n, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		return nil, errors.Errorf("copying %s to %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return nil, errors.Errorf("closing destination %s: %w", dst, err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("src", src).
		Str("dst", dst).
		Int64("bytes", n).
		Msg("copied file")

	return &CopyResult{Bytes: n}, nil
}
