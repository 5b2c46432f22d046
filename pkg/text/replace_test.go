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

package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		rules     []ReplaceInfo
		want      string
		wantCount int
	}{
		{
			name:      "single_rule_multiple_occurrences",
			content:   "foo foo baz",
			rules:     []ReplaceInfo{{Old: "foo", New: "bar"}},
			want:      "bar bar baz",
			wantCount: 2,
		},
		{
			name:    "ordered_chaining",
			content: "a",
			rules: []ReplaceInfo{
				{Old: "a", New: "b"},
				{Old: "b", New: "c"},
			},
			want:      "c",
			wantCount: 2,
		},
		{
			name:      "no_match",
			content:   "hello world",
			rules:     []ReplaceInfo{{Old: "goodbye", New: "hi"}},
			want:      "hello world",
			wantCount: 0,
		},
		{
			name:      "empty_rules",
			content:   "hello world",
			rules:     nil,
			want:      "hello world",
			wantCount: 0,
		},
		{
			name:      "empty_old_skipped",
			content:   "hello",
			rules:     []ReplaceInfo{{Old: "", New: "x"}},
			want:      "hello",
			wantCount: 0,
		},
		{
			name:      "empty_content",
			content:   "",
			rules:     []ReplaceInfo{{Old: "foo", New: "bar"}},
			want:      "",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, count := Apply(tt.content, tt.rules)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}

func TestRulesFor(t *testing.T) {
	rules := []ReplaceInfo{
		{Old: "a", New: "b"},
		{Old: "c", New: "d", FileFilterGlob: "*.go"},
		{Old: "e", New: "f", FileFilterGlob: "docs/**/*.md"},
	}

	tests := []struct {
		name string
		path string
		want int
	}{
		{name: "go_file", path: "main.go", want: 2},
		{name: "nested_markdown", path: "docs/guide/intro.md", want: 2},
		{name: "unmatched", path: "Makefile", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RulesFor(tt.path, rules)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		err := Validate([]ReplaceInfo{
			{Old: "foo", New: "bar"},
			{Old: "baz", New: "", FileFilterGlob: "**/*.txt"},
		})
		require.NoError(t, err)
	})

	t.Run("missing_old", func(t *testing.T) {
		err := Validate([]ReplaceInfo{{New: "bar"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "old text is required")
	})

	t.Run("bad_glob", func(t *testing.T) {
		err := Validate([]ReplaceInfo{{Old: "foo", FileFilterGlob: "[unclosed"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid file filter glob")
	})
}
