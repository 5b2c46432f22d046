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

// Package text applies ordered literal string substitutions to file content.
package text

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// ReplaceInfo is a single literal substitution rule. Rules are applied in
// the order they appear, so a later rule sees the output of earlier rules.
type ReplaceInfo struct {
	Old string // text to search for
	New string // text to replace it with

	// FileFilterGlob optionally restricts the rule to destination paths
	// matching a doublestar glob. Empty means the rule applies everywhere.
	FileFilterGlob string
}

// Apply runs every rule against content in order and returns the resulting
// text together with the total number of occurrences replaced. Rules with an
// empty Old are skipped.
func Apply(content string, rules []ReplaceInfo) (string, int) {
	count := 0
	for _, rule := range rules {
		if rule.Old == "" {
			continue
		}
		n := strings.Count(content, rule.Old)
		if n == 0 {
			continue
		}
		content = strings.ReplaceAll(content, rule.Old, rule.New)
		count += n
	}
	return content, count
}

// RulesFor returns the subset of rules that apply to the given destination
// path. A rule with no filter glob always applies; a rule whose glob fails
// to match (or fails to compile) is excluded.
func RulesFor(path string, rules []ReplaceInfo) []ReplaceInfo {
	matched := make([]ReplaceInfo, 0, len(rules))
	for _, rule := range rules {
		if rule.FileFilterGlob == "" {
			matched = append(matched, rule)
			continue
		}
		ok, err := doublestar.Match(rule.FileFilterGlob, path)
		if err != nil || !ok {
			continue
		}
		matched = append(matched, rule)
	}
	return matched
}

// Validate checks that every rule is usable before any file is touched.
func Validate(rules []ReplaceInfo) error {
	for i, rule := range rules {
		if rule.Old == "" {
			return errors.Errorf("rule %d: old text is required", i)
		}
		if rule.FileFilterGlob != "" && !doublestar.ValidatePattern(rule.FileFilterGlob) {
			return errors.Errorf("rule %d: invalid file filter glob %q", i, rule.FileFilterGlob)
		}
	}
	return nil
}
