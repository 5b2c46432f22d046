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

// Package config loads the copy manifest consumed by the toolbox CLI.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/walteh/toolbox/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔄 Replacement is one string replacement applied while copying a file.
type Replacement struct {
	Old  string `json:"old" yaml:"old" hcl:"old"`
	New  string `json:"new" yaml:"new" hcl:"new"`
	File string `json:"file,omitempty" yaml:"file,omitempty" hcl:"file,optional"` // optional doublestar glob limiting the rule
}

// 🔧 CopyEntry is one source-to-destination copy with its replacements.
type CopyEntry struct {
	Source       string        `json:"source" yaml:"source" hcl:"source"`
	Destination  string        `json:"destination" yaml:"destination" hcl:"destination"`
	Replacements []Replacement `json:"replacements,omitempty" yaml:"replacements,omitempty" hcl:"replacement,block"`
}

// 📚 Manifest is the complete copy configuration.
type Manifest struct {
	Copies []CopyEntry `json:"copies" yaml:"copies" hcl:"copy,block"`
}

// Rules converts the entry's replacements into substitution rules.
func (e *CopyEntry) Rules() []text.ReplaceInfo {
	rules := make([]text.ReplaceInfo, 0, len(e.Replacements))
	for _, r := range e.Replacements {
		rules = append(rules, text.ReplaceInfo{
			Old:            r.Old,
			New:            r.New,
			FileFilterGlob: r.File,
		})
	}
	return rules
}

// 📝 String describes the entry for log lines.
func (e *CopyEntry) String() string {
	return fmt.Sprintf("%s -> %s (%d replacements)", e.Source, e.Destination, len(e.Replacements))
}

// 🔍 Validate checks the manifest and normalizes its paths.
func (m *Manifest) Validate() error {
	if len(m.Copies) == 0 {
		return errors.New("manifest has no copy entries")
	}

	for i := range m.Copies {
		entry := &m.Copies[i]
		if entry.Source == "" {
			return errors.Errorf("copy entry %d: source is required", i)
		}
		if entry.Destination == "" {
			return errors.Errorf("copy entry %d: destination is required", i)
		}
		entry.Source = filepath.Clean(entry.Source)
		entry.Destination = filepath.Clean(entry.Destination)

		if err := text.Validate(entry.Rules()); err != nil {
			return errors.Errorf("copy entry %d: %w", i, err)
		}
	}
	return nil
}
