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

package fileio

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

func init() {
	Register(&TextCodec{})
	Register(&JSONCodec{})
	Register(&CSVCodec{})
	Register(&YAMLCodec{})
}

// TextCodec handles plain text files as whole strings.
type TextCodec struct{}

func (*TextCodec) Extensions() []string { return []string{".txt", ".log", ".py"} }

func (*TextCodec) Read(path string) (any, error) {
	return ReadString(path)
}

func (*TextCodec) Write(path string, data any, mode Mode) error {
	s, ok := data.(string)
	if !ok {
		s = fmt.Sprint(data)
	}
	return WriteString(path, s, mode)
}

// JSONCodec handles .json files, decoding into any.
type JSONCodec struct{}

func (*JSONCodec) Extensions() []string { return []string{".json"} }

func (*JSONCodec) Read(path string) (any, error) {
	var v any
	if err := ReadJSON(path, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func (*JSONCodec) Write(path string, data any, mode Mode) error {
	return WriteJSON(path, data, mode)
}

// CSVCodec handles .csv files as [][]string.
type CSVCodec struct{}

func (*CSVCodec) Extensions() []string { return []string{".csv"} }

func (*CSVCodec) Read(path string) (any, error) {
	return ReadCSV(path)
}

func (*CSVCodec) Write(path string, data any, mode Mode) error {
	rows, ok := data.([][]string)
	if !ok {
		return errors.Errorf("csv data must be [][]string, got %T", data)
	}
	return WriteCSV(path, rows, mode)
}

// YAMLCodec handles .yaml and .yml files, decoding into any.
type YAMLCodec struct{}

func (*YAMLCodec) Extensions() []string { return []string{".yaml", ".yml"} }

func (*YAMLCodec) Read(path string) (any, error) {
	var v any
	if err := ReadYAML(path, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func (*YAMLCodec) Write(path string, data any, mode Mode) error {
	return WriteYAML(path, data, mode)
}

// ReadString returns the whole file as one string.
func ReadString(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// ReadLines returns the file split into lines without terminators.
func ReadLines(path string) ([]string, error) {
	s, err := ReadString(path)
	if err != nil {
		return nil, err
	}
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil, nil
	}
	return strings.Split(s, "\n"), nil
}

// WriteString writes s to path according to mode.
func WriteString(path, s string, mode Mode) error {
	f, err := openForWrite(path, mode)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString(s); err != nil {
		return errors.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ReadJSON decodes the file at path into v.
func ReadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Errorf("parsing JSON in %s: %w", path, err)
	}
	return nil
}

// WriteJSON encodes v as JSON to path.
func WriteJSON(path string, v any, mode Mode) error {
	f, err := openForWrite(path, mode)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	if err := enc.Encode(v); err != nil {
		return errors.Errorf("encoding JSON to %s: %w", path, err)
	}
	return nil
}

// ReadCSV returns all records of the file at path.
func ReadCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, errors.Errorf("parsing CSV in %s: %w", path, err)
	}
	return rows, nil
}

// WriteCSV writes rows to path according to mode.
func WriteCSV(path string, rows [][]string, mode Mode) error {
	f, err := openForWrite(path, mode)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return errors.Errorf("writing CSV to %s: %w", path, err)
	}
	return nil
}

// ReadYAML decodes the file at path into v.
func ReadYAML(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return errors.Errorf("parsing YAML in %s: %w", path, err)
	}
	return nil
}

// WriteYAML encodes v as YAML to path. Append mode starts a new document.
func WriteYAML(path string, v any, mode Mode) error {
	f, err := openForWrite(path, mode)
	if err != nil {
		return err
	}
	defer f.Close()

	if mode == Append {
		if _, err := f.WriteString("---\n"); err != nil {
			return errors.Errorf("writing %s: %w", path, err)
		}
	}

	enc := yaml.NewEncoder(f)
	defer enc.Close()
	if err := enc.Encode(v); err != nil {
		return errors.Errorf("encoding YAML to %s: %w", path, err)
	}
	return nil
}
