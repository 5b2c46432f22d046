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

// Package fileio reads and writes files through a closed set of
// extension-keyed codecs: plain text (.txt, .log, .py), JSON, CSV and YAML.
package fileio

import (
	"os"
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// Mode selects how Write treats an existing destination file.
type Mode string

const (
	// Overwrite truncates the destination before writing.
	Overwrite Mode = "w"
	// Append adds to the end of the destination.
	Append Mode = "a"
)

// ErrUnsupportedExtension is returned when no codec is registered for a
// file's extension.
var ErrUnsupportedExtension = errors.New("unsupported file extension")

// Codec reads and writes one family of file formats.
type Codec interface {
	// Extensions lists the extensions (with leading dot) this codec owns.
	Extensions() []string

	// Read decodes the whole file at path.
	Read(path string) (any, error)

	// Write encodes data to path according to mode.
	Write(path string, data any, mode Mode) error
}

var codecs = map[string]Codec{}

// Register makes a codec available to Read and Write dispatch. Later
// registrations win for contested extensions.
func Register(c Codec) {
	for _, ext := range c.Extensions() {
		codecs[strings.ToLower(ext)] = c
	}
}

// CodecFor returns the codec registered for path's extension, or nil.
func CodecFor(path string) Codec {
	return codecs[strings.ToLower(filepath.Ext(path))]
}

// Read decodes the file at path with the codec matching its extension.
func Read(path string) (any, error) {
	c := CodecFor(path)
	if c == nil {
		return nil, errors.Errorf("%w: %q", ErrUnsupportedExtension, filepath.Ext(path))
	}
	return c.Read(path)
}

// Write encodes data to path with the codec matching its extension.
func Write(path string, data any, mode Mode) error {
	c := CodecFor(path)
	if c == nil {
		return errors.Errorf("%w: %q", ErrUnsupportedExtension, filepath.Ext(path))
	}
	if mode != Overwrite && mode != Append {
		mode = Overwrite
	}
	return c.Write(path, data, mode)
}

// openForWrite opens path according to mode, creating it if needed.
func openForWrite(path string, mode Mode) (*os.File, error) {
	flags := os.O_WRONLY | os.O_CREATE
	if mode == Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return nil, errors.Errorf("opening %s for writing: %w", path, err)
	}
	return f, nil
}
