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

// Package hashing maps a closed set of algorithm tags onto digest
// functions for strings and files.
package hashing

import (
	"crypto/md5"  //nolint:gosec // digests identify content, they are not security boundaries
	"crypto/sha1" //nolint:gosec // digests identify content, they are not security boundaries
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"io"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"
	"gitlab.com/tozd/go/errors"
)

// Algorithm names one supported hash function.
type Algorithm string

const (
	MD5    Algorithm = "md5"
	SHA1   Algorithm = "sha1"
	SHA256 Algorithm = "sha256"
	XXH64  Algorithm = "xxh64"
)

// examplePrefix marks digests produced for throwaway example data so they
// can never collide with real content digests.
const examplePrefix = "ex"

// New returns a fresh hash.Hash for the given algorithm.
func New(algo Algorithm) (hash.Hash, error) {
	switch algo {
	case MD5:
		return md5.New(), nil //nolint:gosec
	case SHA1:
		return sha1.New(), nil //nolint:gosec
	case SHA256:
		return sha256.New(), nil
	case XXH64:
		return xxhash.New(), nil
	default:
		return nil, errors.Errorf("unsupported hash algorithm %q", algo)
	}
}

// ParseAlgorithm maps a user-supplied name onto the closed algorithm set.
func ParseAlgorithm(s string) (Algorithm, error) {
	algo := Algorithm(strings.ToLower(s))
	switch algo {
	case MD5, SHA1, SHA256, XXH64:
		return algo, nil
	default:
		return "", errors.Errorf("unsupported hash algorithm %q", s)
	}
}

// Sum returns the hex digest of text under the given algorithm.
func Sum(text string, algo Algorithm) (string, error) {
	h, err := New(algo)
	if err != nil {
		return "", err
	}
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil)), nil
}

// SumExample returns Sum prefixed with the example marker.
func SumExample(text string, algo Algorithm) (string, error) {
	digest, err := Sum(text, algo)
	if err != nil {
		return "", err
	}
	return examplePrefix + digest, nil
}

// SumFile streams the file at path through the given algorithm and returns
// its hex digest.
func SumFile(path string, algo Algorithm) (string, error) {
	h, err := New(algo)
	if err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", errors.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(h, f); err != nil {
		return "", errors.Errorf("hashing %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
