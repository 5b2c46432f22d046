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

package fileops

import (
	"os"

	"gitlab.com/tozd/go/errors"
)

// Mkdir creates the directory at path, including missing parents. It
// returns true when the directory was created and false when it already
// existed. A path that exists but is not a directory is an error.
func Mkdir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return false, errors.Errorf("path %s exists and is not a directory", path)
		}
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, errors.Errorf("checking %s: %w", path, err)
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return false, errors.Errorf("creating folder %s: %w", path, err)
	}
	return true, nil
}
