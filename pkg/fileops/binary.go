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
	"bytes"
	"net/http"
	"strings"
)

// sniffLen bounds how much of the content is inspected, same window
// http.DetectContentType uses.
const sniffLen = 8000

// IsBinary reports whether data looks like binary rather than text. A NUL
// byte in the leading window is the primary signal; content sniffing gets a
// veto so UTF-16 text (which legitimately contains NULs) is not rejected.
func IsBinary(data []byte) bool {
	if len(data) == 0 {
		return false
	}

	window := data
	if len(window) > sniffLen {
		window = window[:sniffLen]
	}
	if !bytes.ContainsRune(window, 0x00) {
		return false
	}

	contentType := http.DetectContentType(data)
	return !strings.HasPrefix(contentType, "text/")
}
