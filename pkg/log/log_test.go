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

package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogCopyOperation(t *testing.T) {
	tests := []struct {
		name       string
		op         CopyOperation
		wantDetail string
	}{
		{
			name:       "new_file",
			op:         CopyOperation{Source: "a.txt", Destination: "b.txt", IsNew: true},
			wantDetail: "copied",
		},
		{
			name:       "with_replacements",
			op:         CopyOperation{Source: "a.txt", Destination: "b.txt", Replacements: 3},
			wantDetail: "3 replacements",
		},
		{
			name:       "failed",
			op:         CopyOperation{Source: "a.txt", Destination: "b.txt", Failed: true},
			wantDetail: "failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(&buf, zerolog.Disabled)

			logger.LogCopyOperation(context.Background(), tt.op)

			out := buf.String()
			assert.Contains(t, out, tt.op.Destination)
			assert.Contains(t, out, tt.wantDetail)
			require.Len(t, logger.Operations(), 1)
		})
	}
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, zerolog.Disabled)

	ctx := NewContext(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))
}

func TestFromContext_Missing(t *testing.T) {
	logger := FromContext(context.Background())
	require.NotNil(t, logger, "missing logger falls back to a discarding one")
	logger.Success("no panic")
}

func TestMessageHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, zerolog.Disabled)

	logger.Header("copying files")
	logger.Infof("processing %d entries", 2)
	logger.Warning("something odd")
	logger.Error("something bad")
	logger.Successf("done in %s", "2ms")

	out := buf.String()
	assert.Contains(t, out, "toolbox")
	assert.Contains(t, out, "processing 2 entries")
	assert.Contains(t, out, "something odd")
	assert.Contains(t, out, "something bad")
	assert.Contains(t, out, "done in 2ms")
}
