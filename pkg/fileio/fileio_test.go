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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWriteDispatch(t *testing.T) {
	dir := t.TempDir()

	t.Run("text", func(t *testing.T) {
		path := filepath.Join(dir, "notes.txt")
		require.NoError(t, Write(path, "hello\nworld\n", Overwrite))

		got, err := Read(path)
		require.NoError(t, err)
		assert.Equal(t, "hello\nworld\n", got)
	})

	t.Run("log_appends", func(t *testing.T) {
		path := filepath.Join(dir, "run.log")
		require.NoError(t, Write(path, "first\n", Overwrite))
		require.NoError(t, Write(path, "second\n", Append))

		lines, err := ReadLines(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second"}, lines)
	})

	t.Run("python_source_as_text", func(t *testing.T) {
		path := filepath.Join(dir, "script.py")
		require.NoError(t, Write(path, "print('hi')\n", Overwrite))

		got, err := Read(path)
		require.NoError(t, err)
		assert.Equal(t, "print('hi')\n", got)
	})

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(dir, "data.json")
		require.NoError(t, Write(path, map[string]any{"name": "toolbox", "count": 3}, Overwrite))

		got, err := Read(path)
		require.NoError(t, err)
		m, ok := got.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "toolbox", m["name"])
		assert.EqualValues(t, 3, m["count"])
	})

	t.Run("csv", func(t *testing.T) {
		path := filepath.Join(dir, "table.csv")
		rows := [][]string{{"a", "b"}, {"1", "2"}}
		require.NoError(t, Write(path, rows, Overwrite))

		got, err := ReadCSV(path)
		require.NoError(t, err)
		assert.Equal(t, rows, got)
	})

	t.Run("csv_wrong_shape", func(t *testing.T) {
		err := Write(filepath.Join(dir, "bad.csv"), "not rows", Overwrite)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "csv data must be [][]string")
	})

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(dir, "conf.yaml")
		require.NoError(t, Write(path, map[string]any{"debug": true}, Overwrite))

		got, err := Read(path)
		require.NoError(t, err)
		m, ok := got.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, true, m["debug"])
	})

	t.Run("unsupported_extension", func(t *testing.T) {
		_, err := Read(filepath.Join(dir, "binary.exe"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnsupportedExtension)

		err = Write(filepath.Join(dir, "binary.exe"), "x", Overwrite)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnsupportedExtension)
	})
}

func TestCSVAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.csv")
	require.NoError(t, WriteCSV(path, [][]string{{"a", "b"}}, Overwrite))
	require.NoError(t, WriteCSV(path, [][]string{{"c", "d"}}, Append))

	got, err := ReadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, got)
}

func TestReadLines_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	lines, err := ReadLines(path)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestReadJSON_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	var v any
	err := ReadJSON(path, &v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing JSON")
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}
