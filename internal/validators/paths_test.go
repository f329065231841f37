package validators

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitPaths_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single", "config.json", []string{"config.json"}},
		{"two files", "file1.json,file2.json", []string{"file1.json", "file2.json"}},
		{"trims and drops empties", " a.yml , ,b.yml ,", []string{"a.yml", "b.yml"}},
		{"nested dirs", "conf/base.toml,conf/local.toml", []string{"conf/base.toml", "conf/local.toml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitPaths(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitPaths_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		reason string
	}{
		{"empty", "", "path cannot be empty"},
		{"blank", "   ", "path cannot be empty"},
		{"only commas", ",,", "no valid file paths found"},
		{"traversal", "../config.json", "path traversal not allowed"},
		{"traversal second entry", "ok.json,a/../b.json", "path traversal not allowed"},
		{"too long", strings.Repeat("a", MaxPathLength+1), "path too long"},
		{"angle brackets", "config<test>.json", "invalid characters in path"},
		{"pipe", "a|b.json", "invalid characters in path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitPaths(tt.input)
			assert.Nil(t, got)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidPath)

			var pathErr *PathError
			require.ErrorAs(t, err, &pathErr)
			assert.Equal(t, tt.reason, pathErr.Reason)
		})
	}
}

func TestValidatePath_ColonDependsOnPlatform(t *testing.T) {
	assert.NoError(t, validatePath(`C:\config.json`, true))
	assert.NoError(t, validatePath("C:config.json", true))

	err := validatePath("C:config.json", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPath)
}

func TestCheckFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(file, []byte("{}"), 0o600))

	t.Run("existing file", func(t *testing.T) {
		assert.NoError(t, CheckFile(file))
	})

	t.Run("missing file", func(t *testing.T) {
		err := CheckFile(filepath.Join(dir, "nonexistent.json"))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrFileNotFound)
		assert.ErrorIs(t, err, ErrInvalidPath)
	})

	t.Run("directory", func(t *testing.T) {
		err := CheckFile(dir)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrFileNotFound)

		var pathErr *PathError
		require.ErrorAs(t, err, &pathErr)
		assert.Equal(t, "path is not a file", pathErr.Reason)
	})
}
