package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-better-config/internal/environ"
	"github.com/MKhiriev/go-better-config/internal/loader"
	"github.com/MKhiriev/go-better-config/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, env map[string]string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand(
		models.NewAppBuildInfo("v1.2.3", "2026-10-19", "abc123"),
		WithEnvironment(environ.NewMap(env)),
		WithOutput(&out, &errOut),
	)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

// ── resolve ───────────────────────────────────────────────────────────────────

func TestResolve_LayersFilesAndAppliesEnvironment(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	base := writeFile(t, dir, "base.json", `{"database": {"host": "db", "port": 5432}, "password": "file"}`)
	local := writeFile(t, dir, "local.yaml", "database:\n  port: 6432\n")
	env := map[string]string{"DATABASE_HOST": "env-db", "PASSWORD": "env-pw"}

	// Act
	out, _, err := run(t, env, "resolve", "-f", base+","+local, "--exclude", "password")

	// Assert
	require.NoError(t, err)
	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, map[string]string{
		"database.host": "env-db",
		"database.port": "6432",
		"password":      "file",
	}, got)
}

func TestResolve_PositionalFilesPrefixAndEnvFile(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "config.toml", "host = \"file\"\n")
	dotenv := writeFile(t, dir, "app.env", "APP_HOST=from-dotenv\n")

	out, _, err := run(t, nil, "resolve", cfg, "--prefix", "APP_", "--env-file", dotenv, "-o", "properties")

	require.NoError(t, err)
	assert.Equal(t, "host=from-dotenv\n", out)
}

func TestResolve_EnvFormat(t *testing.T) {
	dotenv := writeFile(t, t.TempDir(), "app.env", "PORT=80\n")

	out, _, err := run(t, map[string]string{"HOST": "h"}, "resolve", "--format", "env", "-f", dotenv, "-o", "properties")

	require.NoError(t, err)
	assert.Equal(t, "HOST=h\nPORT=80\n", out)
}

func TestResolve_MissingFile(t *testing.T) {
	_, _, err := run(t, nil, "resolve", "-f", filepath.Join(t.TempDir(), "missing.json"))

	var loadErr *loader.LoadFileError
	assert.ErrorAs(t, err, &loadErr)
}

func TestResolve_InvalidOutputFormat(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.json", `{}`)

	_, _, err := run(t, nil, "resolve", "-f", path, "-o", "xml")

	assert.Error(t, err)
}

// ── flatten ───────────────────────────────────────────────────────────────────

func TestFlatten_IgnoresEnvironment(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.ini", "[server]\nport = 80\n")

	out, _, err := run(t, map[string]string{"SERVER_PORT": "90"}, "flatten", path, "-o", "properties")

	require.NoError(t, err)
	assert.Equal(t, "server.port=80\n", out)
}

// ── explain ───────────────────────────────────────────────────────────────────

func TestExplain_Table(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.json", `{"host": "file", "secret": "s"}`)

	out, _, err := run(t, map[string]string{"HOST": "env"}, "explain", path, "--exclude", "secret")

	require.NoError(t, err)
	assert.Contains(t, out, "HOST")
	assert.Contains(t, out, "env")
	assert.Contains(t, out, "excluded")
}

func TestExplain_EnvFormatMatchesResolve(t *testing.T) {
	dotenv := writeFile(t, t.TempDir(), "app.env", "PORT=80\n")
	env := map[string]string{"HOST": "h", "APP_HOST": "other"}

	out, _, err := run(t, env, "explain", "--format", "env", "-f", dotenv, "--prefix", "APP_")

	require.NoError(t, err)
	var hostRow []string
	for _, line := range strings.Split(out, "\n") {
		if fields := strings.Fields(line); len(fields) > 0 && fields[0] == "HOST" {
			hostRow = fields
		}
	}
	require.NotEmpty(t, hostRow)
	assert.Equal(t, "h", hostRow[len(hostRow)-1])
	assert.NotContains(t, hostRow, "env")
}

// ── get ───────────────────────────────────────────────────────────────────────

func TestGet(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.json", `{"servers": [{"ip": "10.0.0.1"}]}`)

	out, _, err := run(t, nil, "get", "servers[0].ip", path)

	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1\n", out)
}

func TestGet_MissingKey(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.json", `{"a": 1}`)

	_, _, err := run(t, nil, "get", "b", path)

	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestGet_RequiresKey(t *testing.T) {
	_, _, err := run(t, nil, "get")

	assert.Error(t, err)
}

// ── version / logging ─────────────────────────────────────────────────────────

func TestVersion(t *testing.T) {
	out, _, err := run(t, nil, "version")

	require.NoError(t, err)
	assert.Equal(t, "Build version: v1.2.3\nBuild date: 2026-10-19\nBuild commit: abc123\n", out)
}

func TestDebugLogsGoToErrorStream(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.json", `{"a": "1"}`)

	out, errOut, err := run(t, nil, "resolve", path, "--log-level", "debug")

	require.NoError(t, err)
	assert.Contains(t, out, `"a": "1"`)
	assert.Contains(t, errOut, "session ready")
	assert.NotContains(t, errOut, `"1"`)
}

func TestConfigFromEnvironment(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.json", `{"a": "1"}`)
	env := map[string]string{
		"CONFCTL_SOURCE_FILES":  path,
		"CONFCTL_OUTPUT_FORMAT": "properties",
	}

	out, _, err := run(t, env, "resolve")

	require.NoError(t, err)
	assert.Equal(t, "a=1\n", out)
}
